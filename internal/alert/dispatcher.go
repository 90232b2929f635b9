package alert

import (
	"context"
	"log"
	"time"

	"golang.org/x/time/rate"

	"github.com/omercengiz/warehouse-pro/internal/models"
	"github.com/omercengiz/warehouse-pro/internal/sms"
)

// Dispatch statuses.
const (
	StatusSent    = "sent"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"
)

// Skip reasons for precondition failures. Skips are never retried.
const (
	ReasonUnauthorized  = "unauthorized"
	ReasonNoDestination = "no-destination"
)

// Outcome reports one dispatch attempt back to the caller.
type Outcome struct {
	ItemID   int       `json:"item_id"`
	ItemName string    `json:"item_name"`
	Status   string    `json:"status"`
	Reason   string    `json:"reason,omitempty"`
	Err      error     `json:"-"`
	At       time.Time `json:"at"`
}

// Recorder persists dispatch outcomes, e.g. to the alert log. Recording
// failures must not affect the dispatch path.
type Recorder interface {
	Record(o Outcome)
}

// Dispatcher formats and sends out-of-stock alerts through the configured
// channel. Single sends are synchronous for the bulk path; the mutation path
// uses Go, which never blocks the caller.
type Dispatcher struct {
	sender      sms.Sender
	destination string
	limiter     *rate.Limiter
	maxRetries  int
	recorder    Recorder
	results     chan Outcome
	now         func() time.Time
}

// NewDispatcher wires a dispatcher. sendInterval is the mandatory pause
// between successive messages in bulk mode; maxRetries bounds re-attempts of
// transient failures there. recorder may be nil.
func NewDispatcher(sender sms.Sender, destination string, sendInterval time.Duration, maxRetries int, recorder Recorder) *Dispatcher {
	if sendInterval <= 0 {
		sendInterval = time.Second
	}
	return &Dispatcher{
		sender:      sender,
		destination: destination,
		limiter:     rate.NewLimiter(rate.Every(sendInterval), 1),
		maxRetries:  maxRetries,
		recorder:    recorder,
		results:     make(chan Outcome, 64),
		now:         time.Now,
	}
}

// Results delivers outcomes of asynchronous dispatches.
func (d *Dispatcher) Results() <-chan Outcome {
	return d.results
}

// SendZeroStockAlert checks the channel preconditions in order, then builds
// and sends the alert. All parts of a long message must be delivered for the
// outcome to be Sent.
func (d *Dispatcher) SendZeroStockAlert(ctx context.Context, item models.Item) Outcome {
	out := Outcome{ItemID: item.ID, ItemName: item.Name, At: d.now()}

	if !d.sender.IsAuthorized() {
		out.Status = StatusSkipped
		out.Reason = ReasonUnauthorized
		return out
	}
	if d.destination == "" {
		out.Status = StatusSkipped
		out.Reason = ReasonNoDestination
		return out
	}

	message := BuildZeroStockMessage(item, out.At)
	parts := SplitMessage(message, sms.MaxMessageLen)

	if err := d.sender.Send(ctx, d.destination, parts); err != nil {
		out.Status = StatusFailed
		out.Err = err
		return out
	}

	out.Status = StatusSent
	return out
}

// SendTest pushes a probe message through the channel to verify it works
// end to end. Same preconditions as a real alert.
func (d *Dispatcher) SendTest(ctx context.Context) Outcome {
	out := Outcome{At: d.now()}

	if !d.sender.IsAuthorized() {
		out.Status = StatusSkipped
		out.Reason = ReasonUnauthorized
		return out
	}
	if d.destination == "" {
		out.Status = StatusSkipped
		out.Reason = ReasonNoDestination
		return out
	}

	parts := SplitMessage(BuildTestMessage(out.At), sms.MaxMessageLen)
	if err := d.sender.Send(ctx, d.destination, parts); err != nil {
		out.Status = StatusFailed
		out.Err = err
		return out
	}
	out.Status = StatusSent
	return out
}

// Go dispatches asynchronously. The caller is never delayed by the channel;
// the outcome arrives on Results and in the recorder.
func (d *Dispatcher) Go(item models.Item) {
	go func() {
		out := d.SendZeroStockAlert(context.Background(), item)
		d.report(out)
	}()
}

// SendAllZeroStockAlerts dispatches alerts for every given item, pausing a
// full sendInterval between messages to respect the channel rate limit. The
// first message consumes the limiter's token, so every later message waits
// the whole interval. A failure on one item does not abort the rest;
// transient failures are retried a bounded number of times. Returns the
// count of Sent outcomes. Cancelling the context stops the run between
// items, never mid-message.
func (d *Dispatcher) SendAllZeroStockAlerts(ctx context.Context, items []models.Item) int {
	sent := 0
	for _, item := range items {
		if err := d.limiter.Wait(ctx); err != nil {
			return sent
		}

		out := d.SendZeroStockAlert(ctx, item)
		for attempt := 0; out.Status == StatusFailed && attempt < d.maxRetries; attempt++ {
			if err := d.limiter.Wait(ctx); err != nil {
				d.report(out)
				return sent
			}
			out = d.SendZeroStockAlert(ctx, item)
		}

		d.report(out)
		if out.Status == StatusSent {
			sent++
		}
	}
	return sent
}

func (d *Dispatcher) report(out Outcome) {
	switch out.Status {
	case StatusSent:
		log.Printf("stock-out alert sent for item %d (%s)", out.ItemID, out.ItemName)
	case StatusSkipped:
		log.Printf("stock-out alert skipped for item %d (%s): %s", out.ItemID, out.ItemName, out.Reason)
	case StatusFailed:
		log.Printf("stock-out alert failed for item %d (%s): %v", out.ItemID, out.ItemName, out.Err)
	}

	if d.recorder != nil {
		d.recorder.Record(out)
	}

	select {
	case d.results <- out:
	default:
		// Nobody draining outcomes; dispatch stays fire-and-forget.
	}
}

package alert

import (
	"sync"
	"time"

	"github.com/omercengiz/warehouse-pro/internal/inventory"
	"github.com/omercengiz/warehouse-pro/internal/models"
)

// DefaultQuietWindow is how long an item must stay quiet before its pending
// notification fires.
const DefaultQuietWindow = 300 * time.Millisecond

// Notification is the coalesced quantity-change notice handed to the
// presentation layer after the quiet window elapses.
type Notification struct {
	ItemID   int
	ItemName string
	Quantity int
}

type pendingNotice struct {
	timer  *time.Timer
	latest Notification
	// gen identifies the owning timer. A replaced timer whose callback is
	// already running sees a newer gen and backs off instead of firing
	// before the fresh quiet window elapses.
	gen int
}

// Debouncer coalesces rapid quantity changes per item into one notification
// carrying the most recent quantity. Zero-crossings bypass the window
// entirely and are forwarded to the dispatcher immediately.
type Debouncer struct {
	mu         sync.Mutex
	window     time.Duration
	pending    map[int]*pendingNotice
	notify     func(Notification)
	dispatcher *Dispatcher
	closed     bool
}

// NewDebouncer wires a debouncer. notify receives the coalesced
// notifications; it may be nil when no presentation layer listens.
func NewDebouncer(window time.Duration, dispatcher *Dispatcher, notify func(Notification)) *Debouncer {
	if window <= 0 {
		window = DefaultQuietWindow
	}
	return &Debouncer{
		window:     window,
		pending:    make(map[int]*pendingNotice),
		notify:     notify,
		dispatcher: dispatcher,
	}
}

// QuantityChanged implements inventory.EventSink. A pending timer for the
// same item is cancelled and replaced: the latest message wins.
func (d *Debouncer) QuantityChanged(e inventory.QuantityChanged) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	latest := Notification{ItemID: e.Item.ID, ItemName: e.Item.Name, Quantity: e.NewQty}
	if p, ok := d.pending[e.Item.ID]; ok {
		p.timer.Stop()
		p.gen++
		p.latest = latest
		p.timer = d.startTimer(e.Item.ID, p.gen)
		return
	}

	p := &pendingNotice{latest: latest}
	p.timer = d.startTimer(e.Item.ID, p.gen)
	d.pending[e.Item.ID] = p
}

// ZeroCrossing implements inventory.EventSink. Stock-out is never debounced;
// the dispatcher runs it off the mutation path.
func (d *Debouncer) ZeroCrossing(item models.Item) {
	if d.dispatcher != nil {
		d.dispatcher.Go(item)
	}
}

// ItemDeleted implements inventory.EventSink. A pending notification for a
// deleted item is dropped silently.
func (d *Debouncer) ItemDeleted(id int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p, ok := d.pending[id]; ok {
		p.timer.Stop()
		delete(d.pending, id)
	}
}

// Close stops all pending timers. No notifications fire afterwards.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	for id, p := range d.pending {
		p.timer.Stop()
		delete(d.pending, id)
	}
}

func (d *Debouncer) startTimer(id, gen int) *time.Timer {
	return time.AfterFunc(d.window, func() {
		d.fire(id, gen)
	})
}

func (d *Debouncer) fire(id, gen int) {
	d.mu.Lock()
	p, ok := d.pending[id]
	if !ok || d.closed || p.gen != gen {
		d.mu.Unlock()
		return
	}
	delete(d.pending, id)
	latest := p.latest
	notify := d.notify
	d.mu.Unlock()

	if notify != nil {
		notify(latest)
	}
}

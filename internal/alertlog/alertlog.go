// Package alertlog keeps a Redis-backed history of stock-out alert outcomes
// and emails a daily summary. Logging is best-effort: Redis trouble degrades
// to a log line and never reaches the dispatch path.
package alertlog

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/omercengiz/warehouse-pro/internal/alert"
)

const DailyAlertLogKey = "alerts:stockout:daily"

type Entry struct {
	ItemID   int       `json:"item_id"`
	ItemName string    `json:"item_name"`
	Status   string    `json:"status"`
	Reason   string    `json:"reason,omitempty"`
	Time     time.Time `json:"time"`
}

// SummaryConfig carries the SMTP settings for the daily summary email.
type SummaryConfig struct {
	From         string
	To           string
	Server       string
	Port         string
	User         string
	Password     string
	AuthDisabled bool
}

type Log struct {
	rdb     *redis.Client
	ctx     context.Context
	summary SummaryConfig
}

func New(rdb *redis.Client, ctx context.Context, summary SummaryConfig) *Log {
	return &Log{rdb: rdb, ctx: ctx, summary: summary}
}

// Record implements alert.Recorder.
func (l *Log) Record(o alert.Outcome) {
	if l == nil || l.rdb == nil {
		return
	}

	entry := Entry{
		ItemID:   o.ItemID,
		ItemName: o.ItemName,
		Status:   o.Status,
		Reason:   o.Reason,
		Time:     o.At,
	}
	data, _ := json.Marshal(entry)
	if err := l.rdb.RPush(l.ctx, DailyAlertLogKey, data).Err(); err != nil {
		log.Printf("failed to record alert log entry: %v", err)
	}
}

// StartDailySummary sends the summary at end of day, repeating at the given
// interval.
func (l *Log) StartDailySummary(interval time.Duration) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if now.After(next) {
			next = next.Add(interval)
		}
		time.Sleep(time.Until(next))
		l.SendDailySummary()
	}
}

// SendDailySummary aggregates and emails the day's alert log, then clears it.
func (l *Log) SendDailySummary() {
	entries, err := l.rdb.LRange(l.ctx, DailyAlertLogKey, 0, -1).Result()
	if err != nil || len(entries) == 0 {
		return
	}
	_ = l.rdb.Del(l.ctx, DailyAlertLogKey).Err() // clear after reading

	var logs []Entry
	itemCounts := make(map[string]int)
	statusCounts := make(map[string]int)

	for _, item := range entries {
		var entry Entry
		if err := json.Unmarshal([]byte(item), &entry); err == nil {
			logs = append(logs, entry)
			itemCounts[entry.ItemName]++
			statusCounts[entry.Status]++
		}
	}

	var sb strings.Builder
	sb.WriteString("<h2>Daily Stock-Out Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total alerts: <strong>%d</strong></p>", len(logs)))

	sb.WriteString("<h3>By Status</h3><ul>")
	for status, count := range statusCounts {
		sb.WriteString(fmt.Sprintf("<li><code>%s</code>: %d</li>", status, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>By Item</h3><ul>")
	for name, count := range itemCounts {
		sb.WriteString(fmt.Sprintf("<li>%s: %d</li>", name, count))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full Log</h3><ul>")
	for _, entry := range logs {
		sb.WriteString(fmt.Sprintf("<li>%s — %s (%s) at %s</li>",
			entry.ItemName, entry.Status, entry.Reason, entry.Time.Format(time.RFC3339)))
	}
	sb.WriteString("</ul>")

	if err := l.sendSummaryEmail("Daily stock-out summary", sb.String()); err != nil {
		log.Printf("failed to send daily alert summary: %v", err)
	}
}

func (l *Log) sendSummaryEmail(subject, htmlBody string) error {
	if l.summary.Server == "" || l.summary.To == "" {
		return fmt.Errorf("summary email not configured")
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s",
		l.summary.From, l.summary.To, subject, htmlBody)

	addr := fmt.Sprintf("%s:%s", l.summary.Server, l.summary.Port)
	var auth smtp.Auth
	if !l.summary.AuthDisabled {
		auth = smtp.PlainAuth("", l.summary.User, l.summary.Password, l.summary.Server)
	}

	return smtp.SendMail(addr, auth, l.summary.From, []string{l.summary.To}, []byte(msg))
}

// Package alert records low-stock alerts and mails them, one at a time as
// they happen and as a daily HTML digest.
package alert

import (
	"context"
	"fmt"
	"net/smtp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rogerio-castellano/coffee-maker/internal/models"
	"go.uber.org/zap"
)

type SMTPConfig struct {
	From         string
	To           string
	Server       string
	Port         string
	User         string
	Password     string
	AuthDisabled bool
}

// Enabled reports whether enough is configured to send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Server != "" && c.To != "" && c.From != ""
}

// SendFunc has the signature of smtp.SendMail.
type SendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

type Notifier struct {
	store  Store
	smtp   SMTPConfig
	send   SendFunc
	logger *zap.Logger
	now    func() time.Time

	wg sync.WaitGroup
}

type Option func(*Notifier)

// WithSendFunc replaces smtp.SendMail.
func WithSendFunc(send SendFunc) Option {
	return func(n *Notifier) { n.send = send }
}

func WithClock(now func() time.Time) Option {
	return func(n *Notifier) { n.now = now }
}

func NewNotifier(store Store, cfg SMTPConfig, logger *zap.Logger, opts ...Option) *Notifier {
	if logger == nil {
		logger = zap.NewNop()
	}
	n := &Notifier{
		store:  store,
		smtp:   cfg,
		send:   smtp.SendMail,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// LowStock records the alert and mails it in the background.
func (n *Notifier) LowStock(ingredient models.Ingredient, level, threshold int) {
	entry := LowStockEntry{
		Ingredient: ingredient.Label(),
		Level:      level,
		Threshold:  threshold,
		Time:       n.now(),
	}
	if err := n.store.Push(entry); err != nil {
		n.logger.Warn("could not store low stock alert", zap.String("ingredient", entry.Ingredient), zap.Error(err))
	}

	if !n.smtp.Enabled() {
		return
	}

	subject := fmt.Sprintf("LOW STOCK: %s at %d units", entry.Ingredient, level)
	body := fmt.Sprintf("Ingredient: %s\nLevel: %d\nThreshold: %d\nTime: %s",
		entry.Ingredient, level, threshold, entry.Time.Format(time.RFC3339))
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s", n.smtp.From, n.smtp.To, subject, body)

	n.mail(msg)
}

// SendDailySummary drains the store and mails the digest. It does nothing
// when no alert was recorded.
func (n *Notifier) SendDailySummary() error {
	entries, err := n.store.Drain()
	if err != nil {
		return fmt.Errorf("could not read alerts: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	n.logger.Info("sending low stock summary", zap.Int("alerts", len(entries)))
	if !n.smtp.Enabled() {
		return nil
	}

	msg := strings.Join([]string{
		"From: " + n.smtp.From,
		"To: " + n.smtp.To,
		"Subject: Daily Low Stock Report",
		"MIME-Version: 1.0",
		"Content-Type: text/html; charset=\"UTF-8\"",
		"",
		BuildSummary(entries),
	}, "\r\n")

	n.mail(msg)
	return nil
}

// StartDailySummary sends the digest every day at 23:59 until ctx is done.
func (n *Notifier) StartDailySummary(ctx context.Context) error {
	for {
		now := n.now()
		next := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}

		timer := time.NewTimer(next.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil
		case <-timer.C:
		}

		if err := n.SendDailySummary(); err != nil {
			n.logger.Error("daily summary failed", zap.Error(err))
		}
	}
}

// Wait blocks until mails sent in the background are done.
func (n *Notifier) Wait() {
	n.wg.Wait()
}

func (n *Notifier) mail(msg string) {
	addr := fmt.Sprintf("%s:%s", n.smtp.Server, n.smtp.Port)
	var auth smtp.Auth
	if !n.smtp.AuthDisabled {
		auth = smtp.PlainAuth("", n.smtp.User, n.smtp.Password, n.smtp.Server)
	}

	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		if err := n.send(addr, auth, n.smtp.From, []string{n.smtp.To}, []byte(msg)); err != nil {
			n.logger.Error("failed to send alert email", zap.Error(err))
		}
	}()
}

// BuildSummary renders the alerts as an HTML digest.
func BuildSummary(entries []LowStockEntry) string {
	counts := make(map[string]int)
	lowest := make(map[string]int)
	for _, e := range entries {
		if l, seen := lowest[e.Ingredient]; !seen || e.Level < l {
			lowest[e.Ingredient] = e.Level
		}
		counts[e.Ingredient]++
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("<h2>Daily Low Stock Summary</h2>")
	sb.WriteString(fmt.Sprintf("<p>Total alerts: <strong>%d</strong></p>", len(entries)))

	sb.WriteString("<h3>By Ingredient</h3><ul>")
	for _, name := range names {
		sb.WriteString(fmt.Sprintf("<li>%s: %d alerts, lowest level %d</li>", name, counts[name], lowest[name]))
	}
	sb.WriteString("</ul>")

	sb.WriteString("<h3>Full Log</h3><ul>")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("<li><b>%s</b> at %d units (threshold %d) on %s</li>",
			e.Ingredient, e.Level, e.Threshold, e.Time.Format(time.RFC822)))
	}
	sb.WriteString("</ul>")
	return sb.String()
}

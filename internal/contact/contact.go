// Package contact assigns ticket ids to inbound messages and relays them to
// an external webhook when one is configured. Delivery is fire-and-forget:
// at most one POST attempt, failures logged but never surfaced.
package contact

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kane/portfolio-api/pkg/logger"
	"github.com/kane/portfolio-api/pkg/metrics"
)

// Message is one inbound contact message.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	IP      string `json:"ip,omitempty"`
}

// Notifier relays contact messages.
type Notifier struct {
	webhook string
	client  *http.Client
	log     logger.Logger
	now     func() time.Time
}

// Option applies a configuration option to the Notifier.
type Option func(*Notifier)

// WithWebhook sets the forwarding target. Empty disables forwarding.
func WithWebhook(url string) Option {
	return func(n *Notifier) { n.webhook = url }
}

// WithTimeout bounds the webhook POST.
func WithTimeout(d time.Duration) Option {
	return func(n *Notifier) {
		if d > 0 {
			n.client.Timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(log logger.Logger) Option {
	return func(n *Notifier) {
		if log != nil {
			n.log = log
		}
	}
}

// New creates a Notifier.
func New(opts ...Option) *Notifier {
	n := &Notifier{
		client: &http.Client{Timeout: 10 * time.Second},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Submit assigns a ticket id and attempts delivery. The returned ticket id
// is valid even when delivery fails.
func (n *Notifier) Submit(ctx context.Context, msg Message) string {
	ticketID := fmt.Sprintf("ticket_%d", n.now().UTC().Unix())
	metrics.RecordContactSubmission()

	if n.webhook == "" {
		return ticketID
	}

	payload := struct {
		Message
		TicketID string `json:"ticket_id"`
	}{Message: msg, TicketID: ticketID}

	body, err := json.Marshal(payload)
	if err != nil {
		n.logDeliveryFailure(ctx, ticketID, err)
		return ticketID
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhook, bytes.NewReader(body))
	if err != nil {
		n.logDeliveryFailure(ctx, ticketID, err)
		return ticketID
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		metrics.RecordForwardAttempt("contact", "error")
		n.logDeliveryFailure(ctx, ticketID, err)
		return ticketID
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.RecordForwardAttempt("contact", "error")
		n.logDeliveryFailure(ctx, ticketID, fmt.Errorf("webhook returned status %d", resp.StatusCode))
		return ticketID
	}

	metrics.RecordForwardAttempt("contact", "ok")
	return ticketID
}

func (n *Notifier) logDeliveryFailure(ctx context.Context, ticketID string, err error) {
	if n.log != nil {
		n.log.Warn(ctx, "contact webhook delivery failed",
			logger.String("ticket_id", ticketID), logger.Error(err))
	}
}

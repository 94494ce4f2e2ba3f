// Package crm pushes qualified leads to the firm's intake webhook. Delivery
// is fire-and-forget with retries; a dead CRM never touches the dialogue.
package crm

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/erikmg100/sesame-retell-integration/internal/logger"
)

// Lead is the slot record of a call that reached ready_transfer.
type Lead struct {
	CallID     string            `json:"call_id"`
	Track      string            `json:"track"`
	Fields     map[string]string `json:"fields"`
	CapturedAt time.Time         `json:"captured_at"`
}

var httpClient = &http.Client{
	Timeout: 12 * time.Second,
}

type Notifier struct {
	url string
}

// NewNotifier returns a notifier posting to webhookURL. An empty URL yields
// a disabled notifier; Deliver becomes a no-op.
func NewNotifier(webhookURL string) *Notifier {
	return &Notifier{url: webhookURL}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.url != ""
}

// Deliver posts the lead as JSON, retrying transient failures with
// exponential backoff for up to 30 seconds. Blocking; call from a goroutine.
func (n *Notifier) Deliver(lead Lead) error {
	if !n.Enabled() {
		return nil
	}

	log := logger.New().WithCall(lead.CallID).WithField("component", "crm-notifier")

	body, err := json.Marshal(lead)
	if err != nil {
		return fmt.Errorf("marshal lead: %w", err)
	}

	bo := backoff.NewExponentialBackOff()
	bo.MaxElapsedTime = 30 * time.Second

	operation := func() error {
		req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewReader(body))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("crm server error: status %d", resp.StatusCode)
		}
		if resp.StatusCode >= 400 {
			// Our payload won't get better on retry
			return backoff.Permanent(fmt.Errorf("crm rejected lead: status %d", resp.StatusCode))
		}
		return nil
	}

	if err := backoff.Retry(operation, bo); err != nil {
		log.WithError(err).Error("lead delivery failed")
		return err
	}

	log.WithField("track", lead.Track).Info("lead delivered")
	return nil
}

// DeliverAsync runs Deliver on its own goroutine.
func (n *Notifier) DeliverAsync(lead Lead) {
	if !n.Enabled() {
		return
	}
	go func() { _ = n.Deliver(lead) }()
}

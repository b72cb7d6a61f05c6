// Package mailer implements transactional alert emails via the Loops API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const defaultTimeout = 30 * time.Second

// Alert is an email payload for one fired alert kind.
type Alert struct {
	Email               string // recipient address
	FirstName           string
	AlertDescriptor     string // human readable alert headline
	CurrentValue        string // formatted observed value
	ThresholdDescriptor string // "above" or "below"
	Message             string // composed alert body
}

// transactionalRequest is the Loops send-transactional wire format.
type transactionalRequest struct {
	TransactionalID string            `json:"transactionalId"`
	Email           string            `json:"email"`
	DataVariables   map[string]string `json:"dataVariables"`
}

// Client sends transactional emails through the Loops API.
type Client struct {
	baseURL         string
	apiKey          string
	transactionalID string
	http            *http.Client
}

// New creates a Loops client with a fixed template id for all alerts.
func New(baseURL, apiKey, transactionalID string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:         baseURL,
		apiKey:          apiKey,
		transactionalID: transactionalID,
		http:            &http.Client{Timeout: timeout},
	}
}

// Send dispatches one alert email. One call per fired alert kind.
func (c *Client) Send(ctx context.Context, a Alert) error {
	payload := transactionalRequest{
		TransactionalID: c.transactionalID,
		Email:           a.Email,
		DataVariables: map[string]string{
			"first_name":           a.FirstName,
			"alert_descriptor":     a.AlertDescriptor,
			"current_price":        a.CurrentValue,
			"threshold_descriptor": a.ThresholdDescriptor,
			"alert_message":        a.Message,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to marshal transactional email")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transactional", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build loops request")
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "loops request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Wrap(ErrUnexpectedStatus, fmt.Sprintf("loops returned %s", resp.Status))
	}

	return nil
}

// Package amber implements a client for the Amber Electric REST API.
package amber

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

const (
	defaultTimeout = 30 * time.Second

	// channelGeneral is the pricing channel representing the overall
	// (non solar) electricity price.
	channelGeneral = "general"
)

// Site is one electricity site registered for an API token.
type Site struct {
	ID  string `json:"id"`
	NMI string `json:"nmi"`
}

// Interval is one current price reading as returned by the API.
type Interval struct {
	Type        string  `json:"type"`
	Duration    int     `json:"duration"`
	SpotPerKwh  float64 `json:"spotPerKwh"`
	PerKwh      float64 `json:"perKwh"`
	Renewables  float64 `json:"renewables"`
	ChannelType string  `json:"channelType"`
	SpikeStatus string  `json:"spikeStatus"`
}

// PriceSample is the general channel reading the monitor evaluates.
// It is fetched fresh every cycle and never persisted.
type PriceSample struct {
	PerKwh     float64 // cents per kWh
	Renewables float64 // percent
}

// Client talks to the Amber Electric API. Tokens are per subscriber and
// passed per call, so one client instance serves all of them.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates an Amber client against the given API base url.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout == 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// Sites lists the sites registered for the given API token.
// Used once at settings-save time to resolve the site id.
func (c *Client) Sites(ctx context.Context, token string) ([]Site, error) {
	var sites []Site
	if err := c.get(ctx, token, "/sites", &sites); err != nil {
		return nil, err
	}

	if len(sites) == 0 {
		return nil, ErrNoSites
	}

	return sites, nil
}

// CurrentPrice fetches the current general channel price for a site.
func (c *Client) CurrentPrice(ctx context.Context, token, siteID string) (PriceSample, error) {
	var intervals []Interval
	if err := c.get(ctx, token, "/sites/"+siteID+"/prices/current", &intervals); err != nil {
		return PriceSample{}, err
	}

	for _, iv := range intervals {
		if iv.ChannelType == channelGeneral {
			return PriceSample{
				PerKwh:     iv.PerKwh,
				Renewables: iv.Renewables,
			}, nil
		}
	}

	return PriceSample{}, ErrNoGeneralChannel
}

func (c *Client) get(ctx context.Context, token, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "failed to build amber request")
	}

	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrap(err, "amber request failed")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return errors.Wrap(ErrUnexpectedStatus, fmt.Sprintf("amber returned %s for %s", resp.Status, path))
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "failed to decode amber response")
	}

	return nil
}

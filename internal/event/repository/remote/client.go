package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"calendar-schedule/internal/event"
	"calendar-schedule/internal/model"
)

// Client is the HTTP wrapper for the calendar events API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new events API client. baseURL points at the API root,
// e.g. http://localhost:8080/api/v1.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NewClientWithHTTP creates a client that sends requests through httpClient.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// ListEvents fetches the events of one day via GET /events?date=.
func (c *Client) ListEvents(ctx context.Context, date string) ([]model.Event, error) {
	u := fmt.Sprintf("%s/events?date=%s", c.baseURL, url.QueryEscape(date))

	var out ListEventsResponse
	if err := c.do(ctx, http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return out.Events, nil
}

// CreateEvent stores an event via POST /events.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (model.Event, error) {
	u := fmt.Sprintf("%s/events", c.baseURL)

	var out CreateEventResponse
	if err := c.do(ctx, http.MethodPost, u, req, &out); err != nil {
		return model.Event{}, err
	}
	return out.Event, nil
}

// DeleteEvent removes an event via DELETE /events/{id}.
func (c *Client) DeleteEvent(ctx context.Context, id string) (bool, error) {
	u := fmt.Sprintf("%s/events/%s", c.baseURL, url.PathEscape(id))

	var out DeleteEventResponse
	if err := c.do(ctx, http.MethodDelete, u, nil, &out); err != nil {
		return false, err
	}
	return out.Removed, nil
}

// StatsByMonth fetches per-day counts via GET /events/stats?year=&month=.
func (c *Client) StatsByMonth(ctx context.Context, year int, month time.Month) (map[string]int, error) {
	q := url.Values{}
	q.Set("year", strconv.Itoa(year))
	q.Set("month", strconv.Itoa(int(month)))
	u := fmt.Sprintf("%s/events/stats?%s", c.baseURL, q.Encode())

	var out StatsResponse
	if err := c.do(ctx, http.MethodGet, u, nil, &out); err != nil {
		return nil, err
	}
	return out.Stats, nil
}

// ClearEvents wipes the remote collection via DELETE /events.
func (c *Client) ClearEvents(ctx context.Context) error {
	u := fmt.Sprintf("%s/events", c.baseURL)
	return c.do(ctx, http.MethodDelete, u, nil, nil)
}

// do sends one request and decodes the response envelope into out.
// Network failures and non-2xx answers become event.ErrTransport; a 400
// carrying the server's validation message becomes event.ErrValidation.
func (c *Client) do(ctx context.Context, method, u string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal %s %s request: %w", method, u, err)
		}
		reader = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", method, err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return ctxErr
		}
		return fmt.Errorf("%w: %s %s: %v", event.ErrTransport, method, u, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s response: %v", event.ErrTransport, method, err)
	}

	var env envelope
	decodeErr := json.Unmarshal(raw, &env)

	if resp.StatusCode == http.StatusBadRequest && decodeErr == nil && env.Message != "" {
		return fmt.Errorf("%w: %s", event.ErrValidation, env.Message)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: events API %s error %d: %s", event.ErrTransport, method, resp.StatusCode, string(raw))
	}
	if decodeErr != nil {
		return fmt.Errorf("%w: decode %s response: %v", event.ErrTransport, method, decodeErr)
	}
	if env.ErrorCode != 0 {
		return fmt.Errorf("%w: events API error %d: %s", event.ErrTransport, env.ErrorCode, env.Message)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("%w: decode %s payload: %v", event.ErrTransport, method, err)
	}
	return nil
}

// ---- Request/Response types scoped to this package ----

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

// CreateEventRequest is the body for POST /events.
type CreateEventRequest struct {
	Date  string `json:"date"`
	Time  string `json:"time"`
	Title string `json:"title"`
}

type ListEventsResponse struct {
	Events []model.Event `json:"events"`
}

type CreateEventResponse struct {
	Event model.Event `json:"event"`
}

type DeleteEventResponse struct {
	Removed bool `json:"removed"`
}

type StatsResponse struct {
	Stats map[string]int `json:"stats"`
}

// Package cal implements a thin client for the scheduling provider's HTTP
// API. Every call is authenticated with a bearer token and the response body
// is returned raw, so callers can relay it without reinterpretation.
package cal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/goccy/go-json"
)

// Fetcher is the full upstream surface the relay forwards to.
type Fetcher interface {
	CurrentUser(ctx context.Context, token string) (*Response, error)
	Locations(ctx context.Context, token, userURI string) (*Response, error)
	CreateEventType(ctx context.Context, token string, body map[string]any) (*Response, error)
	ListEventTypes(ctx context.Context, token string, query url.Values) (*Response, error)
	UpdateEventType(ctx context.Context, token, eventTypeID string, body map[string]any) (*Response, error)
	UpdateAvailabilitySchedule(ctx context.Context, token string, body map[string]any) (*Response, error)
}

// Response carries the upstream status and body verbatim. The provider owns
// the payload shapes, we never parse them beyond pass-through.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the upstream accepted the request.
func (r *Response) OK() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

type Client struct {
	client *http.Client
	apiURL string
}

func New(apiURL string, client *http.Client) *Client {
	return &Client{
		apiURL: apiURL,
		client: client,
	}
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/users/me", nil, token, nil)
}

func (c *Client) Locations(ctx context.Context, token, userURI string) (*Response, error) {
	query := url.Values{}
	query.Set("user", userURI)

	return c.do(ctx, http.MethodGet, "/locations", query, token, nil)
}

func (c *Client) CreateEventType(ctx context.Context, token string, body map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPost, "/event_types", nil, token, body)
}

func (c *Client) ListEventTypes(ctx context.Context, token string, query url.Values) (*Response, error) {
	return c.do(ctx, http.MethodGet, "/event_types", query, token, nil)
}

func (c *Client) UpdateEventType(ctx context.Context, token, eventTypeID string, body map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPatch, "/event_types/"+url.PathEscape(eventTypeID), nil, token, body)
}

func (c *Client) UpdateAvailabilitySchedule(ctx context.Context, token string, body map[string]any) (*Response, error) {
	return c.do(ctx, http.MethodPatch, "/event_type_availability_schedules", nil, token, body)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, token string, body map[string]any) (*Response, error) {
	var payload io.Reader

	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshalling body: %w", err)
		}

		payload = bytes.NewReader(data)
	}

	endpoint := c.apiURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, payload)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return &Response{
		StatusCode: res.StatusCode,
		Body:       data,
	}, nil
}

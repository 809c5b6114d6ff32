package service

import (
	"context"
	"net/http"
	"net/url"
)

// UpstreamResponse carries a scheduling-provider response through the service
// layer. Rejections keep their upstream status and body verbatim, successful
// responses are relayed with a plain 200.
type UpstreamResponse struct {
	Status int
	Body   []byte
}

func (r *UpstreamResponse) StatusCode() int {
	if r.Status >= http.StatusBadRequest {
		return r.Status
	}

	return http.StatusOK
}

func (r *UpstreamResponse) Encode(w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(r.StatusCode())

	_, err := w.Write(r.Body)

	return err
}

// RelayService is the forwarding surface exposed to the frontend. All
// operations except CurrentUser require a stored session token.
type RelayService interface {
	CurrentUser(ctx context.Context, token string) (*UpstreamResponse, error)
	CurrentUserFromStore(ctx context.Context) (*UpstreamResponse, error)
	Locations(ctx context.Context, userURI string) (*UpstreamResponse, error)
	CreateEventType(ctx context.Context, body map[string]any) (*UpstreamResponse, error)
	ListEventTypes(ctx context.Context, query url.Values) (*UpstreamResponse, error)
	UpdateEventType(ctx context.Context, eventTypeID string, body map[string]any) (*UpstreamResponse, error)
	UpdateAvailabilitySchedule(ctx context.Context, body map[string]any) (*UpstreamResponse, error)
}

// SchedulerAPI is the outbound port towards the scheduling provider.
type SchedulerAPI interface {
	CurrentUser(ctx context.Context, token string) (*UpstreamResponse, error)
	Locations(ctx context.Context, token, userURI string) (*UpstreamResponse, error)
	CreateEventType(ctx context.Context, token string, body map[string]any) (*UpstreamResponse, error)
	ListEventTypes(ctx context.Context, token string, query url.Values) (*UpstreamResponse, error)
	UpdateEventType(ctx context.Context, token, eventTypeID string, body map[string]any) (*UpstreamResponse, error)
	UpdateAvailabilitySchedule(ctx context.Context, token string, body map[string]any) (*UpstreamResponse, error)
}

package http

import (
	"context"
	"net/url"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/oppmote/oppmote-backend/pkg/cal"
	"github.com/oppmote/oppmote-backend/pkg/errs"
	"github.com/oppmote/oppmote-backend/pkg/service"
)

var _ service.SchedulerAPI = &schedulerAPI{}

// schedulerAPI adapts the cal client to the service port: transport failures
// become generic IO errors, everything else is relayed verbatim.
type schedulerAPI struct {
	fetcher      cal.Fetcher
	upstreamErrs *prometheus.CounterVec
}

func (a *schedulerAPI) CurrentUser(ctx context.Context, token string) (*service.UpstreamResponse, error) {
	const op errs.Op = "schedulerAPI.CurrentUser"

	res, err := a.fetcher.CurrentUser(ctx, token)

	return a.relay(op, "current_user", res, err)
}

func (a *schedulerAPI) Locations(ctx context.Context, token, userURI string) (*service.UpstreamResponse, error) {
	const op errs.Op = "schedulerAPI.Locations"

	res, err := a.fetcher.Locations(ctx, token, userURI)

	return a.relay(op, "locations", res, err)
}

func (a *schedulerAPI) CreateEventType(ctx context.Context, token string, body map[string]any) (*service.UpstreamResponse, error) {
	const op errs.Op = "schedulerAPI.CreateEventType"

	res, err := a.fetcher.CreateEventType(ctx, token, body)

	return a.relay(op, "create_event_type", res, err)
}

func (a *schedulerAPI) ListEventTypes(ctx context.Context, token string, query url.Values) (*service.UpstreamResponse, error) {
	const op errs.Op = "schedulerAPI.ListEventTypes"

	res, err := a.fetcher.ListEventTypes(ctx, token, query)

	return a.relay(op, "list_event_types", res, err)
}

func (a *schedulerAPI) UpdateEventType(ctx context.Context, token, eventTypeID string, body map[string]any) (*service.UpstreamResponse, error) {
	const op errs.Op = "schedulerAPI.UpdateEventType"

	res, err := a.fetcher.UpdateEventType(ctx, token, eventTypeID, body)

	return a.relay(op, "update_event_type", res, err)
}

func (a *schedulerAPI) UpdateAvailabilitySchedule(ctx context.Context, token string, body map[string]any) (*service.UpstreamResponse, error) {
	const op errs.Op = "schedulerAPI.UpdateAvailabilitySchedule"

	res, err := a.fetcher.UpdateAvailabilitySchedule(ctx, token, body)

	return a.relay(op, "update_availability_schedule", res, err)
}

func (a *schedulerAPI) relay(op errs.Op, operation string, res *cal.Response, err error) (*service.UpstreamResponse, error) {
	if err != nil {
		a.upstreamErrs.WithLabelValues(operation).Inc()

		return nil, errs.E(op, errs.IO, err, "upstream request failed")
	}

	return &service.UpstreamResponse{
		Status: res.StatusCode,
		Body:   res.Body,
	}, nil
}

func NewSchedulerAPI(fetcher cal.Fetcher, upstreamErrs *prometheus.CounterVec) *schedulerAPI {
	return &schedulerAPI{
		fetcher:      fetcher,
		upstreamErrs: upstreamErrs,
	}
}

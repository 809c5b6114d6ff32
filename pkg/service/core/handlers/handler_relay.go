package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi"

	"github.com/oppmote/oppmote-backend/pkg/errs"
	"github.com/oppmote/oppmote-backend/pkg/service"
)

type RelayHandler struct {
	service service.RelayService
}

func (h *RelayHandler) Me(ctx context.Context, r *http.Request, _ any) (*service.UpstreamResponse, error) {
	const op errs.Op = "RelayHandler.Me"

	token := r.URL.Query().Get("token")
	if token == "" {
		return nil, errs.E(op, errs.InvalidRequest, "missing required query parameter: token")
	}

	return h.service.CurrentUser(ctx, token)
}

func (h *RelayHandler) MeFromStore(ctx context.Context, _ *http.Request, _ any) (*service.UpstreamResponse, error) {
	return h.service.CurrentUserFromStore(ctx)
}

func (h *RelayHandler) Locations(ctx context.Context, r *http.Request, _ any) (*service.UpstreamResponse, error) {
	const op errs.Op = "RelayHandler.Locations"

	// Checked before the token gate, a missing user is a 400 regardless of
	// session state.
	user := r.URL.Query().Get("user")
	if user == "" {
		return nil, errs.E(op, errs.InvalidRequest, "missing required query parameter: user")
	}

	return h.service.Locations(ctx, user)
}

func (h *RelayHandler) CreateEventType(ctx context.Context, _ *http.Request, body map[string]any) (*service.UpstreamResponse, error) {
	return h.service.CreateEventType(ctx, body)
}

func (h *RelayHandler) ListEventTypes(ctx context.Context, r *http.Request, _ any) (*service.UpstreamResponse, error) {
	return h.service.ListEventTypes(ctx, r.URL.Query())
}

func (h *RelayHandler) UpdateEventType(ctx context.Context, _ *http.Request, body map[string]any) (*service.UpstreamResponse, error) {
	const op errs.Op = "RelayHandler.UpdateEventType"

	eventTypeID := chi.URLParamFromCtx(ctx, "uuid")
	if eventTypeID == "" {
		return nil, errs.E(op, errs.InvalidRequest, "missing event type identifier")
	}

	return h.service.UpdateEventType(ctx, eventTypeID, body)
}

func (h *RelayHandler) UpdateAvailabilitySchedule(ctx context.Context, _ *http.Request, body map[string]any) (*service.UpstreamResponse, error) {
	return h.service.UpdateAvailabilitySchedule(ctx, body)
}

func NewRelayHandler(service service.RelayService) *RelayHandler {
	return &RelayHandler{service: service}
}

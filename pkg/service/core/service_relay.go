package core

import (
	"context"
	"net/url"

	"github.com/oppmote/oppmote-backend/pkg/errs"
	"github.com/oppmote/oppmote-backend/pkg/service"
	"github.com/oppmote/oppmote-backend/pkg/session"
)

var _ service.RelayService = &relayService{}

type relayService struct {
	api   service.SchedulerAPI
	store session.Store
}

func (s *relayService) CurrentUser(ctx context.Context, token string) (*service.UpstreamResponse, error) {
	return s.api.CurrentUser(ctx, token)
}

func (s *relayService) CurrentUserFromStore(ctx context.Context) (*service.UpstreamResponse, error) {
	const op errs.Op = "relayService.CurrentUserFromStore"

	token, err := s.token(op)
	if err != nil {
		return nil, err
	}

	return s.api.CurrentUser(ctx, token)
}

func (s *relayService) Locations(ctx context.Context, userURI string) (*service.UpstreamResponse, error) {
	const op errs.Op = "relayService.Locations"

	token, err := s.token(op)
	if err != nil {
		return nil, err
	}

	return s.api.Locations(ctx, token, userURI)
}

func (s *relayService) CreateEventType(ctx context.Context, body map[string]any) (*service.UpstreamResponse, error) {
	const op errs.Op = "relayService.CreateEventType"

	token, err := s.token(op)
	if err != nil {
		return nil, err
	}

	// The frontend posts the active flag as a string, the provider requires
	// a real boolean. Only this field is coerced, and only when present.
	if v, ok := body["active"]; ok {
		body["active"] = strictBool(v)
	}

	return s.api.CreateEventType(ctx, token, body)
}

func (s *relayService) ListEventTypes(ctx context.Context, query url.Values) (*service.UpstreamResponse, error) {
	const op errs.Op = "relayService.ListEventTypes"

	token, err := s.token(op)
	if err != nil {
		return nil, err
	}

	return s.api.ListEventTypes(ctx, token, query)
}

func (s *relayService) UpdateEventType(ctx context.Context, eventTypeID string, body map[string]any) (*service.UpstreamResponse, error) {
	const op errs.Op = "relayService.UpdateEventType"

	token, err := s.token(op)
	if err != nil {
		return nil, err
	}

	return s.api.UpdateEventType(ctx, token, eventTypeID, body)
}

func (s *relayService) UpdateAvailabilitySchedule(ctx context.Context, body map[string]any) (*service.UpstreamResponse, error) {
	const op errs.Op = "relayService.UpdateAvailabilitySchedule"

	token, err := s.token(op)
	if err != nil {
		return nil, err
	}

	return s.api.UpdateAvailabilitySchedule(ctx, token, body)
}

func (s *relayService) token(op errs.Op) (string, error) {
	token, ok := s.store.Token()
	if !ok {
		return "", errs.E(op, errs.Unauthenticated, "No token stored yet")
	}

	return token, nil
}

func strictBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "true"
	}

	return false
}

func NewRelayService(api service.SchedulerAPI, store session.Store) *relayService {
	return &relayService{
		api:   api,
		store: store,
	}
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"

	"github.com/oppmote/oppmote-backend/pkg/service/core/handlers"
	"github.com/oppmote/oppmote-backend/pkg/service/core/transport"
)

type RelayEndpoints struct {
	Me                         http.HandlerFunc
	MeFromStore                http.HandlerFunc
	Locations                  http.HandlerFunc
	CreateEventType            http.HandlerFunc
	ListEventTypes             http.HandlerFunc
	UpdateEventType            http.HandlerFunc
	UpdateAvailabilitySchedule http.HandlerFunc
}

func NewRelayEndpoints(log zerolog.Logger, h *handlers.RelayHandler) *RelayEndpoints {
	return &RelayEndpoints{
		Me:                         transport.For(h.Me).Build(log),
		MeFromStore:                transport.For(h.MeFromStore).Build(log),
		Locations:                  transport.For(h.Locations).Build(log),
		CreateEventType:            transport.For(h.CreateEventType).RequestFromJSON().Build(log),
		ListEventTypes:             transport.For(h.ListEventTypes).Build(log),
		UpdateEventType:            transport.For(h.UpdateEventType).RequestFromJSON().Build(log),
		UpdateAvailabilitySchedule: transport.For(h.UpdateAvailabilitySchedule).RequestFromJSON().Build(log),
	}
}

func NewRelayRoutes(endpoints *RelayEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Get("/me", endpoints.Me)
		router.Get("/me-from-store", endpoints.MeFromStore)
		router.Get("/locations", endpoints.Locations)
		router.Post("/create-event-type", endpoints.CreateEventType)
		router.Get("/list-event-types", endpoints.ListEventTypes)
		router.Patch("/update-event-type/{uuid}", endpoints.UpdateEventType)
		router.Patch("/update-event-availability", endpoints.UpdateAvailabilitySchedule)
	}
}

package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"

	"github.com/oppmote/oppmote-backend/pkg/service/core/handlers"
	"github.com/oppmote/oppmote-backend/pkg/service/core/transport"
)

type DemoEndpoints struct {
	Page      http.HandlerFunc
	PickColor http.HandlerFunc
}

func NewDemoEndpoints(log zerolog.Logger, h *handlers.DemoHandler) *DemoEndpoints {
	return &DemoEndpoints{
		Page:      transport.For(h.Page).Build(log),
		PickColor: transport.For(h.PickColor).Build(log),
	}
}

func NewDemoRoutes(endpoints *DemoEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Get("/", endpoints.Page)
		router.Post("/", endpoints.PickColor)
	}
}

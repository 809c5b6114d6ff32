package routes

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/rs/zerolog"

	"github.com/oppmote/oppmote-backend/pkg/service/core/handlers"
	"github.com/oppmote/oppmote-backend/pkg/service/core/transport"
)

type AuthEndpoints struct {
	Login    http.HandlerFunc
	Callback http.HandlerFunc
}

func NewAuthEndpoints(log zerolog.Logger, h *handlers.AuthHandler) *AuthEndpoints {
	return &AuthEndpoints{
		Login:    transport.For(h.Login).Build(log),
		Callback: transport.For(h.Callback).Build(log),
	}
}

func NewAuthRoutes(endpoints *AuthEndpoints) AddRoutesFn {
	return func(router chi.Router) {
		router.Get("/auth", endpoints.Login)
		router.Get("/callback", endpoints.Callback)
	}
}

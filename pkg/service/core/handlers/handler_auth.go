package handlers

import (
	"context"
	"net/http"

	"github.com/oppmote/oppmote-backend/pkg/errs"
	"github.com/oppmote/oppmote-backend/pkg/service"
	"github.com/oppmote/oppmote-backend/pkg/service/core/transport"
)

type AuthHandler struct {
	service      service.AuthService
	dashboardURL string
}

func (h *AuthHandler) Login(_ context.Context, r *http.Request, _ any) (*transport.Redirect, error) {
	return transport.NewRedirect(h.service.ConsentURL(), r), nil
}

func (h *AuthHandler) Callback(ctx context.Context, r *http.Request, _ any) (*transport.Redirect, error) {
	const op errs.Op = "AuthHandler.Callback"

	code := r.URL.Query().Get("code")
	if code == "" {
		return nil, errs.E(op, errs.InvalidRequest, "missing authorization code")
	}

	err := h.service.ExchangeCode(ctx, code)
	if err != nil {
		return nil, errs.E(op, err)
	}

	return transport.NewRedirect(h.dashboardURL, r), nil
}

func NewAuthHandler(service service.AuthService, dashboardURL string) *AuthHandler {
	return &AuthHandler{
		service:      service,
		dashboardURL: dashboardURL,
	}
}

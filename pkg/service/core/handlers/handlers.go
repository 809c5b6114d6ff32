package handlers

import (
	"github.com/oppmote/oppmote-backend/pkg/config"
	"github.com/oppmote/oppmote-backend/pkg/service/core"
)

type Handlers struct {
	AuthHandler  *AuthHandler
	RelayHandler *RelayHandler
	DemoHandler  *DemoHandler
}

func NewHandlers(s *core.Services, cfg config.Config) *Handlers {
	return &Handlers{
		AuthHandler:  NewAuthHandler(s.AuthService, cfg.DashboardPage),
		RelayHandler: NewRelayHandler(s.RelayService),
		DemoHandler:  NewDemoHandler(s.DemoService),
	}
}

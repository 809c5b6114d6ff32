package core

import "github.com/oppmote/oppmote-backend/pkg/service"

type Services struct {
	AuthService  service.AuthService
	RelayService service.RelayService
	DemoService  service.DemoService
}

func NewServices(
	authService service.AuthService,
	relayService service.RelayService,
	demoService service.DemoService,
) *Services {
	return &Services{
		AuthService:  authService,
		RelayService: relayService,
		DemoService:  demoService,
	}
}

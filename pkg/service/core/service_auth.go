package core

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/oppmote/oppmote-backend/pkg/errs"
	"github.com/oppmote/oppmote-backend/pkg/service"
	"github.com/oppmote/oppmote-backend/pkg/session"
)

// OAuth2 is the part of the oauth2.Config surface we use, kept as an
// interface so tests can fake the exchange.
type OAuth2 interface {
	AuthCodeURL(state string, opts ...oauth2.AuthCodeOption) string
	Exchange(ctx context.Context, code string, opts ...oauth2.AuthCodeOption) (*oauth2.Token, error)
}

var _ service.AuthService = &authService{}

type authService struct {
	oauth OAuth2
	store session.Store
}

// ConsentURL builds the provider authorize URL. No state parameter is sent,
// so the callback accepts any code presented to it.
func (s *authService) ConsentURL() string {
	return s.oauth.AuthCodeURL("")
}

func (s *authService) ExchangeCode(ctx context.Context, code string) error {
	const op errs.Op = "authService.ExchangeCode"

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return errs.E(op, errs.IO, err, "exchanging authorization code failed")
	}

	s.store.SetToken(token.AccessToken)

	return nil
}

func NewAuthService(oauth OAuth2, store session.Store) *authService {
	return &authService{
		oauth: oauth,
		store: store,
	}
}

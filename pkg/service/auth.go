package service

import "context"

// AuthService implements the authorization-code flow against the scheduling
// provider and stores the resulting access token.
type AuthService interface {
	// ConsentURL returns the provider authorize URL the browser is sent to.
	ConsentURL() string

	// ExchangeCode trades an authorization code for an access token and
	// stores it, replacing any previously stored token.
	ExchangeCode(ctx context.Context, code string) error
}

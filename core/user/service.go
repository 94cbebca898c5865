package user

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var ErrUnsupportedRole = errors.New("this account has no access to the portal")

type (
	// Authenticator exchanges credentials for a backend session.
	Authenticator interface {
		Login(ctx context.Context, email, password string) (SessionUser, error)
		Me(ctx context.Context) (SessionUser, error)
	}

	Service struct {
		auth       Authenticator
		validate   *validator.Validate
		translator ut.Translator
	}
)

func NewService(auth Authenticator, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{auth: auth, validate: validate, translator: translator}
}

// Login validates the credentials then authenticates them against the backend.
// Invalid credentials never reach the backend.
func (svc *Service) Login(ctx context.Context, creds Credentials) (SessionUser, error) {
	if err := creds.Validate(svc.validate, svc.translator); err != nil {
		return SessionUser{}, err
	}
	usr, err := svc.auth.Login(ctx, creds.Email, creds.Password)
	if err != nil {
		return SessionUser{}, errors.Wrap(err, "logging in")
	}
	if !usr.Role.Valid() {
		return SessionUser{}, ErrUnsupportedRole
	}
	return usr, nil
}

// Me refreshes the session user from the backend.
func (svc *Service) Me(ctx context.Context) (SessionUser, error) {
	usr, err := svc.auth.Me(ctx)
	if err != nil {
		return SessionUser{}, errors.Wrap(err, "fetching current user")
	}
	if !usr.Role.Valid() {
		return SessionUser{}, ErrUnsupportedRole
	}
	return usr, nil
}

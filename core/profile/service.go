package profile

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core/user"
)

type (
	Repository interface {
		Profile(ctx context.Context, role user.Role) (Profile, error)
		UpdateProfile(ctx context.Context, role user.Role, up UpdateProfile) (Profile, error)
	}

	Service struct {
		repo       Repository
		validate   *validator.Validate
		translator ut.Translator
	}
)

func NewService(repo Repository, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{repo: repo, validate: validate, translator: translator}
}

func (svc *Service) Get(ctx context.Context, role user.Role) (Profile, error) {
	p, err := svc.repo.Profile(ctx, role)
	return p, errors.Wrap(err, "fetching profile")
}

func (svc *Service) Update(ctx context.Context, role user.Role, up UpdateProfile) (Profile, error) {
	if err := up.Validate(svc.validate, svc.translator); err != nil {
		return Profile{}, err
	}
	p, err := svc.repo.UpdateProfile(ctx, role, up)
	return p, errors.Wrap(err, "updating profile")
}

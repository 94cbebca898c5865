package project

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core"
)

type (
	Repository interface {
		MyProject(ctx context.Context) (*Project, error)
		SupervisedProjects(ctx context.Context) ([]Project, error)
		QueryProjects(ctx context.Context) ([]Project, error)
		UpdateProjectStatus(ctx context.Context, id string, su StatusUpdate) (Project, error)
		EvaluateProject(ctx context.Context, id string, ev Evaluation) (Project, error)
	}

	Service struct {
		repo       Repository
		validate   *validator.Validate
		translator ut.Translator
	}
)

var errMissingID = core.NewValidationError(errors.New("project id is required"))

func NewService(repo Repository, validate *validator.Validate, translator ut.Translator) *Service {
	return &Service{repo: repo, validate: validate, translator: translator}
}

// Mine returns the current student's project, or nil when none was proposed yet.
func (svc *Service) Mine(ctx context.Context) (*Project, error) {
	p, err := svc.repo.MyProject(ctx)
	return p, errors.Wrap(err, "fetching my project")
}

func (svc *Service) Supervised(ctx context.Context, filter Filter) ([]Project, error) {
	list, err := svc.repo.SupervisedProjects(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching supervised projects")
	}
	filter.Clean()
	return filter.Apply(list), nil
}

func (svc *Service) Query(ctx context.Context, filter Filter) ([]Project, error) {
	list, err := svc.repo.QueryProjects(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying projects")
	}
	filter.Clean()
	return filter.Apply(list), nil
}

func (svc *Service) SetStatus(ctx context.Context, id string, su StatusUpdate) (Project, error) {
	if core.CleanString(id) == "" {
		return Project{}, errMissingID
	}
	if err := su.Validate(svc.validate, svc.translator); err != nil {
		return Project{}, err
	}
	p, err := svc.repo.UpdateProjectStatus(ctx, id, su)
	return p, errors.Wrap(err, "updating project status")
}

// Evaluate validates the marks, computes the total and submits them.
func (svc *Service) Evaluate(ctx context.Context, id string, ev Evaluation) (Project, error) {
	if core.CleanString(id) == "" {
		return Project{}, errMissingID
	}
	if err := ev.Validate(svc.validate, svc.translator); err != nil {
		return Project{}, err
	}
	p, err := svc.repo.EvaluateProject(ctx, id, ev)
	return p, errors.Wrap(err, "evaluating project")
}

package schedule

import (
	"context"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core"
)

type (
	Repository interface {
		MySchedule(ctx context.Context) (*Schedule, error)
		MyPanel(ctx context.Context) (*Panel, error)
		PanelOf(ctx context.Context, scheduleID string) (*Panel, error)
		SupervisorSchedules(ctx context.Context) ([]Schedule, error)
		QuerySchedules(ctx context.Context) ([]Schedule, error)
		CreateSchedule(ctx context.Context, ns NewSchedule) (Schedule, error)
		CompleteSchedule(ctx context.Context, id string) (Schedule, error)
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

// Mine returns the current student's presentation slot, or nil when none is booked.
func (svc *Service) Mine(ctx context.Context) (*Schedule, error) {
	s, err := svc.repo.MySchedule(ctx)
	return s, errors.Wrap(err, "fetching my schedule")
}

// MyPanel returns the evaluation panel of the current student's group, or nil.
func (svc *Service) MyPanel(ctx context.Context) (*Panel, error) {
	p, err := svc.repo.MyPanel(ctx)
	return p, errors.Wrap(err, "fetching my panel")
}

func (svc *Service) Panel(ctx context.Context, scheduleID string) (*Panel, error) {
	if scheduleID == "" {
		return nil, nil
	}
	p, err := svc.repo.PanelOf(ctx, scheduleID)
	return p, errors.Wrap(err, "fetching panel")
}

func (svc *Service) Supervised(ctx context.Context) ([]Schedule, error) {
	list, err := svc.repo.SupervisorSchedules(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching supervisor schedules")
	}
	SortByDate(list)
	return list, nil
}

func (svc *Service) Query(ctx context.Context) ([]Schedule, error) {
	list, err := svc.repo.QuerySchedules(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying schedules")
	}
	SortByDate(list)
	return list, nil
}

func (svc *Service) Create(ctx context.Context, ns NewSchedule) (Schedule, error) {
	if err := ns.Validate(svc.validate, svc.translator); err != nil {
		return Schedule{}, err
	}
	s, err := svc.repo.CreateSchedule(ctx, ns)
	return s, errors.Wrap(err, "creating schedule")
}

func (svc *Service) Complete(ctx context.Context, id string) (Schedule, error) {
	if core.CleanString(id) == "" {
		return Schedule{}, core.NewValidationError(errors.New("schedule id is required"))
	}
	s, err := svc.repo.CompleteSchedule(ctx, id)
	return s, errors.Wrap(err, "completing schedule")
}

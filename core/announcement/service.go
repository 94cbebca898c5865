package announcement

import (
	"context"
	"fmt"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/user"
)

type (
	Repository interface {
		QueryAnnouncements(ctx context.Context) ([]Announcement, error)
		CreateAnnouncement(ctx context.Context, na NewAnnouncement) (Announcement, error)
		UpdateAnnouncement(ctx context.Context, id string, ua UpdateAnnouncement) (Announcement, error)
		DeleteAnnouncement(ctx context.Context, id string) error
	}

	Service struct {
		repo       Repository
		validate   *validator.Validate
		translator ut.Translator
		mailSvc    core.EmailService
		notify     core.NotifyConfig
		logger     core.Logger
	}
)

func NewService(
	repo Repository,
	validate *validator.Validate,
	translator ut.Translator,
	mailSvc core.EmailService,
	conf *core.Config,
	logger core.Logger,
) *Service {
	return &Service{
		repo:       repo,
		validate:   validate,
		translator: translator,
		mailSvc:    mailSvc,
		notify:     conf.Notify,
		logger:     logger,
	}
}

// Query fetches every announcement, keeps those the role may read and applies the filter.
// The result is ordered newest first.
func (svc *Service) Query(ctx context.Context, role user.Role, filter Filter) ([]Announcement, error) {
	all, err := svc.repo.QueryAnnouncements(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "querying announcements")
	}
	visible := VisibleTo(role)
	list := make([]Announcement, 0, len(all))
	for _, a := range all {
		for _, aud := range visible {
			if a.TargetAudience == aud {
				list = append(list, a)
				break
			}
		}
	}
	filter.Clean()
	list = filter.Apply(list)
	SortNewestFirst(list)
	return list, nil
}

// Create validates na and creates it on the backend; invalid input is never sent.
func (svc *Service) Create(ctx context.Context, na NewAnnouncement) (Announcement, error) {
	if err := na.Validate(svc.validate, svc.translator); err != nil {
		return Announcement{}, err
	}
	a, err := svc.repo.CreateAnnouncement(ctx, na)
	if err != nil {
		return Announcement{}, errors.Wrap(err, "creating announcement")
	}
	svc.sendNotification(a)
	return a, nil
}

func (svc *Service) Update(ctx context.Context, id string, ua UpdateAnnouncement) (Announcement, error) {
	if id == "" {
		return Announcement{}, core.NewValidationError(errors.New("announcement id is required"))
	}
	if err := ua.Validate(svc.validate, svc.translator); err != nil {
		return Announcement{}, err
	}
	a, err := svc.repo.UpdateAnnouncement(ctx, id, ua)
	return a, errors.Wrap(err, "updating announcement")
}

func (svc *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return core.NewValidationError(errors.New("announcement id is required"))
	}
	return errors.Wrap(svc.repo.DeleteAnnouncement(ctx, id), "deleting announcement")
}

func (svc *Service) sendNotification(a Announcement) {
	if !svc.notify.Announcements || len(svc.notify.Recipients) == 0 {
		return
	}
	svc.logger.Debug(fmt.Sprintf("mailing announcement %s to %d recipients", a.ID, len(svc.notify.Recipients)))
	svc.mailSvc.SendMessages(&core.EmailMessage{
		Bcc:          svc.notify.Recipients,
		Subject:      a.Title,
		TemplateName: "announcement",
		TemplateData: a,
	})
}

package document

import (
	"context"
	"sort"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/trezcool/fyp/core"
)

type (
	Repository interface {
		MyDocuments(ctx context.Context) ([]Document, error)
		SubmitDocument(ctx context.Context, nd NewDocument) (Document, error)
		GroupDocuments(ctx context.Context, groupID string) ([]Document, error)
		ReviewDocument(ctx context.Context, id string, r Review) (Document, error)
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

func (svc *Service) Mine(ctx context.Context) ([]Document, error) {
	list, err := svc.repo.MyDocuments(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "fetching my documents")
	}
	sortNewestFirst(list)
	return list, nil
}

// Submit validates the upload then streams it to the backend.
func (svc *Service) Submit(ctx context.Context, nd NewDocument) (Document, error) {
	if err := nd.Validate(svc.validate, svc.translator); err != nil {
		return Document{}, err
	}
	if nd.File == nil {
		return Document{}, core.NewValidationError(nil, core.FieldError{Field: "file", Error: "please choose a file"})
	}
	doc, err := svc.repo.SubmitDocument(ctx, nd)
	return doc, errors.Wrap(err, "submitting document")
}

func (svc *Service) OfGroup(ctx context.Context, groupID string) ([]Document, error) {
	if core.CleanString(groupID) == "" {
		return nil, core.NewValidationError(errors.New("group id is required"))
	}
	list, err := svc.repo.GroupDocuments(ctx, groupID)
	if err != nil {
		return nil, errors.Wrap(err, "fetching group documents")
	}
	sortNewestFirst(list)
	return list, nil
}

func (svc *Service) Review(ctx context.Context, id string, r Review) (Document, error) {
	if core.CleanString(id) == "" {
		return Document{}, core.NewValidationError(errors.New("document id is required"))
	}
	if err := r.Validate(svc.validate, svc.translator); err != nil {
		return Document{}, err
	}
	doc, err := svc.repo.ReviewDocument(ctx, id, r)
	return doc, errors.Wrap(err, "reviewing document")
}

func sortNewestFirst(list []Document) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].SubmittedAt.After(list[j].SubmittedAt) })
}

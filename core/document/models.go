package document

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/fyp/core"
)

// Type is the deliverable a document is submitted for.
type Type string

const (
	TypeProposal    Type = "proposal"
	TypeSRS         Type = "srs"
	TypeSDD         Type = "sdd"
	TypeFinalReport Type = "final-report"
	TypeOther       Type = "other"
)

var Types = []Type{TypeProposal, TypeSRS, TypeSDD, TypeFinalReport, TypeOther}

func (t Type) Valid() bool {
	for _, tp := range Types {
		if t == tp {
			return true
		}
	}
	return false
}

func (t Type) Label() string {
	switch t {
	case TypeProposal:
		return "Proposal"
	case TypeSRS:
		return "SRS"
	case TypeSDD:
		return "SDD"
	case TypeFinalReport:
		return "Final Report"
	}
	return "Other"
}

const (
	StatusSubmitted = "submitted"
	StatusReviewed  = "reviewed"
	StatusRevision  = "revision"

	// MaxFileSize bounds uploads accepted by the portal.
	MaxFileSize = 20 << 20
)

var allowedExts = map[string]bool{".pdf": true, ".doc": true, ".docx": true, ".zip": true, ".pptx": true}

type Document struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        Type      `json:"type"`
	FileName    string    `json:"fileName"`
	URL         string    `json:"url"`
	Status      string    `json:"status"`
	Feedback    string    `json:"feedback,omitempty"`
	SubmittedBy string    `json:"submittedBy,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// NewDocument is a student upload.
type NewDocument struct {
	Title    string    `form:"title" validate:"required,notblank"`
	Type     Type      `form:"type" validate:"required,doctype"`
	FileName string    `validate:"required,docext"`
	Size     int64     `validate:"gt=0,lte=20971520"`
	File     io.Reader `validate:"-"`
}

func (nd *NewDocument) Validate(validate *validator.Validate, translator ut.Translator) error {
	nd.Title = core.CleanString(nd.Title)
	nd.Type = Type(core.CleanString(string(nd.Type), true /* lower */))
	nd.FileName = filepath.Base(core.CleanString(nd.FileName))
	if nd.FileName == "." {
		nd.FileName = ""
	}
	return core.ValidateStruct(validate, translator, nd)
}

// Review is a supervisor decision on a submitted document.
type Review struct {
	Status   string `form:"status" json:"status" validate:"required,oneof=reviewed revision"`
	Feedback string `form:"feedback" json:"feedback,omitempty"`
}

func (r *Review) Validate(validate *validator.Validate, translator ut.Translator) error {
	r.Status = core.CleanString(r.Status, true /* lower */)
	r.Feedback = core.CleanString(r.Feedback)
	return core.ValidateStruct(validate, translator, r)
}

func hasAllowedExt(name string) bool {
	return allowedExts[strings.ToLower(filepath.Ext(name))]
}

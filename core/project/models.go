package project

import (
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/present"
)

type Status string

const (
	StatusApproved Status = "approved"
	StatusPending  Status = "pending"
	StatusRejected Status = "rejected"
)

var Statuses = []Status{StatusApproved, StatusPending, StatusRejected}

func (s Status) Valid() bool {
	for _, st := range Statuses {
		if s == st {
			return true
		}
	}
	return false
}

// MaxMarks is the total a project is marked out of.
const MaxMarks = 100

// Marks is the evaluation breakdown of a project.
type Marks struct {
	Proposal       float64 `json:"proposal" form:"proposal" validate:"min=0,max=10"`
	Implementation float64 `json:"implementation" form:"implementation" validate:"min=0,max=30"`
	Documentation  float64 `json:"documentation" form:"documentation" validate:"min=0,max=15"`
	Presentation   float64 `json:"presentation" form:"presentation" validate:"min=0,max=15"`
	Github         float64 `json:"github" form:"github" validate:"min=0,max=10"`
	Final          float64 `json:"final" form:"final" validate:"min=0,max=20"`
	Total          float64 `json:"total"`
}

// Sum adds up the components.
func (m Marks) Sum() float64 {
	return m.Proposal + m.Implementation + m.Documentation + m.Presentation + m.Github + m.Final
}

// TotalMarks is the backend total when present, otherwise the sum of components.
func (m Marks) TotalMarks() float64 {
	if m.Total > 0 {
		return m.Total
	}
	return m.Sum()
}

func (m Marks) Percentage() float64 { return present.Percentage(m.TotalMarks(), MaxMarks) }

func (m Marks) Grade() string { return present.Grade(m.Percentage()) }

// MarkRow is a single labelled line of the marks table.
type MarkRow struct {
	Label    string
	Obtained float64
	Max      float64
}

func (r MarkRow) Percentage() float64 { return present.Percentage(r.Obtained, r.Max) }

// Rows returns the breakdown in display order.
func (m Marks) Rows() []MarkRow {
	return []MarkRow{
		{Label: "Proposal", Obtained: m.Proposal, Max: 10},
		{Label: "Implementation", Obtained: m.Implementation, Max: 30},
		{Label: "Documentation", Obtained: m.Documentation, Max: 15},
		{Label: "Presentation", Obtained: m.Presentation, Max: 15},
		{Label: "GitHub", Obtained: m.Github, Max: 10},
		{Label: "Final", Obtained: m.Final, Max: 20},
	}
}

type Person struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type GroupRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Project struct {
	ID                 string   `json:"id"`
	Title              string   `json:"title"`
	SelectedIdea       string   `json:"selectedIdea,omitempty"`
	Description        string   `json:"description,omitempty"`
	Status             Status   `json:"status"`
	Technologies       []string `json:"technologies"`
	Group              GroupRef `json:"group"`
	Supervisor         *Person  `json:"supervisor,omitempty"`
	Marks              *Marks   `json:"marks,omitempty"`
	EvaluationComplete bool     `json:"evaluationComplete"`
	Feedback           string   `json:"feedback,omitempty"`
}

// DisplayTitle falls back to the selected idea when the project has no title yet.
func (p Project) DisplayTitle() string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	if t := strings.TrimSpace(p.SelectedIdea); t != "" {
		return t
	}
	return "Untitled project"
}

func (p Project) SupervisorName() string {
	if p.Supervisor == nil {
		return "Not assigned"
	}
	return p.Supervisor.Name
}

// Evaluation holds the marks a supervisor submits.
type Evaluation struct {
	Marks
	Feedback string `json:"feedback,omitempty" form:"feedback"`
	Complete bool   `json:"evaluationComplete" form:"complete"`
}

func (e *Evaluation) Validate(validate *validator.Validate, translator ut.Translator) error {
	e.Feedback = core.CleanString(e.Feedback)
	if err := core.ValidateStruct(validate, translator, e); err != nil {
		return err
	}
	e.Total = e.Sum()
	return nil
}

// StatusUpdate is a supervisor decision on a proposal.
type StatusUpdate struct {
	Status   Status `json:"status" form:"status" validate:"required,projectstatus"`
	Feedback string `json:"feedback,omitempty" form:"feedback"`
}

func (su *StatusUpdate) Validate(validate *validator.Validate, translator ut.Translator) error {
	su.Status = Status(core.CleanString(string(su.Status), true /* lower */))
	su.Feedback = core.CleanString(su.Feedback)
	return core.ValidateStruct(validate, translator, su)
}

// StatusCounts tallies projects per status.
type StatusCounts struct {
	Approved int
	Pending  int
	Rejected int
	Total    int
}

func CountStatuses(list []Project) StatusCounts {
	var c StatusCounts
	for _, p := range list {
		switch p.Status {
		case StatusApproved:
			c.Approved++
		case StatusPending:
			c.Pending++
		case StatusRejected:
			c.Rejected++
		}
		c.Total++
	}
	return c
}

// Filter narrows an already-fetched list of projects.
type Filter struct {
	Status string `query:"status"`
	Search string `query:"search"`
}

func (f *Filter) Clean() {
	f.Status = core.CleanString(f.Status, true /* lower */)
	f.Search = core.CleanString(f.Search)
	if !Status(f.Status).Valid() {
		f.Status = ""
	}
}

func (f Filter) Match(p Project) bool {
	if f.Status != "" && string(p.Status) != f.Status {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(p.DisplayTitle()), term) ||
		strings.Contains(strings.ToLower(p.Group.Name), term) ||
		strings.Contains(strings.ToLower(p.SupervisorName()), term)
}

func (f Filter) Apply(list []Project) []Project {
	out := make([]Project, 0, len(list))
	for _, p := range list {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}

package announcement

import (
	"sort"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/user"
)

// Audience is the visibility scope of an announcement.
type Audience string

const (
	AudienceStudents    Audience = "students"
	AudienceSupervisors Audience = "supervisors"
	AudienceGeneral     Audience = "general"
)

var Audiences = []Audience{AudienceStudents, AudienceSupervisors, AudienceGeneral}

func (a Audience) Valid() bool {
	for _, aud := range Audiences {
		if a == aud {
			return true
		}
	}
	return false
}

func (a Audience) Label() string {
	switch a {
	case AudienceStudents:
		return "Students"
	case AudienceSupervisors:
		return "Supervisors"
	case AudienceGeneral:
		return "General"
	}
	return string(a)
}

// VisibleTo returns the audiences a role may read.
func VisibleTo(role user.Role) []Audience {
	switch role {
	case user.RoleStudent:
		return []Audience{AudienceStudents, AudienceGeneral}
	case user.RoleSupervisor:
		return []Audience{AudienceSupervisors, AudienceGeneral}
	case user.RoleCoordinator:
		return Audiences
	}
	return nil
}

type Author struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Announcement struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	TargetAudience Audience  `json:"targetAudience"`
	Department     string    `json:"department,omitempty"`
	CreatedBy      Author    `json:"createdBy"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewAnnouncement contains information needed to create a new Announcement.
type NewAnnouncement struct {
	Title          string   `form:"title" json:"title" validate:"required,notblank"`
	Content        string   `form:"content" json:"content" validate:"required,notblank"`
	TargetAudience Audience `form:"targetAudience" json:"targetAudience" validate:"required,audience"`
	Department     string   `form:"department" json:"department,omitempty"`
}

func (na *NewAnnouncement) Validate(validate *validator.Validate, translator ut.Translator) error {
	na.Title = core.CleanString(na.Title)
	na.Content = core.CleanString(na.Content)
	na.Department = core.CleanString(na.Department)
	na.TargetAudience = Audience(core.CleanString(string(na.TargetAudience), true /* lower */))
	if na.TargetAudience == "" {
		na.TargetAudience = AudienceGeneral
	}
	return core.ValidateStruct(validate, translator, na)
}

// UpdateAnnouncement defines what may be changed on an existing Announcement.
type UpdateAnnouncement struct {
	NewAnnouncement
}

// Filter narrows an already-fetched list of announcements.
type Filter struct {
	Audience string `query:"audience" form:"audience"`
	Search   string `query:"search" form:"search"`
}

func (f *Filter) Clean() {
	f.Audience = core.CleanString(f.Audience, true /* lower */)
	f.Search = core.CleanString(f.Search)
	if f.Audience == "all" {
		f.Audience = ""
	}
}

func (f Filter) IsEmpty() bool {
	return f.Audience == "" && f.Search == ""
}

// Match applies AND on the audience and the case-insensitive title/content search.
func (f Filter) Match(a Announcement) bool {
	if f.Audience != "" && string(a.TargetAudience) != f.Audience {
		return false
	}
	if f.Search != "" {
		term := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(a.Title), term) && !strings.Contains(strings.ToLower(a.Content), term) {
			return false
		}
	}
	return true
}

func (f Filter) Apply(list []Announcement) []Announcement {
	out := make([]Announcement, 0, len(list))
	for _, a := range list {
		if f.Match(a) {
			out = append(out, a)
		}
	}
	return out
}

// Counts tallies announcements per audience.
func Counts(list []Announcement) map[Audience]int {
	counts := make(map[Audience]int, len(Audiences))
	for _, a := range list {
		counts[a.TargetAudience]++
	}
	return counts
}

// SortNewestFirst orders announcements by creation time, newest first.
func SortNewestFirst(list []Announcement) {
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
}

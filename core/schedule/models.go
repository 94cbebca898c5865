package schedule

import (
	"sort"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/fyp/core"
)

type PanelMember struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	Designation string `json:"designation,omitempty"`
	Role        string `json:"role,omitempty"` // e.g. chair, examiner
}

type Panel struct {
	ID      string        `json:"id,omitempty"`
	Name    string        `json:"name,omitempty"`
	Members []PanelMember `json:"members"`
}

type GroupRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Schedule struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	TimeSlot    string    `json:"timeSlot"`
	Room        string    `json:"room"`
	Department  string    `json:"department,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	IsCompleted bool      `json:"isCompleted"`
	Group       GroupRef  `json:"group"`
	Panel       *Panel    `json:"panel,omitempty"`
}

// Status is the badge label of the schedule.
func (s Schedule) Status() string {
	if s.IsCompleted {
		return "completed"
	}
	return "scheduled"
}

// IsUpcoming reports whether the presentation has not happened yet relative to now.
func (s Schedule) IsUpcoming(now time.Time) bool {
	if s.IsCompleted {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, s.Date.Location())
	return !s.Date.Before(today)
}

// SortByDate orders schedules by date ascending.
func SortByDate(list []Schedule) {
	sort.SliceStable(list, func(i, j int) bool { return list[i].Date.Before(list[j].Date) })
}

// Upcoming returns the pending schedules from now on, soonest first.
func Upcoming(list []Schedule, now time.Time) []Schedule {
	out := make([]Schedule, 0, len(list))
	for _, s := range list {
		if s.IsUpcoming(now) {
			out = append(out, s)
		}
	}
	SortByDate(out)
	return out
}

// NewSchedule is submitted by the coordinator to book a presentation slot.
type NewSchedule struct {
	GroupID    string   `form:"groupId" json:"groupId" validate:"required"`
	Date       string   `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot   string   `form:"timeSlot" json:"timeSlot" validate:"required,notblank"`
	Room       string   `form:"room" json:"room" validate:"required,notblank"`
	Department string   `form:"department" json:"department,omitempty"`
	Notes      string   `form:"notes" json:"notes,omitempty"`
	PanelIDs   []string `form:"panel" json:"panelMembers" validate:"omitempty,dive,required"`
}

func (ns *NewSchedule) Validate(validate *validator.Validate, translator ut.Translator) error {
	ns.GroupID = core.CleanString(ns.GroupID)
	ns.Date = core.CleanString(ns.Date)
	ns.TimeSlot = core.CleanString(ns.TimeSlot)
	ns.Room = core.CleanString(ns.Room)
	ns.Department = core.CleanString(ns.Department)
	ns.Notes = core.CleanString(ns.Notes)
	return core.ValidateStruct(validate, translator, ns)
}

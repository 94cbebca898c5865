package group

import (
	"sort"
	"strings"

	"github.com/trezcool/fyp/core"
)

type Member struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	RollNumber string `json:"rollNumber,omitempty"`
	Department string `json:"department,omitempty"`
}

// Supervisor is a faculty member as listed for assignment, with capacity counters.
type Supervisor struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Email               string `json:"email"`
	Department          string `json:"department,omitempty"`
	Designation         string `json:"designation,omitempty"`
	MaxStudents         int    `json:"maxStudents"`
	CurrentStudentCount int    `json:"currentStudentCount"`
	AvailableSlots      int    `json:"availableSlots"`
}

// HasCapacity reports whether the supervisor can take another group.
func (s Supervisor) HasCapacity() bool {
	if s.AvailableSlots > 0 {
		return true
	}
	return s.MaxStudents > 0 && s.CurrentStudentCount < s.MaxStudents
}

type ProjectSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

type Group struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Leader             *Member         `json:"leader,omitempty"`
	Members            []Member        `json:"members"`
	Department         string          `json:"department,omitempty"`
	AssignedSupervisor *Supervisor     `json:"assignedSupervisor,omitempty"`
	Project            *ProjectSummary `json:"project,omitempty"`
}

// DisplayMember is a Member as shown in member lists.
type DisplayMember struct {
	Member
	IsLeader bool
}

// DisplayMembers merges the leader and the members into a single list
// deduplicated by id. The leader comes first and is tagged.
func (g Group) DisplayMembers() []DisplayMember {
	out := make([]DisplayMember, 0, len(g.Members)+1)
	seen := make(map[string]struct{}, len(g.Members)+1)
	if g.Leader != nil {
		out = append(out, DisplayMember{Member: *g.Leader, IsLeader: true})
		seen[memberKey(*g.Leader)] = struct{}{}
	}
	for _, m := range g.Members {
		key := memberKey(m)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, DisplayMember{Member: m})
	}
	return out
}

// memberKey falls back to the email for members the backend sent without an id.
func memberKey(m Member) string {
	if m.ID != "" {
		return m.ID
	}
	return "email:" + strings.ToLower(m.Email)
}

func (g Group) Size() int { return len(g.DisplayMembers()) }

func (g Group) HasSupervisor() bool { return g.AssignedSupervisor != nil && g.AssignedSupervisor.ID != "" }

func (g Group) LeaderName() string {
	if g.Leader == nil {
		return "-"
	}
	return g.Leader.Name
}

const (
	SupervisorAssigned   = "assigned"
	SupervisorUnassigned = "unassigned"
)

// Filter narrows an already-fetched list of groups.
type Filter struct {
	Search     string `query:"search"`
	Supervisor string `query:"supervisor"` // "", assigned, unassigned
	Department string `query:"department"`
}

func (f *Filter) Clean() {
	f.Search = core.CleanString(f.Search)
	f.Supervisor = core.CleanString(f.Supervisor, true /* lower */)
	f.Department = core.CleanString(f.Department)
	if f.Supervisor != SupervisorAssigned && f.Supervisor != SupervisorUnassigned {
		f.Supervisor = ""
	}
}

// Match searches the group name, the project title and every member name case-insensitively.
func (f Filter) Match(g Group) bool {
	switch f.Supervisor {
	case SupervisorAssigned:
		if !g.HasSupervisor() {
			return false
		}
	case SupervisorUnassigned:
		if g.HasSupervisor() {
			return false
		}
	}
	if f.Department != "" && !strings.EqualFold(f.Department, g.Department) {
		return false
	}
	if f.Search == "" {
		return true
	}
	term := strings.ToLower(f.Search)
	if strings.Contains(strings.ToLower(g.Name), term) {
		return true
	}
	if g.Project != nil && strings.Contains(strings.ToLower(g.Project.Title), term) {
		return true
	}
	for _, m := range g.DisplayMembers() {
		if strings.Contains(strings.ToLower(m.Name), term) {
			return true
		}
	}
	return false
}

func (f Filter) Apply(list []Group) []Group {
	out := make([]Group, 0, len(list))
	for _, g := range list {
		if f.Match(g) {
			out = append(out, g)
		}
	}
	return out
}

// SortSupervisorsByAvailability puts supervisors with the most free slots first.
func SortSupervisorsByAvailability(list []Supervisor) {
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].AvailableSlots != list[j].AvailableSlots {
			return list[i].AvailableSlots > list[j].AvailableSlots
		}
		return list[i].Name < list[j].Name
	})
}

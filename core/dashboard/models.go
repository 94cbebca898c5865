package dashboard

import (
	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/profile"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
)

// recentLimit bounds the short lists shown on dashboards.
const recentLimit = 5

// Student is the payload of the backend student dashboard endpoint.
type Student struct {
	Student       profile.Profile             `json:"student"`
	Group         *group.Group                `json:"group,omitempty"`
	Project       *project.Project            `json:"project,omitempty"`
	Schedule      *schedule.Schedule          `json:"schedule,omitempty"`
	Announcements []announcement.Announcement `json:"announcements"`
}

// Milestones lists the FYP steps and whether the student reached them.
func (s Student) Milestones() []Milestone {
	var approved, evaluated, presented bool
	if s.Project != nil {
		approved = s.Project.Status == project.StatusApproved
		evaluated = s.Project.EvaluationComplete
	}
	if s.Schedule != nil {
		presented = s.Schedule.IsCompleted
	}
	return []Milestone{
		{Label: "Join a group", Done: s.Group != nil},
		{Label: "Supervisor assigned", Done: s.Group != nil && s.Group.HasSupervisor()},
		{Label: "Proposal approved", Done: approved},
		{Label: "Presentation scheduled", Done: s.Schedule != nil},
		{Label: "Presentation done", Done: presented},
		{Label: "Evaluation complete", Done: evaluated},
	}
}

// Progress is the share of milestones done, in percent.
func (s Student) Progress() int {
	ms := s.Milestones()
	var done int
	for _, m := range ms {
		if m.Done {
			done++
		}
	}
	return done * 100 / len(ms)
}

type Milestone struct {
	Label string
	Done  bool
}

type Supervisor struct {
	Profile            profile.Profile
	Groups             []group.Group
	Projects           project.StatusCounts
	PendingEvaluations int
	Upcoming           []schedule.Schedule
}

type CoordinatorStats struct {
	TotalGroups          int
	GroupsWithSupervisor int
	GroupsWithout        int
	TotalStudents        int
	TotalSupervisors     int
	AvailableSupervisors int
	Projects             project.StatusCounts
	EvaluatedProjects    int
	Announcements        map[announcement.Audience]int
}

// AssignedPercent is the share of groups that have a supervisor.
func (s CoordinatorStats) AssignedPercent() int {
	if s.TotalGroups == 0 {
		return 0
	}
	return s.GroupsWithSupervisor * 100 / s.TotalGroups
}

type Coordinator struct {
	Stats               CoordinatorStats
	UnassignedGroups    []group.Group
	RecentAnnouncements []announcement.Announcement
}

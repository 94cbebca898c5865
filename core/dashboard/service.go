package dashboard

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/profile"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
	"github.com/trezcool/fyp/core/user"
)

var nowFunc = time.Now // mockable

type (
	Repository interface {
		StudentDashboard(ctx context.Context) (Student, error)
	}

	Service struct {
		repo          Repository
		groups        *group.Service
		projects      *project.Service
		schedules     *schedule.Service
		announcements *announcement.Service
		profiles      *profile.Service
	}
)

func NewService(
	repo Repository,
	groups *group.Service,
	projects *project.Service,
	schedules *schedule.Service,
	announcements *announcement.Service,
	profiles *profile.Service,
) *Service {
	return &Service{
		repo:          repo,
		groups:        groups,
		projects:      projects,
		schedules:     schedules,
		announcements: announcements,
		profiles:      profiles,
	}
}

// Student returns the backend-built student dashboard, trimming announcements to the latest few.
func (svc *Service) Student(ctx context.Context) (Student, error) {
	d, err := svc.repo.StudentDashboard(ctx)
	if err != nil {
		return Student{}, errors.Wrap(err, "fetching student dashboard")
	}
	announcement.SortNewestFirst(d.Announcements)
	d.Announcements = firstN(d.Announcements, recentLimit)
	return d, nil
}

// Supervisor fetches the profile, groups, projects and schedules concurrently.
// The first failure cancels the remaining fetches.
func (svc *Service) Supervisor(ctx context.Context) (Supervisor, error) {
	var (
		d         Supervisor
		projects  []project.Project
		schedules []schedule.Schedule
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		d.Profile, err = svc.profiles.Get(gctx, user.RoleSupervisor)
		return err
	})
	g.Go(func() (err error) {
		d.Groups, err = svc.groups.Supervised(gctx)
		return err
	})
	g.Go(func() (err error) {
		projects, err = svc.projects.Supervised(gctx, project.Filter{})
		return err
	})
	g.Go(func() (err error) {
		schedules, err = svc.schedules.Supervised(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return Supervisor{}, errors.Wrap(err, "loading supervisor dashboard")
	}

	d.Projects = project.CountStatuses(projects)
	for _, p := range projects {
		if p.Status == project.StatusApproved && !p.EvaluationComplete {
			d.PendingEvaluations++
		}
	}
	d.Upcoming = firstN(schedule.Upcoming(schedules, nowFunc()), recentLimit)
	return d, nil
}

// Coordinator fetches groups, supervisors, projects and announcements concurrently
// and derives the department-wide counters from them.
func (svc *Service) Coordinator(ctx context.Context) (Coordinator, error) {
	var (
		groups      []group.Group
		supervisors []group.Supervisor
		projects    []project.Project
		anns        []announcement.Announcement
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		groups, err = svc.groups.Query(gctx, group.Filter{})
		return err
	})
	g.Go(func() (err error) {
		supervisors, err = svc.groups.Supervisors(gctx)
		return err
	})
	g.Go(func() (err error) {
		projects, err = svc.projects.Query(gctx, project.Filter{})
		return err
	})
	g.Go(func() (err error) {
		anns, err = svc.announcements.Query(gctx, user.RoleCoordinator, announcement.Filter{})
		return err
	})
	if err := g.Wait(); err != nil {
		return Coordinator{}, errors.Wrap(err, "loading coordinator dashboard")
	}

	return Coordinator{
		Stats:               coordinatorStats(groups, supervisors, projects, anns),
		UnassignedGroups:    firstN(group.Filter{Supervisor: group.SupervisorUnassigned}.Apply(groups), recentLimit),
		RecentAnnouncements: firstN(anns, recentLimit),
	}, nil
}

func coordinatorStats(
	groups []group.Group,
	supervisors []group.Supervisor,
	projects []project.Project,
	anns []announcement.Announcement,
) CoordinatorStats {
	stats := CoordinatorStats{
		TotalGroups:      len(groups),
		TotalSupervisors: len(supervisors),
		Projects:         project.CountStatuses(projects),
		Announcements:    announcement.Counts(anns),
	}
	for _, g := range groups {
		if g.HasSupervisor() {
			stats.GroupsWithSupervisor++
		} else {
			stats.GroupsWithout++
		}
		stats.TotalStudents += g.Size()
	}
	for _, s := range supervisors {
		if s.HasCapacity() {
			stats.AvailableSupervisors++
		}
	}
	for _, p := range projects {
		if p.EvaluationComplete {
			stats.EvaluatedProjects++
		}
	}
	return stats
}

func firstN[T any](list []T, n int) []T {
	if len(list) > n {
		return list[:n]
	}
	return list
}

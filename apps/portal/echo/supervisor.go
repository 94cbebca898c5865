package echoportal

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/fyp/core/document"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
	"github.com/trezcool/fyp/core/user"
)

var errGroupNotSupervised = errors.New("This group is not supervised by you")

type supervisorProjectsPage struct {
	Projects []project.Project
	Counts   project.StatusCounts
	Filter   project.Filter
	Statuses []project.Status
}

type groupDocumentsPage struct {
	Group     *group.Group
	Documents []document.Document
}

type schedulesPage struct {
	Schedules []schedule.Schedule
	Groups    []group.Group      // coordinator only
	Panel     []group.Supervisor // coordinator only
	CanManage bool
}

func bindProjectFilter(ctx echo.Context) (project.Filter, error) {
	var filter project.Filter
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, &filter); err != nil {
		return filter, errors.Wrap(err, "binding to project.Filter")
	}
	filter.Clean()
	return filter, nil
}

func (h *handler) registerSupervisorPortal(g *echo.Group) {
	base := user.RoleSupervisor.Home()

	h.page(g, base, "", "Dashboard", "supervisor-dashboard", func(ctx echo.Context) (interface{}, error) {
		return h.deps.DashboardSvc.Supervisor(ctx.Request().Context())
	})

	h.page(g, base, "/groups", "My Groups", "supervisor-groups", func(ctx echo.Context) (interface{}, error) {
		return h.deps.GroupSvc.Supervised(ctx.Request().Context())
	})

	groupDocs := h.page(g, base, "/groups/:gid/documents", "Group Documents", "group-documents", h.groupDocumentsLoader)
	g.POST("/groups/:gid/documents/:id/review", func(ctx echo.Context) error {
		var r document.Review
		if err := ctx.Bind(&r); err != nil {
			return errors.Wrap(err, "binding to Review")
		}
		if _, err := h.deps.DocumentSvc.Review(ctx.Request().Context(), ctx.Param("id"), r); err != nil {
			return h.errorToast(ctx, err)
		}
		return h.refreshWithToast(ctx, groupDocs, "Review saved")
	})

	projects := h.page(g, base, "/projects", "Projects", "supervisor-projects", func(ctx echo.Context) (interface{}, error) {
		filter, err := bindProjectFilter(ctx)
		if err != nil {
			return nil, err
		}
		list, err := h.deps.ProjectSvc.Supervised(ctx.Request().Context(), project.Filter{})
		if err != nil {
			return nil, err
		}
		return supervisorProjectsPage{
			Projects: filter.Apply(list),
			Counts:   project.CountStatuses(list),
			Filter:   filter,
			Statuses: project.Statuses,
		}, nil
	})
	g.POST("/projects/:id/status", func(ctx echo.Context) error {
		var su project.StatusUpdate
		if err := ctx.Bind(&su); err != nil {
			return errors.Wrap(err, "binding to StatusUpdate")
		}
		p, err := h.deps.ProjectSvc.SetStatus(ctx.Request().Context(), ctx.Param("id"), su)
		if err != nil {
			return h.errorToast(ctx, err)
		}
		return h.refreshWithToast(ctx, projects, "Project "+string(p.Status))
	})
	g.POST("/projects/:id/marks", func(ctx echo.Context) error {
		var ev project.Evaluation
		if err := ctx.Bind(&ev); err != nil {
			return h.errorToast(ctx, errors.New("Marks must be numbers"))
		}
		if _, err := h.deps.ProjectSvc.Evaluate(ctx.Request().Context(), ctx.Param("id"), ev); err != nil {
			return h.errorToast(ctx, err)
		}
		return h.refreshWithToast(ctx, projects, "Evaluation saved")
	})

	h.page(g, base, "/schedules", "Schedules", "schedules", func(ctx echo.Context) (interface{}, error) {
		list, err := h.deps.ScheduleSvc.Supervised(ctx.Request().Context())
		if err != nil {
			return nil, err
		}
		return schedulesPage{Schedules: list}, nil
	})

	h.page(g, base, "/announcements", "Announcements", "announcements", h.announcementsLoader(user.RoleSupervisor))
	h.registerProfile(g, user.RoleSupervisor)
}

// groupDocumentsLoader fetches the supervised group and its documents concurrently.
func (h *handler) groupDocumentsLoader(ctx echo.Context) (interface{}, error) {
	groupID := ctx.Param("gid")
	var (
		page   groupDocumentsPage
		groups []group.Group
	)
	eg, ectx := errgroup.WithContext(ctx.Request().Context())
	eg.Go(func() (err error) {
		groups, err = h.deps.GroupSvc.Supervised(ectx)
		return err
	})
	eg.Go(func() (err error) {
		page.Documents, err = h.deps.DocumentSvc.OfGroup(ectx, groupID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == groupID {
			page.Group = &groups[i]
			break
		}
	}
	if page.Group == nil {
		return nil, errGroupNotSupervised
	}
	return page, nil
}

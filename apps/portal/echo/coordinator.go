package echoportal

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
	"github.com/trezcool/fyp/core/user"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type coordinatorGroupsPage struct {
	Groups      []group.Group
	Supervisors []group.Supervisor
	Filter      group.Filter
}

type coordinatorProjectsPage struct {
	Projects []project.Project
	Counts   project.StatusCounts
	Filter   project.Filter
	Statuses []project.Status
}

type assignment struct {
	SupervisorID string `form:"supervisorId"`
	Change       bool   `form:"change"`
}

func (h *handler) registerCoordinatorPortal(g *echo.Group) {
	base := user.RoleCoordinator.Home()

	h.page(g, base, "", "Dashboard", "coordinator-dashboard", func(ctx echo.Context) (interface{}, error) {
		return h.deps.DashboardSvc.Coordinator(ctx.Request().Context())
	})

	groups := h.page(g, base, "/groups", "Groups", "coordinator-groups", h.coordinatorGroupsLoader)
	g.POST("/groups/:id/supervisor", func(ctx echo.Context) error {
		var a assignment
		if err := ctx.Bind(&a); err != nil {
			return errors.Wrap(err, "binding to assignment")
		}
		grp, err := h.deps.GroupSvc.Assign(ctx.Request().Context(), ctx.Param("id"), a.SupervisorID, a.Change)
		if err != nil {
			return h.errorToast(ctx, err)
		}
		msg := fmt.Sprintf("Supervisor assigned to %s", grp.Name)
		if a.Change {
			msg = fmt.Sprintf("Supervisor of %s changed", grp.Name)
		}
		return h.refreshWithToast(ctx, groups, msg)
	})

	announcements := h.page(g, base, "/announcements", "Announcements", "announcements", h.announcementsLoader(user.RoleCoordinator))
	g.POST("/announcements", func(ctx echo.Context) error {
		var na announcement.NewAnnouncement
		if err := ctx.Bind(&na); err != nil {
			return errors.Wrap(err, "binding to NewAnnouncement")
		}
		if _, err := h.deps.AnnouncementSvc.Create(ctx.Request().Context(), na); err != nil {
			return h.errorToast(ctx, err)
		}
		return h.refreshWithToast(ctx, announcements, "Announcement created")
	})
	g.PUT("/announcements/:id", func(ctx echo.Context) error {
		var ua announcement.UpdateAnnouncement
		if err := ctx.Bind(&ua); err != nil {
			return errors.Wrap(err, "binding to UpdateAnnouncement")
		}
		if _, err := h.deps.AnnouncementSvc.Update(ctx.Request().Context(), ctx.Param("id"), ua); err != nil {
			return h.errorToast(ctx, err)
		}
		return h.refreshWithToast(ctx, announcements, "Announcement updated")
	})
	g.DELETE("/announcements/:id", func(ctx echo.Context) error {
		if err := h.deps.AnnouncementSvc.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
			return h.errorToast(ctx, err)
		}
		return h.refreshWithToast(ctx, announcements, "Announcement deleted")
	})

	schedules := h.page(g, base, "/schedules", "Schedules", "schedules", h.coordinatorSchedulesLoader)
	g.POST("/schedules", func(ctx echo.Context) error {
		var ns schedule.NewSchedule
		if err := ctx.Bind(&ns); err != nil {
			return errors.Wrap(err, "binding to NewSchedule")
		}
		if _, err := h.deps.ScheduleSvc.Create(ctx.Request().Context(), ns); err != nil {
			return h.errorToast(ctx, err)
		}
		return h.refreshWithToast(ctx, schedules, "Presentation scheduled")
	})
	g.POST("/schedules/:id/complete", func(ctx echo.Context) error {
		if _, err := h.deps.ScheduleSvc.Complete(ctx.Request().Context(), ctx.Param("id")); err != nil {
			return h.errorToast(ctx, err)
		}
		return h.refreshWithToast(ctx, schedules, "Presentation marked as completed")
	})
	g.GET("/schedules/:id/panel", func(ctx echo.Context) error {
		panel, err := h.deps.ScheduleSvc.Panel(ctx.Request().Context(), ctx.Param("id"))
		if err != nil {
			return h.errorToast(ctx, err)
		}
		return ctx.Render(http.StatusOK, "panel", panel)
	})

	h.page(g, base, "/projects", "Projects", "coordinator-projects", func(ctx echo.Context) (interface{}, error) {
		filter, err := bindProjectFilter(ctx)
		if err != nil {
			return nil, err
		}
		list, err := h.deps.ProjectSvc.Query(ctx.Request().Context(), project.Filter{})
		if err != nil {
			return nil, err
		}
		return coordinatorProjectsPage{
			Projects: filter.Apply(list),
			Counts:   project.CountStatuses(list),
			Filter:   filter,
			Statuses: project.Statuses,
		}, nil
	})
	g.GET("/projects/export", h.exportMarks)

	h.registerProfile(g, user.RoleCoordinator)
}

// coordinatorGroupsLoader fetches groups and supervisors concurrently.
func (h *handler) coordinatorGroupsLoader(ctx echo.Context) (interface{}, error) {
	var page coordinatorGroupsPage
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, &page.Filter); err != nil {
		return nil, errors.Wrap(err, "binding to group.Filter")
	}
	page.Filter.Clean()

	eg, ectx := errgroup.WithContext(ctx.Request().Context())
	eg.Go(func() (err error) {
		page.Groups, err = h.deps.GroupSvc.Query(ectx, page.Filter)
		return err
	})
	eg.Go(func() (err error) {
		page.Supervisors, err = h.deps.GroupSvc.Supervisors(ectx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

func (h *handler) coordinatorSchedulesLoader(ctx echo.Context) (interface{}, error) {
	page := schedulesPage{CanManage: true}
	eg, ectx := errgroup.WithContext(ctx.Request().Context())
	eg.Go(func() (err error) {
		page.Schedules, err = h.deps.ScheduleSvc.Query(ectx)
		return err
	})
	eg.Go(func() (err error) {
		page.Groups, err = h.deps.GroupSvc.Query(ectx, group.Filter{})
		return err
	})
	eg.Go(func() (err error) {
		page.Panel, err = h.deps.GroupSvc.Supervisors(ectx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return page, nil
}

// exportMarks sends the marks of every project, filtered like the projects page, as an XLSX workbook.
func (h *handler) exportMarks(ctx echo.Context) error {
	filter, err := bindProjectFilter(ctx)
	if err != nil {
		return err
	}
	list, err := h.deps.ProjectSvc.Query(ctx.Request().Context(), filter)
	if err != nil {
		return errors.Wrap(err, "exporting marks")
	}

	var buff bytes.Buffer
	if err = project.ExportMarks(&buff, list); err != nil {
		return err
	}
	fname := fmt.Sprintf("fyp-marks-%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fname))
	return ctx.Blob(http.StatusOK, xlsxContentType, buff.Bytes())
}

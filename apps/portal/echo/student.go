package echoportal

import (
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/trezcool/fyp/core/document"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
	"github.com/trezcool/fyp/core/user"
)

type studentProjectPage struct {
	Project *project.Project
	Rows    []project.MarkRow
}

type studentSchedulePage struct {
	Schedule *schedule.Schedule
	Panel    *schedule.Panel
}

type documentsPage struct {
	Documents []document.Document
	Types     []document.Type
	GroupID   string
}

func (h *handler) registerStudentPortal(g *echo.Group) {
	base := user.RoleStudent.Home()

	h.page(g, base, "", "Dashboard", "student-dashboard", func(ctx echo.Context) (interface{}, error) {
		return h.deps.DashboardSvc.Student(ctx.Request().Context())
	})

	h.page(g, base, "/group", "My Group", "student-group", func(ctx echo.Context) (interface{}, error) {
		return h.deps.GroupSvc.Mine(ctx.Request().Context())
	})

	h.page(g, base, "/project", "My Project", "student-project", func(ctx echo.Context) (interface{}, error) {
		p, err := h.deps.ProjectSvc.Mine(ctx.Request().Context())
		if err != nil {
			return nil, err
		}
		page := studentProjectPage{Project: p}
		if p != nil && p.Marks != nil {
			page.Rows = p.Marks.Rows()
		}
		return page, nil
	})

	docs := h.page(g, base, "/documents", "Documents", "student-documents", func(ctx echo.Context) (interface{}, error) {
		list, err := h.deps.DocumentSvc.Mine(ctx.Request().Context())
		if err != nil {
			return nil, err
		}
		return documentsPage{Documents: list, Types: document.Types}, nil
	})
	g.POST("/documents", func(ctx echo.Context) error {
		nd, closeFile, err := bindNewDocument(ctx)
		if err != nil {
			return h.errorToast(ctx, err)
		}
		defer closeFile()
		if _, err = h.deps.DocumentSvc.Submit(ctx.Request().Context(), nd); err != nil {
			return h.errorToast(ctx, err)
		}
		return h.refreshWithToast(ctx, docs, "Document submitted")
	})

	h.page(g, base, "/schedule", "Schedule", "student-schedule", func(ctx echo.Context) (interface{}, error) {
		var page studentSchedulePage
		eg, ectx := errgroup.WithContext(ctx.Request().Context())
		eg.Go(func() (err error) {
			page.Schedule, err = h.deps.ScheduleSvc.Mine(ectx)
			return err
		})
		eg.Go(func() (err error) {
			page.Panel, err = h.deps.ScheduleSvc.MyPanel(ectx)
			return err
		})
		if err := eg.Wait(); err != nil {
			return nil, err
		}
		if page.Panel == nil && page.Schedule != nil {
			page.Panel = page.Schedule.Panel
		}
		return page, nil
	})

	h.page(g, base, "/announcements", "Announcements", "announcements", h.announcementsLoader(user.RoleStudent))
	h.registerProfile(g, user.RoleStudent)
}

// bindNewDocument reads the multipart upload; the returned func closes the file.
func bindNewDocument(ctx echo.Context) (document.NewDocument, func(), error) {
	nd := document.NewDocument{
		Title: ctx.FormValue("title"),
		Type:  document.Type(ctx.FormValue("type")),
	}
	fh, err := ctx.FormFile("file")
	if err != nil {
		return nd, nil, errors.New("Please choose a file to upload")
	}
	f, err := fh.Open()
	if err != nil {
		return nd, nil, errors.Wrap(err, "opening upload")
	}
	nd.FileName = fh.Filename
	nd.Size = fh.Size
	nd.File = f
	return nd, func() { _ = f.Close() }, nil
}

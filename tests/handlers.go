package testutil

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/dashboard"
	"github.com/trezcool/fyp/core/document"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/profile"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
	"github.com/trezcool/fyp/core/user"
)

func notFound(c echo.Context, what string) error {
	return c.JSON(http.StatusNotFound, message(http.StatusNotFound, what+" not found"))
}

func badRequest(c echo.Context, msg string) error {
	return c.JSON(http.StatusBadRequest, message(http.StatusBadRequest, msg))
}

func (b *FakeBackend) login(c echo.Context) error {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&creds); err != nil {
		return badRequest(c, "invalid payload")
	}
	b.mu.Lock()
	acc, ok := b.accounts[creds.Email]
	b.mu.Unlock()
	if !ok || acc.password != creds.Password {
		return c.JSON(http.StatusUnauthorized, message(http.StatusUnauthorized, "Invalid email or password"))
	}
	return c.JSON(http.StatusOK, envelope(echo.Map{"token": b.TokenFor(creds.Email), "user": acc.user}))
}

func (b *FakeBackend) me(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, envelope(b.accounts[c.Get("email").(string)].user))
}

func (b *FakeBackend) studentDashboard(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	d := dashboard.Student{Student: b.Profiles[user.RoleStudent], Announcements: b.Announcements}
	if len(b.Groups) > 0 {
		d.Group = &b.Groups[0]
	}
	if len(b.Projects) > 0 {
		d.Project = &b.Projects[0]
	}
	if len(b.Schedules) > 0 {
		d.Schedule = &b.Schedules[0]
	}
	return c.JSON(http.StatusOK, nested(d))
}

func (b *FakeBackend) listAnnouncements(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, envelope(b.Announcements))
}

func (b *FakeBackend) createAnnouncement(c echo.Context) error {
	var na announcement.NewAnnouncement
	if err := c.Bind(&na); err != nil || na.Title == "" {
		return badRequest(c, "Title and content are required")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	author := b.accounts[c.Get("email").(string)].user
	a := announcement.Announcement{
		ID:             b.nextID("a"),
		Title:          na.Title,
		Content:        na.Content,
		TargetAudience: na.TargetAudience,
		Department:     na.Department,
		CreatedBy:      announcement.Author{ID: author.ID, Name: author.Name, Email: author.Email},
		CreatedAt:      time.Now().UTC(),
	}
	b.Announcements = append(b.Announcements, a)
	return c.JSON(http.StatusCreated, envelope(a))
}

func (b *FakeBackend) updateAnnouncement(c echo.Context) error {
	var ua announcement.UpdateAnnouncement
	if err := c.Bind(&ua); err != nil {
		return badRequest(c, "invalid payload")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, a := range b.Announcements {
		if a.ID == c.Param("id") {
			a.Title, a.Content, a.TargetAudience, a.Department = ua.Title, ua.Content, ua.TargetAudience, ua.Department
			b.Announcements[i] = a
			return c.JSON(http.StatusOK, envelope(a))
		}
	}
	return notFound(c, "Announcement")
}

func (b *FakeBackend) deleteAnnouncement(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, a := range b.Announcements {
		if a.ID == c.Param("id") {
			b.Announcements = append(b.Announcements[:i], b.Announcements[i+1:]...)
			return c.JSON(http.StatusOK, echo.Map{"success": true, "message": "Announcement removed"})
		}
	}
	return notFound(c, "Announcement")
}

func (b *FakeBackend) listGroups(withoutSupervisor bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		b.mu.Lock()
		defer b.mu.Unlock()
		list := make([]group.Group, 0, len(b.Groups))
		for _, g := range b.Groups {
			if withoutSupervisor && g.AssignedSupervisor != nil {
				continue
			}
			list = append(list, g)
		}
		return c.JSON(http.StatusOK, nested(list))
	}
}

func (b *FakeBackend) assignSupervisor(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	var sup *group.Supervisor
	for i := range b.Supervisors {
		if b.Supervisors[i].ID == c.Param("sid") {
			s := b.Supervisors[i]
			sup = &s
		}
	}
	if sup == nil {
		return notFound(c, "Supervisor")
	}
	for i, g := range b.Groups {
		if g.ID == c.Param("gid") {
			g.AssignedSupervisor = sup
			b.Groups[i] = g
			return c.JSON(http.StatusOK, envelope(g))
		}
	}
	return notFound(c, "Group")
}

func (b *FakeBackend) myGroup(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	email := c.Get("email").(string)
	for _, g := range b.Groups {
		for _, m := range g.Members {
			if m.Email == email {
				return c.JSON(http.StatusOK, envelope(g))
			}
		}
	}
	return notFound(c, "Group")
}

func (b *FakeBackend) supervisedGroups(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	email := c.Get("email").(string)
	list := make([]group.Group, 0, len(b.Groups))
	for _, g := range b.Groups {
		if g.AssignedSupervisor != nil && g.AssignedSupervisor.Email == email {
			list = append(list, g)
		}
	}
	return c.JSON(http.StatusOK, envelope(list))
}

func (b *FakeBackend) listSupervisors(c echo.Context) error {
	if c.QueryParam("role") != string(user.RoleSupervisor) {
		return badRequest(c, "unsupported role filter")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	list := b.Supervisors
	if limit, err := strconv.Atoi(c.QueryParam("limit")); err == nil && limit < len(list) {
		list = list[:limit]
	}
	return c.JSON(http.StatusOK, envelope(list))
}

func (b *FakeBackend) myProject(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.Projects) == 0 {
		return notFound(c, "Project")
	}
	return c.JSON(http.StatusOK, envelope(b.Projects[0]))
}

func (b *FakeBackend) listProjects(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, envelope(b.Projects))
}

func (b *FakeBackend) updateProject(c echo.Context, update func(p *project.Project)) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.Projects {
		if b.Projects[i].ID == c.Param("id") {
			update(&b.Projects[i])
			return c.JSON(http.StatusOK, envelope(b.Projects[i]))
		}
	}
	return notFound(c, "Project")
}

func (b *FakeBackend) updateProjectStatus(c echo.Context) error {
	var su project.StatusUpdate
	if err := c.Bind(&su); err != nil || !su.Status.Valid() {
		return badRequest(c, "invalid status")
	}
	return b.updateProject(c, func(p *project.Project) {
		p.Status = su.Status
		p.Feedback = su.Feedback
	})
}

func (b *FakeBackend) evaluateProject(c echo.Context) error {
	var ev project.Evaluation
	if err := c.Bind(&ev); err != nil {
		return badRequest(c, "invalid marks")
	}
	return b.updateProject(c, func(p *project.Project) {
		marks := ev.Marks
		p.Marks = &marks
		p.Feedback = ev.Feedback
		p.EvaluationComplete = ev.Complete
	})
}

func (b *FakeBackend) mySchedule(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.Schedules) == 0 {
		return notFound(c, "Schedule")
	}
	return c.JSON(http.StatusOK, envelope(b.Schedules[0]))
}

func (b *FakeBackend) myPanel(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.Schedules) == 0 {
		return notFound(c, "Panel")
	}
	return b.writePanel(c, b.Schedules[0].ID)
}

func (b *FakeBackend) panel(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.writePanel(c, c.Param("id"))
}

func (b *FakeBackend) writePanel(c echo.Context, scheduleID string) error {
	p, ok := b.Panels[scheduleID]
	if !ok {
		return notFound(c, "Panel")
	}
	return c.JSON(http.StatusOK, envelope(p))
}

func (b *FakeBackend) listSchedules(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, envelope(b.Schedules))
}

func (b *FakeBackend) createSchedule(c echo.Context) error {
	var ns schedule.NewSchedule
	if err := c.Bind(&ns); err != nil {
		return badRequest(c, "invalid payload")
	}
	date, err := time.Parse("2006-01-02", ns.Date)
	if err != nil {
		return badRequest(c, "invalid date")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	s := schedule.Schedule{
		ID:         b.nextID("s"),
		Date:       date,
		TimeSlot:   ns.TimeSlot,
		Room:       ns.Room,
		Department: ns.Department,
		Notes:      ns.Notes,
		Group:      schedule.GroupRef{ID: ns.GroupID},
	}
	for _, g := range b.Groups {
		if g.ID == ns.GroupID {
			s.Group.Name = g.Name
		}
	}
	b.Schedules = append(b.Schedules, s)
	return c.JSON(http.StatusCreated, envelope(s))
}

func (b *FakeBackend) completeSchedule(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.Schedules {
		if b.Schedules[i].ID == c.Param("id") {
			b.Schedules[i].IsCompleted = true
			return c.JSON(http.StatusOK, envelope(b.Schedules[i]))
		}
	}
	return notFound(c, "Schedule")
}

func (b *FakeBackend) listDocuments(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return c.JSON(http.StatusOK, envelope(b.Documents))
}

func (b *FakeBackend) submitDocument(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return badRequest(c, "file is required")
	}
	f, err := fh.Open()
	if err != nil {
		return badRequest(c, "unreadable file")
	}
	defer f.Close()
	if _, err = io.Copy(io.Discard, f); err != nil {
		return badRequest(c, "unreadable file")
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	doc := document.Document{
		ID:          b.nextID("d"),
		Title:       c.FormValue("title"),
		Type:        document.Type(c.FormValue("type")),
		FileName:    fh.Filename,
		Status:      document.StatusSubmitted,
		SubmittedBy: b.accounts[c.Get("email").(string)].user.Name,
		SubmittedAt: time.Now().UTC(),
	}
	b.Documents = append(b.Documents, doc)
	return c.JSON(http.StatusCreated, envelope(doc))
}

func (b *FakeBackend) reviewDocument(c echo.Context) error {
	var r document.Review
	if err := c.Bind(&r); err != nil {
		return badRequest(c, "invalid payload")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.Documents {
		if b.Documents[i].ID == c.Param("id") {
			b.Documents[i].Status = r.Status
			b.Documents[i].Feedback = r.Feedback
			return c.JSON(http.StatusOK, envelope(b.Documents[i]))
		}
	}
	return notFound(c, "Document")
}

func (b *FakeBackend) getProfile(c echo.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.Profiles[user.Role(c.Param("role"))]
	if !ok {
		return notFound(c, "Profile")
	}
	return c.JSON(http.StatusOK, envelope(p))
}

func (b *FakeBackend) updateProfile(c echo.Context) error {
	var up profile.UpdateProfile
	if err := c.Bind(&up); err != nil {
		return badRequest(c, "invalid payload")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	role := user.Role(c.Param("role"))
	p, ok := b.Profiles[role]
	if !ok {
		return notFound(c, "Profile")
	}
	p.Name, p.Phone = up.Name, up.Phone
	b.Profiles[role] = p
	return c.JSON(http.StatusOK, envelope(p))
}

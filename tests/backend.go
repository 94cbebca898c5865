package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/document"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/profile"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
	"github.com/trezcool/fyp/core/user"
)

// Seeded accounts; every password is Password.
const (
	StudentEmail     = "ali@fyp.test"
	SupervisorEmail  = "khan@fyp.test"
	CoordinatorEmail = "sara@fyp.test"
	Password         = "secret123"
)

type account struct {
	user     user.SessionUser
	password string
}

type failure struct {
	status  int
	message string
	times   int
}

// FakeBackend is an in-memory FYP backend served over HTTP.
// Handlers answer in the `{data: ...}` envelope, the group and dashboard
// endpoints in the nested `{data: {data: ...}}` form.
type FakeBackend struct {
	*httptest.Server

	mu            sync.Mutex
	accounts      map[string]account // {email: account}
	tokens        map[string]string  // {token: email}
	Announcements []announcement.Announcement
	Groups        []group.Group
	Supervisors   []group.Supervisor
	Projects      []project.Project
	Schedules     []schedule.Schedule
	Panels        map[string]schedule.Panel // {scheduleID: panel}
	Documents     []document.Document
	Profiles      map[user.Role]profile.Profile

	failures map[string]*failure // {"METHOD /path": failure}
	calls    map[string]int
	seq      int
}

// NewFakeBackend starts a seeded fake backend, closed when the test ends.
func NewFakeBackend(t *testing.T) *FakeBackend {
	t.Helper()
	b := &FakeBackend{
		accounts: make(map[string]account),
		tokens:   make(map[string]string),
		failures: make(map[string]*failure),
		calls:    make(map[string]int),
		seq:      100, // created ids never collide with the seeded ones
	}
	b.seed()
	b.Server = httptest.NewServer(b.router())
	t.Cleanup(b.Close)
	return b
}

// Fail makes the next `times` requests to method+path answer status with message.
func (b *FakeBackend) Fail(method, path string, status int, message string, times int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+path] = &failure{status: status, message: message, times: times}
}

// Calls returns how many requests method+path received.
func (b *FakeBackend) Calls(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls[method+" "+path]
}

// Update runs fn with the backend state locked.
func (b *FakeBackend) Update(fn func(b *FakeBackend)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	fn(b)
}

// TokenFor returns the bearer token of the seeded account.
func (b *FakeBackend) TokenFor(email string) string {
	return "token-" + email
}

// UserFor returns the seeded session user, token included.
func (b *FakeBackend) UserFor(email string) user.SessionUser {
	b.mu.Lock()
	defer b.mu.Unlock()
	usr := b.accounts[email].user
	usr.Token = b.TokenFor(email)
	return usr
}

func (b *FakeBackend) nextID(prefix string) string {
	b.seq++
	return fmt.Sprintf("%s-%d", prefix, b.seq)
}

func envelope(payload interface{}) echo.Map { return echo.Map{"data": payload} }

func nested(payload interface{}) echo.Map { return echo.Map{"data": echo.Map{"data": payload}} }

func message(status int, msg string) echo.Map {
	return echo.Map{"success": false, "message": msg, "status": status}
}

func (b *FakeBackend) router() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(b.record, b.authenticate)

	e.POST("/auth/login", b.login)
	e.GET("/auth/me", b.me)
	e.GET("/dashboard/student", b.studentDashboard)

	e.GET("/announcements", b.listAnnouncements)
	e.POST("/announcements", b.createAnnouncement)
	e.PUT("/announcements/:id", b.updateAnnouncement)
	e.DELETE("/announcements/:id", b.deleteAnnouncement)

	e.GET("/coordinator/groups", b.listGroups(false))
	e.GET("/coordinator/groups/without-supervisor", b.listGroups(true))
	e.PUT("/coordinator/groups/:gid/assign-supervisor/:sid", b.assignSupervisor)
	e.PUT("/coordinator/groups/:gid/change-supervisor/:sid", b.assignSupervisor)
	e.GET("/student/group", b.myGroup)
	e.GET("/supervisor/groups", b.supervisedGroups)
	e.GET("/users", b.listSupervisors)

	e.GET("/student/project", b.myProject)
	e.GET("/supervisor/projects", b.listProjects)
	e.GET("/coordinator/projects", b.listProjects)
	e.PUT("/supervisor/projects/:id/status", b.updateProjectStatus)
	e.PUT("/supervisor/projects/:id/marks", b.evaluateProject)

	e.GET("/student/schedule", b.mySchedule)
	e.GET("/student/panel", b.myPanel)
	e.GET("/schedules/:id/panel", b.panel)
	e.GET("/supervisor/schedules", b.listSchedules)
	e.GET("/coordinator/schedules", b.listSchedules)
	e.POST("/coordinator/schedules", b.createSchedule)
	e.PUT("/coordinator/schedules/:id/complete", b.completeSchedule)

	e.GET("/student/documents", b.listDocuments)
	e.POST("/student/documents", b.submitDocument)
	e.GET("/supervisor/groups/:id/documents", b.listDocuments)
	e.PUT("/supervisor/documents/:id/review", b.reviewDocument)

	e.GET("/:role/profile", b.getProfile)
	e.PUT("/:role/profile", b.updateProfile)
	return e
}

func (b *FakeBackend) record(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		key := c.Request().Method + " " + c.Request().URL.Path
		b.mu.Lock()
		b.calls[key]++
		f := b.failures[key]
		if f != nil && f.times > 0 {
			f.times--
			b.mu.Unlock()
			return c.JSON(f.status, message(f.status, f.message))
		}
		b.mu.Unlock()
		return next(c)
	}
}

func (b *FakeBackend) authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().URL.Path == "/auth/login" {
			return next(c)
		}
		token := strings.TrimPrefix(c.Request().Header.Get(echo.HeaderAuthorization), "Bearer ")
		b.mu.Lock()
		email, ok := b.tokens[token]
		b.mu.Unlock()
		if !ok {
			return c.JSON(http.StatusUnauthorized, message(http.StatusUnauthorized, "Not authorized, token failed"))
		}
		c.Set("email", email)
		return next(c)
	}
}

func (b *FakeBackend) seed() {
	now := time.Now().UTC().Truncate(time.Second)
	users := []user.SessionUser{
		{ID: "u-student", Name: "Ali Raza", Email: StudentEmail, Role: user.RoleStudent, Department: "CS"},
		{ID: "u-supervisor", Name: "Dr. Imran Khan", Email: SupervisorEmail, Role: user.RoleSupervisor, Department: "CS"},
		{ID: "u-coordinator", Name: "Sara Ahmed", Email: CoordinatorEmail, Role: user.RoleCoordinator, Department: "CS"},
	}
	for _, usr := range users {
		b.accounts[usr.Email] = account{user: usr, password: Password}
		b.tokens[b.TokenFor(usr.Email)] = usr.Email
	}

	coordinator := announcement.Author{ID: "u-coordinator", Name: "Sara Ahmed", Email: CoordinatorEmail}
	b.Announcements = []announcement.Announcement{
		{ID: "a-1", Title: "Proposal deadline", Content: "Submit proposals by Friday", TargetAudience: announcement.AudienceStudents, CreatedBy: coordinator, CreatedAt: now.Add(-72 * time.Hour)},
		{ID: "a-2", Title: "Evaluation rubric", Content: "Use the updated rubric", TargetAudience: announcement.AudienceSupervisors, CreatedBy: coordinator, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "a-3", Title: "Campus closed", Content: "No presentations on Monday", TargetAudience: announcement.AudienceGeneral, CreatedBy: coordinator, CreatedAt: now.Add(-24 * time.Hour)},
	}

	ali := group.Member{ID: "u-student", Name: "Ali Raza", Email: StudentEmail, RollNumber: "CS-101"}
	khan := group.Supervisor{ID: "u-supervisor", Name: "Dr. Imran Khan", Email: SupervisorEmail, Department: "CS", MaxStudents: 5, CurrentStudentCount: 1, AvailableSlots: 4}
	b.Supervisors = []group.Supervisor{
		khan,
		{ID: "u-sup-2", Name: "Dr. Nadia Malik", Email: "malik@fyp.test", Department: "CS", MaxStudents: 3, CurrentStudentCount: 3},
	}
	b.Groups = []group.Group{
		{
			ID: "g-1", Name: "Smart Campus", Department: "CS", Leader: &ali,
			Members:            []group.Member{ali, {ID: "u-s2", Name: "Hina Shah", Email: "hina@fyp.test"}},
			AssignedSupervisor: &khan,
			Project:            &group.ProjectSummary{ID: "p-1", Title: "Smart Campus Navigator", Status: "approved"},
		},
		{
			ID: "g-2", Name: "Health Bots", Department: "CS",
			Leader:  &group.Member{ID: "u-s3", Name: "Omar Farooq", Email: "omar@fyp.test"},
			Members: []group.Member{{ID: "u-s3", Name: "Omar Farooq", Email: "omar@fyp.test"}},
		},
	}

	supervisor := &project.Person{ID: khan.ID, Name: khan.Name, Email: khan.Email}
	b.Projects = []project.Project{
		{
			ID: "p-1", Title: "Smart Campus Navigator", Status: project.StatusApproved, Technologies: []string{"Go", "htmx"},
			Group: project.GroupRef{ID: "g-1", Name: "Smart Campus"}, Supervisor: supervisor,
			Marks: &project.Marks{Proposal: 8, Implementation: 24, Documentation: 12, Presentation: 12, Github: 8, Final: 14, Total: 78},
		},
		{ID: "p-2", Title: "Clinic Chatbot", Status: project.StatusPending, Group: project.GroupRef{ID: "g-2", Name: "Health Bots"}},
		{ID: "p-3", Title: "Crypto Wallet", Status: project.StatusRejected, Group: project.GroupRef{ID: "g-3", Name: "Ledger"}, Supervisor: supervisor},
	}

	b.Schedules = []schedule.Schedule{
		{ID: "s-1", Date: now.Add(7 * 24 * time.Hour), TimeSlot: "10:00 - 10:30", Room: "Lab 3", Department: "CS", Group: schedule.GroupRef{ID: "g-1", Name: "Smart Campus"}},
	}
	b.Panels = map[string]schedule.Panel{
		"s-1": {ID: "pn-1", Name: "Panel A", Members: []schedule.PanelMember{{ID: "u-sup-2", Name: "Dr. Nadia Malik", Role: "chair"}}},
	}

	b.Documents = []document.Document{
		{ID: "d-1", Title: "Project Proposal", Type: document.TypeProposal, FileName: "proposal.pdf", Status: document.StatusSubmitted, SubmittedBy: "Ali Raza", SubmittedAt: now.Add(-96 * time.Hour)},
	}

	b.Profiles = map[user.Role]profile.Profile{
		user.RoleStudent:     {ID: "u-student", Name: "Ali Raza", Email: StudentEmail, Role: user.RoleStudent, Department: "CS", RollNumber: "CS-101", Batch: "2021", Semester: 8, CGPA: 3.4},
		user.RoleSupervisor:  {ID: "u-supervisor", Name: "Dr. Imran Khan", Email: SupervisorEmail, Role: user.RoleSupervisor, Department: "CS", Designation: "Associate Professor", MaxStudents: 5, CurrentStudentCount: 1, AvailableSlots: 4},
		user.RoleCoordinator: {ID: "u-coordinator", Name: "Sara Ahmed", Email: CoordinatorEmail, Role: user.RoleCoordinator, Department: "CS", Office: "B-204"},
	}
}

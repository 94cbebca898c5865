package echoportal

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/dashboard"
	"github.com/trezcool/fyp/core/document"
	"github.com/trezcool/fyp/core/group"
	"github.com/trezcool/fyp/core/profile"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
	"github.com/trezcool/fyp/core/user"
	emailsvc "github.com/trezcool/fyp/services/email"
	"github.com/trezcool/fyp/storage/fypapi"
	"github.com/trezcool/fyp/tests"
)

type testPortal struct {
	t       *testing.T
	srv     *Server
	backend *testutil.FakeBackend
}

func setup(t *testing.T) *testPortal {
	backend := testutil.NewFakeBackend(t)
	conf := testutil.NewConfig(backend.URL)
	logger := testutil.NewLogger(conf)
	validate, translator := testutil.NewValidator()
	client := fypapi.NewClient(conf, logger)

	groupSvc := group.NewService(client)
	projectSvc := project.NewService(client, validate, translator)
	scheduleSvc := schedule.NewService(client, validate, translator)
	announcementSvc := announcement.NewService(client, validate, translator, emailsvc.NewConsoleServiceMock(conf, logger), conf, logger)
	profileSvc := profile.NewService(client, validate, translator)

	srv, err := NewServer(Deps{
		Conf:            conf,
		Logger:          logger,
		UserSvc:         user.NewService(client, validate, translator),
		DashboardSvc:    dashboard.NewService(client, groupSvc, projectSvc, scheduleSvc, announcementSvc, profileSvc),
		AnnouncementSvc: announcementSvc,
		GroupSvc:        groupSvc,
		ProjectSvc:      projectSvc,
		ScheduleSvc:     scheduleSvc,
		DocumentSvc:     document.NewService(client, validate, translator),
		ProfileSvc:      profileSvc,
	})
	require.NoError(t, err)
	return &testPortal{t: t, srv: srv, backend: backend}
}

type request struct {
	method string
	path   string
	form   url.Values
	as     string // email of the logged-in user
	user   *user.SessionUser
	htmx   bool
}

func (p *testPortal) do(r request) *httptest.ResponseRecorder {
	p.t.Helper()
	if r.method == "" {
		r.method = http.MethodGet
	}
	var body *strings.Reader
	if r.form != nil {
		body = strings.NewReader(r.form.Encode())
	} else {
		body = strings.NewReader("")
	}
	req := httptest.NewRequest(r.method, r.path, body)
	if r.form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if r.htmx {
		req.Header.Set(headerHXRequest, "true")
	}
	if r.as != "" && r.user == nil {
		usr := p.backend.UserFor(r.as)
		r.user = &usr
	}
	if r.user != nil {
		session, err := GenerateSession(p.srv.deps.Conf, *r.user)
		require.NoError(p.t, err)
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: session})
	}
	rec := httptest.NewRecorder()
	p.srv.ServeHTTP(rec, req)
	return rec
}

func TestLogin(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/login"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign in")

	tests := []struct {
		name         string
		form         url.Values
		wantCode     int
		wantLocation string
		wantBody     string
	}{
		{
			name:     "invalid email",
			form:     url.Values{"email": {"nope"}, "password": {"x"}},
			wantCode: http.StatusBadRequest,
			wantBody: "email",
		},
		{
			name:     "wrong password",
			form:     url.Values{"email": {testutil.CoordinatorEmail}, "password": {"wrong"}},
			wantCode: http.StatusUnauthorized,
			wantBody: "Invalid email or password",
		},
		{
			name:         "home of the role",
			form:         url.Values{"email": {testutil.CoordinatorEmail}, "password": {testutil.Password}},
			wantCode:     http.StatusSeeOther,
			wantLocation: "/coordinator",
		},
		{
			name:         "next inside the portal",
			form:         url.Values{"email": {testutil.CoordinatorEmail}, "password": {testutil.Password}, "next": {"/coordinator/groups"}},
			wantCode:     http.StatusSeeOther,
			wantLocation: "/coordinator/groups",
		},
		{
			name:         "next outside the portal is ignored",
			form:         url.Values{"email": {testutil.StudentEmail}, "password": {testutil.Password}, "next": {"https://evil.test/student"}},
			wantCode:     http.StatusSeeOther,
			wantLocation: "/student",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.do(request{method: http.MethodPost, path: "/login", form: tt.form})
			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantLocation != "" {
				assert.Equal(t, tt.wantLocation, rec.Header().Get(echo.HeaderLocation))
				assert.Contains(t, rec.Header().Get("Set-Cookie"), sessionCookie+"=")
			}
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
	assert.Equal(t, 4, p.backend.Calls(http.MethodPost, "/auth/login"), "invalid input is not sent")
}

func TestLogout(t *testing.T) {
	p := setup(t)

	rec := p.do(request{method: http.MethodPost, path: "/logout", as: testutil.StudentEmail})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")

	rec = p.do(request{method: http.MethodPost, path: "/logout", as: testutil.StudentEmail, htmx: true})
	assert.Equal(t, "/login", rec.Header().Get(headerHXRedirect))
}

func TestLoginRequired(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/student/project"})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login?next=%2Fstudent%2Fproject", rec.Header().Get(echo.HeaderLocation))

	rec = p.do(request{path: "/student/project/content", htmx: true})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get(headerHXRedirect))

	rec = p.do(request{path: "/", as: testutil.SupervisorEmail})
	assert.Equal(t, "/supervisor", rec.Header().Get(echo.HeaderLocation))
}

func TestHome_refreshesSession(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/", as: testutil.StudentEmail})
	assert.Equal(t, "/student", rec.Header().Get(echo.HeaderLocation))
	assert.Contains(t, rec.Header().Get("Set-Cookie"), sessionCookie+"=ey")
	assert.Equal(t, 1, p.backend.Calls(http.MethodGet, "/auth/me"))

	stale := p.backend.UserFor(testutil.StudentEmail)
	stale.Token = "expired"
	rec = p.do(request{path: "/login", user: &stale})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sign in")
	assert.Contains(t, rec.Header().Get("Set-Cookie"), "Max-Age=0")

	// an unreachable backend keeps the session
	p.backend.Fail(http.MethodGet, "/auth/me", http.StatusInternalServerError, "Database unavailable", 1)
	rec = p.do(request{path: "/", as: testutil.SupervisorEmail})
	assert.Equal(t, "/supervisor", rec.Header().Get(echo.HeaderLocation))
}

func TestAuthorize(t *testing.T) {
	p := setup(t)

	tests := []struct {
		name string
		req  request
		want int
	}{
		{name: "own portal", req: request{path: "/student", as: testutil.StudentEmail}, want: http.StatusOK},
		{name: "student on coordinator page", req: request{path: "/coordinator/groups", as: testutil.StudentEmail}, want: http.StatusForbidden},
		{name: "supervisor on student page", req: request{path: "/student/project", as: testutil.SupervisorEmail}, want: http.StatusForbidden},
		{name: "student mutating coordinator data", req: request{method: http.MethodDelete, path: "/coordinator/announcements/a-1", as: testutil.StudentEmail}, want: http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := p.do(tt.req)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusForbidden {
				assert.Contains(t, rec.Body.String(), "You do not have access to this page.")
			}
		})
	}
	assert.Zero(t, p.backend.Calls(http.MethodDelete, "/announcements/a-1"))

	// htmx gets the refusal as a toast
	rec := p.do(request{path: "/coordinator/groups/content", as: testutil.StudentEmail, htmx: true})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, toastsTarget, rec.Header().Get(headerHXRetarget))
	assert.Contains(t, rec.Body.String(), "toast-error")
}

func TestShell(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/coordinator/announcements?audience=students", as: testutil.CoordinatorEmail})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `hx-get="/coordinator/announcements/content?audience=students"`)
	assert.Contains(t, body, "Loading...")
	assert.Contains(t, body, "Coordinator Portal")
	assert.Contains(t, body, `class="nav-link active" data-icon="megaphone"`)
	assert.Contains(t, body, `id="toasts"`)
	assert.Zero(t, p.backend.Calls(http.MethodGet, "/announcements"), "the shell never waits for data")
}

func TestContent_errorPanelAndRetry(t *testing.T) {
	p := setup(t)
	p.backend.Fail(http.MethodGet, "/announcements", http.StatusServiceUnavailable, "Database unavailable", 1)

	req := request{path: "/student/announcements/content?search=deadline", as: testutil.StudentEmail, htmx: true}
	rec := p.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "error-panel")
	assert.Contains(t, body, "Database unavailable")
	assert.Contains(t, body, `hx-get="/student/announcements/content?search=deadline"`)
	assert.Contains(t, body, "Try Again")

	rec = p.do(req)
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.NotContains(t, body, "error-panel")
	assert.Contains(t, body, "Proposal deadline")
	assert.NotContains(t, body, "Campus closed", "filtered out by the search")
	assert.NotContains(t, body, "Evaluation rubric", "not visible to students")
	assert.Equal(t, 2, p.backend.Calls(http.MethodGet, "/announcements"))
}

func TestStudentPages(t *testing.T) {
	p := setup(t)

	tests := []struct {
		path string
		want []string
	}{
		{path: "/student/content", want: []string{"Welcome back, Ali Raza", "FYP progress: 66%", "Smart Campus Navigator"}},
		{path: "/student/group/content", want: []string{"Smart Campus", "Members (2)", "Leader", "Dr. Imran Khan"}},
		{path: "/student/project/content", want: []string{"Smart Campus Navigator", "78", "A-", "provisional"}},
		{path: "/student/documents/content", want: []string{"Project Proposal", "proposal.pdf", "Final Report"}},
		{path: "/student/schedule/content", want: []string{"Lab 3", "10:00 - 10:30", "Dr. Nadia Malik"}},
		{path: "/student/profile/content", want: []string{"CS-101", "Edit profile"}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := p.do(request{path: tt.path, as: testutil.StudentEmail, htmx: true})
			require.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.NotContains(t, body, "error-panel")
			for _, want := range tt.want {
				assert.Contains(t, body, want)
			}
		})
	}
}

func TestStudentPages_empty(t *testing.T) {
	p := setup(t)
	p.backend.Update(func(b *testutil.FakeBackend) {
		b.Projects = nil
		b.Schedules = nil
	})

	rec := p.do(request{path: "/student/project/content", as: testutil.StudentEmail, htmx: true})
	assert.Contains(t, rec.Body.String(), "Your group has not submitted a project yet.")

	rec = p.do(request{path: "/student/schedule/content", as: testutil.StudentEmail, htmx: true})
	assert.Contains(t, rec.Body.String(), "Your presentation has not been scheduled yet.")
}

func TestStudentSchedule_embeddedPanel(t *testing.T) {
	p := setup(t)
	p.backend.Update(func(b *testutil.FakeBackend) {
		b.Panels["s-1"] = schedule.Panel{}
		b.Schedules[0].Panel = &schedule.Panel{Members: []schedule.PanelMember{{ID: "u-supervisor", Name: "Dr. Imran Khan"}}}
	})

	rec := p.do(request{path: "/student/schedule/content", as: testutil.StudentEmail, htmx: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dr. Imran Khan")
	assert.NotContains(t, rec.Body.String(), "No panel assigned yet.")
}

func TestCoordinatorAnnouncements(t *testing.T) {
	p := setup(t)

	t.Run("invalid create shows a toast only", func(t *testing.T) {
		rec := p.do(request{
			method: http.MethodPost, path: "/coordinator/announcements", as: testutil.CoordinatorEmail, htmx: true,
			form: url.Values{"title": {"  "}, "content": {"Body"}, "targetAudience": {"students"}},
		})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, toastsTarget, rec.Header().Get(headerHXRetarget))
		assert.Equal(t, "beforeend", rec.Header().Get(headerHXReswap))
		assert.Contains(t, rec.Body.String(), "toast-error")
		assert.Contains(t, rec.Body.String(), "title is required")
		assert.Zero(t, p.backend.Calls(http.MethodPost, "/announcements"))
	})

	t.Run("create refreshes the list", func(t *testing.T) {
		rec := p.do(request{
			method: http.MethodPost, path: "/coordinator/announcements", as: testutil.CoordinatorEmail, htmx: true,
			form: url.Values{"title": {"Viva week"}, "content": {"Bring your reports"}, "targetAudience": {"students"}},
		})
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Viva week")
		assert.Contains(t, body, `hx-swap-oob="beforeend:#toasts"`)
		assert.Contains(t, body, "Announcement created")
	})

	t.Run("delete refreshes without the item", func(t *testing.T) {
		rec := p.do(request{method: http.MethodDelete, path: "/coordinator/announcements/a-1", as: testutil.CoordinatorEmail, htmx: true})
		require.Equal(t, http.StatusOK, rec.Code)
		body := rec.Body.String()
		assert.Contains(t, body, "Announcement deleted")
		assert.NotContains(t, body, `hx-delete="/coordinator/announcements/a-1"`)
		assert.NotContains(t, body, "Proposal deadline")
		assert.Contains(t, body, `hx-delete="/coordinator/announcements/a-3"`)
		assert.Contains(t, body, "Viva week")
		assert.Equal(t, 1, p.backend.Calls(http.MethodDelete, "/announcements/a-1"))
	})

	t.Run("backend failure keeps the page", func(t *testing.T) {
		p.backend.Fail(http.MethodDelete, "/announcements/a-2", http.StatusInternalServerError, "Database unavailable", 1)
		rec := p.do(request{method: http.MethodDelete, path: "/coordinator/announcements/a-2", as: testutil.CoordinatorEmail, htmx: true})
		assert.Equal(t, toastsTarget, rec.Header().Get(headerHXRetarget))
		assert.Contains(t, rec.Body.String(), "Database unavailable")
		assert.NotContains(t, rec.Body.String(), "Evaluation rubric")
	})
}

func TestCoordinatorAnnouncements_keepFilters(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/coordinator/announcements/content?audience=students", as: testutil.CoordinatorEmail, htmx: true})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `hx-post="/coordinator/announcements?audience=students"`)
	assert.Contains(t, body, `hx-delete="/coordinator/announcements/a-1?audience=students"`)

	rec = p.do(request{
		method: http.MethodPost, path: "/coordinator/announcements?audience=students", as: testutil.CoordinatorEmail, htmx: true,
		form: url.Values{"title": {"Viva week"}, "content": {"Bring your reports"}, "targetAudience": {"general"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "Announcement created")
	assert.Contains(t, body, "Proposal deadline")
	assert.NotContains(t, body, "Viva week", "the new item is outside the active filter")
	assert.NotContains(t, body, "Campus closed")

	rec = p.do(request{method: http.MethodDelete, path: "/coordinator/announcements/a-1?search=closed", as: testutil.CoordinatorEmail, htmx: true})
	require.Equal(t, http.StatusOK, rec.Code)
	body = rec.Body.String()
	assert.Contains(t, body, "Campus closed")
	assert.NotContains(t, body, "Evaluation rubric")
	assert.Contains(t, body, `hx-delete="/coordinator/announcements/a-3?search=closed"`)
}

func TestCoordinatorGroups(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/coordinator/groups/content?supervisor=unassigned", as: testutil.CoordinatorEmail, htmx: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Health Bots")
	assert.NotContains(t, rec.Body.String(), "<strong>Smart Campus</strong>")

	rec = p.do(request{
		method: http.MethodPost, path: "/coordinator/groups/g-2/supervisor", as: testutil.CoordinatorEmail, htmx: true,
		form: url.Values{"supervisorId": {"u-supervisor"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Supervisor assigned to Health Bots")
	assert.Equal(t, 1, p.backend.Calls(http.MethodPut, "/coordinator/groups/g-2/assign-supervisor/u-supervisor"))

	rec = p.do(request{
		method: http.MethodPost, path: "/coordinator/groups/g-2/supervisor", as: testutil.CoordinatorEmail, htmx: true,
		form: url.Values{"supervisorId": {""}},
	})
	assert.Equal(t, toastsTarget, rec.Header().Get(headerHXRetarget))
}

func TestCoordinatorSchedules(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/coordinator/schedules/content", as: testutil.CoordinatorEmail, htmx: true})
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Schedule a presentation")
	assert.Contains(t, body, "View panel")

	rec = p.do(request{path: "/coordinator/schedules/s-1/panel", as: testutil.CoordinatorEmail, htmx: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Dr. Nadia Malik")

	rec = p.do(request{
		method: http.MethodPost, path: "/coordinator/schedules", as: testutil.CoordinatorEmail, htmx: true,
		form: url.Values{"groupId": {"g-2"}, "date": {"2026-11-02"}, "timeSlot": {"11:00 - 11:30"}, "room": {"Lab 1"}, "panel": {"u-supervisor", "u-sup-2"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Presentation scheduled")
	assert.Contains(t, rec.Body.String(), "Health Bots")
}

func TestCoordinatorExport(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/coordinator/projects/export?status=approved", as: testutil.CoordinatorEmail})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, xlsxContentType, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment; filename=\"fyp-marks-")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Marks")
	require.NoError(t, err)
	require.Len(t, rows, 2, "header and the approved project")
	assert.Equal(t, "Smart Campus Navigator", rows[1][1])
}

func TestSupervisorProjects(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/supervisor/projects/content?status=pending", as: testutil.SupervisorEmail, htmx: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Clinic Chatbot")
	assert.NotContains(t, rec.Body.String(), "Crypto Wallet")

	rec = p.do(request{
		method: http.MethodPost, path: "/supervisor/projects/p-1/marks", as: testutil.SupervisorEmail, htmx: true,
		form: url.Values{"proposal": {"11"}, "implementation": {"20"}},
	})
	assert.Equal(t, toastsTarget, rec.Header().Get(headerHXRetarget))
	assert.Zero(t, p.backend.Calls(http.MethodPut, "/supervisor/projects/p-1/marks"))

	rec = p.do(request{
		method: http.MethodPost, path: "/supervisor/projects/p-1/marks", as: testutil.SupervisorEmail, htmx: true,
		form: url.Values{"proposal": {"10"}, "implementation": {"28"}, "documentation": {"14"}, "presentation": {"14"}, "github": {"9"}, "final": {"18"}, "complete": {"true"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Evaluation saved")
	assert.Contains(t, rec.Body.String(), "Total 93 / 100")

	rec = p.do(request{
		method: http.MethodPost, path: "/supervisor/projects/p-2/status", as: testutil.SupervisorEmail, htmx: true,
		form: url.Values{"status": {"approved"}},
	})
	assert.Contains(t, rec.Body.String(), "Project approved")
}

func TestSupervisorGroupDocuments(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/supervisor/groups/g-1/documents/content", as: testutil.SupervisorEmail, htmx: true})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Project Proposal")

	rec = p.do(request{path: "/supervisor/groups/g-2/documents/content", as: testutil.SupervisorEmail, htmx: true})
	assert.Contains(t, rec.Body.String(), "This group is not supervised by you")
	assert.Contains(t, rec.Body.String(), `hx-get="/supervisor/groups/g-2/documents/content"`)

	rec = p.do(request{
		method: http.MethodPost, path: "/supervisor/groups/g-1/documents/d-1/review", as: testutil.SupervisorEmail, htmx: true,
		form: url.Values{"status": {"reviewed"}, "feedback": {"Looks good"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Review saved")
	assert.Contains(t, rec.Body.String(), "Looks good")
}

func TestProfileUpdate(t *testing.T) {
	p := setup(t)

	rec := p.do(request{path: "/supervisor/profile/content", as: testutil.SupervisorEmail, htmx: true})
	assert.Contains(t, rec.Body.String(), "Supervision capacity: 1 / 5 students")

	rec = p.do(request{
		method: http.MethodPut, path: "/supervisor/profile", as: testutil.SupervisorEmail, htmx: true,
		form: url.Values{"name": {"Dr. Imran A. Khan"}, "phone": {"0300-1234567"}},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Profile updated")
	assert.Contains(t, rec.Body.String(), "Dr. Imran A. Khan")
}

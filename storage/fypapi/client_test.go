package fypapi

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/fyp/core"
	"github.com/trezcool/fyp/core/announcement"
	"github.com/trezcool/fyp/core/document"
	"github.com/trezcool/fyp/core/project"
	"github.com/trezcool/fyp/core/schedule"
	"github.com/trezcool/fyp/core/user"
	"github.com/trezcool/fyp/tests"
)

func setup(t *testing.T) (*Client, *testutil.FakeBackend) {
	backend := testutil.NewFakeBackend(t)
	conf := testutil.NewConfig(backend.URL)
	return NewClient(conf, testutil.NewLogger(conf)), backend
}

func authCtx(backend *testutil.FakeBackend, email string) context.Context {
	return core.WithToken(context.Background(), backend.TokenFor(email))
}

func Test_unwrap(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "single envelope", body: `{"data":[1,2]}`, want: `[1,2]`},
		{name: "nested envelope", body: `{"data":{"data":{"id":"g-1"}}}`, want: `{"id":"g-1"}`},
		{name: "object without inner data", body: `{"data":{"id":"p-1"}}`, want: `{"id":"p-1"}`},
		{name: "no envelope", body: `{"id":"x"}`, want: `{"id":"x"}`},
		{name: "bare array", body: `[{"id":"x"}]`, want: `[{"id":"x"}]`},
		{name: "null data", body: `{"data":null}`, want: `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.JSONEq(t, tt.want, string(unwrap([]byte(tt.body))))
		})
	}
}

func TestClient_Login(t *testing.T) {
	client, _ := setup(t)

	usr, err := client.Login(context.Background(), testutil.StudentEmail, testutil.Password)
	require.NoError(t, err)
	assert.Equal(t, user.RoleStudent, usr.Role)
	assert.NotEmpty(t, usr.Token)
	assert.True(t, usr.IsAuthenticated())

	_, err = client.Login(context.Background(), testutil.StudentEmail, "nope")
	require.Error(t, err)
	assert.True(t, IsUnauthorized(err))
	assert.Equal(t, "Invalid email or password", core.UserMessage(err))
}

func TestClient_Me(t *testing.T) {
	client, backend := setup(t)

	usr, err := client.Me(authCtx(backend, testutil.CoordinatorEmail))
	require.NoError(t, err)
	assert.Equal(t, "u-coordinator", usr.ID)
	assert.Equal(t, backend.TokenFor(testutil.CoordinatorEmail), usr.Token)

	_, err = client.Me(context.Background())
	assert.True(t, IsUnauthorized(err), "requests without a token are rejected")
}

func TestClient_Announcements(t *testing.T) {
	client, backend := setup(t)
	ctx := authCtx(backend, testutil.CoordinatorEmail)

	list, err := client.QueryAnnouncements(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)

	na := announcement.NewAnnouncement{Title: "Viva week", Content: "Dates inside", TargetAudience: announcement.AudienceGeneral}
	created, err := client.CreateAnnouncement(ctx, na)
	require.NoError(t, err)
	assert.Equal(t, "Viva week", created.Title)
	assert.Equal(t, "Sara Ahmed", created.CreatedBy.Name)
	assert.NotContains(t, []string{"a-1", "a-2", "a-3"}, created.ID)

	updated, err := client.UpdateAnnouncement(ctx, created.ID, announcement.UpdateAnnouncement{NewAnnouncement: announcement.NewAnnouncement{
		Title: "Viva week (updated)", Content: "Dates inside", TargetAudience: announcement.AudienceStudents,
	}})
	require.NoError(t, err)
	assert.Equal(t, announcement.AudienceStudents, updated.TargetAudience)

	require.NoError(t, client.DeleteAnnouncement(ctx, created.ID))
	assert.Equal(t, 1, backend.Calls(http.MethodDelete, "/announcements/"+created.ID))

	err = client.DeleteAnnouncement(ctx, created.ID)
	assert.True(t, IsNotFound(err))

	list, err = client.QueryAnnouncements(ctx)
	require.NoError(t, err)
	remaining := make([]string, 0, len(list))
	for _, a := range list {
		remaining = append(remaining, a.ID)
	}
	assert.NotContains(t, remaining, created.ID)
	assert.ElementsMatch(t, []string{"a-1", "a-2", "a-3"}, remaining)
}

func TestClient_backendErrors(t *testing.T) {
	client, backend := setup(t)
	ctx := authCtx(backend, testutil.CoordinatorEmail)

	backend.Fail(http.MethodGet, "/coordinator/projects", http.StatusInternalServerError, "Database unavailable", 1)
	_, err := client.QueryProjects(ctx)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, StatusOf(err))
	assert.Equal(t, "Database unavailable", core.UserMessage(err))

	// one request per call: the next one goes through
	list, err := client.QueryProjects(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, 2, backend.Calls(http.MethodGet, "/coordinator/projects"))
}

func TestClient_Groups(t *testing.T) {
	client, backend := setup(t)
	ctx := authCtx(backend, testutil.CoordinatorEmail)

	all, err := client.QueryGroups(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	unassigned, err := client.GroupsWithoutSupervisor(ctx)
	require.NoError(t, err)
	require.Len(t, unassigned, 1)
	assert.Equal(t, "g-2", unassigned[0].ID)

	sups, err := client.QuerySupervisors(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, sups, 1)

	g, err := client.AssignSupervisor(ctx, "g-2", "u-supervisor")
	require.NoError(t, err)
	require.NotNil(t, g.AssignedSupervisor)
	assert.Equal(t, "u-supervisor", g.AssignedSupervisor.ID)

	g, err = client.ChangeSupervisor(ctx, "g-2", "u-sup-2")
	require.NoError(t, err)
	assert.Equal(t, "u-sup-2", g.AssignedSupervisor.ID)
}

func TestClient_mineReturnsNilWhenMissing(t *testing.T) {
	client, backend := setup(t)
	ctx := authCtx(backend, testutil.StudentEmail)

	g, err := client.MyGroup(ctx)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.Equal(t, "g-1", g.ID)

	backend.Update(func(b *testutil.FakeBackend) {
		b.Projects = nil
		b.Schedules = nil
	})
	p, err := client.MyProject(ctx)
	require.NoError(t, err)
	assert.Nil(t, p)

	s, err := client.MySchedule(ctx)
	require.NoError(t, err)
	assert.Nil(t, s)
}

func TestClient_Panels(t *testing.T) {
	client, backend := setup(t)
	ctx := authCtx(backend, testutil.StudentEmail)

	p, err := client.MyPanel(ctx)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Dr. Nadia Malik", p.Members[0].Name)

	backend.Update(func(b *testutil.FakeBackend) {
		b.Panels["s-1"] = schedule.Panel{}
	})
	p, err = client.MyPanel(ctx)
	require.NoError(t, err)
	assert.Nil(t, p, "a panel without members is not formed yet")

	p, err = client.PanelOf(ctx, "s-1")
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = client.PanelOf(ctx, "s-404")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestClient_Projects(t *testing.T) {
	client, backend := setup(t)
	ctx := authCtx(backend, testutil.SupervisorEmail)

	p, err := client.UpdateProjectStatus(ctx, "p-2", project.StatusUpdate{Status: project.StatusApproved})
	require.NoError(t, err)
	assert.Equal(t, project.StatusApproved, p.Status)

	ev := project.Evaluation{Marks: project.Marks{Proposal: 9, Implementation: 25, Total: 34}, Complete: true}
	p, err = client.EvaluateProject(ctx, "p-2", ev)
	require.NoError(t, err)
	require.NotNil(t, p.Marks)
	assert.Equal(t, 34.0, p.Marks.Total)
	assert.True(t, p.EvaluationComplete)
}

func TestClient_SubmitDocument(t *testing.T) {
	client, backend := setup(t)
	ctx := authCtx(backend, testutil.StudentEmail)

	doc, err := client.SubmitDocument(ctx, document.NewDocument{
		Title:    "SRS v1",
		Type:     document.TypeSRS,
		FileName: "srs.pdf",
		Size:     5,
		File:     strings.NewReader("%PDF-"),
	})
	require.NoError(t, err)
	assert.Equal(t, "SRS v1", doc.Title)
	assert.Equal(t, "srs.pdf", doc.FileName)
	assert.Equal(t, document.StatusSubmitted, doc.Status)

	list, err := client.MyDocuments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestClient_StudentDashboard(t *testing.T) {
	client, backend := setup(t)

	d, err := client.StudentDashboard(authCtx(backend, testutil.StudentEmail))
	require.NoError(t, err)
	assert.Equal(t, "Ali Raza", d.Student.Name)
	require.NotNil(t, d.Project)
	assert.Equal(t, "p-1", d.Project.ID)
	assert.Len(t, d.Announcements, 3)
}

package project

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMarks(t *testing.T) {
	m := Marks{Proposal: 8, Implementation: 24, Documentation: 12, Presentation: 12, Github: 8, Final: 14}
	assert.Equal(t, 78.0, m.Sum())
	assert.Equal(t, 78.0, m.TotalMarks(), "falls back to the sum")
	assert.Equal(t, 78.0, m.Percentage())
	assert.Equal(t, "A-", m.Grade())

	m.Total = 81
	assert.Equal(t, 81.0, m.TotalMarks(), "the backend total wins")
	assert.Equal(t, "A", m.Grade())

	rows := m.Rows()
	require.Len(t, rows, 6)
	var max float64
	for _, r := range rows {
		max += r.Max
	}
	assert.Equal(t, float64(MaxMarks), max)
	assert.Equal(t, 80.0, rows[1].Percentage(), "24 of 30")
}

func TestProject_display(t *testing.T) {
	assert.Equal(t, "Navigator", Project{Title: "Navigator", SelectedIdea: "Idea"}.DisplayTitle())
	assert.Equal(t, "Idea", Project{SelectedIdea: "Idea"}.DisplayTitle())
	assert.Equal(t, "Not assigned", Project{}.SupervisorName())
	assert.Equal(t, "Dr. Khan", Project{Supervisor: &Person{Name: "Dr. Khan"}}.SupervisorName())
}

func TestCountStatuses(t *testing.T) {
	c := CountStatuses([]Project{
		{Status: StatusApproved}, {Status: StatusApproved}, {Status: StatusPending}, {Status: StatusRejected}, {Status: "draft"},
	})
	assert.Equal(t, StatusCounts{Approved: 2, Pending: 1, Rejected: 1, Total: 5}, c)
}

func TestFilter_Apply(t *testing.T) {
	list := []Project{
		{ID: "p-1", Title: "Smart Campus Navigator", Status: StatusApproved, Group: GroupRef{Name: "Smart Campus"}},
		{ID: "p-2", Title: "Clinic Chatbot", Status: StatusPending, Group: GroupRef{Name: "Health Bots"}},
	}
	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "all", want: []string{"p-1", "p-2"}},
		{name: "status", filter: Filter{Status: "PENDING"}, want: []string{"p-2"}},
		{name: "invalid status ignored", filter: Filter{Status: "lol"}, want: []string{"p-1", "p-2"}},
		{name: "search group name", filter: Filter{Search: "health"}, want: []string{"p-2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.filter
			f.Clean()
			got := make([]string, 0)
			for _, p := range f.Apply(list) {
				got = append(got, p.ID)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExportMarks(t *testing.T) {
	list := []Project{
		{
			Title: "Smart Campus Navigator", Status: StatusApproved, Group: GroupRef{Name: "Smart Campus"},
			Supervisor: &Person{Name: "Dr. Khan"}, EvaluationComplete: true,
			Marks: &Marks{Proposal: 8, Implementation: 24, Documentation: 12, Presentation: 12, Github: 8, Final: 14},
		},
		{Title: "Clinic Chatbot", Status: StatusPending, Group: GroupRef{Name: "Health Bots"}},
	}

	var buff bytes.Buffer
	require.NoError(t, ExportMarks(&buff, list))

	f, err := excelize.OpenReader(&buff)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(marksSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Group", rows[0][0])
	assert.Equal(t, []string{"Smart Campus", "Smart Campus Navigator", "Dr. Khan", "approved"}, rows[1][:4])
	assert.Equal(t, "78", rows[1][10])
	assert.Equal(t, "A-", rows[1][12])
	assert.Equal(t, "Yes", rows[1][13])
	assert.Equal(t, "Not assigned", rows[2][2])
	assert.Equal(t, "No", rows[2][13])
}

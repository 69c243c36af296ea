package domain_test

import (
	"testing"

	"lms-admin-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterCoursesAndKanban(t *testing.T) {
	courses := []domain.Course{
		{ID: "1", Name: "Intro to React", Status: domain.StatusPublished},
		{ID: "2", Name: "Advanced react patterns", Status: domain.StatusDraft},
		{ID: "3", Name: "Go basics", Status: domain.StatusPublished},
	}

	filtered := domain.FilterCourses(courses, "REACT")
	require.Len(t, filtered, 2)

	k := domain.PartitionKanban(filtered)
	require.Len(t, k.Published, 1)
	require.Len(t, k.Draft, 1)
	assert.Equal(t, "1", k.Published[0].ID)
	assert.Equal(t, "2", k.Draft[0].ID)

	assert.Len(t, domain.FilterCourses(courses, ""), 3)
}

func participants() []domain.Participant {
	return []domain.Participant{
		{ID: "p1", ParticipantName: "Asha", Status: domain.ParticipantCompleted, CompletionPercentage: 100},
		{ID: "p2", ParticipantName: "Ravi", Status: domain.ParticipantInProgress, CompletionPercentage: 40},
		{ID: "p3", ParticipantName: "Meera", Status: domain.ParticipantInProgress, CompletionPercentage: 10},
		{ID: "p4", ParticipantName: "Dev", Status: domain.ParticipantYetToStart},
	}
}

func TestFilterParticipants(t *testing.T) {
	ps := participants()
	assert.Len(t, domain.FilterParticipants(ps, domain.FilterAll), 4)
	assert.Len(t, domain.FilterParticipants(ps, ""), 4)
	assert.Len(t, domain.FilterParticipants(ps, "in-progress"), 2)
	assert.Empty(t, domain.FilterParticipants(ps, "In-Progress"))
}

func TestComputeMetrics(t *testing.T) {
	m := domain.ComputeMetrics(participants())
	assert.Equal(t, domain.ReportingMetrics{TotalParticipants: 4, YetToStart: 1, InProgress: 2, Completed: 1}, m)
}

func TestColumnSetToggle(t *testing.T) {
	s := domain.DefaultColumns()
	require.Len(t, s.Keys(), len(domain.ReportColumns))

	hidden, err := s.Toggle(domain.ColumnTimeSpent)
	require.NoError(t, err)
	assert.False(t, hidden.Visible(domain.ColumnTimeSpent))
	assert.True(t, s.Visible(domain.ColumnTimeSpent), "toggle must not modify the receiver")

	shown, err := hidden.Toggle(domain.ColumnTimeSpent)
	require.NoError(t, err)
	assert.Equal(t, s.Keys(), shown.Keys())

	_, err = s.Toggle("bogus")
	assert.ErrorIs(t, err, domain.ErrUnknownColumn)
}

func TestProjectRowUsesVisibleColumns(t *testing.T) {
	s, _ := domain.DefaultColumns().Toggle(domain.ColumnCourseName)
	row := domain.ProjectRow(s, 2, participants()[0])

	assert.Equal(t, 3, row[domain.ColumnSNo])
	assert.Equal(t, "Asha", row[domain.ColumnParticipantName])
	assert.Nil(t, row[domain.ColumnStartDate])
	_, ok := row[domain.ColumnCourseName]
	assert.False(t, ok)
}

func TestSettingsApply(t *testing.T) {
	s := domain.DefaultSettings()
	got := s.Apply(domain.SettingsUpdate{PlatformName: domain.Set("Academy"), Phone: domain.Set("+91 99")})

	assert.Equal(t, "Academy", got.PlatformName)
	assert.Equal(t, "+91 99", got.Profile.Phone)
	assert.Equal(t, "Admin", got.Profile.FirstName)
	assert.Equal(t, "LearnHub", s.PlatformName)
}

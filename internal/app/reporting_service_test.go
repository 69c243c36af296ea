package app_test

import (
	"context"
	"testing"
	"time"

	"lms-admin-service/internal/app"
	"lms-admin-service/internal/domain"
	"lms-admin-service/internal/infra/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReporting() *app.ReportingService {
	ps := memory.NewStaticCatalog(time.Now()).Participants
	return app.NewReportingService(memory.NewParticipantRepository(memory.NewStaticParticipantLoader(ps), time.Minute))
}

func TestReportFilters(t *testing.T) {
	s := newReporting()
	ctx := context.Background()

	all, err := s.Report(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, all.Filter)
	assert.Equal(t, 4, all.Showing)
	assert.Equal(t, 4, all.Total)
	assert.Equal(t, domain.ReportingMetrics{TotalParticipants: 4, YetToStart: 1, InProgress: 2, Completed: 1}, all.Metrics)

	done, err := s.Report(ctx, string(domain.ParticipantCompleted))
	require.NoError(t, err)
	assert.Equal(t, 1, done.Showing)
	assert.Equal(t, 4, done.Total)
	assert.Equal(t, 1, done.Rows[0][domain.ColumnSNo])

	_, err = s.Report(ctx, "archived")
	assert.True(t, domain.IsValidation(err))
}

func TestToggleColumn(t *testing.T) {
	s := newReporting()
	ctx := context.Background()

	visible := func(key domain.ColumnKey) bool {
		for _, c := range s.Columns() {
			if c.Key == key {
				return c.Visible
			}
		}
		t.Fatalf("column %s missing", key)
		return false
	}

	start := visible(domain.ColumnCourseName)
	_, err := s.ToggleColumn(domain.ColumnCourseName)
	require.NoError(t, err)
	assert.Equal(t, !start, visible(domain.ColumnCourseName))

	report, err := s.Report(ctx, "all")
	require.NoError(t, err)
	_, present := report.Rows[0][domain.ColumnCourseName]
	assert.Equal(t, !start, present)

	_, err = s.ToggleColumn(domain.ColumnCourseName)
	require.NoError(t, err)
	assert.Equal(t, start, visible(domain.ColumnCourseName))

	_, err = s.ToggleColumn("nope")
	assert.True(t, domain.IsValidation(err))
}

func TestSettingsService(t *testing.T) {
	s := app.NewSettingsService(domain.DefaultSettings(), []string{"Ann"})

	got, err := s.Update(domain.SettingsUpdate{Phone: domain.Set("555-0100")})
	require.NoError(t, err)
	assert.Equal(t, "555-0100", got.Profile.Phone)
	assert.Equal(t, "Admin", got.Profile.FirstName)

	_, err = s.Update(domain.SettingsUpdate{PlatformName: domain.Set("")})
	assert.True(t, domain.IsValidation(err))
	assert.Equal(t, "LearnHub", s.Get().PlatformName)

	persons := s.ResponsiblePersons()
	persons[0] = "changed"
	assert.Equal(t, []string{"Ann"}, s.ResponsiblePersons())
}

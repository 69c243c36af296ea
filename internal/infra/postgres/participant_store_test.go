package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"lms-admin-service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
)

func newMockDB(t *testing.T) (*bun.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqldb, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := bun.NewDB(sqldb, pgdialect.New())
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

func TestParticipantStore_LoadParticipants(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewParticipantStore(db)

	enrolled := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	started := enrolled.Add(24 * time.Hour)
	rows := sqlmock.NewRows([]string{
		"id", "course_id", "course_name", "participant_name", "enrolled_date",
		"start_date", "time_spent", "completion_percentage", "completed_date", "status",
	}).
		AddRow("p-1", "course-1", "Basics of Odoo CRM", "Alice Brown", enrolled, started, "0h 40m", int64(45), nil, "in-progress").
		AddRow("p-2", "course-1", "Basics of Odoo CRM", "Bob Martin", enrolled, nil, "0h 00m", int64(0), nil, "yet-to-start")

	mock.ExpectQuery(`SELECT .* FROM "participants" AS "p" ORDER BY p.enrolled_date DESC`).WillReturnRows(rows)

	ps, err := store.LoadParticipants(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 2)

	assert.Equal(t, "Alice Brown", ps[0].ParticipantName)
	assert.Equal(t, domain.ParticipantInProgress, ps[0].Status)
	assert.Equal(t, 45, ps[0].CompletionPercentage)
	require.NotNil(t, ps[0].StartDate)
	assert.True(t, ps[0].StartDate.Equal(started))
	assert.Nil(t, ps[0].CompletedDate)

	assert.Equal(t, domain.ParticipantYetToStart, ps[1].Status)
	assert.Nil(t, ps[1].StartDate)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantStore_LoadParticipantsError(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewParticipantStore(db)

	mock.ExpectQuery(`SELECT .* FROM "participants"`).WillReturnError(errors.New("connection refused"))

	_, err := store.LoadParticipants(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load participants")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipantStore_SeedEmptyIsNoop(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewParticipantStore(db)

	require.NoError(t, store.Seed(context.Background(), nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

package postgres

import (
	"context"
	"fmt"
	"time"

	"lms-admin-service/internal/domain"

	"github.com/uptrace/bun"
)

type participantRow struct {
	bun.BaseModel `bun:"table:participants,alias:p"`

	ID                   string     `bun:"id,pk"`
	CourseID             string     `bun:"course_id,notnull"`
	CourseName           string     `bun:"course_name,notnull"`
	ParticipantName      string     `bun:"participant_name,notnull"`
	EnrolledDate         time.Time  `bun:"enrolled_date,notnull"`
	StartDate            *time.Time `bun:"start_date"`
	TimeSpent            string     `bun:"time_spent,notnull"`
	CompletionPercentage int        `bun:"completion_percentage,notnull"`
	CompletedDate        *time.Time `bun:"completed_date"`
	Status               string     `bun:"status,notnull"`
}

// ParticipantStore reads enrollments from the participants table.
type ParticipantStore struct {
	db *bun.DB
}

func NewParticipantStore(db *bun.DB) *ParticipantStore {
	return &ParticipantStore{db: db}
}

// LoadParticipants returns every participant, most recent enrollment first.
func (s *ParticipantStore) LoadParticipants(ctx context.Context) ([]domain.Participant, error) {
	var rows []participantRow
	if err := s.db.NewSelect().Model(&rows).OrderExpr("p.enrolled_date DESC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("load participants: %w", err)
	}
	out := make([]domain.Participant, len(rows))
	for i, r := range rows {
		out[i] = r.toDomain()
	}
	return out, nil
}

// Seed inserts participants, skipping ids that already exist.
func (s *ParticipantStore) Seed(ctx context.Context, ps []domain.Participant) error {
	if len(ps) == 0 {
		return nil
	}
	rows := make([]participantRow, len(ps))
	for i, p := range ps {
		rows[i] = fromDomain(p)
	}
	if _, err := s.db.NewInsert().Model(&rows).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
		return fmt.Errorf("seed participants: %w", err)
	}
	return nil
}

func (r participantRow) toDomain() domain.Participant {
	return domain.Participant{
		ID:                   r.ID,
		CourseID:             r.CourseID,
		CourseName:           r.CourseName,
		ParticipantName:      r.ParticipantName,
		EnrolledDate:         r.EnrolledDate,
		StartDate:            r.StartDate,
		TimeSpent:            r.TimeSpent,
		CompletionPercentage: r.CompletionPercentage,
		CompletedDate:        r.CompletedDate,
		Status:               domain.ParticipantStatus(r.Status),
	}
}

func fromDomain(p domain.Participant) participantRow {
	return participantRow{
		ID:                   p.ID,
		CourseID:             p.CourseID,
		CourseName:           p.CourseName,
		ParticipantName:      p.ParticipantName,
		EnrolledDate:         p.EnrolledDate,
		StartDate:            p.StartDate,
		TimeSpent:            p.TimeSpent,
		CompletionPercentage: p.CompletionPercentage,
		CompletedDate:        p.CompletedDate,
		Status:               string(p.Status),
	}
}

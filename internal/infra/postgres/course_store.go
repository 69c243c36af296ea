package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lms-admin-service/internal/domain"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
)

// CourseStore keeps each course as a JSONB document. The seq column orders
// the catalog: the most recently created course comes first.
type CourseStore struct {
	pool *pgxpool.Pool
}

func NewCourseStore(pool *pgxpool.Pool) *CourseStore {
	return &CourseStore{pool: pool}
}

func (s *CourseStore) List(ctx context.Context) ([]domain.Course, error) {
	rows, err := s.pool.Query(ctx, `SELECT data FROM courses ORDER BY seq DESC`)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	defer rows.Close()

	var courses []domain.Course
	for rows.Next() {
		var raw []byte
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scan course: %w", err)
		}
		var c domain.Course
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, fmt.Errorf("unmarshal course: %w", err)
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}
	return courses, nil
}

func (s *CourseStore) Get(ctx context.Context, id string) (domain.Course, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT data FROM courses WHERE id=$1`, id).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Course{}, domain.ErrCourseNotFound
	}
	if err != nil {
		return domain.Course{}, fmt.Errorf("load course: %w", err)
	}
	var c domain.Course
	if err := json.Unmarshal(raw, &c); err != nil {
		return domain.Course{}, fmt.Errorf("unmarshal course: %w", err)
	}
	return c, nil
}

func (s *CourseStore) Create(ctx context.Context, c domain.Course) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal course: %w", err)
	}
	if _, err := s.pool.Exec(ctx, `INSERT INTO courses (id, data) VALUES ($1, $2)`, c.ID, raw); err != nil {
		return fmt.Errorf("insert course: %w", err)
	}
	return nil
}

func (s *CourseStore) Save(ctx context.Context, c domain.Course) error {
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal course: %w", err)
	}
	tag, err := s.pool.Exec(ctx, `UPDATE courses SET data=$2, updated_at=now() WHERE id=$1`, c.ID, raw)
	if err != nil {
		return fmt.Errorf("update course: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCourseNotFound
	}
	return nil
}

// Seed inserts courses that are not stored yet. courses is in catalog order
// (newest first), so it is inserted back to front.
func (s *CourseStore) Seed(ctx context.Context, courses []domain.Course) (int, error) {
	inserted := 0
	for i := len(courses) - 1; i >= 0; i-- {
		raw, err := json.Marshal(courses[i])
		if err != nil {
			return inserted, fmt.Errorf("marshal course: %w", err)
		}
		tag, err := s.pool.Exec(ctx, `INSERT INTO courses (id, data) VALUES ($1, $2) ON CONFLICT (id) DO NOTHING`, courses[i].ID, raw)
		if err != nil {
			return inserted, fmt.Errorf("seed course %s: %w", courses[i].ID, err)
		}
		inserted += int(tag.RowsAffected())
	}
	return inserted, nil
}

package memory

import (
	"context"
	"sync"

	"lms-admin-service/internal/domain"
)

// CourseRepository is an in-memory implementation of app.CourseRepository.
// Courses are kept newest first; values are cloned on the way in and out.
type CourseRepository struct {
	mu      sync.RWMutex
	courses []domain.Course
}

// NewCourseRepository seeds the catalog with courses in the given order.
func NewCourseRepository(seed []domain.Course) *CourseRepository {
	r := &CourseRepository{courses: make([]domain.Course, 0, len(seed))}
	for _, c := range seed {
		r.courses = append(r.courses, c.Clone())
	}
	return r
}

func (r *CourseRepository) List(_ context.Context) ([]domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Course, len(r.courses))
	for i, c := range r.courses {
		out[i] = c.Clone()
	}
	return out, nil
}

func (r *CourseRepository) Get(_ context.Context, id string) (domain.Course, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexLocked(id); i >= 0 {
		return r.courses[i].Clone(), nil
	}
	return domain.Course{}, domain.ErrCourseNotFound
}

func (r *CourseRepository) Create(_ context.Context, c domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.courses = append([]domain.Course{c.Clone()}, r.courses...)
	return nil
}

func (r *CourseRepository) Save(_ context.Context, c domain.Course) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexLocked(c.ID)
	if i < 0 {
		return domain.ErrCourseNotFound
	}
	r.courses[i] = c.Clone()
	return nil
}

func (r *CourseRepository) indexLocked(id string) int {
	for i, c := range r.courses {
		if c.ID == id {
			return i
		}
	}
	return -1
}

package app

import (
	"context"
	"sort"
	"sync"
	"time"

	"lms-admin-service/internal/domain"

	"go.uber.org/zap"
)

// CourseRepository stores the course catalog, newest first.
type CourseRepository interface {
	List(ctx context.Context) ([]domain.Course, error)
	Get(ctx context.Context, id string) (domain.Course, error)
	// Create puts c at the front of the catalog.
	Create(ctx context.Context, c domain.Course) error
	// Save replaces the course with the same id in place.
	Save(ctx context.Context, c domain.Course) error
}

// SessionRepository keeps the edit sessions of open courses (in-memory, Redis, etc).
type SessionRepository interface {
	GetOrCreate(courseID string) *EditSession
	Get(courseID string) (*EditSession, bool)
	// Touch marks an open course as still being edited.
	Touch(courseID string)
	DeleteIfIdle(courseID string)
	OpenCourses(ctx context.Context) ([]string, error)
}

// Notification is a fire-and-forget message for the admin, such as a toast.
type Notification struct {
	Kind     string `json:"kind"`
	Message  string `json:"message"`
	CourseID string `json:"courseId,omitempty"`
	URL      string `json:"url,omitempty"`
}

// Notifier delivers notifications. Implementations must not block the caller for long.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// CourseServiceConfig tunes a CourseService. Zero fields fall back to defaults.
type CourseServiceConfig struct {
	// Origin prefixes share links, e.g. https://lms.example.com.
	Origin  string
	Rewards domain.QuizRewards
	Now     func() time.Time
	NewID   domain.IDFunc
}

// CourseService is the single writer of the catalog and of every open course.
// Editor changes are applied to the open course and written back to the
// catalog by id; the last write wins.
type CourseService struct {
	mu       sync.Mutex
	courses  CourseRepository
	sessions SessionRepository
	notifier Notifier
	logger   *zap.Logger

	origin  string
	rewards domain.QuizRewards
	now     func() time.Time
	newID   domain.IDFunc
}

func NewCourseService(courses CourseRepository, sessions SessionRepository, notifier Notifier, logger *zap.Logger, cfg CourseServiceConfig) *CourseService {
	s := &CourseService{
		courses:  courses,
		sessions: sessions,
		notifier: notifier,
		logger:   logger,
		origin:   cfg.Origin,
		rewards:  cfg.Rewards,
		now:      cfg.Now,
		newID:    cfg.NewID,
	}
	if s.rewards == (domain.QuizRewards{}) {
		s.rewards = domain.DefaultRewards
	}
	if s.now == nil {
		s.now = time.Now
	}
	if s.newID == nil {
		s.newID = domain.NewID
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.notifier == nil {
		s.notifier = nopNotifier{}
	}
	return s
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, Notification) {}

// ListCourses returns the catalog filtered by a case-insensitive name query.
func (s *CourseService) ListCourses(ctx context.Context, query string) ([]domain.Course, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterCourses(courses, query), nil
}

// Kanban returns the filtered catalog split into published and draft.
func (s *CourseService) Kanban(ctx context.Context, query string) (domain.Kanban, error) {
	courses, err := s.ListCourses(ctx, query)
	if err != nil {
		return domain.Kanban{}, err
	}
	return domain.PartitionKanban(courses), nil
}

// CreateCourse adds an empty draft at the front of the catalog and opens it.
func (s *CourseService) CreateCourse(ctx context.Context, name string) (domain.Course, error) {
	name, err := domain.ValidateCourseName(name)
	if err != nil {
		return domain.Course{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c := domain.NewCourse(s.newID("course"), name, s.rewards, s.now())
	if err := s.courses.Create(ctx, c); err != nil {
		return domain.Course{}, err
	}
	c = s.sessions.GetOrCreate(c.ID).load(c, s.newID)
	s.logger.Info("course created", zap.String("course_id", c.ID), zap.String("name", c.Name))
	s.notifier.Notify(ctx, Notification{Kind: "success", Message: "Course created! Start adding content.", CourseID: c.ID})
	return c, nil
}

// OpenCourse starts (or resumes) editing a course.
func (s *CourseService) OpenCourse(ctx context.Context, id string) (domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.openLocked(ctx, id)
	if err != nil {
		return domain.Course{}, err
	}
	return session.snapshot(), nil
}

// CloseCourse leaves the editor. The session is dropped once nobody watches it.
func (s *CourseService) CloseCourse(_ context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions.Get(id)
	if !ok {
		return
	}
	session.close()
	s.sessions.DeleteIfIdle(id)
}

// GetCourse returns the open version of a course if any, else the catalog one.
func (s *CourseService) GetCourse(ctx context.Context, id string) (domain.Course, error) {
	if session, ok := s.sessions.Get(id); ok && session.isLoaded() {
		return session.snapshot(), nil
	}
	return s.courses.Get(ctx, id)
}

// UpdateCourse applies a partial update to the course and refreshes UpdatedAt.
// A present name is trimmed and must not be blank; a present access type must be known.
func (s *CourseService) UpdateCourse(ctx context.Context, id string, u domain.CourseUpdate) (domain.Course, error) {
	u, err := validateUpdate(u)
	if err != nil {
		return domain.Course{}, err
	}
	return s.edit(ctx, id, func(domain.Course) (domain.CourseUpdate, bool, error) {
		return u, true, nil
	})
}

// AddTag adds a tag from the editor header. Blank or duplicate names are ignored.
func (s *CourseService) AddTag(ctx context.Context, id, name string) (domain.Course, error) {
	return s.edit(ctx, id, func(c domain.Course) (domain.CourseUpdate, bool, error) {
		tags, changed := domain.AddTag(c.Tags, name, s.newID)
		return domain.CourseUpdate{Tags: domain.Set(tags)}, changed, nil
	})
}

// RemoveTag removes a tag from the editor header.
func (s *CourseService) RemoveTag(ctx context.Context, id, tagID string) (domain.Course, error) {
	return s.edit(ctx, id, func(c domain.Course) (domain.CourseUpdate, bool, error) {
		return domain.CourseUpdate{Tags: domain.Set(domain.RemoveTag(c.Tags, tagID))}, true, nil
	})
}

// RemoveCatalogTag removes a tag from a catalog card. Only the tags of the
// targeted course change; UpdatedAt is left alone.
func (s *CourseService) RemoveCatalogTag(ctx context.Context, courseID, tagID string) (domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.courses.Get(ctx, courseID)
	if err != nil {
		return domain.Course{}, err
	}
	c.Tags = domain.RemoveTag(c.Tags, tagID)
	if err := s.courses.Save(ctx, c); err != nil {
		return domain.Course{}, err
	}
	if session, ok := s.sessions.Get(courseID); ok && session.isLoaded() {
		session.replaceTags(c.Tags)
	}
	return c, nil
}

// SetPublished toggles the course between published and draft.
func (s *CourseService) SetPublished(ctx context.Context, id string, published bool) (domain.Course, error) {
	c, err := s.edit(ctx, id, func(domain.Course) (domain.CourseUpdate, bool, error) {
		return domain.PublishUpdate(published), true, nil
	})
	if err != nil {
		return c, err
	}
	msg := "Course moved to draft"
	if published {
		msg = "Course published!"
	}
	s.notifier.Notify(ctx, Notification{Kind: "success", Message: msg, CourseID: id})
	return c, nil
}

// SetAccessType selects a visibility or enrollment rule; leaving paid clears the price.
func (s *CourseService) SetAccessType(ctx context.Context, id string, access domain.AccessType) (domain.Course, error) {
	if !access.Valid() {
		return domain.Course{}, &domain.ValidationError{Field: "accessType", Message: "unknown access type " + string(access)}
	}
	return s.edit(ctx, id, func(domain.Course) (domain.CourseUpdate, bool, error) {
		return domain.AccessUpdate(access), true, nil
	})
}

// SetPrice sets or, with nil, clears the course price.
func (s *CourseService) SetPrice(ctx context.Context, id string, price *float64) (domain.Course, error) {
	if price != nil && *price < 0 {
		return domain.Course{}, &domain.ValidationError{Field: "price", Message: "price must not be negative"}
	}
	return s.edit(ctx, id, func(domain.Course) (domain.CourseUpdate, bool, error) {
		if price == nil {
			return domain.CourseUpdate{Price: domain.Set[*float64](nil)}, true, nil
		}
		return domain.PriceUpdate(*price), true, nil
	})
}

// ShareLink returns the public URL of the course and notifies the admin.
func (s *CourseService) ShareLink(ctx context.Context, id string) (string, error) {
	if _, err := s.GetCourse(ctx, id); err != nil {
		return "", err
	}
	url := domain.ShareURL(s.origin, id)
	s.notifier.Notify(ctx, Notification{Kind: "success", Message: "Course link copied to clipboard!", CourseID: id, URL: url})
	return url, nil
}

// OpenCourses lists the ids of the courses currently open in an editor.
func (s *CourseService) OpenCourses(ctx context.Context) ([]string, error) {
	ids, err := s.sessions.OpenCourses(ctx)
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []string{}
	}
	sort.Strings(ids)
	return ids, nil
}

// Subscribe streams course snapshots while the course is edited.
// The caller must invoke the returned cancel function to avoid leaks.
func (s *CourseService) Subscribe(ctx context.Context, id string) (<-chan domain.Course, func(), error) {
	s.mu.Lock()
	session, err := s.openLocked(ctx, id)
	s.mu.Unlock()
	if err != nil {
		return nil, nil, err
	}
	ch, cancel := session.subscribe()
	return ch, func() {
		cancel()
		s.mu.Lock()
		s.sessions.DeleteIfIdle(id)
		s.mu.Unlock()
	}, nil
}

func validateUpdate(u domain.CourseUpdate) (domain.CourseUpdate, error) {
	if name, ok := u.Name.Get(); ok {
		trimmed, err := domain.ValidateCourseName(name)
		if err != nil {
			return u, err
		}
		u.Name = domain.Set(trimmed)
	}
	if access, ok := u.AccessType.Get(); ok && !access.Valid() {
		return u, &domain.ValidationError{Field: "accessType", Message: "unknown access type " + string(access)}
	}
	if price, ok := u.Price.Get(); ok && price != nil && *price < 0 {
		return u, &domain.ValidationError{Field: "price", Message: "price must not be negative"}
	}
	return u, nil
}

// edit runs fn against the open course and commits the update it returns.
// When fn reports no change the course is returned untouched.
func (s *CourseService) edit(ctx context.Context, id string, fn func(c domain.Course) (domain.CourseUpdate, bool, error)) (domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.openLocked(ctx, id)
	if err != nil {
		return domain.Course{}, err
	}
	current := session.snapshot()
	u, changed, err := fn(current)
	if err != nil {
		return domain.Course{}, err
	}
	if !changed {
		return current, nil
	}
	updated := session.apply(u, s.now())
	if err := s.courses.Save(ctx, updated); err != nil {
		return domain.Course{}, err
	}
	return updated, nil
}

// openLocked returns the session of course id, loading it from the catalog if needed.
func (s *CourseService) openLocked(ctx context.Context, id string) (*EditSession, error) {
	if session, ok := s.sessions.Get(id); ok && session.isLoaded() {
		session.reopen()
		s.sessions.Touch(id)
		return session, nil
	}
	c, err := s.courses.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	session := s.sessions.GetOrCreate(id)
	session.load(c, s.newID)
	return session, nil
}

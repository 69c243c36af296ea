package app

import (
	"sync"
	"time"

	"lms-admin-service/internal/domain"
)

// QuizState is the quiz tab's view: the quiz plus the selected question.
type QuizState struct {
	Quiz               domain.Quiz `json:"quiz"`
	SelectedQuestionID string      `json:"selectedQuestionId,omitempty"`
}

// EditSession is the in-memory state of one course open in the editor.
// Subscribers receive a snapshot after every change.
type EditSession struct {
	id string

	mu          sync.RWMutex
	loaded      bool
	open        bool
	course      domain.Course
	quiz        *domain.QuizEditor
	subscribers map[chan domain.Course]struct{}
}

// NewEditSession is exported for infrastructure layers that keep sessions.
func NewEditSession(courseID string) *EditSession {
	return &EditSession{
		id:          courseID,
		subscribers: make(map[chan domain.Course]struct{}),
	}
}

func (s *EditSession) ID() string { return s.id }

// load installs c unless the session already holds a course.
func (s *EditSession) load(c domain.Course, newID domain.IDFunc) domain.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.loaded {
		s.course = c.Clone()
		s.quiz = domain.NewQuizEditor(c.Quiz, newID)
		s.loaded = true
	}
	s.open = true
	return s.course.Clone()
}

func (s *EditSession) reopen() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

func (s *EditSession) isLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *EditSession) snapshot() domain.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.course.Clone()
}

func (s *EditSession) apply(u domain.CourseUpdate, now time.Time) domain.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.course = domain.ApplyCourseUpdate(s.course, u, now)
	if u.Quiz.IsSet() {
		s.quiz.Reset(s.course.Quiz)
	}
	return s.broadcastLocked()
}

// replaceTags swaps the tag list without touching UpdatedAt.
func (s *EditSession) replaceTags(tags []domain.Tag) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.course.Tags = append([]domain.Tag{}, tags...)
	s.broadcastLocked()
}

// editQuiz runs fn against the quiz editor and, if fn reports a change,
// writes the quiz back into the course.
func (s *EditSession) editQuiz(now time.Time, fn func(e *domain.QuizEditor) (bool, error)) (QuizState, domain.Course, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	changed, err := fn(s.quiz)
	if err != nil || !changed {
		return s.quizStateLocked(), s.course.Clone(), false, err
	}
	s.course = domain.ApplyCourseUpdate(s.course, domain.CourseUpdate{Quiz: domain.Set(s.quiz.Quiz())}, now)
	course := s.broadcastLocked()
	return s.quizStateLocked(), course, true, nil
}

func (s *EditSession) selectQuestion(id string) (QuizState, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := s.quiz.Select(id)
	return s.quizStateLocked(), ok
}

func (s *EditSession) quizState() QuizState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.quizStateLocked()
}

func (s *EditSession) quizStateLocked() QuizState {
	selected, _ := s.quiz.Selected()
	return QuizState{Quiz: s.quiz.Quiz(), SelectedQuestionID: selected}
}

func (s *EditSession) close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// IsIdle reports whether the course is closed and nobody is watching it.
func (s *EditSession) IsIdle() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.open && len(s.subscribers) == 0
}

func (s *EditSession) subscribe() (<-chan domain.Course, func()) {
	ch := make(chan domain.Course, 8)

	// the initial snapshot goes out under the lock so no broadcast can overtake it;
	// the buffer is empty, so the send never blocks
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	ch <- s.course.Clone()
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *EditSession) broadcastLocked() domain.Course {
	for ch := range s.subscribers {
		snapshot := s.course.Clone()
		select {
		case ch <- snapshot:
		default:
			// slow subscriber: drop the oldest snapshot so the latest one lands
			select {
			case <-ch:
			default:
			}
			ch <- snapshot
		}
	}
	return s.course.Clone()
}

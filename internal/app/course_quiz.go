package app

import (
	"context"

	"lms-admin-service/internal/domain"
)

// QuizState returns the quiz of an open course with its selected question.
func (s *CourseService) QuizState(ctx context.Context, courseID string) (QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.openLocked(ctx, courseID)
	if err != nil {
		return QuizState{}, err
	}
	return session.quizState(), nil
}

// RewardForAttempt returns the points the course's quiz grants when it is
// completed on the given 1-based attempt.
func (s *CourseService) RewardForAttempt(ctx context.Context, courseID string, attempt int) (int, error) {
	if attempt < 1 {
		return 0, &domain.ValidationError{Field: "attempt", Message: "attempt must be at least 1"}
	}
	c, err := s.GetCourse(ctx, courseID)
	if err != nil {
		return 0, err
	}
	return c.Quiz.Rewards.ForAttempt(attempt), nil
}

// AddQuestion appends a question with two default options and selects it.
func (s *CourseService) AddQuestion(ctx context.Context, courseID string) (QuizState, error) {
	return s.editQuiz(ctx, courseID, func(e *domain.QuizEditor) (bool, error) {
		e.AddQuestion()
		return true, nil
	})
}

// DeleteQuestion removes a question; a selected question hands the selection
// to the first remaining one.
func (s *CourseService) DeleteQuestion(ctx context.Context, courseID, questionID string) (QuizState, error) {
	return s.editQuiz(ctx, courseID, func(e *domain.QuizEditor) (bool, error) {
		return e.DeleteQuestion(questionID), nil
	})
}

func (s *CourseService) UpdateQuestion(ctx context.Context, courseID, questionID string, u domain.QuestionUpdate) (QuizState, error) {
	return s.editQuiz(ctx, courseID, func(e *domain.QuizEditor) (bool, error) {
		return e.UpdateQuestion(questionID, u), nil
	})
}

func (s *CourseService) UpdateOption(ctx context.Context, courseID, questionID, optionID string, u domain.OptionUpdate) (QuizState, error) {
	return s.editQuiz(ctx, courseID, func(e *domain.QuizEditor) (bool, error) {
		return e.UpdateOption(questionID, optionID, u), nil
	})
}

// AddOption is a no-op once the question has domain.MaxOptions options.
func (s *CourseService) AddOption(ctx context.Context, courseID, questionID string) (QuizState, error) {
	return s.editQuiz(ctx, courseID, func(e *domain.QuizEditor) (bool, error) {
		return e.AddOption(questionID), nil
	})
}

// RemoveOption is a no-op while the question has domain.MinOptions options or fewer.
func (s *CourseService) RemoveOption(ctx context.Context, courseID, questionID, optionID string) (QuizState, error) {
	return s.editQuiz(ctx, courseID, func(e *domain.QuizEditor) (bool, error) {
		return e.RemoveOption(questionID, optionID), nil
	})
}

func (s *CourseService) SetReward(ctx context.Context, courseID string, field domain.RewardField, value int) (QuizState, error) {
	return s.editQuiz(ctx, courseID, func(e *domain.QuizEditor) (bool, error) {
		if err := e.SetReward(field, value); err != nil {
			return false, err
		}
		return true, nil
	})
}

// SelectQuestion moves the selection. Selection is editor state only and
// does not touch the course.
func (s *CourseService) SelectQuestion(ctx context.Context, courseID, questionID string) (QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, err := s.openLocked(ctx, courseID)
	if err != nil {
		return QuizState{}, err
	}
	state, _ := session.selectQuestion(questionID)
	return state, nil
}

func (s *CourseService) editQuiz(ctx context.Context, courseID string, fn func(e *domain.QuizEditor) (bool, error)) (QuizState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.openLocked(ctx, courseID)
	if err != nil {
		return QuizState{}, err
	}
	state, course, changed, err := session.editQuiz(s.now(), fn)
	if err != nil {
		return QuizState{}, err
	}
	if changed {
		if err := s.courses.Save(ctx, course); err != nil {
			return QuizState{}, err
		}
	}
	return state, nil
}

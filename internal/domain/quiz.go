package domain

import "strconv"

const (
	MinOptions = 2
	MaxOptions = 6
)

// RewardField names one of the four attempt-ordinal rewards.
type RewardField string

const (
	RewardFirstAttempt   RewardField = "firstAttempt"
	RewardSecondAttempt  RewardField = "secondAttempt"
	RewardThirdAttempt   RewardField = "thirdAttempt"
	RewardFourthAndAbove RewardField = "fourthAndAbove"
)

// QuestionUpdate is a partial update of a question.
type QuestionUpdate struct {
	Text    Opt[string]       `json:"text"`
	Options Opt[[]QuizOption] `json:"options"`
}

// OptionUpdate is a partial update of an option.
type OptionUpdate struct {
	Text      Opt[string] `json:"text"`
	IsCorrect Opt[bool]   `json:"isCorrect"`
}

// WithReward returns r with field replaced by value.
func (r QuizRewards) WithReward(field RewardField, value int) (QuizRewards, error) {
	switch field {
	case RewardFirstAttempt:
		r.FirstAttempt = value
	case RewardSecondAttempt:
		r.SecondAttempt = value
	case RewardThirdAttempt:
		r.ThirdAttempt = value
	case RewardFourthAndAbove:
		r.FourthAndAbove = value
	default:
		return r, ErrUnknownReward
	}
	return r, nil
}

// ForAttempt returns the points granted when the quiz is completed on the
// given 1-based attempt.
func (r QuizRewards) ForAttempt(attempt int) int {
	switch {
	case attempt <= 1:
		return r.FirstAttempt
	case attempt == 2:
		return r.SecondAttempt
	case attempt == 3:
		return r.ThirdAttempt
	default:
		return r.FourthAndAbove
	}
}

// QuizEditor edits a quiz and tracks which question is selected. Every
// operation replaces the question slice, so quizzes returned by Quiz are
// never mutated afterwards. Unknown ids are ignored.
type QuizEditor struct {
	quiz     Quiz
	selected string
	newID    IDFunc
}

// NewQuizEditor starts editing q with its first question selected.
func NewQuizEditor(q Quiz, newID IDFunc) *QuizEditor {
	e := &QuizEditor{quiz: q.Clone(), newID: newID}
	if len(e.quiz.Questions) > 0 {
		e.selected = e.quiz.Questions[0].ID
	}
	return e
}

// Quiz returns a copy of the edited quiz.
func (e *QuizEditor) Quiz() Quiz {
	return e.quiz.Clone()
}

// Reset replaces the edited quiz, keeping the selection if the selected
// question still exists.
func (e *QuizEditor) Reset(q Quiz) {
	e.quiz = q.Clone()
	if _, ok := e.find(e.selected); !ok {
		e.selected = ""
		if len(e.quiz.Questions) > 0 {
			e.selected = e.quiz.Questions[0].ID
		}
	}
}

// Selected returns the selected question id; ok is false when none is selected.
func (e *QuizEditor) Selected() (string, bool) {
	return e.selected, e.selected != ""
}

// Select points the selection at id if such a question exists.
func (e *QuizEditor) Select(id string) bool {
	if _, ok := e.find(id); !ok {
		return false
	}
	e.selected = id
	return true
}

// AddQuestion appends a question with two incorrect default options and selects it.
func (e *QuizEditor) AddQuestion() QuizQuestion {
	q := QuizQuestion{
		ID:   e.newID("q"),
		Text: "New Question",
		Options: []QuizOption{
			{ID: e.newID("o"), Text: "Option 1"},
			{ID: e.newID("o"), Text: "Option 2"},
		},
	}
	questions := make([]QuizQuestion, 0, len(e.quiz.Questions)+1)
	questions = append(questions, e.quiz.Questions...)
	e.quiz.Questions = append(questions, q)
	e.selected = q.ID
	return q.clone()
}

// DeleteQuestion removes the question. If it was selected, the selection
// moves to the first remaining question, or to none.
func (e *QuizEditor) DeleteQuestion(id string) bool {
	questions := make([]QuizQuestion, 0, len(e.quiz.Questions))
	found := false
	for _, q := range e.quiz.Questions {
		if q.ID == id {
			found = true
			continue
		}
		questions = append(questions, q)
	}
	if !found {
		return false
	}
	e.quiz.Questions = questions
	if e.selected == id {
		e.selected = ""
		if len(questions) > 0 {
			e.selected = questions[0].ID
		}
	}
	return true
}

// UpdateQuestion merges u into the question with id. A replacement option
// list outside [MinOptions, MaxOptions] is ignored.
func (e *QuizEditor) UpdateQuestion(id string, u QuestionUpdate) bool {
	return e.mutate(id, func(q *QuizQuestion) bool {
		u.Text.apply(&q.Text)
		if opts, ok := u.Options.Get(); ok && len(opts) >= MinOptions && len(opts) <= MaxOptions {
			q.Options = append([]QuizOption{}, opts...)
		}
		return true
	})
}

// UpdateOption merges u into option oid of question qid.
func (e *QuizEditor) UpdateOption(qid, oid string, u OptionUpdate) bool {
	return e.mutate(qid, func(q *QuizQuestion) bool {
		for i := range q.Options {
			if q.Options[i].ID == oid {
				u.Text.apply(&q.Options[i].Text)
				u.IsCorrect.apply(&q.Options[i].IsCorrect)
				return true
			}
		}
		return false
	})
}

// AddOption appends "Option N" to the question unless it already has MaxOptions.
func (e *QuizEditor) AddOption(qid string) bool {
	return e.mutate(qid, func(q *QuizQuestion) bool {
		if len(q.Options) >= MaxOptions {
			return false
		}
		q.Options = append(q.Options, QuizOption{
			ID:   e.newID("o"),
			Text: "Option " + strconv.Itoa(len(q.Options)+1),
		})
		return true
	})
}

// RemoveOption removes an option unless the question is at MinOptions.
func (e *QuizEditor) RemoveOption(qid, oid string) bool {
	return e.mutate(qid, func(q *QuizQuestion) bool {
		if len(q.Options) <= MinOptions {
			return false
		}
		opts := make([]QuizOption, 0, len(q.Options))
		for _, o := range q.Options {
			if o.ID != oid {
				opts = append(opts, o)
			}
		}
		if len(opts) == len(q.Options) {
			return false
		}
		q.Options = opts
		return true
	})
}

// SetReward replaces exactly one reward field.
func (e *QuizEditor) SetReward(field RewardField, value int) error {
	r, err := e.quiz.Rewards.WithReward(field, value)
	if err != nil {
		return err
	}
	e.quiz.Rewards = r
	return nil
}

func (e *QuizEditor) find(id string) (int, bool) {
	if id == "" {
		return -1, false
	}
	for i, q := range e.quiz.Questions {
		if q.ID == id {
			return i, true
		}
	}
	return -1, false
}

// mutate applies fn to a copy of question id and commits it when fn reports a change.
func (e *QuizEditor) mutate(id string, fn func(q *QuizQuestion) bool) bool {
	idx, ok := e.find(id)
	if !ok {
		return false
	}
	q := e.quiz.Questions[idx].clone()
	if !fn(&q) {
		return false
	}
	questions := append([]QuizQuestion{}, e.quiz.Questions...)
	questions[idx] = q
	e.quiz.Questions = questions
	return true
}

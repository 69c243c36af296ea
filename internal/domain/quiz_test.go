package domain_test

import (
	"testing"

	"lms-admin-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddQuestionSelectsItWithTwoIncorrectOptions(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{Rewards: domain.DefaultRewards}, domain.Sequence())

	_, ok := e.Selected()
	assert.False(t, ok)

	q := e.AddQuestion()
	selected, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, q.ID, selected)
	require.Len(t, q.Options, 2)
	for _, o := range q.Options {
		assert.False(t, o.IsCorrect)
	}
	assert.Equal(t, "Option 1", q.Options[0].Text)
	assert.Equal(t, "Option 2", q.Options[1].Text)
}

func TestDeleteSelectedQuestionMovesSelection(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{}, domain.Sequence())
	q1 := e.AddQuestion()
	q2 := e.AddQuestion()
	require.True(t, e.Select(q1.ID))

	require.True(t, e.DeleteQuestion(q1.ID))
	selected, ok := e.Selected()
	require.True(t, ok)
	assert.Equal(t, q2.ID, selected)

	require.True(t, e.DeleteQuestion(q2.ID))
	_, ok = e.Selected()
	assert.False(t, ok)
	assert.Empty(t, e.Quiz().Questions)
}

func TestDeleteUnselectedQuestionKeepsSelection(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{}, domain.Sequence())
	q1 := e.AddQuestion()
	q2 := e.AddQuestion()

	require.True(t, e.DeleteQuestion(q1.ID))
	selected, _ := e.Selected()
	assert.Equal(t, q2.ID, selected)
	assert.False(t, e.DeleteQuestion("missing"))
}

func TestOptionCountStaysWithinBounds(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{}, domain.Sequence())
	q := e.AddQuestion()

	countOptions := func() int {
		for _, question := range e.Quiz().Questions {
			if question.ID == q.ID {
				return len(question.Options)
			}
		}
		return -1
	}

	for i := 0; i < 10; i++ {
		e.AddOption(q.ID)
		n := countOptions()
		assert.GreaterOrEqual(t, n, domain.MinOptions)
		assert.LessOrEqual(t, n, domain.MaxOptions)
	}
	assert.Equal(t, domain.MaxOptions, countOptions())
	assert.False(t, e.AddOption(q.ID))

	for i := 0; i < 10; i++ {
		opts := e.Quiz().Questions[0].Options
		e.RemoveOption(q.ID, opts[len(opts)-1].ID)
		n := countOptions()
		assert.GreaterOrEqual(t, n, domain.MinOptions)
		assert.LessOrEqual(t, n, domain.MaxOptions)
	}
	assert.Equal(t, domain.MinOptions, countOptions())
}

func TestRemoveOptionAtLowerBoundIsNoop(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{}, domain.Sequence())
	q := e.AddQuestion()

	assert.False(t, e.RemoveOption(q.ID, q.Options[0].ID))
	assert.False(t, e.RemoveOption(q.ID, q.Options[0].ID))
	assert.Len(t, e.Quiz().Questions[0].Options, 2)
}

func TestAddOptionNamesByPosition(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{}, domain.Sequence())
	q := e.AddQuestion()
	require.True(t, e.AddOption(q.ID))
	assert.Equal(t, "Option 3", e.Quiz().Questions[0].Options[2].Text)
}

func TestUpdateQuestionAndOption(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{}, domain.Sequence())
	q := e.AddQuestion()

	require.True(t, e.UpdateQuestion(q.ID, domain.QuestionUpdate{Text: domain.Set("What is Go?")}))
	require.True(t, e.UpdateOption(q.ID, q.Options[0].ID, domain.OptionUpdate{IsCorrect: domain.Set(true)}))
	require.True(t, e.UpdateOption(q.ID, q.Options[1].ID, domain.OptionUpdate{IsCorrect: domain.Set(true)}))

	got := e.Quiz().Questions[0]
	assert.Equal(t, "What is Go?", got.Text)
	assert.True(t, got.Options[0].IsCorrect)
	assert.True(t, got.Options[1].IsCorrect, "several correct options are allowed")
	assert.Equal(t, "Option 1", got.Options[0].Text)

	assert.False(t, e.UpdateOption(q.ID, "missing", domain.OptionUpdate{Text: domain.Set("x")}))
	assert.False(t, e.UpdateQuestion("missing", domain.QuestionUpdate{Text: domain.Set("x")}))
}

func TestUpdateQuestionRejectsOutOfBoundsOptions(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{}, domain.Sequence())
	q := e.AddQuestion()

	e.UpdateQuestion(q.ID, domain.QuestionUpdate{Options: domain.Set([]domain.QuizOption{{ID: "only"}})})
	assert.Len(t, e.Quiz().Questions[0].Options, 2)
}

func TestQuizSnapshotsAreNotMutatedByLaterEdits(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{}, domain.Sequence())
	q := e.AddQuestion()
	before := e.Quiz()

	e.UpdateOption(q.ID, q.Options[0].ID, domain.OptionUpdate{Text: domain.Set("changed")})
	assert.Equal(t, "Option 1", before.Questions[0].Options[0].Text)
}

func TestSetRewardReplacesOneField(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{Rewards: domain.DefaultRewards}, domain.Sequence())
	require.NoError(t, e.SetReward(domain.RewardThirdAttempt, 40))

	r := e.Quiz().Rewards
	assert.Equal(t, 100, r.FirstAttempt)
	assert.Equal(t, 75, r.SecondAttempt)
	assert.Equal(t, 40, r.ThirdAttempt)
	assert.Equal(t, 25, r.FourthAndAbove)

	assert.ErrorIs(t, e.SetReward("fifth", 1), domain.ErrUnknownReward)
}

func TestRewardForAttempt(t *testing.T) {
	r := domain.DefaultRewards
	assert.Equal(t, 100, r.ForAttempt(1))
	assert.Equal(t, 75, r.ForAttempt(2))
	assert.Equal(t, 50, r.ForAttempt(3))
	assert.Equal(t, 25, r.ForAttempt(4))
	assert.Equal(t, 25, r.ForAttempt(9))
}

func TestResetKeepsExistingSelection(t *testing.T) {
	e := domain.NewQuizEditor(domain.Quiz{}, domain.Sequence())
	e.AddQuestion()
	q2 := e.AddQuestion()
	quiz := e.Quiz()

	e.Reset(quiz)
	selected, _ := e.Selected()
	assert.Equal(t, q2.ID, selected)

	e.Reset(domain.Quiz{Questions: quiz.Questions[:1]})
	selected, _ = e.Selected()
	assert.Equal(t, quiz.Questions[0].ID, selected)
}

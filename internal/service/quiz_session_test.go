package service

import (
	"fmt"
	"sync"
	"testing"

	"page-assist/internal/domain"

	"github.com/stretchr/testify/assert"
)

func intPtr(i int) *int { return &i }

func sampleQuiz() []domain.QuizItem {
	return []domain.QuizItem{
		{Question: "2+2?", Options: []string{"3", "4", "5", "6"}, CorrectIndex: intPtr(1), Explanation: "basic arithmetic"},
		{Question: "Capital of France?", Options: []string{"Paris", "Rome", "Berlin", "Madrid"}, CorrectIndex: intPtr(0)},
		{Question: "broken", CorrectIndex: intPtr(0)},
		{Question: "no index", Options: []string{"a", "b"}},
	}
}

func TestQuizSession_Check(t *testing.T) {
	session := NewQuizSession()
	session.Replace(sampleQuiz())

	tests := []struct {
		name     string
		payload  domain.CheckQuizAnswerPayload
		expected domain.QuizCheckResult
	}{
		{
			name:     "correct answer with explanation",
			payload:  domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(0), SelectedOptionIndex: intPtr(1)},
			expected: domain.QuizCheckResult{Correct: true, Explanation: "basic arithmetic"},
		},
		{
			name:     "wrong answer keeps item explanation",
			payload:  domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(0), SelectedOptionIndex: intPtr(2)},
			expected: domain.QuizCheckResult{Correct: false, Explanation: "basic arithmetic"},
		},
		{
			name:     "correct answer without explanation",
			payload:  domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(1), SelectedOptionIndex: intPtr(0)},
			expected: domain.QuizCheckResult{Correct: true, Explanation: domain.MsgCorrectAnswer},
		},
		{
			name:     "wrong answer without explanation names the right option",
			payload:  domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(1), SelectedOptionIndex: intPtr(3)},
			expected: domain.QuizCheckResult{Correct: false, Explanation: "The correct answer is: Paris"},
		},
		{
			name:     "missing question index",
			payload:  domain.CheckQuizAnswerPayload{SelectedOptionIndex: intPtr(0)},
			expected: domain.QuizCheckResult{Explanation: domain.MsgInvalidAnswerData},
		},
		{
			name:     "missing selected index",
			payload:  domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(0)},
			expected: domain.QuizCheckResult{Explanation: domain.MsgInvalidAnswerData},
		},
		{
			name:     "index past the end",
			payload:  domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(4), SelectedOptionIndex: intPtr(0)},
			expected: domain.QuizCheckResult{Explanation: domain.MsgQuestionNotFound},
		},
		{
			name:     "negative index",
			payload:  domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(-1), SelectedOptionIndex: intPtr(0)},
			expected: domain.QuizCheckResult{Explanation: domain.MsgQuestionNotFound},
		},
		{
			name:     "item without options",
			payload:  domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(2), SelectedOptionIndex: intPtr(0)},
			expected: domain.QuizCheckResult{Explanation: domain.MsgInvalidQuizFormat},
		},
		{
			name:     "item without correct index",
			payload:  domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(3), SelectedOptionIndex: intPtr(0)},
			expected: domain.QuizCheckResult{Explanation: domain.MsgInvalidQuizFormat},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, session.Check(tt.payload))
		})
	}
}

func TestQuizSession_CheckWithoutQuiz(t *testing.T) {
	session := NewQuizSession()
	result := session.Check(domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(0), SelectedOptionIndex: intPtr(0)})
	assert.Equal(t, domain.QuizCheckResult{Explanation: domain.MsgNoQuizData}, result)

	session.Replace([]domain.QuizItem{})
	result = session.Check(domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(0), SelectedOptionIndex: intPtr(0)})
	assert.Equal(t, domain.MsgNoQuizData, result.Explanation)
}

func TestQuizSession_ReplaceIsWholesale(t *testing.T) {
	session := NewQuizSession()
	session.Replace(sampleQuiz())
	assert.Equal(t, 4, session.Len())

	session.Replace(sampleQuiz()[:1])
	assert.Equal(t, 1, session.Len())
	result := session.Check(domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(1), SelectedOptionIndex: intPtr(0)})
	assert.Equal(t, domain.MsgQuestionNotFound, result.Explanation)
}

func TestQuizSession_ConcurrentReplaceAndCheck(t *testing.T) {
	session := NewQuizSession()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			session.Replace(sampleQuiz())
		}()
		go func() {
			defer wg.Done()
			r := session.Check(domain.CheckQuizAnswerPayload{QuestionIndex: intPtr(0), SelectedOptionIndex: intPtr(1)})
			if r.Correct {
				assert.Equal(t, "basic arithmetic", r.Explanation)
			}
		}()
	}
	wg.Wait()
}

func TestSessionStore_Get(t *testing.T) {
	store := NewSessionStore()

	a := store.Get("client-a")
	assert.Same(t, a, store.Get("client-a"))
	assert.NotSame(t, a, store.Get("client-b"))
	assert.Same(t, store.Get(""), store.Get(DefaultClientID))

	for i := 0; i < 3; i++ {
		store.Get(fmt.Sprintf("c%d", i)).Replace(sampleQuiz())
	}
	assert.Equal(t, 0, a.Len())
}

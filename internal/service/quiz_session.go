package service

import (
	"sync"

	"page-assist/internal/domain"
	"page-assist/internal/logger"

	"go.uber.org/zap"
)

// QuizSession holds the most recently generated quiz for one client.
// Sessions live in process memory only; after a restart the client must
// generate a new quiz.
type QuizSession struct {
	mu    sync.RWMutex
	items []domain.QuizItem
}

func NewQuizSession() *QuizSession {
	return &QuizSession{}
}

// Replace swaps in a new quiz set wholesale.
func (s *QuizSession) Replace(items []domain.QuizItem) {
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
}

// Len is the number of questions currently held.
func (s *QuizSession) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Check grades an answer against the held quiz. Every validation problem is
// reported through the result, never as an error.
func (s *QuizSession) Check(p domain.CheckQuizAnswerPayload) domain.QuizCheckResult {
	if p.QuestionIndex == nil || p.SelectedOptionIndex == nil {
		logger.Get().Warn("Missing questionIndex or selectedOptionIndex in checkQuizAnswer")
		return domain.QuizCheckResult{Explanation: domain.MsgInvalidAnswerData}
	}

	s.mu.RLock()
	items := s.items
	s.mu.RUnlock()

	if len(items) == 0 {
		logger.Get().Warn("No quiz data available in checkQuizAnswer")
		return domain.QuizCheckResult{Explanation: domain.MsgNoQuizData}
	}

	idx := *p.QuestionIndex
	if idx < 0 || idx >= len(items) {
		logger.Get().Warn("Question index out of bounds in checkQuizAnswer",
			zap.Int("question_index", idx),
			zap.Int("questions", len(items)))
		return domain.QuizCheckResult{Explanation: domain.MsgQuestionNotFound}
	}

	item := items[idx]
	if !item.WellFormed() {
		logger.Get().Warn("Invalid question data format", zap.Any("question", item))
		return domain.QuizCheckResult{Explanation: domain.MsgInvalidQuizFormat}
	}

	correct := *p.SelectedOptionIndex == *item.CorrectIndex
	explanation := item.Explanation
	if explanation == "" {
		if correct {
			explanation = domain.MsgCorrectAnswer
		} else {
			explanation = "The correct answer is: " + item.Options[*item.CorrectIndex]
		}
	}
	return domain.QuizCheckResult{Correct: correct, Explanation: explanation}
}

// DefaultClientID selects the session when a caller does not identify itself.
const DefaultClientID = "default"

// SessionStore hands out one QuizSession per client id for the lifetime of
// the process.
type SessionStore struct {
	mu       sync.Mutex
	sessions map[string]*QuizSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{sessions: make(map[string]*QuizSession)}
}

// Get returns the client's session, creating it on first use.
func (st *SessionStore) Get(clientID string) *QuizSession {
	if clientID == "" {
		clientID = DefaultClientID
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[clientID]
	if !ok {
		s = NewQuizSession()
		st.sessions[clientID] = s
	}
	return s
}

package domain

// QuizItem is one multiple-choice question produced by a quiz-mode learn call.
// CorrectIndex is a pointer because generated JSON may omit it.
type QuizItem struct {
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex *int     `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// WellFormed reports whether the item can be graded: it has options and a
// correct index pointing into them.
func (q QuizItem) WellFormed() bool {
	if q.Options == nil || q.CorrectIndex == nil {
		return false
	}
	idx := *q.CorrectIndex
	return idx >= 0 && idx < len(q.Options)
}

// FlashcardItem is returned to the caller and never retained.
type FlashcardItem struct {
	Front string `json:"front"`
	Back  string `json:"back"`
}

// QuizCheckResult is the result of checkQuizAnswer. Validation problems are
// reported through it with Correct=false instead of as errors.
type QuizCheckResult struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

const (
	MsgInvalidAnswerData = "Invalid question or answer data."
	MsgNoQuizData        = "No quiz data available. Please generate a new quiz."
	MsgQuestionNotFound  = "Question not found. Please generate a new quiz."
	MsgInvalidQuizFormat = "Invalid quiz data format. Please generate a new quiz."
	MsgCorrectAnswer     = "That is the correct answer."

	MsgQuizGenerationFailed      = "Failed to generate valid quiz questions. Please try again."
	MsgFlashcardGenerationFailed = "Failed to generate valid flashcards. Please try again."
)

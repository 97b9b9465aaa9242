package domain

// Action names an operation a caller may request of the relay.
type Action string

const (
	ActionSummarize       Action = "summarize"
	ActionAsk             Action = "ask"
	ActionSimplify        Action = "simplify"
	ActionCompare         Action = "compare"
	ActionLearn           Action = "learn"
	ActionTranslate       Action = "translate"
	ActionCheckQuizAnswer Action = "checkQuizAnswer"
)

// Actions lists every action the relay dispatches, in a stable order.
var Actions = []Action{
	ActionSummarize,
	ActionAsk,
	ActionSimplify,
	ActionCompare,
	ActionLearn,
	ActionTranslate,
	ActionCheckQuizAnswer,
}

// Valid reports whether a is one of the enumerated actions.
func (a Action) Valid() bool {
	for _, known := range Actions {
		if a == known {
			return true
		}
	}
	return false
}

// FreeText reports whether the action returns Markdown meant for rendering.
// learn returns JSON text and checkQuizAnswer a structured result.
func (a Action) FreeText() bool {
	switch a {
	case ActionSummarize, ActionAsk, ActionSimplify, ActionCompare, ActionTranslate:
		return true
	}
	return false
}

// Response is the single reply delivered for every relay request.
// Exactly one of Result and Error is meaningful.
type Response struct {
	Result interface{} `json:"result,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// Failed reports whether the response carries an error.
func (r Response) Failed() bool {
	return r.Error != ""
}

// Action payloads. Field sets differ per action; there is no shared schema.

type SummarizePayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type AskPayload struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Question string `json:"question"`
}

type SimplifyPayload struct {
	Content string `json:"content"`
	Level   string `json:"level"`
}

type ComparePayload struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	Content      string `json:"content"`
	ProductInput string `json:"productInput"`
}

const LearnModeQuiz = "quiz"

type LearnPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Mode    string `json:"mode"`
}

type TranslatePayload struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Language string `json:"language"`
}

// CheckQuizAnswerPayload uses pointers so a missing index is distinguishable from 0.
type CheckQuizAnswerPayload struct {
	QuestionIndex       *int `json:"questionIndex"`
	SelectedOptionIndex *int `json:"selectedOptionIndex"`
}

// PageContent is what the extension's content script extracts from a page.
type PageContent struct {
	Title           string `json:"title"`
	MetaDescription string `json:"metaDescription"`
	BodyText        string `json:"bodyText"`
	URL             string `json:"url"`
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"page-assist/internal/domain"
	"page-assist/internal/logger"

	"go.uber.org/zap"
)

// RelayService runs one action end to end and always produces a response.
type RelayService interface {
	Handle(ctx context.Context, session *QuizSession, action domain.Action, data json.RawMessage) domain.Response
}

type relayService struct {
	generator domain.Generator
	prompts   PromptBuilder
}

// NewRelayService creates a relay that sends prompts to generator, embedding
// at most maxContentChars characters of page content.
func NewRelayService(generator domain.Generator, maxContentChars int) RelayService {
	return &relayService{
		generator: generator,
		prompts:   PromptBuilder{MaxContentChars: maxContentChars},
	}
}

// Handle implements RelayService.
func (s *relayService) Handle(ctx context.Context, session *QuizSession, action domain.Action, data json.RawMessage) domain.Response {
	result, err := s.dispatch(ctx, session, action, data)
	if err != nil {
		logger.Get().Error("Error handling action",
			zap.String("action", string(action)),
			zap.Error(err))
		return domain.Response{Error: domain.UserMessage(err)}
	}
	return domain.Response{Result: result}
}

func (s *relayService) dispatch(ctx context.Context, session *QuizSession, action domain.Action, data json.RawMessage) (interface{}, error) {
	switch action {
	case domain.ActionSummarize:
		var p domain.SummarizePayload
		if err := decodePayload(action, data, &p); err != nil {
			return nil, err
		}
		return s.generate(ctx, s.prompts.Summarize(p))

	case domain.ActionAsk:
		var p domain.AskPayload
		if err := decodePayload(action, data, &p); err != nil {
			return nil, err
		}
		return s.generate(ctx, s.prompts.Ask(p))

	case domain.ActionSimplify:
		var p domain.SimplifyPayload
		if err := decodePayload(action, data, &p); err != nil {
			return nil, err
		}
		return s.generate(ctx, s.prompts.Simplify(p))

	case domain.ActionCompare:
		var p domain.ComparePayload
		if err := decodePayload(action, data, &p); err != nil {
			return nil, err
		}
		return s.generate(ctx, s.prompts.Compare(p))

	case domain.ActionTranslate:
		var p domain.TranslatePayload
		if err := decodePayload(action, data, &p); err != nil {
			return nil, err
		}
		return s.generate(ctx, s.prompts.Translate(p))

	case domain.ActionLearn:
		var p domain.LearnPayload
		if err := decodePayload(action, data, &p); err != nil {
			return nil, err
		}
		if p.Mode == domain.LearnModeQuiz {
			return s.learnQuiz(ctx, session, p)
		}
		return s.learnFlashcards(ctx, p)

	case domain.ActionCheckQuizAnswer:
		var p domain.CheckQuizAnswerPayload
		if err := decodePayload(action, data, &p); err != nil {
			logger.Get().Warn("Undecodable checkQuizAnswer payload", zap.Error(err))
			return domain.QuizCheckResult{Explanation: domain.MsgInvalidAnswerData}, nil
		}
		if session == nil {
			return domain.QuizCheckResult{Explanation: domain.MsgNoQuizData}, nil
		}
		return session.Check(p), nil

	default:
		return nil, domain.NewUnknownActionError(string(action))
	}
}

func (s *relayService) generate(ctx context.Context, prompt string) (string, error) {
	text, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		return "", domain.NewLLMServiceError(err)
	}
	return text, nil
}

func (s *relayService) learnQuiz(ctx context.Context, session *QuizSession, p domain.LearnPayload) (interface{}, error) {
	raw, err := s.generate(ctx, s.prompts.Quiz(p))
	if err != nil {
		return nil, err
	}
	cleaned := CleanJSONResponse(raw)

	var items []domain.QuizItem
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		logger.Get().Error("Failed to parse quiz data",
			zap.Error(err),
			zap.String("raw_response", raw),
			zap.String("cleaned_response", cleaned))
		return nil, domain.NewMalformedResponseError(domain.MsgQuizGenerationFailed, err)
	}

	if session != nil {
		session.Replace(items)
	}
	logger.Get().Info("Stored generated quiz", zap.Int("questions", len(items)))
	return cleaned, nil
}

func (s *relayService) learnFlashcards(ctx context.Context, p domain.LearnPayload) (interface{}, error) {
	raw, err := s.generate(ctx, s.prompts.Flashcards(p))
	if err != nil {
		return nil, err
	}
	cleaned := CleanJSONResponse(raw)

	var cards []domain.FlashcardItem
	if err := json.Unmarshal([]byte(cleaned), &cards); err != nil {
		logger.Get().Error("Failed to parse flashcards data",
			zap.Error(err),
			zap.String("raw_response", raw),
			zap.String("cleaned_response", cleaned))
		return nil, domain.NewMalformedResponseError(domain.MsgFlashcardGenerationFailed, err)
	}
	return cleaned, nil
}

// CleanJSONResponse removes every ```json and ``` marker and trims the rest.
func CleanJSONResponse(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

// decodePayload fills v from data. A missing or null payload leaves v zeroed.
func decodePayload(action domain.Action, data json.RawMessage, v interface{}) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(trimmed, v); err != nil {
		return domain.NewError(domain.CodeInvalidInput, fmt.Sprintf("Invalid data for action %s", action), err)
	}
	return nil
}

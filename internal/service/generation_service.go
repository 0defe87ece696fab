package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"lechemin_backend/internal/config"
	"lechemin_backend/internal/model"
	"lechemin_backend/internal/util"
	"lechemin_backend/pkg/monitoring"

	"go.uber.org/zap"
)

type Action string

const (
	ActionQuiz    Action = "quiz"
	ActionRoadmap Action = "roadmap"
)

// ParseAction coerces the wire value: anything other than "quiz" (including
// absent) means roadmap.
func ParseAction(s string) Action {
	if s == string(ActionQuiz) {
		return ActionQuiz
	}
	return ActionRoadmap
}

// GenerationService turns a (goal, answers, action) triple into validated
// structured output: a quiz question list or a skills roadmap. The model's
// free text is never forwarded; only payloads that pass schema validation
// leave this service.
type GenerationService struct {
	ai      *AIService
	enabled bool
	log     *zap.Logger
}

func NewGenerationService(cfg config.AIConfig, log *zap.Logger) *GenerationService {
	return &GenerationService{
		ai:      NewAIService(cfg),
		enabled: cfg.APIKey != "",
		log:     log,
	}
}

// Enabled reports whether an upstream API key is configured.
func (s *GenerationService) Enabled() bool {
	return s.enabled
}

func (s *GenerationService) Generate(ctx context.Context, goal string, answers model.AnswerMap, action Action) (json.RawMessage, error) {
	if !s.enabled {
		return nil, util.ErrNotConfigured
	}

	raw, err := s.generate(ctx, goal, answers, action)
	monitoring.GenerationCounter.WithLabelValues(string(action), outcomeLabel(err)).Inc()
	return raw, err
}

func (s *GenerationService) generate(ctx context.Context, goal string, answers model.AnswerMap, action Action) (json.RawMessage, error) {
	if answers == nil {
		answers = model.AnswerMap{}
	}
	userContext, err := json.Marshal(struct {
		Goal    string          `json:"goal"`
		Answers model.AnswerMap `json:"answers"`
	}{goal, answers})
	if err != nil {
		return nil, err
	}

	var system, user string
	if action == ActionQuiz {
		if len(answers) > 0 {
			system = quizFollowupPrompt
		} else {
			system = quizPrompt
		}
		user = "Objectif et réponses: " + string(userContext)
	} else {
		system = skillsPrompt
		user = "Génère la roadmap de COMPÉTENCES personnalisée pour: " + string(userContext)
	}

	content, err := s.ai.Complete(ctx, system, user)
	if err != nil {
		return nil, err
	}

	raw, ok := util.ExtractJSON(content)
	if !ok {
		return nil, util.ErrInvalidModelJSON
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, util.ErrInvalidModelJSON
	}

	schemaFile := "skills_roadmap.json"
	if action == ActionQuiz {
		schemaFile = "quiz.json"
	}
	schema, err := compiledSchema(schemaFile)
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		s.log.Warn("generation output failed validation",
			zap.String("action", string(action)),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", util.ErrFailedValidation, err)
	}

	return raw, nil
}

func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, util.ErrUpstreamTimeout):
		return "timeout"
	case errors.Is(err, util.ErrInvalidModelJSON):
		return "invalid_json"
	case errors.Is(err, util.ErrFailedValidation):
		return "validation_failed"
	default:
		return "upstream_error"
	}
}

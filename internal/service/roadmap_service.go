package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lechemin_backend/internal/model"

	"go.uber.org/zap"
)

// Generator is the remote generation boundary used by RoadmapService.
type Generator interface {
	Enabled() bool
	Generate(ctx context.Context, goal string, answers model.AnswerMap, action Action) (json.RawMessage, error)
}

// RoadmapService obtains quiz questions and roadmaps, preferring the remote
// generation call and degrading to fixed local content on any failure. Its
// public operations never return an error: the caller always gets usable
// content, and degradation is only visible in the logs.
type RoadmapService struct {
	gen    Generator
	engine *QuizEngine
	log    *zap.Logger
}

func NewRoadmapService(gen Generator, engine *QuizEngine, log *zap.Logger) *RoadmapService {
	return &RoadmapService{gen: gen, engine: engine, log: log}
}

func (s *RoadmapService) StartQuiz(ctx context.Context, goal string) []model.QuizQuestion {
	if s.gen.Enabled() {
		raw, err := s.gen.Generate(ctx, strings.TrimSpace(goal), model.AnswerMap{}, ActionQuiz)
		if err == nil {
			var questions []model.QuizQuestion
			if err := json.Unmarshal(raw, &questions); err == nil {
				return questions
			}
		} else {
			s.log.Warn("quiz generation unavailable, using local questions", zap.Error(err))
		}
	}
	return s.engine.InitialQuestions(goal)
}

func (s *RoadmapService) NextQuestions(ctx context.Context, goal string, answers model.AnswerMap) []model.QuizQuestion {
	if s.gen.Enabled() {
		raw, err := s.gen.Generate(ctx, strings.TrimSpace(goal), answers, ActionQuiz)
		if err == nil {
			var questions []model.QuizQuestion
			if err := json.Unmarshal(raw, &questions); err == nil {
				return questions
			}
		} else {
			s.log.Warn("follow-up generation unavailable, using local policy", zap.Error(err))
		}
	}
	return s.engine.FollowUpQuestions(goal, answers)
}

// RequestRoadmap returns a personalized roadmap, or the deterministic local
// fallback when the upstream is unconfigured or fails for any reason. The
// fallback does no I/O and cannot fail.
func (s *RoadmapService) RequestRoadmap(ctx context.Context, goal string, answers model.AnswerMap) model.SkillsRoadmap {
	if s.gen.Enabled() {
		raw, err := s.gen.Generate(ctx, strings.TrimSpace(goal), answers, ActionRoadmap)
		if err == nil {
			var roadmap model.SkillsRoadmap
			if err := json.Unmarshal(raw, &roadmap); err == nil {
				return roadmap
			}
		} else {
			s.log.Warn("roadmap generation unavailable, using fallback", zap.Error(err))
		}
	}
	return fallbackRoadmap(goal)
}

// fallbackRoadmap builds the fixed roadmap from the trimmed goal alone.
func fallbackRoadmap(goal string) model.SkillsRoadmap {
	g := strings.TrimSpace(goal)
	if g == "" {
		g = "votre sujet"
	}
	return model.SkillsRoadmap{
		Topic:          g,
		ProfileSummary: "Synthèse basée sur vos réponses (exemple mock).",
		EstimatedWeeks: 6,
		Competencies: []model.Competency{
			{
				ID:          "fondamentaux",
				Name:        fmt.Sprintf("%s: fondamentaux", g),
				Description: fmt.Sprintf("Comprendre les bases essentielles de %s.", g),
				Level:       model.LevelDebutant,
				Outcomes: []string{
					fmt.Sprintf("Expliquer les concepts clés de %s", g),
					"Appliquer les bases dans un petit projet",
				},
				Subskills: []model.Subskill{
					{ID: "vocabulaire", Name: "Vocabulaire clé", Why: fmt.Sprintf("Maîtriser les termes courants liés à %s.", g)},
					{ID: "premiere-pratique", Name: "Première pratique", Why: "Ancrer les notions par la pratique.", Tips: "Objectifs courts et réguliers."},
				},
			},
			{
				ID:          "approfondissement",
				Name:        "Approfondissement",
				Description: "Consolider et élargir les compétences avec des exercices.",
				Level:       model.LevelIntermediaire,
				Outcomes:    []string{"Résoudre des cas concrets", "Structurer une démarche"},
				Subskills: []model.Subskill{
					{ID: "analyse", Name: "Analyse de cas", Why: "Développer le raisonnement et la prise de décision."},
					{ID: "bonnes-pratiques", Name: "Bonnes pratiques", Why: "Améliorer la qualité et la robustesse."},
				},
			},
		},
		Practice: []model.PracticeItem{
			{ID: "mini-projet-1", Title: fmt.Sprintf("Mini-projet %s", g), Description: "Mettre en pratique les bases sur un cas simple.", EstHours: 3},
		},
	}
}

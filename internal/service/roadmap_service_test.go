package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"lechemin_backend/internal/model"
	"lechemin_backend/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeGenerator struct {
	enabled bool
	raw     json.RawMessage
	err     error
	calls   int
}

func (f *fakeGenerator) Enabled() bool { return f.enabled }

func (f *fakeGenerator) Generate(ctx context.Context, goal string, answers model.AnswerMap, action Action) (json.RawMessage, error) {
	f.calls++
	return f.raw, f.err
}

func TestRequestRoadmap_FallbackWhenDisabled(t *testing.T) {
	s := NewRoadmapService(&fakeGenerator{enabled: false}, NewQuizEngine(), zap.NewNop())

	roadmap := s.RequestRoadmap(context.Background(), "  Kubernetes  ", nil)
	require.Equal(t, "Kubernetes", roadmap.Topic)
	require.Equal(t, "Synthèse basée sur vos réponses (exemple mock).", roadmap.ProfileSummary)
	require.Equal(t, 6.0, roadmap.EstimatedWeeks)
	require.Len(t, roadmap.Competencies, 2)
	require.Equal(t, model.LevelDebutant, roadmap.Competencies[0].Level)
	require.Len(t, roadmap.Practice, 1)
}

func TestRequestRoadmap_FallbackIsDeterministic(t *testing.T) {
	s := NewRoadmapService(&fakeGenerator{enabled: false}, NewQuizEngine(), zap.NewNop())

	a := s.RequestRoadmap(context.Background(), "Kubernetes", nil)
	b := s.RequestRoadmap(context.Background(), "Kubernetes", model.AnswerMap{"experience": "Avancé"})
	require.Equal(t, a, b)
}

func TestRequestRoadmap_FallbackOnGenerationError(t *testing.T) {
	gen := &fakeGenerator{enabled: true, err: errors.New("boom")}
	s := NewRoadmapService(gen, NewQuizEngine(), zap.NewNop())

	roadmap := s.RequestRoadmap(context.Background(), "Go", nil)
	require.Equal(t, 1, gen.calls)
	require.Equal(t, "Go", roadmap.Topic)
	require.Len(t, roadmap.Competencies, 2)
}

func TestRequestRoadmap_FallbackOnUnusablePayload(t *testing.T) {
	// Validated upstream payloads should always unmarshal, but a decode
	// failure still degrades instead of surfacing an error.
	gen := &fakeGenerator{enabled: true, raw: json.RawMessage(`{"estimated_weeks": "six"}`)}
	s := NewRoadmapService(gen, NewQuizEngine(), zap.NewNop())

	roadmap := s.RequestRoadmap(context.Background(), "Go", nil)
	require.Equal(t, "Go", roadmap.Topic)
}

func TestRequestRoadmap_UsesRemotePayload(t *testing.T) {
	remote := model.SkillsRoadmap{
		Topic:          "Docker",
		ProfileSummary: "profil",
		EstimatedWeeks: 4,
		Competencies: []model.Competency{{
			ID:    "images",
			Name:  "Images",
			Level: model.LevelDebutant,
			Subskills: []model.Subskill{
				{ID: "build", Name: "Builds", Why: "base"},
			},
		}},
	}
	raw, err := json.Marshal(remote)
	require.NoError(t, err)

	s := NewRoadmapService(&fakeGenerator{enabled: true, raw: raw}, NewQuizEngine(), zap.NewNop())
	roadmap := s.RequestRoadmap(context.Background(), "Docker", nil)
	require.Equal(t, remote, roadmap)
}

func TestRequestRoadmap_EmptyGoalUsesPlaceholderTopic(t *testing.T) {
	s := NewRoadmapService(&fakeGenerator{enabled: false}, NewQuizEngine(), zap.NewNop())
	roadmap := s.RequestRoadmap(context.Background(), "", nil)
	require.Equal(t, "votre sujet", roadmap.Topic)
}

func TestStartQuiz_LocalQuestionsWhenDisabled(t *testing.T) {
	s := NewRoadmapService(&fakeGenerator{enabled: false}, NewQuizEngine(), zap.NewNop())

	qs := s.StartQuiz(context.Background(), "Go")
	require.Len(t, qs, 3)
	require.Equal(t, "experience", qs[0].ID)
}

func TestNextQuestions_LocalPolicyOnError(t *testing.T) {
	gen := &fakeGenerator{enabled: true, err: util.ErrUpstreamTimeout}
	s := NewRoadmapService(gen, NewQuizEngine(), zap.NewNop())

	qs := s.NextQuestions(context.Background(), "Go", model.AnswerMap{"experience": "Débutant"})
	require.Len(t, qs, 1)
	require.Equal(t, "temps_hebdo", qs[0].ID)
}

package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"lechemin_backend/internal/config"
	"lechemin_backend/internal/model"
	"lechemin_backend/internal/util"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeUpstream serves a chat-completions endpoint whose single choice
// contains the given model text.
func fakeUpstream(t *testing.T, status int, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		if status != http.StatusOK {
			w.WriteHeader(status)
			return
		}
		resp := ChatCompletionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message AIChatMessage `json:"message"`
		}{Message: AIChatMessage{Role: "assistant", Content: content}})
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
}

func newTestGenerationService(baseURL string) *GenerationService {
	return NewGenerationService(config.AIConfig{
		BaseURL: baseURL,
		APIKey:  "test-key",
		Model:   "test-model",
	}, zap.NewNop())
}

const validRoadmapJSON = `{
	"topic": "Docker",
	"profile_summary": "profil",
	"estimated_weeks": 4,
	"competencies": [{
		"id": "images",
		"name": "Images",
		"description": "Construire des images.",
		"level": "debutant",
		"outcomes": ["builder une image"],
		"subskills": [{"id": "build", "name": "Builds", "why": "base"}]
	}]
}`

func TestGenerate_NotConfigured(t *testing.T) {
	s := NewGenerationService(config.AIConfig{}, zap.NewNop())
	require.False(t, s.Enabled())

	_, err := s.Generate(context.Background(), "Docker", nil, ActionRoadmap)
	require.ErrorIs(t, err, util.ErrNotConfigured)
}

func TestGenerate_RoadmapFromFencedOutput(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, "Voici :\n```json\n"+validRoadmapJSON+"\n```")
	defer srv.Close()

	s := newTestGenerationService(srv.URL)
	raw, err := s.Generate(context.Background(), "Docker", nil, ActionRoadmap)
	require.NoError(t, err)

	var roadmap model.SkillsRoadmap
	require.NoError(t, json.Unmarshal(raw, &roadmap))
	require.Equal(t, "Docker", roadmap.Topic)
}

func TestGenerate_QuizQuestions(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, `[{"id":"experience","text":"Votre niveau ?","type":"single","options":["Débutant","Avancé"],"required":true}]`)
	defer srv.Close()

	s := newTestGenerationService(srv.URL)
	raw, err := s.Generate(context.Background(), "Docker", nil, ActionQuiz)
	require.NoError(t, err)

	var questions []model.QuizQuestion
	require.NoError(t, json.Unmarshal(raw, &questions))
	require.Len(t, questions, 1)
}

func TestGenerate_RejectsProseOutput(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, "Désolé, je ne peux pas générer de roadmap.")
	defer srv.Close()

	s := newTestGenerationService(srv.URL)
	_, err := s.Generate(context.Background(), "Docker", nil, ActionRoadmap)
	require.ErrorIs(t, err, util.ErrInvalidModelJSON)
}

func TestGenerate_ValidationFailures(t *testing.T) {
	cases := map[string]string{
		"missing estimated_weeks": `{"topic":"t","profile_summary":"p","competencies":[{"id":"a","name":"A","description":"d","level":"debutant","outcomes":[],"subskills":[{"id":"s","name":"S","why":"w"}]}]}`,
		"empty competencies":      `{"topic":"t","profile_summary":"p","estimated_weeks":4,"competencies":[]}`,
		"unknown level":           `{"topic":"t","profile_summary":"p","estimated_weeks":4,"competencies":[{"id":"a","name":"A","description":"d","level":"expert","outcomes":[],"subskills":[{"id":"s","name":"S","why":"w"}]}]}`,
	}
	for name, payload := range cases {
		t.Run(name, func(t *testing.T) {
			srv := fakeUpstream(t, http.StatusOK, payload)
			defer srv.Close()

			s := newTestGenerationService(srv.URL)
			_, err := s.Generate(context.Background(), "Docker", nil, ActionRoadmap)
			require.ErrorIs(t, err, util.ErrFailedValidation)
		})
	}
}

func TestGenerate_QuizOptionCountEnforced(t *testing.T) {
	srv := fakeUpstream(t, http.StatusOK, `[{"id":"q","text":"?","type":"single","options":["seule"]}]`)
	defer srv.Close()

	s := newTestGenerationService(srv.URL)
	_, err := s.Generate(context.Background(), "Docker", nil, ActionQuiz)
	require.ErrorIs(t, err, util.ErrFailedValidation)
}

func TestGenerate_UpstreamError(t *testing.T) {
	srv := fakeUpstream(t, http.StatusInternalServerError, "")
	defer srv.Close()

	s := newTestGenerationService(srv.URL)
	_, err := s.Generate(context.Background(), "Docker", nil, ActionRoadmap)
	require.ErrorIs(t, err, util.ErrUpstream)
}

func TestGenerate_FollowupPromptWhenAnswersPresent(t *testing.T) {
	var systems []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)
		systems = append(systems, req.Messages[0].Content)

		resp := ChatCompletionResponse{}
		resp.Choices = append(resp.Choices, struct {
			Message AIChatMessage `json:"message"`
		}{Message: AIChatMessage{Content: `[{"id":"a","text":"?","type":"text"}]`}})
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	s := newTestGenerationService(srv.URL)

	_, err := s.Generate(context.Background(), "Docker", nil, ActionQuiz)
	require.NoError(t, err)
	_, err = s.Generate(context.Background(), "Docker", model.AnswerMap{"experience": "Débutant"}, ActionQuiz)
	require.NoError(t, err)

	require.Len(t, systems, 2)
	require.NotEqual(t, systems[0], systems[1], "follow-up rounds use a different prompt")
}

func TestParseAction(t *testing.T) {
	require.Equal(t, ActionQuiz, ParseAction("quiz"))
	require.Equal(t, ActionRoadmap, ParseAction("roadmap"))
	require.Equal(t, ActionRoadmap, ParseAction(""))
	require.Equal(t, ActionRoadmap, ParseAction("autre"))
}

package service

import (
	"testing"

	"lechemin_backend/internal/model"

	"github.com/stretchr/testify/require"
)

func TestInitialQuestions_ExperienceFirstAndRequired(t *testing.T) {
	e := NewQuizEngine()
	qs := e.InitialQuestions("Kubernetes")

	require.Len(t, qs, 3)
	require.Equal(t, "experience", qs[0].ID)
	require.True(t, qs[0].Required)
	require.Contains(t, qs[0].Text, "Kubernetes")
	require.GreaterOrEqual(t, len(qs[0].Options), 2)
}

func TestInitialQuestions_EmptyGoalGetsPlaceholder(t *testing.T) {
	e := NewQuizEngine()
	qs := e.InitialQuestions("   ")
	require.Contains(t, qs[0].Text, "votre sujet")
}

func TestFollowUp_NoExperienceAnswered(t *testing.T) {
	e := NewQuizEngine()
	require.Empty(t, e.FollowUpQuestions("Go", model.AnswerMap{}))
	require.Empty(t, e.FollowUpQuestions("Go", nil))
}

func TestFollowUp_DebutantAsksWeeklyTime(t *testing.T) {
	e := NewQuizEngine()
	qs := e.FollowUpQuestions("Go", model.AnswerMap{"experience": "Débutant"})
	require.Len(t, qs, 1)
	require.Equal(t, "temps_hebdo", qs[0].ID)
	require.Equal(t, model.QuestionSingle, qs[0].Type)

	// Answered: the quiz is over.
	done := e.FollowUpQuestions("Go", model.AnswerMap{
		"experience":  "Débutant",
		"temps_hebdo": "5–8h",
	})
	require.Empty(t, done)
}

func TestFollowUp_IntermediaireGatesOnNonEmptyList(t *testing.T) {
	e := NewQuizEngine()

	qs := e.FollowUpQuestions("Go", model.AnswerMap{"experience": "Intermédiaire"})
	require.Len(t, qs, 1)
	require.Equal(t, "priorites", qs[0].ID)
	require.Equal(t, model.QuestionMulti, qs[0].Type)

	// An empty selection does not satisfy the gate.
	qs = e.FollowUpQuestions("Go", model.AnswerMap{
		"experience": "Intermédiaire",
		"priorites":  []any{},
	})
	require.Len(t, qs, 1)

	// A scalar where a list is expected does not either.
	qs = e.FollowUpQuestions("Go", model.AnswerMap{
		"experience": "Intermédiaire",
		"priorites":  "Pratique guidée",
	})
	require.Len(t, qs, 1)

	done := e.FollowUpQuestions("Go", model.AnswerMap{
		"experience": "Intermédiaire",
		"priorites":  []any{"Pratique guidée"},
	})
	require.Empty(t, done)
}

func TestFollowUp_AvanceAndUnknownTiersAskObjective(t *testing.T) {
	e := NewQuizEngine()

	for _, exp := range []string{"Avancé", "Expert"} {
		qs := e.FollowUpQuestions("Go", model.AnswerMap{"experience": exp})
		require.Len(t, qs, 1, "tier %q", exp)
		require.Equal(t, "objectif", qs[0].ID)
	}

	done := e.FollowUpQuestions("Go", model.AnswerMap{
		"experience": "Avancé",
		"objectif":   "Certification",
	})
	require.Empty(t, done)
}

// The quiz always terminates: any answer to the single follow-up ends it,
// and re-asking with the same answers yields the same question.
func TestFollowUp_TerminatesAndIsIdempotent(t *testing.T) {
	e := NewQuizEngine()

	answers := model.AnswerMap{"experience": "Débutant"}
	first := e.FollowUpQuestions("Go", answers)
	second := e.FollowUpQuestions("Go", answers)
	require.Equal(t, first, second)

	answers[first[0].ID] = first[0].Options[0]
	require.Empty(t, e.FollowUpQuestions("Go", answers))
}

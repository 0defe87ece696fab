package service

import (
	"fmt"
	"strings"

	"lechemin_backend/internal/model"
)

// QuizEngine decides what to ask next during onboarding. It is a pure
// function of (goal, answers): no I/O, no stored state, idempotent. The
// remote generation path may produce richer questions; when it is down this
// policy is what the user gets, so both must agree on when to stop.
type QuizEngine struct{}

func NewQuizEngine() *QuizEngine {
	return &QuizEngine{}
}

// InitialQuestions returns the starter questions for a goal. The experience
// question comes first and is required: every follow-up decision branches on
// its answer.
func (e *QuizEngine) InitialQuestions(goal string) []model.QuizQuestion {
	g := strings.TrimSpace(goal)
	if g == "" {
		g = "votre sujet"
	}
	return []model.QuizQuestion{
		{
			ID:       "experience",
			Text:     fmt.Sprintf("Votre expérience actuelle liée à %s ?", g),
			Type:     model.QuestionSingle,
			Options:  []string{"Débutant", "Intermédiaire", "Avancé"},
			Required: true,
		},
		{
			ID:      "contexte",
			Text:    fmt.Sprintf("Dans quel contexte souhaitez-vous appliquer %s ?", g),
			Type:    model.QuestionSingle,
			Options: []string{"Personnel", "Études", "Professionnel", "Reconversion"},
		},
		{
			ID:      "format",
			Text:    "Formats d'apprentissage préférés ?",
			Type:    model.QuestionMulti,
			Options: []string{"Docs", "Vidéos", "Cours", "Projets pratiques"},
		},
	}
}

// FollowUpQuestions returns at most one targeted follow-up, gated per
// experience tier. An empty result means: stop asking, generate the roadmap.
// Calling it before the experience question is answered also returns empty
// rather than failing.
func (e *QuizEngine) FollowUpQuestions(goal string, answers model.AnswerMap) []model.QuizQuestion {
	exp := answers.Str("experience")
	if exp == "" {
		return nil
	}

	switch exp {
	case "Débutant":
		if answers.Str("temps_hebdo") == "" {
			return []model.QuizQuestion{{
				ID:      "temps_hebdo",
				Text:    "Temps disponible par semaine ?",
				Type:    model.QuestionSingle,
				Options: []string{"2–4h", "5–8h", "9–12h", "13h+"},
			}}
		}
		return nil
	case "Intermédiaire":
		// Gate on a non-empty list: an absent key, a scalar value or an
		// empty list all mean priorities are still missing.
		if len(answers.List("priorites")) == 0 {
			return []model.QuizQuestion{{
				ID:      "priorites",
				Text:    "Vos priorités ?",
				Type:    model.QuestionMulti,
				Options: []string{"Bases à consolider", "Pratique guidée", "Outils & méthodo", "Théorie avancée"},
			}}
		}
		return nil
	default:
		// Avancé (and any unrecognized tier).
		if answers.Str("objectif") == "" {
			return []model.QuizQuestion{{
				ID:      "objectif",
				Text:    "Objectif principal ?",
				Type:    model.QuestionSingle,
				Options: []string{"Perfectionnement", "Certification", "Projet concret", "Enseignement/mentorat"},
			}}
		}
		return nil
	}
}

package model

import "gorm.io/datatypes"

type CompetencyLevel string

const (
	LevelDebutant      CompetencyLevel = "debutant"
	LevelIntermediaire CompetencyLevel = "intermediaire"
	LevelAvance        CompetencyLevel = "avance"
)

type SkillResourceHint struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Type  string `json:"type,omitempty"`
}

// Subskill is a concrete, checkable unit of learning within a competency.
// Actions, when present, are short verifiable steps the user can tick off
// individually (2-6 recommended).
type Subskill struct {
	ID                 string              `json:"id"`
	Name               string              `json:"name"`
	Why                string              `json:"why"`
	Tips               string              `json:"tips,omitempty"`
	SuggestedResources []SkillResourceHint `json:"suggested_resources,omitempty"`
	Actions            []string            `json:"actions,omitempty"`
}

type Competency struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Level       CompetencyLevel `json:"level"`
	Outcomes    []string        `json:"outcomes"`
	Subskills   []Subskill      `json:"subskills"`
}

type PracticeItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	EstHours    float64 `json:"est_hours,omitempty"`
}

// SkillsRoadmap is the generated artifact: a competency-based learning
// roadmap personalized from the quiz answers.
type SkillsRoadmap struct {
	Topic          string         `json:"topic"`
	ProfileSummary string         `json:"profile_summary"`
	EstimatedWeeks float64        `json:"estimated_weeks"`
	Competencies   []Competency   `json:"competencies"`
	Practice       []PracticeItem `json:"practice,omitempty"`
}

// SavedRoadmap is a persisted generated roadmap, owned by a user and keyed
// by an opaque UUID.
type SavedRoadmap struct {
	UUIDBase
	UserID  uint           `gorm:"index" json:"-"`
	Topic   string         `gorm:"size:200" json:"topic"`
	Kind    string         `gorm:"size:20;default:skills" json:"kind"`
	Payload datatypes.JSON `json:"payload"`
}

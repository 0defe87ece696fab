package model

type QuestionType string

const (
	QuestionSingle QuestionType = "single"
	QuestionMulti  QuestionType = "multi"
	QuestionText   QuestionType = "text"
)

// QuizQuestion is one question of the adaptive onboarding quiz. Options is
// required (>= 2 entries) for single and multi questions, absent for text.
type QuizQuestion struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	Options  []string     `json:"options,omitempty"`
	Required bool         `json:"required,omitempty"`
}

// AnswerMap maps question ids to the user's answers. Values are either a
// single string (single/text questions) or a list of strings (multi).
// It grows monotonically over a quiz session and is never persisted.
type AnswerMap map[string]any

// Str returns the answer as a single string, or "" when absent or not a
// string.
func (a AnswerMap) Str(id string) string {
	if a == nil {
		return ""
	}
	s, _ := a[id].(string)
	return s
}

// List returns the answer as a list of strings. JSON decoding yields
// []any, so both representations are accepted.
func (a AnswerMap) List(id string) []string {
	if a == nil {
		return nil
	}
	switch v := a[id].(type) {
	case []string:
		return v
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

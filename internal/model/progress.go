package model

type ProgressType string

const (
	ProgressSkill    ProgressType = "skill"
	ProgressResource ProgressType = "resource"
)

// ProgressRecord stores one completion flag. The composite unique index is
// what gives the upsert its idempotence: at most one row per
// (user, module, type, key).
type ProgressRecord struct {
	BaseModel
	UserID    uint         `gorm:"uniqueIndex:idx_progress_key" json:"user_id"`
	ModuleID  string       `gorm:"uniqueIndex:idx_progress_key;size:120" json:"module_id"`
	Type      ProgressType `gorm:"uniqueIndex:idx_progress_key;size:20" json:"type"`
	Key       string       `gorm:"uniqueIndex:idx_progress_key;size:191" json:"key"`
	Completed bool         `json:"completed"`
}

package model

import "gorm.io/datatypes"

// PathModule is a fixed step of a static career path (currently DevOps).
// Distinct from a generated competency, but progress is tracked identically
// through ProgressRecord keys.
type PathModule struct {
	BaseModel
	PathSlug      string          `gorm:"index;size:40" json:"path_slug"`
	Slug          string          `gorm:"uniqueIndex;size:80" json:"slug"`
	Title         string          `gorm:"size:200" json:"title"`
	Goal          string          `gorm:"size:500" json:"goal"`
	Level         CompetencyLevel `gorm:"size:20" json:"level"`
	OrderNum      int             `gorm:"index" json:"order"`
	Skills        datatypes.JSON  `json:"skills"`
	Prerequisites datatypes.JSON  `json:"prerequisites"`
	Resources     datatypes.JSON  `json:"resources"`
}

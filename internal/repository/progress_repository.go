package repository

import (
	"lechemin_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// Upsert inserts or updates the completion flag for one
// (user, module, type, key). The conflict target is the composite unique
// index, which keeps the operation idempotent.
func (r *ProgressRepository) Upsert(record *model.ProgressRecord) error {
	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "module_id"},
			{Name: "type"},
			{Name: "key"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "updated_at"}),
	}).Create(record).Error
}

func (r *ProgressRepository) ListByUser(userID uint) ([]model.ProgressRecord, error) {
	var records []model.ProgressRecord
	err := r.DB.Where("user_id = ?", userID).Find(&records).Error
	return records, err
}

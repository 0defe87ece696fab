package repository

import (
	"lechemin_backend/internal/model"

	"gorm.io/gorm"
)

type WaitlistRepository struct {
	DB *gorm.DB
}

func NewWaitlistRepository(db *gorm.DB) *WaitlistRepository {
	return &WaitlistRepository{DB: db}
}

// Add inserts a waitlist entry. Returns gorm.ErrDuplicatedKey when the
// (email, topic) pair already exists.
func (r *WaitlistRepository) Add(entry *model.WaitlistEntry) error {
	return r.DB.Create(entry).Error
}

package repository

import (
	"errors"

	"lechemin_backend/internal/model"
	"lechemin_backend/internal/util"

	"gorm.io/gorm"
)

type RoadmapRepository struct {
	DB *gorm.DB
}

func NewRoadmapRepository(db *gorm.DB) *RoadmapRepository {
	return &RoadmapRepository{DB: db}
}

func (r *RoadmapRepository) Create(roadmap *model.SavedRoadmap) error {
	return r.DB.Create(roadmap).Error
}

func (r *RoadmapRepository) ListByUser(userID uint) ([]model.SavedRoadmap, error) {
	var roadmaps []model.SavedRoadmap
	err := r.DB.Where("user_id = ?", userID).Order("created_at DESC").Find(&roadmaps).Error
	return roadmaps, err
}

// FindByIDForUser scopes the lookup to the owner. A roadmap belonging to
// another user is reported as not found, never as forbidden.
func (r *RoadmapRepository) FindByIDForUser(id string, userID uint) (*model.SavedRoadmap, error) {
	var roadmap model.SavedRoadmap
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&roadmap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrRoadmapNotFound
	}
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

package repository

import (
	"lechemin_backend/internal/model"

	"gorm.io/gorm"
)

type PathModuleRepository struct {
	DB *gorm.DB
}

func NewPathModuleRepository(db *gorm.DB) *PathModuleRepository {
	return &PathModuleRepository{DB: db}
}

func (r *PathModuleRepository) ListByPath(pathSlug string) ([]model.PathModule, error) {
	var modules []model.PathModule
	err := r.DB.Where("path_slug = ?", pathSlug).Order("order_num ASC").Find(&modules).Error
	return modules, err
}

func (r *PathModuleRepository) ListPaths() ([]string, error) {
	var slugs []string
	err := r.DB.Model(&model.PathModule{}).Distinct("path_slug").Order("path_slug").Pluck("path_slug", &slugs).Error
	return slugs, err
}

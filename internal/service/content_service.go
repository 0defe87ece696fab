package service

import (
	"context"
	"encoding/json"
	"time"

	"lechemin_backend/internal/model"
	"lechemin_backend/internal/repository"

	"github.com/go-redis/redis/v8"
)

const pathCacheTTL = 10 * time.Minute

// ContentService serves the static career path catalog. Redis is a
// best-effort cache: any cache failure falls through to the database.
type ContentService struct {
	repo *repository.PathModuleRepository
	rdb  *redis.Client
}

func NewContentService(repo *repository.PathModuleRepository, rdb *redis.Client) *ContentService {
	return &ContentService{repo: repo, rdb: rdb}
}

func (s *ContentService) ListPaths(ctx context.Context) ([]string, error) {
	return s.repo.ListPaths()
}

func (s *ContentService) GetPath(ctx context.Context, slug string) ([]model.PathModule, error) {
	cacheKey := "path:" + slug

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			var modules []model.PathModule
			if err := json.Unmarshal(cached, &modules); err == nil {
				return modules, nil
			}
		}
	}

	modules, err := s.repo.ListByPath(slug)
	if err != nil {
		return nil, err
	}

	if s.rdb != nil && len(modules) > 0 {
		if data, err := json.Marshal(modules); err == nil {
			s.rdb.Set(ctx, cacheKey, data, pathCacheTTL)
		}
	}

	return modules, nil
}

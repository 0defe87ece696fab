package service

import (
	"encoding/json"

	"lechemin_backend/internal/model"
	"lechemin_backend/internal/repository"
)

// RoadmapLibraryService persists generated roadmaps for signed-in users.
type RoadmapLibraryService struct {
	repo *repository.RoadmapRepository
}

func NewRoadmapLibraryService(repo *repository.RoadmapRepository) *RoadmapLibraryService {
	return &RoadmapLibraryService{repo: repo}
}

// Save stores a copy of the roadmap and returns its opaque identifier.
func (s *RoadmapLibraryService) Save(userID uint, roadmap model.SkillsRoadmap) (string, error) {
	payload, err := json.Marshal(roadmap)
	if err != nil {
		return "", err
	}

	saved := &model.SavedRoadmap{
		UserID:  userID,
		Topic:   roadmap.Topic,
		Kind:    "skills",
		Payload: payload,
	}
	if err := s.repo.Create(saved); err != nil {
		return "", err
	}
	return saved.ID, nil
}

// List returns the user's saved roadmaps, newest first.
func (s *RoadmapLibraryService) List(userID uint) ([]model.SavedRoadmap, error) {
	return s.repo.ListByUser(userID)
}

// Get returns one saved roadmap scoped to its owner; anything else is
// util.ErrRoadmapNotFound.
func (s *RoadmapLibraryService) Get(id string, userID uint) (*model.SavedRoadmap, error) {
	return s.repo.FindByIDForUser(id, userID)
}

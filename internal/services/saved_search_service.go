// internal/services/saved_search_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/equipscout/equipscout-backend/internal/models"
)

// SavedSearchService manages named search snapshots. Snapshots are
// immutable once created; the only mutations are create and delete.
type SavedSearchService struct {
	db *gorm.DB
}

func NewSavedSearchService(db *gorm.DB) *SavedSearchService {
	return &SavedSearchService{db: db}
}

func (s *SavedSearchService) Create(name string, query models.SearchQuery) (*models.SavedSearch, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("search name is required")
	}

	saved := &models.SavedSearch{
		Name:      name,
		Query:     models.QuerySnapshot(query),
		Countries: query.Countries,
	}
	if err := s.db.Create(saved).Error; err != nil {
		return nil, fmt.Errorf("failed to save search: %w", err)
	}
	return saved, nil
}

// List returns saved searches newest-first.
func (s *SavedSearchService) List() ([]models.SavedSearch, error) {
	var searches []models.SavedSearch
	if err := s.db.Order("created_at DESC").Find(&searches).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch saved searches: %w", err)
	}
	return searches, nil
}

func (s *SavedSearchService) Get(id uuid.UUID) (*models.SavedSearch, error) {
	var saved models.SavedSearch
	if err := s.db.First(&saved, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("saved search not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &saved, nil
}

func (s *SavedSearchService) Delete(id uuid.UUID) error {
	result := s.db.Delete(&models.SavedSearch{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete saved search: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("saved search not found")
	}
	return nil
}

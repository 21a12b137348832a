// internal/services/favorite_service.go
package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/equipscout/equipscout-backend/internal/models"
)

// FavoriteService owns the durable favorites list. Membership toggles by
// product id; the list has its own lifecycle and survives searches.
type FavoriteService struct {
	db *gorm.DB
}

func NewFavoriteService(db *gorm.DB) *FavoriteService {
	return &FavoriteService{db: db}
}

// List returns favorites oldest-first (insertion order).
func (s *FavoriteService) List() ([]models.Product, error) {
	var rows []models.Favorite
	if err := s.db.Order("created_at ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}

	products := make([]models.Product, 0, len(rows))
	for i := range rows {
		products = append(products, rows[i].Product())
	}
	return products, nil
}

// Toggle adds the product when absent and removes it when present,
// returning whether it is now a favorite.
func (s *FavoriteService) Toggle(product models.Product) (bool, error) {
	if product.ID == "" {
		return false, errors.New("product id is required")
	}

	var existing models.Favorite
	err := s.db.Where("product_id = ?", product.ID).First(&existing).Error
	if err == nil {
		if err := s.db.Unscoped().Delete(&existing).Error; err != nil {
			return true, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("database error: %w", err)
	}

	if err := s.db.Create(models.FavoriteFromProduct(product)).Error; err != nil {
		return false, fmt.Errorf("failed to save favorite: %w", err)
	}
	return true, nil
}

// Remove deletes by product id; removing a non-favorite is not an error.
func (s *FavoriteService) Remove(productID string) error {
	if productID == "" {
		return errors.New("product id is required")
	}
	if err := s.db.Unscoped().Where("product_id = ?", productID).Delete(&models.Favorite{}).Error; err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

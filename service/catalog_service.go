package service

import (
	"fmt"
	"hoteldisplay/models"

	"gorm.io/gorm"
)

// CatalogService manages the hotel services shown on the display.
type CatalogService struct {
	db *gorm.DB
}

// NewCatalogService constructs a catalog service
func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListActive returns active services ordered by display_order.
func (s *CatalogService) ListActive() ([]models.Service, error) {
	services := []models.Service{}
	if err := activeOrdered(s.db).Find(&services).Error; err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

// Create inserts a new, active service.
func (s *CatalogService) Create(in models.ServiceInput) (*models.Service, error) {
	svc := in.ToModel()
	svc.Active = true

	if err := s.db.Create(&svc).Error; err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}
	return &svc, nil
}

// Replace overwrites every mutable column, zero values included.
func (s *CatalogService) Replace(id int64, in models.ServiceInput) error {
	svc := in.ToModel()
	err := s.db.Model(&models.Service{}).
		Where("id = ?", id).
		Select("*").Omit("id").
		Updates(&svc).Error
	if err != nil {
		return fmt.Errorf("failed to update service: %w", err)
	}
	return nil
}

// Delete removes the service permanently.
func (s *CatalogService) Delete(id int64) error {
	if err := s.db.Delete(&models.Service{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete service: %w", err)
	}
	return nil
}

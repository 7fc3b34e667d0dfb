package service

import (
	"fmt"
	"hoteldisplay/models"

	"gorm.io/gorm"
)

// ScheduleService handles schedule item business logic
type ScheduleService struct {
	db *gorm.DB
}

// NewScheduleService constructs a schedule service
func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{db: db}
}

// ListActive returns active items ordered by display_order.
func (s *ScheduleService) ListActive() ([]models.ScheduleItem, error) {
	items := []models.ScheduleItem{}
	if err := activeOrdered(s.db).Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list schedule items: %w", err)
	}
	return items, nil
}

// Create inserts a new, active schedule item.
func (s *ScheduleService) Create(in models.ScheduleItemInput) (*models.ScheduleItem, error) {
	item := in.ToModel()
	item.Active = true

	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create schedule item: %w", err)
	}
	return &item, nil
}

// Replace overwrites every mutable column of the item, zero values included.
// A missing id is not an error.
func (s *ScheduleService) Replace(id int64, in models.ScheduleItemInput) error {
	item := in.ToModel()
	err := s.db.Model(&models.ScheduleItem{}).
		Where("id = ?", id).
		Select("*").Omit("id").
		Updates(&item).Error
	if err != nil {
		return fmt.Errorf("failed to update schedule item: %w", err)
	}
	return nil
}

// Delete removes the item permanently. A missing id is not an error.
func (s *ScheduleService) Delete(id int64) error {
	if err := s.db.Delete(&models.ScheduleItem{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete schedule item: %w", err)
	}
	return nil
}

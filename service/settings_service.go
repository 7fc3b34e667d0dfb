package service

import (
	"encoding/json"
	"fmt"
	"hoteldisplay/core"
	"hoteldisplay/models"
	"sort"
	"strconv"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingsService handles display settings
type SettingsService struct {
	db *gorm.DB
}

// NewSettingsService constructs a settings service
func NewSettingsService(db *gorm.DB) *SettingsService {
	return &SettingsService{db: db}
}

// All returns every setting as a flat key/value map.
func (s *SettingsService) All() (map[string]string, error) {
	var rows []models.Setting
	if err := s.db.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Key] = row.Value
	}
	return out, nil
}

// Typed returns the settings as the typed record.
func (s *SettingsService) Typed() (models.DisplaySettings, error) {
	all, err := s.All()
	if err != nil {
		return models.DisplaySettings{}, err
	}
	return models.DisplaySettingsFromMap(all), nil
}

// Update validates values and upserts every pair in a single transaction.
// Either all pairs are written or none.
func (s *SettingsService) Update(values map[string]string) error {
	if _, ok := values[""]; ok {
		return fmt.Errorf("%w: setting key must not be empty", core.ErrInvalidRequest)
	}
	if err := models.DisplaySettingsFromMap(values).Validate(); err != nil {
		return fmt.Errorf("%w: %v", core.ErrInvalidRequest, err)
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	upsert := clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, k := range keys {
			row := models.Setting{Key: k, Value: values[k]}
			if err := tx.Clauses(upsert).Create(&row).Error; err != nil {
				return fmt.Errorf("setting %q: %w", k, err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update settings: %w", err)
	}
	return nil
}

// StringifySettingValues converts a decoded JSON object into setting values.
// Strings pass through, numbers keep their shortest form, booleans become
// "true"/"false", null becomes "" and nested values are stored as compact JSON.
func StringifySettingValues(in map[string]any) (map[string]string, error) {
	out := make(map[string]string, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case nil:
			out[k] = ""
		case string:
			out[k] = val
		case bool:
			out[k] = strconv.FormatBool(val)
		case float64:
			out[k] = strconv.FormatFloat(val, 'f', -1, 64)
		case json.Number:
			out[k] = val.String()
		default:
			data, err := json.Marshal(val)
			if err != nil {
				return nil, fmt.Errorf("%w: setting %q: %v", core.ErrInvalidRequest, k, err)
			}
			out[k] = string(data)
		}
	}
	return out, nil
}

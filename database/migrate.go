package database

import (
	"fmt"
	"hoteldisplay/models"
	"log"

	"gorm.io/gorm"
)

// additiveColumn is a column introduced after the first release. Older
// database files get it through ALTER TABLE ADD COLUMN.
type additiveColumn struct {
	model  any
	table  string
	column string
}

var additiveColumns = []additiveColumn{
	{&models.ScheduleItem{}, "schedule_items", "image"},
	{&models.ScheduleItem{}, "schedule_items", "is_closed"},
	{&models.ScheduleItem{}, "schedule_items", "closed_from"},
	{&models.ScheduleItem{}, "schedule_items", "closed_to"},
	{&models.Service{}, "services", "image"},
}

// Migrate creates missing tables and adds missing columns. Running it again
// on an up-to-date database changes nothing; a column that cannot be added
// is logged and skipped.
func Migrate(db *gorm.DB) error {
	m := db.Migrator()

	for _, model := range []any{&models.Setting{}, &models.ScheduleItem{}, &models.Service{}, &seedMarker{}} {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return fmt.Errorf("failed to create table for %T: %w", model, err)
		}
	}

	for _, c := range additiveColumns {
		if m.HasColumn(c.model, c.column) {
			continue
		}
		if err := m.AddColumn(c.model, c.column); err != nil {
			log.Printf("Migration: could not add %s.%s, skipping: %v", c.table, c.column, err)
			continue
		}
		log.Printf("Migration: added column %s.%s", c.table, c.column)
	}
	return nil
}

package service

import (
	"context"
	"hoteldisplay/database"

	"gorm.io/gorm"
)

// Services is the service container handed to the HTTP layer.
type Services struct {
	Settings *SettingsService
	Schedule *ScheduleService
	Catalog  *CatalogService
	Display  *DisplayService
	Upload   *UploadService

	db *gorm.DB
}

// New wires every service over one store handle. imagesDir is where uploads land.
func New(db *gorm.DB, imagesDir string) *Services {
	settingsSvc := NewSettingsService(db)
	scheduleSvc := NewScheduleService(db)
	catalogSvc := NewCatalogService(db)

	return &Services{
		Settings: settingsSvc,
		Schedule: scheduleSvc,
		Catalog:  catalogSvc,
		Display:  NewDisplayService(settingsSvc, scheduleSvc, catalogSvc),
		Upload:   NewUploadService(imagesDir),
		db:       db,
	}
}

// StoreUp reports whether the database answers a ping.
func (s *Services) StoreUp(ctx context.Context) bool {
	return database.SQLiteUp(ctx, s.db)
}

// activeOrdered scopes a query to active rows in presentation order.
func activeOrdered(db *gorm.DB) *gorm.DB {
	return db.Where("active = ?", 1).Order("display_order ASC").Order("id ASC")
}

package service

import "hoteldisplay/models"

// DisplayService builds the bundle the TV display polls.
type DisplayService struct {
	settings *SettingsService
	schedule *ScheduleService
	catalog  *CatalogService
}

// NewDisplayService constructs a display service
func NewDisplayService(settings *SettingsService, schedule *ScheduleService, catalog *CatalogService) *DisplayService {
	return &DisplayService{settings: settings, schedule: schedule, catalog: catalog}
}

// Bundle returns settings, active schedule and active services.
func (s *DisplayService) Bundle() (*models.DisplayBundle, error) {
	settings, err := s.settings.All()
	if err != nil {
		return nil, err
	}
	schedule, err := s.schedule.ListActive()
	if err != nil {
		return nil, err
	}
	services, err := s.catalog.ListActive()
	if err != nil {
		return nil, err
	}
	return &models.DisplayBundle{Settings: settings, Schedule: schedule, Services: services}, nil
}

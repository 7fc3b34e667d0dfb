package models

import "strings"

// ScheduleItem is one opening-hours row on the display (breakfast, pool, ...).
type ScheduleItem struct {
	ID           int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	NameES       string  `gorm:"column:name_es;type:text" json:"name_es"`
	NameEN       string  `gorm:"column:name_en;type:text" json:"name_en"`
	NameDE       string  `gorm:"column:name_de;type:text" json:"name_de"`
	TimeStart    string  `gorm:"column:time_start;type:text" json:"time_start"`
	TimeEnd      string  `gorm:"column:time_end;type:text" json:"time_end"`
	Icon         string  `gorm:"column:icon;type:text" json:"icon"`
	Image        *string `gorm:"column:image;type:text" json:"image"`
	IsClosed     Flag    `gorm:"column:is_closed;type:integer;default:0" json:"is_closed"`
	ClosedFrom   *string `gorm:"column:closed_from;type:text" json:"closed_from"`
	ClosedTo     *string `gorm:"column:closed_to;type:text" json:"closed_to"`
	DisplayOrder int     `gorm:"column:display_order;type:integer;default:0" json:"display_order"`
	Active       Flag    `gorm:"column:active;type:integer;default:1" json:"active"`
}

// TableName pins the table name shared with existing deployments.
func (ScheduleItem) TableName() string { return "schedule_items" }

// ScheduleItemInput request payload for creating or replacing a schedule item.
// Active is ignored on create.
type ScheduleItemInput struct {
	NameES       string    `json:"name_es"`
	NameEN       string    `json:"name_en"`
	NameDE       string    `json:"name_de"`
	TimeStart    string    `json:"time_start"`
	TimeEnd      string    `json:"time_end"`
	Icon         string    `json:"icon"`
	Image        string    `json:"image"`
	IsClosed     Flag      `json:"is_closed"`
	ClosedFrom   string    `json:"closed_from"`
	ClosedTo     string    `json:"closed_to"`
	DisplayOrder SortOrder `json:"display_order"`
	Active       Flag      `json:"active"`
}

// ToModel builds the persisted row. Blank optional strings become NULL.
func (in ScheduleItemInput) ToModel() ScheduleItem {
	return ScheduleItem{
		NameES:       in.NameES,
		NameEN:       in.NameEN,
		NameDE:       in.NameDE,
		TimeStart:    in.TimeStart,
		TimeEnd:      in.TimeEnd,
		Icon:         in.Icon,
		Image:        nullable(in.Image),
		IsClosed:     in.IsClosed,
		ClosedFrom:   nullable(in.ClosedFrom),
		ClosedTo:     nullable(in.ClosedTo),
		DisplayOrder: int(in.DisplayOrder),
		Active:       in.Active,
	}
}

// Service is a hotel amenity card (pool, wifi, parking, ...).
type Service struct {
	ID            int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	NameES        string  `gorm:"column:name_es;type:text" json:"name_es"`
	NameEN        string  `gorm:"column:name_en;type:text" json:"name_en"`
	NameDE        string  `gorm:"column:name_de;type:text" json:"name_de"`
	DescriptionES string  `gorm:"column:description_es;type:text" json:"description_es"`
	DescriptionEN string  `gorm:"column:description_en;type:text" json:"description_en"`
	DescriptionDE string  `gorm:"column:description_de;type:text" json:"description_de"`
	Icon          string  `gorm:"column:icon;type:text" json:"icon"`
	Image         *string `gorm:"column:image;type:text" json:"image"`
	DisplayOrder  int     `gorm:"column:display_order;type:integer;default:0" json:"display_order"`
	Active        Flag    `gorm:"column:active;type:integer;default:1" json:"active"`
}

// TableName pins the table name shared with existing deployments.
func (Service) TableName() string { return "services" }

// ServiceInput request payload for creating or replacing a service.
type ServiceInput struct {
	NameES        string    `json:"name_es"`
	NameEN        string    `json:"name_en"`
	NameDE        string    `json:"name_de"`
	DescriptionES string    `json:"description_es"`
	DescriptionEN string    `json:"description_en"`
	DescriptionDE string    `json:"description_de"`
	Icon          string    `json:"icon"`
	Image         string    `json:"image"`
	DisplayOrder  SortOrder `json:"display_order"`
	Active        Flag      `json:"active"`
}

// ToModel builds the persisted row. A blank image becomes NULL.
func (in ServiceInput) ToModel() Service {
	return Service{
		NameES:        in.NameES,
		NameEN:        in.NameEN,
		NameDE:        in.NameDE,
		DescriptionES: in.DescriptionES,
		DescriptionEN: in.DescriptionEN,
		DescriptionDE: in.DescriptionDE,
		Icon:          in.Icon,
		Image:         nullable(in.Image),
		DisplayOrder:  int(in.DisplayOrder),
		Active:        in.Active,
	}
}

// DisplayBundle is everything the TV display needs in one response.
type DisplayBundle struct {
	Settings map[string]string `json:"settings"`
	Schedule []ScheduleItem    `json:"schedule"`
	Services []Service         `json:"services"`
}

func nullable(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

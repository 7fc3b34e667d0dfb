package database

import (
	"fmt"
	"hoteldisplay/models"
	"log"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// seedMarker records that a table received its default rows. Once a marker
// exists the table is never seeded again, even after a user empties it.
type seedMarker struct {
	Name     string    `gorm:"column:name;primaryKey;type:text"`
	SeededAt time.Time `gorm:"column:seeded_at"`
}

func (seedMarker) TableName() string { return "seed_state" }

// Seed inserts default settings that are missing and seeds the default
// schedule and services once per database. Rows a user deleted therefore
// never come back.
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := seedSettings(tx); err != nil {
			return err
		}
		if err := seedOnce(tx, "schedule_items", defaultSchedule()); err != nil {
			return fmt.Errorf("failed to seed schedule: %w", err)
		}
		if err := seedOnce(tx, "services", defaultServices()); err != nil {
			return fmt.Errorf("failed to seed services: %w", err)
		}
		return nil
	})
}

func seedSettings(tx *gorm.DB) error {
	defaults := models.DefaultSettings()
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	rows := make([]models.Setting, 0, len(keys))
	for _, k := range keys {
		rows = append(rows, models.Setting{Key: k, Value: defaults[k]})
	}

	if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&rows).Error; err != nil {
		return fmt.Errorf("failed to seed settings: %w", err)
	}
	return nil
}

// seedOnce inserts rows into table unless the table was seeded before or has
// ever held data. Databases created before markers existed get a marker
// without new rows.
func seedOnce[T any](tx *gorm.DB, table string, rows []T) error {
	var markers int64
	if err := tx.Model(&seedMarker{}).Where("name = ?", table).Count(&markers).Error; err != nil {
		return err
	}
	if markers > 0 {
		return nil
	}

	populated, err := tablePopulated(tx, table)
	if err != nil {
		return err
	}
	if !populated {
		if err := tx.Create(&rows).Error; err != nil {
			return err
		}
		log.Printf("Seeded %d default rows into %s", len(rows), table)
	}

	return tx.Create(&seedMarker{Name: table, SeededAt: time.Now()}).Error
}

// tablePopulated reports whether table holds rows or ever did. AUTOINCREMENT
// keeps the sqlite_sequence entry after the last row is deleted.
func tablePopulated(tx *gorm.DB, table string) (bool, error) {
	var count int64
	if err := tx.Table(table).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return true, nil
	}

	if !tx.Migrator().HasTable("sqlite_sequence") {
		return false, nil
	}
	var seq int64
	if err := tx.Raw("SELECT COALESCE(MAX(seq), 0) FROM sqlite_sequence WHERE name = ?", table).Scan(&seq).Error; err != nil {
		return false, err
	}
	return seq > 0, nil
}

func defaultSchedule() []models.ScheduleItem {
	item := func(es, en, de, start, end, icon string, order int) models.ScheduleItem {
		return models.ScheduleItem{
			NameES: es, NameEN: en, NameDE: de,
			TimeStart: start, TimeEnd: end,
			Icon: icon, DisplayOrder: order, Active: true,
		}
	}
	return []models.ScheduleItem{
		item("Desayuno", "Breakfast", "Frühstück", "08:00", "10:30", "coffee", 1),
		item("Check-out", "Check-out", "Check-out", "11:00", "", "log-out", 2),
		item("Piscina", "Pool", "Pool", "09:00", "20:00", "waves", 3),
		item("Recepción", "Reception", "Rezeption", "08:00", "22:00", "concierge-bell", 4),
	}
}

func defaultServices() []models.Service {
	svc := func(es, en, de, descES, descEN, descDE, icon string, order int) models.Service {
		return models.Service{
			NameES: es, NameEN: en, NameDE: de,
			DescriptionES: descES, DescriptionEN: descEN, DescriptionDE: descDE,
			Icon: icon, DisplayOrder: order, Active: true,
		}
	}
	return []models.Service{
		svc("Piscina", "Swimming Pool", "Schwimmbad",
			"Disfrute de nuestra piscina exterior", "Enjoy our outdoor pool", "Genießen Sie unseren Außenpool",
			"waves", 1),
		svc("WiFi Gratis", "Free WiFi", "Kostenloses WLAN",
			"Conexión de alta velocidad en todo el hotel", "High-speed connection throughout the hotel", "Highspeed-Verbindung im gesamten Hotel",
			"wifi", 2),
		svc("Parking", "Parking", "Parkplatz",
			"Aparcamiento privado disponible", "Private parking available", "Privater Parkplatz verfügbar",
			"car", 3),
		svc("Terraza", "Terrace", "Terrasse",
			"Relájese en nuestra terraza con vistas", "Relax on our terrace with views", "Entspannen Sie auf unserer Terrasse mit Aussicht",
			"sun", 4),
	}
}

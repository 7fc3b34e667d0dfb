package database

import (
	"context"
	"hoteldisplay/config"
	"hoteldisplay/models"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Load()
	cfg.LogLevel = "INFO"
	cfg.DatabaseURL = filepath.Join(t.TempDir(), "data", "hotel.db")
	return cfg
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := Open(testConfig(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(db) })
	return db
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	cfg := testConfig(t)
	db, err := Open(cfg)
	require.NoError(t, err)
	defer Close(db)

	_, err = os.Stat(filepath.Dir(cfg.DatabaseURL))
	assert.NoError(t, err)
}

func TestInit_CreatesTablesAndSeeds(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Init(db))

	for _, table := range []string{"settings", "schedule_items", "services"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}

	var settings []models.Setting
	require.NoError(t, db.Find(&settings).Error)
	assert.Len(t, settings, len(models.DefaultSettings()))

	var schedule []models.ScheduleItem
	require.NoError(t, db.Order("display_order").Find(&schedule).Error)
	require.Len(t, schedule, 4)
	assert.Equal(t, "Breakfast", schedule[0].NameEN)
	assert.True(t, bool(schedule[0].Active))
	assert.False(t, bool(schedule[0].IsClosed))
	assert.Nil(t, schedule[0].Image)

	var count int64
	require.NoError(t, db.Model(&models.Service{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func TestInit_TwiceDoesNotDuplicate(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Init(db))
	require.NoError(t, Init(db))

	var settings, schedule, services int64
	require.NoError(t, db.Model(&models.Setting{}).Count(&settings).Error)
	require.NoError(t, db.Model(&models.ScheduleItem{}).Count(&schedule).Error)
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	assert.Equal(t, int64(len(models.DefaultSettings())), settings)
	assert.Equal(t, int64(4), schedule)
	assert.Equal(t, int64(4), services)
}

func TestSeed_NeverOverwritesSettings(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Init(db))

	require.NoError(t, db.Save(&models.Setting{Key: models.KeyHotelName, Value: "Hotel Edited"}).Error)
	require.NoError(t, Init(db))

	var s models.Setting
	require.NoError(t, db.First(&s, "key = ?", models.KeyHotelName).Error)
	assert.Equal(t, "Hotel Edited", s.Value)
}

func TestSeed_DoesNotResurrectDeletedRows(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Init(db))

	require.NoError(t, db.Where("1 = 1").Delete(&models.ScheduleItem{}).Error)
	require.NoError(t, db.Where("1 = 1").Delete(&models.Service{}).Error)
	require.NoError(t, Init(db))

	var schedule, services int64
	require.NoError(t, db.Model(&models.ScheduleItem{}).Count(&schedule).Error)
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	assert.Zero(t, schedule, "emptied schedule must stay empty")
	assert.Zero(t, services, "emptied services must stay empty")
}

func TestSeed_RecordsMarkers(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Init(db))

	var markers []seedMarker
	require.NoError(t, db.Order("name").Find(&markers).Error)
	require.Len(t, markers, 2)
	assert.Equal(t, "schedule_items", markers[0].Name)
	assert.Equal(t, "services", markers[1].Name)
	assert.False(t, markers[0].SeededAt.IsZero())
}

func TestSeed_LegacyDatabaseWithRowsIsNotReseeded(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Init(db))

	// Databases written before markers existed have rows but no seed_state.
	require.NoError(t, db.Where("1 = 1").Delete(&seedMarker{}).Error)
	require.NoError(t, Init(db))

	var schedule, services, markers int64
	require.NoError(t, db.Model(&models.ScheduleItem{}).Count(&schedule).Error)
	require.NoError(t, db.Model(&models.Service{}).Count(&services).Error)
	require.NoError(t, db.Model(&seedMarker{}).Count(&markers).Error)
	assert.Equal(t, int64(4), schedule)
	assert.Equal(t, int64(4), services)
	assert.Equal(t, int64(2), markers)
}

func TestSeed_LegacyEmptiedTableStaysEmpty(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Init(db))

	require.NoError(t, db.Where("1 = 1").Delete(&models.ScheduleItem{}).Error)
	require.NoError(t, db.Where("1 = 1").Delete(&seedMarker{}).Error)
	require.NoError(t, Init(db))

	var schedule int64
	require.NoError(t, db.Model(&models.ScheduleItem{}).Count(&schedule).Error)
	assert.Zero(t, schedule, "sqlite_sequence shows the table held rows before")
}

func TestMigrate_AddsColumnsToLegacyTables(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, db.Exec(`CREATE TABLE schedule_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name_es TEXT, name_en TEXT, name_de TEXT,
		time_start TEXT, time_end TEXT, icon TEXT,
		display_order INTEGER DEFAULT 0,
		active INTEGER DEFAULT 1
	)`).Error)
	require.NoError(t, db.Exec(`CREATE TABLE services (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name_es TEXT, name_en TEXT, name_de TEXT,
		description_es TEXT, description_en TEXT, description_de TEXT,
		icon TEXT,
		display_order INTEGER DEFAULT 0,
		active INTEGER DEFAULT 1
	)`).Error)
	require.NoError(t, db.Exec(`INSERT INTO schedule_items (name_en, time_start) VALUES ('Spa', '10:00')`).Error)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db), "re-running migrations is a no-op")

	m := db.Migrator()
	for _, c := range additiveColumns {
		assert.True(t, m.HasColumn(c.model, c.column), "%s.%s", c.table, c.column)
	}

	var item models.ScheduleItem
	require.NoError(t, db.First(&item).Error)
	assert.Equal(t, "Spa", item.NameEN)
	assert.Equal(t, "", item.NameES, "NULL text columns read back as blank")
	assert.False(t, bool(item.IsClosed))
	assert.True(t, bool(item.Active))
}

func TestSettingsKeyConstraint(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(db))

	assert.Error(t, db.Create(&models.Setting{Key: "", Value: "x"}).Error)
	assert.NoError(t, db.Create(&models.Setting{Key: "ticker", Value: "x"}).Error)
}

func TestSQLiteUp(t *testing.T) {
	db := openTestDB(t)
	assert.True(t, SQLiteUp(context.Background(), db))
	assert.False(t, SQLiteUp(context.Background(), nil))
}

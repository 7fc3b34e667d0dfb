package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Setting is one key/value display setting.
// Keys are limited to 1..128 characters by a table CHECK constraint.
type Setting struct {
	Key   string `gorm:"column:key;primaryKey;type:text;check:chk_settings_key,length(key) BETWEEN 1 AND 128" json:"key"`
	Value string `gorm:"column:value;type:text" json:"value"`
}

// TableName pins the table name shared with existing deployments.
func (Setting) TableName() string { return "settings" }

// Known setting keys.
const (
	KeyHotelName        = "hotel_name"
	KeyHotelAddress     = "hotel_address"
	KeyHotelPhone       = "hotel_phone"
	KeyHotelEmail       = "hotel_email"
	KeyWifiNetwork      = "wifi_network"
	KeyWifiPassword     = "wifi_password"
	KeyWelcomeMessageES = "welcome_message_es"
	KeyWelcomeMessageEN = "welcome_message_en"
	KeyWelcomeMessageDE = "welcome_message_de"
	KeySlideDuration    = "slide_duration"
	KeyWeatherLat       = "weather_lat"
	KeyWeatherLon       = "weather_lon"
	KeyWeatherAPIKey    = "weather_api_key"
	KeyPrimaryColor     = "primary_color"
	KeyAccentColor      = "accent_color"
)

// DisplaySettings is the typed view of the settings table. Keys outside the
// known set are carried in Extra so newer admin panels keep working.
type DisplaySettings struct {
	HotelName        string
	HotelAddress     string
	HotelPhone       string
	HotelEmail       string `validate:"omitempty,email"`
	WifiNetwork      string
	WifiPassword     string
	WelcomeMessageES string
	WelcomeMessageEN string
	WelcomeMessageDE string
	SlideDuration    string `validate:"omitempty,number,ne=0"`
	WeatherLat       string `validate:"omitempty,latitude"`
	WeatherLon       string `validate:"omitempty,longitude"`
	WeatherAPIKey    string
	PrimaryColor     string `validate:"omitempty,hexcolor"`
	AccentColor      string `validate:"omitempty,hexcolor"`

	Extra map[string]string
}

func (s *DisplaySettings) fields() map[string]*string {
	return map[string]*string{
		KeyHotelName:        &s.HotelName,
		KeyHotelAddress:     &s.HotelAddress,
		KeyHotelPhone:       &s.HotelPhone,
		KeyHotelEmail:       &s.HotelEmail,
		KeyWifiNetwork:      &s.WifiNetwork,
		KeyWifiPassword:     &s.WifiPassword,
		KeyWelcomeMessageES: &s.WelcomeMessageES,
		KeyWelcomeMessageEN: &s.WelcomeMessageEN,
		KeyWelcomeMessageDE: &s.WelcomeMessageDE,
		KeySlideDuration:    &s.SlideDuration,
		KeyWeatherLat:       &s.WeatherLat,
		KeyWeatherLon:       &s.WeatherLon,
		KeyWeatherAPIKey:    &s.WeatherAPIKey,
		KeyPrimaryColor:     &s.PrimaryColor,
		KeyAccentColor:      &s.AccentColor,
	}
}

// fieldKeys maps struct field names back to setting keys for error messages.
var fieldKeys = map[string]string{
	"HotelEmail":    KeyHotelEmail,
	"SlideDuration": KeySlideDuration,
	"WeatherLat":    KeyWeatherLat,
	"WeatherLon":    KeyWeatherLon,
	"PrimaryColor":  KeyPrimaryColor,
	"AccentColor":   KeyAccentColor,
}

// DisplaySettingsFromMap builds the typed record from a flat key/value map.
func DisplaySettingsFromMap(m map[string]string) DisplaySettings {
	var s DisplaySettings
	fields := s.fields()
	for k, v := range m {
		if dst, ok := fields[k]; ok {
			*dst = v
			continue
		}
		if s.Extra == nil {
			s.Extra = make(map[string]string)
		}
		s.Extra[k] = v
	}
	return s
}

// ToMap flattens the record. Known keys are always present, possibly blank.
func (s DisplaySettings) ToMap() map[string]string {
	out := make(map[string]string, 16+len(s.Extra))
	for k, v := range s.Extra {
		out[k] = v
	}
	for k, v := range s.fields() {
		out[k] = *v
	}
	return out
}

var settingsValidator = validator.New()

// Validate checks the known keys. Blank values are accepted.
func (s DisplaySettings) Validate() error {
	err := settingsValidator.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		key := fieldKeys[fe.Field()]
		if key == "" {
			key = fe.Field()
		}
		msgs = append(msgs, fmt.Sprintf("%s: invalid value %q", key, fe.Value()))
	}
	sort.Strings(msgs)
	return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
}

// DefaultSettings are seeded on first run and never overwrite existing rows.
func DefaultSettings() map[string]string {
	return map[string]string{
		KeyHotelName:        "Hotel Can Quetglas",
		KeyHotelAddress:     "Calle Santa Rita, 13 - 07014 - Palma de Mallorca",
		KeyHotelPhone:       "+34 971 XXX XXX",
		KeyHotelEmail:       "info@canquetglas.com",
		KeyWifiNetwork:      "Hotel Can Quetglas",
		KeyWifiPassword:     "XXXXXXXX",
		KeyWelcomeMessageES: "¡Bienvenidos a Hotel Can Quetglas!",
		KeyWelcomeMessageEN: "Welcome to Hotel Can Quetglas!",
		KeyWelcomeMessageDE: "Willkommen im Hotel Can Quetglas!",
		KeySlideDuration:    "12000",
		KeyWeatherLat:       "39.5696",
		KeyWeatherLon:       "2.6502",
		KeyWeatherAPIKey:    "",
		KeyPrimaryColor:     "#1a365d",
		KeyAccentColor:      "#c9a227",
	}
}

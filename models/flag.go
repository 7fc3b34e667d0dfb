package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Flag is a boolean persisted as INTEGER 0/1 and serialized as 0/1 in JSON.
// Admin clients send both booleans and numbers, so decoding accepts either.
type Flag bool

// MarshalJSON encodes the flag as 0 or 1.
func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

// UnmarshalJSON accepts true/false, numbers, numeric or boolean strings and null.
func (f *Flag) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "false", `""`:
		*f = false
		return nil
	case "true":
		*f = true
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return f.parse(strings.TrimSpace(s))
	}
	return f.parse(string(data))
}

func (f *Flag) parse(s string) error {
	if b, err := strconv.ParseBool(s); err == nil {
		*f = Flag(b)
		return nil
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid flag value %q", s)
	}
	*f = n != 0
	return nil
}

// Value implements driver.Valuer.
func (f Flag) Value() (driver.Value, error) {
	if f {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements sql.Scanner.
func (f *Flag) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*f = false
	case int64:
		*f = v != 0
	case bool:
		*f = Flag(v)
	case float64:
		*f = v != 0
	case []byte:
		return f.parse(string(v))
	case string:
		return f.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into Flag", src)
	}
	return nil
}

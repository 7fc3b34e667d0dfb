package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SortOrder is a display position in a request payload. Admin forms post it
// as text, so decoding accepts JSON integers and integer strings. Blank and
// null decode to 0.
type SortOrder int

// UnmarshalJSON implements json.Unmarshaler.
func (o *SortOrder) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*o = 0
		return nil
	}

	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(s)
		if text == "" {
			*o = 0
			return nil
		}
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return fmt.Errorf("invalid display order %s", data)
	}
	*o = SortOrder(n)
	return nil
}

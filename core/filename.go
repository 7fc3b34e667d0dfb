package core

import (
	"fmt"
	"regexp"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

// SanitizeFilename strips every character outside [a-zA-Z0-9.].
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "")
}

// UploadFilename builds "<unix-millis>-<sanitized-name>.<ext>".
func UploadFilename(now time.Time, name, ext string) string {
	return fmt.Sprintf("%d-%s.%s", now.UnixMilli(), SanitizeFilename(name), ext)
}

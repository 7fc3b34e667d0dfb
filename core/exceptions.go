package core

import (
	"errors"
	"net/http"
)

// Upload errors are returned to clients verbatim; existing admin panels
// match on the capitalized text.
var (
	ErrInvalidImageFormat = errors.New("Invalid image format")
	ErrImageDecode        = errors.New("image decode failed")
	ErrMissingUpload      = errors.New("Missing image or filename")
	ErrInvalidRequest     = errors.New("invalid request")
)

// DataURIError describes a data URI that could not be parsed or decoded.
type DataURIError struct {
	Input string
	Err   error
}

func (e *DataURIError) Error() string {
	return e.Err.Error()
}

func (e *DataURIError) Unwrap() error {
	return e.Err
}

// StatusCode maps an error to the HTTP status reported to clients.
// Malformed client input is a 400, everything else a 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidImageFormat),
		errors.Is(err, ErrMissingUpload),
		errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

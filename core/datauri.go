package core

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

var imageDataURIPattern = regexp.MustCompile(`^data:image/([a-zA-Z+]+);base64,(.+)$`)

// ImageDataURI is a decoded data:image/...;base64 payload.
type ImageDataURI struct {
	Subtype string // e.g. "png", "jpeg", "svg+xml"
	Data    []byte
}

// MIME returns the full media type.
func (d ImageDataURI) MIME() string {
	return "image/" + d.Subtype
}

// Extension returns the file extension for the subtype; jpeg is shortened to jpg.
func (d ImageDataURI) Extension() string {
	if d.Subtype == "jpeg" {
		return "jpg"
	}
	return d.Subtype
}

// ParseImageDataURI parses an inline base64 image.
// A URI that does not match the data:image/<subtype>;base64, shape fails with
// ErrInvalidImageFormat; a payload that is not valid base64 fails with ErrImageDecode.
func ParseImageDataURI(uri string) (ImageDataURI, error) {
	m := imageDataURIPattern.FindStringSubmatch(uri)
	if m == nil {
		return ImageDataURI{}, &DataURIError{Input: uri, Err: ErrInvalidImageFormat}
	}

	data, err := decodeBase64(m[2])
	if err != nil {
		return ImageDataURI{}, &DataURIError{Input: uri, Err: fmt.Errorf("%w: %v", ErrImageDecode, err)}
	}
	return ImageDataURI{Subtype: m[1], Data: data}, nil
}

// decodeBase64 accepts padded and unpadded standard base64.
func decodeBase64(payload string) ([]byte, error) {
	payload = strings.TrimSpace(payload)
	if data, err := base64.StdEncoding.DecodeString(payload); err == nil {
		return data, nil
	}
	return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
}

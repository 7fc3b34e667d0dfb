package service

import (
	"fmt"
	"hoteldisplay/core"
	"os"
	"path"
	"path/filepath"
	"time"
)

// ImagesURLPrefix is the public URL prefix uploaded images are served under.
const ImagesURLPrefix = "/images"

// UploadService writes base64 data-URI images into the images directory.
type UploadService struct {
	dir string
	now func() time.Time
}

// NewUploadService constructs an upload service writing into dir
func NewUploadService(dir string) *UploadService {
	return &UploadService{dir: dir, now: time.Now}
}

// Dir returns the images directory.
func (s *UploadService) Dir() string {
	return s.dir
}

// EnsureDir creates the images directory if it does not exist.
func (s *UploadService) EnsureDir() error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create images directory %s: %w", s.dir, err)
	}
	return nil
}

// Save decodes dataURI and stores it as <millis>-<name>.<ext>, returning the
// public path of the new file.
func (s *UploadService) Save(dataURI, filename string) (string, error) {
	if dataURI == "" || filename == "" {
		return "", core.ErrMissingUpload
	}

	img, err := core.ParseImageDataURI(dataURI)
	if err != nil {
		return "", err
	}

	name := core.UploadFilename(s.now(), filename, img.Extension())
	if err := os.WriteFile(filepath.Join(s.dir, name), img.Data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write image: %w", err)
	}
	return path.Join(ImagesURLPrefix, name), nil
}

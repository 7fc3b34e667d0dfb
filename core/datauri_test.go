package core

import (
	"encoding/base64"
	"errors"
	"net/http"
	"regexp"
	"testing"
	"time"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 13}

func TestParseImageDataURI_Valid(t *testing.T) {
	uri := "data:image/png;base64," + base64.StdEncoding.EncodeToString(pngBytes)

	img, err := ParseImageDataURI(uri)
	if err != nil {
		t.Fatalf("ParseImageDataURI: %v", err)
	}
	if img.Subtype != "png" || img.MIME() != "image/png" || img.Extension() != "png" {
		t.Fatalf("unexpected image metadata: %+v", img)
	}
	if string(img.Data) != string(pngBytes) {
		t.Fatalf("decoded bytes differ")
	}
}

func TestParseImageDataURI_Extension(t *testing.T) {
	tests := []struct {
		subtype string
		want    string
	}{
		{"jpeg", "jpg"},
		{"png", "png"},
		{"gif", "gif"},
		{"svg+xml", "svg+xml"},
	}
	for _, tt := range tests {
		img, err := ParseImageDataURI("data:image/" + tt.subtype + ";base64,AAAA")
		if err != nil {
			t.Fatalf("ParseImageDataURI(%s): %v", tt.subtype, err)
		}
		if got := img.Extension(); got != tt.want {
			t.Fatalf("Extension(%s) = %q, want %q", tt.subtype, got, tt.want)
		}
	}
}

func TestParseImageDataURI_Malformed(t *testing.T) {
	inputs := []string{
		"",
		"iVBORw0KGgo=",
		"data:text/plain;base64,AAAA",
		"data:image/png,AAAA",
		"data:image/png;base64,",
		"data:image/web-p;base64,AAAA",
		"data:image/png;base64,AA\nAA",
	}
	for _, in := range inputs {
		_, err := ParseImageDataURI(in)
		if !errors.Is(err, ErrInvalidImageFormat) {
			t.Fatalf("ParseImageDataURI(%q) err = %v, want ErrInvalidImageFormat", in, err)
		}
		if StatusCode(err) != http.StatusBadRequest {
			t.Fatalf("expected 400 for %q", in)
		}
		var uriErr *DataURIError
		if !errors.As(err, &uriErr) || uriErr.Input != in {
			t.Fatalf("expected *DataURIError carrying input for %q", in)
		}
	}
}

func TestParseImageDataURI_BadBase64(t *testing.T) {
	_, err := ParseImageDataURI("data:image/png;base64,@@@@")
	if !errors.Is(err, ErrImageDecode) {
		t.Fatalf("expected ErrImageDecode, got %v", err)
	}
	if StatusCode(err) != http.StatusInternalServerError {
		t.Fatalf("decode failures are reported as 500")
	}
}

func TestParseImageDataURI_UnpaddedBase64(t *testing.T) {
	payload := base64.RawStdEncoding.EncodeToString([]byte("hello"))
	img, err := ParseImageDataURI("data:image/gif;base64," + payload)
	if err != nil {
		t.Fatalf("ParseImageDataURI: %v", err)
	}
	if string(img.Data) != "hello" {
		t.Fatalf("unexpected data %q", img.Data)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"photo":            "photo",
		"my photo (1).jpg": "myphoto1.jpg",
		"../../etc/passwd": "....etcpasswd",
		"piscina-ñ_2":      "piscina2",
		"":                 "",
	}
	for in, want := range tests {
		if got := SanitizeFilename(in); got != want {
			t.Fatalf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestUploadFilename(t *testing.T) {
	now := time.UnixMilli(1760000000123)
	got := UploadFilename(now, "lobby view", "png")
	if got != "1760000000123-lobbyview.png" {
		t.Fatalf("UploadFilename = %q", got)
	}
	if !regexp.MustCompile(`^\d+-photo\.jpg$`).MatchString(UploadFilename(time.Now(), "photo", "jpg")) {
		t.Fatalf("unexpected filename shape")
	}
}

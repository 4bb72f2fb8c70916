package utils

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func pngBase64(t *testing.T, w, h int) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 40, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func TestDecodeBase64Image(t *testing.T) {
	raw := pngBase64(t, 4, 3)

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"bare base64", raw, false},
		{"data uri", "data:image/png;base64," + raw, false},
		{"not base64", "!!definitely not base64!!", true},
		{"base64 but not an image", base64.StdEncoding.EncodeToString([]byte("hello")), true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := DecodeBase64Image(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("DecodeBase64Image() expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeBase64Image() error: %v", err)
			}
			bounds := img.Bounds()
			if bounds.Dx() != 4 || bounds.Dy() != 3 {
				t.Errorf("decoded size = %dx%d, want 4x3", bounds.Dx(), bounds.Dy())
			}
		})
	}
}

func TestSaveBase64Image(t *testing.T) {
	orig := StaticRoot
	StaticRoot = t.TempDir()
	defer func() { StaticRoot = orig }()

	path, err := SaveBase64Image("data:image/png;base64,"+pngBase64(t, 8, 8), "recipes", 4)
	if err != nil {
		t.Fatalf("SaveBase64Image() error: %v", err)
	}
	if !strings.HasPrefix(path, "/media/recipes/") || !strings.HasSuffix(path, ".jpg") {
		t.Errorf("SaveBase64Image() path = %q, want /media/recipes/*.jpg", path)
	}

	onDisk := filepath.Join(StaticRoot, strings.TrimPrefix(path, "/media/"))
	if _, err := os.Stat(onDisk); err != nil {
		t.Errorf("saved file missing: %v", err)
	}

	RemoveMedia(path)
	if _, err := os.Stat(onDisk); !os.IsNotExist(err) {
		t.Errorf("RemoveMedia() left file behind: %v", err)
	}
}

func TestRemoveMediaIgnoresForeignPaths(t *testing.T) {
	// must not touch anything outside the media root
	RemoveMedia("/etc/passwd")
	RemoveMedia("")
}

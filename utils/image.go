package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

var ErrBadImage = errors.New("invalid image payload")

// StaticRoot is where uploaded media lands on disk; the router serves it
// under /media/.
var StaticRoot = "./static"

// DecodeBase64Image accepts a data URI ("data:image/png;base64,....") or a
// bare base64 string and decodes it into an image.
func DecodeBase64Image(data string) (image.Image, error) {
	if i := strings.Index(data, ";base64,"); i >= 0 {
		data = data[i+len(";base64,"):]
	}
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(data))
	if err != nil {
		return nil, ErrBadImage
	}
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, ErrBadImage
	}
	return img, nil
}

// SaveBase64Image decodes an uploaded base64 image, optionally downsizes it
// to fit maxDim, and writes it as JPEG under StaticRoot/subdir. Returns the
// public /media/ path to store on the entity.
func SaveBase64Image(data, subdir string, maxDim int) (string, error) {
	img, err := DecodeBase64Image(data)
	if err != nil {
		return "", err
	}
	if maxDim > 0 {
		img = imaging.Fit(img, maxDim, maxDim, imaging.Lanczos)
	}

	dir := filepath.Join(StaticRoot, subdir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", err
	}
	name := NewID() + ".jpg"
	if err := imaging.Save(img, filepath.Join(dir, name), imaging.JPEGQuality(85)); err != nil {
		return "", err
	}
	return "/media/" + subdir + "/" + name, nil
}

// RemoveMedia deletes a previously saved /media/ file. Missing files are not
// an error; the reference is gone either way.
func RemoveMedia(publicPath string) {
	if !strings.HasPrefix(publicPath, "/media/") {
		return
	}
	os.Remove(filepath.Join(StaticRoot, strings.TrimPrefix(publicPath, "/media/")))
}

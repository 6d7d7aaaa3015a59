// SPDX-License-Identifier: EPL-2.0

package imagesink

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// JPEGQuality is used for .jpg and .jpeg output.
const JPEGQuality = 95

type encodeFunc func(io.Writer, image.Image) error

var encoders = map[string]encodeFunc{
	"png":  png.Encode,
	"jpg":  encodeJPEG,
	"jpeg": encodeJPEG,
	"bmp":  bmp.Encode,
	"tif":  encodeTIFF,
	"tiff": encodeTIFF,
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: JPEGQuality})
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
}

// FormatFor returns the lowercase format key for path's extension.
func FormatFor(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Supported reports whether format (with or without a leading dot) has an
// encoder.
func Supported(format string) bool {
	_, ok := encoders[strings.ToLower(strings.TrimPrefix(format, "."))]
	return ok
}

// FromRGB builds an opaque image from row-major RGB bytes.
func FromRGB(width, height int, pix []byte) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || len(pix) != width*height*3 {
		return nil, fmt.Errorf("%w: %dx%d needs %d bytes, got %d",
			ErrDimensionMismatch, width, height, max(width*height*3, 0), len(pix))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i, j := 0, 0; i < len(pix); i, j = i+3, j+4 {
		img.Pix[j] = pix[i]
		img.Pix[j+1] = pix[i+1]
		img.Pix[j+2] = pix[i+2]
		img.Pix[j+3] = 0xff
	}

	return img, nil
}

// Encode writes pix to w in format ("png", "jpg", "bmp", "tiff", ...).
func Encode(w io.Writer, format string, width, height int, pix []byte) error {
	enc, ok := encoders[strings.ToLower(strings.TrimPrefix(format, "."))]
	if !ok {
		return fmt.Errorf("%w: %w: %q", ErrImage, ErrUnsupportedFormat, format)
	}

	img, err := FromRGB(width, height, pix)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImage, err)
	}

	if err := enc(w, img); err != nil {
		return fmt.Errorf("%w: encode %s: %w", ErrImage, format, err)
	}

	return nil
}

// Save writes pix to path, choosing the encoder from the extension. Nothing
// is left on disk when encoding fails.
func Save(path string, width, height int, pix []byte) (err error) {
	format := FormatFor(path)
	if !Supported(format) {
		return fmt.Errorf("%w: %w: %q", ErrImage, ErrUnsupportedFormat, filepath.Ext(path))
	}
	if _, err := FromRGB(width, height, pix); err != nil {
		return fmt.Errorf("%w: %w", ErrImage, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImage, err)
	}

	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: close %s: %w", ErrImage, path, cerr)
		}
		if err != nil {
			if rerr := removeIfExists(path); rerr != nil {
				err = errors.Join(err, rerr)
			}
		}
	}()

	return Encode(f, format, width, height, pix)
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

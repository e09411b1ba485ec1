package storage

import (
	"fmt"
	"os"

	"github.com/disintegration/imaging"

	// register webp decoding for image.Decode
	_ "golang.org/x/image/webp"
)

const (
	maxImageWidth  = 1920
	maxImageHeight = 1080
	jpegQuality    = 85
)

// optimizableExtensions are the formats that get re-encoded after upload.
// GIFs are stored as-is to keep animations intact.
var optimizableExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"webp": true,
}

// Optimizable reports whether a stored file should be optimized.
func Optimizable(name string) bool {
	return optimizableExtensions[Ext(name)]
}

// Optimize downscales a stored image to fit within 1920x1080 (never
// upscaling) and re-encodes it in place as quality-85 JPEG. Transparency is
// dropped by the JPEG encoding, matching an RGB flatten.
func (s *FileStore) Optimize(name string) error {
	path, err := s.Resolve(name)
	if err != nil {
		return err
	}

	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxImageWidth || bounds.Dy() > maxImageHeight {
		img = imaging.Fit(img, maxImageWidth, maxImageHeight, imaging.Lanczos)
	}

	// Encode to a temp file and swap it in so a failed re-encode leaves the
	// original upload untouched.
	tmp, err := os.CreateTemp(s.dir, "optimize-*")
	if err != nil {
		return fmt.Errorf("rewrite image: %w", err)
	}
	if err := imaging.Encode(tmp, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("encode jpeg: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rewrite image: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rewrite image: %w", err)
	}
	return nil
}

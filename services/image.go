package services

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

const (
	// MinImageDimension is the smallest accepted width and height in pixels
	MinImageDimension = 100
	// MaxImageDimension is the largest accepted width and height in pixels
	MaxImageDimension = 4000
)

// ValidateImage checks the size, format and dimensions of a submitted photo
// and returns its content type.
func ValidateImage(data []byte, maxBytes int64) (string, error) {
	if len(data) == 0 {
		return "", newError(KindInvalidImage, "image is empty")
	}

	if int64(len(data)) > maxBytes {
		return "", newError(KindInvalidImage, "image is %d bytes, limit is %d", len(data), maxBytes)
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", &Error{Kind: KindInvalidImage, Message: "image could not be decoded", Err: err}
	}

	if cfg.Width < MinImageDimension || cfg.Height < MinImageDimension {
		return "", newError(KindInvalidImage, "image is %dx%d, minimum is %dx%d",
			cfg.Width, cfg.Height, MinImageDimension, MinImageDimension)
	}

	if cfg.Width > MaxImageDimension || cfg.Height > MaxImageDimension {
		return "", newError(KindInvalidImage, "image is %dx%d, maximum is %dx%d",
			cfg.Width, cfg.Height, MaxImageDimension, MaxImageDimension)
	}

	return "image/" + format, nil
}

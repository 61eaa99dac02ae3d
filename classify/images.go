package classify

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"io"
	"os"
	"strings"

	// Decoders register themselves for image.DecodeConfig.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ImageSize reads just enough of an image stream to report its pixel
// dimensions. PNG, JPEG, GIF, BMP, TIFF and WebP are recognized.
func ImageSize(r io.Reader) (width, height int, err error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// ImageFileSize reports the pixel dimensions of an image file.
func ImageFileSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	return ImageSize(f)
}

// DataURISize reports the pixel dimensions of a base64 data URI, the
// one image source a classifier can measure without touching disk or
// network.
func DataURISize(uri string) (width, height int, err error) {
	if !strings.HasPrefix(uri, "data:") {
		return 0, 0, fmt.Errorf("not a data URI")
	}

	meta, payload, found := strings.Cut(uri[len("data:"):], ",")
	if !found {
		return 0, 0, fmt.Errorf("malformed data URI")
	}
	if !strings.HasSuffix(meta, ";base64") {
		return 0, 0, fmt.Errorf("unsupported data URI encoding")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return 0, 0, fmt.Errorf("decoding data URI: %w", err)
	}
	return ImageSize(bytes.NewReader(data))
}

package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load opens and decodes an image file.
//
// Parameters:
//   - path: Absolute or relative file path to the image. Supported formats are
//     PNG, JPEG, GIF, BMP, TIFF and WebP.
//
// Returns:
//   - image.Image: The decoded image, rotated according to its EXIF
//     orientation tag when one is present (JPEG and TIFF).
//   - error: Non-nil if the file cannot be opened or decoded.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the contents are not a supported image format
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, err := imaging.Decode(f, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image %s is empty", path)
	}

	return img, nil
}

// ImageInfo is what the verbose log reports about a source image.
type ImageInfo struct {
	Width, Height int
	Format        string // from the file extension, "unknown" if unrecognized
	Bytes         int64
}

func (i *ImageInfo) String() string {
	return fmt.Sprintf("%dx%d %s, %d bytes", i.Width, i.Height, i.Format, i.Bytes)
}

// Inspect describes an already decoded image and the file it came from.
func Inspect(path string, img image.Image) (*ImageInfo, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	bounds := img.Bounds()
	return &ImageInfo{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: formatName(path),
		Bytes:  stat.Size(),
	}, nil
}

// formatName maps a file extension to a format name.
func formatName(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png"
	case ".jpg", ".jpeg":
		return "jpeg"
	case ".gif":
		return "gif"
	case ".bmp":
		return "bmp"
	case ".tif", ".tiff":
		return "tiff"
	case ".webp":
		return "webp"
	}
	return "unknown"
}

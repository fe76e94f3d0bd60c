package pipeline

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ironsheep/mosaic-tiles/internal/geometry"
	"github.com/ironsheep/mosaic-tiles/internal/mosaic"
)

// Error classes. Every error returned by Run wraps exactly one of these.
var (
	// ErrUsage marks an invalid configuration.
	ErrUsage = errors.New("invalid arguments")

	// ErrInput marks a missing, unreadable or undecodable source image.
	ErrInput = errors.New("cannot read input")

	// ErrOutput marks a failure to encode or write the result.
	ErrOutput = errors.New("cannot write output")
)

// Size is an output size in pixels. Its text form is "W,H".
type Size struct {
	Width  int
	Height int
}

// UnmarshalText parses "1920,1080". "1920x1080" is accepted as well.
func (s *Size) UnmarshalText(text []byte) error {
	str := strings.TrimSpace(string(text))
	sep := ","
	if !strings.Contains(str, sep) {
		sep = "x"
	}

	parts := strings.Split(str, sep)
	if len(parts) != 2 {
		return fmt.Errorf("size must be W,H, got %q", str)
	}

	w, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("invalid width in %q: %w", str, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("invalid height in %q: %w", str, err)
	}

	s.Width, s.Height = w, h
	return nil
}

func (s Size) String() string {
	return fmt.Sprintf("%d,%d", s.Width, s.Height)
}

// Config holds everything a run needs.
type Config struct {
	// Input is the source image path.
	Input string

	// Shape selects the lattice.
	Shape geometry.Kind

	// Grid is the lattice step in working-canvas pixels.
	Grid int

	// Margin is subtracted from the tile radius, in pixels.
	Margin int

	// Background multiplies the canvas under the tiles.
	Background float64

	// Size is the final image size. The working canvas is twice as large.
	Size Size

	// Filter is the box blur kernel size; 0 disables blurring.
	Filter int

	// Output is a path prefix. When set, the result is written to
	// Output + basename(Input).
	Output string

	// Holes drops random tiles.
	Holes bool

	// HoleRate is the drop probability used with Holes.
	HoleRate float64

	// Seed seeds the hole dropout. 0 picks a seed from the clock.
	Seed uint64

	// Preview writes a PNG copy to the temp directory when Output is empty.
	Preview bool

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultConfig returns the defaults of the command line tool.
func DefaultConfig() Config {
	return Config{
		Shape:      geometry.Rectangle,
		Grid:       18,
		Margin:     0,
		Background: 1,
		Size:       Size{Width: 1920, Height: 1080},
		HoleRate:   mosaic.DefaultHoleRate,
		Preview:    true,
	}
}

// Validate checks the numeric parameters. Errors wrap ErrUsage.
func (c *Config) Validate() error {
	switch {
	case c.Grid <= 0:
		return fmt.Errorf("%w: grid step must be > 0, got %d", ErrUsage, c.Grid)
	case c.Margin < 0:
		return fmt.Errorf("%w: margin must be >= 0, got %d", ErrUsage, c.Margin)
	case c.Size.Width <= 0 || c.Size.Height <= 0:
		return fmt.Errorf("%w: size must be positive, got %s", ErrUsage, c.Size)
	case c.Filter < 0:
		return fmt.Errorf("%w: filter must be >= 0, got %d", ErrUsage, c.Filter)
	case c.Background < 0:
		return fmt.Errorf("%w: background must be >= 0, got %g", ErrUsage, c.Background)
	case c.Holes && (c.HoleRate <= 0 || c.HoleRate > 1):
		return fmt.Errorf("%w: hole rate must be in (0,1], got %g", ErrUsage, c.HoleRate)
	}
	if _, err := geometry.New(c.Shape, c.Grid, c.Margin); err != nil {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}
	return nil
}

package pipeline

import (
	"fmt"
	"image"
	"log"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ironsheep/mosaic-tiles/internal/geometry"
	"github.com/ironsheep/mosaic-tiles/internal/imaging"
	"github.com/ironsheep/mosaic-tiles/internal/mosaic"
)

// Result describes a finished run.
type Result struct {
	// Image is the final, downscaled mosaic.
	Image *image.NRGBA

	// Stats reports how many tiles were drawn and skipped.
	Stats mosaic.Stats

	// Seed is the seed used for hole dropout, 0 when holes are off.
	Seed uint64

	// OutputPath is the written result, empty if Output was not set.
	OutputPath string

	// PreviewPath is the written preview, empty if none was written.
	PreviewPath string
}

// Render turns img into a mosaic without touching the filesystem.
//
// rng drives hole dropout and may be nil when cfg.Holes is false.
func Render(img image.Image, cfg Config, rng *rand.Rand) (*image.NRGBA, mosaic.Stats, error) {
	if err := cfg.Validate(); err != nil {
		return nil, mosaic.Stats{}, err
	}

	geom, err := geometry.New(cfg.Shape, cfg.Grid, cfg.Margin)
	if err != nil {
		return nil, mosaic.Stats{}, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	samples, output, err := imaging.Prepare(img, imaging.PrepareOptions{
		Width:      cfg.Size.Width,
		Height:     cfg.Size.Height,
		Filter:     cfg.Filter,
		Background: cfg.Background,
	})
	if err != nil {
		return nil, mosaic.Stats{}, fmt.Errorf("%w: %v", ErrInput, err)
	}

	comp := &mosaic.Compositor{
		Geometry: geom,
		Holes:    cfg.Holes,
		HoleRate: cfg.HoleRate,
		Rand:     rng,
	}
	stats, err := comp.Compose(samples, mosaic.NewFiller(output))
	if err != nil {
		return nil, stats, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	return imaging.Downscale(output, cfg.Size.Width, cfg.Size.Height), stats, nil
}

// Run loads cfg.Input, renders it and writes the result.
//
// Errors wrap ErrUsage, ErrInput or ErrOutput. Nothing is written unless
// rendering succeeded.
func Run(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	img, err := imaging.Load(cfg.Input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInput, cfg.Input, err)
	}
	if cfg.Verbose {
		if info, err := imaging.Inspect(cfg.Input, img); err == nil {
			log.Printf("Loaded %s: %s", cfg.Input, info)
		}
	}

	res := &Result{}
	var rng *rand.Rand
	if cfg.Holes {
		res.Seed = cfg.Seed
		if res.Seed == 0 {
			res.Seed = uint64(time.Now().UnixNano())
		}
		rng = NewRand(res.Seed)
	}

	res.Image, res.Stats, err = Render(img, cfg, rng)
	if err != nil {
		return nil, err
	}
	if cfg.Verbose {
		log.Printf("Rendered %s mosaic %s (grid %d, margin %d): %s in %v",
			cfg.Shape, cfg.Size, cfg.Grid, cfg.Margin, res.Stats, time.Since(start).Round(time.Millisecond))
		if cfg.Holes {
			log.Printf("Hole seed: %d", res.Seed)
		}
	}

	if cfg.Output != "" {
		res.OutputPath = OutputPath(cfg.Output, cfg.Input)
		if err := imaging.Save(res.Image, res.OutputPath); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOutput, err)
		}
	} else if cfg.Preview {
		res.PreviewPath = PreviewPath(cfg.Input)
		if err := imaging.Save(res.Image, res.PreviewPath); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOutput, err)
		}
	}

	return res, nil
}

// NewRand returns the random source used for hole dropout.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// OutputPath joins the output prefix and the input's base name. The prefix
// is used verbatim, so "out/" writes into a directory and "mosaic-" prepends
// to the file name.
func OutputPath(prefix, input string) string {
	return prefix + filepath.Base(input)
}

// PreviewPath is where the preview PNG for input goes.
func PreviewPath(input string) string {
	base := filepath.Base(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(os.TempDir(), "mosaic-preview-"+stem+".png")
}

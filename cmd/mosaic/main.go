package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ironsheep/mosaic-tiles/internal/geometry"
	"github.com/ironsheep/mosaic-tiles/internal/pipeline"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const description = `Turns a picture into a mosaic of flat colored tiles.

Exactly one of --hex, --tri, --rec or --los selects the tile shape. Without
--output the result is written as a PNG preview into the temp directory.`

// Exit codes
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// pixels is an integer flag that also accepts decimal text, truncated
// toward zero.
type pixels int

func (p *pixels) UnmarshalText(text []byte) error {
	v, err := strconv.ParseFloat(strings.TrimSpace(string(text)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("expected a number, got %q", text)
	}
	*p = pixels(int(v))
	return nil
}

type cli struct {
	Filename string `arg:"" help:"Source image."`

	Hex bool `xor:"shape" required:"" help:"Hexagonal tiles."`
	Tri bool `xor:"shape" required:"" help:"Alternating triangles."`
	Rec bool `xor:"shape" required:"" help:"Square tiles."`
	Los bool `xor:"shape" required:"" help:"Diamond tiles."`

	Background float64          `short:"b" default:"1" help:"Background level multiplier."`
	Grid       pixels           `short:"g" default:"18" help:"Grid step in pixels at working resolution."`
	Margin     pixels           `short:"m" default:"0" help:"Margin between tiles in pixels."`
	Size       pipeline.Size    `short:"s" default:"1920,1080" help:"Output size as W,H."`
	Filter     int              `short:"f" default:"0" help:"Box blur kernel size, 0 disables."`
	Output     string           `short:"o" placeholder:"PREFIX" help:"Write the result to PREFIX followed by the input file name."`
	Holes      bool             `help:"Randomly leave out tiles."`
	HoleRate   float64          `default:"0.3" help:"Probability of leaving out a tile with --holes."`
	Seed       uint64           `default:"0" help:"Seed for --holes, 0 picks one from the clock."`
	NoPreview  bool             `help:"Do not write a preview when --output is not set."`
	Verbose    bool             `short:"v" help:"Enable debug logging."`
	Version    kong.VersionFlag `help:"Print version information."`
}

// Validate runs after parsing.
func (c *cli) Validate() error {
	n := 0
	for _, set := range []bool{c.Hex, c.Tri, c.Rec, c.Los} {
		if set {
			n++
		}
	}
	if n != 1 {
		return errors.New("exactly one of --hex, --tri, --rec or --los is required")
	}
	return nil
}

func (c *cli) shape() geometry.Kind {
	switch {
	case c.Hex:
		return geometry.Hexagon
	case c.Tri:
		return geometry.Triangle
	case c.Los:
		return geometry.Losange
	default:
		return geometry.Rectangle
	}
}

// config converts the parsed flags into a pipeline configuration.
func (c *cli) config() pipeline.Config {
	cfg := pipeline.DefaultConfig()
	cfg.Input = c.Filename
	cfg.Shape = c.shape()
	cfg.Grid = int(c.Grid)
	cfg.Margin = int(c.Margin)
	cfg.Background = c.Background
	cfg.Size = c.Size
	cfg.Filter = c.Filter
	cfg.Output = c.Output
	cfg.Holes = c.Holes
	cfg.HoleRate = c.HoleRate
	cfg.Seed = c.Seed
	cfg.Preview = !c.NoPreview
	cfg.Verbose = c.Verbose
	return cfg
}

func newParser(c *cli, options ...kong.Option) (*kong.Kong, error) {
	options = append([]kong.Option{
		kong.Name("mosaic"),
		kong.Description(description),
		kong.Vars{"version": fmt.Sprintf("mosaic %s (built %s, commit %s)", Version, BuildTime, GitCommit)},
	}, options...)
	return kong.New(c, options...)
}

// run parses args, renders the mosaic and returns the process exit code.
func run(args []string, stdout io.Writer, options ...kong.Option) int {
	var c cli
	parser, err := newParser(&c, options...)
	if err != nil {
		log.Printf("CLI setup error: %v", err)
		return exitError
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		var perr *kong.ParseError
		if errors.As(err, &perr) && perr.Context != nil {
			_ = perr.Context.PrintUsage(true)
		}
		parser.Errorf("%v", err)
		return exitUsage
	}

	cfg := c.config()
	if cfg.Verbose {
		log.Printf("mosaic v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	res, err := pipeline.Run(cfg)
	if err != nil {
		if errors.Is(err, pipeline.ErrUsage) {
			_ = ctx.PrintUsage(true)
			parser.Errorf("%v", err)
			return exitUsage
		}
		parser.Errorf("%v", err)
		return exitError
	}

	switch {
	case res.OutputPath != "":
		fmt.Fprintln(stdout, res.OutputPath)
	case res.PreviewPath != "":
		fmt.Fprintf(stdout, "preview: %s\n", res.PreviewPath)
	}
	return exitOK
}

func main() {
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	os.Exit(run(os.Args[1:], os.Stdout))
}

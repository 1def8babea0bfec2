package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/circulargraph/pkg/config"
	"github.com/go-drift/circulargraph/pkg/errors"
	"github.com/go-drift/circulargraph/pkg/graphics"
	"github.com/go-drift/circulargraph/pkg/layout"
	"github.com/go-drift/circulargraph/pkg/raster"
	"github.com/go-drift/circulargraph/pkg/widgets"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a ring.yaml to PNG",
		Long: `Render every ring in a ring.yaml into one PNG image.

Rings are drawn in file order into the same square, so inner rings of a
concentric graph should come after the outer ones.

Flags:
  -o, --output FILE    Output path (default: input name with .png)
  --size N             Image side in pixels (default: size from the file)
  --background COLOR   Background as #RRGGBB or #AARRGGBB (default: theme)
  --label              Print current/max of the first ring in the center`,
		Usage: "circulargraph render <ring.yaml> [-o out.png] [--size N] [--background COLOR] [--label]",
		Run:   runRender,
	})
}

type renderOptions struct {
	input      string
	output     string
	size       float64
	background string
	label      bool
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	s, err := loadScene(opts.input, opts.size)
	if err != nil {
		return err
	}

	background := s.theme.ColorScheme.Background
	if opts.background != "" {
		if background, err = config.ParseColor(opts.background); err != nil {
			return fmt.Errorf("--background: %w", err)
		}
	}

	lists := make([]*graphics.DisplayList, 0, len(s.graphs))
	for _, g := range s.graphs {
		lists = append(lists, record(g))
	}
	s.owner.FlushPaint()

	canvas := raster.Snapshot(s.size, background, lists...)
	if opts.label {
		first := s.graphs[0]
		text := fmt.Sprintf("%d/%d", first.CurrentValue(), first.MaxValue())
		canvas.DrawLabel(text, first.Geometry().Center, s.theme.ColorScheme.OnSurfaceVariant)
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return &errors.GraphError{Op: "cmd.render", Kind: errors.KindRender, Err: err}
	}
	if err := raster.EncodePNG(f, canvas.Image()); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &errors.GraphError{Op: "cmd.render", Kind: errors.KindRender, Err: err}
	}

	log.Printf("rendered %d ring(s) at %.0fx%.0f to %s", len(s.graphs), s.size.Width, s.size.Height, opts.output)
	return nil
}

// record paints g into a display list. A panicking paint is reported and
// leaves the ring out of the image.
func record(g *widgets.CircularGraph) (dl *graphics.DisplayList) {
	defer errors.Recover("cmd.render.record")
	return layout.Record(g)
}

func parseRenderArgs(args []string) (renderOptions, error) {
	var opts renderOptions
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch arg {
		case "-o", "--output", "--size", "--background":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			value := args[i+1]
			i++
			switch arg {
			case "--size":
				size, err := parseSize(arg, value)
				if err != nil {
					return opts, err
				}
				opts.size = size
			case "--background":
				opts.background = value
			default:
				opts.output = value
			}
		case "--label":
			opts.label = true
		default:
			if strings.HasPrefix(arg, "-") {
				return opts, fmt.Errorf("unknown flag %q", arg)
			}
			if opts.input != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.input = arg
		}
	}
	if opts.input == "" {
		return opts, fmt.Errorf("a ring.yaml path is required\n\nUsage: circulargraph render <ring.yaml> [-o out.png]")
	}
	if opts.output == "" {
		opts.output = strings.TrimSuffix(opts.input, filepath.Ext(opts.input)) + ".png"
	}
	return opts, nil
}

package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

func init() {
	RegisterCommand(&Command{
		Name:  "inspect",
		Short: "Print values and geometry of each ring",
		Long: `Load a ring.yaml and print, for every ring, its value, sweep angle,
stroke widths and the resolved center and radius.

Flags:
  --size N             Surface side in pixels (default: size from the file)`,
		Usage: "circulargraph inspect <ring.yaml> [--size N]",
		Run:   runInspect,
	})
}

func runInspect(args []string) error {
	var path string
	var size float64
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; {
		case arg == "--size":
			if i+1 >= len(args) {
				return fmt.Errorf("--size requires a value")
			}
			v, err := parseSize(arg, args[i+1])
			if err != nil {
				return err
			}
			size = v
			i++
		case strings.HasPrefix(arg, "-"):
			return fmt.Errorf("unknown flag %q", arg)
		case path == "":
			path = arg
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}
	if path == "" {
		return fmt.Errorf("a ring.yaml path is required\n\nUsage: circulargraph inspect <ring.yaml>")
	}

	s, err := loadScene(path, size)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "theme %s, surface %.0fx%.0f\n", s.theme.Brightness, s.size.Width, s.size.Height)
	w := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RING\tVALUE\tSWEEP\tTRACK\tFILL\tCENTER\tRADIUS\tPOLICY")
	for i, g := range s.graphs {
		geo := g.Geometry()
		fmt.Fprintf(w, "%d\t%d/%d\t%.1f\t%.1f %s\t%.1f %s\t(%.1f, %.1f)\t%.1f\t%s\n",
			i, g.CurrentValue(), g.MaxValue(), g.SweepAngle(),
			g.TrackWidth(), g.TrackColor(), g.FillWidth(), g.FillColor(),
			geo.Center.X, geo.Center.Y, geo.Radius, g.MaxPolicy())
	}
	return w.Flush()
}

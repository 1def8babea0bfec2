package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/circulargraph/pkg/config"
	"github.com/go-drift/circulargraph/pkg/graphics"
	"github.com/go-drift/circulargraph/pkg/layout"
	"github.com/go-drift/circulargraph/pkg/theme"
	"github.com/go-drift/circulargraph/pkg/widgets"
)

// scene is a loaded ring.yaml laid out on a square surface.
type scene struct {
	theme  *theme.ThemeData
	size   graphics.Size
	graphs []*widgets.CircularGraph
	owner  *layout.PipelineOwner
}

// loadScene builds every ring in path and lays them out on a square of
// side size, or of the first ring's preferred size when size is zero.
func loadScene(path string, size float64) (*scene, error) {
	doc, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	cfgs, err := doc.Graphs()
	if err != nil {
		return nil, err
	}
	if size <= 0 {
		size = cfgs[0].Size
	}

	s := &scene{
		theme: doc.ThemeData(),
		size:  graphics.Size{Width: size, Height: size},
		owner: &layout.PipelineOwner{},
	}
	for _, cfg := range cfgs {
		g, err := widgets.NewCircularGraph(cfg)
		if err != nil {
			return nil, err
		}
		g.SetOwner(s.owner)
		s.owner.FlushLayoutForRoot(g, layout.Tight(s.size))
		s.graphs = append(s.graphs, g)
	}
	return s, nil
}

func parseSize(flag, value string) (float64, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%s requires a positive number, got %q", flag, value)
	}
	return v, nil
}

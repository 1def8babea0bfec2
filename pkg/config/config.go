// Package config loads circular graph definitions from ring.yaml files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	grapherrors "github.com/go-drift/circulargraph/pkg/errors"
	"github.com/go-drift/circulargraph/pkg/graphics"
	"github.com/go-drift/circulargraph/pkg/layout"
	"github.com/go-drift/circulargraph/pkg/ring"
	"github.com/go-drift/circulargraph/pkg/theme"
	"github.com/go-drift/circulargraph/pkg/widgets"
)

// FileName is the conventional name of a graph definition file.
const FileName = "ring.yaml"

// SchemaVersion is the newest ring.yaml schema this package reads. Files
// with the same major version are accepted.
const SchemaVersion = "v1.0.0"

var (
	// ErrUnsupportedVersion reports a schema version with another major.
	ErrUnsupportedVersion = errors.New("unsupported schema version")
	// ErrUnknownTheme reports a theme other than light or dark.
	ErrUnknownTheme = errors.New("theme must be light or dark")
	// ErrNoRings reports a document without rings.
	ErrNoRings = errors.New("at least one ring is required")
	// ErrInvalidColor reports a color that is not #RGB, #RRGGBB or #AARRGGBB.
	ErrInvalidColor = errors.New("color must be #RGB, #RRGGBB or #AARRGGBB")
	// ErrNegativeLength reports a negative size, padding or inset.
	ErrNegativeLength = errors.New("length must not be negative")
)

// Document is a parsed ring.yaml.
//
// Rings are drawn in order into the same square, so later rings with a
// larger inset sit inside earlier ones.
type Document struct {
	Version string  `yaml:"version,omitempty"`
	Theme   string  `yaml:"theme,omitempty"`
	Size    float64 `yaml:"size,omitempty"`
	Padding float64 `yaml:"padding,omitempty"`
	Rings   []Ring  `yaml:"rings"`
}

// Ring describes one graph. Unset fields take the theme defaults; an unset
// fill_width follows track_width.
type Ring struct {
	Max        *int     `yaml:"max,omitempty"`
	Current    *int     `yaml:"current,omitempty"`
	TrackColor string   `yaml:"track_color,omitempty"`
	FillColor  string   `yaml:"fill_color,omitempty"`
	TrackWidth *float64 `yaml:"track_width,omitempty"`
	FillWidth  *float64 `yaml:"fill_width,omitempty"`
	Inset      float64  `yaml:"inset,omitempty"`
	Thumb      bool     `yaml:"thumb,omitempty"`
	Seekable   bool     `yaml:"seekable,omitempty"`
	MaxPolicy  string   `yaml:"max_policy,omitempty"`
	StrokeCap  string   `yaml:"stroke_cap,omitempty"`
}

// Load reads and parses the file at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &grapherrors.GraphError{
			Op:   "config.Load",
			Kind: grapherrors.KindConfig,
			Err:  fmt.Errorf("failed to read %s: %w", path, err),
		}
	}
	return Parse(data)
}

// Parse decodes a ring.yaml document and checks its version, theme and
// ring count. Per-ring values are checked by Graphs.
func Parse(data []byte) (*Document, error) {
	const op = "config.Parse"

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &grapherrors.GraphError{
			Op:   op,
			Kind: grapherrors.KindConfig,
			Err:  fmt.Errorf("failed to parse %s: %w", FileName, err),
		}
	}

	doc.Version = strings.TrimSpace(doc.Version)
	if doc.Version == "" {
		doc.Version = SchemaVersion
	}
	if err := checkVersion(doc.Version); err != nil {
		return nil, grapherrors.Invalid(op, "version", doc.Version, err)
	}

	doc.Theme = strings.ToLower(strings.TrimSpace(doc.Theme))
	if _, err := brightness(doc.Theme); err != nil {
		return nil, grapherrors.Invalid(op, "theme", doc.Theme, err)
	}
	if len(doc.Rings) == 0 {
		return nil, grapherrors.Invalid(op, "rings", 0, ErrNoRings)
	}
	return &doc, nil
}

// ThemeData returns the theme selected by the document.
func (d *Document) ThemeData() *theme.ThemeData {
	b, _ := brightness(d.Theme)
	return theme.ForBrightness(b)
}

// Graphs converts every ring into a validated widget configuration.
func (d *Document) Graphs() ([]widgets.Config, error) {
	const op = "config.Graphs"
	if d.Size < 0 {
		return nil, grapherrors.Invalid(op, "size", d.Size, ErrNegativeLength)
	}
	if d.Padding < 0 {
		return nil, grapherrors.Invalid(op, "padding", d.Padding, ErrNegativeLength)
	}
	th := d.ThemeData()
	out := make([]widgets.Config, 0, len(d.Rings))
	for i, r := range d.Rings {
		cfg, err := r.graph(th, d.Size, d.Padding)
		if err != nil {
			return nil, fmt.Errorf("rings[%d]: %w", i, err)
		}
		out = append(out, cfg)
	}
	return out, nil
}

func (r Ring) graph(th *theme.ThemeData, size, padding float64) (widgets.Config, error) {
	const op = "config.Graphs"

	cfg := widgets.DefaultConfig(th)
	if size > 0 {
		cfg.Size = size
	}
	if r.Max != nil {
		cfg.MaxValue = *r.Max
	}
	if r.Current != nil {
		cfg.CurrentValue = *r.Current
	}

	var err error
	if r.TrackColor != "" {
		if cfg.TrackColor, err = ParseColor(r.TrackColor); err != nil {
			return cfg, grapherrors.Invalid(op, "track_color", r.TrackColor, err)
		}
	}
	if r.FillColor != "" {
		if cfg.FillColor, err = ParseColor(r.FillColor); err != nil {
			return cfg, grapherrors.Invalid(op, "fill_color", r.FillColor, err)
		}
	}

	if r.TrackWidth != nil {
		cfg.TrackWidth = *r.TrackWidth
		cfg.FillWidth = *r.TrackWidth
	}
	if r.FillWidth != nil {
		cfg.FillWidth = *r.FillWidth
	}

	if cfg.StrokeCap, err = graphics.ParseStrokeCap(strings.ToLower(r.StrokeCap)); err != nil {
		return cfg, grapherrors.Invalid(op, "stroke_cap", r.StrokeCap, err)
	}

	if r.Inset < 0 {
		return cfg, grapherrors.Invalid(op, "inset", r.Inset, ErrNegativeLength)
	}
	cfg.Padding = layout.EdgeInsetsAll(padding + r.Inset)
	cfg.Thumb = r.Thumb
	cfg.Seekable = r.Seekable

	if cfg.MaxPolicy, err = ring.ParseMaxPolicy(strings.ToLower(r.MaxPolicy)); err != nil {
		return cfg, grapherrors.Invalid(op, "max_policy", r.MaxPolicy, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q is not a semantic version", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) {
		return fmt.Errorf("%w: %s, want %s", ErrUnsupportedVersion, v, semver.Major(SchemaVersion))
	}
	return nil
}

func brightness(name string) (theme.Brightness, error) {
	switch name {
	case "", "light":
		return theme.BrightnessLight, nil
	case "dark":
		return theme.BrightnessDark, nil
	default:
		return theme.BrightnessLight, ErrUnknownTheme
	}
}

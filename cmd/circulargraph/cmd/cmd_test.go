package cmd

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const concentricYAML = `version: v1
size: 200
padding: 4
rings:
  - current: 60
    track_color: "#AAAAAA"
    fill_color: "#0000FF"
    track_width: 12
  - current: 30
    track_color: "#AAAAAA"
    fill_color: "#00FF00"
    track_width: 12
    inset: 24
`

func writeRingFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ring.yaml")
	if err := os.WriteFile(path, []byte(concentricYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = prev })
	return &buf
}

func TestParseRenderArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    renderOptions
		wantErr bool
	}{
		{"default output", []string{"a/ring.yaml"}, renderOptions{input: "a/ring.yaml", output: "a/ring.png"}, false},
		{"all flags", []string{"r.yaml", "-o", "x.png", "--size", "64", "--background", "#000", "--label"},
			renderOptions{input: "r.yaml", output: "x.png", size: 64, background: "#000", label: true}, false},
		{"missing input", nil, renderOptions{}, true},
		{"missing value", []string{"r.yaml", "-o"}, renderOptions{}, true},
		{"bad size", []string{"r.yaml", "--size", "-3"}, renderOptions{}, true},
		{"unknown flag", []string{"r.yaml", "--fast"}, renderOptions{}, true},
		{"two inputs", []string{"a.yaml", "b.yaml"}, renderOptions{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseRenderArgs(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRender_WritesPNG(t *testing.T) {
	in := writeRingFile(t)
	out := filepath.Join(t.TempDir(), "out.png")
	if err := run([]string{"render", in, "-o", out, "--background", "#FFFFFF"}); err != nil {
		t.Fatalf("render: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("bounds = %v, want 200x200", b)
	}

	tests := []struct {
		name    string
		x, y    int
		r, g, b uint32
	}{
		// Outer ring: radius 90 around (100, 100), 60 of 100 filled.
		{"outer fill just past 12 o'clock", 101, 10, 0x00, 0x00, 0xFF},
		{"outer fill at 6 o'clock", 100, 190, 0x00, 0x00, 0xFF},
		{"outer track at 9 o'clock", 10, 100, 0xAA, 0xAA, 0xAA},
		// Inner ring: radius 66, 30 of 100 filled, so only 3 o'clock is filled.
		{"inner fill at 3 o'clock", 166, 100, 0x00, 0xFF, 0x00},
		{"inner track at 6 o'clock", 100, 166, 0xAA, 0xAA, 0xAA},
		{"background at center", 100, 100, 0xFF, 0xFF, 0xFF},
		{"background in corner", 1, 1, 0xFF, 0xFF, 0xFF},
	}
	for _, tt := range tests {
		r, g, b, _ := img.At(tt.x, tt.y).RGBA()
		if !near(r>>8, tt.r) || !near(g>>8, tt.g) || !near(b>>8, tt.b) {
			t.Errorf("%s: pixel (%d, %d) = #%02X%02X%02X", tt.name, tt.x, tt.y, r>>8, g>>8, b>>8)
		}
	}
}

func near(a, b uint32) bool {
	if a > b {
		return a-b <= 2
	}
	return b-a <= 2
}

func TestInspect(t *testing.T) {
	buf := captureStdout(t)
	if err := run([]string{"inspect", writeRingFile(t)}); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"theme light, surface 200x200", "30/100", "108.0", "60/100", "216.0", "(100.0, 100.0)", "90.0", "66.0", "clamp"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestInspect_SizeOverride(t *testing.T) {
	buf := captureStdout(t)
	if err := run([]string{"inspect", writeRingFile(t), "--size", "100"}); err != nil {
		t.Fatalf("inspect: %v", err)
	}
	if !strings.Contains(buf.String(), "surface 100x100") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestRun_Errors(t *testing.T) {
	captureStdout(t)
	tests := [][]string{
		{"paint"},
		{"inspect"},
		{"inspect", filepath.Join(t.TempDir(), "missing.yaml")},
		{"render", "ring.yaml", "--background"},
	}
	for _, args := range tests {
		if err := run(args); err == nil {
			t.Errorf("run(%q) returned nil error", args)
		}
	}
}

func TestVersion(t *testing.T) {
	buf := captureStdout(t)
	if err := run([]string{"version"}); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(buf.String(), Version) || !strings.Contains(buf.String(), "schema v1") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

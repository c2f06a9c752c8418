package app

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"wirecam/gfx/geom"
	"wirecam/hal"
)

type testLogger struct{ lines []string }

func (l *testLogger) WriteLineString(s string) { l.lines = append(l.lines, s) }
func (l *testLogger) WriteLineBytes(b []byte)  { l.lines = append(l.lines, string(b)) }

type testDisplay struct{ fb hal.Framebuffer }

func (d testDisplay) Framebuffer() hal.Framebuffer { return d.fb }

type testHAL struct {
	log  *testLogger
	disp hal.Display
}

func (h testHAL) Logger() hal.Logger   { return h.log }
func (h testHAL) Display() hal.Display { return h.disp }

func newTestHAL(w, h int) testHAL {
	return testHAL{log: &testLogger{}, disp: hal.New(w, h).Display()}
}

func lit(fb hal.Framebuffer) int {
	n := 0
	for _, b := range fb.Buffer() {
		if b != 0 {
			n++
		}
	}
	return n
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfigRoundTrip(t *testing.T) {
	b, err := DefaultConfig().Marshal()
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := LoadConfig(writeConfig(t, string(b)))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !reflect.DeepEqual(got, DefaultConfig()) {
		t.Fatalf("round trip:\n%s\n%+v", b, got)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "missing.yaml")} {
		got, err := LoadConfig(path)
		if err != nil || !reflect.DeepEqual(got, DefaultConfig()) {
			t.Fatalf("LoadConfig(%q) = %+v, %v", path, got, err)
		}
	}
	if _, err := LoadConfig(writeConfig(t, "zoom: [1, 2\n")); err == nil {
		t.Fatalf("invalid yaml accepted")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "zoom: 5\ncamera:\n  mode: ortho\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Zoom != 5 || cfg.Camera.Mode != "ortho" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Camera.Position != DefaultConfig().Camera.Position || len(cfg.Objects) != 3 {
		t.Fatalf("defaults lost: %+v", cfg)
	}
}

func TestBuildObjects(t *testing.T) {
	objs, err := DefaultConfig().BuildObjects()
	if err != nil || len(objs) != 3 {
		t.Fatalf("objects = %d, %v", len(objs), err)
	}
	cfg := DefaultConfig()
	cfg.Objects = append(cfg.Objects, ObjectConfig{Kind: "teapot"})
	if _, err := cfg.BuildObjects(); !errors.Is(err, ErrUnknownObject) {
		t.Fatalf("teapot: err=%v", err)
	}
}

func TestStepRendersFrame(t *testing.T) {
	h := newTestHAL(160, 120)
	cfg := DefaultConfig()
	cfg.Axes = true
	a, err := New(h, cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 2; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if a.Frames() != 2 {
		t.Fatalf("frames = %d", a.Frames())
	}
	if lit(a.Framebuffer()) == 0 {
		t.Fatalf("empty frame")
	}
}

func TestUnsupportedModeKeepsRunning(t *testing.T) {
	h := newTestHAL(64, 64)
	cfg := DefaultConfig()
	cfg.HUD = false
	cfg.Camera.Mode = "orthographic"
	a, err := New(h, cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := a.Step(); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
	}
	if len(h.log.lines) != 1 || !strings.Contains(h.log.lines[0], "unsupported projection mode") {
		t.Fatalf("log = %q", h.log.lines)
	}
	if lit(a.Framebuffer()) != 0 {
		t.Fatalf("orthographic frame not blank")
	}
}

func TestOrbit(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Orbit = 90
	a, err := New(newTestHAL(64, 64), cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := a.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	cam := a.Scene().Camera
	if !cam.Pos.ApproxEqual(geom.V3(-8, 0, 0), 1e-9) || !cam.RotDir.ApproxEqual(geom.V3(8, 0, 0), 1e-9) {
		t.Fatalf("camera pos=%v dir=%v", cam.Pos, cam.RotDir)
	}
}

type countingSurface struct{ strokes, points int }

func (s *countingSurface) Dimensions() (int, int) { return 64, 64 }
func (s *countingSurface) BeginPath()             {}
func (s *countingSurface) MoveTo(x, y float64)    {}
func (s *countingSurface) LineTo(x, y float64)    {}
func (s *countingSurface) Stroke()                { s.strokes++ }

func (s *countingSurface) DrawPoint(x, y float64, c color.RGBA, size float64) { s.points++ }

func TestRenderToOtherSurface(t *testing.T) {
	a, err := New(newTestHAL(64, 64), DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	var s countingSurface
	if err := a.RenderTo(&s); err != nil {
		t.Fatalf("render: %v", err)
	}
	// 6 cube faces, 4+1 pyramid faces, 12*6 torus quads.
	if s.strokes != 6+5+72 {
		t.Fatalf("strokes = %d", s.strokes)
	}
	if lit(a.Framebuffer()) != 0 {
		t.Fatalf("framebuffer touched")
	}
	if err := a.Step(); err != nil || lit(a.Framebuffer()) == 0 {
		t.Fatalf("step after RenderTo: %v", err)
	}
}

func TestNewWithoutDisplay(t *testing.T) {
	h := testHAL{log: &testLogger{}, disp: testDisplay{}}
	if _, err := New(h, DefaultConfig(), nil); !errors.Is(err, ErrNoDisplay) {
		t.Fatalf("err = %v", err)
	}
}

func TestVectorOutputSkipsFramebuffer(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Orbit = 90
	a, err := New(newTestHAL(64, 64), cfg, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	a.SetVectorOutput(true)
	if err := a.Step(); err != nil {
		t.Fatalf("step: %v", err)
	}
	if lit(a.Framebuffer()) != 0 {
		t.Fatalf("framebuffer drawn in vector mode")
	}
	if a.Frames() != 1 || !a.Scene().Camera.Pos.ApproxEqual(geom.V3(-8, 0, 0), 1e-9) {
		t.Fatalf("frames=%d pos=%v", a.Frames(), a.Scene().Camera.Pos)
	}
	var s countingSurface
	if err := a.RenderTo(&s); err != nil || s.strokes == 0 {
		t.Fatalf("render to vector surface: strokes=%d err=%v", s.strokes, err)
	}

	a.SetVectorOutput(false)
	if err := a.Step(); err != nil || lit(a.Framebuffer()) == 0 {
		t.Fatalf("raster step after vector mode: %v", err)
	}
}

package hal

import (
	"bytes"
	"context"
	"errors"
	"go/parser"
	"go/token"
	"image/color"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/anthonynsimon/bild/imgio"
)

func TestRGB565(t *testing.T) {
	for _, tc := range []struct {
		r, g, b uint8
		want    uint16
	}{
		{0xFF, 0xFF, 0xFF, 0xFFFF},
		{0xFF, 0, 0, 0xF800},
		{0, 0xFF, 0, 0x07E0},
		{0, 0, 0xFF, 0x001F},
		{0, 0, 0, 0},
	} {
		got := RGB565(tc.r, tc.g, tc.b)
		if got != tc.want {
			t.Fatalf("RGB565(%d,%d,%d) = %#04x", tc.r, tc.g, tc.b, got)
		}
		r, g, b := rgb888From565(got)
		if r != tc.r || g != tc.g || b != tc.b {
			t.Fatalf("rgb888From565(%#04x) = %d,%d,%d", got, r, g, b)
		}
	}
}

func TestImage(t *testing.T) {
	fb := New(4, 3).Display().Framebuffer()
	fb.ClearRGB(0xFF, 0, 0)
	img := Image(fb)
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds = %v", b)
	}
	if got := img.RGBAAt(3, 2); got != (color.RGBA{R: 0xFF, A: 0xFF}) {
		t.Fatalf("pixel = %v", got)
	}
}

func TestSaveSnapshot(t *testing.T) {
	fb := New(5, 4).Display().Framebuffer()
	fb.ClearRGB(0, 0xFF, 0)
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := SaveSnapshot(fb, path, 3); err != nil {
		t.Fatalf("save: %v", err)
	}
	img, err := imgio.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 15 || b.Dy() != 12 {
		t.Fatalf("bounds = %v", b)
	}
	if got := color.RGBAModel.Convert(img.At(14, 11)).(color.RGBA); got != (color.RGBA{G: 0xFF, A: 0xFF}) {
		t.Fatalf("pixel = %v", got)
	}

	if err := SaveSnapshot(nil, path, 1); !errors.Is(err, ErrNoFramebuffer) {
		t.Fatalf("nil framebuffer: err=%v", err)
	}
}

func TestHostLogger(t *testing.T) {
	var buf bytes.Buffer
	h := newHost(0, 0, &buf)
	h.Logger().WriteLineString("a")
	h.Logger().WriteLineBytes([]byte("b"))
	if buf.String() != "a\nb\n" {
		t.Fatalf("log = %q", buf.String())
	}
	if fb := h.Display().Framebuffer(); fb.Width() != DefaultWidth || fb.Height() != DefaultHeight {
		t.Fatalf("default size %dx%d", fb.Width(), fb.Height())
	}
}

func TestRunHeadless(t *testing.T) {
	steps := 0
	var got HAL
	err := RunHeadless(context.Background(), func(h HAL) func() error {
		got = h
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Width: 8, Height: 6, Hz: 1000, Ticks: 3})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if steps != 3 {
		t.Fatalf("steps = %d", steps)
	}
	if fb := got.Display().Framebuffer(); fb.Width() != 8 || fb.Height() != 6 {
		t.Fatalf("size %dx%d", fb.Width(), fb.Height())
	}
}

func TestRunHeadlessStops(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, boom) {
		t.Fatalf("step error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = RunHeadless(ctx, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 1000})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("cancel: %v", err)
	}
}

type plainFramebuffer struct {
	w, h int
	pix  []byte
}

func (f *plainFramebuffer) Width() int             { return f.w }
func (f *plainFramebuffer) Height() int            { return f.h }
func (f *plainFramebuffer) Format() PixelFormat    { return PixelFormatRGB565 }
func (f *plainFramebuffer) StrideBytes() int       { return f.w * 2 }
func (f *plainFramebuffer) Buffer() []byte         { return f.pix }
func (f *plainFramebuffer) ClearRGB(r, g, b uint8) { fillRGB565(f.pix, RGB565(r, g, b)) }
func (f *plainFramebuffer) Present() error         { return nil }

func TestImageFromAnyFramebuffer(t *testing.T) {
	fb := &plainFramebuffer{w: 3, h: 2, pix: make([]byte, 12)}
	fb.ClearRGB(0, 0, 0xFF)
	if got := Image(fb).RGBAAt(2, 1); got != (color.RGBA{B: 0xFF, A: 0xFF}) {
		t.Fatalf("pixel = %v", got)
	}
}

func TestToRGBAReusesImage(t *testing.T) {
	fb := newHostFramebuffer(4, 4)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)
	img := fb.toRGBA(nil)
	fb.ClearRGB(0, 0, 0)
	if again := fb.toRGBA(img); again != img {
		t.Fatalf("image reallocated")
	}
	if got := img.RGBAAt(0, 0); got != (color.RGBA{A: 0xFF}) {
		t.Fatalf("pixel = %v", got)
	}
	if other := fb.toRGBA(Image(New(2, 2).Display().Framebuffer())); other.Bounds().Dx() != 4 {
		t.Fatalf("wrong-size image kept: %v", other.Bounds())
	}
}

func TestHALDoesNotImportRenderer(t *testing.T) {
	pkgs, err := parser.ParseDir(token.NewFileSet(), ".", nil, parser.ImportsOnly)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	for _, pkg := range pkgs {
		for name, f := range pkg.Files {
			for _, imp := range f.Imports {
				path, _ := strconv.Unquote(imp.Path.Value)
				if strings.HasPrefix(path, "wirecam/gfx") || path == "wirecam/app" {
					t.Fatalf("%s imports %s", name, path)
				}
			}
		}
	}
}

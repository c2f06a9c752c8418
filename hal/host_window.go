//go:build !tinygo && cgo

package hal

import (
	"image"
	"image/color"

	"wirecam/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	// Scale multiplies the window size; the logical screen stays Width×Height.
	Scale int
	Title string

	// Vector, when set, draws each frame straight onto the cleared screen
	// instead of blitting the framebuffer.
	Vector func(screen *ebiten.Image) error
}

// RunWindow starts a desktop window that displays the framebuffer.
// It blocks until the window closes or a step fails.
func RunWindow(newApp func(HAL) func() error, cfg WindowConfig) error {
	h := newHost(cfg.Width, cfg.Height, stdout)
	step := newApp(h)

	if cfg.Scale <= 0 {
		cfg.Scale = 2
	}
	if cfg.Title == "" {
		cfg.Title = "wirecam"
	}

	g := &hostGame{h: h, step: step, cfg: cfg}
	ebiten.SetWindowTitle(cfg.Title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(h.fb.w*cfg.Scale, h.fb.h*cfg.Scale)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	cfg   WindowConfig
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
	err   error
}

func (g *hostGame) Update() error {
	if g.err != nil {
		return g.err
	}
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	if g.cfg.Vector != nil {
		screen.Fill(color.Black)
		if err := g.cfg.Vector(screen); err != nil {
			g.err = err
		}
		return
	}

	fb := g.h.fb
	g.img = fb.toRGBA(g.img)
	if g.fbImg == nil || g.fbImg.Bounds() != g.img.Bounds() {
		if g.fbImg != nil {
			g.fbImg.Deallocate()
		}
		g.fbImg = ebiten.NewImage(fb.w, fb.h)
	}
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.h.fb.w, g.h.fb.h
}

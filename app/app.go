// Package app wires the host HAL, the diagnostics context and a scene built
// from a Config into a per-frame step.
package app

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"wirecam/gfx/camera"
	"wirecam/gfx/diag"
	"wirecam/gfx/geom"
	"wirecam/gfx/raster"
	"wirecam/gfx/scene"
	"wirecam/hal"
)

var ErrNoDisplay = errors.New("hal has no framebuffer")

var hudColor = color.RGBA{R: 0xFF, G: 0xD0, B: 0x40, A: 0xFF}

// App renders one frame per Step into the HAL framebuffer.
type App struct {
	cfg    Config
	h      hal.HAL
	d      *diag.Context
	fb     hal.Framebuffer
	canvas *raster.Canvas
	scene  *scene.Scene
	cam    *camera.Camera

	frames     int
	modeWarned bool
	vectorOut  bool
}

// New builds the camera, the objects and the scene described by cfg.
// d may be nil.
func New(h hal.HAL, cfg Config, d *diag.Context) (*App, error) {
	disp := h.Display()
	if disp == nil || disp.Framebuffer() == nil {
		return nil, ErrNoDisplay
	}
	fb := disp.Framebuffer()

	cam, err := cfg.NewCamera()
	if err != nil {
		return nil, fmt.Errorf("camera: %w", err)
	}
	objs, err := cfg.BuildObjects()
	if err != nil {
		return nil, err
	}

	canvas := raster.New(fb)
	s := scene.New(cam, canvas, d)
	if cfg.Zoom > 0 {
		s.Zoom = cfg.Zoom
	}
	for _, o := range objs {
		s.Add(o)
	}

	d.Info("scene ready",
		"size", fmt.Sprintf("%dx%d", fb.Width(), fb.Height()),
		"camera", cam.Pos.String(),
		"direction", cam.RotDir.String(),
		"mode", cam.Mode.String(),
		"objects", len(objs))

	return &App{
		cfg:    cfg,
		h:      h,
		d:      d,
		fb:     fb,
		canvas: canvas,
		scene:  s,
		cam:    cam,
	}, nil
}

// Scene exposes the scene for callers that draw elsewhere.
func (a *App) Scene() *scene.Scene { return a.scene }

// Framebuffer is the raster target of Step.
func (a *App) Framebuffer() hal.Framebuffer { return a.fb }

// SetVectorOutput marks the scene as drawn elsewhere through RenderTo. Step
// then skips the framebuffer pass and only advances the frame count and orbit.
func (a *App) SetVectorOutput(on bool) { a.vectorOut = on }

// Frames is the number of completed steps.
func (a *App) Frames() int { return a.frames }

// Step clears the framebuffer, renders the scene and the HUD, presents the
// frame and advances the orbit.
//
// An unsupported projection mode is reported once and leaves the frame blank;
// it does not stop the app. With vector output on only the frame counter and
// the orbit advance.
func (a *App) Step() error {
	if a.vectorOut {
		a.frames++
		return a.orbit()
	}
	a.canvas.Clear()
	if err := a.render(); err != nil {
		return err
	}
	if a.cfg.HUD {
		a.canvas.Label(2, 10, fmt.Sprintf("frame %d", a.frames), hudColor)
		a.canvas.Label(2, a.fb.Height()-4, a.cam.Mode.String()+" "+a.cam.Pos.String(), hudColor)
	}
	if err := a.fb.Present(); err != nil {
		return fmt.Errorf("present: %w", err)
	}
	a.frames++
	return a.orbit()
}

// RenderTo draws the scene onto s instead of the framebuffer.
func (a *App) RenderTo(s scene.Surface) error {
	a.scene.SetSurface(s)
	defer a.scene.SetSurface(a.canvas)
	return a.render()
}

func (a *App) render() error {
	err := a.scene.Render(a.cfg.Axes)
	if errors.Is(err, scene.ErrUnsupportedProjectionMode) {
		if !a.modeWarned {
			a.modeWarned = true
			a.h.Logger().WriteLineString("wirecam: " + err.Error())
		}
		return nil
	}
	return err
}

func (a *App) orbit() error {
	if a.cfg.Orbit == 0 {
		return nil
	}
	theta := a.cfg.Orbit * math.Pi / 180
	s, c := math.Sin(theta), math.Cos(theta)
	p := a.cam.Pos
	next := geom.V3(c*p.X+s*p.Z, p.Y, -s*p.X+c*p.Z)
	if err := a.cam.MoveTo(next); err != nil {
		return err
	}
	if next.IsNull() {
		return nil
	}
	return a.cam.LookAt(geom.Zero)
}

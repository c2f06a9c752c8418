//go:build !tinygo && cgo

package main

import (
	"wirecam/app"
	"wirecam/gfx/vecsurface"
	"wirecam/hal"

	"github.com/hajimehoshi/ebiten/v2"
)

// vectorWindow makes the window draw the scene with anti-aliased vector
// strokes on every frame.
func vectorWindow(wcfg *hal.WindowConfig, current func() *app.App) bool {
	wcfg.Vector = func(screen *ebiten.Image) error {
		a := current()
		if a == nil {
			return nil
		}
		return a.RenderTo(vecsurface.New(screen, true))
	}
	return true
}

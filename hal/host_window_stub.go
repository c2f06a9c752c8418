//go:build !tinygo && !cgo

package hal

import "errors"

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Width  int
	Height int
	Scale  int
	Title  string
}

var ErrNoWindow = errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")

func RunWindow(_ func(h HAL) func() error, _ WindowConfig) error {
	return ErrNoWindow
}

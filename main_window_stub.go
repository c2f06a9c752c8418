//go:build !tinygo && !cgo

package main

import (
	"wirecam/app"
	"wirecam/hal"
)

func vectorWindow(_ *hal.WindowConfig, _ func() *app.App) bool { return false }

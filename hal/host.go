//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
)

var stdout io.Writer = os.Stdout

type hostHAL struct {
	logger *hostLogger
	fb     *hostFramebuffer
}

// New returns a host HAL with a width×height framebuffer and a logger on
// stdout. Non-positive sizes fall back to the defaults.
func New(width, height int) HAL {
	return newHost(width, height, stdout)
}

func newHost(width, height int, w io.Writer) *hostHAL {
	if width <= 0 {
		width = DefaultWidth
	}
	if height <= 0 {
		height = DefaultHeight
	}
	return &hostHAL{
		logger: &hostLogger{w: w},
		fb:     newHostFramebuffer(width, height),
	}
}

func (h *hostHAL) Logger() Logger   { return h.logger }
func (h *hostHAL) Display() Display { return hostDisplay{fb: h.fb} }

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

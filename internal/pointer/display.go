package pointer

import (
	"errors"
	"fmt"
	"image"
	"os"
	"runtime"

	"github.com/kbinani/screenshot"
)

var (
	ErrNoDisplay      = errors.New("no graphical display available")
	ErrUnknownDisplay = errors.New("display index out of range")
)

var (
	getenv          = os.Getenv
	goos            = runtime.GOOS
	activeDisplays  = screenshot.NumActiveDisplays
	displayBoundsOf = screenshot.GetDisplayBounds
)

// CheckDisplay fails when there is no display session to move a pointer in.
// Only Linux exposes this through the environment.
func CheckDisplay() error {
	if goos != "linux" {
		return nil
	}
	if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return fmt.Errorf("%w: neither DISPLAY nor WAYLAND_DISPLAY is set", ErrNoDisplay)
	}
	return nil
}

// DisplayBounds returns the rectangle of display n in the global coordinate space.
func DisplayBounds(n int) (image.Rectangle, error) {
	count := activeDisplays()
	if n < 0 || n >= count {
		return image.Rectangle{}, fmt.Errorf("%w: %d (have %d)", ErrUnknownDisplay, n, count)
	}
	return displayBoundsOf(n), nil
}

package pointer

import (
	"context"
	"time"
)

// Bounds is the size of the pointer's coordinate space.
type Bounds struct {
	Width  int
	Height int
}

// Position is a coordinate on screen.
type Position struct {
	X int
	Y int
}

// Controller reports the screen size and relocates the cursor.
// A move with d <= 0 jumps straight to the target.
type Controller interface {
	ScreenSize() (Bounds, error)
	Move(ctx context.Context, x, y int, d time.Duration) error
}

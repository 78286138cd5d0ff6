package pointer

import (
	"context"
	"errors"
	"time"

	"github.com/go-vgo/robotgo"
)

const DefaultStepInterval = 10 * time.Millisecond

var ErrNoScreen = errors.New("screen size unavailable")

// robotgo entry points, swapped out in tests
var (
	screenSize = robotgo.GetScreenSize
	location   = robotgo.Location
	moveTo     = func(x, y int) { robotgo.Move(x, y) }
)

// Robot drives the real cursor through robotgo.
type Robot struct {
	// StepInterval is the pause between intermediate positions of an interpolated move.
	StepInterval time.Duration
}

func NewRobot() *Robot {
	return &Robot{StepInterval: DefaultStepInterval}
}

func (r *Robot) ScreenSize() (Bounds, error) {
	w, h := screenSize()
	if w <= 0 || h <= 0 {
		return Bounds{}, ErrNoScreen
	}
	return Bounds{Width: w, Height: h}, nil
}

// Move relocates the cursor to (x, y). When d is positive the cursor walks a
// straight line from its current location and the call takes d, even when
// the cursor is already on the target.
func (r *Robot) Move(ctx context.Context, x, y int, d time.Duration) error {
	if d <= 0 {
		moveTo(x, y)
		return nil
	}

	interval := r.StepInterval
	if interval <= 0 {
		interval = DefaultStepInterval
	}

	steps := max(int(d/interval), 1)
	interval = d / time.Duration(steps)

	fromX, fromY := location()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for _, p := range Path(Position{X: fromX, Y: fromY}, Position{X: x, Y: y}, steps) {
		moveTo(p.X, p.Y)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
	return nil
}

// Path returns the intermediate positions of a linear move from 'from' to
// 'to' in the given number of steps. The last element is always 'to'.
func Path(from, to Position, steps int) []Position {
	if steps < 1 {
		steps = 1
	}

	path := make([]Position, 0, steps)
	dx := float64(to.X - from.X)
	dy := float64(to.Y - from.Y)
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		path = append(path, Position{
			X: from.X + int(dx*t),
			Y: from.Y + int(dy*t),
		})
	}
	path[len(path)-1] = to
	return path
}

package movement

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/vedantwpatil/input-tools/internal/pointer"
)

var ErrInvalidRange = errors.New("invalid range")

type RangeKind int

const (
	RangeFull RangeKind = iota
	RangePoint
	RangeDisplay
)

// RangeSpec selects where targets are drawn from.
type RangeSpec struct {
	Kind    RangeKind
	Point   pointer.Position
	Display int
}

func FullScreen() RangeSpec {
	return RangeSpec{Kind: RangeFull}
}

func FixedPoint(x, y int) RangeSpec {
	return RangeSpec{Kind: RangePoint, Point: pointer.Position{X: x, Y: y}}
}

func OnDisplay(n int) RangeSpec {
	return RangeSpec{Kind: RangeDisplay, Display: n}
}

// ParseRange accepts "full", "x,y" or "display:N".
func ParseRange(s string) (RangeSpec, error) {
	trimmed := strings.TrimSpace(s)
	if strings.EqualFold(trimmed, "full") {
		return FullScreen(), nil
	}

	if rest, ok := strings.CutPrefix(strings.ToLower(trimmed), "display:"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 0 {
			return RangeSpec{}, fmt.Errorf("%w %q: display index must be a non-negative integer", ErrInvalidRange, s)
		}
		return OnDisplay(n), nil
	}

	xs, ys, ok := strings.Cut(trimmed, ",")
	if !ok {
		return RangeSpec{}, fmt.Errorf("%w %q: expected full, x,y or display:N", ErrInvalidRange, s)
	}
	x, errX := strconv.Atoi(strings.TrimSpace(xs))
	y, errY := strconv.Atoi(strings.TrimSpace(ys))
	if errX != nil || errY != nil {
		return RangeSpec{}, fmt.Errorf("%w %q: coordinates must be integers", ErrInvalidRange, s)
	}
	return FixedPoint(x, y), nil
}

func (r RangeSpec) String() string {
	switch r.Kind {
	case RangePoint:
		return fmt.Sprintf("%d,%d", r.Point.X, r.Point.Y)
	case RangeDisplay:
		return fmt.Sprintf("display:%d", r.Display)
	default:
		return "full"
	}
}

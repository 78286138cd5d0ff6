package movement

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/vedantwpatil/input-tools/internal/pointer"
)

var ErrInterrupted = errors.New("mouse movement interrupted")

// Session is the state of one run. It lives only for the duration of Run.
type Session struct {
	Start  time.Time
	End    time.Time
	Speed  time.Duration
	Motion MotionType
	Range  RangeSpec
	Screen pointer.Bounds
}

// Options are the caller-facing knobs of a run.
type Options struct {
	Duration time.Duration
	Speed    time.Duration
	Range    RangeSpec
	Motion   MotionType
}

type Driver struct {
	pointer  pointer.Controller
	rng      *rand.Rand
	logger   *slog.Logger
	reporter Reporter

	now           func() time.Time
	sleep         func(ctx context.Context, d time.Duration) error
	displayBounds func(n int) (image.Rectangle, error)
}

func NewDriver(p pointer.Controller, rng *rand.Rand, logger *slog.Logger) *Driver {
	return &Driver{
		pointer:       p,
		rng:           rng,
		logger:        logger,
		now:           time.Now,
		sleep:         sleepContext,
		displayBounds: pointer.DisplayBounds,
	}
}

// NewRand seeds a generator for one session. A zero seed picks one from the clock.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)>>1|1))
}

func (d *Driver) SetReporter(r Reporter) {
	d.reporter = r
}

// Run moves the pointer until opts.Duration has elapsed. It returns
// ErrInterrupted when ctx is cancelled before then.
func (d *Driver) Run(ctx context.Context, opts Options) error {
	if ctx.Err() != nil {
		return ErrInterrupted
	}

	screen, err := d.pointer.ScreenSize()
	if err != nil {
		return fmt.Errorf("query screen size: %w", err)
	}

	start := d.now()
	s := Session{
		Start:  start,
		End:    start.Add(opts.Duration),
		Speed:  opts.Speed,
		Motion: opts.Motion,
		Range:  opts.Range,
		Screen: screen,
	}

	area, err := d.targetArea(s)
	if err != nil {
		return err
	}

	d.logger.Info("starting mouse movement",
		slog.Duration("duration", opts.Duration),
		slog.Duration("speed", s.Speed),
		slog.String("range", s.Range.String()),
		slog.String("motion", string(s.Motion)),
		slog.Int("width", screen.Width),
		slog.Int("height", screen.Height),
	)

	moves := 0
	for d.now().Before(s.End) {
		target := d.nextTarget(s, area)

		var glide time.Duration
		if s.Motion.Interpolates() {
			glide = s.Speed
		}
		if err := d.pointer.Move(ctx, target.X, target.Y, glide); err != nil {
			if ctx.Err() != nil {
				return ErrInterrupted
			}
			return fmt.Errorf("move pointer to (%d, %d): %w", target.X, target.Y, err)
		}
		moves++
		d.logger.Debug("moved pointer", slog.Int("x", target.X), slog.Int("y", target.Y), slog.Duration("glide", glide))
		d.report(s)

		// The pause always happens but never runs past the end of the session.
		pause := s.Speed
		if remaining := s.End.Sub(d.now()); remaining < pause {
			pause = max(remaining, 0)
		}
		if err := d.sleep(ctx, pause); err != nil {
			return ErrInterrupted
		}
	}

	if d.reporter != nil {
		d.reporter.ReportComplete()
	}
	d.logger.Info("mouse movement finished", slog.Int("moves", moves))
	return nil
}

// targetArea resolves the rectangle random targets are drawn from. Max is inclusive.
func (d *Driver) targetArea(s Session) (image.Rectangle, error) {
	switch s.Range.Kind {
	case RangeDisplay:
		r, err := d.displayBounds(s.Range.Display)
		if err != nil {
			return image.Rectangle{}, fmt.Errorf("resolve display %d: %w", s.Range.Display, err)
		}
		return image.Rect(r.Min.X, r.Min.Y, r.Max.X-1, r.Max.Y-1), nil
	default:
		return image.Rect(0, 0, s.Screen.Width, s.Screen.Height), nil
	}
}

func (d *Driver) nextTarget(s Session, area image.Rectangle) pointer.Position {
	if s.Range.Kind == RangePoint {
		return s.Range.Point
	}
	return pointer.Position{
		X: area.Min.X + d.rng.IntN(area.Dx()+1),
		Y: area.Min.Y + d.rng.IntN(area.Dy()+1),
	}
}

func (d *Driver) report(s Session) {
	if d.reporter == nil {
		return
	}
	total := s.End.Sub(s.Start)
	if total <= 0 {
		return
	}
	d.reporter.Report(float64(d.now().Sub(s.Start)) / float64(total))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

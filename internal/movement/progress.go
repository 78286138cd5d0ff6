package movement

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// Reporter is told how far through the session the driver is.
type Reporter interface {
	Report(progress float64)
	ReportComplete()
}

// ProgressBar implements the Reporter interface
type ProgressBar struct {
	out         io.Writer
	total       int
	current     int
	startTime   time.Time
	lastUpdate  time.Time
	description string
	now         func() time.Time
}

func NewProgressBar(out io.Writer, description string) *ProgressBar {
	return &ProgressBar{
		out:         out,
		total:       100,
		startTime:   time.Now(),
		description: description,
		now:         time.Now,
	}
}

func (p *ProgressBar) Report(progress float64) {
	progress = min(max(progress, 0), 1)
	p.current = int(progress * float64(p.total))

	// Only redraw every so often
	now := p.now()
	if progress < 1 && now.Sub(p.lastUpdate) < 100*time.Millisecond {
		return
	}
	p.lastUpdate = now

	percentage := float64(p.current) / float64(p.total) * 100
	elapsed := now.Sub(p.startTime)

	barWidth := 30
	completed := int(float64(barWidth) * float64(p.current) / float64(p.total))
	bar := strings.Repeat("=", completed) + strings.Repeat("-", barWidth-completed)

	fmt.Fprintf(p.out, "\r%s [%s] %.1f%% Elapsed: %v",
		p.description,
		bar,
		percentage,
		elapsed.Round(time.Second),
	)
}

func (p *ProgressBar) ReportComplete() {
	p.Report(1.0)
	fmt.Fprintln(p.out)
}

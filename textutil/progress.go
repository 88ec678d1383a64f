package textutil

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

const progressBarLen = 20

// ProgressBar tracks progress through a fixed number of iterations and
// draws a bar to stderr. Drawing is skipped entirely when stderr is not
// a terminal, so loops instrumented with a bar stay quiet in logs and
// pipes.
//
//	bar := textutil.NewProgressBar(len(items))
//	for _, item := range items {
//	    process(item)
//	    bar.Next()
//	}
//	bar.Finish()
type ProgressBar struct {
	total    int
	index    int
	out      io.Writer
	enabled  bool
	start    time.Time
	last     time.Time
	iterTime time.Duration
}

// NewProgressBar creates a bar for total iterations, drawing to stderr.
func NewProgressBar(total int) *ProgressBar {
	now := time.Now()
	return &ProgressBar{
		total:   total,
		out:     os.Stderr,
		enabled: isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
		start:   now,
		last:    now,
	}
}

// SetOutput redirects drawing to w and forces it on, regardless of
// whether w is a terminal.
func (p *ProgressBar) SetOutput(w io.Writer) {
	p.out = w
	p.enabled = true
}

// Next records one completed iteration and redraws the bar.
func (p *ProgressBar) Next() {
	if p.index < p.total {
		p.index++
	}
	now := time.Now()
	p.iterTime = now.Sub(p.last)
	p.last = now
	p.draw()
}

// Index returns the number of completed iterations.
func (p *ProgressBar) Index() int {
	return p.index
}

// Finish terminates the bar line. Call it after the loop so subsequent
// output starts on a fresh line.
func (p *ProgressBar) Finish() {
	if p.enabled {
		fmt.Fprintln(p.out)
	}
}

func (p *ProgressBar) draw() {
	if !p.enabled || p.total <= 0 {
		return
	}

	percent := float64(p.index) / float64(p.total)
	filled := int(progressBarLen * percent)
	bar := strings.Repeat("█", filled) + strings.Repeat(" ", progressBarLen-filled)

	fmt.Fprintf(p.out, "\r|%s| %.2f%% - Iteration time: %.4f seconds",
		bar, percent*100, p.iterTime.Seconds())
}

package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

const barWidth = 20

// ProgressBar shows how many of a fixed number of steps have finished.
// Steps may complete from several goroutines.
type ProgressBar struct {
	mu          sync.Mutex
	total       int
	current     int
	last        string
	startTime   time.Time
	output      io.Writer
	enabled     bool
	description string
}

// NewProgressBar creates a bar writing to stderr so stdout stays clean.
func NewProgressBar(total int, description string) *ProgressBar {
	return &ProgressBar{
		total:       total,
		startTime:   time.Now(),
		output:      os.Stderr,
		enabled:     true,
		description: description,
	}
}

// SetOutput redirects the bar.
func (p *ProgressBar) SetOutput(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.output = w
}

// Disable disables the progress bar
func (p *ProgressBar) Disable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = false
}

// Enable enables the progress bar
func (p *ProgressBar) Enable() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = true
}

// Step records one finished step named label.
func (p *ProgressBar) Step(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.current < p.total {
		p.current++
	}
	p.last = label
	p.render()
}

// Current returns the number of finished steps.
func (p *ProgressBar) Current() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Finish ends the line. It does not fill the bar, so an aborted load stays
// visibly incomplete.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	fmt.Fprint(p.output, "\n")
}

// render must be called with p.mu held.
func (p *ProgressBar) render() {
	if !p.enabled {
		return
	}

	filled := 0
	if p.total > 0 {
		filled = barWidth * p.current / p.total
	}
	bar := strings.Repeat("=", filled)
	if filled < barWidth {
		bar += ">" + strings.Repeat("-", barWidth-filled-1)
	}

	out := fmt.Sprintf("\r[%s] %d/%d", bar, p.current, p.total)
	if p.description != "" {
		out = "\r" + p.description + " " + out[1:]
	}
	if p.last != "" {
		out += " | " + p.last
	}
	out += " | " + formatDuration(time.Since(p.startTime))

	fmt.Fprint(p.output, out)
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%dm%ds", minutes, seconds)
}

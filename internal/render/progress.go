package render

import (
	"sync"

	"github.com/White-Link/pathtracer/internal/log"
)

var progressLog = log.New("render")

// Progress tracks completed-pixel count under a mutex, emitting a textual
// indicator at coarse intervals so concurrent writers don't flood the log.
type Progress struct {
	mu        sync.Mutex
	total     int
	completed int
	lastTenth int
}

// NewProgress builds a Progress tracker over total pixels.
func NewProgress(total int) *Progress {
	return &Progress{total: total, lastTenth: -1}
}

// Increment marks one more pixel complete, logging a percentage update the
// first time a new ten-percent boundary is crossed.
func (p *Progress) Increment() {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.completed++
	if p.total == 0 {
		return
	}
	tenth := (p.completed * 10) / p.total
	if tenth > p.lastTenth {
		p.lastTenth = tenth
		progressLog.Infof("rendering: %d%% (%d/%d pixels)", tenth*10, p.completed, p.total)
	}
}

// Done emits a final 100% line unconditionally. For a nonzero total,
// Increment has already logged 100% when the last pixel completed, so this
// repeats it; for a zero total it is the only line emitted.
func (p *Progress) Done() {
	p.mu.Lock()
	defer p.mu.Unlock()
	progressLog.Infof("rendering: 100%% (%d/%d pixels)", p.completed, p.total)
}

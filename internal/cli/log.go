package cli

import (
	"time"

	"github.com/charmbracelet/log"
)

// progress tracks the start time of an operation and logs completion with
// elapsed duration. It logs at debug level so a normal pipe run stays
// silent on stderr.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as
// start. The returned progress should call done when the operation completes.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs the formatted message along with the elapsed time since the
// progress was created, rounded to the nearest millisecond.
// Example output: "transformed 42 bytes (3ms)"
func (p *progress) done(format string, args ...any) {
	args = append(args, time.Since(p.start).Round(time.Millisecond))
	p.logger.Debugf(format+" (%s)", args...)
}

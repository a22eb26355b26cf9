// Package linear provides a synchronous, line-oriented progress renderer.
package linear

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"

	"github.com/ktmlm/RUC/internal/ui/output"
	"github.com/ktmlm/RUC/internal/ui/style"
)

// Renderer implements ports.Renderer. It prints chronological progress
// lines to stderr, one per event, keeping stdout free for the output of
// the commands themselves.
type Renderer struct {
	stderr io.Writer
	output *termenv.Output

	mu      sync.Mutex
	started map[string]time.Time
}

// NewRenderer creates a new Renderer writing to stderr.
func NewRenderer(stderr io.Writer) *Renderer {
	if stderr == nil {
		stderr = os.Stderr
	}

	return &Renderer{
		stderr:  stderr,
		output:  output.NewWithProfile(stderr, output.ColorProfileANSI),
		started: make(map[string]time.Time),
	}
}

// OnPlanEmit prints the settled execution plan.
func (r *Renderer) OnPlanEmit(planned []string, _ map[string][]string, requested string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, _ = fmt.Fprintf(r.stderr, "Planning %d target(s) for %s: %s\n",
		len(planned), requested, strings.Join(planned, " -> "))
}

// OnTargetStart prints a target start message.
func (r *Renderer) OnTargetStart(name string, startTime time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.started[name] = startTime

	prefix := r.output.String(fmt.Sprintf("[%s]", name)).Faint().String()
	_, _ = fmt.Fprintf(r.stderr, "%s Starting...\n", prefix)
}

// OnTargetComplete prints the completion status with the elapsed time.
func (r *Renderer) OnTargetComplete(name string, endTime time.Time, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	duration := endTime.Sub(r.started[name])
	delete(r.started, name)

	prefix := fmt.Sprintf("[%s]", name)

	if err != nil {
		symbol := r.output.String(style.Cross).Foreground(termenv.ANSIRed).String()
		_, _ = fmt.Fprintf(r.stderr, "%s %s Failed after %v: %v\n",
			prefix, symbol, duration, err)
		return
	}

	symbol := r.output.String(style.Check).Foreground(termenv.ANSIGreen).String()
	_, _ = fmt.Fprintf(r.stderr, "%s %s Completed in %v\n",
		prefix, symbol, duration)
}

package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/matzehuels/qscope/pkg/observability"
)

// Spinner provides a simple progress indicator with context cancellation
// support. The message can be swapped while the spinner runs, which the
// pipeline hooks use to narrate stages.
type Spinner struct {
	message string
	maxLen  int
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}
	stopped chan struct{}
	frames  []string
	mu      sync.Mutex
}

// newSpinner creates a new spinner with the given message.
func newSpinner(message string) *Spinner {
	return newSpinnerWithContext(context.Background(), message)
}

// newSpinnerWithContext creates a spinner that will stop when the context is cancelled.
func newSpinnerWithContext(ctx context.Context, message string) *Spinner {
	spinnerCtx, cancel := context.WithCancel(ctx)
	return &Spinner{
		message: message,
		maxLen:  len(message),
		ctx:     spinnerCtx,
		cancel:  cancel,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
	}
}

// Start begins the spinner animation.
func (s *Spinner) Start() {
	go func() {
		defer close(s.stopped)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-s.ctx.Done():
				s.clearLine()
				return
			case <-s.done:
				return
			case <-ticker.C:
				frame := s.frames[i%len(s.frames)]
				s.mu.Lock()
				fmt.Fprintf(os.Stderr, "\r%s %s", styleIconSpinner.Render(frame), StyleDim.Render(s.message))
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// setMessage replaces the spinner message on the next frame.
func (s *Spinner) setMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLineLocked()
	s.message = message
	if len(message) > s.maxLen {
		s.maxLen = len(message)
	}
}

// Stop stops the spinner and clears the line.
func (s *Spinner) Stop() {
	s.cancel()
	select {
	case <-s.done:
	default:
		close(s.done)
	}
	<-s.stopped
	s.clearLine()
}

func (s *Spinner) clearLine() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLineLocked()
}

func (s *Spinner) clearLineLocked() {
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", s.maxLen+4))
}

// StopWithSuccess stops the spinner and shows a success message.
func (s *Spinner) StopWithSuccess(message string) {
	s.Stop()
	printSuccess("%s", message)
}

// StopWithError stops the spinner and shows an error message.
func (s *Spinner) StopWithError(message string) {
	s.Stop()
	printError("%s", message)
}

// Cancelled returns true if the spinner was stopped due to context cancellation.
func (s *Spinner) Cancelled() bool {
	return s.ctx.Err() != nil
}

// progressHooks narrates pipeline stages through a spinner. Install with
// observability.SetPipelineHooks before running the pipeline and call stop
// (or fail) once it returns.
type progressHooks struct {
	observability.NoopPipelineHooks
	spinner *Spinner
}

// newProgressHooks starts a spinner bound to ctx and returns hooks that
// update its message as pipeline stages begin.
func newProgressHooks(ctx context.Context) *progressHooks {
	s := newSpinnerWithContext(ctx, "Working...")
	s.Start()
	return &progressHooks{spinner: s}
}

func (p *progressHooks) OnLoadStart(ctx context.Context, source string) {
	p.spinner.setMessage(fmt.Sprintf("Loading %s...", source))
}

func (p *progressHooks) OnSimulateStart(ctx context.Context, name string, qubits int) {
	p.spinner.setMessage(fmt.Sprintf("Simulating %d qubit state...", qubits))
}

func (p *progressHooks) OnAnalyzeStart(ctx context.Context, name string) {
	p.spinner.setMessage("Analyzing circuit...")
}

func (p *progressHooks) OnRenderStart(ctx context.Context, formats []string) {
	if len(formats) > 0 {
		p.spinner.setMessage(fmt.Sprintf("Rendering %s...", strings.Join(formats, ", ")))
		return
	}
	p.spinner.setMessage("Rendering report...")
}

// stop halts the spinner quietly.
func (p *progressHooks) stop() {
	p.spinner.Stop()
}

// fail halts the spinner and prints message as an error.
func (p *progressHooks) fail(message string) {
	p.spinner.StopWithError(message)
}

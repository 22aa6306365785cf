package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/briandowns/spinner"
)

const (
	// TruncationLimit is the length from which a product is truncated in
	// standard output to avoid cluttering the terminal.
	TruncationLimit = 100
	// DisplayEdges specifies the number of characters to display at the
	// beginning and end of a truncated product.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the spinner.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 40
)

// Spinner is an interface that abstracts the behavior of a terminal spinner.
// This allows for the decoupling of the self-test progress display from a
// specific spinner implementation, facilitating easier testing.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner is a wrapper for the `spinner.Spinner` that implements the
// `Spinner` interface.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// SelfTestProgress shows a spinner and a progress bar while self-test rounds
// run.
type SelfTestProgress struct {
	spinner Spinner
}

// NewSelfTestProgress creates a progress display writing to out. It does not
// start the animation.
func NewSelfTestProgress(out io.Writer) *SelfTestProgress {
	return &SelfTestProgress{spinner: newSpinner(spinner.WithWriter(out))}
}

// Start begins the animation.
func (p *SelfTestProgress) Start() { p.spinner.Start() }

// Stop halts the animation.
func (p *SelfTestProgress) Stop() { p.spinner.Stop() }

// Update refreshes the display after done of total rounds.
func (p *SelfTestProgress) Update(done, total int) {
	p.spinner.UpdateSuffix(FormatProgress(done, total))
}

// FormatProgress renders " [bar] pct% (done/total rounds)".
func FormatProgress(done, total int) string {
	var ratio float64
	if total > 0 {
		ratio = float64(done) / float64(total)
	}
	return fmt.Sprintf(" [%s] %3.0f%% (%d/%d rounds)", progressBar(ratio, ProgressBarWidth), ratio*100, done, total)
}

// progressBar generates a string representing a textual progress bar.
//
// Parameters:
//   - progress: The normalized progress value (0.0 to 1.0).
//   - length: The total character width of the progress bar.
//
// Returns:
//   - string: A string representation of the progress bar.
func progressBar(progress float64, length int) string {
	if progress > 1.0 {
		progress = 1.0
	}
	if progress < 0.0 {
		progress = 0.0
	}
	count := int(progress * float64(length))
	var builder strings.Builder
	builder.Grow(length)
	for i := 0; i < length; i++ {
		if i < count {
			builder.WriteRune('█')
		} else {
			builder.WriteRune('░')
		}
	}
	return builder.String()
}

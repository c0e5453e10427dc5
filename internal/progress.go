package internal

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// UIManager handles all user interface concerns (status spinner, verbose output)
type UIManager interface {
	NewSpinner(description string) Spinner

	// Verbose output
	Verbose(format string, args ...any)

	// Status messages
	Println(args ...any)
}

// Spinner abstracts an indeterminate status indicator
type Spinner interface {
	Describe(description string)
	Advance()
	Finish()
}

// StandardUIManager writes status to stderr so stdout only carries the transcript
type StandardUIManager struct {
	verbose bool
	quiet   bool
	out     io.Writer
}

func NewUIManager(verbose, quiet bool) UIManager {
	return &StandardUIManager{
		verbose: verbose,
		quiet:   quiet,
		out:     os.Stderr,
	}
}

func (ui *StandardUIManager) NewSpinner(description string) Spinner {
	if ui.quiet || !IsTerminal() {
		return silentSpinner{}
	}

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(ui.out),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)
	return &visibleSpinner{bar: bar}
}

// Verbose Output Methods
func (ui *StandardUIManager) Verbose(format string, args ...any) {
	if ui.verbose {
		fmt.Fprintf(ui.out, format, args...)
	}
}

// Status Message Methods
func (ui *StandardUIManager) Println(args ...any) {
	if !ui.quiet {
		fmt.Fprintln(ui.out, args...)
	}
}

// visibleSpinner wraps the actual progress bar
type visibleSpinner struct {
	bar *progressbar.ProgressBar
}

func (v *visibleSpinner) Describe(description string) {
	v.bar.Describe(description)
}

func (v *visibleSpinner) Advance() {
	_ = v.bar.Add(1)
}

func (v *visibleSpinner) Finish() {
	_ = v.bar.Finish()
}

// silentSpinner is used in quiet mode and when output is redirected
type silentSpinner struct{}

func (silentSpinner) Describe(string) {}
func (silentSpinner) Advance()        {}
func (silentSpinner) Finish()         {}

package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStandardUIManagerOutput(t *testing.T) {
	var buf bytes.Buffer
	ui := &StandardUIManager{out: &buf}
	ui.Println("Transcript copied to clipboard")
	ui.Verbose("hidden %d\n", 1)
	assert.Equal(t, "Transcript copied to clipboard\n", buf.String())

	buf.Reset()
	quiet := &StandardUIManager{verbose: true, quiet: true, out: &buf}
	quiet.Println("Transcript copied to clipboard")
	assert.Empty(t, buf.String())
	quiet.Verbose("step %d\n", 2)
	assert.Equal(t, "step 2\n", buf.String())
}

func TestQuietSpinnerIsSilent(t *testing.T) {
	ui := &StandardUIManager{quiet: true}
	spinner := ui.NewSpinner("Listing transcripts...")
	assert.IsType(t, silentSpinner{}, spinner)

	spinner.Describe("Fetching transcript...")
	spinner.Advance()
	spinner.Finish()
}

package internal

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFailureKindMessages(t *testing.T) {
	tests := []struct {
		kind    FailureKind
		message string
		name    string
	}{
		{FailureMetadataLookup, "Failed to get YouTube video length", "metadata_lookup_failed"},
		{FailureVideoTooLong, "Video is too long", "video_too_long"},
		{FailureInvalidLink, "Invalid YouTube link", "invalid_link"},
		{FailureVideoUnavailable, "Video unavailable", "video_unavailable"},
		{FailureNoTranscriptFound, "No transcript found", "no_transcript_found"},
		{FailureNoTranscriptAvailable, "No transcript available", "no_transcript_available"},
		{FailureSummaryGeneration, "Failed to make a summary audio", "summary_generation_failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.message, tt.kind.Message())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}

	var zero FailureKind
	assert.Equal(t, FailureSummaryGeneration, zero)
	assert.Equal(t, "Failed to make a summary audio", FailureKind(99).Message())
}

func TestSummaryError(t *testing.T) {
	cause := fmt.Errorf("wrapped: %w", ErrVideoUnavailable)
	err := error(&SummaryError{Kind: FailureVideoUnavailable, Err: cause})

	assert.Equal(t, "Video unavailable", err.Error())
	assert.ErrorIs(t, err, ErrVideoUnavailable)

	var summaryErr *SummaryError
	assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &summaryErr))
	assert.Equal(t, FailureVideoUnavailable, summaryErr.Kind)
}

func TestClassifyTranscriptError(t *testing.T) {
	tests := []struct {
		err  error
		want FailureKind
	}{
		{fmt.Errorf("x: %w", ErrVideoUnavailable), FailureVideoUnavailable},
		{fmt.Errorf("x: %w", ErrTranscriptsDisabled), FailureVideoUnavailable},
		{fmt.Errorf("x: %w", ErrNoTranscriptFound), FailureNoTranscriptFound},
		{fmt.Errorf("x: %w", ErrNotTranslatable), FailureNoTranscriptAvailable},
		{fmt.Errorf("x: %w", ErrTranslationLanguageUnavailable), FailureNoTranscriptAvailable},
		{ErrInvalidVideoID, FailureSummaryGeneration},
		{errors.New("boom"), FailureSummaryGeneration},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			assert.Equal(t, tt.want, classifyTranscriptError(tt.err))
		})
	}
}

func TestTranscriptTrackString(t *testing.T) {
	track := TranscriptTrack{LanguageCode: "en", Language: "English", Generated: true}
	assert.Equal(t, "English (generated, en)", track.String())

	track.Generated = false
	track.TargetLanguage = "es"
	assert.Equal(t, "English (manual, en -> es)", track.String())
}

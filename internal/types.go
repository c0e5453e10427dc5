package internal

import (
	"errors"
	"fmt"
	"strings"
)

// MaxVideoDuration is the longest video, in seconds, that will be processed
const MaxVideoDuration = 2700

// Errors reported by the metadata and transcript providers
var (
	ErrInvalidVideoID                 = errors.New("invalid YouTube video ID")
	ErrVideoUnavailable               = errors.New("video unavailable")
	ErrTranscriptsDisabled            = errors.New("transcripts are disabled for this video")
	ErrNoTranscriptFound              = errors.New("no transcript found for the requested languages")
	ErrNotTranslatable                = errors.New("transcript is not translatable")
	ErrTranslationLanguageUnavailable = errors.New("translation language not available")
)

// FailureKind represents the reason a summary request did not produce a transcript
type FailureKind int

const (
	// FailureSummaryGeneration is the fallback for any failure not mapped to a specific kind
	FailureSummaryGeneration FailureKind = iota
	FailureMetadataLookup
	FailureVideoTooLong
	FailureInvalidLink
	FailureVideoUnavailable
	FailureNoTranscriptFound
	FailureNoTranscriptAvailable
)

// String returns a short identifier for the failure kind
func (k FailureKind) String() string {
	switch k {
	case FailureMetadataLookup:
		return "metadata_lookup_failed"
	case FailureVideoTooLong:
		return "video_too_long"
	case FailureInvalidLink:
		return "invalid_link"
	case FailureVideoUnavailable:
		return "video_unavailable"
	case FailureNoTranscriptFound:
		return "no_transcript_found"
	case FailureNoTranscriptAvailable:
		return "no_transcript_available"
	default:
		return "summary_generation_failed"
	}
}

// Message returns the user-facing text reported for the failure kind
func (k FailureKind) Message() string {
	switch k {
	case FailureMetadataLookup:
		return "Failed to get YouTube video length"
	case FailureVideoTooLong:
		return "Video is too long"
	case FailureInvalidLink:
		return "Invalid YouTube link"
	case FailureVideoUnavailable:
		return "Video unavailable"
	case FailureNoTranscriptFound:
		return "No transcript found"
	case FailureNoTranscriptAvailable:
		return "No transcript available"
	default:
		return "Failed to make a summary audio"
	}
}

// SummaryError is returned by the resolver for every short-circuited request.
// Error() only exposes the user-facing message; the cause stays reachable via Unwrap.
type SummaryError struct {
	Kind FailureKind
	Err  error
}

func (e *SummaryError) Error() string {
	return e.Kind.Message()
}

func (e *SummaryError) Unwrap() error {
	return e.Err
}

// classifyTranscriptError maps provider errors from listing, selection and translation
// to a failure kind. Anything unrecognised falls back to FailureSummaryGeneration.
func classifyTranscriptError(err error) FailureKind {
	switch {
	case errors.Is(err, ErrVideoUnavailable), errors.Is(err, ErrTranscriptsDisabled):
		return FailureVideoUnavailable
	case errors.Is(err, ErrNoTranscriptFound):
		return FailureNoTranscriptFound
	case errors.Is(err, ErrNotTranslatable), errors.Is(err, ErrTranslationLanguageUnavailable):
		return FailureNoTranscriptAvailable
	default:
		return FailureSummaryGeneration
	}
}

// Language is a language a transcript is available or translatable in
type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TranscriptTrack is a handle to one transcript of a video in a single language
type TranscriptTrack struct {
	VideoID              string     `json:"video_id"`
	LanguageCode         string     `json:"language_code"`
	Language             string     `json:"language"`
	Generated            bool       `json:"generated"`
	Translatable         bool       `json:"translatable"`
	BaseURL              string     `json:"-"`
	TranslationLanguages []Language `json:"-"`

	// TargetLanguage is set once the track has been translated
	TargetLanguage string `json:"target_language,omitempty"`
}

// String returns a formatted representation of the track
func (t TranscriptTrack) String() string {
	kind := "manual"
	if t.Generated {
		kind = "generated"
	}
	if t.TargetLanguage != "" {
		return fmt.Sprintf("%s (%s, %s -> %s)", t.Language, kind, t.LanguageCode, t.TargetLanguage)
	}
	return fmt.Sprintf("%s (%s, %s)", t.Language, kind, t.LanguageCode)
}

// CanTranslateTo reports whether the track offers a translation into the language
func (t TranscriptTrack) CanTranslateTo(languageCode string) bool {
	if !t.Translatable {
		return false
	}
	for _, lang := range t.TranslationLanguages {
		if lang.Code == languageCode {
			return true
		}
	}
	return false
}

// TranscriptList holds all transcript tracks listed for a video
type TranscriptList struct {
	VideoID              string
	Manual               []TranscriptTrack
	Generated            []TranscriptTrack
	TranslationLanguages []Language
}

// Tracks returns manually created tracks followed by generated ones
func (l *TranscriptList) Tracks() []TranscriptTrack {
	tracks := make([]TranscriptTrack, 0, len(l.Manual)+len(l.Generated))
	tracks = append(tracks, l.Manual...)
	return append(tracks, l.Generated...)
}

// Find returns the first track matching the preferred languages, scanning the
// preferences in order. Within one language a manually created track beats a
// generated one. Codes compare case-insensitively. Tracks in languages not listed
// are never returned.
func (l *TranscriptList) Find(languages []string) (TranscriptTrack, error) {
	for _, code := range languages {
		for _, group := range [][]TranscriptTrack{l.Manual, l.Generated} {
			for _, track := range group {
				if strings.EqualFold(track.LanguageCode, code) {
					return track, nil
				}
			}
		}
	}
	return TranscriptTrack{}, fmt.Errorf("%w: video %s, requested %v", ErrNoTranscriptFound, l.VideoID, languages)
}

package internal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DefaultLanguages is the source-track preference list, most spoken languages first
var DefaultLanguages = []string{
	"zh", // Chinese (Mandarin)
	"es", // Spanish
	"en", // English
	"hi", // Hindi
	"ar", // Arabic
	"bn", // Bengali
	"pt", // Portuguese
	"ru", // Russian
	"ja", // Japanese
	"pa", // Western Punjabi
}

// Resolver turns a video link into a translated plain-text transcript
type Resolver struct {
	metadata    VideoMetadataProvider
	transcripts TranscriptProvider
	languages   []string
	logger      *slog.Logger
	progress    func(step string)
}

// ResolverOption customizes Resolver creation
type ResolverOption func(*Resolver)

// WithLogger sets the logger failures are reported to
func WithLogger(logger *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.logger = logger
	}
}

// NewResolver creates a resolver selecting source tracks by the given language preference
func NewResolver(metadata VideoMetadataProvider, transcripts TranscriptProvider, languages []string, options ...ResolverOption) *Resolver {
	r := &Resolver{
		metadata:    metadata,
		transcripts: transcripts,
		languages:   append([]string(nil), languages...),
		logger:      slog.Default(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// Languages returns the source-language preference list
func (r *Resolver) Languages() []string {
	return append([]string(nil), r.languages...)
}

// WithProgress returns a copy of the resolver reporting each pipeline step to fn
func (r *Resolver) WithProgress(fn func(step string)) *Resolver {
	clone := *r
	clone.progress = fn
	return &clone
}

func (r *Resolver) report(step string) {
	if r.progress != nil {
		r.progress(step)
	}
}

// Summarize fetches the video's transcript in the best available preferred language,
// translates it into targetLanguage and returns it as plain text.
// Every failure is returned as a *SummaryError.
func (r *Resolver) Summarize(ctx context.Context, videoURL, targetLanguage string) (string, error) {
	log := r.logger.With(
		slog.String("request_id", uuid.NewString()),
		slog.String("url", videoURL),
		slog.String("target_language", targetLanguage),
	)

	r.report("Checking video length...")
	duration, err := r.metadata.DurationSeconds(ctx, videoURL)
	if err != nil {
		log.Warn("failed to get YouTube video length", slog.Any("error", err))
		return "", &SummaryError{Kind: FailureMetadataLookup, Err: err}
	}
	if duration > MaxVideoDuration {
		log.Info("video too long", slog.Int("duration", duration), slog.Int("max_duration", MaxVideoDuration))
		return "", &SummaryError{
			Kind: FailureVideoTooLong,
			Err:  fmt.Errorf("video is %ds long, limit is %ds", duration, MaxVideoDuration),
		}
	}

	videoID, err := r.metadata.ExtractVideoID(videoURL)
	if err != nil {
		log.Warn("failed to extract video ID", slog.Any("error", err))
		return "", &SummaryError{Kind: FailureInvalidLink, Err: err}
	}
	log = log.With(slog.String("video_id", videoID))

	text, kind, err := r.transcript(ctx, videoID, targetLanguage)
	if err != nil {
		log.Warn("failed to make a summary from YouTube video",
			slog.String("kind", kind.String()), slog.Any("error", err))
		return "", &SummaryError{Kind: kind, Err: err}
	}

	log.Debug("transcript ready", slog.Int("duration", duration), slog.Int("chars", len(text)))
	return text, nil
}

// transcript runs listing, selection, translation and fetching for one video.
// Provider errors from the first three steps are classified; fetch errors never are.
func (r *Resolver) transcript(ctx context.Context, videoID, targetLanguage string) (string, FailureKind, error) {
	r.report("Listing transcripts...")
	list, err := r.transcripts.ListTranscripts(ctx, videoID)
	if err != nil {
		return "", classifyTranscriptError(err), err
	}

	track, err := r.transcripts.SelectByLanguagePreference(list, r.languages)
	if err != nil {
		return "", classifyTranscriptError(err), err
	}

	r.report(fmt.Sprintf("Translating %s transcript to %s...", track.LanguageCode, targetLanguage))
	translated, err := r.transcripts.Translate(track, targetLanguage)
	if err != nil {
		return "", classifyTranscriptError(err), err
	}

	r.report("Fetching transcript...")
	text, err := r.transcripts.FetchAndFormat(ctx, translated)
	if err != nil {
		return "", FailureSummaryGeneration, fmt.Errorf("fetching %s: %w", translated, err)
	}
	return text, FailureSummaryGeneration, nil
}

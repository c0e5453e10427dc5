package internal

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"net/url"
	"regexp"
	"strings"
)

// TranscriptProvider lists, selects, translates and fetches transcript tracks
type TranscriptProvider interface {
	ListTranscripts(ctx context.Context, videoID string) (*TranscriptList, error)
	SelectByLanguagePreference(list *TranscriptList, languages []string) (TranscriptTrack, error)
	Translate(track TranscriptTrack, targetLanguage string) (TranscriptTrack, error)
	FetchAndFormat(ctx context.Context, track TranscriptTrack) (string, error)
}

// YouTubeTranscripts implements TranscriptProvider on top of the innertube player API
type YouTubeTranscripts struct {
	innertube *InnerTube
}

// NewYouTubeTranscripts creates a transcript provider
func NewYouTubeTranscripts(innertube *InnerTube) *YouTubeTranscripts {
	return &YouTubeTranscripts{innertube: innertube}
}

// ListTranscripts returns every caption track of the video
func (yt *YouTubeTranscripts) ListTranscripts(ctx context.Context, videoID string) (*TranscriptList, error) {
	player, err := yt.innertube.player(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("listing transcripts: %w", err)
	}

	if !player.playable() {
		return nil, fmt.Errorf("%w: %s (%s: %s)", ErrVideoUnavailable, videoID,
			player.PlayabilityStatus.Status, player.PlayabilityStatus.Reason)
	}

	if player.Captions == nil || len(player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrTranscriptsDisabled, videoID)
	}

	renderer := player.Captions.PlayerCaptionsTracklistRenderer
	list := &TranscriptList{VideoID: videoID}

	for _, lang := range renderer.TranslationLanguages {
		list.TranslationLanguages = append(list.TranslationLanguages, Language{
			Code: lang.LanguageCode,
			Name: lang.LanguageName.String(),
		})
	}

	for _, ct := range renderer.CaptionTracks {
		track := TranscriptTrack{
			VideoID:      videoID,
			LanguageCode: ct.LanguageCode,
			Language:     ct.Name.String(),
			Generated:    ct.Kind == "asr",
			Translatable: ct.IsTranslatable,
			BaseURL:      stripFormat(ct.BaseURL),
		}
		if track.Translatable {
			track.TranslationLanguages = list.TranslationLanguages
		}

		if track.Generated {
			list.Generated = append(list.Generated, track)
		} else {
			list.Manual = append(list.Manual, track)
		}
	}

	return list, nil
}

// SelectByLanguagePreference picks the track in the most preferred available language
func (yt *YouTubeTranscripts) SelectByLanguagePreference(list *TranscriptList, languages []string) (TranscriptTrack, error) {
	return list.Find(languages)
}

// Translate returns a handle to the track translated into the target language
func (yt *YouTubeTranscripts) Translate(track TranscriptTrack, targetLanguage string) (TranscriptTrack, error) {
	return translateTrack(track, targetLanguage)
}

// FetchAndFormat downloads the track's timed text and joins the segments into plain text
func (yt *YouTubeTranscripts) FetchAndFormat(ctx context.Context, track TranscriptTrack) (string, error) {
	body, err := yt.innertube.get(ctx, track.BaseURL, 4<<20)
	if err != nil {
		return "", fmt.Errorf("fetching transcript %s: %w", track, err)
	}

	segments, err := parseTimedText(body)
	if err != nil {
		return "", err
	}
	return FormatText(segments), nil
}

func translateTrack(track TranscriptTrack, targetLanguage string) (TranscriptTrack, error) {
	// nothing to translate when the source is already in the target language
	if track.LanguageCode == targetLanguage && track.TargetLanguage == "" {
		return track, nil
	}
	if !track.Translatable {
		return TranscriptTrack{}, fmt.Errorf("%w: %s", ErrNotTranslatable, track)
	}
	if !track.CanTranslateTo(targetLanguage) {
		return TranscriptTrack{}, fmt.Errorf("%w: %s -> %s", ErrTranslationLanguageUnavailable, track, targetLanguage)
	}

	translated := track
	translated.TargetLanguage = targetLanguage
	translated.Translatable = false
	translated.TranslationLanguages = nil
	translated.BaseURL = withQueryParam(track.BaseURL, "tlang", targetLanguage)
	return translated, nil
}

// stripFormat removes the fmt parameter so the timedtext endpoint answers with plain XML
func stripFormat(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return baseURL
	}
	q := u.Query()
	q.Del("fmt")
	u.RawQuery = q.Encode()
	return u.String()
}

func withQueryParam(rawURL, key, value string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL + "&" + url.QueryEscape(key) + "=" + url.QueryEscape(value)
	}
	q := u.Query()
	q.Set(key, value)
	u.RawQuery = q.Encode()
	return u.String()
}

// Segment is a single timed line of a transcript
type Segment struct {
	Text     string
	Start    float64
	Duration float64
}

// timedText covers both the srv1 (<transcript><text>) and srv3 (<timedtext><body><p>) formats
type timedText struct {
	Texts []timedLine `xml:"text"`
	Body  struct {
		Paragraphs []timedParagraph `xml:"p"`
	} `xml:"body"`
}

type timedLine struct {
	Start    float64 `xml:"start,attr"`
	Duration float64 `xml:"dur,attr"`
	Inner    string  `xml:",innerxml"`
}

type timedParagraph struct {
	StartMs    float64 `xml:"t,attr"`
	DurationMs float64 `xml:"d,attr"`
	Inner      string  `xml:",innerxml"`
}

var htmlTagRE = regexp.MustCompile(`<[^>]*>`)

// cleanSegmentText strips markup and resolves the doubly escaped entities YouTube emits
func cleanSegmentText(inner string) string {
	text := html.UnescapeString(inner)
	text = htmlTagRE.ReplaceAllString(text, "")
	return strings.TrimSpace(html.UnescapeString(text))
}

func parseTimedText(data []byte) ([]Segment, error) {
	var tt timedText
	if err := xml.Unmarshal(data, &tt); err != nil {
		return nil, fmt.Errorf("parsing timedtext XML: %w", err)
	}

	segments := make([]Segment, 0, len(tt.Texts)+len(tt.Body.Paragraphs))
	for _, line := range tt.Texts {
		if text := cleanSegmentText(line.Inner); text != "" {
			segments = append(segments, Segment{Text: text, Start: line.Start, Duration: line.Duration})
		}
	}
	for _, p := range tt.Body.Paragraphs {
		if text := cleanSegmentText(p.Inner); text != "" {
			segments = append(segments, Segment{Text: text, Start: p.StartMs / 1000, Duration: p.DurationMs / 1000})
		}
	}
	return segments, nil
}

// FormatText renders segments as plain text, one segment per line, dropping timings
func FormatText(segments []Segment) string {
	lines := make([]string, len(segments))
	for i, s := range segments {
		lines[i] = s.Text
	}
	return strings.Join(lines, "\n")
}

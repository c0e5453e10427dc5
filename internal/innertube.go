package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// DefaultPlayerURL is the innertube endpoint returning video details and caption tracks
const DefaultPlayerURL = "https://www.youtube.com/youtubei/v1/player"

// ClientProfile identifies the YouTube client the innertube requests present themselves as.
// It is passed to NewInnerTube explicitly, so different callers can use different profiles.
type ClientProfile struct {
	Name              string
	Version           string
	AndroidSDKVersion int
	UserAgent         string
}

// DefaultClientProfile is the ANDROID client known to return caption tracks without a login
var DefaultClientProfile = ClientProfile{
	Name:              "ANDROID",
	Version:           "19.08.35",
	AndroidSDKVersion: 30,
	UserAgent:         "com.google.android.youtube/19.08.35 (Linux; U; Android 11) gzip",
}

// headerClientID returns the numeric client ID sent in X-Youtube-Client-Name
func (p ClientProfile) headerClientID() string {
	switch strings.ToUpper(p.Name) {
	case "WEB":
		return "1"
	case "ANDROID_MUSIC":
		return "21"
	case "IOS":
		return "5"
	default:
		return "3"
	}
}

type playerRequest struct {
	VideoID        string        `json:"videoId"`
	Context        playerContext `json:"context"`
	RacyCheckOk    bool          `json:"racyCheckOk"`
	ContentCheckOk bool          `json:"contentCheckOk"`
}

type playerContext struct {
	Client playerClient `json:"client"`
}

type playerClient struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
	Hl                string `json:"hl,omitempty"`
	Gl                string `json:"gl,omitempty"`
}

// playerResponse is the subset of the /player response used here
type playerResponse struct {
	PlayabilityStatus struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	} `json:"playabilityStatus"`
	VideoDetails struct {
		VideoID       string `json:"videoId"`
		Title         string `json:"title"`
		LengthSeconds string `json:"lengthSeconds"`
	} `json:"videoDetails"`
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks        []captionTrack        `json:"captionTracks"`
			TranslationLanguages []translationLanguage `json:"translationLanguages"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// playable reports whether YouTube allows the video to be watched
func (r *playerResponse) playable() bool {
	return r.PlayabilityStatus.Status == "OK"
}

type captionTrack struct {
	BaseURL        string   `json:"baseUrl"`
	Name           textRuns `json:"name"`
	LanguageCode   string   `json:"languageCode"`
	Kind           string   `json:"kind"` // "asr" = auto-generated
	IsTranslatable bool     `json:"isTranslatable"`
}

type translationLanguage struct {
	LanguageCode string   `json:"languageCode"`
	LanguageName textRuns `json:"languageName"`
}

// textRuns is YouTube's localized text, either a simpleText or a list of runs
type textRuns struct {
	SimpleText string `json:"simpleText"`
	Runs       []struct {
		Text string `json:"text"`
	} `json:"runs"`
}

func (t textRuns) String() string {
	if t.SimpleText != "" {
		return t.SimpleText
	}
	var sb strings.Builder
	for _, run := range t.Runs {
		sb.WriteString(run.Text)
	}
	return sb.String()
}

// InnerTube talks to YouTube's internal player API
type InnerTube struct {
	httpClient *http.Client
	profile    ClientProfile
	playerURL  string
}

// NewInnerTube creates an innertube client using the given client profile
func NewInnerTube(httpClient *http.Client, profile ClientProfile) *InnerTube {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &InnerTube{
		httpClient: httpClient,
		profile:    profile,
		playerURL:  DefaultPlayerURL,
	}
}

// WithPlayerURL returns a copy of the client posting to a different player endpoint
func (it *InnerTube) WithPlayerURL(playerURL string) *InnerTube {
	clone := *it
	clone.playerURL = playerURL
	return &clone
}

// player fetches the player response for a video
func (it *InnerTube) player(ctx context.Context, videoID string) (*playerResponse, error) {
	body, err := json.Marshal(playerRequest{
		VideoID: videoID,
		Context: playerContext{
			Client: playerClient{
				ClientName:        it.profile.Name,
				ClientVersion:     it.profile.Version,
				AndroidSdkVersion: it.profile.AndroidSDKVersion,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding player request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, it.playerURL+"?prettyPrint=false", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating player request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", it.profile.UserAgent)
	req.Header.Set("X-Youtube-Client-Name", it.profile.headerClientID())
	req.Header.Set("X-Youtube-Client-Version", it.profile.Version)

	resp, err := it.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("innertube player: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("innertube player: HTTP %d: %s", resp.StatusCode, snippet)
	}

	var player playerResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 8<<20)).Decode(&player); err != nil {
		return nil, fmt.Errorf("decoding player response: %w", err)
	}
	return &player, nil
}

// get performs a GET request with the profile's user agent and returns the body
func (it *InnerTube) get(ctx context.Context, rawURL string, limit int64) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", it.profile.UserAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := it.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

package internal

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSummarizer struct {
	text       string
	err        error
	gotURL     string
	gotLang    string
	callsCount int
}

func (f *fakeSummarizer) Summarize(ctx context.Context, videoURL, targetLanguage string) (string, error) {
	f.callsCount++
	f.gotURL = videoURL
	f.gotLang = targetLanguage
	return f.text, f.err
}

func TestPluginSpec(t *testing.T) {
	plugin := NewPlugin(nil)
	assert.Equal(t, "YouTube Summary", plugin.SourceName())

	specs := plugin.Spec()
	require.Len(t, specs, 1)

	data, err := json.Marshal(specs[0])
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "youtube_summary", decoded["name"])
	assert.Equal(t, "Make a summary from a YouTube video", decoded["description"])

	params := decoded["parameters"].(map[string]any)
	assert.Equal(t, "object", params["type"])
	assert.Equal(t, []any{"youtube_link", "target_language"}, params["required"])

	props := params["properties"].(map[string]any)
	link := props["youtube_link"].(map[string]any)
	assert.Equal(t, "string", link["type"])
	assert.Equal(t, "YouTube video link to make a summary from", link["description"])
	lang := props["target_language"].(map[string]any)
	assert.Equal(t, "Target transcript language (ISO 639-1)", lang["description"])
}

func TestPluginExecute(t *testing.T) {
	args := map[string]any{
		ArgYouTubeLink:    "https://youtu.be/dQw4w9WgXcQ",
		ArgTargetLanguage: "es",
	}

	tests := []struct {
		name       string
		summarizer *fakeSummarizer
		want       any
	}{
		{
			name:       "transcript on success",
			summarizer: &fakeSummarizer{text: "hola\nmundo"},
			want:       "hola\nmundo",
		},
		{
			name:       "failure kind message",
			summarizer: &fakeSummarizer{err: &SummaryError{Kind: FailureVideoTooLong}},
			want:       Response{Result: "Video is too long"},
		},
		{
			name:       "untyped error falls back",
			summarizer: &fakeSummarizer{err: errors.New("boom")},
			want:       Response{Result: "Failed to make a summary audio"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPlugin(tt.summarizer).Execute(context.Background(), FunctionName, nil, args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", tt.summarizer.gotURL)
			assert.Equal(t, "es", tt.summarizer.gotLang)
		})
	}
}

func TestPluginResponseJSON(t *testing.T) {
	data, err := json.Marshal(Response{Result: FailureNoTranscriptFound.Message()})
	require.NoError(t, err)
	assert.JSONEq(t, `{"result": "No transcript found"}`, string(data))
}

func TestPluginExecuteContractErrors(t *testing.T) {
	tests := []struct {
		name     string
		function string
		args     map[string]any
	}{
		{name: "unknown function", function: "weather", args: map[string]any{ArgYouTubeLink: "x", ArgTargetLanguage: "es"}},
		{name: "missing link", function: FunctionName, args: map[string]any{ArgTargetLanguage: "es"}},
		{name: "missing language", function: FunctionName, args: map[string]any{ArgYouTubeLink: "dQw4w9WgXcQ"}},
		{name: "blank language", function: FunctionName, args: map[string]any{ArgYouTubeLink: "dQw4w9WgXcQ", ArgTargetLanguage: "  "}},
		{name: "non-string link", function: FunctionName, args: map[string]any{ArgYouTubeLink: 42, ArgTargetLanguage: "es"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summarizer := &fakeSummarizer{}
			_, err := NewPlugin(summarizer).Execute(context.Background(), tt.function, nil, tt.args)
			assert.Error(t, err)
			assert.Zero(t, summarizer.callsCount)
		})
	}
}

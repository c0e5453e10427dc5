package internal

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// FunctionName is the operation the plugin exposes to the host
const FunctionName = "youtube_summary"

// Plugin argument names
const (
	ArgYouTubeLink    = "youtube_link"
	ArgTargetLanguage = "target_language"
)

// FunctionSpec declares an operation and its parameters to the host
type FunctionSpec struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  ParameterSchema `json:"parameters"`
}

// ParameterSchema is the JSON Schema object describing an operation's arguments
type ParameterSchema struct {
	Type       string                    `json:"type"`
	Properties map[string]PropertySchema `json:"properties"`
	Required   []string                  `json:"required"`
}

// PropertySchema describes a single argument
type PropertySchema struct {
	Type        string `json:"type"`
	Description string `json:"description"`
}

// Response is returned to the host in place of a transcript when the request short-circuits
type Response struct {
	Result string `json:"result"`
}

// Summarizer produces a translated transcript for a video link
type Summarizer interface {
	Summarize(ctx context.Context, videoURL, targetLanguage string) (string, error)
}

// Plugin adapts a Summarizer to the chatbot plugin contract
type Plugin struct {
	summarizer Summarizer
}

// NewPlugin creates the YouTube summary plugin
func NewPlugin(summarizer Summarizer) *Plugin {
	return &Plugin{summarizer: summarizer}
}

// SourceName returns the human-readable plugin name
func (p *Plugin) SourceName() string {
	return "YouTube Summary"
}

// Spec returns the capability declarations of the plugin
func (p *Plugin) Spec() []FunctionSpec {
	return []FunctionSpec{{
		Name:        FunctionName,
		Description: "Make a summary from a YouTube video",
		Parameters: ParameterSchema{
			Type: "object",
			Properties: map[string]PropertySchema{
				ArgYouTubeLink:    {Type: "string", Description: "YouTube video link to make a summary from"},
				ArgTargetLanguage: {Type: "string", Description: "Target transcript language (ISO 639-1)"},
			},
			Required: []string{ArgYouTubeLink, ArgTargetLanguage},
		},
	}}
}

// Execute runs the named operation. It returns the transcript as a string on success,
// or a Response carrying a short message when the request could not be completed.
// An error is only returned when the host breaks the contract (unknown function, missing argument).
func (p *Plugin) Execute(ctx context.Context, functionName string, helper any, args map[string]any) (any, error) {
	if functionName != FunctionName {
		return nil, fmt.Errorf("unknown function: %s", functionName)
	}

	link, err := stringArg(args, ArgYouTubeLink)
	if err != nil {
		return nil, err
	}
	targetLanguage, err := stringArg(args, ArgTargetLanguage)
	if err != nil {
		return nil, err
	}

	transcript, err := p.summarizer.Summarize(ctx, link, targetLanguage)
	if err != nil {
		var summaryErr *SummaryError
		if errors.As(err, &summaryErr) {
			return Response{Result: summaryErr.Kind.Message()}, nil
		}
		return Response{Result: FailureSummaryGeneration.Message()}, nil
	}
	return transcript, nil
}

func stringArg(args map[string]any, name string) (string, error) {
	raw, ok := args[name]
	if !ok {
		return "", fmt.Errorf("%s is required", name)
	}
	value, ok := raw.(string)
	if !ok {
		return "", fmt.Errorf("%s must be a string", name)
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s must not be empty", name)
	}
	return value, nil
}

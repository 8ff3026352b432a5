package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// NewMCPServer registers the tool surface on an MCP server speaking the
// stdio transport. Handlers never return a Go error to the protocol;
// failures become IsError text results so the hosting runtime can show
// them to the end user.
func NewMCPServer(s *Server, version string) *mcp.Server {
	impl := &mcp.Implementation{
		Name:    "typecast-mcp",
		Title:   "Typecast Text-to-Speech",
		Version: version,
	}
	m := mcp.NewServer(impl, nil)

	mcp.AddTool(m, &mcp.Tool{
		Name:        "get_voices",
		Description: "Get a list of available voices for text-to-speech, optionally filtered by model, gender or age",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in GetVoicesParams) (*mcp.CallToolResult, any, error) {
		voices, err := s.Voices(ctx, in)
		if err != nil {
			return errResult(err), nil, nil
		}
		body, err := json.MarshalIndent(voices, "", "  ")
		if err != nil {
			return errResult(err), nil, nil
		}
		return textResult(string(body)), nil, nil
	})

	mcp.AddTool(m, &mcp.Tool{
		Name:        "get_voice",
		Description: "Get the detail of one voice by its id",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in GetVoiceParams) (*mcp.CallToolResult, any, error) {
		voice, err := s.VoiceDetail(ctx, in.VoiceID)
		if err != nil {
			return errResult(err), nil, nil
		}
		body, err := json.MarshalIndent(voice, "", "  ")
		if err != nil {
			return errResult(err), nil, nil
		}
		return textResult(string(body)), nil, nil
	})

	mcp.AddTool(m, &mcp.Tool{
		Name:        "text_to_speech",
		Description: "Convert text to speech using the specified voice and parameters. Generated audio is saved to the configured output directory",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in TextToSpeechParams) (*mcp.CallToolResult, any, error) {
		path, err := s.TextToSpeech(ctx, in)
		if err != nil {
			return errResult(err), nil, nil
		}
		return textResult(fmt.Sprintf("Successfully generated speech for voice: %s. File saved: %s", in.VoiceID, path)), nil, nil
	})

	mcp.AddTool(m, &mcp.Tool{
		Name:        "play_audio",
		Description: "Play a generated audio file (wav or mp3). Prefers ffplay when installed and falls back to the default output device",
	}, func(ctx context.Context, _ *mcp.CallToolRequest, in PlayAudioParams) (*mcp.CallToolResult, any, error) {
		method, err := s.PlayAudio(ctx, in)
		if err != nil {
			return errResult(err), nil, nil
		}
		return textResult(fmt.Sprintf("Successfully played audio file using %s: %s", method, in.FilePath)), nil, nil
	})

	return m
}

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: "Error: " + err.Error()}},
		IsError: true,
	}
}

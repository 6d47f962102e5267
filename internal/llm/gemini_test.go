package llm

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/require"

	"github.com/qrtz-ai/chat-gateway/internal/schema"
)

func TestGeminiHistory_RoleMapping(t *testing.T) {
	history := []schema.Message{
		{ID: "1", Role: schema.RoleUser, Content: "first", Timestamp: 1},
		{ID: "2", Role: schema.RoleAssistant, Content: "second", Timestamp: 2},
		{ID: "3", Role: schema.RoleAssistant, Content: "third", Timestamp: 3},
		{ID: "4", Role: schema.RoleUser, Content: "fourth", Timestamp: 4},
	}

	contents := geminiHistory(history)
	require.Len(t, contents, 4)

	// user maps to "user" and assistant to "model", regardless of position.
	require.Equal(t, "user", contents[0].Role)
	require.Equal(t, "model", contents[1].Role)
	require.Equal(t, "model", contents[2].Role)
	require.Equal(t, "user", contents[3].Role)

	for i, want := range []string{"first", "second", "third", "fourth"} {
		require.Len(t, contents[i].Parts, 1)
		require.Equal(t, genai.Text(want), contents[i].Parts[0])
	}
}

func TestGeminiHistory_Empty(t *testing.T) {
	require.Empty(t, geminiHistory(nil))
}

func TestGeminiText_ExtractsParts(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []genai.Part{genai.Text("hello "), genai.Text("world")},
			},
		}},
	}
	require.Equal(t, "hello world", geminiText(resp))
}

func TestGeminiText_NoCandidates(t *testing.T) {
	require.Equal(t, "", geminiText(&genai.GenerateContentResponse{}))
}

func TestTextOrFallback(t *testing.T) {
	require.Equal(t, "hi", textOrFallback("hi"))
	require.Equal(t, FallbackReply, textOrFallback(""))
}

func TestGeminiGenerate_MissingKey(t *testing.T) {
	client := NewGeminiClient("", "")
	_, err := client.Generate(context.Background(), "hello", nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "gemini", cfgErr.Provider)
}

func TestGeminiDefaults(t *testing.T) {
	client := NewGeminiClient("key", "")
	require.Equal(t, defaultGeminiModel, client.model)
	require.Equal(t, "gemini", client.Name())
}

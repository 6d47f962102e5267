package llm

import (
	"context"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/require"

	"github.com/qrtz-ai/chat-gateway/internal/schema"
)

func TestAnthropicMessages_HistoryThenMessage(t *testing.T) {
	history := []schema.Message{
		{ID: "1", Role: schema.RoleUser, Content: "q1", Timestamp: 1},
		{ID: "2", Role: schema.RoleAssistant, Content: "a1", Timestamp: 2},
	}

	messages := anthropicMessages("q2", history)
	require.Len(t, messages, 3)

	require.Equal(t, anthropic.MessageParamRoleUser, messages[0].Role.Value)
	require.Equal(t, anthropic.MessageParamRoleAssistant, messages[1].Role.Value)
	require.Equal(t, anthropic.MessageParamRoleUser, messages[2].Role.Value)
}

func TestAnthropicGenerate_MissingKey(t *testing.T) {
	client := NewAnthropicClient("", "")
	_, err := client.Generate(context.Background(), "hello", nil)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "anthropic", cfgErr.Provider)
}

func TestProviderError_Unwrap(t *testing.T) {
	cause := context.DeadlineExceeded
	err := &ProviderError{Provider: "gemini", Err: cause}
	require.ErrorIs(t, err, cause)
	require.Contains(t, err.Error(), "gemini")
}

// Package llm provides provider gateways for generating chat replies.
package llm

import (
	"context"

	"github.com/qrtz-ai/chat-gateway/internal/schema"
)

// FallbackReply is returned whenever a provider produces an empty reply.
const FallbackReply = "I apologize, but I couldn't generate a response. Please try again."

// Client is the interface for generative-language providers. Generate builds
// an ordered turn list from the history plus the new user message, attaches
// the fixed system instruction, and returns the provider's text reply. The
// call is synchronous and unbounded; there are no retries and no streaming.
type Client interface {
	// Generate returns the model's reply to message given the prior history.
	Generate(ctx context.Context, message string, history []schema.Message) (string, error)

	// Name returns the provider name.
	Name() string
}

// Provider is the type of LLM provider.
type Provider string

const (
	ProviderGemini    Provider = "gemini"
	ProviderOpenAI    Provider = "openai"
	ProviderAnthropic Provider = "anthropic"
)

// New creates a client for the given provider. The credential is not checked
// here; each client verifies it lazily on first use so that a misconfigured
// server still starts and reports the problem per request.
func New(provider Provider, apiKey, model string) Client {
	switch provider {
	case ProviderOpenAI:
		return NewOpenAIClient(apiKey, model)
	case ProviderAnthropic:
		return NewAnthropicClient(apiKey, model)
	default:
		return NewGeminiClient(apiKey, model)
	}
}

// textOrFallback guards against empty provider replies.
func textOrFallback(text string) string {
	if text == "" {
		return FallbackReply
	}
	return text
}

package llm

import (
	"context"
	"sync"

	"github.com/sashabaranov/go-openai"

	"github.com/qrtz-ai/chat-gateway/internal/schema"
)

const defaultOpenAIModel = "gpt-4o"

// OpenAIClient is the OpenAI gateway.
type OpenAIClient struct {
	apiKey string
	model  string

	once   sync.Once
	client *openai.Client
}

// NewOpenAIClient creates an OpenAI client. The credential is checked lazily
// on first Generate.
func NewOpenAIClient(apiKey, model string) *OpenAIClient {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAIClient{apiKey: apiKey, model: model}
}

// Name returns the provider name.
func (c *OpenAIClient) Name() string {
	return "openai"
}

// Generate sends the system instruction, history and new message as a chat
// completion and returns the reply text.
func (c *OpenAIClient) Generate(ctx context.Context, message string, history []schema.Message) (string, error) {
	if c.apiKey == "" {
		return "", &ConfigError{Provider: c.Name()}
	}
	c.once.Do(func() {
		c.client = openai.NewClient(c.apiKey)
	})

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: openAIMessages(message, history),
	})
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}

	var content string
	if len(resp.Choices) > 0 {
		content = resp.Choices[0].Message.Content
	}
	return textOrFallback(content), nil
}

// openAIMessages builds the turn list: system instruction first, then the
// history in order, then the new user message as the final turn.
func openAIMessages(message string, history []schema.Message) []openai.ChatCompletionMessage {
	messages := make([]openai.ChatCompletionMessage, 0, len(history)+2)
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleSystem,
		Content: SystemPrompt,
	})
	for _, msg := range history {
		role := openai.ChatMessageRoleUser
		if msg.Role == schema.RoleAssistant {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: message,
	})
	return messages
}

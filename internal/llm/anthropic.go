package llm

import (
	"context"
	"sync"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/qrtz-ai/chat-gateway/internal/schema"
)

const (
	defaultAnthropicModel     = "claude-3-5-sonnet-20241022"
	defaultAnthropicMaxTokens = 4096
)

// AnthropicClient is the Anthropic gateway.
type AnthropicClient struct {
	apiKey string
	model  string

	once   sync.Once
	client *anthropic.Client
}

// NewAnthropicClient creates an Anthropic client. The credential is checked
// lazily on first Generate.
func NewAnthropicClient(apiKey, model string) *AnthropicClient {
	if model == "" {
		model = defaultAnthropicModel
	}
	return &AnthropicClient{apiKey: apiKey, model: model}
}

// Name returns the provider name.
func (c *AnthropicClient) Name() string {
	return "anthropic"
}

// Generate sends the history and new message with the system instruction and
// returns the reply text.
func (c *AnthropicClient) Generate(ctx context.Context, message string, history []schema.Message) (string, error) {
	if c.apiKey == "" {
		return "", &ConfigError{Provider: c.Name()}
	}
	c.once.Do(func() {
		c.client = anthropic.NewClient(option.WithAPIKey(c.apiKey))
	})

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.F(c.model),
		MaxTokens: anthropic.F(int64(defaultAnthropicMaxTokens)),
		System: anthropic.F([]anthropic.TextBlockParam{{
			Type: anthropic.F(anthropic.TextBlockParamTypeText),
			Text: anthropic.F(SystemPrompt),
		}}),
		Messages: anthropic.F(anthropicMessages(message, history)),
	})
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == anthropic.ContentBlockTypeText {
			content += block.Text
		}
	}
	return textOrFallback(content), nil
}

// anthropicMessages builds the turn list: history in order, then the new user
// message as the final turn. The system instruction travels separately.
func anthropicMessages(message string, history []schema.Message) []anthropic.MessageParam {
	messages := make([]anthropic.MessageParam, 0, len(history)+1)
	for _, msg := range history {
		role := anthropic.MessageParamRoleUser
		if msg.Role == schema.RoleAssistant {
			role = anthropic.MessageParamRoleAssistant
		}
		messages = append(messages, anthropic.MessageParam{
			Role: anthropic.F(role),
			Content: anthropic.F([]anthropic.ContentBlockParamUnion{
				anthropic.TextBlockParam{
					Type: anthropic.F(anthropic.TextBlockParamTypeText),
					Text: anthropic.F(msg.Content),
				},
			}),
		})
	}
	messages = append(messages, anthropic.MessageParam{
		Role: anthropic.F(anthropic.MessageParamRoleUser),
		Content: anthropic.F([]anthropic.ContentBlockParamUnion{
			anthropic.TextBlockParam{
				Type: anthropic.F(anthropic.TextBlockParamTypeText),
				Text: anthropic.F(message),
			},
		}),
	})
	return messages
}

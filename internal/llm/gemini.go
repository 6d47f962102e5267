package llm

import (
	"context"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/qrtz-ai/chat-gateway/internal/schema"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiClient is the Google Gemini gateway.
type GeminiClient struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
	gm     *genai.GenerativeModel
}

// NewGeminiClient creates a Gemini client. The underlying SDK client is
// constructed on first Generate so a missing key surfaces as a ConfigError
// at call time rather than at startup.
func NewGeminiClient(apiKey, model string) *GeminiClient {
	if model == "" {
		model = defaultGeminiModel
	}
	return &GeminiClient{apiKey: apiKey, model: model}
}

// Name returns the provider name.
func (c *GeminiClient) Name() string {
	return "gemini"
}

// Generate sends the history plus the new message as a role-tagged chat and
// returns the reply text, or the fallback reply if the model returned none.
func (c *GeminiClient) Generate(ctx context.Context, message string, history []schema.Message) (string, error) {
	gm, err := c.generativeModel(ctx)
	if err != nil {
		return "", err
	}

	chat := gm.StartChat()
	chat.History = geminiHistory(history)

	resp, err := chat.SendMessage(ctx, genai.Text(message))
	if err != nil {
		return "", &ProviderError{Provider: c.Name(), Err: err}
	}

	return textOrFallback(geminiText(resp)), nil
}

func (c *GeminiClient) generativeModel(ctx context.Context) (*genai.GenerativeModel, error) {
	if c.apiKey == "" {
		return nil, &ConfigError{Provider: c.Name()}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gm != nil {
		return c.gm, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return nil, &ProviderError{Provider: c.Name(), Err: err}
	}

	gm := client.GenerativeModel(c.model)
	gm.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(SystemPrompt)},
	}

	c.client = client
	c.gm = gm
	return gm, nil
}

// geminiHistory maps schema messages to Gemini turns: user stays "user",
// assistant becomes "model". Order is preserved.
func geminiHistory(history []schema.Message) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, msg := range history {
		role := "user"
		if msg.Role == schema.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []genai.Part{genai.Text(msg.Content)},
		})
	}
	return contents
}

func geminiText(resp *genai.GenerateContentResponse) string {
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
	}
	return b.String()
}

// Close releases the underlying SDK client if one was created.
func (c *GeminiClient) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/AlexZinkM/impact-vault/internal/model"

	openai "github.com/sashabaranov/go-openai"
)

const defaultMaxTokens = 300

// CompletionClient sends chat conversations to an OpenAI-compatible
// chat-completion endpoint. The API key never leaves the server.
type CompletionClient struct {
	client *openai.Client
	model  string
}

// NewCompletionClient creates a completion client. An empty baseURL keeps
// the library's default endpoint.
func NewCompletionClient(apiKey, baseURL, model string) *CompletionClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &CompletionClient{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete returns the assistant's reply to messages
func (c *CompletionClient) Complete(ctx context.Context, messages []model.ChatMessage) (string, error) {
	apiMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, msg := range messages {
		apiMessages = append(apiMessages, openai.ChatCompletionMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		Messages:  apiMessages,
		MaxTokens: defaultMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}

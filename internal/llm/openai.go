package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/grygorii1976-hash/SHHS-chat-backend/pkg/logging"
)

const defaultModel = "gpt-4o-mini"

type chatClient interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIClient is the production Client backed by the OpenAI chat API.
type OpenAIClient struct {
	client  chatClient
	model   string
	timeout time.Duration
	logger  *logging.Logger
}

// NewOpenAIClient builds a client for the given API key.
func NewOpenAIClient(apiKey, model string, timeout time.Duration, logger *logging.Logger) (*OpenAIClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("llm: OpenAI API key is required")
	}
	return newOpenAIClient(openai.NewClient(apiKey), model, timeout, logger), nil
}

func newOpenAIClient(client chatClient, model string, timeout time.Duration, logger *logging.Logger) *OpenAIClient {
	if model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &OpenAIClient{
		client:  client,
		model:   model,
		timeout: timeout,
		logger:  logger,
	}
}

// Complete sends the conversation to OpenAI and returns the assistant reply.
func (c *OpenAIClient) Complete(ctx context.Context, messages []Message) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("llm: no messages to complete")
	}

	oaMessages := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		oaMessages = append(oaMessages, openai.ChatCompletionMessage{
			Role:    openAIRole(m.Role),
			Content: m.Content,
		})
	}

	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.CreateChatCompletion(callCtx, openai.ChatCompletionRequest{
		Model:    c.model,
		Messages: oaMessages,
	})
	if err != nil {
		return "", fmt.Errorf("llm: openai completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("llm: openai returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func openAIRole(role string) string {
	switch role {
	case RoleSystem:
		return openai.ChatMessageRoleSystem
	case RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}

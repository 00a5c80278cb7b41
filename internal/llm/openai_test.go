package llm

import (
	"context"
	"errors"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChatClient struct {
	gotReq openai.ChatCompletionRequest
	reply  string
	err    error
}

func (s *stubChatClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.gotReq = req
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: s.reply}},
		},
	}, nil
}

func TestCompleteMapsRolesAndTrims(t *testing.T) {
	stub := &stubChatClient{reply: "  Sure, what needs fixing?  "}
	c := newOpenAIClient(stub, "", 0, nil)

	reply, err := c.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "persona"},
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
		{Role: "customer", Content: "faucet leaks"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Sure, what needs fixing?", reply)

	require.Len(t, stub.gotReq.Messages, 4)
	assert.Equal(t, defaultModel, stub.gotReq.Model)
	assert.Equal(t, openai.ChatMessageRoleSystem, stub.gotReq.Messages[0].Role)
	assert.Equal(t, openai.ChatMessageRoleUser, stub.gotReq.Messages[1].Role)
	assert.Equal(t, openai.ChatMessageRoleAssistant, stub.gotReq.Messages[2].Role)
	// Unknown roles fall back to user.
	assert.Equal(t, openai.ChatMessageRoleUser, stub.gotReq.Messages[3].Role)
}

func TestCompletePropagatesErrors(t *testing.T) {
	stub := &stubChatClient{err: errors.New("rate limited")}
	c := newOpenAIClient(stub, "gpt-4o-mini", 0, nil)

	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCompleteRejectsEmptyInput(t *testing.T) {
	c := newOpenAIClient(&stubChatClient{reply: "x"}, "", 0, nil)
	_, err := c.Complete(context.Background(), nil)
	require.Error(t, err)
}

func TestNewOpenAIClientRequiresKey(t *testing.T) {
	_, err := NewOpenAIClient("  ", "", 0, nil)
	require.Error(t, err)

	c, err := NewOpenAIClient("sk-test", "gpt-4o", 0, nil)
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", c.model)
}

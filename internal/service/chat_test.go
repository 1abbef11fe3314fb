package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/adapter/llm"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/config"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/domain"
	store "github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/repository"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/service"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/tools"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/policy"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/tests/helpers"
)

// scriptedClient replays canned provider responses and records every
// request it receives.
type scriptedClient struct {
	responses []*llm.ChatCompletionResponse
	err       error
	requests  []*llm.ChatCompletionRequest
}

func (c *scriptedClient) CreateChatCompletion(ctx context.Context, req *llm.ChatCompletionRequest) (*llm.ChatCompletionResponse, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return nil, c.err
	}
	if len(c.responses) == 0 {
		return nil, fmt.Errorf("scripted client exhausted")
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func textResponse(content string) *llm.ChatCompletionResponse {
	return &llm.ChatCompletionResponse{
		Model: "gpt-4o",
		Choices: []llm.Choice{{
			Message:      &llm.ChatMessage{Role: "assistant", Content: content},
			FinishReason: "stop",
		}},
	}
}

func toolCallResponse(calls ...llm.ToolCall) *llm.ChatCompletionResponse {
	return &llm.ChatCompletionResponse{
		Model: "gpt-4o",
		Choices: []llm.Choice{{
			Message:      &llm.ChatMessage{Role: "assistant", ToolCalls: calls},
			FinishReason: "tool_calls",
		}},
	}
}

func newTestService(t *testing.T, client llm.LLMClient) (*service.Service, *store.SQLiteStore) {
	t.Helper()
	st := helpers.NewTestSQLiteStore(t)
	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	require.NoError(t, err)
	cfg := &config.Config{
		LLMModel:     "gpt-4o",
		LLMTimeout:   5 * time.Second,
		HistoryLimit: 20,
	}
	return service.New(st, client, tools.NewBuiltinRegistry(), engine, cfg), st
}

func TestSendMessageNoToolCalls(t *testing.T) {
	client := &scriptedClient{responses: []*llm.ChatCompletionResponse{
		textResponse("Hello! How can I help?"),
	}}
	svc, st := newTestService(t, client)
	ctx := context.Background()

	turn, err := svc.SendMessage(ctx, "hi there")
	require.NoError(t, err)

	assert.Equal(t, "Hello! How can I help?", turn.Message.Content)
	assert.Equal(t, domain.RoleAssistant, turn.Message.Role)
	assert.Nil(t, turn.Automation)

	// Only one model call, and it carried the tool schemas.
	require.Len(t, client.requests, 1)
	assert.Len(t, client.requests[0].Tools, 2)

	history, err := st.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "hi there", history[0].Content)
	assert.Equal(t, "Hello! How can I help?", history[1].Content)
}

func TestSendMessageContextShape(t *testing.T) {
	client := &scriptedClient{responses: []*llm.ChatCompletionResponse{
		textResponse("ok"),
	}}
	svc, _ := newTestService(t, client)

	_, err := svc.SendMessage(context.Background(), "what can you do?")
	require.NoError(t, err)

	msgs := client.requests[0].Messages
	require.NotEmpty(t, msgs)
	assert.Equal(t, domain.RoleSystem, msgs[0].Role)
	assert.Contains(t, msgs[0].Content, "dashboard")
	assert.Equal(t, domain.RoleUser, msgs[len(msgs)-1].Role)
	assert.Equal(t, "what can you do?", msgs[len(msgs)-1].Content)
}

func TestSendMessageOpenWebsite(t *testing.T) {
	client := &scriptedClient{responses: []*llm.ChatCompletionResponse{
		toolCallResponse(llm.ToolCall{
			ID:   "call_1",
			Type: "function",
			Function: llm.ToolCallFunction{
				Name:      "open_website",
				Arguments: `{"url":"https://example.com"}`,
			},
		}),
		textResponse("Opening example.com for you."),
	}}
	svc, st := newTestService(t, client)
	ctx := context.Background()

	turn, err := svc.SendMessage(ctx, "open example.com please")
	require.NoError(t, err)

	require.NotNil(t, turn.Automation)
	assert.Equal(t, domain.AutomationOpenURL, turn.Automation.Type)
	assert.Equal(t, "https://example.com", turn.Automation.URL)

	// The persisted reply is the second call's text, not the tool's
	// confirmation string.
	assert.Equal(t, "Opening example.com for you.", turn.Message.Content)

	require.Len(t, client.requests, 2)
	// Second call must carry the tool result and no tool schemas.
	second := client.requests[1]
	assert.Empty(t, second.Tools)
	last := second.Messages[len(second.Messages)-1]
	assert.Equal(t, domain.RoleTool, last.Role)
	assert.Equal(t, "call_1", last.ToolCallID)
	assert.Equal(t, "Website https://example.com has been requested to open.", last.Content)

	history, err := st.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Opening example.com for you.", history[1].Content)
}

func TestSendMessageSearchWeb(t *testing.T) {
	client := &scriptedClient{responses: []*llm.ChatCompletionResponse{
		toolCallResponse(llm.ToolCall{
			ID:   "call_1",
			Type: "function",
			Function: llm.ToolCallFunction{
				Name:      "search_web",
				Arguments: `{"query":"cats"}`,
			},
		}),
		textResponse("Cats are small carnivorous mammals."),
	}}
	svc, _ := newTestService(t, client)

	turn, err := svc.SendMessage(context.Background(), "tell me about cats")
	require.NoError(t, err)

	assert.Nil(t, turn.Automation)
	assert.Equal(t, "Cats are small carnivorous mammals.", turn.Message.Content)

	require.Len(t, client.requests, 2)
	second := client.requests[1]
	last := second.Messages[len(second.Messages)-1]
	assert.Equal(t, domain.RoleTool, last.Role)
	assert.Contains(t, last.Content, "cats")
	assert.Contains(t, last.Content, "https://en.wikipedia.org/wiki/Special:Search?search=cats")
}

func TestSendMessageMultipleToolCallsSequential(t *testing.T) {
	client := &scriptedClient{responses: []*llm.ChatCompletionResponse{
		toolCallResponse(
			llm.ToolCall{
				ID:       "call_1",
				Type:     "function",
				Function: llm.ToolCallFunction{Name: "search_web", Arguments: `{"query":"news"}`},
			},
			llm.ToolCall{
				ID:       "call_2",
				Type:     "function",
				Function: llm.ToolCallFunction{Name: "open_website", Arguments: `{"url":"https://a.example.com"}`},
			},
			llm.ToolCall{
				ID:       "call_3",
				Type:     "function",
				Function: llm.ToolCallFunction{Name: "open_website", Arguments: `{"url":"https://b.example.com"}`},
			},
		),
		textResponse("Done."),
	}}
	svc, _ := newTestService(t, client)

	turn, err := svc.SendMessage(context.Background(), "search the news and open both sites")
	require.NoError(t, err)

	// First open_website wins; the later one is not surfaced.
	require.NotNil(t, turn.Automation)
	assert.Equal(t, "https://a.example.com", turn.Automation.URL)

	// One tool message per call, in model order.
	second := client.requests[1]
	var toolMsgs []llm.ChatMessage
	for _, m := range second.Messages {
		if m.Role == domain.RoleTool {
			toolMsgs = append(toolMsgs, m)
		}
	}
	require.Len(t, toolMsgs, 3)
	assert.Equal(t, "call_1", toolMsgs[0].ToolCallID)
	assert.Equal(t, "call_2", toolMsgs[1].ToolCallID)
	assert.Equal(t, "call_3", toolMsgs[2].ToolCallID)
}

func TestSendMessageUnknownToolSkipped(t *testing.T) {
	client := &scriptedClient{responses: []*llm.ChatCompletionResponse{
		toolCallResponse(llm.ToolCall{
			ID:       "call_1",
			Type:     "function",
			Function: llm.ToolCallFunction{Name: "format_disk", Arguments: `{}`},
		}),
		textResponse("I can't do that."),
	}}
	svc, _ := newTestService(t, client)

	turn, err := svc.SendMessage(context.Background(), "format my disk")
	require.NoError(t, err)

	// Unknown tools are non-fatal: the turn completes with an error
	// result fed back to the model and no automation.
	assert.Nil(t, turn.Automation)
	assert.Equal(t, "I can't do that.", turn.Message.Content)

	second := client.requests[1]
	last := second.Messages[len(second.Messages)-1]
	assert.Equal(t, domain.RoleTool, last.Role)
	assert.Contains(t, last.Content, "format_disk")
}

func TestSendMessageMalformedToolArguments(t *testing.T) {
	client := &scriptedClient{responses: []*llm.ChatCompletionResponse{
		toolCallResponse(llm.ToolCall{
			ID:       "call_1",
			Type:     "function",
			Function: llm.ToolCallFunction{Name: "open_website", Arguments: `{"url":`},
		}),
		textResponse("Something went wrong with that."),
	}}
	svc, _ := newTestService(t, client)

	turn, err := svc.SendMessage(context.Background(), "open something")
	require.NoError(t, err)
	assert.Nil(t, turn.Automation)
	assert.Equal(t, "Something went wrong with that.", turn.Message.Content)
}

func TestSendMessageEmptyContentFallback(t *testing.T) {
	client := &scriptedClient{responses: []*llm.ChatCompletionResponse{
		textResponse(""),
	}}
	svc, st := newTestService(t, client)
	ctx := context.Background()

	turn, err := svc.SendMessage(ctx, "hello?")
	require.NoError(t, err)
	assert.Equal(t, "I'm sorry, I couldn't process that.", turn.Message.Content)

	history, err := st.ListMessages(ctx)
	require.NoError(t, err)
	assert.Equal(t, "I'm sorry, I couldn't process that.", history[1].Content)
}

func TestSendMessageEmptyInputRejected(t *testing.T) {
	client := &scriptedClient{}
	svc, st := newTestService(t, client)
	ctx := context.Background()

	for _, input := range []string{"", "   ", "\n\t"} {
		_, err := svc.SendMessage(ctx, input)
		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "message", vErr.Field)
	}

	// Rejected before any persistence or model call.
	assert.Empty(t, client.requests)
	history, err := st.ListMessages(ctx)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestSendMessageProviderErrorKeepsUserMessage(t *testing.T) {
	client := &scriptedClient{err: errors.New("connection refused")}
	svc, st := newTestService(t, client)
	ctx := context.Background()

	_, err := svc.SendMessage(ctx, "hello")
	var pErr *domain.ProviderError
	require.ErrorAs(t, err, &pErr)

	// The user's input survives the failed turn.
	history, err := st.ListMessages(ctx)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, domain.RoleUser, history[0].Role)
	assert.Equal(t, "hello", history[0].Content)
}

func TestSendMessageHistoryWindow(t *testing.T) {
	client := &scriptedClient{responses: []*llm.ChatCompletionResponse{
		textResponse("ok"),
	}}
	st := helpers.NewTestSQLiteStore(t)
	engine, err := policy.NewEngine(context.Background(), policy.DefaultPolicy)
	require.NoError(t, err)
	cfg := &config.Config{LLMModel: "gpt-4o", LLMTimeout: 5 * time.Second, HistoryLimit: 4}
	svc := service.New(st, client, tools.NewBuiltinRegistry(), engine, cfg)
	ctx := context.Background()

	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		msg := &domain.Message{Role: domain.RoleUser, Content: fmt.Sprintf("old %d", i), CreatedAt: base.Add(time.Duration(i) * time.Second)}
		require.NoError(t, st.CreateMessage(ctx, msg))
	}

	_, err = svc.SendMessage(ctx, "latest")
	require.NoError(t, err)

	// system prompt + last 4 persisted messages.
	msgs := client.requests[0].Messages
	require.Len(t, msgs, 5)
	assert.Equal(t, domain.RoleSystem, msgs[0].Role)
	assert.Equal(t, "old 7", msgs[1].Content)
	assert.Equal(t, "latest", msgs[4].Content)
}

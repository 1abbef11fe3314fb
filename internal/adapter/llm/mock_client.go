package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MockClient is a mock implementation of LLMClient for offline
// development and testing. It speaks the same two-phase protocol as a
// real provider: given tool schemas it may emit tool calls, and given
// tool results it produces a final text answer.
type MockClient struct{}

// NewMockClient creates a new mock LLM client.
func NewMockClient() *MockClient {
	return &MockClient{}
}

// Ensure MockClient implements LLMClient interface.
var _ LLMClient = (*MockClient)(nil)

// CreateChatCompletion returns a mock response.
func (m *MockClient) CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error) {
	msg := m.generateMockMessage(req)

	return &ChatCompletionResponse{
		ID:      fmt.Sprintf("mock-chatcmpl-%d", time.Now().UnixNano()),
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.Model,
		Choices: []Choice{
			{
				Index:        0,
				Message:      msg,
				FinishReason: finishReason(msg),
			},
		},
		Usage: &Usage{
			PromptTokens:     m.estimateTokens(req),
			CompletionTokens: len(msg.Content) / 4,
			TotalTokens:      m.estimateTokens(req) + len(msg.Content)/4,
		},
	}, nil
}

func finishReason(msg *ChatMessage) string {
	if len(msg.ToolCalls) > 0 {
		return "tool_calls"
	}
	return "stop"
}

// generateMockMessage generates a mock assistant message based on the
// request phase.
func (m *MockClient) generateMockMessage(req *ChatCompletionRequest) *ChatMessage {
	var lastUser, lastTool string
	for i := len(req.Messages) - 1; i >= 0; i-- {
		switch req.Messages[i].Role {
		case "user":
			if lastUser == "" {
				lastUser = req.Messages[i].Content
			}
		case "tool":
			if lastTool == "" {
				lastTool = req.Messages[i].Content
			}
		}
	}

	// Second phase: tool results are in context, answer from them.
	if lastTool != "" {
		return &ChatMessage{
			Role:    "assistant",
			Content: fmt.Sprintf("[MOCK] Based on the tool result: %s", truncate(lastTool, 120)),
		}
	}

	// First phase: emit a tool call when the user text asks for one.
	if len(req.Tools) > 0 {
		lower := strings.ToLower(lastUser)
		if strings.HasPrefix(lower, "open ") {
			url := strings.TrimSpace(lastUser[len("open "):])
			if !strings.Contains(url, "://") {
				url = "https://" + url
			}
			args, _ := json.Marshal(map[string]string{"url": url})
			return &ChatMessage{
				Role: "assistant",
				ToolCalls: []ToolCall{{
					ID:       "call_" + uuid.New().String()[:8],
					Type:     "function",
					Function: ToolCallFunction{Name: "open_website", Arguments: string(args)},
				}},
			}
		}
		if strings.HasPrefix(lower, "search ") {
			args, _ := json.Marshal(map[string]string{"query": strings.TrimSpace(lastUser[len("search "):])})
			return &ChatMessage{
				Role: "assistant",
				ToolCalls: []ToolCall{{
					ID:       "call_" + uuid.New().String()[:8],
					Type:     "function",
					Function: ToolCallFunction{Name: "search_web", Arguments: string(args)},
				}},
			}
		}
	}

	if lastUser == "" {
		return &ChatMessage{Role: "assistant", Content: "[MOCK] This is a mock response from the LLM client."}
	}
	return &ChatMessage{
		Role:    "assistant",
		Content: fmt.Sprintf("[MOCK] Received your message: %q. This is a mock response.", truncate(lastUser, 100)),
	}
}

// estimateTokens provides a rough token count estimate.
func (m *MockClient) estimateTokens(req *ChatCompletionRequest) int {
	total := 0
	for _, msg := range req.Messages {
		total += len(msg.Content) / 4
	}
	return total
}

// truncate truncates a string to the given length.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

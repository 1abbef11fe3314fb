package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/adapter/llm"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/domain"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/tools"
)

// systemPrompt describes the assistant's purpose and tool affordances.
const systemPrompt = "You are a helpful assistant for a dashboard app. " +
	"The user can access various websites via tiles. You help them find " +
	"information or navigate. Use the search_web tool to look things up " +
	"and the open_website tool to open a website for the user."

// fallbackReply is persisted when the model returns empty content.
const fallbackReply = "I'm sorry, I couldn't process that."

// ListMessages returns the full chat history in creation order.
func (s *Service) ListMessages(ctx context.Context) ([]domain.Message, error) {
	messages, err := s.store.ListMessages(ctx)
	if err != nil {
		return nil, &domain.StorageError{Op: "list messages", Err: err}
	}
	return messages, nil
}

// SendMessage runs one chat turn: persist the user's text, call the
// model with tool schemas, resolve any tool calls, call the model a
// second time without tools, persist the final answer and return it
// together with the automation directive, if any.
func (s *Service) SendMessage(ctx context.Context, text string) (*domain.ChatTurn, error) {
	// Rejected before any persistence or model call.
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("message", "message must not be empty")
	}

	// The user's input is persisted first so a failure later in the
	// turn never loses it.
	userMsg := &domain.Message{Role: domain.RoleUser, Content: text}
	if err := s.store.CreateMessage(ctx, userMsg); err != nil {
		return nil, &domain.StorageError{Op: "create user message", Err: err}
	}

	history, err := s.store.ListMessages(ctx)
	if err != nil {
		return nil, &domain.StorageError{Op: "list messages", Err: err}
	}
	msgs := s.buildContext(history)

	first, err := s.callModel(ctx, msgs, tools.Definitions())
	if err != nil {
		return nil, &domain.ProviderError{Op: "chat completion", Err: err}
	}

	var finalContent string
	var toolCalls []llm.ToolCall
	if m := firstChoiceMessage(first); m != nil {
		finalContent = m.Content
		toolCalls = m.ToolCalls
	}

	var automation *domain.AutomationDirective
	if len(toolCalls) > 0 {
		// One round of tool resolution, then a second call with no
		// tool schemas attached so the model cannot recurse.
		msgs = append(msgs, llm.ChatMessage{
			Role:      domain.RoleAssistant,
			ToolCalls: toolCalls,
		})
		for _, tc := range toolCalls {
			result, directive := s.resolveToolCall(ctx, tc)
			if automation == nil && directive != nil {
				automation = directive
			}
			msgs = append(msgs, llm.ChatMessage{
				Role:       domain.RoleTool,
				Content:    result,
				ToolCallID: tc.ID,
			})
		}

		second, err := s.callModel(ctx, msgs, nil)
		if err != nil {
			return nil, &domain.ProviderError{Op: "chat completion after tools", Err: err}
		}
		finalContent = ""
		if m := firstChoiceMessage(second); m != nil {
			finalContent = m.Content
		}
	}

	if finalContent == "" {
		finalContent = fallbackReply
	}

	aiMsg := &domain.Message{Role: domain.RoleAssistant, Content: finalContent}
	if err := s.store.CreateMessage(ctx, aiMsg); err != nil {
		return nil, &domain.StorageError{Op: "create assistant message", Err: err}
	}

	return &domain.ChatTurn{Message: *aiMsg, Automation: automation}, nil
}

// buildContext maps the last HistoryLimit persisted messages to model
// messages, prepended with the system instruction.
func (s *Service) buildContext(history []domain.Message) []llm.ChatMessage {
	if limit := s.config.HistoryLimit; limit > 0 && len(history) > limit {
		history = history[len(history)-limit:]
	}

	msgs := make([]llm.ChatMessage, 0, len(history)+1)
	msgs = append(msgs, llm.ChatMessage{Role: domain.RoleSystem, Content: systemPrompt})
	for _, m := range history {
		msgs = append(msgs, llm.ChatMessage{Role: m.Role, Content: m.Content})
	}
	return msgs
}

// callModel performs one provider call under the configured timeout.
func (s *Service) callModel(ctx context.Context, msgs []llm.ChatMessage, defs []llm.Tool) (*llm.ChatCompletionResponse, error) {
	requestID := "llm_" + uuid.New().String()[:8]
	start := time.Now()

	callCtx, cancel := context.WithTimeout(ctx, s.config.LLMTimeout)
	defer cancel()

	resp, err := s.llmClient.CreateChatCompletion(callCtx, &llm.ChatCompletionRequest{
		Model:    s.config.LLMModel,
		Messages: msgs,
		Tools:    defs,
	})

	latencyMs := time.Since(start).Milliseconds()
	if err != nil {
		log.Printf("ERROR: llm request %s failed after %dms: %v", requestID, latencyMs, err)
		return nil, err
	}
	log.Printf("INFO: llm request %s model=%s latency_ms=%d", requestID, resp.Model, latencyMs)
	return resp, nil
}

// resolveToolCall decodes and executes a single tool call. Failures
// are non-fatal: the error is logged and fed back to the model as the
// call's result text so the turn still completes.
func (s *Service) resolveToolCall(ctx context.Context, tc llm.ToolCall) (string, *domain.AutomationDirective) {
	name := tc.Function.Name

	args := map[string]string{}
	if tc.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			log.Printf("WARN: malformed arguments for tool %s (call %s): %v", name, tc.ID, err)
			return fmt.Sprintf("Error: could not parse arguments for tool %s.", name), nil
		}
	}

	decision, reason, err := s.policyEngine.Evaluate(ctx, map[string]interface{}{
		"tool_name": name,
		"args":      args,
	})
	if err != nil {
		log.Printf("WARN: policy evaluation for tool %s failed: %v", name, err)
		return fmt.Sprintf("Error: tool %s could not be evaluated.", name), nil
	}
	if decision != "allow" {
		log.Printf("WARN: tool %s blocked by policy (call %s): %s", name, tc.ID, reason)
		return fmt.Sprintf("Error: tool %s is not available.", name), nil
	}

	result, directive, err := s.tools.Execute(ctx, name, args)
	if err != nil {
		log.Printf("WARN: tool %s (call %s) failed: %v", name, tc.ID, err)
		return fmt.Sprintf("Error: tool %s failed: %v", name, err), nil
	}
	return result, directive
}

// firstChoiceMessage returns the first choice's message, or nil when
// the provider returned no choices.
func firstChoiceMessage(resp *llm.ChatCompletionResponse) *llm.ChatMessage {
	if resp == nil || len(resp.Choices) == 0 {
		return nil
	}
	return resp.Choices[0].Message
}

package llm

import "context"

// LLMClient defines the interface for chat model operations. The
// orchestrator treats any implementation as a black box: swap in any
// provider speaking this contract.
type LLMClient interface {
	// CreateChatCompletion sends a chat completion request.
	CreateChatCompletion(ctx context.Context, req *ChatCompletionRequest) (*ChatCompletionResponse, error)
}

// Ensure Client implements LLMClient interface.
var _ LLMClient = (*Client)(nil)

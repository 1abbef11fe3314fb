// Package tools implements the assistant's tool executors.
package tools

import (
	"context"
	"fmt"
	"sync"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/domain"
)

// ExecutorFunc runs a tool invocation. It returns the result text fed
// back into the model context and, when the tool triggers a frontend
// side effect, an automation directive.
type ExecutorFunc func(ctx context.Context, args map[string]string) (string, *domain.AutomationDirective, error)

// Registry stores tool executors keyed by tool name.
type Registry struct {
	mu        sync.RWMutex
	executors map[string]ExecutorFunc
}

// NewRegistry creates an empty tool executor registry.
func NewRegistry() *Registry {
	return &Registry{
		executors: make(map[string]ExecutorFunc),
	}
}

// Register adds a new executor for a tool name.
func (r *Registry) Register(toolName string, exec ExecutorFunc) error {
	if toolName == "" {
		return fmt.Errorf("tool name is required")
	}
	if exec == nil {
		return fmt.Errorf("executor is required")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.executors[toolName]; exists {
		return fmt.Errorf("executor already registered for %s", toolName)
	}
	r.executors[toolName] = exec
	return nil
}

// MustRegister adds an executor or panics.
func (r *Registry) MustRegister(toolName string, exec ExecutorFunc) {
	if err := r.Register(toolName, exec); err != nil {
		panic(err)
	}
}

// Execute runs the executor for the tool name. Unregistered names
// return domain.ErrUnknownTool; callers treat that as non-fatal.
func (r *Registry) Execute(ctx context.Context, toolName string, args map[string]string) (string, *domain.AutomationDirective, error) {
	if toolName == "" {
		return "", nil, fmt.Errorf("tool name is required")
	}
	r.mu.RLock()
	exec := r.executors[toolName]
	r.mu.RUnlock()
	if exec == nil {
		return "", nil, fmt.Errorf("%w: %s", domain.ErrUnknownTool, toolName)
	}
	return exec(ctx, args)
}

// Package service implements the dashboard's business logic.
package service

import (
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/adapter/llm"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/config"
	store "github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/repository"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/tools"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/policy"
)

type Service struct {
	store        store.Store
	llmClient    llm.LLMClient
	tools        *tools.Registry
	policyEngine *policy.Engine
	config       *config.Config
}

func New(store store.Store, llmClient llm.LLMClient, registry *tools.Registry, policyEngine *policy.Engine, cfg *config.Config) *Service {
	return &Service{
		store:        store,
		llmClient:    llmClient,
		tools:        registry,
		policyEngine: policyEngine,
		config:       cfg,
	}
}

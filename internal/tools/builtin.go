package tools

import (
	"context"
	"fmt"
	"net/url"

	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/adapter/llm"
	"github.com/kaijieshee28-rgb/chat-ai-dashboard/internal/domain"
)

// NewBuiltinRegistry returns a registry with the dashboard's two tools.
func NewBuiltinRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(domain.ToolSearchWeb, searchWeb)
	r.MustRegister(domain.ToolOpenWebsite, openWebsite)
	return r
}

// searchWeb is a deterministic stand-in for a real search engine. It
// never performs network I/O and never fails.
func searchWeb(ctx context.Context, args map[string]string) (string, *domain.AutomationDirective, error) {
	query, ok := args["query"]
	if !ok || query == "" {
		return "", nil, fmt.Errorf("missing required argument %q", "query")
	}

	result := fmt.Sprintf(`Search results for "%s":

1. %s - Wikipedia
   https://en.wikipedia.org/wiki/Special:Search?search=%s
2. Latest news and updates about %s
3. %s - frequently asked questions

These are synthesized results; summarize them for the user.`,
		query, query, url.QueryEscape(query), query, query)

	return result, nil, nil
}

// openWebsite confirms the request and emits the open_url directive
// the frontend acts on. The url is passed through unvalidated.
func openWebsite(ctx context.Context, args map[string]string) (string, *domain.AutomationDirective, error) {
	target, ok := args["url"]
	if !ok || target == "" {
		return "", nil, fmt.Errorf("missing required argument %q", "url")
	}

	directive := &domain.AutomationDirective{
		Type: domain.AutomationOpenURL,
		URL:  target,
	}
	return fmt.Sprintf("Website %s has been requested to open.", target), directive, nil
}

// Definitions returns the tool schemas attached to the first model
// call of each turn.
func Definitions() []llm.Tool {
	return []llm.Tool{
		{
			Type: "function",
			Function: llm.ToolFunction{
				Name:        domain.ToolSearchWeb,
				Description: "Search the web for information and return a list of results.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"query": map[string]interface{}{
							"type":        "string",
							"description": "The search query",
						},
					},
					"required": []string{"query"},
				},
			},
		},
		{
			Type: "function",
			Function: llm.ToolFunction{
				Name:        domain.ToolOpenWebsite,
				Description: "Open a website in the user's browser.",
				Parameters: map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"url": map[string]interface{}{
							"type":        "string",
							"description": "The URL to open",
						},
					},
					"required": []string{"url"},
				},
			},
		},
	}
}

package policy

import (
	"context"
	"testing"
)

func TestDefaultPolicyAllowsKnownTools(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	for _, tool := range []string{"search_web", "open_website"} {
		decision, _, err := engine.Evaluate(ctx, map[string]interface{}{
			"tool_name": tool,
			"args":      map[string]string{},
		})
		if err != nil {
			t.Fatalf("Evaluate(%s) failed: %v", tool, err)
		}
		if decision != "allow" {
			t.Fatalf("expected allow for %s, got %s", tool, decision)
		}
	}
}

func TestDefaultPolicyBlocksUnknownTools(t *testing.T) {
	ctx := context.Background()
	engine, err := NewEngine(ctx, DefaultPolicy)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	decision, _, err := engine.Evaluate(ctx, map[string]interface{}{
		"tool_name": "run_shell",
		"args":      map[string]string{"cmd": "rm -rf /"},
	})
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}
	if decision != "block" {
		t.Fatalf("expected block, got %s", decision)
	}
}

// Package domain defines the core domain models for the dashboard.
package domain

import "time"

// Message represents a single persisted chat turn.
// Only user and assistant roles are ever stored; system and tool roles
// exist transiently in the orchestrator's model context.
type Message struct {
	ID        int64     `json:"id"`
	Role      string    `json:"role"` // user, assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleSystem    = "system"
	RoleTool      = "tool"
)

// Tile represents a shortcut entry on the dashboard grid.
type Tile struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`  // icon name resolved by the frontend registry
	Color string `json:"color"` // CSS color class or hex
}

// TileInput is the client payload for creating a tile.
type TileInput struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// Tool names the model is allowed to call.
const (
	ToolSearchWeb   = "search_web"
	ToolOpenWebsite = "open_website"
)

// AutomationType is the kind of automation directive.
type AutomationType string

// AutomationOpenURL is the only automation kind currently defined.
const AutomationOpenURL AutomationType = "open_url"

// AutomationDirective is a machine-actionable instruction returned
// alongside the chat reply. The frontend must navigate to URL when
// Type is open_url.
type AutomationDirective struct {
	Type AutomationType `json:"type"`
	URL  string         `json:"url"`
}

// ToolInvocation is a decoded tool call from the model. Transient,
// never persisted.
type ToolInvocation struct {
	CallID    string
	Name      string
	Arguments map[string]string
}

// ChatTurn is the result of one completed chat turn: the persisted
// assistant message plus an optional automation directive extracted
// from the model's tool calls.
type ChatTurn struct {
	Message    Message              `json:"message"`
	Automation *AutomationDirective `json:"automation,omitempty"`
}

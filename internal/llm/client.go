// Package llm defines the client contract for the language models backing the
// assistant, plus the Gemini and Ollama implementations.
package llm

import (
	"context"

	"github.com/jmbarreiro1/mcp-weather/internal/tools"
)

// Role identifies the originator of a conversation message.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleTool      Role = "tool"
)

// Message is a single entry in a conversation history.
type Message struct {
	Role       Role              `json:"role"`
	Content    string            `json:"content"`
	ToolCallID string            `json:"tool_call_id,omitempty"`
	ToolCalls  []*tools.ToolCall `json:"tool_calls,omitempty"`
}

// GenerationConfig controls a single generation request. Temperature and TopP
// are pointers so an unset value can be told apart from an explicit zero.
type GenerationConfig struct {
	Model       string
	Temperature *float32
	TopP        *float32
	MaxTokens   int
}

// Usage tracks token counts for a generation request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Add accumulates another request's usage, used across tool-loop rounds.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
}

// GenerationResult is the complete output of one model call.
type GenerationResult struct {
	Content   string
	ToolCalls []*tools.ToolCall
	Usage     Usage
}

// LLMClient is the universal interface the agent works against; concrete
// clients translate to and from their provider's wire format.
type LLMClient interface {
	Generate(
		ctx context.Context,
		messages []Message,
		config *GenerationConfig,
		availableTools []tools.Tool,
	) (*GenerationResult, error)
}

package tools

import "context"

// ToolExecutor is the interface every tool implements so the agent can manage
// and run tools without knowing their internals.
type ToolExecutor interface {
	// Definition returns the schema handed to the LLM.
	Definition() Tool

	// Execute runs the tool. Arguments arrive as the JSON string the LLM
	// generated against the tool's schema; the returned string goes back to
	// the LLM verbatim. User-correctable problems (unknown city, empty
	// input) should be returned as a message with a nil error so the model
	// can relay them.
	Execute(ctx context.Context, arguments string) (string, error)
}

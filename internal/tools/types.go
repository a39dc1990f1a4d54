// Package tools defines the function-calling contract between the assistant's
// LLM and its two capabilities: weather lookup and activity recommendation.
// The types are a provider-agnostic JSON Schema representation that each LLM
// client translates into its own wire format.
package tools

// ToolTypeFunction is the standard type for function-based tools.
const ToolTypeFunction = "function"

// Tool is the schema sent to the model so it knows a function exists.
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function names and describes a callable tool. The description is what the
// model reads when deciding whether to call it.
type Function struct {
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Parameters  JSONSchema `json:"parameters"`
}

// JSONSchema is a minimal, typed subset of JSON Schema covering what tool
// parameter definitions need.
type JSONSchema struct {
	Type        string                 `json:"type"`
	Description string                 `json:"description,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Required    []string               `json:"required,omitempty"`
}

// ToolCall is a request from the model to run a tool with given arguments.
type ToolCall struct {
	// ID ties the execution result back to this call in the conversation.
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction carries the name and JSON-encoded arguments of a call.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// NewFunctionTool builds a Tool with the correct function type set.
func NewFunctionTool(name, description string, parameters JSONSchema) Tool {
	return Tool{
		Type: ToolTypeFunction,
		Function: Function{
			Name:        name,
			Description: description,
			Parameters:  parameters,
		},
	}
}

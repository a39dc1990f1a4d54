package tools

import (
	"context"
	"fmt"
)

// ToolManager is the registry of available tools, keyed by function name.
type ToolManager struct {
	tools map[string]ToolExecutor
}

func NewToolManager() *ToolManager {
	return &ToolManager{tools: make(map[string]ToolExecutor)}
}

// Register adds a tool under its definition's function name.
func (tm *ToolManager) Register(tool ToolExecutor) {
	tm.tools[tool.Definition().Function.Name] = tool
}

// Definitions returns every registered tool's schema.
func (tm *ToolManager) Definitions() []Tool {
	defs := make([]Tool, 0, len(tm.tools))
	for _, tool := range tm.tools {
		defs = append(defs, tool.Definition())
	}
	return defs
}

// Execute runs a tool by name with the given arguments.
func (tm *ToolManager) Execute(ctx context.Context, name, arguments string) (string, error) {
	tool, ok := tm.tools[name]
	if !ok {
		return "", fmt.Errorf("tool %q not found", name)
	}
	return tool.Execute(ctx, arguments)
}

// Count returns the number of registered tools.
func (tm *ToolManager) Count() int {
	return len(tm.tools)
}

package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoTool struct{ name string }

func (e *echoTool) Definition() Tool {
	return NewFunctionTool(e.name, "echoes its arguments", JSONSchema{Type: "object"})
}

func (e *echoTool) Execute(_ context.Context, arguments string) (string, error) {
	return arguments, nil
}

func TestManagerRegisterAndExecute(t *testing.T) {
	m := NewToolManager()
	m.Register(&echoTool{name: "echo"})

	assert.Equal(t, 1, m.Count())

	out, err := m.Execute(context.Background(), "echo", `{"x":1}`)
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, out)
}

func TestManagerUnknownTool(t *testing.T) {
	m := NewToolManager()
	_, err := m.Execute(context.Background(), "missing", "{}")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing")
}

func TestManagerDefinitions(t *testing.T) {
	m := NewToolManager()
	m.Register(&echoTool{name: "a"})
	m.Register(&echoTool{name: "b"})

	defs := m.Definitions()
	require.Len(t, defs, 2)
	names := []string{defs[0].Function.Name, defs[1].Function.Name}
	assert.ElementsMatch(t, []string{"a", "b"}, names)
	for _, d := range defs {
		assert.Equal(t, ToolTypeFunction, d.Type)
	}
}

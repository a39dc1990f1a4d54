// Package agent runs the LLM-driven conversation loop: it classifies the
// user's intent, hands tool-capable prompts to the model, executes the tool
// calls the model requests, and keeps conversation memory in the session
// store.
package agent

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jmbarreiro1/mcp-weather/internal/llm"
	"github.com/jmbarreiro1/mcp-weather/internal/session"
	"github.com/jmbarreiro1/mcp-weather/internal/tools"
)

// maxToolRounds caps how many generate/execute cycles a single turn may take.
const maxToolRounds = 5

// Agent orchestrates one conversational turn at a time.
type Agent struct {
	client   llm.LLMClient
	model    string
	manager  *tools.ToolManager
	sessions *session.Store
}

// New builds an agent. sessions may be nil, in which case every turn is
// stateless.
func New(client llm.LLMClient, model string, manager *tools.ToolManager, sessions *session.Store) *Agent {
	return &Agent{
		client:   client,
		model:    model,
		manager:  manager,
		sessions: sessions,
	}
}

// Respond answers a user prompt, running the tool loop as needed. When a
// conversation ID is given and a session store is configured, the stored
// transcript is replayed to the model and the new exchange is appended.
func (a *Agent) Respond(ctx context.Context, conversationID, prompt string) (string, llm.Usage, error) {
	messages := []llm.Message{{Role: llm.RoleSystem, Content: systemPrompt}}
	if a.sessions != nil {
		messages = append(messages, a.sessions.History(ctx, conversationID)...)
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: prompt})

	config := &llm.GenerationConfig{Model: a.model}

	var cumulative llm.Usage
	for round := 0; round < maxToolRounds; round++ {
		result, err := a.client.Generate(ctx, messages, config, a.manager.Definitions())
		if err != nil {
			return "", cumulative, fmt.Errorf("LLM generation failed: %w", err)
		}
		cumulative.Add(result.Usage)

		if len(result.ToolCalls) == 0 {
			if a.sessions != nil {
				a.sessions.Append(ctx, conversationID,
					llm.Message{Role: llm.RoleUser, Content: prompt},
					llm.Message{Role: llm.RoleAssistant, Content: result.Content},
				)
			}
			return result.Content, cumulative, nil
		}

		messages = append(messages, llm.Message{
			Role:      llm.RoleAssistant,
			Content:   result.Content,
			ToolCalls: result.ToolCalls,
		})
		for _, call := range result.ToolCalls {
			log.Printf("🛠️ Executing tool: %s with args: %s", call.Function.Name, call.Function.Arguments)
			output, err := a.manager.Execute(ctx, call.Function.Name, call.Function.Arguments)
			if err != nil {
				output = fmt.Sprintf("Error executing tool %s: %v", call.Function.Name, err)
			}
			messages = append(messages, llm.Message{
				Role:       llm.RoleTool,
				ToolCallID: call.ID,
				Content:    output,
			})
		}
	}
	return "", cumulative, errors.New("exceeded maximum number of tool calls")
}

// ClearSession drops the stored transcript for a conversation. It is a no-op
// without a session store.
func (a *Agent) ClearSession(ctx context.Context, conversationID string) {
	if a.sessions != nil {
		a.sessions.Clear(ctx, conversationID)
	}
}

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jmbarreiro1/mcp-weather/internal/tools"
)

const defaultOllamaHost = "http://localhost:11434"

// OllamaClient talks to a locally running Ollama server through its /api/chat
// endpoint. It lets the assistant run fully offline against models like
// llama3.
type OllamaClient struct {
	host       string
	httpClient *http.Client
}

var _ LLMClient = (*OllamaClient)(nil)

func NewOllamaClient(host string) *OllamaClient {
	if host == "" {
		host = defaultOllamaHost
	}
	return &OllamaClient{
		host: host,
		// Local generation on CPU can be slow; give it a generous ceiling.
		httpClient: &http.Client{Timeout: 120 * time.Second},
	}
}

// --- wire format ---

type ollamaRequest struct {
	Model    string          `json:"model"`
	Messages []ollamaMessage `json:"messages"`
	Tools    []ollamaTool    `json:"tools,omitempty"`
	Stream   bool            `json:"stream"`
	Options  *ollamaOptions  `json:"options,omitempty"`
}

type ollamaMessage struct {
	Role      string           `json:"role"`
	Content   string           `json:"content"`
	ToolCalls []ollamaToolCall `json:"tool_calls,omitempty"`
}

type ollamaToolCall struct {
	Function struct {
		Name string `json:"name"`
		// Ollama sends arguments as a JSON object, not an encoded string.
		Arguments json.RawMessage `json:"arguments"`
	} `json:"function"`
}

type ollamaTool struct {
	Type     string         `json:"type"`
	Function tools.Function `json:"function"`
}

type ollamaOptions struct {
	Temperature *float32 `json:"temperature,omitempty"`
	TopP        *float32 `json:"top_p,omitempty"`
	NumPredict  int      `json:"num_predict,omitempty"`
}

type ollamaResponse struct {
	Message         ollamaMessage `json:"message"`
	Done            bool          `json:"done"`
	PromptEvalCount int           `json:"prompt_eval_count"`
	EvalCount       int           `json:"eval_count"`
}

func (c *OllamaClient) Generate(
	ctx context.Context,
	messages []Message,
	config *GenerationConfig,
	availableTools []tools.Tool,
) (*GenerationResult, error) {
	payload, err := buildOllamaPayload(messages, config, availableTools)
	if err != nil {
		return nil, fmt.Errorf("failed to build ollama request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.host+"/api/chat", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama request failed (is Ollama running?): %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ollama response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ollama API error: status %d, body: %s", resp.StatusCode, string(body))
	}
	return parseOllamaResponse(body)
}

func buildOllamaPayload(messages []Message, config *GenerationConfig, availableTools []tools.Tool) ([]byte, error) {
	req := ollamaRequest{
		Model:    config.Model,
		Messages: toOllamaMessages(messages),
		Stream:   false,
	}
	for _, t := range availableTools {
		req.Tools = append(req.Tools, ollamaTool{Type: tools.ToolTypeFunction, Function: t.Function})
	}
	if config.Temperature != nil || config.TopP != nil || config.MaxTokens > 0 {
		req.Options = &ollamaOptions{
			Temperature: config.Temperature,
			TopP:        config.TopP,
			NumPredict:  config.MaxTokens,
		}
	}
	return json.Marshal(req)
}

func toOllamaMessages(messages []Message) []ollamaMessage {
	out := make([]ollamaMessage, 0, len(messages))
	for _, msg := range messages {
		out = append(out, ollamaMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}
	return out
}

func parseOllamaResponse(body []byte) (*GenerationResult, error) {
	var resp ollamaResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ollama response: %w", err)
	}
	if !resp.Done {
		return nil, errors.New("ollama returned an incomplete response")
	}

	result := &GenerationResult{
		Content: resp.Message.Content,
		Usage: Usage{
			PromptTokens:     resp.PromptEvalCount,
			CompletionTokens: resp.EvalCount,
			TotalTokens:      resp.PromptEvalCount + resp.EvalCount,
		},
	}
	for i, tc := range resp.Message.ToolCalls {
		result.ToolCalls = append(result.ToolCalls, &tools.ToolCall{
			ID:   fmt.Sprintf("ollama-toolcall-%d-%s", i, tc.Function.Name),
			Type: tools.ToolTypeFunction,
			Function: tools.ToolCallFunction{
				Name:      tc.Function.Name,
				Arguments: string(tc.Function.Arguments),
			},
		})
	}
	return result, nil
}

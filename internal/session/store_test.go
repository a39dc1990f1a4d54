package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/jmbarreiro1/mcp-weather/internal/llm"
)

func makeMessages(n int) []llm.Message {
	messages := make([]llm.Message, n)
	for i := range messages {
		messages[i] = llm.Message{Role: llm.RoleUser, Content: fmt.Sprintf("msg-%d", i)}
	}
	return messages
}

func TestTruncateUnderLimit(t *testing.T) {
	messages := makeMessages(5)
	assert.Equal(t, messages, Truncate(messages, 20))
}

func TestTruncateAtLimit(t *testing.T) {
	messages := makeMessages(20)
	assert.Len(t, Truncate(messages, 20), 20)
}

func TestTruncateKeepsMostRecent(t *testing.T) {
	messages := makeMessages(25)
	got := Truncate(messages, 20)
	assert.Len(t, got, 20)
	assert.Equal(t, "msg-5", got[0].Content)
	assert.Equal(t, "msg-24", got[19].Content)
}

func TestTruncateZeroLimitKeepsAll(t *testing.T) {
	messages := makeMessages(3)
	assert.Equal(t, messages, Truncate(messages, 0))
}

func TestStoreRedisUnreachableDegradesGracefully(t *testing.T) {
	// Nothing listens on port 1; every command must fail fast and the store
	// must swallow it so the chat continues stateless.
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	store := NewStore(rdb)
	ctx := context.Background()

	assert.Empty(t, store.History(ctx, "conv"))
	store.Append(ctx, "conv",
		llm.Message{Role: llm.RoleUser, Content: "hi"},
		llm.Message{Role: llm.RoleAssistant, Content: "hello"},
	)
	store.Clear(ctx, "conv")
	assert.Empty(t, store.History(ctx, "conv"))
}

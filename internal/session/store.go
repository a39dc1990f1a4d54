// Package session keeps per-conversation message history in Redis so the
// assistant has memory across turns. Weather observations are never stored
// here, only the chat transcript.
package session

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jmbarreiro1/mcp-weather/internal/llm"
	"github.com/jmbarreiro1/mcp-weather/internal/version"
)

const (
	defaultTTL     = 1 * time.Hour
	defaultHistory = 20
)

// Store is a Redis-backed conversation memory. All methods degrade
// gracefully: a Redis outage logs a warning and the chat continues
// stateless rather than failing the user's request.
type Store struct {
	rdb   *redis.Client
	ttl   time.Duration
	limit int
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, ttl: defaultTTL, limit: defaultHistory}
}

// History returns the stored transcript for a conversation, oldest first.
// Unknown conversations and Redis errors both yield an empty history.
func (s *Store) History(ctx context.Context, conversationID string) []llm.Message {
	if conversationID == "" {
		return nil
	}
	raw, err := s.rdb.Get(ctx, version.SessionKey(conversationID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("WARNING: failed to load session %s: %v", conversationID, err)
		}
		return nil
	}
	var messages []llm.Message
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		log.Printf("WARNING: corrupt session %s, starting fresh: %v", conversationID, err)
		return nil
	}
	return messages
}

// Append adds messages to a conversation, trims the transcript to the
// retention limit, and refreshes the TTL.
func (s *Store) Append(ctx context.Context, conversationID string, messages ...llm.Message) {
	if conversationID == "" || len(messages) == 0 {
		return
	}
	history := Truncate(append(s.History(ctx, conversationID), messages...), s.limit)
	raw, err := json.Marshal(history)
	if err != nil {
		log.Printf("WARNING: failed to encode session %s: %v", conversationID, err)
		return
	}
	if err := s.rdb.Set(ctx, version.SessionKey(conversationID), raw, s.ttl).Err(); err != nil {
		log.Printf("WARNING: failed to save session %s: %v", conversationID, err)
	}
}

// Clear deletes a conversation's transcript.
func (s *Store) Clear(ctx context.Context, conversationID string) {
	if conversationID == "" {
		return
	}
	if err := s.rdb.Del(ctx, version.SessionKey(conversationID)).Err(); err != nil {
		log.Printf("WARNING: failed to clear session %s: %v", conversationID, err)
	}
}

// Truncate keeps the most recent limit messages.
func Truncate(messages []llm.Message, limit int) []llm.Message {
	if limit <= 0 || len(messages) <= limit {
		return messages
	}
	return messages[len(messages)-limit:]
}

package session

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"reelsmith/config"
	"reelsmith/types"

	"github.com/redis/go-redis/v9"
)

// State is everything a client accumulates while composing a render: the
// last search, the asset they picked, and any extracted keywords. It is
// snapshotted wholesale on every save.
type State struct {
	ID        string                    `json:"id"`
	Query     string                    `json:"query,omitempty"`
	Results   []types.Asset             `json:"results,omitempty"`
	Selected  *types.Asset              `json:"selected,omitempty"`
	Keywords  []types.KeywordSuggestion `json:"keywords,omitempty"`
	Draft     *types.RenderRequest      `json:"draft,omitempty"`
	UpdatedAt time.Time                 `json:"updated_at"`
}

// Store persists session state across requests.
type Store interface {
	Load(ctx context.Context, id string) (*State, error)
	Save(ctx context.Context, s *State) error
}

// NewStoreFromEnv returns a Redis-backed store when REDIS_ADDR points at a
// reachable server, otherwise an in-process map.
func NewStoreFromEnv() Store {
	addr := config.GetEnvOrDefault("REDIS_ADDR", "")
	if addr == "" {
		return NewMemoryStore()
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.GetEnvOrDefault("REDIS_PASS", ""),
		DB:       config.GetEnvIntOrDefault("REDIS_DB", 0),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("⚠️  Redis at %s unreachable (%v); sessions are in-process only", addr, err)
		return NewMemoryStore()
	}
	return &redisStore{client: client}
}

type redisStore struct {
	client *redis.Client
}

func (s *redisStore) Load(ctx context.Context, id string) (*State, error) {
	b, err := s.client.Get(ctx, "session:"+id).Bytes()
	if err == redis.Nil {
		return &State{ID: id}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	var state State
	if err := json.Unmarshal(b, &state); err != nil {
		return nil, fmt.Errorf("failed to decode session %s: %w", id, err)
	}
	return &state, nil
}

func (s *redisStore) Save(ctx context.Context, state *State) error {
	state.UpdatedAt = time.Now()
	b, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to encode session %s: %w", state.ID, err)
	}
	if err := s.client.Set(ctx, "session:"+state.ID, b, config.SessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", state.ID, err)
	}
	return nil
}

// MemoryStore keeps sessions in a map. Entries expire lazily on load.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
}

type memoryEntry struct {
	state   State
	expires time.Time
}

// NewMemoryStore creates an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Load(_ context.Context, id string) (*State, error) {
	s.mu.RLock()
	e, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok || time.Now().After(e.expires) {
		return &State{ID: id}, nil
	}
	state := e.state
	return &state, nil
}

func (s *MemoryStore) Save(_ context.Context, state *State) error {
	state.UpdatedAt = time.Now()
	s.mu.Lock()
	s.sessions[state.ID] = memoryEntry{state: *state, expires: time.Now().Add(config.SessionTTL)}
	s.mu.Unlock()
	return nil
}

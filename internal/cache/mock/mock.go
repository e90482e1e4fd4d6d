package mock

import (
	"context"
	"encoding/json"
	"sync"

	"vantageassess/internal/cache"
	"vantageassess/internal/model"
)

// SessionCache is an in-memory cache.SessionCache for testing. Sessions are
// stored as JSON so tests exercise the same encoding as Redis.
type SessionCache struct {
	mu        sync.Mutex
	sessions  map[string][]byte
	conflicts int
}

var _ cache.SessionCache = (*SessionCache)(nil)

// NewSessionCache creates an empty cache
func NewSessionCache() *SessionCache {
	return &SessionCache{sessions: make(map[string][]byte)}
}

func (c *SessionCache) Set(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sessions[session.ID] = data
	return nil
}

func (c *SessionCache) Get(ctx context.Context, id string) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(id)
}

// FailUpdates makes the next n calls to Update return cache.ErrConflict,
// as Redis does when a watched session keeps changing.
func (c *SessionCache) FailUpdates(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.conflicts = n
}

func (c *SessionCache) Update(ctx context.Context, id string, fn cache.UpdateFunc) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conflicts > 0 {
		c.conflicts--
		return nil, cache.ErrConflict
	}

	current, err := c.load(id)
	if err != nil {
		return nil, err
	}
	next, err := fn(current)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}
	c.sessions[id] = data
	return next, nil
}

func (c *SessionCache) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, id)
	return nil
}

func (c *SessionCache) load(id string) (*model.Session, error) {
	data, ok := c.sessions[id]
	if !ok {
		return nil, nil
	}
	var s model.Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

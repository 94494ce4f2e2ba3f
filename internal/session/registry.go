package session

import (
	"hash/fnv"
	"sync"
	"time"
)

const shardCount = 16

type shard struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// Registry is a sharded call-id -> Session store. Calls are independent
// partitions: operations on one call-id never touch another's data, and
// distinct ids can be mutated concurrently from different connections.
type Registry struct {
	shards [shardCount]*shard
}

func NewRegistry() *Registry {
	r := &Registry{}
	for i := range r.shards {
		r.shards[i] = &shard{sessions: make(map[string]*Session)}
	}
	return r
}

func (r *Registry) shardFor(callID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(callID))
	return r.shards[h.Sum32()%shardCount]
}

// GetOrCreate returns the session for callID, creating a fresh one on first
// sight. A re-used id after Remove gets a brand-new session.
func (r *Registry) GetOrCreate(callID string) *Session {
	sh := r.shardFor(callID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	return sh.getOrCreateLocked(callID)
}

func (sh *shard) getOrCreateLocked(callID string) *Session {
	if s, ok := sh.sessions[callID]; ok {
		return s
	}
	s := &Session{
		CallID:    callID,
		State:     StateGreeting,
		StartedAt: time.Now(),
	}
	sh.sessions[callID] = s
	return s
}

// Update runs fn on callID's session under the shard lock, creating the
// session if needed. This is the single mutation point for a call.
func (r *Registry) Update(callID string, fn func(*Session)) {
	sh := r.shardFor(callID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	fn(sh.getOrCreateLocked(callID))
}

// Remove drops the session and returns it, or nil if the id was absent.
// Safe to call for unknown ids.
func (r *Registry) Remove(callID string) *Session {
	sh := r.shardFor(callID)
	sh.mu.Lock()
	defer sh.mu.Unlock()
	s := sh.sessions[callID]
	delete(sh.sessions, callID)
	return s
}

// Count returns the number of active calls.
func (r *Registry) Count() int {
	n := 0
	for _, sh := range r.shards {
		sh.mu.RLock()
		n += len(sh.sessions)
		sh.mu.RUnlock()
	}
	return n
}

// CallInfo is the read-only view exposed on /stats.
type CallInfo struct {
	State        State     `json:"state"`
	Track        string    `json:"track"`
	MessageCount int       `json:"message_count"`
	StartedAt    time.Time `json:"started_at"`
	AgeSeconds   int64     `json:"age_seconds"`
}

// Snapshot copies the registry's current call details.
func (r *Registry) Snapshot() map[string]CallInfo {
	out := make(map[string]CallInfo)
	now := time.Now()
	for _, sh := range r.shards {
		sh.mu.RLock()
		for id, s := range sh.sessions {
			out[id] = CallInfo{
				State:        s.State,
				Track:        string(s.Track),
				MessageCount: s.MessageCount,
				StartedAt:    s.StartedAt,
				AgeSeconds:   int64(now.Sub(s.StartedAt).Seconds()),
			}
		}
		sh.mu.RUnlock()
	}
	return out
}

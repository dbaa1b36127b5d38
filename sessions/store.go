package sessions

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"acelerador/models"
)

const (
	// KeyPrefix matches the legacy session cache keys so tokens issued
	// before a deploy keep resolving
	KeyPrefix = "user_session:"

	// DefaultTTL bounds how long an idle session survives
	DefaultTTL = 24 * time.Hour
)

// Session is the server-side state bound to a bearer token: the user
// snapshot and, for equipe logins, the resolved team.
type Session struct {
	User   models.Usuario `json:"user"`
	Equipe *models.Equipe `json:"equipe,omitempty"`
}

// Tier is one persistence layer of the store. The redis tier is durable
// across restarts; the memory tier keeps sessions usable when redis is down.
type Tier interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key, value string, ttl time.Duration)
	Del(ctx context.Context, key string)
}

// Store persists sessions across two tiers. Writes go to both; reads prefer
// the durable tier and fall back to the in-process one.
type Store struct {
	primary  Tier
	fallback Tier
}

// Default is the process-wide store, set up during bootstrap
var Default *Store

func NewStore(primary, fallback Tier) *Store {
	return &Store{primary: primary, fallback: fallback}
}

// Save writes the session under the token to both tiers
func (s *Store) Save(ctx context.Context, token string, session *Session) {
	data, err := json.Marshal(session)
	if err != nil {
		log.Printf("Failed to serialize session: %v", err)
		return
	}
	key := KeyPrefix + token
	if s.primary != nil {
		s.primary.Set(ctx, key, string(data), DefaultTTL)
	}
	if s.fallback != nil {
		s.fallback.Set(ctx, key, string(data), DefaultTTL)
	}
}

// Get resolves the session for a token. Missing or corrupt entries return
// nil; the caller treats that as an unauthenticated request.
func (s *Store) Get(ctx context.Context, token string) *Session {
	key := KeyPrefix + token
	for _, tier := range []Tier{s.primary, s.fallback} {
		if tier == nil {
			continue
		}
		raw, ok := tier.Get(ctx, key)
		if !ok {
			continue
		}
		var session Session
		if err := json.Unmarshal([]byte(raw), &session); err != nil {
			log.Printf("Corrupt session entry for key %s: %v", key, err)
			continue
		}
		if session.User.ID == "" {
			continue
		}
		return &session
	}
	return nil
}

// Clear removes the session from both tiers. Idempotent: clearing a token
// that was never stored is not an error.
func (s *Store) Clear(ctx context.Context, token string) {
	key := KeyPrefix + token
	if s.primary != nil {
		s.primary.Del(ctx, key)
	}
	if s.fallback != nil {
		s.fallback.Del(ctx, key)
	}
}

// IsAuthenticated reports whether the token resolves to a well-formed session
func (s *Store) IsAuthenticated(ctx context.Context, token string) bool {
	return token != "" && s.Get(ctx, token) != nil
}

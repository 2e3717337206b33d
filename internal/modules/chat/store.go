// README: In-memory session, profile, and preference store.
package chat

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrSessionNotFound = errors.New("chat session not found")
	ErrSessionEnded    = errors.New("chat session has ended")
	ErrBadRequest      = errors.New("bad request")
)

// Store keeps sessions, registered profiles, and per-session preferences in
// memory. One mutex guards everything; appends within a session are serialized
// under it, which preserves receipt order per session.
type Store struct {
	mu          sync.RWMutex
	sessions    map[string]*Session
	profiles    map[string]UserProfile
	preferences map[string][]Preference
}

func NewStore() *Store {
	return &Store{
		sessions:    make(map[string]*Session),
		profiles:    make(map[string]UserProfile),
		preferences: make(map[string][]Preference),
	}
}

// RegisterProfile stores the profile and returns its new user id.
func (s *Store) RegisterProfile(p UserProfile) string {
	id := uuid.NewString()
	s.mu.Lock()
	s.profiles[id] = p
	s.mu.Unlock()
	return id
}

// CreateSession opens a session seeded with the given greeting message.
func (s *Store) CreateSession(p UserProfile, greeting Message) *Session {
	session := &Session{
		ID:        uuid.NewString(),
		Profile:   p,
		Messages:  []Message{greeting},
		CreatedAt: time.Now(),
		IsActive:  true,
	}
	s.mu.Lock()
	s.sessions[session.ID] = session
	s.mu.Unlock()
	return session
}

// Get returns a copy of the session.
func (s *Store) Get(sessionID string) (Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return Session{}, ErrSessionNotFound
	}
	return cloneSession(session), nil
}

// Profile returns the profile of an existing session.
func (s *Store) Profile(sessionID string) (UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return UserProfile{}, ErrSessionNotFound
	}
	if !session.IsActive {
		return UserProfile{}, ErrSessionEnded
	}
	return session.Profile, nil
}

// AppendMessage appends to an active session in receipt order.
func (s *Store) AppendMessage(sessionID string, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	if !session.IsActive {
		return ErrSessionEnded
	}
	session.Messages = append(session.Messages, msg)
	return nil
}

// End marks the session inactive and appends the farewell message.
func (s *Store) End(sessionID string, farewell Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	if !ok {
		return ErrSessionNotFound
	}
	now := time.Now()
	session.IsActive = false
	session.EndedAt = &now
	session.Messages = append(session.Messages, farewell)
	return nil
}

// List returns summaries of all sessions. Preview is the first message after
// the greeting, truncated.
func (s *Store) List() []Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Summary, 0, len(s.sessions))
	for _, session := range s.sessions {
		preview := "New conversation"
		if len(session.Messages) > 1 {
			preview = truncate(session.Messages[1].Content, 100) + "..."
		}
		out = append(out, Summary{
			ID:           session.ID,
			UserName:     session.Profile.Name,
			CreatedAt:    session.CreatedAt,
			EndedAt:      session.EndedAt,
			MessageCount: len(session.Messages),
			IsActive:     session.IsActive,
			Preview:      preview,
		})
	}
	return out
}

// SavePreference records a like/dislike, replacing any earlier preference for
// the same restaurant within the session.
func (s *Store) SavePreference(p Preference) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.preferences[p.SessionID][:0]
	for _, existing := range s.preferences[p.SessionID] {
		if existing.RestaurantID != p.RestaurantID {
			kept = append(kept, existing)
		}
	}
	s.preferences[p.SessionID] = append(kept, p)
}

// Preferences returns the recorded preferences for a session.
func (s *Store) Preferences(sessionID string) []Preference {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Preference, len(s.preferences[sessionID]))
	copy(out, s.preferences[sessionID])
	return out
}

func cloneSession(in *Session) Session {
	out := *in
	out.Messages = make([]Message, len(in.Messages))
	copy(out.Messages, in.Messages)
	return out
}

// truncate cuts on rune boundaries so multi-byte content (the bot texts are
// emoji-heavy) never yields invalid UTF-8.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

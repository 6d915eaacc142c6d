package session

import (
	"encoding/json"
	"fmt"

	"taskvortex/internal/model"
	"taskvortex/internal/store"
)

// Durable keys. They live and die together: Establish writes all three,
// Clear wipes the store.
const (
	keyToken = "token"
	keyRole  = "role"
	keyUser  = "user"
)

// Store owns the current session. It is constructed once and passed to
// consumers explicitly; nothing reads it through package-level state.
// All access happens on the UI goroutine, so there is no locking.
type Store struct {
	kv  *store.KV
	cur model.Session
}

func NewStore(kv *store.KV) *Store {
	return &Store{kv: kv}
}

// Load reconstructs the persisted session, if any. A missing or unreadable
// profile leaves the store unauthenticated rather than failing startup.
func (s *Store) Load() error {
	token, ok, err := s.kv.Get(keyToken)
	if err != nil {
		return fmt.Errorf("session: load token: %w", err)
	}
	if !ok || token == "" {
		s.cur = model.Session{}
		return nil
	}

	roleStr, _, err := s.kv.Get(keyRole)
	if err != nil {
		return fmt.Errorf("session: load role: %w", err)
	}

	var user model.User
	if raw, ok, err := s.kv.Get(keyUser); err == nil && ok {
		// A corrupt profile blob degrades to an empty profile; the token
		// still authenticates.
		_ = json.Unmarshal([]byte(raw), &user)
	} else if err != nil {
		return fmt.Errorf("session: load profile: %w", err)
	}

	s.cur = model.Session{
		Token: token,
		Role:  model.ParseRole(roleStr),
		User:  user,
	}
	return nil
}

// Establish records a successful login in memory and durably.
func (s *Store) Establish(resp model.LoginResponse) error {
	user := resp.User()
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("session: encode profile: %w", err)
	}
	if err := s.kv.Put(keyToken, resp.Token); err != nil {
		return fmt.Errorf("session: persist token: %w", err)
	}
	if err := s.kv.Put(keyRole, string(resp.Role)); err != nil {
		return fmt.Errorf("session: persist role: %w", err)
	}
	if err := s.kv.Put(keyUser, string(raw)); err != nil {
		return fmt.Errorf("session: persist profile: %w", err)
	}
	s.cur = model.Session{Token: resp.Token, Role: resp.Role, User: user}
	return nil
}

// Clear wipes everything unconditionally, durable state first. In-memory
// state is reset even if the durable wipe fails.
func (s *Store) Clear() error {
	err := s.kv.Clear()
	s.cur = model.Session{}
	return err
}

func (s *Store) Current() model.Session { return s.cur }
func (s *Store) Token() string          { return s.cur.Token }

// IsAuthenticated is purely "token present". An expired-but-present token is
// treated as valid until the server rejects a request.
func (s *Store) IsAuthenticated() bool { return s.cur.Authenticated() }

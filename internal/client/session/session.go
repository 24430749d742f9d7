// Package session keeps the bearer token and the cached user identity in the
// persisted key/value store. It is the only reader and writer of those keys
// and doubles as the token source of the request pipeline.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/carework/internal/client/kv"
	"github.com/dmitrijs2005/carework/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

var ErrNoSession = errors.New("no session")

// Session is the persisted login state.
type Session struct {
	Token     string
	UserID    string
	UserName  string
	UserEmail string
}

// Identity is the user part of a session, rewritten by profile edits.
type Identity struct {
	UserID    string
	UserName  string
	UserEmail string
}

type Store struct {
	kv     kv.Store
	prefix string
}

// NewStore binds the session keys to prefix; an empty prefix uses
// common.DefaultKeyPrefix.
func NewStore(store kv.Store, prefix string) *Store {
	if prefix == "" {
		prefix = common.DefaultKeyPrefix
	}
	return &Store{kv: store, prefix: prefix}
}

func (s *Store) tokenKey() string     { return s.prefix + "token" }
func (s *Store) userIDKey() string    { return s.prefix + "userId" }
func (s *Store) userNameKey() string  { return s.prefix + "userName" }
func (s *Store) userEmailKey() string { return s.prefix + "userEmail" }

// Prefix is the namespace shared by session and cache keys.
func (s *Store) Prefix() string { return s.prefix }

// Keys lists the four session keys.
func (s *Store) Keys() []string {
	return []string{s.tokenKey(), s.userIDKey(), s.userNameKey(), s.userEmailKey()}
}

// IsSessionKey reports whether key is one of Keys.
func (s *Store) IsSessionKey(key string) bool {
	for _, k := range s.Keys() {
		if k == key {
			return true
		}
	}
	return false
}

// Token returns the stored bearer token, "" when absent.
func (s *Store) Token(ctx context.Context) (string, error) {
	return s.get(ctx, s.tokenKey())
}

// UserID returns the stored user id, "" when absent.
func (s *Store) UserID(ctx context.Context) (string, error) {
	return s.get(ctx, s.userIDKey())
}

func (s *Store) get(ctx context.Context, key string) (string, error) {
	v, _, err := s.kv.Get(ctx, key)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return v, nil
}

// Load returns the current session. A state missing the token or the user id
// is reported as ErrNoSession.
func (s *Store) Load(ctx context.Context) (Session, error) {
	var sess Session
	fields := []struct {
		key string
		dst *string
	}{
		{s.tokenKey(), &sess.Token},
		{s.userIDKey(), &sess.UserID},
		{s.userNameKey(), &sess.UserName},
		{s.userEmailKey(), &sess.UserEmail},
	}
	for _, f := range fields {
		v, err := s.get(ctx, f.key)
		if err != nil {
			return Session{}, err
		}
		*f.dst = v
	}
	if sess.Token == "" || sess.UserID == "" {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

// Save writes the four keys one after another. It is not transactional.
func (s *Store) Save(ctx context.Context, sess Session) error {
	if err := s.set(ctx, s.tokenKey(), sess.Token); err != nil {
		return err
	}
	return s.SaveIdentity(ctx, Identity{UserID: sess.UserID, UserName: sess.UserName, UserEmail: sess.UserEmail})
}

// SaveIdentity rewrites the user keys and leaves the token alone.
func (s *Store) SaveIdentity(ctx context.Context, id Identity) error {
	if err := s.set(ctx, s.userIDKey(), id.UserID); err != nil {
		return err
	}
	if err := s.set(ctx, s.userNameKey(), id.UserName); err != nil {
		return err
	}
	return s.set(ctx, s.userEmailKey(), id.UserEmail)
}

func (s *Store) set(ctx context.Context, key, value string) error {
	if err := s.kv.Set(ctx, key, value); err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	return nil
}

// Clear removes every session key. It attempts all four removals and joins
// their errors.
func (s *Store) Clear(ctx context.Context) error {
	var errs []error
	for _, k := range s.Keys() {
		if err := s.kv.Remove(ctx, k); err != nil {
			errs = append(errs, fmt.Errorf("clear session key %s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}

// TokenExpiry reads the exp claim of a JWT token without verifying it.
// ok is false when there is no token or it carries no expiry.
func (s *Store) TokenExpiry(ctx context.Context) (exp time.Time, ok bool, err error) {
	token, err := s.Token(ctx)
	if err != nil || token == "" {
		return time.Time{}, false, err
	}
	return ExpiryOf(token)
}

// ExpiryOf decodes the exp claim of token. Opaque tokens report no expiry.
func ExpiryOf(token string) (time.Time, bool, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, false, nil
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, false, fmt.Errorf("read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, false, nil
	}
	return exp.Time, true, nil
}

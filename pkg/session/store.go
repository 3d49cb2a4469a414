package session

import (
	"github.com/hashicorp/go-hclog"
)

// TokenKey is the storage key the bearer token lives under.
const TokenKey = "token"

// Store manages the bearer token lifecycle over a Storage.
//
// Storage failures are logged and otherwise swallowed: a session that cannot
// be persisted behaves like one that was never created.
type Store struct {
	storage Storage
	logger  hclog.Logger
}

// NewStore wraps storage. A nil storage behaves like NoopStorage.
func NewStore(storage Storage, logger hclog.Logger) *Store {
	if storage == nil {
		storage = NoopStorage{}
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Store{
		storage: storage,
		logger:  logger.Named("session"),
	}
}

// SetToken stores value as the current bearer token.
func (s *Store) SetToken(value string) {
	if err := s.storage.Set(TokenKey, value); err != nil {
		s.logger.Warn("failed to store session token", "error", err)
	}
}

// Token returns the current bearer token, or "" when there is none.
func (s *Store) Token() string {
	v, ok := s.storage.Get(TokenKey)
	if !ok {
		return ""
	}
	return v
}

// ClearToken ends the session.
func (s *Store) ClearToken() {
	if err := s.storage.Remove(TokenKey); err != nil {
		s.logger.Warn("failed to clear session token", "error", err)
	}
}

// HasToken reports whether a non-empty token is stored.
func (s *Store) HasToken() bool {
	return s.Token() != ""
}

// IsAuthenticated mirrors HasToken. The server decides whether the token is
// still good.
func (s *Store) IsAuthenticated() bool {
	return s.HasToken()
}

// Claims decodes the stored token's registered JWT claims.
func (s *Store) Claims() (*Claims, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNoToken
	}
	return ParseClaims(token)
}

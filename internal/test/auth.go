package test

import (
	"errors"

	pkgAuth "github.com/shopmart/shopmart/internal/pkg/auth"
)

// HasherStub provides deterministic hashing for tests.
type HasherStub struct {
	HashFn    func(string) (string, error)
	CompareFn func(string, string) error
}

// Hash returns a predictable hash for the supplied password.
func (h HasherStub) Hash(password string) (string, error) {
	if h.HashFn != nil {
		return h.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates password against stored hash.
func (h HasherStub) Compare(hash string, password string) error {
	if h.CompareFn != nil {
		return h.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return errors.New("mismatch")
	}
	return nil
}

// StrategyStub issues and parses token pairs via function overrides.
type StrategyStub struct {
	IssueFn        func(int64) (pkgAuth.TokenPair, error)
	ParseAccessFn  func(string) (int64, error)
	ParseRefreshFn func(string) (int64, error)
	NameVal        string
}

// IssuePair returns deterministic tokens for tests.
func (s StrategyStub) IssuePair(userID int64) (pkgAuth.TokenPair, error) {
	if s.IssueFn != nil {
		return s.IssueFn(userID)
	}
	return pkgAuth.TokenPair{Access: "access", Refresh: "refresh"}, nil
}

// ParseAccess parses previously issued access tokens.
func (s StrategyStub) ParseAccess(token string) (int64, error) {
	if s.ParseAccessFn != nil {
		return s.ParseAccessFn(token)
	}
	return 1, nil
}

// ParseRefresh parses previously issued refresh tokens.
func (s StrategyStub) ParseRefresh(token string) (int64, error) {
	if s.ParseRefreshFn != nil {
		return s.ParseRefreshFn(token)
	}
	return 1, nil
}

// Name returns the strategy identifier used in tests.
func (s StrategyStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "stub"
}

var _ pkgAuth.PasswordHasher = HasherStub{}
var _ pkgAuth.Strategy = StrategyStub{}

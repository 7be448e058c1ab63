package auth

import "time"

// TokenPair carries an access token together with its refresh companion.
type TokenPair struct {
	Access  string
	Refresh string
}

// Strategy issues and verifies token pairs for authenticated users.
type Strategy interface {
	IssuePair(userID int64) (TokenPair, error)
	ParseAccess(token string) (int64, error)
	ParseRefresh(token string) (int64, error)
	Name() string
}

// Options tune token lifetimes.
type Options struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

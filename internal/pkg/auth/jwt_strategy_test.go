package auth

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewJWTStrategy_DefaultTTLs(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if strategy == nil {
		t.Fatal("expected strategy instance")
	}
	if string(strategy.secret) != "secret" {
		t.Fatalf("unexpected secret: %q", string(strategy.secret))
	}
	if strategy.accessTTL != 30*time.Minute {
		t.Fatalf("unexpected access ttl: %s", strategy.accessTTL)
	}
	if strategy.refreshTTL != 24*time.Hour {
		t.Fatalf("unexpected refresh ttl: %s", strategy.refreshTTL)
	}
}

func TestNewJWTStrategy_CustomTTLs(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{AccessTTL: time.Minute, RefreshTTL: time.Hour})
	if strategy.accessTTL != time.Minute {
		t.Fatalf("unexpected access ttl: %s", strategy.accessTTL)
	}
	if strategy.refreshTTL != time.Hour {
		t.Fatalf("unexpected refresh ttl: %s", strategy.refreshTTL)
	}
}

func TestJWTStrategy_IssueAndParse(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{AccessTTL: time.Minute, RefreshTTL: time.Minute})
	pair, err := strategy.IssuePair(42)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	if pair.Access == "" || pair.Refresh == "" {
		t.Fatal("expected non-empty tokens")
	}
	if pair.Access == pair.Refresh {
		t.Fatal("expected distinct access and refresh tokens")
	}

	userID, err := strategy.ParseAccess(pair.Access)
	if err != nil {
		t.Fatalf("parse access: %v", err)
	}
	if userID != 42 {
		t.Fatalf("unexpected user id: %d", userID)
	}

	userID, err = strategy.ParseRefresh(pair.Refresh)
	if err != nil {
		t.Fatalf("parse refresh: %v", err)
	}
	if userID != 42 {
		t.Fatalf("unexpected user id: %d", userID)
	}
}

func TestJWTStrategy_RejectsWrongTokenType(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{AccessTTL: time.Minute, RefreshTTL: time.Minute})
	pair, err := strategy.IssuePair(7)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	if _, err := strategy.ParseAccess(pair.Refresh); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for refresh used as access, got %v", err)
	}
	if _, err := strategy.ParseRefresh(pair.Access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for access used as refresh, got %v", err)
	}
}

func TestJWTStrategy_ParseGarbage(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	if _, err := strategy.ParseAccess("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_ParseTampered(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{AccessTTL: time.Minute})
	pair, err := strategy.IssuePair(7)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	parts := strings.Split(pair.Access, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token segments: %d", len(parts))
	}
	parts[2] = "tampered"
	if _, err := strategy.ParseAccess(strings.Join(parts, ".")); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_ParseWrongSecret(t *testing.T) {
	issuer := NewJWTStrategy("secret-a", Options{AccessTTL: time.Minute})
	verifier := NewJWTStrategy("secret-b", Options{AccessTTL: time.Minute})
	pair, err := issuer.IssuePair(7)
	if err != nil {
		t.Fatalf("issue pair: %v", err)
	}
	if _, err := verifier.ParseAccess(pair.Access); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_ParseExpired(t *testing.T) {
	strategy := NewJWTStrategy("secret", Options{})
	token, err := strategy.sign(10, tokenTypeAccess, -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := strategy.ParseAccess(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategy_Name(t *testing.T) {
	if got := NewJWTStrategy("secret", Options{}).Name(); got != "jwt" {
		t.Fatalf("unexpected name: %q", got)
	}
}

// Package session is the single authority over logged-in identities. Every
// protected page goes through it instead of performing its own persisted
// identity check.
//
// A session is an identity JSON blob stored in Redis under
// session:<realm>:<id>, referenced from the browser by an HS256-signed token
// held in a cookie. Loading a session validates the token, fetches the blob,
// and slides the TTL. User and admin realms are fully independent.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/loansewa/loansewa-web/internal/core/domain"
)

// Realms. Cookies, Redis keys, and token claims all carry the realm so a user
// token can never open an admin session.
const (
	RealmUser  = "user"
	RealmAdmin = "admin"
)

// Cookie names, one per realm.
const (
	UserCookie  = "loansewa_session"
	AdminCookie = "loansewa_admin_session"
)

// Manager issues, loads, and destroys sessions.
type Manager struct {
	rdb         *redis.Client
	secret      []byte
	ttl         time.Duration
	rememberTTL time.Duration
}

// NewManager wires the session authority. ttl applies to plain logins,
// rememberTTL to logins with the remember-me flag set.
func NewManager(rdb *redis.Client, secret string, ttl, rememberTTL time.Duration) *Manager {
	return &Manager{
		rdb:         rdb,
		secret:      []byte(secret),
		ttl:         ttl,
		rememberTTL: rememberTTL,
	}
}

type claims struct {
	Realm    string `json:"realm"`
	Remember bool   `json:"remember,omitempty"`
	jwt.RegisteredClaims
}

// IssueUser creates a user session and returns the cookie token and its
// lifetime.
func (m *Manager) IssueUser(ctx context.Context, user *domain.User, remember bool) (string, time.Duration, error) {
	return m.issue(ctx, RealmUser, user, remember)
}

// IssueAdmin creates an admin session.
func (m *Manager) IssueAdmin(ctx context.Context, admin *domain.Admin) (string, time.Duration, error) {
	return m.issue(ctx, RealmAdmin, admin, false)
}

func (m *Manager) issue(ctx context.Context, realm string, identity any, remember bool) (string, time.Duration, error) {
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", 0, fmt.Errorf("encode identity: %w", err)
	}

	ttl := m.lifetime(remember)
	sid := uuid.NewString()
	if err := m.rdb.Set(ctx, key(realm, sid), payload, ttl).Err(); err != nil {
		return "", 0, fmt.Errorf("store session: %w", err)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Realm:    realm,
		Remember: remember,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   sid,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	})
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", 0, fmt.Errorf("sign session token: %w", err)
	}
	return signed, ttl, nil
}

// LoadUser resolves a user session token. Any failure collapses into
// domain.ErrNotAuthenticated: the caller only needs to know "redirect to
// login".
func (m *Manager) LoadUser(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	if err := m.load(ctx, RealmUser, token, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// LoadAdmin resolves an admin session token.
func (m *Manager) LoadAdmin(ctx context.Context, token string) (*domain.Admin, error) {
	var admin domain.Admin
	if err := m.load(ctx, RealmAdmin, token, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (m *Manager) load(ctx context.Context, realm, token string, identity any) error {
	cl, err := m.parse(realm, token)
	if err != nil {
		return domain.ErrNotAuthenticated
	}

	payload, err := m.rdb.Get(ctx, key(realm, cl.Subject)).Bytes()
	if err != nil {
		return domain.ErrNotAuthenticated
	}
	if err := json.Unmarshal(payload, identity); err != nil {
		return domain.ErrNotAuthenticated
	}

	// Sliding expiry: activity keeps the session alive.
	_ = m.rdb.Expire(ctx, key(realm, cl.Subject), m.lifetime(cl.Remember)).Err()
	return nil
}

// Destroy removes the session referenced by the token. Unparseable tokens are
// ignored: logout must always succeed.
func (m *Manager) Destroy(ctx context.Context, realm, token string) {
	cl, err := m.parse(realm, token)
	if err != nil {
		return
	}
	_ = m.rdb.Del(ctx, key(realm, cl.Subject)).Err()
}

func (m *Manager) parse(realm, token string) (*claims, error) {
	var cl claims
	parsed, err := jwt.ParseWithClaims(token, &cl, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errors.New("invalid session token")
	}
	if cl.Realm != realm || cl.Subject == "" {
		return nil, errors.New("session token realm mismatch")
	}
	return &cl, nil
}

func (m *Manager) lifetime(remember bool) time.Duration {
	if remember {
		return m.rememberTTL
	}
	return m.ttl
}

func key(realm, sid string) string {
	return fmt.Sprintf("session:%s:%s", realm, sid)
}

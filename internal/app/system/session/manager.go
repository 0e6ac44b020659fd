package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const issuer = "guichet"

// ErrInvalidToken covers every way a presented token can be unusable:
// malformed, bad signature, wrong algorithm, wrong issuer, or expired.
// Callers treat all of these the same way (no session).
var ErrInvalidToken = errors.New("invalid session token")

// tokenClaims is the wire shape of a session token.
type tokenClaims struct {
	Claims
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens and moves them through
// the session cookie. Tokens are HS256 JWTs; nothing is stored
// server-side, so a token stays valid until its expiry instant.
type Manager struct {
	secret       []byte
	lifetime     time.Duration
	cookieName   string
	cookieDomain string
	secure       bool
	log          *zap.Logger
	now          func() time.Time
}

// NewManager builds a Manager. The secret must be at least 32 bytes;
// shorter keys are accepted with a warning so local dev is not blocked.
func NewManager(secret string, lifetime time.Duration, cookieName, cookieDomain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if secret == "" {
		return nil, fmt.Errorf("session secret is empty; provide at least 32 random chars")
	}
	if len(secret) < 32 {
		logger.Warn("session secret is short; 32+ chars recommended",
			zap.Int("length", len(secret)))
	}
	if lifetime <= 0 {
		return nil, fmt.Errorf("session lifetime must be positive, got %s", lifetime)
	}
	if cookieName == "" {
		cookieName = "guichet-session"
	}
	return &Manager{
		secret:       []byte(secret),
		lifetime:     lifetime,
		cookieName:   cookieName,
		cookieDomain: cookieDomain,
		secure:       secure,
		log:          logger,
		now:          time.Now,
	}, nil
}

// WithClock replaces the manager's time source. Tests use this to walk
// tokens across their expiry instant.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Lifetime reports how long issued tokens stay valid.
func (m *Manager) Lifetime() time.Duration { return m.lifetime }

// CookieName reports the name of the session cookie.
func (m *Manager) CookieName() string { return m.cookieName }

// Issue signs a new token carrying the given claims. The token expires
// exactly lifetime after issuance.
func (m *Manager) Issue(claims Claims) (string, error) {
	now := m.now()
	tc := tokenClaims{
		Claims: claims,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   claims.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, tc).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Read verifies a raw token and returns its claims. Any defect, from a
// garbled string to a token one nanosecond past expiry, yields
// ErrInvalidToken.
func (m *Manager) Read(raw string) (*Claims, error) {
	if raw == "" {
		return nil, ErrInvalidToken
	}

	var tc tokenClaims
	_, err := jwt.ParseWithClaims(raw, &tc, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, ErrInvalidToken
	}

	// The library treats expiry with leeway semantics; the portal
	// wants a hard boundary where the expiry instant itself is
	// already expired.
	exp, err := tc.GetExpirationTime()
	if err != nil || exp == nil || !m.now().Before(exp.Time) {
		return nil, ErrInvalidToken
	}
	if tc.UserID == "" {
		return nil, ErrInvalidToken
	}

	c := tc.Claims
	return &c, nil
}

// SetCookie attaches a signed token to the response as the session
// cookie. Max-Age mirrors the token lifetime so browser and token
// expire together.
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		Domain:   m.cookieDomain,
		MaxAge:   int(m.lifetime / time.Second),
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearCookie expires the session cookie. Safe to call whether or not
// a session exists.
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		Domain:   m.cookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// TokenFromRequest extracts the raw session token from the request
// cookie. Returns "" when no cookie is present.
func (m *Manager) TokenFromRequest(r *http.Request) string {
	c, err := r.Cookie(m.cookieName)
	if err != nil {
		return ""
	}
	return c.Value
}

// ReadRequest is TokenFromRequest followed by Read.
func (m *Manager) ReadRequest(r *http.Request) (*Claims, error) {
	return m.Read(m.TokenFromRequest(r))
}

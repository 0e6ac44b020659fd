package session_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/domain/models"
	"go.uber.org/zap"
)

const testSecret = "test-session-secret-0123456789ABCDEF"

func newTestManager(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(testSecret, time.Hour, "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m
}

func testClaims() session.Claims {
	return session.Claims{
		UserID:    "507f1f77bcf86cd799439011",
		Email:     "admin@admin.ga",
		FirstName: "Marie",
		LastName:  "Nguema",
		Role:      models.RoleAdmin,
	}
}

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := session.NewManager("", time.Hour, "s", "", false, zap.NewNop())
	if err == nil {
		t.Error("expected error for empty secret")
	}
}

func TestNewManager_NonPositiveLifetime(t *testing.T) {
	_, err := session.NewManager(testSecret, 0, "s", "", false, zap.NewNop())
	if err == nil {
		t.Error("expected error for zero lifetime")
	}
}

func TestIssueAndRead_RoundTrip(t *testing.T) {
	m := newTestManager(t)

	token, err := m.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	got, err := m.Read(token)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.UserID != "507f1f77bcf86cd799439011" {
		t.Errorf("UserID: got %q", got.UserID)
	}
	if got.Email != "admin@admin.ga" {
		t.Errorf("Email: got %q", got.Email)
	}
	if got.Role != models.RoleAdmin {
		t.Errorf("Role: got %q", got.Role)
	}
	if got.FullName() != "Marie Nguema" {
		t.Errorf("FullName: got %q", got.FullName())
	}
}

func TestRead_OrganizationSnapshotSurvives(t *testing.T) {
	m := newTestManager(t)

	c := testClaims()
	c.OrganizationID = "507f191e810c19729de860ea"
	c.Organization = &session.OrganizationSnapshot{
		ID:   "507f191e810c19729de860ea",
		Name: "Mairie de Libreville",
		Type: models.OrgMairie,
	}

	token, err := m.Issue(c)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	got, err := m.Read(token)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got.Organization == nil {
		t.Fatal("expected organization snapshot in claims")
	}
	if got.Organization.Name != "Mairie de Libreville" {
		t.Errorf("org name: got %q", got.Organization.Name)
	}
}

func TestRead_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := issued
	m := newTestManager(t).WithClock(func() time.Time { return clock })

	token, err := m.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	// One second before expiry: still valid.
	clock = issued.Add(time.Hour - time.Second)
	if _, err := m.Read(token); err != nil {
		t.Errorf("token should be valid just before expiry: %v", err)
	}

	// At the expiry instant: already expired.
	clock = issued.Add(time.Hour)
	if _, err := m.Read(token); !errors.Is(err, session.ErrInvalidToken) {
		t.Errorf("token at expiry instant: got %v, want ErrInvalidToken", err)
	}

	clock = issued.Add(2 * time.Hour)
	if _, err := m.Read(token); !errors.Is(err, session.ErrInvalidToken) {
		t.Errorf("token past expiry: got %v, want ErrInvalidToken", err)
	}
}

func TestRead_GarbledToken(t *testing.T) {
	m := newTestManager(t)

	for _, raw := range []string{"", "not-a-jwt", "aaa.bbb.ccc"} {
		if _, err := m.Read(raw); !errors.Is(err, session.ErrInvalidToken) {
			t.Errorf("Read(%q): got %v, want ErrInvalidToken", raw, err)
		}
	}
}

func TestRead_WrongKey(t *testing.T) {
	m := newTestManager(t)
	other, err := session.NewManager("another-secret-key-9876543210ZYXWVU", time.Hour, "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	token, err := other.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := m.Read(token); !errors.Is(err, session.ErrInvalidToken) {
		t.Errorf("token signed with a different key: got %v, want ErrInvalidToken", err)
	}
}

func TestRead_WrongIssuer(t *testing.T) {
	m := newTestManager(t)

	// Same key, but not issued by the portal.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:        "x",
		Issuer:    "someone-else",
		Subject:   "507f1f77bcf86cd799439011",
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	raw, err := foreign.SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign foreign token: %v", err)
	}
	if _, err := m.Read(raw); !errors.Is(err, session.ErrInvalidToken) {
		t.Errorf("foreign issuer: got %v, want ErrInvalidToken", err)
	}
}

func TestRead_MissingUserID(t *testing.T) {
	m := newTestManager(t)

	c := testClaims()
	c.UserID = ""
	token, err := m.Issue(c)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	if _, err := m.Read(token); !errors.Is(err, session.ErrInvalidToken) {
		t.Errorf("token without uid: got %v, want ErrInvalidToken", err)
	}
}

func TestSetCookie_Attributes(t *testing.T) {
	m := newTestManager(t)
	rec := httptest.NewRecorder()
	m.SetCookie(rec, "token-value")

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	c := cookies[0]
	if c.Name != "test-session" {
		t.Errorf("cookie name: got %q", c.Name)
	}
	if !c.HttpOnly {
		t.Error("cookie should be HttpOnly")
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Errorf("SameSite: got %v, want Lax", c.SameSite)
	}
	if c.MaxAge != 3600 {
		t.Errorf("MaxAge: got %d, want 3600", c.MaxAge)
	}
}

func TestClearCookie(t *testing.T) {
	m := newTestManager(t)
	rec := httptest.NewRecorder()
	m.ClearCookie(rec)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Errorf("MaxAge: got %d, want -1", cookies[0].MaxAge)
	}
	if cookies[0].Value != "" {
		t.Errorf("value should be empty, got %q", cookies[0].Value)
	}
}

func TestReadRequest_FromCookie(t *testing.T) {
	m := newTestManager(t)
	token, err := m.Issue(testClaims())
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: "test-session", Value: token})

	got, err := m.ReadRequest(req)
	if err != nil {
		t.Fatalf("ReadRequest failed: %v", err)
	}
	if got.Email != "admin@admin.ga" {
		t.Errorf("Email: got %q", got.Email)
	}
}

func TestReadRequest_NoCookie(t *testing.T) {
	m := newTestManager(t)
	req := httptest.NewRequest("GET", "/admin/dashboard", nil)

	if _, err := m.ReadRequest(req); !errors.Is(err, session.ErrInvalidToken) {
		t.Errorf("no cookie: got %v, want ErrInvalidToken", err)
	}
}

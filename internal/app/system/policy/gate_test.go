package policy_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/guichet-ga/guichet/internal/app/system/policy"
	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/domain/models"
	"github.com/guichet-ga/guichet/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func newGateHarness(t *testing.T) (*session.Manager, http.Handler, *bool) {
	t.Helper()
	sessions, err := session.NewManager("gate-test-secret-0123456789ABCDEF!", time.Hour, "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}

	reached := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusOK)
	})

	gate := policy.Gate(policy.Default(), sessions, zap.NewNop())
	return sessions, gate(next), &reached
}

func requestWithSession(t *testing.T, sessions *session.Manager, target string, claims session.Claims) *http.Request {
	t.Helper()
	token, err := sessions.Issue(claims)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}
	req := httptest.NewRequest("GET", target, nil)
	req.AddCookie(&http.Cookie{Name: "test-session", Value: token})
	return req
}

func TestGate_PublicPathPassesWithoutSession(t *testing.T) {
	_, handler, reached := newGateHarness(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/services", nil))

	if !*reached {
		t.Error("expected public request to reach the handler")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestGate_ProtectedPathWithoutSessionRedirectsToLogin(t *testing.T) {
	_, handler, reached := newGateHarness(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/dashboard", nil))

	if *reached {
		t.Error("handler should not be reached without a session")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	want := "/auth/connexion?callbackUrl=%2Fadmin%2Fdashboard"
	if got := rec.Header().Get("Location"); got != want {
		t.Errorf("Location: got %q, want %q", got, want)
	}
}

func TestGate_CallbackKeepsQueryString(t *testing.T) {
	_, handler, _ := newGateHarness(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/admin/utilisateurs?role=AGENT&page=2", nil))

	want := "/auth/connexion?callbackUrl=" + "%2Fadmin%2Futilisateurs%3Frole%3DAGENT%26page%3D2"
	if got := rec.Header().Get("Location"); got != want {
		t.Errorf("Location: got %q, want %q", got, want)
	}
}

func TestGate_ExpiredTokenRedirectsToLogin(t *testing.T) {
	sessions, handler, reached := newGateHarness(t)

	clock := time.Now().Add(-2 * time.Hour)
	sessions.WithClock(func() time.Time { return clock })
	req := requestWithSession(t, sessions, "/admin/dashboard", testutil.AdminClaims())
	sessions.WithClock(time.Now)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if *reached {
		t.Error("handler should not be reached with an expired token")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
}

func TestGate_WrongRoleRedirectsToOwnDashboard(t *testing.T) {
	sessions, handler, reached := newGateHarness(t)

	req := requestWithSession(t, sessions, "/admin/dashboard", testutil.CitizenClaims())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if *reached {
		t.Error("handler should not be reached with the wrong role")
	}
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status: got %d, want %d", rec.Code, http.StatusSeeOther)
	}
	if got := rec.Header().Get("Location"); got != "/citoyen/dashboard" {
		t.Errorf("Location: got %q, want %q", got, "/citoyen/dashboard")
	}
}

func TestGate_SuperAdminReachesAdmin(t *testing.T) {
	sessions, handler, reached := newGateHarness(t)

	req := requestWithSession(t, sessions, "/admin/journal", testutil.SuperAdminClaims())
	rec := testutil.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !*reached {
		t.Error("handler should be reached for SUPER_ADMIN on /admin")
	}
	rec.AssertStatus(t, http.StatusOK)
}

func TestGate_AllowedRoleReachesHandlerWithClaims(t *testing.T) {
	sessions, _, _ := newGateHarness(t)

	var seen *session.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = session.CurrentClaims(r)
		w.WriteHeader(http.StatusOK)
	})
	handler := policy.Gate(policy.Default(), sessions, zap.NewNop())(next)

	req := requestWithSession(t, sessions, "/manager/dashboard", testutil.ManagerClaims(primitive.NewObjectID()))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusOK)
	}
	if seen == nil {
		t.Fatal("expected claims in request context")
	}
	if seen.Role != models.RoleManager {
		t.Errorf("claims role: got %q", seen.Role)
	}
}

func TestGate_PublicPathAttachesValidClaims(t *testing.T) {
	sessions, _, _ := newGateHarness(t)

	var seen *session.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = session.CurrentClaims(r)
	})
	handler := policy.Gate(policy.Default(), sessions, zap.NewNop())(next)

	req := requestWithSession(t, sessions, "/services", testutil.CitizenClaims())
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if seen == nil {
		t.Fatal("expected claims attached on public page for logged-in visitor")
	}
}

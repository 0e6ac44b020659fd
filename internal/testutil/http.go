package testutil

import (
	"net/http"
	"net/http/httptest"

	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuperAdminClaims returns session claims for a SUPER_ADMIN user.
func SuperAdminClaims() session.Claims {
	return session.Claims{
		UserID:     primitive.NewObjectID().Hex(),
		Email:      "superadmin@admin.ga",
		FirstName:  "Super",
		LastName:   "Admin",
		Role:       models.RoleSuperAdmin,
		IsVerified: true,
	}
}

// AdminClaims returns session claims for an ADMIN user.
func AdminClaims() session.Claims {
	return session.Claims{
		UserID:     primitive.NewObjectID().Hex(),
		Email:      "admin.libreville@admin.ga",
		FirstName:  "Marie",
		LastName:   "Nguema",
		Role:       models.RoleAdmin,
		IsVerified: true,
	}
}

// ManagerClaims returns session claims for a MANAGER with an organization.
func ManagerClaims(orgID primitive.ObjectID) session.Claims {
	return session.Claims{
		UserID:         primitive.NewObjectID().Hex(),
		Email:          "manager.dgdi@admin.ga",
		FirstName:      "Paul",
		LastName:       "Obame",
		Role:           models.RoleManager,
		OrganizationID: orgID.Hex(),
		IsVerified:     true,
	}
}

// AgentClaims returns session claims for an AGENT with an organization.
func AgentClaims(orgID primitive.ObjectID) session.Claims {
	return session.Claims{
		UserID:         primitive.NewObjectID().Hex(),
		Email:          "agent.cnss@admin.ga",
		FirstName:      "Sylvie",
		LastName:       "Mba",
		Role:           models.RoleAgent,
		OrganizationID: orgID.Hex(),
		IsVerified:     true,
	}
}

// CitizenClaims returns session claims for a USER (citoyen).
func CitizenClaims() session.Claims {
	return session.Claims{
		UserID:     primitive.NewObjectID().Hex(),
		Email:      "jean.dupont@gmail.com",
		FirstName:  "Jean",
		LastName:   "Dupont",
		Role:       models.RoleUser,
		IsVerified: true,
	}
}

// WithClaims adds session claims to the request context for testing
// handlers behind the auth gate.
func WithClaims(r *http.Request, c session.Claims) *http.Request {
	return r.WithContext(session.WithTestClaims(r.Context(), &c))
}

// NewRequest creates an HTTP request for testing.
func NewRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

// NewAuthenticatedRequest creates an HTTP request with claims in context.
func NewAuthenticatedRequest(method, target string, c session.Claims) *http.Request {
	return WithClaims(httptest.NewRequest(method, target, nil), c)
}

// ResponseRecorder wraps httptest.ResponseRecorder with helper methods.
type ResponseRecorder struct {
	*httptest.ResponseRecorder
}

// NewRecorder creates a new ResponseRecorder.
func NewRecorder() *ResponseRecorder {
	return &ResponseRecorder{httptest.NewRecorder()}
}

// AssertStatus checks the response status code.
func (r *ResponseRecorder) AssertStatus(t interface{ Errorf(string, ...any) }, expected int) {
	if r.Code != expected {
		t.Errorf("status code: got %d, want %d", r.Code, expected)
	}
}

// AssertRedirect checks for a redirect to the expected location.
func (r *ResponseRecorder) AssertRedirect(t interface{ Errorf(string, ...any) }, expectedLocation string) {
	if r.Code != http.StatusSeeOther && r.Code != http.StatusFound && r.Code != http.StatusMovedPermanently {
		t.Errorf("expected redirect status, got %d", r.Code)
	}
	location := r.Header().Get("Location")
	if location != expectedLocation {
		t.Errorf("redirect location: got %q, want %q", location, expectedLocation)
	}
}

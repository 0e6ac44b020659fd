// Package auth implements credential verification and the login and
// logout flows behind the portal's auth pages.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/guichet-ga/guichet/internal/app/store/users"
	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCredentials is returned for every client-side failure:
	// unknown email, deactivated account, or wrong password. Callers
	// cannot tell which, and the login page shows one generic message.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStoreUnavailable is returned when the user store cannot be
	// reached or errors for any reason other than "no such user".
	ErrStoreUnavailable = errors.New("user store unavailable")
)

// UserStore is the slice of the users store the authenticator needs.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	TouchLastLogin(ctx context.Context, id primitive.ObjectID, at time.Time) error
}

// OrganizationStore resolves the organization snapshot embedded in
// session claims.
type OrganizationStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Organization, error)
}

// AuditSink receives the auth events the authenticator emits. The
// request's ip and user agent ride in on the context.
type AuditSink interface {
	LoginSucceeded(ctx context.Context, user *models.User)
	LoginFailed(ctx context.Context, email, reason string)
	LoggedOut(ctx context.Context, claims *session.Claims)
}

// Authenticator verifies credentials and produces session claims.
type Authenticator struct {
	users UserStore
	orgs  OrganizationStore
	audit AuditSink
	log   *zap.Logger
	now   func() time.Time
}

func NewAuthenticator(users UserStore, orgs OrganizationStore, audit AuditSink, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		users: users,
		orgs:  orgs,
		audit: audit,
		log:   logger,
		now:   time.Now,
	}
}

// WithClock replaces the authenticator's time source for tests.
func (a *Authenticator) WithClock(now func() time.Time) *Authenticator {
	a.now = now
	return a
}

// Authenticate checks email and password and, on success, returns the
// claims for a new session. Unknown email, inactive account and wrong
// password all collapse into ErrInvalidCredentials; store failures
// surface as ErrStoreUnavailable so the login page can distinguish
// "try again" from "check your credentials".
func (a *Authenticator) Authenticate(ctx context.Context, email, password string) (*session.Claims, error) {
	user, err := a.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			a.audit.LoginFailed(ctx, email, "user_not_found")
			return nil, ErrInvalidCredentials
		}
		a.log.Error("user lookup failed", zap.String("email", email), zap.Error(err))
		return nil, ErrStoreUnavailable
	}

	if !user.IsActive {
		a.audit.LoginFailed(ctx, email, "account_disabled")
		return nil, ErrInvalidCredentials
	}

	if !VerifyPassword(user.PasswordHash, password) {
		a.audit.LoginFailed(ctx, email, "wrong_password")
		return nil, ErrInvalidCredentials
	}

	claims := a.buildClaims(ctx, user)

	// Post-login bookkeeping is best effort: the user is in, even if
	// the timestamp write or the audit insert fails.
	if err := a.users.TouchLastLogin(ctx, user.ID, a.now()); err != nil {
		a.log.Warn("touch last login failed",
			zap.String("user_id", user.ID.Hex()), zap.Error(err))
	}
	a.audit.LoginSucceeded(ctx, user)

	return claims, nil
}

// Logout records the LOGOUT audit event. The session cookie itself is
// cleared by the handler; there is no server-side state to tear down.
func (a *Authenticator) Logout(ctx context.Context, claims *session.Claims) {
	a.audit.LoggedOut(ctx, claims)
}

func (a *Authenticator) buildClaims(ctx context.Context, user *models.User) *session.Claims {
	claims := &session.Claims{
		UserID:     user.ID.Hex(),
		Email:      user.Email,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Role:       user.Role,
		IsVerified: user.IsVerified,
	}

	if user.OrganizationID != nil {
		claims.OrganizationID = user.OrganizationID.Hex()

		// The snapshot is a convenience for dashboards; a missing or
		// failing org lookup must not block login.
		org, err := a.orgs.GetByID(ctx, *user.OrganizationID)
		if err != nil {
			a.log.Warn("organization lookup failed",
				zap.String("organization_id", user.OrganizationID.Hex()),
				zap.Error(err))
		} else {
			claims.Organization = &session.OrganizationSnapshot{
				ID:   org.ID.Hex(),
				Name: org.Name,
				Type: org.Type,
			}
		}
	}

	return claims
}

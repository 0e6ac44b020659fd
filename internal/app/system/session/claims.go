package session

import (
	"github.com/guichet-ga/guichet/internal/domain/models"
)

// OrganizationSnapshot is the subset of an organization embedded in a
// session token. It is captured at login time and never refreshed for
// the lifetime of the token.
type OrganizationSnapshot struct {
	ID   string                  `json:"id"`
	Name string                  `json:"name"`
	Type models.OrganizationType `json:"type"`
}

// Claims is the identity carried by a session token. The token is
// self-contained: handlers read these fields without touching the
// user store.
type Claims struct {
	UserID         string                `json:"uid"`
	Email          string                `json:"email"`
	FirstName      string                `json:"firstName,omitempty"`
	LastName       string                `json:"lastName,omitempty"`
	Role           models.Role           `json:"role"`
	OrganizationID string                `json:"organizationId,omitempty"`
	Organization   *OrganizationSnapshot `json:"organization,omitempty"`
	IsVerified     bool                  `json:"isVerified"`
}

// FullName joins first and last name for display.
func (c *Claims) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	default:
		return c.FirstName + " " + c.LastName
	}
}

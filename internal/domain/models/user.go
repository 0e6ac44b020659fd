// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an account on the portal: super-admins, organization admins,
// managers, agents, and citizens.
//
// The auth core mutates only LastLoginAt; creation and edits of all
// other fields belong to the administration surfaces.
type User struct {
	ID             primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Email          string              `bson:"email" json:"email"`
	PasswordHash   string              `bson:"password_hash" json:"-"`
	FirstName      string              `bson:"first_name" json:"first_name"`
	LastName       string              `bson:"last_name" json:"last_name"`
	Role           Role                `bson:"role" json:"role"`
	OrganizationID *primitive.ObjectID `bson:"organization_id,omitempty" json:"organization_id,omitempty"`
	IsActive       bool                `bson:"is_active" json:"is_active"`
	IsVerified     bool                `bson:"is_verified" json:"is_verified"`
	LastLoginAt    *time.Time          `bson:"last_login_at,omitempty" json:"last_login_at,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// FullName returns "FirstName LastName" for display.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

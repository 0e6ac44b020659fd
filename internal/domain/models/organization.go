// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrganizationType classifies a citizen-service organization.
type OrganizationType string

const (
	OrgMinistere        OrganizationType = "MINISTERE"
	OrgDirectionGen     OrganizationType = "DIRECTION_GENERALE"
	OrgMairie           OrganizationType = "MAIRIE"
	OrgOrganismeSocial  OrganizationType = "ORGANISME_SOCIAL"
	OrgAutre            OrganizationType = "AUTRE"
)

// Label returns the French display name for the type.
func (t OrganizationType) Label() string {
	switch t {
	case OrgMinistere:
		return "Ministère"
	case OrgDirectionGen:
		return "Direction Générale"
	case OrgMairie:
		return "Mairie"
	case OrgOrganismeSocial:
		return "Organisme Social"
	case OrgAutre:
		return "Autre"
	default:
		return string(t)
	}
}

// Organization statuses.
const (
	OrganizationStatusActive   = "active"
	OrganizationStatusInactive = "inactive"
)

// Organization is a government entity users can belong to (mairie,
// ministère, organisme social, …). The auth core only reads name and
// type when building session claims; everything else belongs to the
// admin surfaces.
type Organization struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name   string             `bson:"name" json:"name"`
	Type   OrganizationType   `bson:"type" json:"type"`
	Code   string             `bson:"code,omitempty" json:"code,omitempty"`
	Status string             `bson:"status,omitempty" json:"status,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

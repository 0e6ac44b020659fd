package metricsstore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guichet-ga/guichet/internal/app/store/audit"
	"github.com/guichet-ga/guichet/internal/domain/models"
)

// Counts is the set of totals used by the role dashboards.
type Counts struct {
	Organizations  int64
	Admins         int64
	Managers       int64
	Agents         int64
	Citizens       int64
	FailedLogins24 int64
}

// FetchDashboardCounts returns the high-level counts used by the admin
// dashboards. Intentionally tolerant: on error a counter stays 0.
func FetchDashboardCounts(ctx context.Context, db *mongo.Database) Counts {
	var out Counts

	if n, err := db.Collection("organizations").CountDocuments(ctx, bson.M{}); err == nil {
		out.Organizations = n
	}

	users := db.Collection("users")
	if n, err := users.CountDocuments(ctx, bson.M{"role": models.RoleAdmin}); err == nil {
		out.Admins = n
	}
	if n, err := users.CountDocuments(ctx, bson.M{"role": models.RoleManager}); err == nil {
		out.Managers = n
	}
	if n, err := users.CountDocuments(ctx, bson.M{"role": models.RoleAgent}); err == nil {
		out.Agents = n
	}
	if n, err := users.CountDocuments(ctx, bson.M{"role": models.RoleUser}); err == nil {
		out.Citizens = n
	}

	since := time.Now().Add(-24 * time.Hour)
	failedFilter := bson.M{
		"action":    audit.ActionLoginFailed,
		"timestamp": bson.M{"$gte": since},
	}
	if n, err := db.Collection("audit_logs").CountDocuments(ctx, failedFilter); err == nil {
		out.FailedLogins24 = n
	}

	return out
}

// FetchOrgAgentCount counts the agents of one organization, for the
// manager dashboard.
func FetchOrgAgentCount(ctx context.Context, db *mongo.Database, orgID primitive.ObjectID) int64 {
	n, err := db.Collection("users").CountDocuments(ctx, bson.M{
		"role":            models.RoleAgent,
		"organization_id": orgID,
	})
	if err != nil {
		return 0
	}
	return n
}

// internal/app/bootstrap/seed.go
package bootstrap

import (
	"context"
	"fmt"

	organizationstore "github.com/guichet-ga/guichet/internal/app/store/organizations"
	userstore "github.com/guichet-ga/guichet/internal/app/store/users"
	"github.com/guichet-ga/guichet/internal/app/system/auth"
	"github.com/guichet-ga/guichet/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

type demoAccount struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      models.Role
	OrgCode   string
}

var demoOrganizations = []models.Organization{
	{Name: "Mairie de Libreville", Type: models.OrgMairie, Code: "MAIRIE-LBV"},
	{Name: "Direction Générale de la Documentation et de l'Immigration", Type: models.OrgDirectionGen, Code: "DGDI"},
	{Name: "Caisse Nationale de Sécurité Sociale", Type: models.OrgOrganismeSocial, Code: "CNSS"},
}

var demoAccounts = []demoAccount{
	{"superadmin@admin.ga", "SuperAdmin2024!", "Super", "Admin", models.RoleSuperAdmin, ""},
	{"admin.libreville@admin.ga", "AdminLbv2024!", "Marie", "Nguema", models.RoleAdmin, "MAIRIE-LBV"},
	{"manager.dgdi@admin.ga", "ManagerDgdi2024!", "Paul", "Obame", models.RoleManager, "DGDI"},
	{"agent.cnss@admin.ga", "AgentCnss2024!", "Sylvie", "Mba", models.RoleAgent, "CNSS"},
	{"jean.dupont@gmail.com", "Citoyen2024!", "Jean", "Dupont", models.RoleUser, ""},
}

// seedDemoAccounts populates demo organizations and accounts for local
// development. It only runs against an empty users collection so it
// can never touch real data.
func seedDemoAccounts(ctx context.Context, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	n, err := db.Collection("users").CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("count users before seeding: %w", err)
	}
	if n > 0 {
		logger.Info("seed skipped, users collection is not empty", zap.Int64("users", n))
		return nil
	}

	orgs := organizationstore.New(db)
	orgIDs := map[string]models.Organization{}
	for _, org := range demoOrganizations {
		created, err := orgs.Create(ctx, org)
		if err != nil {
			return fmt.Errorf("seed organization %s: %w", org.Code, err)
		}
		orgIDs[org.Code] = created
	}

	users := userstore.New(db)
	for _, acct := range demoAccounts {
		hash, err := auth.HashPassword(acct.Password)
		if err != nil {
			return fmt.Errorf("hash demo password: %w", err)
		}

		u := models.User{
			Email:        acct.Email,
			PasswordHash: hash,
			FirstName:    acct.FirstName,
			LastName:     acct.LastName,
			Role:         acct.Role,
			IsActive:     true,
			IsVerified:   true,
		}
		if acct.OrgCode != "" {
			org := orgIDs[acct.OrgCode]
			u.OrganizationID = &org.ID
		}

		if _, err := users.Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", acct.Email, err)
		}
	}

	logger.Info("demo accounts seeded",
		zap.Int("organizations", len(demoOrganizations)),
		zap.Int("users", len(demoAccounts)))
	return nil
}

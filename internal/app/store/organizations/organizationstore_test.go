package organizationstore_test

import (
	"errors"
	"testing"

	organizationstore "github.com/guichet-ga/guichet/internal/app/store/organizations"
	"github.com/guichet-ga/guichet/internal/domain/models"
	"github.com/guichet-ga/guichet/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreateAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Organization{
		Name: "Mairie de Libreville",
		Type: models.OrgMairie,
		Code: "MAIRIE-LBV",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Error("expected ID to be assigned")
	}
	if created.Status != models.OrganizationStatusActive {
		t.Errorf("default status: got %q, want %q", created.Status, models.OrganizationStatusActive)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Mairie de Libreville" {
		t.Errorf("Name: got %q", got.Name)
	}
	if got.Type != models.OrgMairie {
		t.Errorf("Type: got %q", got.Type)
	}
}

func TestStore_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, organizationstore.ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestStore_GetByCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Organization{
		Name: "CNSS",
		Type: models.OrgOrganismeSocial,
		Code: "CNSS",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	got, err := store.GetByCode(ctx, "CNSS")
	if err != nil {
		t.Fatalf("GetByCode failed: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("ID: got %s, want %s", got.ID.Hex(), created.ID.Hex())
	}

	if _, err := store.GetByCode(ctx, "NOPE"); !errors.Is(err, organizationstore.ErrNotFound) {
		t.Errorf("unknown code: got %v, want ErrNotFound", err)
	}
}

func TestStore_DuplicateCode(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.EnsureIndexes(ctx); err != nil {
		t.Fatalf("EnsureIndexes failed: %v", err)
	}

	org := models.Organization{Name: "DGDI", Type: models.OrgDirectionGen, Code: "DGDI"}
	if _, err := store.Create(ctx, org); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := store.Create(ctx, org); !errors.Is(err, organizationstore.ErrDuplicateOrganization) {
		t.Errorf("second Create: got %v, want ErrDuplicateOrganization", err)
	}
}

func TestStore_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Organization{
		Name: "Mairie de Port-Gentil",
		Type: models.OrgMairie,
		Code: "MAIRIE-POG",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	err = store.Update(ctx, created.ID, models.Organization{Status: models.OrganizationStatusInactive})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Status != models.OrganizationStatusInactive {
		t.Errorf("Status: got %q, want inactive", got.Status)
	}
	// Untouched fields survive a partial update.
	if got.Name != "Mairie de Port-Gentil" {
		t.Errorf("Name: got %q", got.Name)
	}
}

func TestStore_ListSortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"DGDI", "CNSS", "Mairie de Libreville"} {
		if _, err := store.Create(ctx, models.Organization{
			Name: name,
			Type: models.OrgAutre,
			Code: name,
		}); err != nil {
			t.Fatalf("Create %s failed: %v", name, err)
		}
	}

	orgs, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(orgs) != 3 {
		t.Fatalf("expected 3 organizations, got %d", len(orgs))
	}
	for i := 1; i < len(orgs); i++ {
		if orgs[i].Name < orgs[i-1].Name {
			t.Errorf("organizations not sorted by name at index %d", i)
		}
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Organization{
		Name: "Temporaire",
		Type: models.OrgAutre,
		Code: "TMP",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted count: got %d, want 1", n)
	}

	remaining, err := store.Count(ctx, bson.M{})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if remaining != 0 {
		t.Errorf("expected empty collection, got %d", remaining)
	}
}

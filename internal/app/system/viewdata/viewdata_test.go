package viewdata_test

import (
	"net/http/httptest"
	"testing"

	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
	"github.com/guichet-ga/guichet/internal/domain/models"
	"github.com/guichet-ga/guichet/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestNewBaseVM_Anonymous(t *testing.T) {
	req := httptest.NewRequest("GET", "/services", nil)

	vm := viewdata.NewBaseVM(req, "Services", "")

	if vm.SiteName != viewdata.SiteName {
		t.Errorf("SiteName: got %q", vm.SiteName)
	}
	if vm.Title != "Services" {
		t.Errorf("Title: got %q", vm.Title)
	}
	if vm.IsLoggedIn {
		t.Error("anonymous visitor should not be logged in")
	}
	if vm.CurrentPath != "/services" {
		t.Errorf("CurrentPath: got %q", vm.CurrentPath)
	}
}

func TestNewBaseVM_LoggedIn(t *testing.T) {
	claims := testutil.AgentClaims(primitive.NewObjectID())
	req := testutil.NewAuthenticatedRequest("GET", "/agent/dashboard", claims)

	vm := viewdata.NewBaseVM(req, "Tableau de bord", "/agent/dashboard")

	if !vm.IsLoggedIn {
		t.Fatal("expected logged-in view model")
	}
	if vm.UserName != "Sylvie Mba" {
		t.Errorf("UserName: got %q", vm.UserName)
	}
	if vm.Role != models.RoleAgent {
		t.Errorf("Role: got %q", vm.Role)
	}
	if vm.RoleLabel != "Agent" {
		t.Errorf("RoleLabel: got %q", vm.RoleLabel)
	}
	if vm.DashboardPath != "/agent/dashboard" {
		t.Errorf("DashboardPath: got %q", vm.DashboardPath)
	}
}

func TestNewBaseVM_OrganizationName(t *testing.T) {
	claims := testutil.ManagerClaims(primitive.NewObjectID())
	claims.Organization = &session.OrganizationSnapshot{
		Name: "DGDI",
		Type: models.OrgDirectionGen,
	}
	req := testutil.NewAuthenticatedRequest("GET", "/manager/dashboard", claims)

	vm := viewdata.NewBaseVM(req, "Espace manager", "/manager/dashboard")

	if vm.UserOrg != "DGDI" {
		t.Errorf("UserOrg: got %q", vm.UserOrg)
	}
}

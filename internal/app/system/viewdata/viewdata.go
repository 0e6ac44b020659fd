// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/guichet-ga/guichet/internal/app/system/session"
	"github.com/guichet-ga/guichet/internal/domain/models"
)

// SiteName is the portal's display name, shown in the header of every
// page.
const SiteName = "Guichet Citoyen"

// BaseVM contains common fields for all view models. Embed it in
// feature-specific view models:
//
//	type pageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
type BaseVM struct {
	SiteName string
	Title    string

	// User context (from the auth gate)
	IsLoggedIn bool
	UserName   string
	UserEmail  string
	Role       models.Role
	RoleLabel  string
	UserOrg    string

	// Where the user's dashboard lives; drives the header link.
	DashboardPath string

	CurrentPath string
}

// NewBaseVM builds a BaseVM from the request context. dashboardPath
// comes from the policy so the header can point at the right home.
func NewBaseVM(r *http.Request, title, dashboardPath string) BaseVM {
	vm := BaseVM{
		SiteName:    SiteName,
		Title:       title,
		CurrentPath: r.URL.Path,
	}

	claims, ok := session.CurrentClaims(r)
	if !ok {
		return vm
	}

	vm.IsLoggedIn = true
	vm.UserName = claims.FullName()
	vm.UserEmail = claims.Email
	vm.Role = claims.Role
	vm.RoleLabel = claims.Role.Label()
	vm.DashboardPath = dashboardPath
	if claims.Organization != nil {
		vm.UserOrg = claims.Organization.Name
	}
	return vm
}

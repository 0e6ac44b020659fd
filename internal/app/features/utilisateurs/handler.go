// internal/app/features/utilisateurs/handler.go
package utilisateurs

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/guichet-ga/guichet/internal/app/features/errors"
	userstore "github.com/guichet-ga/guichet/internal/app/store/users"
	"github.com/guichet-ga/guichet/internal/app/system/timeouts"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
	"github.com/guichet-ga/guichet/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const pageSize = 25

type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

type userRow struct {
	Name      string
	Email     string
	RoleLabel string
	Active    bool
	LastLogin string
}

type listData struct {
	viewdata.BaseVM
	Users      []userRow
	Total      int64
	Page       int64
	PrevPage   int64
	NextPage   int64
	HasPrev    bool
	HasNext    bool
	RoleFilter string
	Roles      []models.Role
}

// ServeList handles GET /admin/utilisateurs with optional ?role= and
// ?page= parameters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list users")
	defer cancel()

	filter := userstore.ListFilter{Limit: pageSize}

	roleParam := query.Get(r, "role")
	if role, ok := models.ParseRole(roleParam); ok {
		filter.Role = role
	} else {
		roleParam = ""
	}

	page := int64(1)
	if p, err := strconv.ParseInt(query.Get(r, "page"), 10, 64); err == nil && p > 1 {
		page = p
	}
	filter.Offset = (page - 1) * pageSize

	store := userstore.New(h.DB)

	users, err := store.List(ctx, filter)
	if err != nil {
		h.Log.Error("list users failed", zap.Error(err))
		uierrors.RenderUnavailable(w, r, "/admin/dashboard")
		return
	}
	total, err := store.Count(ctx, filter)
	if err != nil {
		h.Log.Warn("count users failed", zap.Error(err))
	}

	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		row := userRow{
			Name:      u.FullName(),
			Email:     u.Email,
			RoleLabel: u.Role.Label(),
			Active:    u.IsActive,
		}
		if u.LastLoginAt != nil {
			row.LastLogin = u.LastLoginAt.Format("02/01/2006 15:04")
		}
		rows = append(rows, row)
	}

	data := listData{
		BaseVM:     viewdata.NewBaseVM(r, "Utilisateurs", "/admin/dashboard"),
		Users:      rows,
		Total:      total,
		Page:       page,
		PrevPage:   page - 1,
		NextPage:   page + 1,
		HasPrev:    page > 1,
		HasNext:    filter.Offset+int64(len(users)) < total,
		RoleFilter: roleParam,
		Roles:      models.AllRoles(),
	}

	templates.Render(w, r, "utilisateurs", data)
}

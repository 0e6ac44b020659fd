// internal/app/features/journal/handler.go
package journal

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/guichet-ga/guichet/internal/app/features/errors"
	"github.com/guichet-ga/guichet/internal/app/store/audit"
	"github.com/guichet-ga/guichet/internal/app/system/timeouts"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const pageSize = 50

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

type entryRow struct {
	When    string
	Action  string
	Email   string
	IP      string
	Success bool
	Reason  string
}

type listData struct {
	viewdata.BaseVM
	Entries      []entryRow
	Total        int64
	Page         int64
	PrevPage     int64
	NextPage     int64
	HasPrev      bool
	HasNext      bool
	ActionFilter string
	Actions      []string
}

// ServeList handles GET /admin/journal with optional ?action= and
// ?page= parameters.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeouts.WithTimeout(r.Context(), timeouts.Medium(), h.Log, "list audit log")
	defer cancel()

	filter := audit.QueryFilter{Limit: pageSize}

	action := query.Get(r, "action")
	switch action {
	case audit.ActionLogin, audit.ActionLoginFailed, audit.ActionLogout:
		filter.Action = action
	default:
		action = ""
	}

	page := int64(1)
	if p, err := strconv.ParseInt(query.Get(r, "page"), 10, 64); err == nil && p > 1 {
		page = p
	}
	filter.Offset = (page - 1) * pageSize

	store := audit.New(h.DB)

	entries, err := store.Query(ctx, filter)
	if err != nil {
		h.Log.Error("audit query failed", zap.Error(err))
		uierrors.RenderUnavailable(w, r, "/admin/dashboard")
		return
	}
	total, err := store.CountByFilter(ctx, filter)
	if err != nil {
		h.Log.Warn("audit count failed", zap.Error(err))
	}

	rows := make([]entryRow, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, entryRow{
			When:    e.Timestamp.Format("02/01/2006 15:04:05"),
			Action:  e.Action,
			Email:   e.UserEmail,
			IP:      e.IP,
			Success: e.Success,
			Reason:  e.FailureReason,
		})
	}

	data := listData{
		BaseVM:       viewdata.NewBaseVM(r, "Journal d'activité", "/admin/dashboard"),
		Entries:      rows,
		Total:        total,
		Page:         page,
		PrevPage:     page - 1,
		NextPage:     page + 1,
		HasPrev:      page > 1,
		HasNext:      filter.Offset+int64(len(entries)) < total,
		ActionFilter: action,
		Actions:      []string{audit.ActionLogin, audit.ActionLoginFailed, audit.ActionLogout},
	}

	templates.Render(w, r, "journal", data)
}

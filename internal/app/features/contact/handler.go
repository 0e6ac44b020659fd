// internal/app/features/contact/handler.go
package contact

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/guichet-ga/guichet/internal/app/system/htmlsanitize"
	"github.com/guichet-ga/guichet/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type pageData struct {
	viewdata.BaseVM
	Sent  bool
	Error string
}

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
	}
}

// ServeContact handles GET /contact.
func (h *Handler) ServeContact(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "contact", pageData{
		BaseVM: viewdata.NewBaseVM(r, "Contact", ""),
	})
}

// HandleContactPost handles POST /contact. The message is sanitized
// and logged; delivery to a ticketing system comes later.
func (h *Handler) HandleContactPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	message := htmlsanitize.Sanitize(strings.TrimSpace(r.PostFormValue("message")))

	if email == "" || message == "" {
		templates.Render(w, r, "contact", pageData{
			BaseVM: viewdata.NewBaseVM(r, "Contact", ""),
			Error:  "Veuillez renseigner votre email et votre message.",
		})
		return
	}

	h.Log.Info("contact message received",
		zap.String("email", email),
		zap.Int("message_len", len(message)))

	templates.Render(w, r, "contact", pageData{
		BaseVM: viewdata.NewBaseVM(r, "Contact", ""),
		Sent:   true,
	})
}

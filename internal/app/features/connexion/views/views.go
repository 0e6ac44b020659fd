// internal/app/features/connexion/views/views.go
package connexion

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "connexion",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}

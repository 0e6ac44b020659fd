// internal/app/features/utilisateurs/views/views.go
package utilisateurs

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "utilisateurs",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}

// internal/app/features/journal/views/views.go
package journal

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "journal",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}

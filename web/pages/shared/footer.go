package shared

import (
	"serversentry/views/components"

	"github.com/rohanthewiz/element"
)

// Footer is the page footer with the copyright line.
// It has no fields; every page renders the same footer.
type Footer struct{}

// Render implements element.Component.
// &copy; is left as an entity for the browser to resolve.
func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "app-footer").R(
		b.P().T("&copy; " + components.LogoText),
	)
	return nil
}

package components

import (
	"github.com/rohanthewiz/element"
)

// NavLogoClass is the container class the header applies to the wordmark
const NavLogoClass = "nav-logo"

// Header component for the application
type Header struct{}

func (h Header) Render(b *element.Builder) (x any) {
	b.Header("id", "main-header").R(
		b.DivClass("header-content").R(
			b.A("href", "/", "class", "header-brand").R(
				element.RenderComponents(b, NewLogo(NavLogoClass)),
			),
		),
	)
	return
}

package pages

import (
	"html"

	"serversentry/views"
	"serversentry/views/components"

	"github.com/rohanthewiz/element"
)

// NotFound is the standalone page served when a path matches nothing.
// It uses SimpleLayout, so there is no header or stylesheet.
type NotFound struct {
	Path string
}

func (n NotFound) Render() string {
	return views.SimpleLayout("Not Found", notFoundBody{path: n.Path})
}

type notFoundBody struct {
	path string
}

func (nf notFoundBody) Render(b *element.Builder) (x any) {
	b.DivClass("not-found").R(
		element.RenderComponents(b, components.Logo{}),
		b.H2().T("404 - Page Not Found"),
		// The path comes from the request line
		b.P().T("Nothing is served at "+html.EscapeString(nf.path)),
		b.A("href", "/").T("Back to "+components.LogoText),
	)
	return
}

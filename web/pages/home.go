// Package pages contains the full-page views served by the web shell.
package pages

import (
	"serversentry/views"
	"serversentry/web/pages/comps"
	"serversentry/web/pages/shared"

	"github.com/rohanthewiz/element"
)

// HomePage is the instance served at "/"
var HomePage = Home{
	Page:    shared.Page{Title: "ServerSentry"},
	Heading: "Server monitoring",
}

// Home is the landing page.
// It embeds shared.Page for its Title and Footer.
type Home struct {
	shared.Page
	Heading string
}

// Render returns the complete HTML document
func (h Home) Render() (out string) {
	return views.BaseLayout(h.Title, views.PageWithHeader{Content: h.content()})
}

func (h Home) content() element.Component {
	return homeContent{heading: comps.Heading{Title: h.Heading}, footer: h.Footer()}
}

type homeContent struct {
	heading comps.Heading
	footer  shared.Footer
}

func (c homeContent) Render(b *element.Builder) (x any) {
	b.DivClass("home").R(
		element.RenderComponents(b, c.heading),
		b.P().T("Watch your systems from one place."),
	)
	element.RenderComponents(b, c.footer)
	return
}

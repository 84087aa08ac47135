package views

import (
	"serversentry/views/components"

	"github.com/rohanthewiz/element"
)

const defaultTitle = components.LogoText

// LogoStylesheetHref is where the web shell serves the wordmark stylesheet
const LogoStylesheetHref = "/static/css/" + components.LogoStylesheet

// BaseLayout creates the base HTML structure for all pages
func BaseLayout(title string, bodyComponent element.Component) string {
	if title == "" {
		title = defaultTitle
	}
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
			b.Title().T(title),
			b.Link("rel", "stylesheet", "href", LogoStylesheetHref),
		),
		b.Body().R(
			element.RenderComponents(b, bodyComponent),
		),
	)

	return b.String()
}

// SimpleLayout creates a minimal HTML layout without the header
// Useful for error pages
func SimpleLayout(title string, content element.Component) string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		b.Head().R(
			b.Meta("charset", "UTF-8"),
			b.Title().T(title),
		),
		b.Body().R(
			element.RenderComponents(b, content),
		),
	)

	return b.String()
}

// PageWithHeader wraps content with the standard application header
type PageWithHeader struct {
	Content element.Component
}

func (p PageWithHeader) Render(b *element.Builder) (x any) {
	b.DivClass("app-container").R(
		element.RenderComponents(b, components.Header{}),
		b.Main("class", "content-wrapper").R(
			element.RenderComponents(b, p.Content),
		),
	)
	return
}

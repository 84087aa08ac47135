package components

import (
	"html"

	"github.com/rohanthewiz/element"
)

// LogoText is the wordmark rendered by Logo regardless of input
const LogoText = "ServerSentry"

// LogoStylesheet identifies the stylesheet that styles the wordmark
const LogoStylesheet = "logo.css"

// Logo renders the product wordmark.
// A nil ClassName leaves the wrapping div without a class attribute.
// Any other value, including "", becomes the div's class attribute value.
// The value is escaped so the parsed attribute equals ClassName exactly.
type Logo struct {
	ClassName *string
}

// NewLogo returns a Logo whose container carries className
func NewLogo(className string) Logo {
	return Logo{ClassName: &className}
}

func (l Logo) Render(b *element.Builder) (x any) {
	b.Div(l.attrs()...).R(
		b.H1Class("logo-text").T(LogoText),
	)
	return
}

// String renders the logo as a standalone fragment
func (l Logo) String() string {
	b := element.NewBuilder()
	element.RenderComponents(b, l)
	return b.String()
}

func (l Logo) attrs() []string {
	if l.ClassName == nil {
		return nil
	}
	// element writes attribute values as given
	return []string{"class", html.EscapeString(*l.ClassName)}
}

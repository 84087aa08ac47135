package api

import (
	"net/url"

	"serversentry/views/components"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// LogoFragment returns the wordmark as an HTML fragment.
//
// Query parameters:
//   - class: class for the logo container. When the parameter is absent the
//     container has no class attribute; an empty value yields class="".
func LogoFragment(ctx rweb.Context) error {
	logo := logoFromQuery(ctx.Request().Query())

	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(logo.String())
}

// logoFromQuery builds a Logo from a raw query string.
// The class value is passed through as received.
func logoFromQuery(rawQuery string) components.Logo {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		// ParseQuery keeps the pairs it could decode
		logger.Debug("Partially malformed logo query", "query", rawQuery, "error", err.Error())
	}

	classes, ok := values["class"]
	if !ok || len(classes) == 0 {
		return components.Logo{}
	}
	return components.NewLogo(classes[0])
}

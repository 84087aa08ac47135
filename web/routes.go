package web

import (
	"serversentry/web/api"
	"serversentry/web/pages"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes.
// Static assets and the favicon are registered separately by SetupStaticFiles.
func setupRoutes(s *rweb.Server) {
	// Page routes - full HTML documents
	s.Get("/", func(ctx rweb.Context) error {
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(pages.HomePage.Render())
	})

	// Fragment routes - HTML partials the client swaps into its own page
	// GET /logo?class=nav-logo -> <div class="nav-logo"><h1 class="logo-text">ServerSentry</h1></div>
	s.Get("/logo", api.LogoFragment)

	// Health check for load balancers and uptime probes
	s.Get("/healthz", api.HealthCheck)
}

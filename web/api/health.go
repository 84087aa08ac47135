package api

import (
	"net/http"

	"github.com/rohanthewiz/rweb"
)

// Version is set at build time with -ldflags "-X serversentry/web/api.Version=..."
var Version = "dev"

const serviceName = "serversentry"

// HealthCheck returns the health status of the application
func HealthCheck(ctx rweb.Context) error {
	ctx.SetStatus(http.StatusOK)
	return ctx.WriteJSON(map[string]string{
		"status":  "healthy",
		"service": serviceName,
		"version": Version,
	})
}

package web

import (
	"serversentry/config"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// NewServer creates and configures the RWeb server
func NewServer(cfg *config.Config) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Address,
		Verbose: cfg.Verbose,
	})

	s.Use(rweb.RequestInfo)
	s.Use(RequestIDMiddleware)
	s.Use(SecurityHeadersMiddleware)
	s.Use(LoggingMiddleware)

	setupRoutes(s)
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, cfg *config.Config) error {
	logger.Info("ServerSentry web server starting", "address", cfg.Address)
	if err := s.Run(); err != nil {
		return serr.Wrap(err, "server stopped")
	}
	return nil
}

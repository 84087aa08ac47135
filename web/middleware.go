package web

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

const requestIDHeader = "X-Request-ID"

// Request header lookups are case-sensitive, so try the spellings clients send
var requestIDHeaderForms = []string{requestIDHeader, "X-Request-Id", "x-request-id"}

// RequestIDMiddleware tags each request with an ID, keeping one supplied by the caller
func RequestIDMiddleware(c rweb.Context) error {
	requestID := callerRequestID(c.Request().Header)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	c.Set("request_id", requestID)
	c.Response().SetHeader(requestIDHeader, requestID)

	return c.Next()
}

// callerRequestID returns the first non-empty request ID header value
func callerRequestID(header func(string) string) string {
	for _, name := range requestIDHeaderForms {
		if id := strings.TrimSpace(header(name)); id != "" {
			return id
		}
	}
	return ""
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// Everything is served from this origin
	csp := []string{
		"default-src 'self'",
		"style-src 'self'",
		"img-src 'self' data:",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	err := c.Next()

	requestID, _ := c.Get("request_id").(string)
	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"request_id", requestID,
		"duration", time.Since(start).String(),
	)
	if err != nil {
		logger.LogErr(err, "request failed: "+c.Request().Path())
	}

	return err
}

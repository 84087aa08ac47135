package web

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"strings"

	"serversentry/web/pages"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

// Embed static directory files
//
//go:embed all:static
var staticFiles embed.FS

const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#1f6f5c"/><text x="250" y="320" font-family="Arial,sans-serif" font-weight="900" font-size="220" fill="white" text-anchor="middle">SS</text></svg>`

// SetupStaticFiles configures static file serving using embedded files
func SetupStaticFiles(s *rweb.Server) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(err, "failed to get static subdirectory")
		return
	}

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	s.Get("/static/*", func(c rweb.Context) error {
		return serveStatic(c, staticFS, strings.TrimPrefix(c.Request().Path(), "/static/"))
	})
}

func serveStatic(c rweb.Context, staticFS fs.FS, path string) error {
	content, err := readStatic(staticFS, path)
	if err != nil {
		logger.Debug("Static file not served", "path", path, "error", err.Error())
		return writeNotFound(c)
	}

	if contentType := getContentType(path); contentType != "" {
		c.Response().SetHeader("Content-Type", contentType)
	}
	c.Response().SetHeader("Cache-Control", "public, max-age=3600")

	return c.Bytes(content)
}

// writeNotFound answers with the standalone 404 page
func writeNotFound(c rweb.Context) error {
	c.SetStatus(http.StatusNotFound)
	c.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return c.WriteHTML(pages.NotFound{Path: c.Request().Path()}.Render())
}

// readStatic returns the content of a regular file in staticFS
func readStatic(staticFS fs.FS, path string) ([]byte, error) {
	if !fs.ValidPath(path) {
		return nil, serr.New("invalid static path: " + path)
	}

	file, err := staticFS.Open(path)
	if err != nil {
		return nil, serr.Wrap(err, "failed to open static file")
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, serr.Wrap(err, "failed to stat static file")
	}
	if stat.IsDir() {
		return nil, serr.New("static path is a directory: " + path)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read static file")
	}
	return content, nil
}

// getContentType returns the content type based on file extension
func getContentType(path string) string {
	switch {
	case strings.HasSuffix(path, ".css"):
		return "text/css; charset=utf-8"
	case strings.HasSuffix(path, ".js"):
		return "application/javascript"
	case strings.HasSuffix(path, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(path, ".png"):
		return "image/png"
	case strings.HasSuffix(path, ".woff2"):
		return "font/woff2"
	default:
		return ""
	}
}

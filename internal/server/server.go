// Package server serves generated GeoJSON documents for quick preview.
package server

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Context holds dependencies for request handlers.
type Context struct {
	// Directory the .geojson documents are served from.
	Dir string
}

// FileInfo describes one servable document in the listing.
type FileInfo struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
}

// NewContext initializes the handler context over a document directory.
func NewContext(dir string) (*Context, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}

	ctx := &Context{Dir: dir}

	files, err := ctx.list()
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("dir", dir).
		Int("documents", len(files)).
		Msg("Initializing preview context")

	return ctx, nil
}

// list returns the .geojson documents in the directory, sorted by name.
func (s *Context) list() ([]FileInfo, error) {
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		return nil, err
	}

	files := make([]FileInfo, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".geojson") {
			continue
		}

		info, err := e.Info()
		if err != nil {
			continue
		}

		files = append(files, FileInfo{Name: e.Name(), Size: info.Size()})
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return files, nil
}

// HandleList serves the JSON listing of available documents.
func (s *Context) HandleList(w http.ResponseWriter, r *http.Request) {
	files, err := s.list()
	if err != nil {
		log.Error().Err(err).Str("dir", s.Dir).Msg("Failed to list documents")
		http.Error(w, "failed to list documents", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	// Ignoring error as we cannot handle client disconnects
	_ = json.NewEncoder(w).Encode(files)
}

// HandleFile serves a single document from /files/{name}.
func (s *Context) HandleFile(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(r.URL.Path, "/files/")

	// Reject path traversal and nested paths
	if name == "" || name != filepath.Base(name) || !strings.HasSuffix(name, ".geojson") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(s.Dir, name)
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/geo+json")
	http.ServeFile(w, r, path)
}

// RequestLogger is a middleware to log HTTP requests.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.status).
			Str("ip", r.RemoteAddr).
			Dur("duration", time.Since(start)).
			Msg("Request processed")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

// WriteHeader captures the status code before writing it out.
func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

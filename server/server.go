// Package server exposes the recurrence engine over a small in-process
// JSON API. The request body is the same wire shape the editing UI
// produces; the expand response is the matching array of YYYY-MM-DD
// strings.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dategrid/librecur/recur"
	"github.com/emersion/go-ical"
)

const (
	// HTTP headers
	headerContentType = "Content-Type"

	// MIME types
	mimeTypeJSON     = "application/json; charset=utf-8"
	mimeTypeCalendar = "text/calendar; charset=utf-8"
)

// Server exposes a recurrence engine over HTTP.
type Server struct {
	engine   *recur.Engine
	baseURI  string
	logger   *slog.Logger
	handlers map[string]http.HandlerFunc
}

// New creates a server around the given engine. All endpoints live under
// baseURI; logger defaults to slog.Default().
func New(engine *recur.Engine, baseURI string, logger *slog.Logger) (*Server, error) {
	if engine == nil {
		return nil, fmt.Errorf("engine is required")
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		engine:   engine,
		baseURI:  strings.TrimSuffix(baseURI, "/"),
		logger:   logger,
		handlers: make(map[string]http.HandlerFunc),
	}

	// Register endpoint handlers
	s.handlers["/expand"] = s.handleExpand
	s.handlers["/ical"] = s.handleICal

	return s, nil
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.TrimPrefix(r.URL.Path, s.baseURI)
	handler, ok := s.handlers[path]
	if !ok {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}

	s.logger.Info("request", "method", r.Method, "path", r.URL.Path)
	handler(w, r)
}

// readSpec decodes the request body. On failure it writes the 400 response
// itself and reports false.
func (s *Server) readSpec(w http.ResponseWriter, r *http.Request) (recur.Spec, bool) {
	var spec recur.Spec
	if err := json.NewDecoder(r.Body).Decode(&spec); err != nil {
		http.Error(w, "Failed to read request body", http.StatusBadRequest)
		return recur.Spec{}, false
	}
	return spec, true
}

func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.readSpec(w, r)
	if !ok {
		return
	}

	dates := s.engine.ExpandStrings(spec)

	w.Header().Set(headerContentType, mimeTypeJSON)
	if err := json.NewEncoder(w).Encode(dates); err != nil {
		s.logger.Error("encoding expand response", "error", err)
	}
}

func (s *Server) handleICal(w http.ResponseWriter, r *http.Request) {
	spec, ok := s.readSpec(w, r)
	if !ok {
		return
	}

	summary := r.URL.Query().Get("summary")
	if summary == "" {
		summary = "Recurring event"
	}

	cal, err := recur.ExportICal(spec, summary)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set(headerContentType, mimeTypeCalendar)
	if err := ical.NewEncoder(w).Encode(cal); err != nil {
		s.logger.Error("encoding calendar response", "error", err)
	}
}

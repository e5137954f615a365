// Package http exposes the content read operations as a JSON API.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fwojciec/contentdir"
)

// Server serves the four read-only content endpoints plus the tag index:
//
//	GET /api/items                      list/filter/paginate
//	GET /api/items/{type}/{slug}        get one item
//	GET /api/slugs                      static-path enumeration
//	GET /api/search                     body-stripped search snapshot
//	GET /api/tags                       tag counts
type Server struct {
	Addr    string
	Service contentdir.Service
	Logger  *slog.Logger

	// RPS limits requests per second per client IP. Zero disables limiting.
	RPS float64

	server *http.Server
}

// NewServer creates a Server with defaults.
func NewServer(addr string, service contentdir.Service, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{Addr: addr, Service: service, Logger: logger}
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/items", s.handleItems)
	mux.HandleFunc("GET /api/items/{type}/{slug}", s.handleItemBySlug)
	mux.HandleFunc("GET /api/slugs", s.handleSlugs)
	mux.HandleFunc("GET /api/search", s.handleSearch)
	mux.HandleFunc("GET /api/tags", s.handleTags)

	var h http.Handler = mux
	if s.RPS > 0 {
		h = NewClientLimiter(s.RPS).Middleware(h)
	}
	return h
}

// ListenAndServe starts the server and blocks until ctx is canceled or the
// listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	s.server = &http.Server{
		Addr:         s.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		errc <- s.server.ListenAndServe()
	}()

	s.Logger.Info("serving content API", "addr", s.Addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.server.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

func (s *Server) handleItems(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.Service.Query(r.Context(), q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleItemBySlug(w http.ResponseWriter, r *http.Request) {
	item, err := s.Service.ItemBySlug(r.Context(), r.PathValue("type"), r.PathValue("slug"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleSlugs(w http.ResponseWriter, r *http.Request) {
	refs, err := s.Service.Slugs(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, refs)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	snapshot := s.Service.SearchSnapshot(r.Context())

	etag := `"` + snapshot.Checksum() + `"`
	if !snapshot.Failed() {
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
		w.Header().Set("ETag", etag)
	}
	s.writeJSON(w, http.StatusOK, snapshot)
}

func (s *Server) handleTags(w http.ResponseWriter, r *http.Request) {
	counts, err := s.Service.TagCounts(r.Context(), r.URL.Query().Get("type"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"counts": counts,
		"tags":   contentdir.SortedTags(counts),
	})
}

// parseQuery maps URL query parameters to a contentdir.Query.
func parseQuery(r *http.Request) (contentdir.Query, error) {
	values := r.URL.Query()
	q := contentdir.Query{
		ContentType: values.Get("type"),
		Query:       values.Get("q"),
		SortBy:      values.Get("sortBy"),
		SortOrder:   values.Get("sortOrder"),
	}
	if tags := values.Get("tags"); tags != "" {
		q.Tags = strings.Split(tags, ",")
	}
	for name, dst := range map[string]*int{"page": &q.Page, "pageSize": &q.PageSize} {
		raw := values.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return contentdir.Query{}, contentdir.Errorf(contentdir.EINVALID, "invalid %s %q", name, raw)
		}
		*dst = n
	}
	if o := q.SortOrder; o != "" && o != contentdir.SortAsc && o != contentdir.SortDesc {
		return contentdir.Query{}, contentdir.Errorf(contentdir.EINVALID, "invalid sortOrder %q", o)
	}
	return q, nil
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("encode response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := contentdir.ErrorCode(err)
	status, ok := errorStatus[code]
	if !ok {
		status = http.StatusInternalServerError
	}
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "code", code, "err", err)
	}
	s.writeJSON(w, status, map[string]string{
		"error": contentdir.ErrorMessage(err),
		"code":  code,
	})
}

var errorStatus = map[string]int{
	contentdir.ECONFLICT:       http.StatusConflict,
	contentdir.EINVALID:        http.StatusBadRequest,
	contentdir.ENOTFOUND:       http.StatusNotFound,
	contentdir.ENOTIMPLEMENTED: http.StatusNotImplemented,
	contentdir.EUNAVAILABLE:    http.StatusServiceUnavailable,
}

// clientIP extracts the client host from a request.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

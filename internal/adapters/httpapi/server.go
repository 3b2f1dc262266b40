package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kamal-hamza/sx-cli/internal/core/domain"
)

// BasePath is the collection route
const BasePath = "/svg"

// RequestIDHeader carries the per-request id
const RequestIDHeader = "X-Request-ID"

// Library is the lookup surface served over HTTP
type Library interface {
	ListAll(ctx context.Context) ([]domain.ListEntry, error)
	Fetch(ctx context.Context, identifier string, o domain.Overrides) (*domain.NormalizedAsset, error)
	Raw(ctx context.Context, identifier string) (string, error)
}

// Links mirrors the hypermedia links attached to every item
type Links struct {
	Self       string `json:"self"`
	Collection string `json:"collection"`
	Raw        string `json:"raw"`
}

type listItem struct {
	domain.ListEntry
	Links Links `json:"_links"`
}

type assetResponse struct {
	*domain.NormalizedAsset
	Links Links `json:"_links"`
}

type errorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// Server exposes a Library as a small read-only REST API
type Server struct {
	lib    Library
	logger *zap.Logger
	mux    *http.ServeMux
}

// NewServer creates the server and registers its routes
func NewServer(lib Library, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{lib: lib, logger: logger, mux: http.NewServeMux()}
	s.mux.HandleFunc("GET "+BasePath, s.handleList)
	s.mux.HandleFunc("GET "+BasePath+"/{name...}", s.handleItem)
	return s
}

// Handler returns the routed handler wrapped in request logging
func (s *Server) Handler() http.Handler {
	return s.withRequestID(s.mux)
}

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
		close(errChan)
	}()

	s.logger.Info("Serving SVG library", zap.String("addr", addr))

	select {
	case err, ok := <-errChan:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	entries, err := s.lib.ListAll(r.Context())
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	items := make([]listItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, listItem{ListEntry: e, Links: linksFor(e.Identifier)})
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleItem(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	wantFile := strings.HasSuffix(strings.ToLower(name), ".svg")
	identifier := domain.NormalizeKey(name)

	if wantFile && r.URL.Query().Has("raw") {
		raw, err := s.lib.Raw(r.Context(), identifier)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		writeSVG(w, raw)
		return
	}

	asset, err := s.lib.Fetch(r.Context(), identifier, overridesFrom(r.URL.Query()))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	if wantFile {
		writeSVG(w, asset.SVG)
		return
	}
	writeJSON(w, http.StatusOK, assetResponse{NormalizedAsset: asset, Links: linksFor(asset.Identifier)})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := errorResponse{RequestID: w.Header().Get(RequestIDHeader)}
	status := http.StatusInternalServerError

	if errors.Is(err, domain.ErrNotFound) {
		status = http.StatusNotFound
		resp.Code = "svg_not_found"
		resp.Message = err.Error()
	} else {
		resp.Code = "internal_error"
		resp.Message = "failed to load the SVG library"
		s.logger.Error("Request failed",
			zap.String("path", r.URL.Path),
			zap.String("request_id", resp.RequestID),
			zap.Error(err))
	}
	writeJSON(w, status, resp)
}

// overridesFrom takes the first value of every query parameter
func overridesFrom(q url.Values) domain.Overrides {
	params := make(map[string]string, len(q))
	for key, values := range q {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}
	return domain.ParseOverrides(params)
}

func linksFor(identifier string) Links {
	self := BasePath + "/" + identifier
	return Links{
		Self:       self,
		Collection: BasePath,
		Raw:        self + ".svg?raw",
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeSVG(w http.ResponseWriter, markup string) {
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(markup))
}

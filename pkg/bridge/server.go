package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/windsorcli/netdesk/pkg/constants"
)

// =============================================================================
// Constants
// =============================================================================

// maxArgsBytes caps the JSON arguments a host may send with one invocation.
const maxArgsBytes = 1 << 20

// =============================================================================
// Types
// =============================================================================

// Server exposes a Bridge over loopback HTTP for the desktop webview.
type Server struct {
	bridge     *Bridge
	addr       string
	logger     *slog.Logger
	httpServer *http.Server
	listener   net.Listener
}

type requestIDKey struct{}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

type errorResponse struct {
	Error string `json:"error"`
}

// =============================================================================
// Constructor
// =============================================================================

// NewServer creates a Server for b listening on addr. A nil logger uses slog.Default.
func NewServer(b *Bridge, addr string, logger *slog.Logger) *Server {
	if addr == "" {
		addr = constants.DefaultServerAddress
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		bridge: b,
		addr:   addr,
		logger: logger.With(slog.String("component", "bridge")),
	}
}

// =============================================================================
// Public Methods
// =============================================================================

// Handler returns the HTTP routes of the bridge.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /invoke/{command}", s.handleInvoke)
	mux.HandleFunc("GET /commands", s.handleCommands)
	mux.HandleFunc("GET /healthz", s.handleHealthz)
	return s.withRequestID(mux)
}

// Start binds the listener and serves in the background.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("starting bridge server", slog.String("addr", s.addr))

	s.httpServer = &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	lis, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to setup listener for bridge server: %w", err)
	}
	s.listener = lis

	go func() {
		if err := s.httpServer.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("bridge server stopped", slog.Any("error", err))
		}
	}()
	return nil
}

// Addr returns the bound address once started, otherwise the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop shuts the server down gracefully, waiting for in-flight requests until ctx ends.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	s.logger.Info("shutting down bridge server")
	return s.httpServer.Shutdown(ctx)
}

// =============================================================================
// Private Methods
// =============================================================================

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("command")
	args, err := io.ReadAll(io.LimitReader(r.Body, maxArgsBytes))
	if err != nil {
		s.writeError(w, r, http.StatusBadRequest, fmt.Errorf("%w: %v", ErrInvalidArguments, err))
		return
	}

	result, err := s.bridge.Invoke(r.Context(), name, args)
	switch {
	case errors.Is(err, ErrUnknownCommand):
		s.writeError(w, r, http.StatusNotFound, err)
		return
	case errors.Is(err, ErrInvalidArguments):
		s.writeError(w, r, http.StatusBadRequest, err)
		return
	case err != nil:
		s.writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result)
}

func (s *Server) handleCommands(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.bridge.Commands())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, "ok")
}

// withRequestID tags every request with an X-Request-Id, keeping a valid one from the
// caller, and logs the request once it completes.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constants.RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(constants.RequestIDHeader, requestID)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, requestID)))

		s.logger.Debug("handled request",
			slog.String("request_id", requestID),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	s.logger.Warn("invocation failed",
		slog.String("request_id", RequestID(r.Context())),
		slog.Int("status", status),
		slog.Any("error", err),
	)
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("error encoding response", slog.Any("error", err))
	}
}

// WriteHeader records the status before forwarding it.
func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// =============================================================================
// Helpers
// =============================================================================

// RequestID returns the request identifier stored in ctx by the server, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/solcalc/internal/platform/timeouts"
	"github.com/louisbranch/solcalc/internal/services/web/app"
	"github.com/louisbranch/solcalc/internal/services/web/integration/projectapi"
	"github.com/louisbranch/solcalc/internal/services/web/modules"
	"github.com/louisbranch/solcalc/internal/services/web/platform/apiproxy"
	"github.com/louisbranch/solcalc/internal/services/web/platform/httpx"
	"github.com/louisbranch/solcalc/internal/services/web/platform/observability"
	"github.com/louisbranch/solcalc/internal/services/web/routepath"
	"github.com/louisbranch/solcalc/internal/services/web/static"
)

// Config defines the inputs for the web server.
type Config struct {
	HTTPAddr       string
	BackendBaseURL string
	// BackendTimeout caps each backend call. Zero uses timeouts.BackendRequest.
	BackendTimeout time.Duration
	// ProxyAPI forwards /api/ to the backend so synthesized download links
	// resolve from the browser origin.
	ProxyAPI bool
	Logger   *log.Logger
}

// Server hosts the web workflow.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	logger     *log.Logger
}

// NewHandler builds the root handler for the web service.
func NewHandler(config Config) (http.Handler, error) {
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	timeout := config.BackendTimeout
	if timeout <= 0 {
		timeout = timeouts.BackendRequest
	}
	backendHTTP := &http.Client{Timeout: timeout}

	client, err := projectapi.NewClient(config.BackendBaseURL, projectapi.WithHTTPClient(backendHTTP))
	if err != nil {
		return nil, fmt.Errorf("init project backend client: %w", err)
	}

	mods := modules.DefaultModules(modules.Dependencies{ProjectClient: client, Logger: logger})
	routes := map[string]http.Handler{
		http.MethodGet + " " + routepath.Health: healthHandler(mods),
		routepath.StaticPrefix:                  http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)),
	}
	if config.ProxyAPI {
		proxy, err := apiproxy.New(config.BackendBaseURL, nil, logger)
		if err != nil {
			return nil, fmt.Errorf("init api proxy: %w", err)
		}
		routes[routepath.APIPrefix] = proxy
	}

	root, err := app.Compose(app.ComposeInput{Modules: mods, Routes: routes})
	if err != nil {
		return nil, fmt.Errorf("compose web modules: %w", err)
	}
	return httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(logger),
	), nil
}

func healthHandler(mods []modules.Module) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if !app.Healthy(mods) {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("UNAVAILABLE"))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

// NewServer builds a configured web server.
func NewServer(config Config) (*Server, error) {
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if strings.TrimSpace(config.BackendBaseURL) == "" {
		return nil, errors.New("backend base url is required")
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Default()
	}
	config.Logger = logger

	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	return &Server{
		httpAddr: httpAddr,
		logger:   logger,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until the context ends or an error occurs.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	s.logger.Printf("web listening on %s", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases server resources without waiting for in-flight requests.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	if err := s.httpServer.Close(); err != nil {
		s.logger.Printf("close http server: %v", err)
	}
}

// Package project serves the Calculate, Checkout and Download workflow page.
package project

import (
	"log"
	"net/http"

	module "github.com/louisbranch/solcalc/internal/services/web/module"
	"github.com/louisbranch/solcalc/internal/services/web/routepath"
)

// Module provides the project workflow routes.
type Module struct {
	gateway ProjectGateway
	logger  *log.Logger
}

// Option configures a Module.
type Option func(*Module)

// WithLogger sets the logger used for swallowed backend failures.
func WithLogger(logger *log.Logger) Option {
	return func(m *Module) {
		m.logger = logger
	}
}

// New returns a project module without a backend. Every action fails closed.
func New(opts ...Option) Module {
	return NewWithGateway(nil, opts...)
}

// NewWithGateway returns a project module backed by gateway.
func NewWithGateway(gateway ProjectGateway, opts ...Option) Module {
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	m := Module{gateway: gateway}
	for _, opt := range opts {
		if opt != nil {
			opt(&m)
		}
	}
	return m
}

// ID returns a stable module identifier.
func (Module) ID() string { return "project" }

// Healthy reports whether the backend gateway is configured.
func (m Module) Healthy() bool {
	return IsGatewayHealthy(m.gateway)
}

// Mount wires project route handlers.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(newService(m.gateway, m.logger)))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}

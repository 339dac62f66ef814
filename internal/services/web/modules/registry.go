// Package modules defines web module registry helpers.
package modules

import (
	"log"

	module "github.com/louisbranch/solcalc/internal/services/web/module"
	"github.com/louisbranch/solcalc/internal/services/web/modules/project"
)

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries the backend clients and shared config required to
// compose the web module registry. Each client field is typed as the narrow
// interface defined by the consuming module.
type Dependencies struct {
	// ProjectClient talks to the project backend. Nil mounts the project
	// module with an unavailable gateway.
	ProjectClient project.BackendClient
	Logger        *log.Logger
}

// DefaultModules returns the web modules mounted by the server.
func DefaultModules(deps Dependencies) []Module {
	return []Module{
		project.NewWithGateway(project.NewBackendGateway(deps.ProjectClient), project.WithLogger(deps.Logger)),
	}
}

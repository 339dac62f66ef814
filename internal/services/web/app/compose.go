// Package app composes web modules into a root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/solcalc/internal/services/web/module"
)

// ComposeInput carries the modules to mount and extra root-level routes.
type ComposeInput struct {
	Modules []module.Module
	// Routes are mounted on the root mux before modules, keyed by pattern.
	Routes map[string]http.Handler
}

// Compose builds a root HTTP handler from modules.
func Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	seen := make(map[string]string)

	for pattern, handler := range input.Routes {
		if handler == nil {
			return nil, fmt.Errorf("route %q handler is nil", pattern)
		}
		seen[pattern] = "root"
		root.Handle(pattern, handler)
	}

	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		mount, prefix, err := resolveMount(feature)
		if err != nil {
			return nil, err
		}
		if previous, ok := seen[prefix]; ok {
			return nil, fmt.Errorf("module %q duplicates prefix %q owned by %q", feature.ID(), prefix, previous)
		}
		seen[prefix] = feature.ID()
		root.Handle(prefix, mount.Handler)
	}

	return root, nil
}

// Healthy reports whether every module that reports health is healthy.
func Healthy(modules []module.Module) bool {
	for _, feature := range modules {
		reporter, ok := feature.(module.HealthReporter)
		if ok && !reporter.Healthy() {
			return false
		}
	}
	return true
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	prefix := mount.Prefix
	if err := validatePrefix(prefix); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q has invalid prefix %q: %w", feature.ID(), prefix, err)
	}
	if mount.Handler == nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: handler is required", feature.ID())
	}
	return mount, prefix, nil
}

func validatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if strings.TrimSpace(prefix) != prefix {
		return fmt.Errorf("prefix must not include surrounding whitespace")
	}
	if !strings.HasPrefix(prefix, "/") {
		return fmt.Errorf("prefix must begin with /")
	}
	if !strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("prefix must end with /")
	}
	return nil
}

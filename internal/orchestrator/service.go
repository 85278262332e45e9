// Package orchestrator coordinates the resolution services behind the
// single public entry point: classify, parse, resolve, rebuild.
package orchestrator

import (
	"github.com/griffnb/core-annotation/internal/domain"
	"github.com/griffnb/core-annotation/internal/loader"
	"github.com/griffnb/core-annotation/internal/registry"
	"github.com/griffnb/core-annotation/internal/resolver"
)

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// Config holds orchestrator configuration options.
type Config struct {
	// Providers back the module loader, consulted in order. An empty list
	// means dotted paths beyond the reserved roots never load; they still
	// produce missing-dependency outcomes when the root is absent from the
	// scope.
	Providers []loader.Provider

	Debug Debugger
}

// Service wires the registry, loader, and resolver into the resolution
// pipeline. The registry is built once per service and read-only
// afterwards; everything else is created fresh per resolution call.
type Service struct {
	registry *registry.Service
	loader   *loader.Service
	resolver *resolver.Service
	config   *Config
}

// New creates a new orchestrator service with the given configuration.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}

	loaderOptions := make([]loader.Option, 0, len(config.Providers)+1)
	for _, p := range config.Providers {
		loaderOptions = append(loaderOptions, loader.WithProvider(p))
	}
	if config.Debug != nil {
		loaderOptions = append(loaderOptions, loader.WithDebugger(config.Debug))
	}

	registryService := registry.NewService()
	loaderService := loader.NewService(loaderOptions...)

	resolverService := resolver.NewService(registryService, loaderService)
	if config.Debug != nil {
		resolverService.SetDebugger(config.Debug)
	}

	return &Service{
		registry: registryService,
		loader:   loaderService,
		resolver: resolverService,
		config:   config,
	}
}

// Resolve converts one annotation string into a resolution outcome against
// the given fallback scope. The scope is read-only to the pipeline and may
// be nil for an empty ambient scope. A missing dependency is the only
// outcome that converts to a hard error (via Outcome.Err); everything else
// is an ordinary return value.
func (s *Service) Resolve(annotationStr string, scope domain.Scope) *domain.Outcome {
	outcome := s.resolver.ResolveAnnotation(annotationStr, scope)

	if s.config.Debug != nil {
		s.config.Debug.Printf("resolve %q -> %s", annotationStr, outcome.Status)
	}

	return outcome
}

// ResolveAny resolves a value that may or may not be an annotation string.
// Non-string input yields not-found immediately; it never panics.
func (s *Service) ResolveAny(value interface{}, scope domain.Scope) *domain.Outcome {
	str, ok := value.(string)
	if !ok {
		return domain.NotFoundOutcome("")
	}
	return s.Resolve(str, scope)
}

// Registry returns the builtin registry for external access.
func (s *Service) Registry() *registry.Service {
	return s.registry
}

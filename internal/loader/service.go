// Package loader implements the module-loading capability of the resolution
// environment: given a dotted module path, attempt to load that module and
// fetch an attribute by name. Providers supply the actual namespaces; the
// service only sequences them.
package loader

import (
	"fmt"

	"github.com/griffnb/core-annotation/internal/domain"
)

// Provider loads a module namespace by dotted path.
type Provider interface {
	Load(modulePath string) (*domain.Module, error)
}

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

type noOpDebugger struct{}

func (noOpDebugger) Printf(string, ...interface{}) {}

// Service attempts module loads against its providers in registration
// order. The service itself is stateless; whether a provider caches is the
// provider's business.
type Service struct {
	providers []Provider
	debug     Debugger
}

// Option configures a loader service.
type Option func(*Service)

// NewService creates a new loader service with optional configuration.
func NewService(options ...Option) *Service {
	s := &Service{
		debug: &noOpDebugger{},
	}

	for _, opt := range options {
		opt(s)
	}

	return s
}

// WithProvider appends a module provider.
func WithProvider(p Provider) Option {
	return func(s *Service) {
		if p != nil {
			s.providers = append(s.providers, p)
		}
	}
}

// WithDebugger sets the debugger for logging.
func WithDebugger(debugger Debugger) Option {
	return func(s *Service) {
		if debugger != nil {
			s.debug = debugger
		}
	}
}

// Load attempts to load the module at the given dotted path. Providers are
// consulted in order; the first to succeed wins.
func (s *Service) Load(modulePath string) (*domain.Module, error) {
	if modulePath == "" {
		return nil, fmt.Errorf("empty module path")
	}

	var lastErr error
	for _, p := range s.providers {
		mod, err := p.Load(modulePath)
		if err == nil && mod != nil {
			return mod, nil
		}
		if err != nil {
			lastErr = err
		}
	}

	if lastErr != nil {
		return nil, fmt.Errorf("module %q is not loadable: %w", modulePath, lastErr)
	}
	return nil, fmt.Errorf("module %q is not loadable", modulePath)
}

// LoadAttribute imports the module at modulePath and fetches attrName from
// it. Both the load and the attribute fetch may fail; callers treat any
// failure here as an ordinary not-found, since the dependency-presence
// check has already run by the time a load is attempted.
func (s *Service) LoadAttribute(modulePath, attrName string) (*domain.TypeRef, error) {
	mod, err := s.Load(modulePath)
	if err != nil {
		s.debug.Printf("loader: %v", err)
		return nil, err
	}

	ref, ok := mod.Attr(attrName)
	if !ok {
		return nil, fmt.Errorf("module %q has no attribute %q", modulePath, attrName)
	}

	return ref, nil
}

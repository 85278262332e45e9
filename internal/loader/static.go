package loader

import (
	"fmt"

	"github.com/griffnb/core-annotation/internal/domain"
)

// StaticProvider serves module namespaces registered in memory. It backs
// tests and embedded type stubs where no real package loading is wanted.
type StaticProvider struct {
	modules map[string]*domain.Module
}

// NewStaticProvider creates a provider holding the given modules.
func NewStaticProvider(modules ...*domain.Module) *StaticProvider {
	p := &StaticProvider{
		modules: make(map[string]*domain.Module, len(modules)),
	}
	for _, mod := range modules {
		p.Register(mod)
	}
	return p
}

// Register adds or replaces a module namespace.
func (p *StaticProvider) Register(mod *domain.Module) {
	if mod == nil || mod.Path == "" {
		return
	}
	p.modules[mod.Path] = mod
}

// Load implements Provider.
func (p *StaticProvider) Load(modulePath string) (*domain.Module, error) {
	mod, ok := p.modules[modulePath]
	if !ok {
		return nil, fmt.Errorf("no registered module %q", modulePath)
	}
	return mod, nil
}

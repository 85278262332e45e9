package loader

import (
	"fmt"
	"go/types"

	"github.com/griffnb/core-annotation/internal/domain"
	"golang.org/x/tools/go/packages"
)

// GoPackagesProvider resolves annotation module roots against real Go
// packages. Callers register a mapping from a module root (as it appears in
// annotations, e.g. "uuid") to a Go import path; loading that root exposes
// the package's exported named types as module attributes.
type GoPackagesProvider struct {
	importPaths map[string]string
	maxDepth    int
	preloaded   map[string]struct{}
	debug       Debugger
}

// GoPackagesOption configures a GoPackagesProvider.
type GoPackagesOption func(*GoPackagesProvider)

// NewGoPackagesProvider creates a provider with the given configuration.
func NewGoPackagesProvider(options ...GoPackagesOption) *GoPackagesProvider {
	p := &GoPackagesProvider{
		importPaths: make(map[string]string),
		preloaded:   make(map[string]struct{}),
		debug:       &noOpDebugger{},
	}

	for _, opt := range options {
		opt(p)
	}

	return p
}

// WithImportPath registers an annotation module root as loadable from a Go
// import path.
func WithImportPath(moduleRoot, importPath string) GoPackagesOption {
	return func(p *GoPackagesProvider) {
		p.importPaths[moduleRoot] = importPath
	}
}

// WithDependencyDepth enables dependency preloading: after a registered
// package loads, its import tree is walked up to maxDepth and each resolved
// package becomes loadable under its package name.
func WithDependencyDepth(maxDepth int) GoPackagesOption {
	return func(p *GoPackagesProvider) {
		p.maxDepth = maxDepth
	}
}

// WithGoDebugger sets the debugger for logging.
func WithGoDebugger(debugger Debugger) GoPackagesOption {
	return func(p *GoPackagesProvider) {
		if debugger != nil {
			p.debug = debugger
		}
	}
}

// Load implements Provider.
func (p *GoPackagesProvider) Load(modulePath string) (*domain.Module, error) {
	importPath, ok := p.importPaths[modulePath]
	if !ok {
		return nil, fmt.Errorf("no import path registered for module %q", modulePath)
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes,
	}

	pkgs, err := packages.Load(cfg, importPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load package %s: %w", importPath, err)
	}
	if len(pkgs) == 0 || pkgs[0].Types == nil {
		return nil, fmt.Errorf("package %s has no type information", importPath)
	}

	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, fmt.Errorf("failed to load package %s: %v", importPath, pkg.Errors[0])
	}

	mod := &domain.Module{
		Path:  modulePath,
		Attrs: make(map[string]*domain.TypeRef),
	}

	scope := pkg.Types.Scope()
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if obj == nil || !obj.Exported() {
			continue
		}
		if _, isType := obj.(*types.TypeName); !isType {
			continue
		}
		mod.Attrs[name] = goTypeRef(modulePath, name, obj.Type())
	}

	p.debug.Printf("loader: loaded %d exported types from %s", len(mod.Attrs), importPath)

	if p.maxDepth > 0 {
		p.preloadDependencies(importPath)
	}

	return mod, nil
}

// goTypeRef maps a Go type onto a type reference by its underlying shape.
func goTypeRef(modulePath, name string, t types.Type) *domain.TypeRef {
	switch u := t.Underlying().(type) {
	case *types.Basic:
		info := u.Info()
		switch {
		case info&types.IsBoolean != 0:
			return &domain.TypeRef{Kind: domain.KindBoolean, Name: name, Module: modulePath}
		case info&types.IsInteger != 0:
			return &domain.TypeRef{Kind: domain.KindInteger, Name: name, Module: modulePath}
		case info&types.IsFloat != 0 || info&types.IsComplex != 0:
			return &domain.TypeRef{Kind: domain.KindNumber, Name: name, Module: modulePath}
		case info&types.IsString != 0:
			return &domain.TypeRef{Kind: domain.KindString, Name: name, Module: modulePath}
		}
	case *types.Slice, *types.Array:
		return &domain.TypeRef{Kind: domain.KindArray, Name: name, Module: modulePath}
	case *types.Map:
		return &domain.TypeRef{Kind: domain.KindObject, Name: name, Module: modulePath}
	}

	return domain.NewClass(modulePath, name)
}

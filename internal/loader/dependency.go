package loader

import (
	"github.com/KyleBanks/depth"
)

// preloadDependencies walks the import tree of a loaded package and makes
// each resolved dependency loadable under its package name, bounded by the
// configured depth. Resolution failures are logged and skipped; preloading
// is an optimization, never a hard failure.
func (p *GoPackagesProvider) preloadDependencies(importPath string) {
	if _, done := p.preloaded[importPath]; done {
		return
	}
	p.preloaded[importPath] = struct{}{}

	var t depth.Tree
	t.ResolveInternal = true
	t.MaxDepth = p.maxDepth

	if err := t.Resolve(importPath); err != nil {
		p.debug.Printf("loader: cannot resolve dependencies of %s: %v", importPath, err)
		return
	}

	for i := 0; i < len(t.Root.Deps); i++ {
		p.registerFromDepth(&t.Root.Deps[i])
	}
}

// registerFromDepth registers a dependency package and recurses into its
// own dependencies. Registered roots never overwrite explicit mappings.
func (p *GoPackagesProvider) registerFromDepth(pkg *depth.Pkg) {
	if !pkg.Resolved || pkg.Raw == nil {
		return
	}
	if pkg.Internal {
		return
	}

	root := pkg.Raw.Name
	if _, exists := p.importPaths[root]; !exists && root != "" {
		p.importPaths[root] = pkg.Raw.ImportPath
		p.debug.Printf("loader: dependency %s loadable as module %q", pkg.Raw.ImportPath, root)
	}

	for i := 0; i < len(pkg.Deps); i++ {
		p.registerFromDepth(&pkg.Deps[i])
	}
}

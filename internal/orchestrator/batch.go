package orchestrator

import (
	"runtime"

	"github.com/griffnb/core-annotation/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ResolveAll resolves a batch of annotations concurrently using an errgroup
// bounded by the number of CPUs. Outcomes come back in input order. The
// builtin registry is read-only and safe for concurrent reads; the scope is
// never written by the pipeline, so a caller holding it stable for the
// duration of the call is all the discipline required.
func (s *Service) ResolveAll(annotations []string, scope domain.Scope) []*domain.Outcome {
	outcomes := make([]*domain.Outcome, len(annotations))

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())

	for i, annotationStr := range annotations {
		i, annotationStr := i, annotationStr

		g.Go(func() error {
			outcomes[i] = s.Resolve(annotationStr, scope)
			return nil
		})
	}

	// Workers never return errors; outcomes carry their own status.
	_ = g.Wait()

	return outcomes
}

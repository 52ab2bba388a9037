package depcache

import (
	"context"
	"slices"

	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
	"go.trai.ch/zerr"
)

// AnnotationProcessorsFor returns the sorted annotation processor classes declared by the
// authoritative jar of id's versionless identity. Non-jar archives declare none.
//
// Concurrent callers asking for the same authoritative identity share one extraction;
// unrelated identities never wait on each other. Failures are not memoized.
func (e *Engine) AnnotationProcessorsFor(ctx context.Context, id domain.DependencyIdentity) ([]string, error) {
	if !e.built.Load() {
		return nil, domain.ErrBuildNotRun
	}

	auth, ok := e.greatest[id.Versionless()]
	if !ok {
		return nil, zerr.With(domain.ErrDependencyNotFound, "dependency", id.String())
	}
	if !auth.IsJar() {
		return []string{}, nil
	}

	if classes, ok := e.memoized(auth); ok {
		return classes, nil
	}

	result, err, _ := e.requestGroup.Do(auth.String(), func() (any, error) {
		// A caller that missed the memo may arrive after the previous flight finished.
		if classes, ok := e.memoized(auth); ok {
			return classes, nil
		}

		classes, err := e.extractProcessors(ctx, auth)
		if err != nil {
			return nil, err
		}

		e.processorsMu.Lock()
		e.processors[auth] = classes
		e.processorsMu.Unlock()
		return classes, nil
	})
	if err != nil {
		return nil, err
	}

	classes, _ := result.([]string)
	return slices.Clone(classes), nil
}

func (e *Engine) memoized(auth domain.DependencyIdentity) ([]string, bool) {
	e.processorsMu.Lock()
	defer e.processorsMu.Unlock()

	classes, ok := e.processors[auth]
	if !ok {
		return nil, false
	}
	return slices.Clone(classes), true
}

// extractProcessors reads the processor descriptor of auth's cached copy.
func (e *Engine) extractProcessors(ctx context.Context, auth domain.DependencyIdentity) ([]string, error) {
	_, span := e.tracer.Start(ctx, "depcache.processors",
		ports.WithAttribute("dependency", auth.Coordinate().String()))
	defer span.End()

	sidecar, err := e.inspector.ExtractAnnotationProcessorDescriptor(e.paths[auth])
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(err, "dependency", auth.Coordinate().String())
	}

	classes, err := e.inspector.ReadProcessorDescriptor(sidecar)
	if err != nil {
		span.RecordError(err)
		return nil, zerr.With(err, "dependency", auth.Coordinate().String())
	}

	classes = slices.Clone(classes)
	slices.Sort(classes)
	classes = slices.Compact(classes)
	if classes == nil {
		classes = []string{}
	}

	span.SetAttribute("processors", len(classes))
	return classes, nil
}

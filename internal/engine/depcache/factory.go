package depcache

import (
	"go.trai.ch/depcache/internal/core/domain"
	"go.trai.ch/depcache/internal/core/ports"
)

// Factory builds one Engine per build invocation from long-lived collaborators.
type Factory struct {
	inspector ports.ArchiveInspector
	locator   ports.SourceLocator
	fetcher   ports.SourceFetcher
	index     ports.CacheIndex
	hasher    ports.Hasher
	tracer    ports.Tracer
	logger    ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(
	inspector ports.ArchiveInspector,
	locator ports.SourceLocator,
	fetcher ports.SourceFetcher,
	index ports.CacheIndex,
	hasher ports.Hasher,
	tracer ports.Tracer,
	logger ports.Logger,
) *Factory {
	return &Factory{
		inspector: inspector,
		locator:   locator,
		fetcher:   fetcher,
		index:     index,
		hasher:    hasher,
		tracer:    tracer,
		logger:    logger,
	}
}

// Option overrides a collaborator for a single Engine.
type Option func(*Factory)

// WithTracer replaces the tracer of the created Engine.
func WithTracer(tracer ports.Tracer) Option {
	return func(f *Factory) {
		f.tracer = tracer
	}
}

// New creates a fresh Engine for opts.
func (f *Factory) New(opts domain.CacheOptions, overrides ...Option) (*Engine, error) {
	cfg := *f
	for _, o := range overrides {
		o(&cfg)
	}
	return New(opts, cfg.inspector, cfg.locator, cfg.fetcher, cfg.index, cfg.hasher, cfg.tracer, cfg.logger)
}

// Package resolver determines the current published version by trying an
// ordered list of sources: production index, staging index, local version
// record, project manifest. A source failure is a warning, not a fatal
// error; only exhausting every source aborts the run.
package resolver

import (
	"context"

	"releasecraft/internal/errors"
	"releasecraft/internal/index"
	"releasecraft/internal/logger"
	"releasecraft/internal/manifest"
)

// Source yields the version it knows about, or "" when it has none.
type Source interface {
	Name() string
	Resolve(ctx context.Context) (string, error)
}

type Resolver struct {
	sources []Source
}

func New(sources ...Source) *Resolver {
	return &Resolver{sources: sources}
}

// CurrentVersion walks the source chain and returns the first version found
// together with the name of the source that produced it.
func (r *Resolver) CurrentVersion(ctx context.Context) (string, string, error) {
	for _, source := range r.sources {
		version, err := source.Resolve(ctx)
		if err != nil {
			logger.Warn(ctx, "Version source failed", "source", source.Name(), "error", err)
			continue
		}
		if version == "" {
			logger.Debug(ctx, "Version source had no version", "source", source.Name())
			continue
		}
		logger.Info(ctx, "Resolved current version", "source", source.Name(), "version", version)
		return version, source.Name(), nil
	}

	return "", "", errors.ErrNoVersionSource
}

// ProductionIndexSource queries the production package index.
type ProductionIndexSource struct {
	Client *index.Client
}

func (s *ProductionIndexSource) Name() string { return "production index" }

func (s *ProductionIndexSource) Resolve(ctx context.Context) (string, error) {
	return s.Client.ProductionVersion(ctx)
}

// StagingIndexSource queries the staging package index.
type StagingIndexSource struct {
	Client *index.Client
}

func (s *StagingIndexSource) Name() string { return "staging index" }

func (s *StagingIndexSource) Resolve(ctx context.Context) (string, error) {
	return s.Client.StagingVersion(ctx)
}

// RecordSource reads the last synced version from the local record file.
type RecordSource struct {
	Path string
}

func (s *RecordSource) Name() string { return "version record" }

func (s *RecordSource) Resolve(_ context.Context) (string, error) {
	record, err := index.LoadRecord(s.Path)
	if err != nil {
		return "", err
	}
	return record.CurrentRelease, nil
}

// ManifestSource reads the version declared in the project manifest.
type ManifestSource struct {
	Reader *manifest.Reader
}

func (s *ManifestSource) Name() string { return "project manifest" }

func (s *ManifestSource) Resolve(_ context.Context) (string, error) {
	return s.Reader.Version()
}

// Package publisher creates and maintains draft releases on the forge.
// Publishing is idempotent: an existing draft with the same tag is updated
// in place instead of duplicated.
package publisher

import (
	"context"
	"strings"

	"releasecraft/internal/logger"
	"releasecraft/internal/models"
)

// ReleaseManager is the slice of the forge client the publisher needs.
type ReleaseManager interface {
	ListDrafts(ctx context.Context) ([]models.DraftRelease, error)
	CreateDraft(ctx context.Context, tag, title, body string, prerelease bool) error
	EditDraft(ctx context.Context, tag, title, body string, prerelease bool) error
	DeleteRelease(ctx context.Context, tag string) error
}

type Publisher struct {
	releases ReleaseManager
	project  string
}

func New(releases ReleaseManager, project string) *Publisher {
	return &Publisher{releases: releases, project: project}
}

// PublishDraft uploads the candidate as a draft release. When a draft with
// the same tag already exists it is edited rather than recreated, so the
// tool can be re-run safely. Returns true when an existing draft was updated.
func (p *Publisher) PublishDraft(ctx context.Context, candidate models.ReleaseCandidate, body string) (bool, error) {
	drafts, err := p.releases.ListDrafts(ctx)
	if err != nil {
		return false, err
	}

	for _, draft := range drafts {
		if draft.TagName == candidate.TagName {
			if err := p.releases.EditDraft(ctx, candidate.TagName, candidate.Title, body, candidate.Prerelease); err != nil {
				return false, err
			}
			return true, nil
		}
	}

	if err := p.releases.CreateDraft(ctx, candidate.TagName, candidate.Title, body, candidate.Prerelease); err != nil {
		return false, err
	}
	return false, nil
}

// CleanupStaleDrafts removes draft releases left over from previous runs.
// Only drafts whose name carries the project label are touched, so unrelated
// drafts in the same repository survive. Individual delete failures are
// logged and skipped.
func (p *Publisher) CleanupStaleDrafts(ctx context.Context) (int, error) {
	drafts, err := p.releases.ListDrafts(ctx)
	if err != nil {
		return 0, err
	}

	marker := p.project + " v"
	deleted := 0
	for _, draft := range drafts {
		if !strings.Contains(draft.Name, marker) {
			continue
		}
		if err := p.releases.DeleteRelease(ctx, draft.TagName); err != nil {
			logger.Warn(ctx, "Could not delete stale draft", "tag", draft.TagName, "error", err)
			continue
		}
		logger.Debug(ctx, "Deleted stale draft", "tag", draft.TagName)
		deleted++
	}

	return deleted, nil
}

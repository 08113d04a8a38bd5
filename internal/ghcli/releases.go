package ghcli

import (
	"context"
	"encoding/json"
	"os"

	"releasecraft/internal/errors"
	"releasecraft/internal/models"
)

// ListDrafts returns the repository's draft releases.
func (c *Client) ListDrafts(ctx context.Context) ([]models.DraftRelease, error) {
	out, err := c.runner.Run(ctx, "release", "list", "--json", "tagName,name,isDraft", "--limit", "100")
	if err != nil {
		return nil, errors.ErrListReleases.WithError(err)
	}
	if out == "" {
		return nil, nil
	}

	var releases []models.DraftRelease
	if err := json.Unmarshal([]byte(out), &releases); err != nil {
		return nil, errors.ErrListReleases.WithError(err)
	}

	drafts := releases[:0]
	for _, r := range releases {
		if r.IsDraft {
			drafts = append(drafts, r)
		}
	}
	return drafts, nil
}

// CreateDraft creates a new draft release for tag.
func (c *Client) CreateDraft(ctx context.Context, tag, title, body string, prerelease bool) error {
	return c.withNotesFile(body, func(notesFile string) error {
		args := []string{"release", "create", tag, "--title", title, "--notes-file", notesFile, "--draft"}
		if prerelease {
			args = append(args, "--prerelease")
		}
		if _, err := c.runner.Run(ctx, args...); err != nil {
			return errors.ErrCreateDraft.WithError(err).WithContext("tag", tag)
		}
		return nil
	})
}

// EditDraft updates an existing draft release in place.
func (c *Client) EditDraft(ctx context.Context, tag, title, body string, prerelease bool) error {
	return c.withNotesFile(body, func(notesFile string) error {
		args := []string{"release", "edit", tag, "--title", title, "--notes-file", notesFile, "--draft"}
		if prerelease {
			args = append(args, "--prerelease")
		}
		if _, err := c.runner.Run(ctx, args...); err != nil {
			return errors.ErrUpdateDraft.WithError(err).WithContext("tag", tag)
		}
		return nil
	})
}

// DeleteRelease removes a release by tag.
func (c *Client) DeleteRelease(ctx context.Context, tag string) error {
	if _, err := c.runner.Run(ctx, "release", "delete", tag, "--yes"); err != nil {
		return errors.ErrDeleteRelease.WithError(err).WithContext("tag", tag)
	}
	return nil
}

// withNotesFile passes multi-line notes to gh through a temp file, scoped to
// the single invocation and removed on every path.
func (c *Client) withNotesFile(body string, fn func(notesFile string) error) error {
	f, err := os.CreateTemp("", "releasecraft-notes-*.md")
	if err != nil {
		return errors.ErrGHCommand.WithError(err)
	}
	defer func() {
		_ = os.Remove(f.Name())
	}()

	if _, err := f.WriteString(body); err != nil {
		_ = f.Close()
		return errors.ErrGHCommand.WithError(err)
	}
	if err := f.Close(); err != nil {
		return errors.ErrGHCommand.WithError(err)
	}

	return fn(f.Name())
}

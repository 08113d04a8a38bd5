// Package service orchestrates a release preparation run: resolve the
// current version, compute the next one, gather commits, render notes and
// publish the draft.
package service

import (
	"context"
	"fmt"
	"io"

	"releasecraft/internal/errors"
	"releasecraft/internal/i18n"
	"releasecraft/internal/index"
	"releasecraft/internal/logger"
	"releasecraft/internal/models"
	"releasecraft/internal/release"
	"releasecraft/internal/semver"
	"releasecraft/internal/ui"
)

const commitLimit = 10

// VersionResolver finds the current published version and names the source
// that provided it.
type VersionResolver interface {
	CurrentVersion(ctx context.Context) (string, string, error)
}

// CommitSource provides recent commits for the release notes. Sources are
// tried in order until one succeeds.
type CommitSource interface {
	Name() string
	RecentCommits(ctx context.Context, limit int) ([]models.Commit, error)
}

// NotesRenderer turns a candidate plus commit history into release notes.
type NotesRenderer interface {
	Render(candidate *models.ReleaseCandidate, previousVersion string, commits []models.Commit) (string, error)
}

// DraftPublisher manages draft releases on the forge.
type DraftPublisher interface {
	PublishDraft(ctx context.Context, candidate models.ReleaseCandidate, body string) (bool, error)
	CleanupStaleDrafts(ctx context.Context) (int, error)
}

// IndexReader is the read-only slice of the package index client used by the
// status report. Nil when index integration is disabled.
type IndexReader interface {
	ProductionVersion(ctx context.Context) (string, error)
	StagingVersion(ctx context.Context) (string, error)
}

// RecordSyncer reconciles the local version record with the package index.
type RecordSyncer interface {
	Sync(ctx context.Context, dryRun bool) ([]index.FieldChange, error)
}

// Deps carries the collaborators of ReleaseService. Index-related fields may
// be nil when the package index is disabled.
type Deps struct {
	Resolver   VersionResolver
	Commits    []CommitSource
	Renderer   NotesRenderer
	Publisher  DraftPublisher
	Index      IndexReader
	Syncer     RecordSyncer
	RecordPath string
	Project    string
	Trans      *i18n.Translations
	Out        io.Writer
}

type ReleaseService struct {
	deps Deps
}

func NewReleaseService(deps Deps) *ReleaseService {
	return &ReleaseService{deps: deps}
}

// PrepareByType creates or refreshes the draft release for one change type.
func (s *ReleaseService) PrepareByType(ctx context.Context, changeType string, beta, sync bool) (*models.ReleaseCandidate, error) {
	ct, ok := models.ParseChangeType(changeType)
	if !ok {
		return nil, errors.ErrInvalidChangeType.WithContext("type", changeType)
	}
	ctx = logger.With(ctx, "change_type", string(ct))

	s.printf(ctx, "prepare.starting", map[string]interface{}{"Project": s.deps.Project, "Type": string(ct)})

	if sync {
		s.syncBeforePrepare(ctx)
	}

	current, candidates, err := s.resolveCandidates(ctx)
	if err != nil {
		return nil, err
	}
	commits := s.recentCommits(ctx)
	s.cleanupDrafts(ctx)

	s.printf(ctx, "prepare.creating_candidate", map[string]interface{}{"Type": string(ct)})
	candidate, err := s.publishCandidate(ctx, ct, candidates, beta, current, commits)
	if err != nil {
		return nil, err
	}

	s.printCompletion(ctx)
	return candidate, nil
}

// PrepareAll creates or refreshes the six standard drafts: patch, minor and
// major, each with a stable and a beta variant.
func (s *ReleaseService) PrepareAll(ctx context.Context, sync bool) ([]*models.ReleaseCandidate, error) {
	s.printf(ctx, "prepare.starting_all", map[string]interface{}{"Project": s.deps.Project})

	if sync {
		s.syncBeforePrepare(ctx)
	}

	current, candidates, err := s.resolveCandidates(ctx)
	if err != nil {
		return nil, err
	}
	commits := s.recentCommits(ctx)
	s.cleanupDrafts(ctx)

	var prepared []*models.ReleaseCandidate
	for _, ct := range models.ChangeTypes {
		for _, beta := range []bool{false, true} {
			label := string(ct)
			if beta {
				label = "beta-" + label
			}
			s.printf(ctx, "prepare.creating_candidate", map[string]interface{}{"Type": label})
			candidate, err := s.publishCandidate(ctx, ct, candidates, beta, current, commits)
			if err != nil {
				return nil, err
			}
			prepared = append(prepared, candidate)
		}
	}

	s.printCompletion(ctx)
	return prepared, nil
}

// Sync reconciles the version record with the package index and reports the
// changed fields.
func (s *ReleaseService) Sync(ctx context.Context, dryRun bool) ([]index.FieldChange, error) {
	if s.deps.Syncer == nil {
		return nil, errors.ErrRecordSync.WithContext("reason", "package index integration is disabled")
	}

	fmt.Fprintln(s.deps.Out, s.message("sync.started", 0, nil))
	changes, err := s.deps.Syncer.Sync(ctx, dryRun)
	if err != nil {
		return nil, err
	}

	if len(changes) == 0 {
		fmt.Fprintln(s.deps.Out, s.message("sync.in_sync", 0, nil))
		return changes, nil
	}

	for _, change := range changes {
		s.printf(ctx, "sync.field_change", map[string]interface{}{
			"Field": change.Field, "Old": orNone(change.Old), "New": orNone(change.New),
		})
	}
	fmt.Fprintln(s.deps.Out, s.message("sync.updated", 0, nil))
	return changes, nil
}

// StatusReport gathers versions from the index and the local record without
// writing anything.
func (s *ReleaseService) StatusReport(ctx context.Context) (*models.VersionStatus, error) {
	status := &models.VersionStatus{NextVersions: map[models.ChangeType]string{}}

	if s.deps.Index != nil {
		if v, err := s.deps.Index.ProductionVersion(ctx); err != nil {
			logger.Warn(ctx, "Production index query failed", "error", err)
		} else {
			status.ProductionVersion = v
		}
		if v, err := s.deps.Index.StagingVersion(ctx); err != nil {
			logger.Warn(ctx, "Staging index query failed", "error", err)
		} else {
			status.StagingVersion = v
		}
	}

	if record, err := index.LoadRecord(s.deps.RecordPath); err != nil {
		logger.Warn(ctx, "Version record unavailable", "path", s.deps.RecordPath, "error", err)
	} else {
		status.RecordProduction = record.CurrentRelease
		status.RecordStaging = record.CurrentStaging
	}

	status.ProductionSynced = status.ProductionVersion == "" || status.ProductionVersion == status.RecordProduction
	status.StagingSynced = status.StagingVersion == "" || status.StagingVersion == status.RecordStaging
	status.NeedsSync = !status.ProductionSynced || !status.StagingSynced

	reference := status.ProductionVersion
	if reference == "" {
		reference = status.RecordProduction
	}
	candidates := semver.DefaultNext()
	if reference != "" {
		parsed, err := semver.Parse(reference)
		if err != nil {
			return nil, errors.ErrInvalidVersionFormat.WithError(err).WithContext("version", reference)
		}
		candidates = semver.Next(parsed.Base())
	}
	status.NextVersions[models.PatchChange] = candidates.Patch.String()
	status.NextVersions[models.MinorChange] = candidates.Minor.String()
	status.NextVersions[models.MajorChange] = candidates.Major.String()

	if status.NeedsSync {
		status.Recommendations = append(status.Recommendations, "Run with --sync to update the version record")
	}
	if status.ProductionVersion == "" && status.RecordProduction == "" {
		status.Recommendations = append(status.Recommendations, "No published release found, next versions start from the defaults")
	}

	return status, nil
}

// resolveCandidates finds the current version and derives the possible next
// ones. Exhausting every source is fatal: a draft must never be prepared
// from an undefined version.
func (s *ReleaseService) resolveCandidates(ctx context.Context) (string, semver.Candidates, error) {
	current, source, err := s.deps.Resolver.CurrentVersion(ctx)
	if err != nil {
		return "", semver.Candidates{}, err
	}

	logger.Debug(ctx, "Current version resolved", "version", current, "source", source)
	s.printf(ctx, "prepare.current_version", map[string]interface{}{"Version": current})

	parsed, err := semver.Parse(current)
	if err != nil {
		return "", semver.Candidates{}, errors.ErrInvalidVersionFormat.WithError(err).WithContext("version", current)
	}
	return current, semver.Next(parsed.Base()), nil
}

// recentCommits walks the commit sources until one of them answers. A run
// with no commit history still produces a draft, only the notes are thinner.
func (s *ReleaseService) recentCommits(ctx context.Context) []models.Commit {
	for _, source := range s.deps.Commits {
		commits, err := source.RecentCommits(ctx, commitLimit)
		if err != nil {
			logger.Warn(ctx, "Commit source failed", "source", source.Name(), "error", err)
			continue
		}
		fmt.Fprintln(s.deps.Out, s.message("prepare.commit_count", len(commits), map[string]interface{}{"Count": len(commits)}))
		return commits
	}

	logger.Warn(ctx, "No commit source available, release notes will omit the commit summary")
	return nil
}

func (s *ReleaseService) publishCandidate(ctx context.Context, ct models.ChangeType, candidates semver.Candidates, beta bool, current string, commits []models.Commit) (*models.ReleaseCandidate, error) {
	candidate, err := release.CandidateFor(ct, candidates, beta, s.deps.Project)
	if err != nil {
		return nil, err
	}

	spin := ui.NewSmartSpinner(fmt.Sprintf("Rendering notes for %s...", candidate.TagName))
	spin.Start()

	body, err := s.deps.Renderer.Render(candidate, current, commits)
	if err != nil {
		spin.Stop()
		return nil, err
	}

	spin.UpdateMessage(fmt.Sprintf("Publishing draft %s...", candidate.TagName))
	updated, err := s.deps.Publisher.PublishDraft(ctx, *candidate, body)
	if err != nil {
		spin.Warning(fmt.Sprintf("Could not publish draft %s: %v", candidate.TagName, err))
		logger.Warn(ctx, "Could not publish draft", "tag", candidate.TagName, "error", err)
		return candidate, nil
	}
	spin.Stop()

	if updated {
		s.printf(ctx, "publish.updating_draft", map[string]interface{}{"Title": candidate.Title})
	} else {
		s.printf(ctx, "publish.creating_draft", map[string]interface{}{"Title": candidate.Title})
	}
	s.printf(ctx, "prepare.created_draft", map[string]interface{}{"Title": candidate.Title})
	s.printf(ctx, "prepare.tag", map[string]interface{}{"Tag": candidate.TagName})
	s.printf(ctx, "prepare.version", map[string]interface{}{"Version": candidate.Version})
	return candidate, nil
}

func (s *ReleaseService) syncBeforePrepare(ctx context.Context) {
	if s.deps.Syncer == nil {
		return
	}
	if _, err := s.Sync(ctx, false); err != nil {
		logger.Warn(ctx, "Version record sync failed", "error", err)
		fmt.Fprintln(s.deps.Out, s.message("sync.unavailable", 0, nil))
	}
}

func (s *ReleaseService) cleanupDrafts(ctx context.Context) {
	deleted, err := s.deps.Publisher.CleanupStaleDrafts(ctx)
	if err != nil {
		logger.Warn(ctx, "Draft cleanup failed", "error", err)
		return
	}
	if deleted > 0 {
		logger.Info(ctx, "Deleted stale drafts", "count", deleted)
	}
}

func (s *ReleaseService) printCompletion(ctx context.Context) {
	ui.PrintSuccess(s.deps.Out, s.message("prepare.completed", 0, nil))
	fmt.Fprintln(s.deps.Out, s.message("prepare.check_releases", 0, nil))
	fmt.Fprintln(s.deps.Out, s.message("prepare.next_steps", 0, nil))
	fmt.Fprintln(s.deps.Out, s.message("prepare.step_review", 0, nil))
	fmt.Fprintln(s.deps.Out, s.message("prepare.step_edit", 0, nil))
	fmt.Fprintln(s.deps.Out, s.message("prepare.step_publish", 0, nil))
}

func (s *ReleaseService) printf(_ context.Context, id string, data map[string]interface{}) {
	fmt.Fprintln(s.deps.Out, s.message(id, 0, data))
}

func (s *ReleaseService) message(id string, count int, data map[string]interface{}) string {
	return s.deps.Trans.GetMessage(id, count, data)
}

func orNone(v string) string {
	if v == "" {
		return "none"
	}
	return v
}

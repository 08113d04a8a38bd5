package service

import (
	"context"

	"releasecraft/internal/ghcli"
	"releasecraft/internal/git"
	"releasecraft/internal/index"
	"releasecraft/internal/models"
	vcsgithub "releasecraft/internal/vcs/github"
)

// APICommitSource reads commits through the GitHub REST API. Preferred when
// a token is configured: it works without a local clone.
type APICommitSource struct {
	Client *vcsgithub.Client
}

func (s *APICommitSource) Name() string { return "github api" }

func (s *APICommitSource) RecentCommits(ctx context.Context, limit int) ([]models.Commit, error) {
	return s.Client.RecentCommits(ctx, limit)
}

// CLICommitSource reads commits through `gh api`, reusing the CLI's
// authentication.
type CLICommitSource struct {
	Client *ghcli.Client
}

func (s *CLICommitSource) Name() string { return "gh cli" }

func (s *CLICommitSource) RecentCommits(ctx context.Context, limit int) ([]models.Commit, error) {
	return s.Client.RecentCommits(ctx, limit)
}

// LocalCommitSource reads commits from the local git history. Last resort
// when neither API path is available.
type LocalCommitSource struct {
	Service *git.GitService
}

func (s *LocalCommitSource) Name() string { return "git log" }

func (s *LocalCommitSource) RecentCommits(ctx context.Context, limit int) ([]models.Commit, error) {
	return s.Service.GetRecentCommits(ctx, limit)
}

// IndexRecordSyncer reconciles the version record against the package index.
type IndexRecordSyncer struct {
	Client *index.Client
	Path   string
}

func (s *IndexRecordSyncer) Sync(ctx context.Context, dryRun bool) ([]index.FieldChange, error) {
	return index.SyncRecord(ctx, s.Client, s.Path, dryRun)
}

package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"releasecraft/internal/index"
	"releasecraft/internal/models"
)

type MockVersionResolver struct {
	mock.Mock
}

func (m *MockVersionResolver) CurrentVersion(ctx context.Context) (string, string, error) {
	args := m.Called(ctx)
	return args.String(0), args.String(1), args.Error(2)
}

type MockCommitSource struct {
	mock.Mock
	SourceName string
}

func (m *MockCommitSource) Name() string { return m.SourceName }

func (m *MockCommitSource) RecentCommits(ctx context.Context, limit int) ([]models.Commit, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.Commit), args.Error(1)
}

type MockNotesRenderer struct {
	mock.Mock
}

func (m *MockNotesRenderer) Render(candidate *models.ReleaseCandidate, previousVersion string, commits []models.Commit) (string, error) {
	args := m.Called(candidate, previousVersion, commits)
	return args.String(0), args.Error(1)
}

type MockDraftPublisher struct {
	mock.Mock
}

func (m *MockDraftPublisher) PublishDraft(ctx context.Context, candidate models.ReleaseCandidate, body string) (bool, error) {
	args := m.Called(ctx, candidate, body)
	return args.Bool(0), args.Error(1)
}

func (m *MockDraftPublisher) CleanupStaleDrafts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockIndexReader struct {
	mock.Mock
}

func (m *MockIndexReader) ProductionVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockIndexReader) StagingVersion(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type MockRecordSyncer struct {
	mock.Mock
}

func (m *MockRecordSyncer) Sync(ctx context.Context, dryRun bool) ([]index.FieldChange, error) {
	args := m.Called(ctx, dryRun)
	return args.Get(0).([]index.FieldChange), args.Error(1)
}

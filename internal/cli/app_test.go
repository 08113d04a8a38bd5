package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"releasecraft/internal/i18n"
	"releasecraft/internal/index"
	"releasecraft/internal/models"
)

type mockPreparer struct {
	mock.Mock
	noIndex bool
}

func (m *mockPreparer) PrepareByType(ctx context.Context, changeType string, beta, sync bool) (*models.ReleaseCandidate, error) {
	args := m.Called(ctx, changeType, beta, sync)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ReleaseCandidate), args.Error(1)
}

func (m *mockPreparer) PrepareAll(ctx context.Context, sync bool) ([]*models.ReleaseCandidate, error) {
	args := m.Called(ctx, sync)
	return args.Get(0).([]*models.ReleaseCandidate), args.Error(1)
}

func (m *mockPreparer) Sync(ctx context.Context, dryRun bool) ([]index.FieldChange, error) {
	args := m.Called(ctx, dryRun)
	return args.Get(0).([]index.FieldChange), args.Error(1)
}

func (m *mockPreparer) StatusReport(ctx context.Context) (*models.VersionStatus, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VersionStatus), args.Error(1)
}

func runApp(t *testing.T, svc *mockPreparer, args ...string) (string, error) {
	t.Helper()
	trans, err := i18n.NewTranslations("en", "")
	require.NoError(t, err)

	out := new(bytes.Buffer)
	builder := func(_ context.Context, noIndex bool) (PreparerService, error) {
		svc.noIndex = noIndex
		return svc, nil
	}
	cmd := NewAppFactory(builder, "Demo", out).CreateCommand(trans)
	runErr := cmd.Run(context.Background(), append([]string{"releasecraft"}, args...))
	return out.String(), runErr
}

func TestApp_TypeFlagPrintsOutputs(t *testing.T) {
	svc := new(mockPreparer)
	svc.On("PrepareByType", mock.Anything, "minor", false, true).Return(&models.ReleaseCandidate{
		ChangeType:  models.MinorChange,
		ReleaseType: "minor",
		Version:     "2.6.0",
		TagName:     "candidate-minor-v2.6.0",
		Prerelease:  false,
	}, nil)

	out, err := runApp(t, svc, "--type", "minor")

	require.NoError(t, err)
	assert.Contains(t, out, "VERSION=2.6.0\n")
	assert.Contains(t, out, "TAG_NAME=candidate-minor-v2.6.0\n")
	assert.Contains(t, out, "IS_PRERELEASE=false\n")
	assert.Contains(t, out, "RELEASE_TYPE=minor\n")
	svc.AssertExpectations(t)
}

func TestApp_BetaFlag(t *testing.T) {
	svc := new(mockPreparer)
	svc.On("PrepareByType", mock.Anything, "patch", true, true).Return(&models.ReleaseCandidate{
		ChangeType:  models.PatchChange,
		ReleaseType: "beta-patch",
		Version:     "1.0.1-beta.1",
		TagName:     "candidate-beta-patch-v1.0.1",
		Prerelease:  true,
	}, nil)

	out, err := runApp(t, svc, "--type", "patch", "--beta")

	require.NoError(t, err)
	assert.Contains(t, out, "IS_PRERELEASE=true\n")
	assert.Contains(t, out, "RELEASE_TYPE=beta-patch\n")
}

func TestApp_BetaWithoutType(t *testing.T) {
	svc := new(mockPreparer)

	_, err := runApp(t, svc, "--beta")

	require.Error(t, err)
	svc.AssertNotCalled(t, "PrepareByType", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	svc.AssertNotCalled(t, "PrepareAll", mock.Anything, mock.Anything)
}

func TestApp_NoFlagsRunsLegacyMode(t *testing.T) {
	svc := new(mockPreparer)
	svc.On("PrepareAll", mock.Anything, true).Return([]*models.ReleaseCandidate{}, nil)

	_, err := runApp(t, svc)

	require.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestApp_NoSyncFlag(t *testing.T) {
	svc := new(mockPreparer)
	svc.On("PrepareAll", mock.Anything, false).Return([]*models.ReleaseCandidate{}, nil)

	_, err := runApp(t, svc, "--no-sync")

	require.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestApp_SyncFlagOnly(t *testing.T) {
	svc := new(mockPreparer)
	svc.On("Sync", mock.Anything, false).Return([]index.FieldChange{}, nil)

	_, err := runApp(t, svc, "--sync")

	require.NoError(t, err)
	svc.AssertNotCalled(t, "PrepareAll", mock.Anything, mock.Anything)
}

func TestApp_SyncDryRun(t *testing.T) {
	svc := new(mockPreparer)
	svc.On("Sync", mock.Anything, true).Return([]index.FieldChange{}, nil)

	_, err := runApp(t, svc, "--sync", "--dry-run")

	require.NoError(t, err)
	svc.AssertExpectations(t)
}

func TestApp_StatusFlag(t *testing.T) {
	svc := new(mockPreparer)
	svc.On("StatusReport", mock.Anything).Return(&models.VersionStatus{
		ProductionVersion: "1.5.0",
		StagingVersion:    "1.5.0",
		RecordProduction:  "1.5.0",
		RecordStaging:     "1.5.0",
		ProductionSynced:  true,
		StagingSynced:     true,
		NextVersions: map[models.ChangeType]string{
			models.PatchChange: "1.5.1",
			models.MinorChange: "1.6.0",
			models.MajorChange: "2.0.0",
		},
	}, nil)

	out, err := runApp(t, svc, "--status")

	require.NoError(t, err)
	assert.Contains(t, out, "1.5.0")
	assert.Contains(t, out, "1.5.1")
	assert.Contains(t, out, "synchronized")
	svc.AssertNotCalled(t, "PrepareAll", mock.Anything, mock.Anything)
}

func TestApp_NoPypiFlagReachesBuilder(t *testing.T) {
	svc := new(mockPreparer)
	svc.On("PrepareAll", mock.Anything, true).Return([]*models.ReleaseCandidate{}, nil)

	_, err := runApp(t, svc, "--no-pypi")

	require.NoError(t, err)
	assert.True(t, svc.noIndex)
}

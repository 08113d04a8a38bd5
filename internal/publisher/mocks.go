package publisher

import (
	"context"

	"github.com/stretchr/testify/mock"

	"releasecraft/internal/models"
)

type MockReleaseManager struct {
	mock.Mock
}

func (m *MockReleaseManager) ListDrafts(ctx context.Context) ([]models.DraftRelease, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.DraftRelease), args.Error(1)
}

func (m *MockReleaseManager) CreateDraft(ctx context.Context, tag, title, body string, prerelease bool) error {
	args := m.Called(ctx, tag, title, body, prerelease)
	return args.Error(0)
}

func (m *MockReleaseManager) EditDraft(ctx context.Context, tag, title, body string, prerelease bool) error {
	args := m.Called(ctx, tag, title, body, prerelease)
	return args.Error(0)
}

func (m *MockReleaseManager) DeleteRelease(ctx context.Context, tag string) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

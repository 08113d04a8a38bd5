package ghcli

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, args ...string) (string, error) {
	ret := m.Called(ctx, args)
	return ret.String(0), ret.Error(1)
}

package main

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"releasecraft/internal/errors"
)

type stubRepoInfo struct {
	host  string
	owner string
	repo  string
	err   error
}

func (s *stubRepoInfo) GetRepoInfo(_ context.Context) (string, string, string, error) {
	return s.host, s.owner, s.repo, s.err
}

func TestAPICommitSource_UsesOwnerAndRepo(t *testing.T) {
	info := &stubRepoInfo{host: "github.com", owner: "acme", repo: "adri"}

	source := apiCommitSource(context.Background(), info, "token")

	require.NotNil(t, source)
	assert.Equal(t, "acme", source.Client.Owner())
	assert.Equal(t, "adri", source.Client.Repo())
}

func TestAPICommitSource_SkippedWithoutRepoInfo(t *testing.T) {
	info := &stubRepoInfo{err: errors.ErrGetRepoURL}

	source := apiCommitSource(context.Background(), info, "token")

	assert.Nil(t, source)
}

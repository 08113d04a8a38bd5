package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRepoURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		host  string
		owner string
		repo  string
		fails bool
	}{
		{name: "ssh remote", url: "git@github.com:acme/adri.git", host: "github.com", owner: "acme", repo: "adri"},
		{name: "https remote with .git", url: "https://github.com/acme/adri.git", host: "github.com", owner: "acme", repo: "adri"},
		{name: "https remote without .git", url: "https://github.com/acme/adri", host: "github.com", owner: "acme", repo: "adri"},
		{name: "not a remote", url: "file:///tmp/repo", fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			host, owner, repo, err := parseRepoURL(tt.url)
			if tt.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.host, host)
			assert.Equal(t, tt.owner, owner)
			assert.Equal(t, tt.repo, repo)
		})
	}
}

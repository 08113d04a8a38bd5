package git

import (
	"context"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"releasecraft/internal/errors"
	"releasecraft/internal/models"
)

type GitService struct{}

func NewGitService() *GitService {
	return &GitService{}
}

// GetRecentCommits reads the local log, newest first. Used as the fallback
// when the hosted commit query is unavailable.
func (s *GitService) GetRecentCommits(ctx context.Context, limit int) ([]models.Commit, error) {
	cmd := exec.CommandContext(ctx, "git", "log",
		"--oneline",
		fmt.Sprintf("-%d", limit),
		"--pretty=format:%h|%s|%an|%ad",
		"--date=short",
	)
	output, err := cmd.Output()
	if err != nil {
		return nil, errors.ErrGetCommits.WithError(err)
	}

	var commits []models.Commit
	for _, line := range strings.Split(strings.TrimSpace(string(output)), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) < 4 {
			continue
		}
		commits = append(commits, models.Commit{
			SHA:     parts[0],
			Message: parts[1],
			Author:  parts[2],
			Date:    parts[3],
		})
	}
	return commits, nil
}

// GetRepoInfo returns (host, owner, repo) parsed from the origin remote.
func (s *GitService) GetRepoInfo(ctx context.Context) (string, string, string, error) {
	cmd := exec.CommandContext(ctx, "git", "remote", "get-url", "origin")
	output, err := cmd.Output()
	if err != nil {
		return "", "", "", errors.ErrGetRepoURL.WithError(err)
	}

	url := strings.TrimSpace(string(output))
	return parseRepoURL(url)
}

var (
	sshRemote   = regexp.MustCompile(`git@([^:]+):([^/]+)/(.+)\.git$`)
	httpsRemote = regexp.MustCompile(`https://([^/]+)/([^/]+)/(.+?)(?:\.git)?$`)
)

func parseRepoURL(url string) (string, string, string, error) {
	var matches []string
	if sshRemote.MatchString(url) {
		matches = sshRemote.FindStringSubmatch(url)
	} else if httpsRemote.MatchString(url) {
		matches = httpsRemote.FindStringSubmatch(url)
	}

	if len(matches) != 4 {
		return "", "", "", errors.ErrGetRepoURL.WithContext("url", url)
	}
	return matches[1], matches[2], matches[3], nil
}

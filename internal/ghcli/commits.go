package ghcli

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"releasecraft/internal/errors"
	"releasecraft/internal/models"
)

// commitQuery flattens the commits API response into one JSON object per
// line, which is easier to stream-parse than the full payload.
const commitQuery = `.[] | {sha: .sha[0:8], message: .commit.message | split("\n")[0], author: .commit.author.name, date: .commit.author.date[0:10]}`

type commitLine struct {
	SHA     string `json:"sha"`
	Message string `json:"message"`
	Author  string `json:"author"`
	Date    string `json:"date"`
}

// RecentCommits lists the repository's most recent commits, newest first,
// through the gh API command. The repo is resolved from the current
// directory's origin remote by gh itself.
func (c *Client) RecentCommits(ctx context.Context, limit int) ([]models.Commit, error) {
	out, err := c.runner.Run(ctx,
		"api",
		"repos/:owner/:repo/commits",
		"--jq",
		fmt.Sprintf(".[0:%d] | %s", limit, commitQuery),
	)
	if err != nil {
		return nil, errors.ErrGetCommits.WithError(err)
	}

	var commits []models.Commit
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var c commitLine
		if err := json.Unmarshal([]byte(line), &c); err != nil {
			continue
		}
		commits = append(commits, models.Commit{
			SHA:     c.SHA,
			Message: c.Message,
			Author:  c.Author,
			Date:    c.Date,
		})
	}
	return commits, nil
}

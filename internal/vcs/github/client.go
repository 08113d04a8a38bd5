package github

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/go-github/v68/github"
	"golang.org/x/oauth2"

	"releasecraft/internal/errors"
	"releasecraft/internal/models"
)

// RepositoriesService is the slice of the GitHub API this client uses.
type RepositoriesService interface {
	ListCommits(ctx context.Context, owner, repo string, opts *github.CommitsListOptions) ([]*github.RepositoryCommit, *github.Response, error)
}

// Client lists commit history through the GitHub REST API. It is the
// structured commit source used when a token is configured; the gh and git
// fallbacks cover the rest.
type Client struct {
	repoService RepositoriesService
	owner       string
	repo        string
}

func NewClient(owner, repo, token string) *Client {
	var httpClient *http.Client
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
	}

	client := github.NewClient(httpClient)
	return &Client{
		repoService: client.Repositories,
		owner:       owner,
		repo:        repo,
	}
}

// Owner reports the repository owner the client queries.
func (c *Client) Owner() string { return c.owner }

// Repo reports the repository name the client queries.
func (c *Client) Repo() string { return c.repo }

// NewClientWithServices is for tests.
func NewClientWithServices(repoService RepositoriesService, owner, repo string) *Client {
	return &Client{
		repoService: repoService,
		owner:       owner,
		repo:        repo,
	}
}

// RecentCommits returns up to limit commits, newest first as the API orders
// them, mapped to the short-hash/first-line shape the notes renderer wants.
func (c *Client) RecentCommits(ctx context.Context, limit int) ([]models.Commit, error) {
	apiCommits, _, err := c.repoService.ListCommits(ctx, c.owner, c.repo, &github.CommitsListOptions{
		ListOptions: github.ListOptions{PerPage: limit},
	})
	if err != nil {
		return nil, errors.ErrGetCommits.WithError(err).WithContext("repo", c.owner+"/"+c.repo)
	}

	commits := make([]models.Commit, 0, len(apiCommits))
	for _, rc := range apiCommits {
		if rc.Commit == nil {
			continue
		}

		sha := rc.GetSHA()
		if len(sha) > 8 {
			sha = sha[:8]
		}

		message := rc.Commit.GetMessage()
		if i := strings.IndexByte(message, '\n'); i >= 0 {
			message = message[:i]
		}

		commit := models.Commit{SHA: sha, Message: message}
		if author := rc.Commit.GetAuthor(); author != nil {
			commit.Author = author.GetName()
			commit.Date = author.GetDate().Format("2006-01-02")
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

package ghapp

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v53/github"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
	"golang.org/x/oauth2"
)

// Client talks to the GitHub REST API on behalf of a user token. When a
// GitHub App is configured it can also issue installation tokens for users
// who have not connected their GitHub account.
type Client struct {
	appID     types.GitHubAppID
	pem       types.GitHubAppPrivateKey
	baseURL   *url.URL
	transport http.RoundTripper
}

var _ interfaces.GitHub = (*Client)(nil)

type Option func(*Client)

// WithApp enables installation tokens of the GitHub App
func WithApp(appID types.GitHubAppID, pem types.GitHubAppPrivateKey) Option {
	return func(x *Client) {
		x.appID = appID
		x.pem = pem
	}
}

// WithBaseURL replaces the API endpoint, e.g. for GitHub Enterprise
func WithBaseURL(u *url.URL) Option {
	return func(x *Client) {
		x.baseURL = u
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(options ...Option) (*Client, error) {
	client := &Client{
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	if (client.appID == 0) != (client.pem == "") {
		return nil, goerr.Wrap(types.ErrInvalidOption, "both app ID and private key are required for GitHub App")
	}
	if client.baseURL != nil && !strings.HasSuffix(client.baseURL.Path, "/") {
		u := *client.baseURL
		u.Path += "/"
		client.baseURL = &u
	}

	return client, nil
}

func (x *Client) hasApp() bool {
	return x.appID != 0 && x.pem != ""
}

func (x *Client) newGitHubClient(httpClient *http.Client) *github.Client {
	client := github.NewClient(httpClient)
	if x.baseURL != nil {
		client.BaseURL = x.baseURL
	}
	return client
}

func (x *Client) buildGithubClient(token types.GitHubToken) (*github.Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrNoGitHubToken, "GitHub token is empty")
	}

	httpClient := &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(token)}),
			Base:   x.transport,
		},
	}
	return x.newGitHubClient(httpClient), nil
}

func (x *Client) buildAppClient() (*github.Client, error) {
	itr, err := ghinstallation.NewAppsTransport(x.transport, int64(x.appID), []byte(x.pem))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create app transport")
	}
	if x.baseURL != nil {
		itr.BaseURL = strings.TrimSuffix(x.baseURL.String(), "/")
	}
	return x.newGitHubClient(&http.Client{Transport: itr}), nil
}

// InstallationToken implements interfaces.GitHub.
func (x *Client) InstallationToken(ctx context.Context, repo *model.GitHubRepo) (types.GitHubToken, error) {
	if !x.hasApp() {
		return "", goerr.Wrap(types.ErrNoGitHubToken, "user has no GitHub token and GitHub App is not configured",
			goerr.V("repo", repo.String()))
	}

	appClient, err := x.buildAppClient()
	if err != nil {
		return "", err
	}

	installation, _, err := appClient.Apps.FindRepositoryInstallation(ctx, repo.Owner, repo.RepoName)
	if err != nil {
		return "", goerr.Wrap(err, "failed to find repository installation", goerr.V("repo", repo.String()))
	}

	itr, err := ghinstallation.New(x.transport, int64(x.appID), installation.GetID(), []byte(x.pem))
	if err != nil {
		return "", goerr.Wrap(err, "failed to create installation transport")
	}
	if x.baseURL != nil {
		itr.BaseURL = strings.TrimSuffix(x.baseURL.String(), "/")
	}

	token, err := itr.Token(ctx)
	if err != nil {
		return "", goerr.Wrap(err, "failed to issue installation token", goerr.V("installID", installation.GetID()))
	}

	logging.From(ctx).Debug("Issued installation token",
		slog.String("repo", repo.String()),
		slog.Int64("installID", installation.GetID()),
	)

	return types.GitHubToken(token), nil
}

// GetDefaultBranch implements interfaces.GitHub.
func (x *Client) GetDefaultBranch(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo) (types.BranchName, error) {
	client, err := x.buildGithubClient(token)
	if err != nil {
		return "", err
	}

	r, _, err := client.Repositories.Get(ctx, repo.Owner, repo.RepoName)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get repository", goerr.V("repo", repo.String()))
	}
	if r.GetDefaultBranch() == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "repository has no default branch", goerr.V("repo", repo.String()))
	}

	return types.BranchName(r.GetDefaultBranch()), nil
}

// GetBranchHeadSHA implements interfaces.GitHub.
func (x *Client) GetBranchHeadSHA(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, branch types.BranchName) (types.CommitSHA, error) {
	client, err := x.buildGithubClient(token)
	if err != nil {
		return "", err
	}

	ref, _, err := client.Git.GetRef(ctx, repo.Owner, repo.RepoName, "refs/heads/"+branch.String())
	if err != nil {
		return "", goerr.Wrap(err, "failed to get branch ref",
			goerr.V("repo", repo.String()),
			goerr.V("branch", branch),
		)
	}

	sha := ref.GetObject().GetSHA()
	if sha == "" {
		return "", goerr.Wrap(types.ErrInvalidGitHubData, "branch ref has no SHA", goerr.V("branch", branch))
	}

	return types.CommitSHA(sha), nil
}

// ResolveCommit implements interfaces.GitHub.
func (x *Client) ResolveCommit(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, commitIsh string) (*model.Commit, error) {
	client, err := x.buildGithubClient(token)
	if err != nil {
		return nil, err
	}

	rc, _, err := client.Repositories.GetCommit(ctx, repo.Owner, repo.RepoName, commitIsh, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get commit",
			goerr.V("repo", repo.String()),
			goerr.V("commitIsh", commitIsh),
		)
	}

	commit := &model.Commit{
		SHA:        types.CommitSHA(rc.GetSHA()),
		URL:        rc.GetHTMLURL(),
		AuthorDate: rc.GetCommit().GetAuthor().GetDate().Time,
	}
	if err := commit.Validate(); err != nil {
		return nil, err
	}

	return commit, nil
}

// CreateBranchRef implements interfaces.GitHub.
func (x *Client) CreateBranchRef(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, name types.BranchName, sha types.CommitSHA) error {
	client, err := x.buildGithubClient(token)
	if err != nil {
		return err
	}

	ref := &github.Reference{
		Ref:    github.String("refs/heads/" + name.String()),
		Object: &github.GitObject{SHA: github.String(string(sha))},
	}

	if _, _, err := client.Git.CreateRef(ctx, repo.Owner, repo.RepoName, ref); err != nil {
		var ghErr *github.ErrorResponse
		if errors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusUnprocessableEntity {
			return goerr.Wrap(types.ErrBranchNameConflict, "branch already exists",
				goerr.V("repo", repo.String()),
				goerr.V("branch", name),
				goerr.V("message", ghErr.Message),
			)
		}
		return goerr.Wrap(err, "failed to create branch ref",
			goerr.V("repo", repo.String()),
			goerr.V("branch", name),
		)
	}

	logging.From(ctx).Info("Created branch",
		slog.String("repo", repo.String()),
		slog.String("branch", name.String()),
		slog.String("sha", string(sha)),
	)

	return nil
}

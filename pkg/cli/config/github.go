package config

import (
	"log/slog"
	"net/url"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/infra/ghapp"
	"github.com/m-mizutani/orgforge/pkg/infra/gitrepo"
	"github.com/urfave/cli/v3"
)

// GitHub configures the GitHub API client and local checkouts. The GitHub App
// is optional and only used for users without their own token.
type GitHub struct {
	appID      types.GitHubAppID
	privateKey types.GitHubAppPrivateKey `masq:"secret"`
	baseURL    string
	workspace  string
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID used when a user has no GitHub token",
			Category:    "GitHub",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("ORGFORGE_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("ORGFORGE_GITHUB_APP_PRIVATE_KEY"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub API base URL, e.g. for GitHub Enterprise",
			Category:    "GitHub",
			Destination: &x.baseURL,
			Sources:     cli.EnvVars("ORGFORGE_GITHUB_API_URL"),
		},
		&cli.StringFlag{
			Name:        "git-workspace",
			Usage:       "Parent directory of temporary repository checkouts",
			Category:    "GitHub",
			Destination: &x.workspace,
			Sources:     cli.EnvVars("ORGFORGE_GIT_WORKSPACE"),
		},
	}
}

func (x *GitHub) New() (*ghapp.Client, error) {
	var options []ghapp.Option
	if x.appID != 0 || x.privateKey != "" {
		options = append(options, ghapp.WithApp(x.appID, x.privateKey))
	}
	if x.baseURL != "" {
		u, err := url.Parse(x.baseURL)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API URL", goerr.V("url", x.baseURL))
		}
		options = append(options, ghapp.WithBaseURL(u))
	}

	return ghapp.New(options...)
}

func (x *GitHub) NewGit() *gitrepo.Client {
	var options []gitrepo.Option
	if x.workspace != "" {
		options = append(options, gitrepo.WithWorkspace(x.workspace))
	}
	return gitrepo.New(options...)
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("AppID", int64(x.appID)),
		slog.Int("privateKey.len", len(x.privateKey)),
		slog.String("BaseURL", x.baseURL),
		slog.String("Workspace", x.workspace),
	)
}

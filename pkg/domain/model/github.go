package model

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

// GitHubRepo identifies a repository on github.com
type GitHubRepo struct {
	Owner    string `json:"owner" firestore:"owner"`
	RepoName string `json:"repo_name" firestore:"repo_name"`
}

var ptnValidGitHubName = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)

func (x *GitHubRepo) Validate() error {
	if x.Owner == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "owner is empty")
	}
	if x.RepoName == "" {
		return goerr.Wrap(types.ErrInvalidGitHubData, "repo name is empty")
	}
	if !ptnValidGitHubName.MatchString(x.Owner) || !ptnValidGitHubName.MatchString(x.RepoName) {
		return goerr.Wrap(types.ErrInvalidGitHubData, "invalid owner or repo name",
			goerr.V("owner", x.Owner),
			goerr.V("repo", x.RepoName),
		)
	}
	return nil
}

func (x *GitHubRepo) String() string {
	return x.Owner + "/" + x.RepoName
}

// URL returns the canonical form https://www.github.com/:org/:repo
func (x *GitHubRepo) URL() string {
	return "https://www.github.com/" + x.Owner + "/" + x.RepoName
}

// CommitURL returns the web page of a commit in the repository
func (x *GitHubRepo) CommitURL(sha types.CommitSHA) string {
	return "https://github.com/" + x.Owner + "/" + x.RepoName + "/commit/" + string(sha)
}

func (x *GitHubRepo) CloneURL() string {
	return "https://github.com/" + x.Owner + "/" + x.RepoName + ".git"
}

// NormalizeGitHubURL rewrites a GitHub repository URL into the canonical
// https://www.github.com/:org/:repo form. An API style "/repos" prefix and a
// ".git" suffix are removed.
func NormalizeGitHubURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", goerr.Wrap(types.ErrValidationFailed, "failed to parse repository URL", goerr.V("url", raw))
	}

	u.Scheme = "https"
	u.Host = "www.github.com"
	u.Path = strings.TrimPrefix(u.Path, "/repos")
	u.Path = strings.TrimSuffix(u.Path, ".git")
	u.RawPath = ""

	return u.String(), nil
}

// ParseGitHubRepoURL accepts only URLs already in canonical form, or plain
// github.com variants of it, and extracts owner and repository name.
func ParseGitHubRepoURL(raw string) (*GitHubRepo, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "failed to parse repository URL", goerr.V("url", raw))
	}
	if u.Scheme != "https" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "repository URL must use https", goerr.V("url", raw))
	}
	if u.Host != "www.github.com" && u.Host != "github.com" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "repository URL must point to github.com", goerr.V("url", raw))
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "repository URL must not have query or fragment", goerr.V("url", raw))
	}

	parts := strings.Split(strings.Trim(u.Path, "/"), "/")
	if len(parts) != 2 || strings.HasSuffix(parts[1], ".git") {
		return nil, goerr.Wrap(types.ErrValidationFailed,
			"repository URL should be of the form 'https://www.github.com/:org/:repo'",
			goerr.V("url", raw),
		)
	}

	repo := &GitHubRepo{Owner: parts[0], RepoName: parts[1]}
	if err := repo.Validate(); err != nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "invalid repository URL", goerr.V("url", raw), goerr.V("cause", err.Error()))
	}

	return repo, nil
}

// Commit is a resolved commit-ish
type Commit struct {
	SHA        types.CommitSHA
	URL        string
	AuthorDate time.Time
}

var ptnValidCommitID = regexp.MustCompile("^[0-9a-f]{40}$")

func (x *Commit) Validate() error {
	if !ptnValidCommitID.MatchString(string(x.SHA)) {
		return goerr.Wrap(types.ErrInvalidGitHubData, "invalid commit SHA", goerr.V("sha", x.SHA))
	}
	return nil
}

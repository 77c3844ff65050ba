package gitrepo

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	githttp "github.com/go-git/go-git/v5/plumbing/transport/http"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
	"github.com/m-mizutani/orgforge/pkg/utils/safe"
)

const defaultAuthorEmail = "noreply@github.com"

// Client clones repositories into per-call temporary directories and pushes
// commits back to GitHub.
type Client struct {
	workspace string
	cloneURL  func(repo *model.GitHubRepo) string
}

var _ interfaces.Git = (*Client)(nil)

type Option func(*Client)

// WithWorkspace sets the parent directory of temporary checkouts. Default
// is os.TempDir().
func WithWorkspace(dir string) Option {
	return func(x *Client) {
		x.workspace = dir
	}
}

// WithCloneURL overrides how a repository is turned into a clone URL
func WithCloneURL(f func(repo *model.GitHubRepo) string) Option {
	return func(x *Client) {
		x.cloneURL = f
	}
}

func New(options ...Option) *Client {
	client := &Client{
		cloneURL: func(repo *model.GitHubRepo) string { return repo.CloneURL() },
	}
	for _, opt := range options {
		opt(client)
	}
	return client
}

func tokenAuth(token types.GitHubToken) transport.AuthMethod {
	if token == "" {
		return nil
	}
	return &githttp.BasicAuth{
		Username: "x-access-token",
		Password: string(token),
	}
}

// Checkout implements interfaces.Git.
func (x *Client) Checkout(ctx context.Context, input *interfaces.CheckoutInput, fn func(repoRoot string) error) error {
	if x.workspace != "" {
		if err := os.MkdirAll(x.workspace, 0700); err != nil {
			return goerr.Wrap(err, "failed to create workspace", goerr.V("workspace", x.workspace))
		}
	}

	dir, err := os.MkdirTemp(x.workspace, "orgforge-checkout-*")
	if err != nil {
		return goerr.Wrap(err, "failed to create checkout directory")
	}
	defer safe.RemoveAll(ctx, dir)

	opts := &git.CloneOptions{
		URL:          x.cloneURL(input.Repo),
		Auth:         tokenAuth(input.Token),
		SingleBranch: true,
	}
	if input.Ref != "" {
		opts.ReferenceName = plumbing.NewBranchReferenceName(input.Ref.String())
	}

	if _, err := git.PlainCloneContext(ctx, dir, false, opts); err != nil {
		return goerr.Wrap(err, "failed to clone repository",
			goerr.V("repo", input.Repo.String()),
			goerr.V("ref", input.Ref),
		)
	}

	logging.From(ctx).Debug("Checked out repository",
		slog.String("repo", input.Repo.String()),
		slog.String("ref", input.Ref.String()),
		slog.String("path", dir),
	)

	return fn(dir)
}

// CommitDirectory implements interfaces.Git.
func (x *Client) CommitDirectory(ctx context.Context, input *interfaces.CommitDirectoryInput) (*model.Commit, error) {
	r, err := git.PlainOpen(input.RepoRoot)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open repository", goerr.V("path", input.RepoRoot))
	}

	commit, err := commitDirectory(ctx, r, input)
	if err != nil || commit == nil {
		return nil, err
	}

	head, err := r.Head()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get HEAD")
	}

	refSpec := config.RefSpec(head.Name().String() + ":" + plumbing.NewBranchReferenceName(input.Branch.String()).String())
	if err := r.PushContext(ctx, &git.PushOptions{
		RemoteName: git.DefaultRemoteName,
		RefSpecs:   []config.RefSpec{refSpec},
		Auth:       tokenAuth(input.Token),
	}); err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return nil, goerr.Wrap(err, "failed to push branch",
			goerr.V("branch", input.Branch),
			goerr.V("sha", commit.SHA),
		)
	}

	logging.From(ctx).Info("Pushed commit",
		slog.String("branch", input.Branch.String()),
		slog.String("sha", string(commit.SHA)),
	)

	return commit, nil
}

func commitDirectory(ctx context.Context, r *git.Repository, input *interfaces.CommitDirectoryInput) (*model.Commit, error) {
	w, err := r.Worktree()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get worktree")
	}

	dir := filepath.ToSlash(filepath.Clean(input.Dir))
	if _, err := os.Stat(filepath.Join(input.RepoRoot, dir)); os.IsNotExist(err) {
		return nil, nil
	}

	if _, err := w.Add(dir); err != nil {
		return nil, goerr.Wrap(err, "failed to add directory", goerr.V("dir", dir))
	}

	status, err := w.Status()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get status")
	}
	if !hasStaged(status) {
		logging.From(ctx).Info("Nothing to commit", slog.String("dir", dir))
		return nil, nil
	}

	now := logging.CtxTime(ctx)
	author := &object.Signature{
		Name:  "orgforge",
		Email: defaultAuthorEmail,
		When:  now,
	}
	if input.Author != nil {
		if input.Author.Login != "" {
			author.Name = input.Author.Login
		}
		if input.Author.Email != "" {
			author.Email = input.Author.Email
		}
	}

	hash, err := w.Commit(input.Message, &git.CommitOptions{Author: author})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to commit", goerr.V("dir", dir))
	}

	commit := &model.Commit{
		SHA:        types.CommitSHA(hash.String()),
		AuthorDate: now,
	}
	if input.Repo != nil {
		commit.URL = input.Repo.CommitURL(commit.SHA)
	}
	return commit, nil
}

func hasStaged(status git.Status) bool {
	for _, s := range status {
		if s.Staging != git.Unmodified && s.Staging != git.Untracked {
			return true
		}
	}
	return false
}

package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . BigQuery GitHub OrgProvider Salesforce Git ProjectConfigLoader Pusher

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

type BigQuery interface {
	Insert(ctx context.Context, schema bigquery.Schema, data any) error

	GetMetadata(ctx context.Context) (*bigquery.TableMetadata, error)
	UpdateTable(ctx context.Context, md bigquery.TableMetadataToUpdate, eTag string) error
	CreateTable(ctx context.Context, md *bigquery.TableMetadata) error
}

// GitHub is the remote repository host. All calls act on behalf of the user
// owning token.
type GitHub interface {
	// InstallationToken issues a GitHub App installation token for repo. It
	// is used when the user has no token of their own and returns an error
	// wrapping types.ErrNoGitHubToken if no app is configured.
	InstallationToken(ctx context.Context, repo *model.GitHubRepo) (types.GitHubToken, error)

	GetDefaultBranch(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo) (types.BranchName, error)
	GetBranchHeadSHA(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, branch types.BranchName) (types.CommitSHA, error)
	ResolveCommit(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, commitIsh string) (*model.Commit, error)

	// CreateBranchRef creates refs/heads/<name> pointing to sha. It returns
	// an error wrapping types.ErrBranchNameConflict when the name is taken.
	CreateBranchRef(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, name types.BranchName, sha types.CommitSHA) error
}

type CreateScratchOrgInput struct {
	DevHub     *model.OrgCredential
	Definition *model.ScratchOrgDefinition
	Days       int
}

// OrgProvider manages scratch org lifecycle in a Dev Hub
type OrgProvider interface {
	CreateScratchOrg(ctx context.Context, input *CreateScratchOrgInput) (*model.ScratchOrgResult, error)
	DeleteScratchOrg(ctx context.Context, devHub *model.OrgCredential, orgID types.SalesforceOrgID) error
}

type RetrieveComponentsInput struct {
	Credential *model.OrgCredential
	Changes    model.DesiredChanges
	TargetDir  string
	APIVersion string
}

type Salesforce interface {
	// RefreshAccessToken returns a credential with a fresh access token
	RefreshAccessToken(ctx context.Context, cred *model.OrgCredential) (*model.OrgCredential, error)
	QueryRevisions(ctx context.Context, cred *model.OrgCredential) ([]model.RevisionRecord, error)
	RetrieveComponents(ctx context.Context, input *RetrieveComponentsInput) error
}

type CheckoutInput struct {
	Token types.GitHubToken
	Repo  *model.GitHubRepo
	// Ref is a branch name. Empty means the default branch.
	Ref types.BranchName
}

type CommitDirectoryInput struct {
	RepoRoot string
	Dir      string
	Repo     *model.GitHubRepo
	Branch   types.BranchName
	Message  string
	Author   *model.User
	Token    types.GitHubToken
}

type Git interface {
	// Checkout clones the repository into a temporary directory, calls fn
	// with its path and removes it after fn returns.
	Checkout(ctx context.Context, input *CheckoutInput, fn func(repoRoot string) error) error
	// CommitDirectory commits everything under Dir and pushes to Branch. It
	// returns the new commit, or nil if there was nothing to commit.
	CommitDirectory(ctx context.Context, input *CommitDirectoryInput) (*model.Commit, error)
}

type ProjectConfigLoader interface {
	LoadProjectConfig(ctx context.Context, repoRoot string) (*model.ProjectConfig, error)
	LoadScratchOrgDefinition(ctx context.Context, repoRoot, configFile string) (*model.ScratchOrgDefinition, error)
}

type Pusher interface {
	PushMessage(ctx context.Context, scratchOrgID types.ScratchOrgID, msg *model.Message) error
}

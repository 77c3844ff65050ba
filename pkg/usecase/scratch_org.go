package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/repository"
	"github.com/m-mizutani/orgforge/pkg/utils/errutil"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

// taskContext is everything a scratch org of a task is provisioned from
type taskContext struct {
	user    *model.User
	project *model.Project
	task    *model.Task
	repo    *model.GitHubRepo
}

func (x *UseCase) loadTaskContext(ctx context.Context, userID types.UserID, taskID types.TaskID) (*taskContext, error) {
	repo := x.clients.ProjectRepository()

	user, err := repo.GetUser(ctx, userID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("user_id", userID))
	}
	task, err := repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get task", goerr.V("task_id", taskID))
	}
	project, err := repo.GetProject(ctx, task.ProjectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get project", goerr.V("project_id", task.ProjectID))
	}

	ghRepo, err := model.ParseGitHubRepoURL(project.RepoURL)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid repository URL of project", goerr.V("project_id", project.ID))
	}

	return &taskContext{
		user:    user,
		project: project,
		task:    task,
		repo:    ghRepo,
	}, nil
}

func newScratchOrg(input *model.ProvisionScratchOrgInput) *model.ScratchOrg {
	id := input.ScratchOrgID
	if id == "" {
		id = types.NewScratchOrgID()
	}
	return &model.ScratchOrg{
		ID:      id,
		TaskID:  input.TaskID,
		OwnerID: input.UserID,
		OrgType: input.OrgType,
	}
}

func (x *UseCase) validateProvision(ctx context.Context, input *model.ProvisionScratchOrgInput) (*taskContext, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	tc, err := x.loadTaskContext(ctx, input.UserID, input.TaskID)
	if err != nil {
		return nil, err
	}
	if tc.user.DevHub == nil {
		return nil, goerr.Wrap(types.ErrValidationFailed, "user has no Dev Hub credential", goerr.V("user_id", input.UserID))
	}

	if input.ScratchOrgID != "" {
		_, err := x.clients.ProjectRepository().GetScratchOrg(ctx, input.ScratchOrgID)
		if err == nil {
			return nil, goerr.Wrap(types.ErrValidationFailed, "scratch org ID is already used",
				goerr.V("scratch_org_id", input.ScratchOrgID))
		}
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(err, "failed to check scratch org ID",
				goerr.V("scratch_org_id", input.ScratchOrgID))
		}
	}

	return tc, nil
}

// ProvisionScratchOrg creates the project and task branches when they do not
// exist yet and then creates a scratch org from the task branch. On failure
// nothing about the scratch org survives.
func (x *UseCase) ProvisionScratchOrg(ctx context.Context, input *model.ProvisionScratchOrgInput) (*model.ScratchOrg, error) {
	tc, err := x.validateProvision(ctx, input)
	if err != nil {
		return nil, err
	}

	org := newScratchOrg(input)
	ctx = logging.With(ctx, logging.From(ctx).With(slog.String("scratch_org_id", string(org.ID))))

	err = x.reportErrorsOn(ctx, org, tc.user.DevHub, func() error {
		token, err := x.githubToken(ctx, tc.user, tc.repo)
		if err != nil {
			return err
		}

		checkout := &interfaces.CheckoutInput{Token: token, Repo: tc.repo}
		return x.clients.Git().Checkout(ctx, checkout, func(repoRoot string) error {
			cfg, err := x.clients.ConfigLoader().LoadProjectConfig(ctx, repoRoot)
			if err != nil {
				return err
			}

			branch, err := x.ensureBranches(ctx, token, tc.repo, cfg, tc.project, tc.task)
			if err != nil {
				return err
			}

			return x.createScratchOrgOn(ctx, org, tc, token, repoRoot, cfg, branch.String())
		})
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

// CreateScratchOrg creates a scratch org from an existing commit-ish without
// creating any branch.
func (x *UseCase) CreateScratchOrg(ctx context.Context, input *model.CreateScratchOrgInput) (*model.ScratchOrg, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	tc, err := x.validateProvision(ctx, &input.ProvisionScratchOrgInput)
	if err != nil {
		return nil, err
	}

	org := newScratchOrg(&input.ProvisionScratchOrgInput)
	ctx = logging.With(ctx, logging.From(ctx).With(slog.String("scratch_org_id", string(org.ID))))

	err = x.reportErrorsOn(ctx, org, tc.user.DevHub, func() error {
		token, err := x.githubToken(ctx, tc.user, tc.repo)
		if err != nil {
			return err
		}

		checkout := &interfaces.CheckoutInput{Token: token, Repo: tc.repo}
		return x.clients.Git().Checkout(ctx, checkout, func(repoRoot string) error {
			cfg, err := x.clients.ConfigLoader().LoadProjectConfig(ctx, repoRoot)
			if err != nil {
				return err
			}
			return x.createScratchOrgOn(ctx, org, tc, token, repoRoot, cfg, input.CommitIsh)
		})
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

// createScratchOrgOn creates the remote org for commitIsh and saves the
// record. org.SFOrgID is set as soon as the remote org exists.
func (x *UseCase) createScratchOrgOn(ctx context.Context, org *model.ScratchOrg, tc *taskContext, token types.GitHubToken, repoRoot string, cfg *model.ProjectConfig, commitIsh string) error {
	commit, err := x.clients.GitHub().ResolveCommit(ctx, token, tc.repo, commitIsh)
	if err != nil {
		return err
	}

	spec := cfg.OrgSpec(org.OrgType)
	def, err := x.clients.ConfigLoader().LoadScratchOrgDefinition(ctx, repoRoot, spec.ConfigFile)
	if err != nil {
		return err
	}

	result, err := x.clients.OrgProvider().CreateScratchOrg(ctx, &interfaces.CreateScratchOrgInput{
		DevHub:     tc.user.DevHub,
		Definition: def,
		Days:       spec.Days,
	})
	if err != nil {
		return err
	}

	org.SFOrgID = result.SFOrgID
	org.URL = result.URL
	org.ExpiresAt = result.ExpiresAt
	org.Credential = result.Credential
	org.LatestCommit = commit.SHA
	org.LatestCommitURL = commit.URL
	org.LatestCommitAt = commit.AuthorDate
	org.LastModifiedAt = logging.CtxTime(ctx)

	baseline, err := x.snapshot(ctx, org)
	if err != nil {
		return goerr.Wrap(err, "failed to take baseline revisions")
	}
	org.LatestRevisions = baseline
	org.UnsavedChanges = model.DesiredChanges{}

	if err := x.clients.ProjectRepository().PutScratchOrg(ctx, org); err != nil {
		return goerr.Wrap(err, "failed to save scratch org")
	}

	logging.From(ctx).Info("Scratch org is provisioned",
		slog.String("sf_org_id", string(org.SFOrgID)),
		slog.String("commit", string(org.LatestCommit)),
		slog.Time("expires_at", org.ExpiresAt),
	)
	x.push(ctx, org.ID, model.NewScratchOrgMessage(types.MessageScratchOrgProvisioned, org.Copy()))

	return nil
}

// reportErrorsOn runs fn and, when it fails or panics, notifies watchers with
// the current state of org, reports the error, removes the remote org if it
// was created and deletes the record. A panic is returned as an error.
func (x *UseCase) reportErrorsOn(ctx context.Context, org *model.ScratchOrg, devHub *model.OrgCredential, fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = goerr.New("panic while provisioning scratch org", goerr.V("panic", r))
		}
		if err != nil {
			x.cleanupFailedProvision(ctx, org, devHub, err)
		}
	}()

	return fn()
}

func (x *UseCase) cleanupFailedProvision(ctx context.Context, org *model.ScratchOrg, devHub *model.OrgCredential, err error) {
	x.push(ctx, org.ID, model.NewProvisionFailedMessage(err, org.Copy()))
	errutil.HandleError(ctx, "failed to provision scratch org", err)

	logger := logging.From(ctx)
	if org.SFOrgID != "" {
		if delErr := x.clients.OrgProvider().DeleteScratchOrg(ctx, devHub, org.SFOrgID); delErr != nil {
			logger.Error("failed to delete remote scratch org",
				slog.Any("error", delErr),
				slog.String("sf_org_id", string(org.SFOrgID)),
			)
		}
	}
	if delErr := x.clients.ProjectRepository().DeleteScratchOrg(ctx, org.ID); delErr != nil {
		logger.Error("failed to delete scratch org record", slog.Any("error", delErr))
	}
}

package usecase

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/errutil"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

// runRetrieveTask retrieves the desired components of org into targetDir
// using the API version configured in the checkout.
func (x *UseCase) runRetrieveTask(ctx context.Context, org *model.ScratchOrg, cfg *model.ProjectConfig, changes model.DesiredChanges, targetDir string) error {
	cred, err := x.clients.Salesforce().RefreshAccessToken(ctx, org.Credential)
	if err != nil {
		return err
	}
	org.Credential = cred

	if err := x.clients.Salesforce().RetrieveComponents(ctx, &interfaces.RetrieveComponentsInput{
		Credential: cred,
		Changes:    changes,
		TargetDir:  targetDir,
		APIVersion: cfg.APIVersion,
	}); err != nil {
		return goerr.Wrap(err, "failed to retrieve components",
			goerr.V("scratch_org_id", org.ID),
			goerr.V("components", changes.Count()),
		)
	}

	return nil
}

// CommitChanges retrieves the changed components from the scratch org and
// commits them to the branch. Nothing is committed when retrieval fails.
// It returns nil commit when the retrieved files match the branch.
func (x *UseCase) CommitChanges(ctx context.Context, input *model.CommitChangesInput) (*model.Commit, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	org, err := x.clients.ProjectRepository().GetScratchOrg(ctx, input.ScratchOrgID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get scratch org", goerr.V("scratch_org_id", input.ScratchOrgID))
	}
	tc, err := x.loadTaskContext(ctx, input.UserID, org.TaskID)
	if err != nil {
		return nil, err
	}

	branch := input.Branch
	if branch == "" {
		branch = tc.task.BranchName
	}
	if branch == "" {
		return nil, goerr.Wrap(types.ErrValidationFailed, "task has no branch to commit to", goerr.V("task_id", tc.task.ID))
	}

	changes := input.Changes
	if changes.Count() == 0 {
		changes = org.UnsavedChanges
	}
	if changes.Count() == 0 {
		return nil, goerr.Wrap(types.ErrValidationFailed, "no changes to commit", goerr.V("scratch_org_id", org.ID))
	}

	token, err := x.githubToken(ctx, tc.user, tc.repo)
	if err != nil {
		return nil, err
	}

	var (
		commit    *model.Commit
		retrieved model.RevisionSnapshot
	)
	checkout := &interfaces.CheckoutInput{Token: token, Repo: tc.repo, Ref: branch}
	if err := x.clients.Git().Checkout(ctx, checkout, func(repoRoot string) error {
		cfg, err := x.clients.ConfigLoader().LoadProjectConfig(ctx, repoRoot)
		if err != nil {
			return err
		}

		// Counters are read before retrieval. Edits made while retrieving
		// stay above the new baseline and are reported by the next refresh.
		retrieved, err = x.snapshot(ctx, org)
		if err != nil {
			return goerr.Wrap(err, "failed to take revision snapshot before retrieval", goerr.V("scratch_org_id", org.ID))
		}

		target := input.Target()
		if err := x.runRetrieveTask(ctx, org, cfg, changes, filepath.Join(repoRoot, target)); err != nil {
			return err
		}

		commit, err = x.clients.Git().CommitDirectory(ctx, &interfaces.CommitDirectoryInput{
			RepoRoot: repoRoot,
			Dir:      target,
			Repo:     tc.repo,
			Branch:   branch,
			Message:  input.Message,
			Author:   tc.user,
			Token:    token,
		})
		return err
	}); err != nil {
		return nil, err
	}

	if err := x.foldCommittedChanges(ctx, org, retrieved, changes, commit); err != nil {
		return nil, err
	}

	if commit == nil {
		logging.From(ctx).Info("Nothing to commit", slog.String("branch", branch.String()))
		return nil, nil
	}

	logging.From(ctx).Info("Committed scratch org changes",
		slog.String("branch", branch.String()),
		slog.String("commit", string(commit.SHA)),
		slog.Int("components", changes.Count()),
	)

	return commit, nil
}

// foldCommittedChanges moves the counters of committed components, as read
// before retrieval, into the baseline so that they are no longer reported as
// changes.
func (x *UseCase) foldCommittedChanges(ctx context.Context, org *model.ScratchOrg, retrieved model.RevisionSnapshot, changes model.DesiredChanges, commit *model.Commit) error {
	org.LatestRevisions = org.LatestRevisions.Apply(retrieved, changes)
	org.UnsavedChanges = model.ChangedComponents(org.LatestRevisions, retrieved)
	org.HasChanges = model.CompareRevisions(org.LatestRevisions, retrieved)
	org.LastModifiedAt = logging.CtxTime(ctx)

	values := []goerr.Option{goerr.V("scratch_org_id", org.ID)}
	if commit != nil {
		org.LatestCommit = commit.SHA
		org.LatestCommitURL = commit.URL
		org.LatestCommitAt = commit.AuthorDate
		values = append(values, goerr.V("commit", commit.SHA))
	}

	if err := x.clients.ProjectRepository().PutScratchOrg(ctx, org); err != nil {
		return goerr.Wrap(err, "failed to save scratch org after commit", values...)
	}

	if commit == nil {
		x.push(ctx, org.ID, model.NewScratchOrgMessage(types.MessageScratchOrgUpdated, org.Copy()))
		return nil
	}

	x.push(ctx, org.ID, model.NewScratchOrgMessage(types.MessageScratchOrgCommitted, org.Copy()))
	if err := x.exportChangeRecord(ctx, org, types.MessageScratchOrgCommitted, changes); err != nil {
		errutil.HandleError(ctx, "failed to export change record", err)
	}

	return nil
}

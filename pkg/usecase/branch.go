package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gosimple/slug"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/repository"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

const (
	taskBranchSeparator = "__"

	maxBranchSaveAttempts = 3
)

// githubToken returns the user's own token, or an installation token of the
// GitHub App when the user has not connected GitHub.
func (x *UseCase) githubToken(ctx context.Context, user *model.User, repo *model.GitHubRepo) (types.GitHubToken, error) {
	if user.GitHubToken != "" {
		return user.GitHubToken, nil
	}
	if x.clients.GitHub() == nil {
		return "", goerr.Wrap(types.ErrNoGitHubToken, "GitHub client is not configured")
	}
	return x.clients.GitHub().InstallationToken(ctx, repo)
}

// reserveBranch creates candidate from the tip of base. When the name is
// taken it tries candidate-1, candidate-2 and so on, up to the configured
// retry limit.
func (x *UseCase) reserveBranch(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, candidate, base types.BranchName) (types.BranchName, error) {
	gh := x.clients.GitHub()

	sha, err := gh.GetBranchHeadSHA(ctx, token, repo, base)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get head of base branch", goerr.V("base", base))
	}

	limit := x.clients.BranchRetryLimit()
	name := candidate
	for i := 0; ; i++ {
		if i > 0 {
			name = types.BranchName(fmt.Sprintf("%s-%d", candidate, i))
		}

		err := gh.CreateBranchRef(ctx, token, repo, name, sha)
		if err == nil {
			return name, nil
		}
		if !errors.Is(err, types.ErrBranchNameConflict) {
			return "", err
		}
		if i >= limit {
			return "", goerr.Wrap(types.ErrBranchNameExhausted, "no free branch name",
				goerr.V("repo", repo.String()),
				goerr.V("candidate", candidate),
				goerr.V("attempts", i+1),
			)
		}

		logging.From(ctx).Debug("branch name is taken",
			slog.String("repo", repo.String()),
			slog.String("branch", name.String()),
		)
	}
}

func branchSlug(name string) (string, error) {
	s := slug.Make(name)
	if s == "" {
		return "", goerr.Wrap(types.ErrValidationFailed, "name has no characters usable in a branch name",
			goerr.V("name", name))
	}
	return s, nil
}

// ensureBranches makes sure that both project and task have a branch and
// returns the task branch. Existing branch names are reused without any
// remote call. project and task are updated in place and saved together only
// when one of them got a new branch. When another job saved branch names
// first, the stored names win and project and task are reloaded.
func (x *UseCase) ensureBranches(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, cfg *model.ProjectConfig, project *model.Project, task *model.Task) (types.BranchName, error) {
	for i := 0; ; i++ {
		branch, err := x.assignBranches(ctx, token, repo, cfg, project, task)
		if err == nil {
			return branch, nil
		}
		if !errors.Is(err, repository.ErrAlreadyExists) || i+1 >= maxBranchSaveAttempts {
			return "", err
		}

		logging.From(ctx).Warn("Branch names were assigned by another job, reloading",
			slog.String("repo", repo.String()),
			slog.String("project_id", string(project.ID)),
			slog.String("task_id", string(task.ID)),
			slog.Any("error", err),
		)

		storedProject, err := x.clients.ProjectRepository().GetProject(ctx, project.ID)
		if err != nil {
			return "", goerr.Wrap(err, "failed to reload project", goerr.V("project_id", project.ID))
		}
		storedTask, err := x.clients.ProjectRepository().GetTask(ctx, task.ID)
		if err != nil {
			return "", goerr.Wrap(err, "failed to reload task", goerr.V("task_id", task.ID))
		}
		*project = *storedProject
		*task = *storedTask
	}
}

func (x *UseCase) assignBranches(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, cfg *model.ProjectConfig, project *model.Project, task *model.Task) (types.BranchName, error) {
	projectBranch := project.BranchName
	taskBranch := task.BranchName

	if projectBranch == "" {
		s, err := branchSlug(project.Name)
		if err != nil {
			return "", err
		}

		defaultBranch, err := x.clients.GitHub().GetDefaultBranch(ctx, token, repo)
		if err != nil {
			return "", err
		}

		candidate := types.BranchName(cfg.FeatureBranchPrefix + s)
		projectBranch, err = x.reserveBranch(ctx, token, repo, candidate, defaultBranch)
		if err != nil {
			return "", goerr.Wrap(err, "failed to create project branch", goerr.V("project_id", project.ID))
		}
	}

	if taskBranch == "" {
		s, err := branchSlug(task.Name)
		if err != nil {
			return "", err
		}

		candidate := types.BranchName(projectBranch.String() + taskBranchSeparator + s)
		taskBranch, err = x.reserveBranch(ctx, token, repo, candidate, projectBranch)
		if err != nil {
			return "", goerr.Wrap(err, "failed to create task branch", goerr.V("task_id", task.ID))
		}
	}

	if projectBranch == project.BranchName && taskBranch == task.BranchName {
		return taskBranch, nil
	}

	now := logging.CtxTime(ctx)
	newProject := *project
	newTask := *task
	if newProject.BranchName != projectBranch {
		newProject.BranchName = projectBranch
		newProject.UpdatedAt = now
	}
	if newTask.BranchName != taskBranch {
		newTask.BranchName = taskBranch
		newTask.UpdatedAt = now
	}

	if err := x.clients.ProjectRepository().SaveBranches(ctx, &newProject, &newTask); err != nil {
		return "", goerr.Wrap(err, "failed to save branch names",
			goerr.V("project_branch", projectBranch),
			goerr.V("task_branch", taskBranch),
		)
	}
	*project = newProject
	*task = newTask

	logging.From(ctx).Info("Branches are ready",
		slog.String("repo", repo.String()),
		slog.String("project_branch", projectBranch.String()),
		slog.String("task_branch", taskBranch.String()),
	)

	return taskBranch, nil
}

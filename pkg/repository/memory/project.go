package memory

import (
	"context"
	"sort"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/repository"
)

// User operations

func (r *Repository) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, exists := r.users[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "user not found", goerr.V("userID", id))
	}
	return copyUser(user), nil
}

func (r *Repository) PutUser(ctx context.Context, user *model.User) error {
	if user.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "user ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.ID] = copyUser(user)
	return nil
}

// Project operations

func (r *Repository) GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	project, exists := r.projects[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "project not found", goerr.V("projectID", id))
	}
	return copyProject(project), nil
}

func (r *Repository) PutProject(ctx context.Context, project *model.Project) error {
	if project.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "project ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.projects[project.ID] = copyProject(project)
	return nil
}

// Task operations

func (r *Repository) GetTask(ctx context.Context, id types.TaskID) (*model.Task, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	task, exists := r.tasks[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "task not found", goerr.V("taskID", id))
	}
	return copyTask(task), nil
}

func (r *Repository) PutTask(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "task ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.tasks[task.ID] = copyTask(task)
	return nil
}

func (r *Repository) SaveBranches(ctx context.Context, project *model.Project, task *model.Task) error {
	if project.ID == "" || task.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "project ID or task ID is empty",
			goerr.V("projectID", project.ID),
			goerr.V("taskID", task.ID),
		)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if stored, ok := r.projects[project.ID]; ok && stored.BranchName != "" && stored.BranchName != project.BranchName {
		return goerr.Wrap(repository.ErrAlreadyExists, "project already has a branch",
			goerr.V("projectID", project.ID),
			goerr.V("stored", stored.BranchName),
		)
	}
	if stored, ok := r.tasks[task.ID]; ok && stored.BranchName != "" && stored.BranchName != task.BranchName {
		return goerr.Wrap(repository.ErrAlreadyExists, "task already has a branch",
			goerr.V("taskID", task.ID),
			goerr.V("stored", stored.BranchName),
		)
	}

	r.projects[project.ID] = copyProject(project)
	r.tasks[task.ID] = copyTask(task)
	return nil
}

// Scratch org operations

func (r *Repository) GetScratchOrg(ctx context.Context, id types.ScratchOrgID) (*model.ScratchOrg, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	org, exists := r.scratchOrgs[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "scratch org not found", goerr.V("scratchOrgID", id))
	}
	return org.Copy(), nil
}

func (r *Repository) PutScratchOrg(ctx context.Context, org *model.ScratchOrg) error {
	if org.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "scratch org ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.scratchOrgs[org.ID] = org.Copy()
	return nil
}

func (r *Repository) DeleteScratchOrg(ctx context.Context, id types.ScratchOrgID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.scratchOrgs, id)
	return nil
}

func (r *Repository) ListScratchOrgsByTask(ctx context.Context, taskID types.TaskID) ([]*model.ScratchOrg, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var orgs []*model.ScratchOrg
	for _, org := range r.scratchOrgs {
		if org.TaskID == taskID {
			orgs = append(orgs, org.Copy())
		}
	}
	sort.Slice(orgs, func(i, j int) bool {
		return orgs[i].ID < orgs[j].ID
	})

	return orgs, nil
}

func copyUser(user *model.User) *model.User {
	if user == nil {
		return nil
	}
	cpy := *user
	cpy.DevHub = user.DevHub.Copy()
	return &cpy
}

func copyProject(project *model.Project) *model.Project {
	if project == nil {
		return nil
	}
	cpy := *project
	return &cpy
}

func copyTask(task *model.Task) *model.Task {
	if task == nil {
		return nil
	}
	cpy := *task
	return &cpy
}

package interfaces

import (
	"context"

	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

//go:generate moq -out ../mock/repository.go -pkg mock . ProjectRepository JobRepository

// ProjectRepository stores users, projects, tasks and scratch orgs. Get
// methods return an error wrapping repository.ErrNotFound when the record
// does not exist.
type ProjectRepository interface {
	GetUser(ctx context.Context, id types.UserID) (*model.User, error)
	PutUser(ctx context.Context, user *model.User) error

	GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error)
	PutProject(ctx context.Context, project *model.Project) error

	GetTask(ctx context.Context, id types.TaskID) (*model.Task, error)
	PutTask(ctx context.Context, task *model.Task) error

	// SaveBranches writes project and task in one atomic operation. It fails
	// with repository.ErrAlreadyExists instead of replacing a stored branch
	// name.
	SaveBranches(ctx context.Context, project *model.Project, task *model.Task) error

	GetScratchOrg(ctx context.Context, id types.ScratchOrgID) (*model.ScratchOrg, error)
	PutScratchOrg(ctx context.Context, org *model.ScratchOrg) error
	DeleteScratchOrg(ctx context.Context, id types.ScratchOrgID) error
	ListScratchOrgsByTask(ctx context.Context, taskID types.TaskID) ([]*model.ScratchOrg, error)
}

type JobRepository interface {
	PutJob(ctx context.Context, job *model.Job) error
	GetJob(ctx context.Context, id types.JobID) (*model.Job, error)
}

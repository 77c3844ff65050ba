package memory

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/repository"
)

func (r *Repository) PutJob(ctx context.Context, job *model.Job) error {
	if job.ID == "" {
		return goerr.Wrap(repository.ErrInvalidInput, "job ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cpy := *job
	r.jobs[job.ID] = &cpy
	return nil
}

func (r *Repository) GetJob(ctx context.Context, id types.JobID) (*model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	job, exists := r.jobs[id]
	if !exists {
		return nil, goerr.Wrap(repository.ErrNotFound, "job not found", goerr.V("jobID", id))
	}
	cpy := *job
	return &cpy, nil
}

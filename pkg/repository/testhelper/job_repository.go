package testhelper

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/repository"
)

// TestJobRepository tests the job status lifecycle of a JobRepository
func TestJobRepository(t *testing.T, repo interfaces.JobRepository) {
	ctx := context.Background()

	job := &model.Job{
		ID:        types.NewJobID(),
		Kind:      types.JobKindProvisionScratchOrg,
		Status:    types.JobStatusPending,
		CreatedAt: now(),
	}
	gt.NoError(t, repo.PutJob(ctx, job))

	retrieved, err := repo.GetJob(ctx, job.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Kind).Equal(types.JobKindProvisionScratchOrg)
	gt.V(t, retrieved.Status).Equal(types.JobStatusPending)

	job.Status = types.JobStatusFailed
	job.Error = "scratch org creation failed"
	job.FinishedAt = now()
	gt.NoError(t, repo.PutJob(ctx, job))

	retrieved, err = repo.GetJob(ctx, job.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Status).Equal(types.JobStatusFailed)
	gt.V(t, retrieved.Error).Equal("scratch org creation failed")
	gt.True(t, retrieved.FinishedAt.Equal(job.FinishedAt))

	_, err = repo.GetJob(ctx, types.NewJobID())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

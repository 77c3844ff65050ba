package firestore

import (
	"context"

	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

func (r *Repository) PutJob(ctx context.Context, job *model.Job) error {
	return setDoc(ctx, r, collectionJob, string(job.ID), job)
}

func (r *Repository) GetJob(ctx context.Context, id types.JobID) (*model.Job, error) {
	return getDoc[model.Job](ctx, r, collectionJob, string(id))
}

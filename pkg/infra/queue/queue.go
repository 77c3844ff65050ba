package queue

import (
	"context"
	"log/slog"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/errutil"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
	"golang.org/x/sync/semaphore"
)

const DefaultMaxConcurrency = 4

// Handler is one unit of work. It runs sequentially inside its own
// goroutine and is never cancelled once started.
type Handler func(ctx context.Context) error

// Queue runs each enqueued job in its own goroutine. At most maxConcurrency
// jobs are running at a time; the rest wait as pending.
type Queue struct {
	repo           interfaces.JobRepository
	maxConcurrency int64
	sem            *semaphore.Weighted
	wg             sync.WaitGroup
}

type Option func(*Queue)

func WithMaxConcurrency(n int64) Option {
	return func(x *Queue) {
		x.maxConcurrency = n
	}
}

func New(repo interfaces.JobRepository, options ...Option) (*Queue, error) {
	q := &Queue{
		repo:           repo,
		maxConcurrency: DefaultMaxConcurrency,
	}
	for _, opt := range options {
		opt(q)
	}

	if repo == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "job repository is required")
	}
	if q.maxConcurrency < 1 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "max concurrency must be positive",
			goerr.V("max_concurrency", q.maxConcurrency))
	}
	q.sem = semaphore.NewWeighted(q.maxConcurrency)

	return q, nil
}

// Enqueue records a pending job and starts it in the background. The job
// keeps running after ctx is cancelled; only the logger, request ID and time
// function of ctx are carried over.
func (x *Queue) Enqueue(ctx context.Context, kind types.JobKind, fn Handler) (*model.Job, error) {
	job := &model.Job{
		ID:        types.NewJobID(),
		Kind:      kind,
		Status:    types.JobStatusPending,
		CreatedAt: logging.CtxTime(ctx),
	}
	if err := x.repo.PutJob(ctx, job); err != nil {
		return nil, goerr.Wrap(err, "failed to save pending job", goerr.V("job_id", job.ID))
	}

	bgCtx := detach(ctx)
	queued := *job
	x.wg.Add(1)
	go func() {
		defer x.wg.Done()
		x.run(bgCtx, &queued, fn)
	}()

	return job, nil
}

// Wait blocks until all enqueued jobs have finished
func (x *Queue) Wait() {
	x.wg.Wait()
}

func (x *Queue) run(ctx context.Context, job *model.Job, fn Handler) {
	logger := logging.From(ctx).With(
		slog.String("job_id", string(job.ID)),
		slog.String("job_kind", string(job.Kind)),
	)
	ctx = logging.With(ctx, logger)

	if err := x.sem.Acquire(ctx, 1); err != nil {
		x.finish(ctx, job, goerr.Wrap(err, "failed to acquire worker slot"))
		return
	}
	defer x.sem.Release(1)

	job.Status = types.JobStatusRunning
	job.StartedAt = logging.CtxTime(ctx)
	x.save(ctx, job)
	logger.Info("Job started")

	x.finish(ctx, job, runHandler(ctx, fn))
}

func runHandler(ctx context.Context, fn Handler) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = goerr.New("job panicked", goerr.V("panic", r))
		}
	}()
	return fn(ctx)
}

func (x *Queue) finish(ctx context.Context, job *model.Job, err error) {
	job.FinishedAt = logging.CtxTime(ctx)
	if err != nil {
		job.Status = types.JobStatusFailed
		job.Error = err.Error()
		errutil.HandleError(ctx, "job failed", err)
	} else {
		job.Status = types.JobStatusSucceeded
		logging.From(ctx).Info("Job finished")
	}
	x.save(ctx, job)
}

func (x *Queue) save(ctx context.Context, job *model.Job) {
	saved := *job
	if err := x.repo.PutJob(ctx, &saved); err != nil {
		logging.From(ctx).Error("failed to save job status",
			slog.Any("error", err),
			slog.String("status", string(job.Status)),
		)
	}
}

func detach(ctx context.Context) context.Context {
	bgCtx := logging.With(context.Background(), logging.From(ctx))
	return logging.InheritContextValues(bgCtx, ctx)
}

package config

import (
	"log/slog"

	"github.com/m-mizutani/orgforge/pkg/infra"
	"github.com/m-mizutani/orgforge/pkg/infra/queue"
	"github.com/urfave/cli/v3"
)

type Worker struct {
	maxConcurrency   int64
	branchRetryLimit int64
}

func (x *Worker) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "max-concurrent-jobs",
			Usage:       "Maximum number of jobs running at the same time",
			Category:    "Worker",
			Destination: &x.maxConcurrency,
			Sources:     cli.EnvVars("ORGFORGE_MAX_CONCURRENT_JOBS"),
			Value:       queue.DefaultMaxConcurrency,
		},
		&cli.Int64Flag{
			Name:        "branch-retry-limit",
			Usage:       "Maximum number of suffixed branch names tried on a name conflict",
			Category:    "Worker",
			Destination: &x.branchRetryLimit,
			Sources:     cli.EnvVars("ORGFORGE_BRANCH_RETRY_LIMIT"),
			Value:       infra.DefaultBranchRetryLimit,
		},
	}
}

func (x *Worker) QueueOptions() []queue.Option {
	if x.maxConcurrency <= 0 {
		return nil
	}
	return []queue.Option{queue.WithMaxConcurrency(x.maxConcurrency)}
}

func (x *Worker) BranchRetryLimit() int {
	if x.branchRetryLimit <= 0 {
		return infra.DefaultBranchRetryLimit
	}
	return int(x.branchRetryLimit)
}

func (x Worker) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("MaxConcurrency", x.maxConcurrency),
		slog.Int64("BranchRetryLimit", x.branchRetryLimit),
	)
}

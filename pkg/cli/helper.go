package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/orgforge/pkg/cli/config"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/infra"
	"github.com/m-mizutani/orgforge/pkg/infra/cumulusci"
	"github.com/m-mizutani/orgforge/pkg/repository/memory"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
	"github.com/m-mizutani/orgforge/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

type repository interface {
	interfaces.ProjectRepository
	interfaces.JobRepository
}

// infraConfig is the set of external services shared by serve and run
type infraConfig struct {
	github     config.GitHub
	salesforce config.Salesforce
	firestore  config.Firestore
	bigQuery   config.BigQuery
	sentry     config.Sentry
	worker     config.Worker
}

func (x *infraConfig) Flags() []cli.Flag {
	return slice.Flatten(
		x.github.Flags(),
		x.salesforce.Flags(),
		x.firestore.Flags(),
		x.bigQuery.Flags(),
		x.sentry.Flags(),
		x.worker.Flags(),
	)
}

func (x *infraConfig) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("GitHub", x.github),
		slog.Any("Salesforce", x.salesforce),
		slog.Any("Firestore", &x.firestore),
		slog.Any("BigQuery", x.bigQuery),
		slog.Any("Sentry", &x.sentry),
		slog.Any("Worker", x.worker),
	)
}

// newRepository opens Firestore when configured. Otherwise an in-memory
// repository is returned unless persistent storage is required.
func (x *infraConfig) newRepository(ctx context.Context, persistent bool) (repository, func(), error) {
	if !x.firestore.Enabled() {
		if persistent {
			return nil, nil, goerr.New("Firestore is required (firestore-project-id must be set)")
		}
		logging.From(ctx).Warn("Firestore is not configured, records are kept in memory")
		return memory.New(), func() {}, nil
	}

	repo, err := x.firestore.NewRepository(ctx)
	if err != nil {
		return nil, nil, err
	}
	return repo, func() { safe.Close(ctx, repo) }, nil
}

func (x *infraConfig) newClients(ctx context.Context, repo repository, options ...infra.Option) (*infra.Clients, error) {
	if err := x.sentry.Configure(ctx); err != nil {
		return nil, err
	}

	gh, err := x.github.New()
	if err != nil {
		return nil, err
	}

	sf, err := x.salesforce.New()
	if err != nil {
		return nil, err
	}

	infraOptions := []infra.Option{
		infra.WithGitHub(gh),
		infra.WithGit(x.github.NewGit()),
		infra.WithOrgProvider(sf),
		infra.WithSalesforce(sf),
		infra.WithConfigLoader(cumulusci.New()),
		infra.WithProjectRepository(repo),
		infra.WithJobRepository(repo),
		infra.WithBranchRetryLimit(x.worker.BranchRetryLimit()),
	}

	if bqClient, err := x.bigQuery.NewClient(ctx); err != nil {
		return nil, err
	} else if bqClient != nil {
		infraOptions = append(infraOptions, infra.WithBigQuery(bqClient))
	}

	return infra.New(append(infraOptions, options...)...), nil
}

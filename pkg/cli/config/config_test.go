package config_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgforge/pkg/cli/config"
	"github.com/urfave/cli/v3"
)

func flagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, flag := range flags {
		names[flag.Names()[0]] = true
	}
	return names
}

func TestFlags(t *testing.T) {
	testCases := []struct {
		name  string
		flags []cli.Flag
		want  []string
	}{
		{
			name:  "GitHub",
			flags: (&config.GitHub{}).Flags(),
			want:  []string{"github-app-id", "github-app-private-key", "github-api-url", "git-workspace"},
		},
		{
			name:  "Salesforce",
			flags: (&config.Salesforce{}).Flags(),
			want:  []string{"sf-client-id", "sf-client-secret", "sf-callback-url", "sf-login-url", "sf-api-version", "sf-poll-interval", "sf-org-timeout"},
		},
		{
			name:  "Firestore",
			flags: (&config.Firestore{}).Flags(),
			want:  []string{"firestore-project-id", "firestore-database-id"},
		},
		{
			name:  "BigQuery",
			flags: (&config.BigQuery{}).Flags(),
			want:  []string{"bigquery-project-id", "bigquery-dataset-id", "bigquery-table-id", "bigquery-impersonate-service-account"},
		},
		{
			name:  "Worker",
			flags: (&config.Worker{}).Flags(),
			want:  []string{"max-concurrent-jobs", "branch-retry-limit"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gt.V(t, len(tc.flags)).Equal(len(tc.want))
			names := flagNames(tc.flags)
			for _, want := range tc.want {
				gt.True(t, names[want])
			}
		})
	}
}

func runWithFlags(t *testing.T, flags []cli.Flag, args ...string) {
	t.Helper()
	cmd := &cli.Command{
		Name:   "test",
		Flags:  flags,
		Action: func(ctx context.Context, c *cli.Command) error { return nil },
	}
	gt.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestWorkerDefaults(t *testing.T) {
	var worker config.Worker
	runWithFlags(t, worker.Flags())

	gt.V(t, worker.BranchRetryLimit()).Equal(100)
	gt.A(t, worker.QueueOptions()).Length(1)
}

func TestWorkerOverride(t *testing.T) {
	var worker config.Worker
	runWithFlags(t, worker.Flags(), "--branch-retry-limit", "5", "--max-concurrent-jobs", "2")

	gt.V(t, worker.BranchRetryLimit()).Equal(5)
}

func TestBigQueryDisabled(t *testing.T) {
	var bq config.BigQuery
	runWithFlags(t, bq.Flags(), "--bigquery-project-id", "my-project")

	gt.False(t, bq.Enabled())
	client, err := bq.NewClient(context.Background())
	gt.NoError(t, err)
	gt.True(t, client == nil)
}

func TestSalesforceNew(t *testing.T) {
	t.Run("client ID is required", func(t *testing.T) {
		var sf config.Salesforce
		_, err := sf.New()
		gt.Error(t, err)
	})

	t.Run("secret is not logged", func(t *testing.T) {
		var sf config.Salesforce
		runWithFlags(t, sf.Flags(), "--sf-client-id", "client-1", "--sf-client-secret", "very-secret-value")

		gt.R1(sf.New()).NoError(t)

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))
		logger.Info("config", slog.Any("sf", sf))
		gt.S(t, buf.String()).Contains("client-1")
		gt.S(t, buf.String()).NotContains("very-secret-value")
	})
}

func TestGitHubNew(t *testing.T) {
	t.Run("without app", func(t *testing.T) {
		var gh config.GitHub
		gt.R1(gh.New()).NoError(t)
	})

	t.Run("app ID without key", func(t *testing.T) {
		var gh config.GitHub
		runWithFlags(t, gh.Flags(), "--github-app-id", "1234")
		_, err := gh.New()
		gt.Error(t, err)
	})

	t.Run("invalid API URL", func(t *testing.T) {
		var gh config.GitHub
		runWithFlags(t, gh.Flags(), "--github-api-url", "://bad")
		_, err := gh.New()
		gt.Error(t, err)
	})
}

package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/infra/bq"
	"github.com/urfave/cli/v3"
	"google.golang.org/api/impersonate"
	"google.golang.org/api/option"
)

const defaultBigQueryTableID = "scratch_org_changes"

// BigQuery configures the export of scratch org change records. Export is
// disabled when project or dataset is not set.
type BigQuery struct {
	projectID              types.GoogleProjectID
	datasetID              types.BQDatasetID
	tableID                types.BQTableID
	impersonateServiceAcct string
}

func (x *BigQuery) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "bigquery-project-id",
			Usage:       "BigQuery project ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.projectID),
			Sources:     cli.EnvVars("ORGFORGE_BIGQUERY_PROJECT_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-dataset-id",
			Usage:       "BigQuery dataset ID",
			Category:    "BigQuery",
			Destination: (*string)(&x.datasetID),
			Sources:     cli.EnvVars("ORGFORGE_BIGQUERY_DATASET_ID"),
		},
		&cli.StringFlag{
			Name:        "bigquery-table-id",
			Usage:       "BigQuery table ID of change records",
			Category:    "BigQuery",
			Destination: (*string)(&x.tableID),
			Sources:     cli.EnvVars("ORGFORGE_BIGQUERY_TABLE_ID"),
			Value:       defaultBigQueryTableID,
		},
		&cli.StringFlag{
			Name:        "bigquery-impersonate-service-account",
			Usage:       "Service account to impersonate for BigQuery access",
			Category:    "BigQuery",
			Destination: &x.impersonateServiceAcct,
			Sources:     cli.EnvVars("ORGFORGE_BIGQUERY_IMPERSONATE_SERVICE_ACCOUNT"),
		},
	}
}

func (x *BigQuery) Enabled() bool {
	return x.projectID != "" && x.datasetID != ""
}

// NewClient returns nil without error when BigQuery is not configured
func (x *BigQuery) NewClient(ctx context.Context) (*bq.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}

	var options []option.ClientOption
	if x.impersonateServiceAcct != "" {
		ts, err := impersonate.CredentialsTokenSource(ctx, impersonate.CredentialsConfig{
			TargetPrincipal: x.impersonateServiceAcct,
			Scopes: []string{
				"https://www.googleapis.com/auth/bigquery",
				"https://www.googleapis.com/auth/cloud-platform",
			},
		})
		if err != nil {
			return nil, goerr.Wrap(err, "failed to create token source for impersonation",
				goerr.V("service_account", x.impersonateServiceAcct))
		}
		options = append(options, option.WithTokenSource(ts))
	}

	tableID := x.tableID
	if tableID == "" {
		tableID = defaultBigQueryTableID
	}

	return bq.New(ctx, x.projectID, x.datasetID, tableID, options...)
}

func (x BigQuery) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ProjectID", string(x.projectID)),
		slog.String("DatasetID", string(x.datasetID)),
		slog.String("TableID", string(x.tableID)),
		slog.String("ImpersonateServiceAccount", x.impersonateServiceAcct),
	)
}

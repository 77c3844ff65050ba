package usecase

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/m-mizutani/bqs"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

// exportChangeRecord inserts an audit row of changes into BigQuery. It does
// nothing when BigQuery is not configured.
func (x *UseCase) exportChangeRecord(ctx context.Context, org *model.ScratchOrg, event types.MessageType, changes model.DesiredChanges) error {
	if x.clients.BigQuery() == nil {
		return nil
	}

	reqID, _ := logging.CtxRequestID(ctx)
	record := model.NewChangeRecord(reqID, logging.CtxTime(ctx).UTC(), org, event, changes)

	schema, err := createOrUpdateBigQueryTable(ctx, x.clients.BigQuery(), record)
	if err != nil {
		return err
	}

	if err := x.clients.BigQuery().Insert(ctx, schema, record); err != nil {
		return goerr.Wrap(err, "failed to insert change record to BigQuery",
			goerr.V("scratch_org_id", org.ID),
		)
	}

	return nil
}

func createOrUpdateBigQueryTable(ctx context.Context, bq interfaces.BigQuery, record *model.ChangeRecord) (bigquery.Schema, error) {
	schema, err := bqs.Infer(record)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to infer change record schema")
	}

	metaData, err := bq.GetMetadata(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get BigQuery table metadata")
	}
	if metaData == nil {
		if err := bq.CreateTable(ctx, &bigquery.TableMetadata{
			Schema: schema,
		}); err != nil {
			return nil, goerr.Wrap(err, "failed to create BigQuery table")
		}

		return schema, nil
	}

	if bqs.Equal(metaData.Schema, schema) {
		return schema, nil
	}

	mergedSchema, err := bqs.Merge(metaData.Schema, schema)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to merge BigQuery schema")
	}
	if err := bq.UpdateTable(ctx, bigquery.TableMetadataToUpdate{
		Schema: mergedSchema,
	}, metaData.ETag); err != nil {
		return nil, goerr.Wrap(err, "failed to update BigQuery table")
	}

	return mergedSchema, nil
}

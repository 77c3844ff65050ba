package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/errutil"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

// snapshot refreshes the org access token and reads the current revision
// counter of every tracked component. org.Credential is replaced with the
// refreshed one.
func (x *UseCase) snapshot(ctx context.Context, org *model.ScratchOrg) (model.RevisionSnapshot, error) {
	sf := x.clients.Salesforce()

	cred, err := sf.RefreshAccessToken(ctx, org.Credential)
	if err != nil {
		return nil, err
	}
	org.Credential = cred

	records, err := sf.QueryRevisions(ctx, cred)
	if err != nil {
		return nil, err
	}

	return model.NewRevisionSnapshot(records), nil
}

// RefreshScratchOrgChanges compares the current revisions of the scratch org
// with the baseline and records the components that changed.
func (x *UseCase) RefreshScratchOrgChanges(ctx context.Context, input *model.RefreshScratchOrgChangesInput) (*model.ScratchOrg, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	org, err := x.clients.ProjectRepository().GetScratchOrg(ctx, input.ScratchOrgID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get scratch org", goerr.V("scratch_org_id", input.ScratchOrgID))
	}

	latest, err := x.snapshot(ctx, org)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to take revision snapshot", goerr.V("scratch_org_id", org.ID))
	}

	changes := model.ChangedComponents(org.LatestRevisions, latest)
	if changes.Count() != org.UnsavedChanges.Count() || changes.Subtract(org.UnsavedChanges).Count() > 0 {
		org.LastModifiedAt = logging.CtxTime(ctx)
	}
	org.HasChanges = model.CompareRevisions(org.LatestRevisions, latest)
	org.UnsavedChanges = changes

	if err := x.clients.ProjectRepository().PutScratchOrg(ctx, org); err != nil {
		return nil, goerr.Wrap(err, "failed to save scratch org", goerr.V("scratch_org_id", org.ID))
	}

	logging.From(ctx).Info("Refreshed scratch org changes",
		slog.String("scratch_org_id", string(org.ID)),
		slog.Bool("has_changes", org.HasChanges),
		slog.Int("changes", changes.Count()),
	)
	x.push(ctx, org.ID, model.NewScratchOrgMessage(types.MessageScratchOrgUpdated, org.Copy()))

	if org.HasChanges {
		if err := x.exportChangeRecord(ctx, org, types.MessageScratchOrgUpdated, changes); err != nil {
			errutil.HandleError(ctx, "failed to export change record", err)
		}
	}

	return org, nil
}

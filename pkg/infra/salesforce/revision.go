package salesforce

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

const sourceMemberQuery = "SELECT MemberName, MemberType, RevisionCounter FROM SourceMember WHERE IsNameObsolete = false"

// QueryRevisions implements interfaces.Salesforce. cred must carry a valid
// access token.
func (x *Client) QueryRevisions(ctx context.Context, cred *model.OrgCredential) ([]model.RevisionRecord, error) {
	records, err := query[model.RevisionRecord](ctx, x, cred, "/tooling/query", sourceMemberQuery)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query SourceMember", goerr.V("org_id", cred.OrgID))
	}

	logging.From(ctx).Debug("Queried SourceMember",
		slog.String("org_id", string(cred.OrgID)),
		slog.Int("count", len(records)),
	)

	return records, nil
}

package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/infra"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

type UseCase struct {
	clients *infra.Clients
}

var _ interfaces.UseCase = (*UseCase)(nil)

func New(clients *infra.Clients) *UseCase {
	return &UseCase{
		clients: clients,
	}
}

// push sends msg to clients watching the scratch org. Notification is best
// effort and a failure never changes the outcome of the operation.
func (x *UseCase) push(ctx context.Context, id types.ScratchOrgID, msg *model.Message) {
	if x.clients.Pusher() == nil {
		return
	}
	if err := x.clients.Pusher().PushMessage(ctx, id, msg); err != nil {
		logging.From(ctx).Warn("failed to push message",
			slog.Any("error", err),
			slog.String("scratch_org_id", string(id)),
			slog.String("type", string(msg.Type)),
		)
	}
}

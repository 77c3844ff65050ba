package pusher_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/infra/pusher"
)

func TestHub(t *testing.T) {
	ctx := context.Background()
	hub := pusher.New(pusher.WithBufferSize(1))

	ch1, cancel1 := hub.Subscribe("org-1")
	ch2, cancel2 := hub.Subscribe("org-2")
	defer cancel2()

	msg := &model.Message{Type: types.MessageScratchOrgProvisioned}

	t.Run("delivers only to subscribers of the org", func(t *testing.T) {
		gt.NoError(t, hub.PushMessage(ctx, "org-1", msg))
		got := <-ch1
		gt.V(t, got.Type).Equal(types.MessageScratchOrgProvisioned)

		select {
		case <-ch2:
			t.Error("org-2 subscriber should not receive org-1 messages")
		default:
		}
	})

	t.Run("full buffer does not block", func(t *testing.T) {
		gt.NoError(t, hub.PushMessage(ctx, "org-1", msg))
		gt.NoError(t, hub.PushMessage(ctx, "org-1", msg))
		<-ch1
	})

	t.Run("cancel closes channel and is idempotent", func(t *testing.T) {
		cancel1()
		cancel1()
		_, ok := <-ch1
		gt.False(t, ok)
		gt.NoError(t, hub.PushMessage(ctx, "org-1", msg))
	})

	t.Run("push without subscribers", func(t *testing.T) {
		gt.NoError(t, hub.PushMessage(ctx, "nobody", msg))
	})
}

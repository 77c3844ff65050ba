package pusher

import (
	"context"
	"log/slog"
	"sync"

	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

const defaultBufferSize = 16

// Hub delivers messages to in-process subscribers of a scratch org. Push
// never blocks; a subscriber whose buffer is full misses the message.
type Hub struct {
	mu         sync.RWMutex
	subs       map[types.ScratchOrgID]map[chan *model.Message]struct{}
	bufferSize int
}

var _ interfaces.Pusher = (*Hub)(nil)

type Option func(*Hub)

func WithBufferSize(n int) Option {
	return func(x *Hub) {
		x.bufferSize = n
	}
}

func New(options ...Option) *Hub {
	hub := &Hub{
		subs:       make(map[types.ScratchOrgID]map[chan *model.Message]struct{}),
		bufferSize: defaultBufferSize,
	}
	for _, opt := range options {
		opt(hub)
	}
	return hub
}

// Subscribe returns a channel receiving messages of the scratch org and a
// function to stop the subscription. The channel is closed by cancel.
func (x *Hub) Subscribe(id types.ScratchOrgID) (<-chan *model.Message, func()) {
	ch := make(chan *model.Message, x.bufferSize)

	x.mu.Lock()
	if _, ok := x.subs[id]; !ok {
		x.subs[id] = make(map[chan *model.Message]struct{})
	}
	x.subs[id][ch] = struct{}{}
	x.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			x.mu.Lock()
			delete(x.subs[id], ch)
			if len(x.subs[id]) == 0 {
				delete(x.subs, id)
			}
			x.mu.Unlock()
			close(ch)
		})
	}

	return ch, cancel
}

// PushMessage implements interfaces.Pusher.
func (x *Hub) PushMessage(ctx context.Context, id types.ScratchOrgID, msg *model.Message) error {
	x.mu.RLock()
	defer x.mu.RUnlock()

	logging.From(ctx).Info("Push message",
		slog.String("scratch_org_id", string(id)),
		slog.String("type", string(msg.Type)),
		slog.Int("subscribers", len(x.subs[id])),
	)

	for ch := range x.subs[id] {
		select {
		case ch <- msg:
		default:
			logging.From(ctx).Warn("Subscriber buffer is full, message dropped",
				slog.String("scratch_org_id", string(id)),
				slog.String("type", string(msg.Type)),
			)
		}
	}

	return nil
}

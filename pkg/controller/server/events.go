package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

// getEvents streams messages of a scratch org as server-sent events until
// the client disconnects.
func (x *Server) getEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := types.ScratchOrgID(chi.URLParam(r, "id"))
	logger := logging.From(ctx).With(slog.String("scratch_org_id", string(id)))

	ch, cancel := x.cfg.subscriber.Subscribe(id)
	defer cancel()

	rc := http.NewResponseController(w)
	// The stream outlives the server write timeout
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		logger.Debug("write deadline is not supported", slog.Any("error", err))
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	if err := rc.Flush(); err != nil {
		logger.Error("streaming is not supported", slog.Any("error", err))
		return
	}

	ticker := time.NewTicker(x.cfg.keepAlive)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case msg, ok := <-ch:
			if !ok {
				return
			}
			data, err := json.Marshal(msg)
			if err != nil {
				logger.Error("fail to marshal message", slog.Any("error", err))
				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Type, data); err != nil {
				logger.Warn("fail to write event", slog.Any("error", err))
				return
			}

		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": keepalive\n\n"); err != nil {
				return
			}
		}

		if err := rc.Flush(); err != nil {
			return
		}
	}
}

package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/infra/queue"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

const defaultKeepAliveInterval = 15 * time.Second

type Server struct {
	mux *chi.Mux
	uc  interfaces.UseCase
	cfg *config
}

// Enqueuer starts a job in the background and returns it as pending
type Enqueuer interface {
	Enqueue(ctx context.Context, kind types.JobKind, fn queue.Handler) (*model.Job, error)
}

// Subscriber streams the messages pushed for a scratch org
type Subscriber interface {
	Subscribe(id types.ScratchOrgID) (<-chan *model.Message, func())
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is JSON encoded by the server
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"internal server error"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type config struct {
	queue      Enqueuer
	jobRepo    interfaces.JobRepository
	subscriber Subscriber
	keepAlive  time.Duration
}

type Option func(*config)

// WithQueue enables the scratch org API. Every operation runs as a job of q.
func WithQueue(q Enqueuer) Option {
	return func(cfg *config) {
		cfg.queue = q
	}
}

// WithJobRepository enables GET /api/jobs/{id}
func WithJobRepository(repo interfaces.JobRepository) Option {
	return func(cfg *config) {
		cfg.jobRepo = repo
	}
}

// WithSubscriber enables the server-sent events stream of scratch orgs
func WithSubscriber(sub Subscriber) Option {
	return func(cfg *config) {
		cfg.subscriber = sub
	}
}

func WithKeepAliveInterval(d time.Duration) Option {
	return func(cfg *config) {
		cfg.keepAlive = d
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{
		keepAlive: defaultKeepAliveInterval,
	}
	for _, opt := range options {
		opt(cfg)
	}

	srv := &Server{
		uc:  uc,
		cfg: cfg,
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	if cfg.queue != nil {
		r.Post("/api/scratch-orgs", srv.postScratchOrg)
		r.Post("/api/scratch-orgs/{id}/commit", srv.postCommit)
		r.Post("/api/scratch-orgs/{id}/refresh", srv.postRefresh)
	}
	if cfg.subscriber != nil {
		r.Get("/api/scratch-orgs/{id}/events", srv.getEvents)
	}
	if cfg.jobRepo != nil {
		r.Get("/api/jobs/{id}", srv.getJob)
	}

	srv.mux = r
	return srv
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

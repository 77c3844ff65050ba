package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/repository"
	"github.com/m-mizutani/orgforge/pkg/utils/errutil"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

const maxRequestBodySize = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

type jobResponse struct {
	JobID        types.JobID        `json:"job_id"`
	ScratchOrgID types.ScratchOrgID `json:"scratch_org_id"`
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, types.ErrValidationFailed), errors.Is(err, repository.ErrInvalidInput):
		logging.From(ctx).Warn("bad request", slog.Any("error", err))
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})

	case errors.Is(err, repository.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})

	default:
		errutil.HandleError(ctx, "fail to handle request", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(types.ErrValidationFailed, "invalid request body", goerr.V("error", err.Error()))
	}
	return nil
}

// postScratchOrg provisions a scratch org for a task. With commit_ish the org
// is created at that commit without any branch.
func (x *Server) postScratchOrg(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input model.CreateScratchOrgInput
	if err := decodeBody(w, r, &input); err != nil {
		writeError(ctx, w, err)
		return
	}
	if input.ScratchOrgID == "" {
		input.ScratchOrgID = types.NewScratchOrgID()
	}

	kind := types.JobKindProvisionScratchOrg
	var fn func(ctx context.Context) error
	if input.CommitIsh != "" {
		if err := input.Validate(); err != nil {
			writeError(ctx, w, err)
			return
		}
		kind = types.JobKindCreateScratchOrg
		fn = func(ctx context.Context) error {
			_, err := x.uc.CreateScratchOrg(ctx, &input)
			return err
		}
	} else {
		provision := input.ProvisionScratchOrgInput
		if err := provision.Validate(); err != nil {
			writeError(ctx, w, err)
			return
		}
		fn = func(ctx context.Context) error {
			_, err := x.uc.ProvisionScratchOrg(ctx, &provision)
			return err
		}
	}

	job, err := x.cfg.queue.Enqueue(ctx, kind, fn)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, jobResponse{JobID: job.ID, ScratchOrgID: input.ScratchOrgID})
}

func (x *Server) postCommit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var input model.CommitChangesInput
	if err := decodeBody(w, r, &input); err != nil {
		writeError(ctx, w, err)
		return
	}
	input.ScratchOrgID = types.ScratchOrgID(chi.URLParam(r, "id"))
	if err := input.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}

	job, err := x.cfg.queue.Enqueue(ctx, types.JobKindCommitChanges, func(ctx context.Context) error {
		_, err := x.uc.CommitChanges(ctx, &input)
		return err
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, jobResponse{JobID: job.ID, ScratchOrgID: input.ScratchOrgID})
}

func (x *Server) postRefresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	input := model.RefreshScratchOrgChangesInput{
		ScratchOrgID: types.ScratchOrgID(chi.URLParam(r, "id")),
	}
	if err := input.Validate(); err != nil {
		writeError(ctx, w, err)
		return
	}

	job, err := x.cfg.queue.Enqueue(ctx, types.JobKindRefreshChanges, func(ctx context.Context) error {
		_, err := x.uc.RefreshScratchOrgChanges(ctx, &input)
		return err
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, jobResponse{JobID: job.ID, ScratchOrgID: input.ScratchOrgID})
}

func (x *Server) getJob(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	job, err := x.cfg.jobRepo.GetJob(ctx, types.JobID(chi.URLParam(r, "id")))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, job)
}

package model

import (
	"time"

	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

// Message is a notification pushed to clients watching a scratch org
type Message struct {
	Type    types.MessageType `json:"type"`
	Payload any               `json:"payload"`
}

type ProvisionFailedPayload struct {
	Message string      `json:"message"`
	Model   *ScratchOrg `json:"model"`
}

func NewProvisionFailedMessage(err error, org *ScratchOrg) *Message {
	return &Message{
		Type: types.MessageScratchOrgProvisionFailed,
		Payload: &ProvisionFailedPayload{
			Message: err.Error(),
			Model:   org,
		},
	}
}

func NewScratchOrgMessage(msgType types.MessageType, org *ScratchOrg) *Message {
	return &Message{
		Type:    msgType,
		Payload: org,
	}
}

// Job is a unit of work executed by the queue
type Job struct {
	ID         types.JobID     `json:"id" firestore:"id"`
	Kind       types.JobKind   `json:"kind" firestore:"kind"`
	Status     types.JobStatus `json:"status" firestore:"status"`
	Error      string          `json:"error,omitempty" firestore:"error"`
	CreatedAt  time.Time       `json:"created_at" firestore:"created_at"`
	StartedAt  time.Time       `json:"started_at,omitempty" firestore:"started_at"`
	FinishedAt time.Time       `json:"finished_at,omitempty" firestore:"finished_at"`
}

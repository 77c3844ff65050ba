package types

import (
	"github.com/google/uuid"
)

type (
	UserID       string
	ProjectID    string
	TaskID       string
	ScratchOrgID string
	JobID        string
	RequestID    string

	GoogleProjectID string
	BQDatasetID     string
	BQTableID       string
)

func NewRequestID() RequestID {
	return RequestID(uuid.NewString())
}

func NewScratchOrgID() ScratchOrgID {
	return ScratchOrgID(uuid.NewString())
}

func NewJobID() JobID {
	return JobID(uuid.NewString())
}

func (x GoogleProjectID) String() string { return string(x) }
func (x BQDatasetID) String() string     { return string(x) }
func (x BQTableID) String() string       { return string(x) }

type JobKind string

const (
	JobKindProvisionScratchOrg JobKind = "provision_scratch_org"
	JobKindCreateScratchOrg    JobKind = "create_scratch_org"
	JobKindCommitChanges       JobKind = "commit_changes"
	JobKindRefreshChanges      JobKind = "refresh_changes"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusSucceeded JobStatus = "succeeded"
	JobStatusFailed    JobStatus = "failed"
)

// Done reports whether the status is terminal
func (x JobStatus) Done() bool {
	return x == JobStatusSucceeded || x == JobStatusFailed
}

type MessageType string

const (
	MessageScratchOrgProvisioned     MessageType = "SCRATCH_ORG_PROVISIONED"
	MessageScratchOrgProvisionFailed MessageType = "SCRATCH_ORG_PROVISION_FAILED"
	MessageScratchOrgUpdated         MessageType = "SCRATCH_ORG_UPDATED"
	MessageScratchOrgCommitted       MessageType = "SCRATCH_ORG_COMMITTED"
)

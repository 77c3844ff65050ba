package model

import (
	"time"

	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

// ChangeComponent is one changed metadata component in a ChangeRecord
type ChangeComponent struct {
	Type string `bigquery:"type" json:"type"`
	Name string `bigquery:"name" json:"name"`
}

// ChangeRecord is an audit row describing changes detected in a scratch org
type ChangeRecord struct {
	ID           types.RequestID      `bigquery:"id" json:"id"`
	Timestamp    time.Time            `bigquery:"timestamp" json:"timestamp"`
	ScratchOrgID types.ScratchOrgID   `bigquery:"scratch_org_id" json:"scratch_org_id"`
	TaskID       types.TaskID         `bigquery:"task_id" json:"task_id"`
	OwnerID      types.UserID         `bigquery:"owner_id" json:"owner_id"`
	OrgType      types.ScratchOrgType `bigquery:"org_type" json:"org_type"`
	Event        types.MessageType    `bigquery:"event" json:"event"`
	Commit       types.CommitSHA      `bigquery:"commit" json:"commit"`
	Components   []ChangeComponent    `bigquery:"components" json:"components"`
}

func NewChangeRecord(id types.RequestID, ts time.Time, org *ScratchOrg, event types.MessageType, changes DesiredChanges) *ChangeRecord {
	rec := &ChangeRecord{
		ID:           id,
		Timestamp:    ts,
		ScratchOrgID: org.ID,
		TaskID:       org.TaskID,
		OwnerID:      org.OwnerID,
		OrgType:      org.OrgType,
		Event:        event,
		Commit:       org.LatestCommit,
		Components:   []ChangeComponent{},
	}
	for _, t := range changes.Types() {
		for _, name := range changes[t] {
			rec.Components = append(rec.Components, ChangeComponent{Type: t, Name: name})
		}
	}
	return rec
}

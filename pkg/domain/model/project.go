package model

import (
	"time"

	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

type User struct {
	ID          types.UserID      `json:"id" firestore:"id"`
	Login       string            `json:"login" firestore:"login"`
	Email       string            `json:"email" firestore:"email"`
	GitHubToken types.GitHubToken `json:"-" firestore:"github_token" masq:"secret"`

	// DevHub is the credential of the Dev Hub org that owns scratch orgs
	// created on behalf of this user.
	DevHub *OrgCredential `json:"-" firestore:"dev_hub"`
}

type Project struct {
	ID         types.ProjectID  `json:"id" firestore:"id"`
	Name       string           `json:"name" firestore:"name"`
	RepoURL    string           `json:"repo_url" firestore:"repo_url"`
	BranchName types.BranchName `json:"branch_name" firestore:"branch_name"`
	CreatedAt  time.Time        `json:"created_at" firestore:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" firestore:"updated_at"`
}

type Task struct {
	ID         types.TaskID     `json:"id" firestore:"id"`
	ProjectID  types.ProjectID  `json:"project_id" firestore:"project_id"`
	Name       string           `json:"name" firestore:"name"`
	BranchName types.BranchName `json:"branch_name" firestore:"branch_name"`
	CreatedAt  time.Time        `json:"created_at" firestore:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at" firestore:"updated_at"`
}

// OrgCredential holds OAuth tokens of a Salesforce org
type OrgCredential struct {
	OrgID        types.SalesforceOrgID `json:"org_id" firestore:"org_id"`
	Username     string                `json:"username" firestore:"username"`
	InstanceURL  string                `json:"instance_url" firestore:"instance_url"`
	LoginURL     string                `json:"login_url" firestore:"login_url"`
	AccessToken  types.SalesforceToken `json:"-" firestore:"access_token" masq:"secret"`
	RefreshToken types.SalesforceToken `json:"-" firestore:"refresh_token" masq:"secret"`
}

func (x *OrgCredential) Copy() *OrgCredential {
	if x == nil {
		return nil
	}
	c := *x
	return &c
}

type ScratchOrg struct {
	ID      types.ScratchOrgID   `json:"id" firestore:"id"`
	TaskID  types.TaskID         `json:"task" firestore:"task_id"`
	OwnerID types.UserID         `json:"owner" firestore:"owner_id"`
	OrgType types.ScratchOrgType `json:"org_type" firestore:"org_type"`

	URL             string                `json:"url" firestore:"url"`
	SFOrgID         types.SalesforceOrgID `json:"sf_org_id" firestore:"sf_org_id"`
	LatestCommit    types.CommitSHA       `json:"latest_commit" firestore:"latest_commit"`
	LatestCommitURL string                `json:"latest_commit_url" firestore:"latest_commit_url"`
	LatestCommitAt  time.Time             `json:"latest_commit_at" firestore:"latest_commit_at"`
	ExpiresAt       time.Time             `json:"expires_at" firestore:"expires_at"`
	LastModifiedAt  time.Time             `json:"last_modified_at" firestore:"last_modified_at"`

	HasChanges      bool             `json:"has_changes" firestore:"has_changes"`
	LatestRevisions RevisionSnapshot `json:"-" firestore:"latest_revisions"`
	UnsavedChanges  DesiredChanges   `json:"unsaved_changes" firestore:"unsaved_changes"`

	Credential *OrgCredential `json:"-" firestore:"credential"`
}

// Copy returns a deep copy so that callers can mutate the result freely
func (x *ScratchOrg) Copy() *ScratchOrg {
	if x == nil {
		return nil
	}
	c := *x
	c.LatestRevisions = x.LatestRevisions.Copy()
	c.UnsavedChanges = x.UnsavedChanges.Copy()
	c.Credential = x.Credential.Copy()
	return &c
}

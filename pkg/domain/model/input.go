package model

import (
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

const DefaultTargetDirectory = "src"

type ProvisionScratchOrgInput struct {
	ScratchOrgID types.ScratchOrgID   `json:"scratch_org_id"`
	UserID       types.UserID         `json:"user_id"`
	TaskID       types.TaskID         `json:"task_id"`
	OrgType      types.ScratchOrgType `json:"org_type"`
}

func (x *ProvisionScratchOrgInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.TaskID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "task ID is empty")
	}
	if !x.OrgType.Valid() {
		return goerr.Wrap(types.ErrValidationFailed, "invalid org type", goerr.V("org_type", x.OrgType))
	}
	return nil
}

// CreateScratchOrgInput creates a scratch org at an existing commit-ish
// without creating any branch
type CreateScratchOrgInput struct {
	ProvisionScratchOrgInput
	CommitIsh string `json:"commit_ish"`
}

func (x *CreateScratchOrgInput) Validate() error {
	if err := x.ProvisionScratchOrgInput.Validate(); err != nil {
		return err
	}
	if x.CommitIsh == "" {
		return goerr.Wrap(types.ErrValidationFailed, "commit-ish is empty")
	}
	return nil
}

type CommitChangesInput struct {
	UserID          types.UserID       `json:"user_id"`
	ScratchOrgID    types.ScratchOrgID `json:"scratch_org_id"`
	Branch          types.BranchName   `json:"branch"`
	Message         string             `json:"message"`
	Changes         DesiredChanges     `json:"changes"`
	TargetDirectory string             `json:"target_directory"`
}

func (x *CommitChangesInput) Validate() error {
	if x.UserID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "user ID is empty")
	}
	if x.ScratchOrgID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "scratch org ID is empty")
	}
	if strings.TrimSpace(x.Message) == "" {
		return goerr.Wrap(types.ErrValidationFailed, "commit message is empty")
	}
	if x.TargetDirectory != "" {
		clean := filepath.Clean(x.TargetDirectory)
		if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, "../") {
			return goerr.Wrap(types.ErrValidationFailed, "target directory must be inside the repository",
				goerr.V("target_directory", x.TargetDirectory))
		}
	}
	return nil
}

// Target returns the target directory, defaulting to "src"
func (x *CommitChangesInput) Target() string {
	if x.TargetDirectory == "" {
		return DefaultTargetDirectory
	}
	return filepath.Clean(x.TargetDirectory)
}

type RefreshScratchOrgChangesInput struct {
	ScratchOrgID types.ScratchOrgID `json:"scratch_org_id"`
}

func (x *RefreshScratchOrgChangesInput) Validate() error {
	if x.ScratchOrgID == "" {
		return goerr.Wrap(types.ErrValidationFailed, "scratch org ID is empty")
	}
	return nil
}

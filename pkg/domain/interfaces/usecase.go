package interfaces

//go:generate moq -out ../mock/usecase.go -pkg mock . UseCase

import (
	"context"

	"github.com/m-mizutani/orgforge/pkg/domain/model"
)

type UseCase interface {
	ProvisionScratchOrg(ctx context.Context, input *model.ProvisionScratchOrgInput) (*model.ScratchOrg, error)
	CreateScratchOrg(ctx context.Context, input *model.CreateScratchOrgInput) (*model.ScratchOrg, error)
	CommitChanges(ctx context.Context, input *model.CommitChangesInput) (*model.Commit, error)
	RefreshScratchOrgChanges(ctx context.Context, input *model.RefreshScratchOrgChangesInput) (*model.ScratchOrg, error)
}

package usecase

// Export unexported functions for testing
var (
	EnsureBranchesForTest              = (*UseCase).ensureBranches
	ReserveBranchForTest               = (*UseCase).reserveBranch
	RunRetrieveTaskForTest             = (*UseCase).runRetrieveTask
	CreateOrUpdateBigQueryTableForTest = createOrUpdateBigQueryTable
)

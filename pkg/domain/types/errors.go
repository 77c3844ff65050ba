package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	ErrInvalidGitHubData   = goerr.New("invalid GitHub data")
	ErrNoGitHubToken       = goerr.New("no GitHub token available")
	ErrBranchNameConflict  = goerr.New("branch name already exists")
	ErrBranchNameExhausted = goerr.New("no free branch name found")

	ErrInvalidSalesforceData    = goerr.New("invalid Salesforce data")
	ErrTokenRefreshFailed       = goerr.New("failed to refresh access token")
	ErrScratchOrgCreationFailed = goerr.New("scratch org creation failed")
	ErrScratchOrgTimeout        = goerr.New("timed out waiting for scratch org")
	ErrRetrieveFailed           = goerr.New("metadata retrieve failed")
)

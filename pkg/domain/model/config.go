package model

import (
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

const (
	DefaultFeatureBranchPrefix = "feature/"
	DefaultOrgConfigFile       = "orgs/dev.json"
	DefaultOrgDays             = 7
)

// ProjectConfig is the subset of cumulusci.yml used for provisioning
type ProjectConfig struct {
	FeatureBranchPrefix string
	APIVersion          string
	PackageName         string
	Orgs                map[types.ScratchOrgType]OrgSpec
}

// OrgSpec is a scratch org entry of the project configuration
type OrgSpec struct {
	ConfigFile string
	Days       int
}

// OrgSpec returns the configured scratch org spec for orgType, falling back
// to the defaults.
func (x *ProjectConfig) OrgSpec(orgType types.ScratchOrgType) OrgSpec {
	spec := OrgSpec{ConfigFile: DefaultOrgConfigFile, Days: DefaultOrgDays}
	if x == nil {
		return spec
	}
	if s, ok := x.Orgs[orgType]; ok {
		if s.ConfigFile != "" {
			spec.ConfigFile = s.ConfigFile
		}
		if s.Days > 0 {
			spec.Days = s.Days
		}
	}
	return spec
}

// ScratchOrgDefinition is the content of a scratch org definition file
type ScratchOrgDefinition struct {
	OrgName       string         `json:"orgName,omitempty"`
	Edition       string         `json:"edition"`
	Description   string         `json:"description,omitempty"`
	Features      []string       `json:"features,omitempty"`
	Namespace     string         `json:"namespace,omitempty"`
	HasSampleData bool           `json:"hasSampleData,omitempty"`
	Settings      map[string]any `json:"settings,omitempty"`
}

func (x *ScratchOrgDefinition) Validate() error {
	if x.Edition == "" {
		return goerr.Wrap(types.ErrInvalidSalesforceData, "scratch org definition has no edition")
	}
	return nil
}

// ScratchOrgResult is what the org lifecycle provider returns after creation
type ScratchOrgResult struct {
	SFOrgID    types.SalesforceOrgID
	URL        string
	ExpiresAt  time.Time
	Credential *OrgCredential
}

package types

import "log/slog"

type (
	SalesforceClientID     string
	SalesforceClientSecret string
	SalesforceToken        string
	SalesforceOrgID        string
	ScratchOrgType         string
)

const (
	ScratchOrgTypeDev ScratchOrgType = "Dev"
	ScratchOrgTypeQA  ScratchOrgType = "QA"
)

// Valid reports whether x is one of the known scratch org types
func (x ScratchOrgType) Valid() bool {
	switch x {
	case ScratchOrgTypeDev, ScratchOrgTypeQA:
		return true
	}
	return false
}

func (x SalesforceClientSecret) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SalesforceClientSecret) String() string {
	return "***********"
}

func (x SalesforceToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x SalesforceToken) String() string {
	return "***********"
}

package salesforce

import (
	"context"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
)

type scratchOrgInfoRequest struct {
	ConnectedAppConsumerKey string `json:"ConnectedAppConsumerKey"`
	ConnectedAppCallbackURL string `json:"ConnectedAppCallbackUrl,omitempty"`
	Edition                 string `json:"Edition"`
	OrgName                 string `json:"OrgName,omitempty"`
	Description             string `json:"Description,omitempty"`
	Features                string `json:"Features,omitempty"`
	Namespace               string `json:"Namespace,omitempty"`
	HasSampleData           bool   `json:"HasSampleData"`
	DurationDays            int    `json:"DurationDays"`
}

type createResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

type scratchOrgInfo struct {
	ID             string `json:"Id"`
	Status         string `json:"Status"`
	ErrorCode      string `json:"ErrorCode"`
	ScratchOrg     string `json:"ScratchOrg"`
	SignupUsername string `json:"SignupUsername"`
	LoginURL       string `json:"LoginUrl"`
	AuthCode       string `json:"AuthCode"`
	ExpirationDate string `json:"ExpirationDate"`
}

const scratchOrgInfoFields = "Id,Status,ErrorCode,ScratchOrg,SignupUsername,LoginUrl,AuthCode,ExpirationDate"

const discardTimeout = 30 * time.Second

var ptnOrgID = regexp.MustCompile(`^[A-Za-z0-9]{15}([A-Za-z0-9]{3})?$`)

// CreateScratchOrg implements interfaces.OrgProvider. It requests a scratch
// org through the Dev Hub, waits until it becomes active and exchanges its
// auth code for tokens.
func (x *Client) CreateScratchOrg(ctx context.Context, input *interfaces.CreateScratchOrgInput) (*model.ScratchOrgResult, error) {
	if input.Definition == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "scratch org definition is nil")
	}
	if err := input.Definition.Validate(); err != nil {
		return nil, err
	}

	devHub, err := x.RefreshAccessToken(ctx, input.DevHub)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate Dev Hub")
	}

	req := &scratchOrgInfoRequest{
		ConnectedAppConsumerKey: string(x.clientID),
		ConnectedAppCallbackURL: x.callbackURL,
		Edition:                 input.Definition.Edition,
		OrgName:                 input.Definition.OrgName,
		Description:             input.Definition.Description,
		Features:                strings.Join(input.Definition.Features, ";"),
		Namespace:               input.Definition.Namespace,
		HasSampleData:           input.Definition.HasSampleData,
		DurationDays:            input.Days,
	}

	var created createResponse
	if err := x.doJSON(ctx, devHub, http.MethodPost, x.dataURL(devHub, "/sobjects/ScratchOrgInfo"), req, &created); err != nil {
		return nil, goerr.Wrap(types.ErrScratchOrgCreationFailed, "failed to insert ScratchOrgInfo", goerr.V("cause", err.Error()))
	}
	if !created.Success || created.ID == "" {
		return nil, goerr.Wrap(types.ErrScratchOrgCreationFailed, "ScratchOrgInfo was not created")
	}

	logging.From(ctx).Info("Requested scratch org",
		slog.String("scratch_org_info_id", created.ID),
		slog.String("edition", req.Edition),
		slog.Int("days", req.DurationDays),
	)

	result, err := x.activateScratchOrg(ctx, devHub, created.ID)
	if err != nil {
		x.discardScratchOrgInfo(ctx, devHub, created.ID)
		return nil, err
	}

	return result, nil
}

// activateScratchOrg waits for the requested org and authenticates to it
func (x *Client) activateScratchOrg(ctx context.Context, devHub *model.OrgCredential, infoID string) (*model.ScratchOrgResult, error) {
	info, err := x.waitScratchOrg(ctx, devHub, infoID)
	if err != nil {
		return nil, err
	}

	token, err := x.exchangeAuthCode(ctx, info.LoginURL, info.AuthCode)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to authenticate scratch org",
			goerr.V("sf_org_id", info.ScratchOrg))
	}

	cred := applyToken(&model.OrgCredential{
		OrgID:    types.SalesforceOrgID(info.ScratchOrg),
		Username: info.SignupUsername,
		LoginURL: info.LoginURL,
	}, token)

	result := &model.ScratchOrgResult{
		SFOrgID:    types.SalesforceOrgID(info.ScratchOrg),
		URL:        cred.InstanceURL,
		Credential: cred,
	}
	if info.ExpirationDate != "" {
		expiresAt, err := time.Parse("2006-01-02", info.ExpirationDate)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidSalesforceData, "invalid ExpirationDate",
				goerr.V("value", info.ExpirationDate))
		}
		result.ExpiresAt = expiresAt
	}

	return result, nil
}

// discardScratchOrgInfo deletes the ScratchOrgInfo of a request that was not
// handed to the caller, which also removes its scratch org. Failure is only
// logged.
func (x *Client) discardScratchOrgInfo(ctx context.Context, devHub *model.OrgCredential, infoID string) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), discardTimeout)
	defer cancel()

	logger := logging.From(ctx).With(slog.String("scratch_org_info_id", infoID))
	if err := x.doJSON(ctx, devHub, http.MethodDelete, x.dataURL(devHub, "/sobjects/ScratchOrgInfo/"+infoID), nil, nil); err != nil {
		logger.Error("failed to delete ScratchOrgInfo of failed request", slog.Any("error", err))
		return
	}
	logger.Info("Deleted ScratchOrgInfo of failed request")
}

func (x *Client) waitScratchOrg(ctx context.Context, devHub *model.OrgCredential, infoID string) (*scratchOrgInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, x.orgTimeout)
	defer cancel()

	u := x.dataURL(devHub, "/sobjects/ScratchOrgInfo/"+infoID) + "?fields=" + scratchOrgInfoFields
	ticker := time.NewTicker(x.pollInterval)
	defer ticker.Stop()

	for {
		var info scratchOrgInfo
		if err := x.doJSON(ctx, devHub, http.MethodGet, u, nil, &info); err != nil {
			if ctx.Err() != nil {
				return nil, goerr.Wrap(types.ErrScratchOrgTimeout, "scratch org did not become active",
					goerr.V("scratch_org_info_id", infoID), goerr.V("timeout", x.orgTimeout))
			}
			return nil, goerr.Wrap(err, "failed to get ScratchOrgInfo", goerr.V("scratch_org_info_id", infoID))
		}

		switch info.Status {
		case "Active":
			if info.AuthCode == "" || info.LoginURL == "" {
				return nil, goerr.Wrap(types.ErrInvalidSalesforceData, "active scratch org has no auth code",
					goerr.V("scratch_org_info_id", infoID))
			}
			return &info, nil
		case "Error":
			return nil, goerr.Wrap(types.ErrScratchOrgCreationFailed, "scratch org creation failed",
				goerr.V("scratch_org_info_id", infoID),
				goerr.V("error_code", info.ErrorCode),
			)
		}

		logging.From(ctx).Debug("Waiting for scratch org",
			slog.String("scratch_org_info_id", infoID),
			slog.String("status", info.Status),
		)

		select {
		case <-ctx.Done():
			return nil, goerr.Wrap(types.ErrScratchOrgTimeout, "scratch org did not become active",
				goerr.V("scratch_org_info_id", infoID), goerr.V("timeout", x.orgTimeout))
		case <-ticker.C:
		}
	}
}

type activeScratchOrg struct {
	ID string `json:"Id"`
}

// DeleteScratchOrg implements interfaces.OrgProvider. Deleting an org that
// is already gone is not an error.
func (x *Client) DeleteScratchOrg(ctx context.Context, devHub *model.OrgCredential, orgID types.SalesforceOrgID) error {
	if !ptnOrgID.MatchString(string(orgID)) {
		return goerr.Wrap(types.ErrValidationFailed, "invalid org ID", goerr.V("sf_org_id", orgID))
	}

	devHub, err := x.RefreshAccessToken(ctx, devHub)
	if err != nil {
		return goerr.Wrap(err, "failed to authenticate Dev Hub")
	}

	soql := "SELECT Id FROM ActiveScratchOrg WHERE ScratchOrg = '" + string(orgID)[:15] + "'"
	orgs, err := query[activeScratchOrg](ctx, x, devHub, "/query", soql)
	if err != nil {
		return goerr.Wrap(err, "failed to look up ActiveScratchOrg", goerr.V("sf_org_id", orgID))
	}

	for _, org := range orgs {
		if err := x.doJSON(ctx, devHub, http.MethodDelete, x.dataURL(devHub, "/sobjects/ActiveScratchOrg/"+org.ID), nil, nil); err != nil {
			return goerr.Wrap(err, "failed to delete ActiveScratchOrg", goerr.V("sf_org_id", orgID))
		}
	}

	logging.From(ctx).Info("Deleted scratch org",
		slog.String("sf_org_id", string(orgID)),
		slog.Int("active_records", len(orgs)),
	)

	return nil
}

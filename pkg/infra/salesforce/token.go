package salesforce

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
	"golang.org/x/oauth2"
)

func (x *Client) oauthConfig(loginURL string) *oauth2.Config {
	if loginURL == "" {
		loginURL = x.loginURL
	}
	loginURL = strings.TrimSuffix(loginURL, "/")

	return &oauth2.Config{
		ClientID:     string(x.clientID),
		ClientSecret: string(x.clientSecret),
		RedirectURL:  x.callbackURL,
		Endpoint: oauth2.Endpoint{
			AuthURL:   loginURL + "/services/oauth2/authorize",
			TokenURL:  loginURL + "/services/oauth2/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
}

func (x *Client) oauthContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, x.baseHTTPClient())
}

func applyToken(cred *model.OrgCredential, token *oauth2.Token) *model.OrgCredential {
	updated := cred.Copy()
	updated.AccessToken = types.SalesforceToken(token.AccessToken)
	if token.RefreshToken != "" {
		updated.RefreshToken = types.SalesforceToken(token.RefreshToken)
	}
	if v, ok := token.Extra("instance_url").(string); ok && v != "" {
		updated.InstanceURL = v
	}
	return updated
}

// RefreshAccessToken implements interfaces.Salesforce. A failure is fatal
// for the calling unit of work and is not retried.
func (x *Client) RefreshAccessToken(ctx context.Context, cred *model.OrgCredential) (*model.OrgCredential, error) {
	if cred == nil || cred.RefreshToken == "" {
		return nil, goerr.Wrap(types.ErrTokenRefreshFailed, "no refresh token")
	}

	src := x.oauthConfig(cred.LoginURL).TokenSource(x.oauthContext(ctx), &oauth2.Token{
		RefreshToken: string(cred.RefreshToken),
	})
	token, err := src.Token()
	if err != nil {
		return nil, goerr.Wrap(types.ErrTokenRefreshFailed, "failed to refresh Salesforce token",
			goerr.V("org_id", cred.OrgID),
			goerr.V("cause", err.Error()),
		)
	}

	updated := applyToken(cred, token)
	if updated.InstanceURL == "" {
		return nil, goerr.Wrap(types.ErrTokenRefreshFailed, "token response has no instance URL", goerr.V("org_id", cred.OrgID))
	}

	logging.From(ctx).Debug("Refreshed Salesforce access token",
		slog.String("org_id", string(cred.OrgID)),
		slog.String("instance_url", updated.InstanceURL),
	)

	return updated, nil
}

// exchangeAuthCode turns the auth code of a new scratch org into tokens
func (x *Client) exchangeAuthCode(ctx context.Context, loginURL, code string) (*oauth2.Token, error) {
	token, err := x.oauthConfig(loginURL).Exchange(x.oauthContext(ctx), code)
	if err != nil {
		return nil, goerr.Wrap(types.ErrScratchOrgCreationFailed, "failed to exchange auth code",
			goerr.V("login_url", loginURL),
			goerr.V("cause", err.Error()),
		)
	}
	return token, nil
}

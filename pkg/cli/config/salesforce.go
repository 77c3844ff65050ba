package config

import (
	"log/slog"
	"time"

	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/infra/salesforce"
	"github.com/urfave/cli/v3"
)

// Salesforce configures the connected app used for Dev Hub and scratch org
// access.
type Salesforce struct {
	clientID     types.SalesforceClientID
	clientSecret types.SalesforceClientSecret `masq:"secret"`
	callbackURL  string
	loginURL     string
	apiVersion   string
	pollInterval time.Duration
	orgTimeout   time.Duration
}

func (x *Salesforce) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sf-client-id",
			Usage:       "Salesforce connected app consumer key",
			Category:    "Salesforce",
			Destination: (*string)(&x.clientID),
			Sources:     cli.EnvVars("ORGFORGE_SF_CLIENT_ID"),
			Required:    true,
		},
		&cli.StringFlag{
			Name:        "sf-client-secret",
			Usage:       "Salesforce connected app consumer secret",
			Category:    "Salesforce",
			Destination: (*string)(&x.clientSecret),
			Sources:     cli.EnvVars("ORGFORGE_SF_CLIENT_SECRET"),
		},
		&cli.StringFlag{
			Name:        "sf-callback-url",
			Usage:       "OAuth callback URL of the connected app",
			Category:    "Salesforce",
			Destination: &x.callbackURL,
			Sources:     cli.EnvVars("ORGFORGE_SF_CALLBACK_URL"),
		},
		&cli.StringFlag{
			Name:        "sf-login-url",
			Usage:       "Salesforce login URL",
			Category:    "Salesforce",
			Destination: &x.loginURL,
			Sources:     cli.EnvVars("ORGFORGE_SF_LOGIN_URL"),
			Value:       salesforce.DefaultLoginURL,
		},
		&cli.StringFlag{
			Name:        "sf-api-version",
			Usage:       "Default Salesforce API version",
			Category:    "Salesforce",
			Destination: &x.apiVersion,
			Sources:     cli.EnvVars("ORGFORGE_SF_API_VERSION"),
			Value:       salesforce.DefaultAPIVersion,
		},
		&cli.DurationFlag{
			Name:        "sf-poll-interval",
			Usage:       "Polling interval of scratch org creation and metadata retrieval",
			Category:    "Salesforce",
			Destination: &x.pollInterval,
			Sources:     cli.EnvVars("ORGFORGE_SF_POLL_INTERVAL"),
			Value:       salesforce.DefaultPollInterval,
		},
		&cli.DurationFlag{
			Name:        "sf-org-timeout",
			Usage:       "Timeout of scratch org creation",
			Category:    "Salesforce",
			Destination: &x.orgTimeout,
			Sources:     cli.EnvVars("ORGFORGE_SF_ORG_TIMEOUT"),
			Value:       salesforce.DefaultOrgTimeout,
		},
	}
}

func (x *Salesforce) New() (*salesforce.Client, error) {
	var options []salesforce.Option
	if x.callbackURL != "" {
		options = append(options, salesforce.WithCallbackURL(x.callbackURL))
	}
	if x.loginURL != "" {
		options = append(options, salesforce.WithLoginURL(x.loginURL))
	}
	if x.apiVersion != "" {
		options = append(options, salesforce.WithAPIVersion(x.apiVersion))
	}
	if x.pollInterval > 0 {
		options = append(options, salesforce.WithPollInterval(x.pollInterval))
	}
	if x.orgTimeout > 0 {
		options = append(options, salesforce.WithOrgTimeout(x.orgTimeout))
	}

	return salesforce.New(x.clientID, x.clientSecret, options...)
}

func (x Salesforce) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("ClientID", string(x.clientID)),
		slog.Int("clientSecret.len", len(x.clientSecret)),
		slog.String("CallbackURL", x.callbackURL),
		slog.String("LoginURL", x.loginURL),
		slog.String("APIVersion", x.apiVersion),
		slog.Duration("PollInterval", x.pollInterval),
		slog.Duration("OrgTimeout", x.orgTimeout),
	)
}

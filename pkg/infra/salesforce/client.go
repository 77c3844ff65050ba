package salesforce

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/safe"
	"golang.org/x/oauth2"
)

const (
	DefaultLoginURL     = "https://login.salesforce.com"
	DefaultAPIVersion   = "52.0"
	DefaultPollInterval = 5 * time.Second
	DefaultOrgTimeout   = 15 * time.Minute
)

// Client is a Salesforce REST, Tooling and Metadata API client. It acts as
// both the org lifecycle provider (through a Dev Hub) and the per org API.
type Client struct {
	clientID     types.SalesforceClientID
	clientSecret types.SalesforceClientSecret
	callbackURL  string
	loginURL     string
	apiVersion   string
	pollInterval time.Duration
	orgTimeout   time.Duration
	transport    http.RoundTripper
}

var (
	_ interfaces.Salesforce  = (*Client)(nil)
	_ interfaces.OrgProvider = (*Client)(nil)
)

type Option func(*Client)

func WithCallbackURL(u string) Option {
	return func(x *Client) {
		x.callbackURL = u
	}
}

// WithLoginURL sets the login endpoint used when a credential has none
func WithLoginURL(u string) Option {
	return func(x *Client) {
		x.loginURL = strings.TrimSuffix(u, "/")
	}
}

func WithAPIVersion(v string) Option {
	return func(x *Client) {
		x.apiVersion = v
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(x *Client) {
		x.pollInterval = d
	}
}

// WithOrgTimeout bounds how long scratch org creation is awaited
func WithOrgTimeout(d time.Duration) Option {
	return func(x *Client) {
		x.orgTimeout = d
	}
}

func WithTransport(tr http.RoundTripper) Option {
	return func(x *Client) {
		x.transport = tr
	}
}

func New(clientID types.SalesforceClientID, clientSecret types.SalesforceClientSecret, options ...Option) (*Client, error) {
	if clientID == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "Salesforce client ID is empty")
	}

	client := &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		loginURL:     DefaultLoginURL,
		apiVersion:   DefaultAPIVersion,
		pollInterval: DefaultPollInterval,
		orgTimeout:   DefaultOrgTimeout,
		transport:    http.DefaultTransport,
	}
	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

func (x *Client) baseHTTPClient() *http.Client {
	return &http.Client{Transport: x.transport}
}

func (x *Client) authHTTPClient(cred *model.OrgCredential) *http.Client {
	return &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: string(cred.AccessToken)}),
			Base:   x.transport,
		},
	}
}

func (x *Client) dataURL(cred *model.OrgCredential, path string) string {
	return strings.TrimSuffix(cred.InstanceURL, "/") + "/services/data/v" + x.apiVersion + path
}

type apiError struct {
	Message   string `json:"message"`
	ErrorCode string `json:"errorCode"`
}

// doJSON sends body as JSON and decodes the response into out when out is
// not nil. Non 2xx responses are returned as errors with the API messages.
func (x *Client) doJSON(ctx context.Context, cred *model.OrgCredential, method, u string, body, out any) error {
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return goerr.Wrap(err, "failed to marshal request body")
		}
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, r)
	if err != nil {
		return goerr.Wrap(err, "failed to create request", goerr.V("url", u))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := x.authHTTPClient(cred).Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send request", goerr.V("method", method), goerr.V("url", u))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		var apiErrs []apiError
		_ = json.Unmarshal(raw, &apiErrs)
		return goerr.Wrap(types.ErrInvalidSalesforceData, "Salesforce API returned error",
			goerr.V("method", method),
			goerr.V("url", u),
			goerr.V("status", resp.StatusCode),
			goerr.V("errors", apiErrs),
			goerr.V("body", string(raw)),
		)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return goerr.Wrap(err, "failed to decode response", goerr.V("url", u))
	}

	return nil
}

type queryResponse[T any] struct {
	TotalSize      int    `json:"totalSize"`
	Done           bool   `json:"done"`
	NextRecordsURL string `json:"nextRecordsUrl"`
	Records        []T    `json:"records"`
}

// query runs SOQL against the REST ("/query") or Tooling ("/tooling/query")
// endpoint and follows nextRecordsUrl until all records are read.
func query[T any](ctx context.Context, x *Client, cred *model.OrgCredential, endpoint, soql string) ([]T, error) {
	u := x.dataURL(cred, endpoint) + "?q=" + url.QueryEscape(soql)

	var records []T
	for {
		var resp queryResponse[T]
		if err := x.doJSON(ctx, cred, http.MethodGet, u, nil, &resp); err != nil {
			return nil, goerr.Wrap(err, "failed to query", goerr.V("soql", soql))
		}
		records = append(records, resp.Records...)

		if resp.Done || resp.NextRecordsURL == "" {
			break
		}
		u = strings.TrimSuffix(cred.InstanceURL, "/") + resp.NextRecordsURL
	}

	return records, nil
}

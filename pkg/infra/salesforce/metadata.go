package salesforce

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/xml"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
	"github.com/m-mizutani/orgforge/pkg/utils/safe"
)

const metadataNS = "http://soap.sforce.com/2006/04/metadata"

type soapFault struct {
	Code   string `xml:"faultcode"`
	String string `xml:"faultstring"`
}

type retrieveEnvelope struct {
	Fault  *soapFault `xml:"Body>Fault"`
	Result struct {
		ID    string `xml:"id"`
		Done  bool   `xml:"done"`
		State string `xml:"state"`
	} `xml:"Body>retrieveResponse>result"`
}

type checkRetrieveStatusEnvelope struct {
	Fault  *soapFault `xml:"Body>Fault"`
	Result struct {
		ID           string `xml:"id"`
		Done         bool   `xml:"done"`
		Status       string `xml:"status"`
		Success      bool   `xml:"success"`
		ErrorMessage string `xml:"errorMessage"`
		ZipFile      string `xml:"zipFile"`
	} `xml:"Body>checkRetrieveStatusResponse>result"`
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func soapEnvelope(sessionID types.SalesforceToken, body string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>` +
		`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:met="` + metadataNS + `">` +
		`<soapenv:Header><met:SessionHeader><met:sessionId>` + escapeXML(string(sessionID)) + `</met:sessionId></met:SessionHeader></soapenv:Header>` +
		`<soapenv:Body>` + body + `</soapenv:Body></soapenv:Envelope>`
}

func retrieveRequestBody(apiVersion string, changes model.DesiredChanges) string {
	var b strings.Builder
	b.WriteString(`<met:retrieve><met:retrieveRequest>`)
	b.WriteString(`<met:apiVersion>` + escapeXML(apiVersion) + `</met:apiVersion>`)
	b.WriteString(`<met:singlePackage>true</met:singlePackage>`)
	b.WriteString(`<met:unpackaged>`)
	for _, t := range changes.Types() {
		b.WriteString(`<met:types>`)
		for _, name := range changes[t] {
			b.WriteString(`<met:members>` + escapeXML(name) + `</met:members>`)
		}
		b.WriteString(`<met:name>` + escapeXML(t) + `</met:name>`)
		b.WriteString(`</met:types>`)
	}
	b.WriteString(`<met:version>` + escapeXML(apiVersion) + `</met:version>`)
	b.WriteString(`</met:unpackaged></met:retrieveRequest></met:retrieve>`)
	return b.String()
}

func checkRetrieveStatusBody(id string) string {
	return `<met:checkRetrieveStatus><met:asyncProcessId>` + escapeXML(id) +
		`</met:asyncProcessId><met:includeZip>true</met:includeZip></met:checkRetrieveStatus>`
}

func (x *Client) callSOAP(ctx context.Context, cred *model.OrgCredential, apiVersion, action, body string, out any) error {
	u := strings.TrimSuffix(cred.InstanceURL, "/") + "/services/Soap/m/" + apiVersion
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, strings.NewReader(soapEnvelope(cred.AccessToken, body)))
	if err != nil {
		return goerr.Wrap(err, "failed to create SOAP request", goerr.V("action", action))
	}
	req.Header.Set("Content-Type", "text/xml; charset=UTF-8")
	req.Header.Set("SOAPAction", action)

	resp, err := x.baseHTTPClient().Do(req)
	if err != nil {
		return goerr.Wrap(err, "failed to send SOAP request", goerr.V("action", action))
	}
	defer safe.Close(ctx, resp.Body)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return goerr.Wrap(err, "failed to read SOAP response", goerr.V("action", action))
	}

	// SOAP faults come with status 500 and are reported by the caller
	if err := xml.Unmarshal(raw, out); err != nil {
		if resp.StatusCode != http.StatusOK {
			return goerr.Wrap(types.ErrInvalidSalesforceData, "Metadata API returned error",
				goerr.V("action", action),
				goerr.V("status", resp.StatusCode),
				goerr.V("body", string(raw)),
			)
		}
		return goerr.Wrap(types.ErrInvalidSalesforceData, "failed to parse SOAP response",
			goerr.V("action", action),
			goerr.V("cause", err.Error()),
		)
	}

	return nil
}

// RetrieveComponents implements interfaces.Salesforce. The retrieved
// metadata is extracted into input.TargetDir. input.Credential must carry a
// valid access token.
func (x *Client) RetrieveComponents(ctx context.Context, input *interfaces.RetrieveComponentsInput) error {
	if input.Changes.Count() == 0 {
		return goerr.Wrap(types.ErrValidationFailed, "no components to retrieve")
	}

	apiVersion := input.APIVersion
	if apiVersion == "" {
		apiVersion = x.apiVersion
	}

	var started retrieveEnvelope
	if err := x.callSOAP(ctx, input.Credential, apiVersion, "retrieve", retrieveRequestBody(apiVersion, input.Changes), &started); err != nil {
		return err
	}
	if started.Fault != nil {
		return goerr.Wrap(types.ErrRetrieveFailed, "retrieve was rejected",
			goerr.V("fault_code", started.Fault.Code),
			goerr.V("fault", started.Fault.String),
		)
	}
	if started.Result.ID == "" {
		return goerr.Wrap(types.ErrInvalidSalesforceData, "retrieve returned no async process ID")
	}

	logging.From(ctx).Info("Started metadata retrieve",
		slog.String("async_process_id", started.Result.ID),
		slog.Int("components", input.Changes.Count()),
	)

	zipData, err := x.waitRetrieve(ctx, input.Credential, apiVersion, started.Result.ID)
	if err != nil {
		return err
	}

	if err := extractZip(ctx, zipData, input.TargetDir); err != nil {
		return goerr.Wrap(err, "failed to extract retrieved metadata", goerr.V("target_dir", input.TargetDir))
	}

	return nil
}

func (x *Client) waitRetrieve(ctx context.Context, cred *model.OrgCredential, apiVersion, id string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, x.orgTimeout)
	defer cancel()

	for {
		var status checkRetrieveStatusEnvelope
		if err := x.callSOAP(ctx, cred, apiVersion, "checkRetrieveStatus", checkRetrieveStatusBody(id), &status); err != nil {
			return nil, err
		}
		if status.Fault != nil {
			return nil, goerr.Wrap(types.ErrRetrieveFailed, "checkRetrieveStatus failed",
				goerr.V("fault_code", status.Fault.Code),
				goerr.V("fault", status.Fault.String),
			)
		}

		if status.Result.Done {
			if status.Result.Status != "Succeeded" {
				return nil, goerr.Wrap(types.ErrRetrieveFailed, "retrieve did not succeed",
					goerr.V("status", status.Result.Status),
					goerr.V("message", status.Result.ErrorMessage),
				)
			}
			data, err := base64.StdEncoding.DecodeString(strings.TrimSpace(status.Result.ZipFile))
			if err != nil {
				return nil, goerr.Wrap(types.ErrInvalidSalesforceData, "failed to decode zipFile", goerr.V("cause", err.Error()))
			}
			return data, nil
		}

		select {
		case <-ctx.Done():
			return nil, goerr.Wrap(types.ErrRetrieveFailed, "retrieve did not finish in time", goerr.V("async_process_id", id))
		case <-time.After(x.pollInterval):
		}
	}
}

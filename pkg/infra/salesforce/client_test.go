package salesforce_test

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/infra/salesforce"
)

type testServer struct {
	*httptest.Server
	mux *http.ServeMux
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mux := http.NewServeMux()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return &testServer{Server: srv, mux: mux}
}

func (x *testServer) handleToken(t *testing.T, accessToken string) {
	x.mux.HandleFunc("/services/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		gt.NoError(t, r.ParseForm())
		gt.V(t, r.Form.Get("client_id")).Equal("client-id")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"access_token":  accessToken + "-" + r.Form.Get("grant_type"),
			"refresh_token": "issued-refresh-token",
			"instance_url":  x.URL,
			"token_type":    "Bearer",
		})
	})
}

func newClient(t *testing.T) *salesforce.Client {
	return gt.R1(salesforce.New("client-id", "client-secret",
		salesforce.WithCallbackURL("https://example.com/callback"),
		salesforce.WithPollInterval(10*time.Millisecond),
		salesforce.WithOrgTimeout(2*time.Second),
	)).NoError(t)
}

func TestNew(t *testing.T) {
	_, err := salesforce.New("", "secret")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestRefreshAccessToken(t *testing.T) {
	srv := newTestServer(t)
	srv.handleToken(t, "fresh")
	client := newClient(t)

	t.Run("refreshes token and instance URL", func(t *testing.T) {
		cred := &model.OrgCredential{
			OrgID:        "00D000000000001",
			LoginURL:     srv.URL,
			RefreshToken: "refresh-token",
		}
		updated := gt.R1(client.RefreshAccessToken(context.Background(), cred)).NoError(t)
		gt.V(t, updated.AccessToken).Equal(types.SalesforceToken("fresh-refresh_token"))
		gt.V(t, updated.InstanceURL).Equal(srv.URL)
		gt.V(t, cred.AccessToken).Equal(types.SalesforceToken(""))
	})

	t.Run("no refresh token", func(t *testing.T) {
		_, err := client.RefreshAccessToken(context.Background(), &model.OrgCredential{LoginURL: srv.URL})
		gt.True(t, errors.Is(err, types.ErrTokenRefreshFailed))
	})

	t.Run("token endpoint failure", func(t *testing.T) {
		failing := newTestServer(t)
		failing.mux.HandleFunc("/services/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"expired access/refresh token"}`))
		})

		_, err := client.RefreshAccessToken(context.Background(), &model.OrgCredential{
			LoginURL:     failing.URL,
			RefreshToken: "expired",
		})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrTokenRefreshFailed))
	})
}

func TestQueryRevisions(t *testing.T) {
	srv := newTestServer(t)
	srv.mux.HandleFunc("/services/data/v52.0/tooling/query", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer access-token")
		gt.True(t, strings.Contains(r.URL.Query().Get("q"), "FROM SourceMember"))
		_, _ = w.Write([]byte(`{
			"totalSize": 3, "done": false,
			"nextRecordsUrl": "/services/data/v52.0/tooling/query/01gNEXT-2000",
			"records": [
				{"MemberType": "name1", "MemberName": "member1", "RevisionCounter": 1},
				{"MemberType": "name1", "MemberName": "member2", "RevisionCounter": 1}
			]
		}`))
	})
	srv.mux.HandleFunc("/services/data/v52.0/tooling/query/01gNEXT-2000", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"totalSize": 3, "done": true,
			"records": [{"MemberType": "name2", "MemberName": "member1", "RevisionCounter": 1}]
		}`))
	})

	client := newClient(t)
	records := gt.R1(client.QueryRevisions(context.Background(), &model.OrgCredential{
		InstanceURL: srv.URL,
		AccessToken: "access-token",
	})).NoError(t)

	gt.V(t, model.NewRevisionSnapshot(records)).Equal(model.RevisionSnapshot{
		"name1": {"member1": 1, "member2": 1},
		"name2": {"member1": 1},
	})
}

func TestCreateScratchOrg(t *testing.T) {
	srv := newTestServer(t)
	srv.handleToken(t, "tok")

	var inserted map[string]any
	srv.mux.HandleFunc("/services/data/v52.0/sobjects/ScratchOrgInfo", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodPost)
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer tok-refresh_token")
		gt.NoError(t, json.NewDecoder(r.Body).Decode(&inserted))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"2SR000000000001","success":true,"errors":[]}`))
	})

	var polls int32
	srv.mux.HandleFunc("/services/data/v52.0/sobjects/ScratchOrgInfo/2SR000000000001", func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&polls, 1) < 3 {
			_, _ = w.Write([]byte(`{"Id":"2SR000000000001","Status":"Creating"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"Id":             "2SR000000000001",
			"Status":         "Active",
			"ScratchOrg":     "00D000000000002",
			"SignupUsername": "test@example.com",
			"LoginUrl":       srv.URL,
			"AuthCode":       "auth-code",
			"ExpirationDate": "2024-06-08",
		})
	})

	client := newClient(t)
	result := gt.R1(client.CreateScratchOrg(context.Background(), &interfaces.CreateScratchOrgInput{
		DevHub: &model.OrgCredential{LoginURL: srv.URL, RefreshToken: "devhub-refresh"},
		Definition: &model.ScratchOrgDefinition{
			Edition:  "Developer",
			OrgName:  "Test Org",
			Features: []string{"Communities", "ServiceCloud"},
		},
		Days: 7,
	})).NoError(t)

	gt.V(t, inserted["Edition"]).Equal("Developer")
	gt.V(t, inserted["Features"]).Equal("Communities;ServiceCloud")
	gt.V(t, inserted["DurationDays"]).Equal(float64(7))
	gt.V(t, inserted["ConnectedAppConsumerKey"]).Equal("client-id")

	gt.V(t, result.SFOrgID).Equal(types.SalesforceOrgID("00D000000000002"))
	gt.V(t, result.URL).Equal(srv.URL)
	gt.V(t, result.ExpiresAt).Equal(time.Date(2024, 6, 8, 0, 0, 0, 0, time.UTC))
	gt.V(t, result.Credential.AccessToken).Equal(types.SalesforceToken("tok-authorization_code"))
	gt.V(t, result.Credential.RefreshToken).Equal(types.SalesforceToken("issued-refresh-token"))
	gt.V(t, result.Credential.Username).Equal("test@example.com")
	gt.V(t, atomic.LoadInt32(&polls)).Equal(int32(3))
}

func TestCreateScratchOrgError(t *testing.T) {
	srv := newTestServer(t)
	srv.handleToken(t, "tok")
	srv.mux.HandleFunc("/services/data/v52.0/sobjects/ScratchOrgInfo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"2SR000000000009","success":true}`))
	})
	var deletes int32
	srv.mux.HandleFunc("/services/data/v52.0/sobjects/ScratchOrgInfo/2SR000000000009", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			atomic.AddInt32(&deletes, 1)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`{"Id":"2SR000000000009","Status":"Error","ErrorCode":"C-9999"}`))
	})

	client := newClient(t)
	_, err := client.CreateScratchOrg(context.Background(), &interfaces.CreateScratchOrgInput{
		DevHub:     &model.OrgCredential{LoginURL: srv.URL, RefreshToken: "devhub-refresh"},
		Definition: &model.ScratchOrgDefinition{Edition: "Developer"},
		Days:       1,
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrScratchOrgCreationFailed))
	gt.V(t, atomic.LoadInt32(&deletes)).Equal(int32(1))
}

func TestCreateScratchOrgTimeout(t *testing.T) {
	srv := newTestServer(t)
	srv.handleToken(t, "tok")
	srv.mux.HandleFunc("/services/data/v52.0/sobjects/ScratchOrgInfo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"2SR000000000010","success":true}`))
	})
	var deletes int32
	srv.mux.HandleFunc("/services/data/v52.0/sobjects/ScratchOrgInfo/2SR000000000010", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			atomic.AddInt32(&deletes, 1)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_, _ = w.Write([]byte(`{"Id":"2SR000000000010","Status":"Creating"}`))
	})

	client := gt.R1(salesforce.New("client-id", "client-secret",
		salesforce.WithPollInterval(10*time.Millisecond),
		salesforce.WithOrgTimeout(100*time.Millisecond),
	)).NoError(t)

	_, err := client.CreateScratchOrg(context.Background(), &interfaces.CreateScratchOrgInput{
		DevHub:     &model.OrgCredential{LoginURL: srv.URL, RefreshToken: "devhub-refresh"},
		Definition: &model.ScratchOrgDefinition{Edition: "Developer"},
		Days:       1,
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrScratchOrgTimeout))

	// the org still being created is not left behind
	gt.V(t, atomic.LoadInt32(&deletes)).Equal(int32(1))
}

func TestCreateScratchOrgInvalidExpirationDiscardsOrg(t *testing.T) {
	srv := newTestServer(t)
	srv.handleToken(t, "tok")
	srv.mux.HandleFunc("/services/data/v52.0/sobjects/ScratchOrgInfo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"2SR000000000011","success":true}`))
	})
	var deletes int32
	srv.mux.HandleFunc("/services/data/v52.0/sobjects/ScratchOrgInfo/2SR000000000011", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			atomic.AddInt32(&deletes, 1)
			w.WriteHeader(http.StatusNoContent)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"Id":             "2SR000000000011",
			"Status":         "Active",
			"ScratchOrg":     "00D000000000003",
			"LoginUrl":       srv.URL,
			"AuthCode":       "auth-code",
			"ExpirationDate": "not-a-date",
		})
	})

	client := newClient(t)
	_, err := client.CreateScratchOrg(context.Background(), &interfaces.CreateScratchOrgInput{
		DevHub:     &model.OrgCredential{LoginURL: srv.URL, RefreshToken: "devhub-refresh"},
		Definition: &model.ScratchOrgDefinition{Edition: "Developer"},
		Days:       1,
	})
	gt.True(t, errors.Is(err, types.ErrInvalidSalesforceData))
	gt.V(t, atomic.LoadInt32(&deletes)).Equal(int32(1))
}

func TestDeleteScratchOrg(t *testing.T) {
	srv := newTestServer(t)
	srv.handleToken(t, "tok")

	var deleted []string
	srv.mux.HandleFunc("/services/data/v52.0/query", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Query().Get("q")).Equal("SELECT Id FROM ActiveScratchOrg WHERE ScratchOrg = '00D000000000002'")
		_, _ = w.Write([]byte(`{"totalSize":1,"done":true,"records":[{"Id":"0xA000000000001"}]}`))
	})
	srv.mux.HandleFunc("/services/data/v52.0/sobjects/ActiveScratchOrg/0xA000000000001", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Method).Equal(http.MethodDelete)
		deleted = append(deleted, "0xA000000000001")
		w.WriteHeader(http.StatusNoContent)
	})

	client := newClient(t)
	devHub := &model.OrgCredential{LoginURL: srv.URL, RefreshToken: "devhub-refresh"}

	gt.NoError(t, client.DeleteScratchOrg(context.Background(), devHub, "00D000000000002EAA"))
	gt.V(t, deleted).Equal([]string{"0xA000000000001"})

	t.Run("malformed org ID is rejected before any call", func(t *testing.T) {
		err := client.DeleteScratchOrg(context.Background(), devHub, "00D' OR Id != '")
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func buildZip(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range files {
		w := gt.R1(zw.Create(name)).NoError(t)
		gt.R1(io.WriteString(w, content)).NoError(t)
	}
	gt.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestRetrieveComponents(t *testing.T) {
	zipData := buildZip(t, map[string]string{
		"package.xml":              "<Package/>",
		"classes/Foo.cls":          "public class Foo {}",
		"classes/Foo.cls-meta.xml": "<ApexClass/>",
	})

	srv := newTestServer(t)
	var checks int32
	srv.mux.HandleFunc("/services/Soap/m/48.0", func(w http.ResponseWriter, r *http.Request) {
		body := string(gt.R1(io.ReadAll(r.Body)).NoError(t))
		gt.True(t, strings.Contains(body, "<met:sessionId>access-token</met:sessionId>"))

		switch r.Header.Get("SOAPAction") {
		case "retrieve":
			gt.True(t, strings.Contains(body, "<met:members>Foo</met:members><met:name>ApexClass</met:name>"))
			_, _ = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8"?><soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns="http://soap.sforce.com/2006/04/metadata"><soapenv:Body><retrieveResponse><result><done>false</done><id>09S000000000001</id><state>Queued</state></result></retrieveResponse></soapenv:Body></soapenv:Envelope>`))
		case "checkRetrieveStatus":
			if atomic.AddInt32(&checks, 1) == 1 {
				_, _ = w.Write([]byte(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns="http://soap.sforce.com/2006/04/metadata"><soapenv:Body><checkRetrieveStatusResponse><result><done>false</done><id>09S000000000001</id><status>InProgress</status></result></checkRetrieveStatusResponse></soapenv:Body></soapenv:Envelope>`))
				return
			}
			_, _ = w.Write([]byte(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns="http://soap.sforce.com/2006/04/metadata"><soapenv:Body><checkRetrieveStatusResponse><result><done>true</done><id>09S000000000001</id><status>Succeeded</status><success>true</success><zipFile>` +
				base64.StdEncoding.EncodeToString(zipData) +
				`</zipFile></result></checkRetrieveStatusResponse></soapenv:Body></soapenv:Envelope>`))
		default:
			t.Errorf("unexpected SOAPAction: %s", r.Header.Get("SOAPAction"))
		}
	})

	client := newClient(t)
	target := filepath.Join(t.TempDir(), "src")
	gt.NoError(t, client.RetrieveComponents(context.Background(), &interfaces.RetrieveComponentsInput{
		Credential: &model.OrgCredential{InstanceURL: srv.URL, AccessToken: "access-token"},
		Changes:    model.DesiredChanges{"ApexClass": {"Foo"}},
		TargetDir:  target,
		APIVersion: "48.0",
	}))

	content := gt.R1(os.ReadFile(filepath.Join(target, "classes", "Foo.cls"))).NoError(t)
	gt.V(t, string(content)).Equal("public class Foo {}")
	gt.V(t, atomic.LoadInt32(&checks)).Equal(int32(2))
}

func TestRetrieveComponentsFault(t *testing.T) {
	srv := newTestServer(t)
	srv.mux.HandleFunc("/services/Soap/m/52.0", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/"><soapenv:Body><soapenv:Fault><faultcode>sf:INVALID_SESSION_ID</faultcode><faultstring>INVALID_SESSION_ID: Invalid Session ID</faultstring></soapenv:Fault></soapenv:Body></soapenv:Envelope>`))
	})

	client := newClient(t)
	err := client.RetrieveComponents(context.Background(), &interfaces.RetrieveComponentsInput{
		Credential: &model.OrgCredential{InstanceURL: srv.URL, AccessToken: "bad"},
		Changes:    model.DesiredChanges{"ApexClass": {"Foo"}},
		TargetDir:  t.TempDir(),
	})
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrRetrieveFailed))
}

func TestRetrieveNothing(t *testing.T) {
	client := newClient(t)
	err := client.RetrieveComponents(context.Background(), &interfaces.RetrieveComponentsInput{
		Credential: &model.OrgCredential{},
		Changes:    model.DesiredChanges{},
		TargetDir:  t.TempDir(),
	})
	gt.True(t, errors.Is(err, types.ErrValidationFailed))
}

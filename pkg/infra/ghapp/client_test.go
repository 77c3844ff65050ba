package ghapp_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/infra/ghapp"
	"github.com/m-mizutani/orgforge/pkg/utils/testutil"
)

const testSHA = "f7c8851da7c7fcc46212fccfb6c9c4bda520f1ca"

var testRepo = &model.GitHubRepo{Owner: "test-owner", RepoName: "test-repo"}

func newTestClient(t *testing.T, h http.Handler) *ghapp.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	u := gt.R1(url.Parse(srv.URL + "/")).NoError(t)
	return gt.R1(ghapp.New(ghapp.WithBaseURL(u))).NoError(t)
}

func TestNew(t *testing.T) {
	t.Run("without app", func(t *testing.T) {
		_, err := ghapp.New()
		gt.NoError(t, err)
	})

	t.Run("with app", func(t *testing.T) {
		_, err := ghapp.New(ghapp.WithApp(12345, "test-key"))
		gt.NoError(t, err)
	})

	t.Run("app ID without key fails", func(t *testing.T) {
		client, err := ghapp.New(ghapp.WithApp(12345, ""))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})

	t.Run("key without app ID fails", func(t *testing.T) {
		client, err := ghapp.New(ghapp.WithApp(0, "test-key"))
		gt.Error(t, err)
		gt.V(t, client).Equal(nil)
	})
}

func TestGetDefaultBranch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/test-owner/test-repo", func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer user-token")
		_, _ = w.Write([]byte(`{"name":"test-repo","default_branch":"develop"}`))
	})
	client := newTestClient(t, mux)

	branch := gt.R1(client.GetDefaultBranch(context.Background(), "user-token", testRepo)).NoError(t)
	gt.V(t, branch).Equal(types.BranchName("develop"))
}

func TestEmptyTokenIsRejected(t *testing.T) {
	client := newTestClient(t, http.NotFoundHandler())

	_, err := client.GetDefaultBranch(context.Background(), "", testRepo)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrNoGitHubToken))
}

func TestGetBranchHeadSHA(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/repos/test-owner/test-repo/git/ref/heads/feature/release-1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ref":"refs/heads/feature/release-1","object":{"sha":"` + testSHA + `","type":"commit"}}`))
	})
	mux.HandleFunc("/repos/test-owner/test-repo/git/refs/heads/feature/release-1", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ref":"refs/heads/feature/release-1","object":{"sha":"` + testSHA + `","type":"commit"}}`))
	})
	client := newTestClient(t, mux)

	sha := gt.R1(client.GetBranchHeadSHA(context.Background(), "user-token", testRepo, "feature/release-1")).NoError(t)
	gt.V(t, sha).Equal(types.CommitSHA(testSHA))
}

func TestResolveCommit(t *testing.T) {
	t.Run("resolves SHA, URL and author date", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/test-owner/test-repo/commits/main", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{
				"sha": "` + testSHA + `",
				"html_url": "https://github.com/test-owner/test-repo/commit/` + testSHA + `",
				"commit": {"author": {"name": "x", "date": "2024-03-01T12:00:00Z"}}
			}`))
		})
		client := newTestClient(t, mux)

		commit := gt.R1(client.ResolveCommit(context.Background(), "user-token", testRepo, "main")).NoError(t)
		gt.V(t, commit.SHA).Equal(types.CommitSHA(testSHA))
		gt.V(t, commit.URL).Equal("https://github.com/test-owner/test-repo/commit/" + testSHA)
		gt.V(t, commit.AuthorDate.Year()).Equal(2024)
		gt.V(t, commit.AuthorDate.Month().String()).Equal("March")
	})

	t.Run("unknown commit-ish", func(t *testing.T) {
		client := newTestClient(t, http.NotFoundHandler())
		_, err := client.ResolveCommit(context.Background(), "user-token", testRepo, "nope")
		gt.Error(t, err)
	})
}

func TestCreateBranchRef(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		var body map[string]string
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/test-owner/test-repo/git/refs", func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"ref":"refs/heads/feature/x","object":{"sha":"` + testSHA + `"}}`))
		})
		client := newTestClient(t, mux)

		gt.NoError(t, client.CreateBranchRef(context.Background(), "user-token", testRepo, "feature/x", testSHA))
		gt.V(t, body["ref"]).Equal("refs/heads/feature/x")
		gt.V(t, body["sha"]).Equal(testSHA)
	})

	t.Run("422 is a name conflict", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/test-owner/test-repo/git/refs", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"Reference already exists"}`))
		})
		client := newTestClient(t, mux)

		err := client.CreateBranchRef(context.Background(), "user-token", testRepo, "feature/x", testSHA)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrBranchNameConflict))
	})

	t.Run("other errors are not conflicts", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/repos/test-owner/test-repo/git/refs", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"Forbidden"}`))
		})
		client := newTestClient(t, mux)

		err := client.CreateBranchRef(context.Background(), "user-token", testRepo, "feature/x", testSHA)
		gt.Error(t, err)
		gt.False(t, errors.Is(err, types.ErrBranchNameConflict))
	})
}

func TestInstallationTokenWithoutApp(t *testing.T) {
	client := gt.R1(ghapp.New()).NoError(t)
	_, err := client.InstallationToken(context.Background(), testRepo)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrNoGitHubToken))
}

func TestInstallationToken_Integration(t *testing.T) {
	appID := testutil.GetEnvOrSkip(t, "TEST_GITHUB_APP_ID")
	privateKey := testutil.GetEnvOrSkip(t, "TEST_GITHUB_PRIVATE_KEY")
	owner := testutil.GetEnvOrSkip(t, "TEST_GITHUB_OWNER")
	repoName := testutil.GetEnvOrSkip(t, "TEST_GITHUB_REPO")

	var id types.GitHubAppID
	gt.NoError(t, json.Unmarshal([]byte(appID), &id))

	client := gt.R1(ghapp.New(ghapp.WithApp(id, types.GitHubAppPrivateKey(privateKey)))).NoError(t)
	token := gt.R1(client.InstallationToken(context.Background(), &model.GitHubRepo{Owner: owner, RepoName: repoName})).NoError(t)
	gt.V(t, token).NotEqual(types.GitHubToken(""))
}

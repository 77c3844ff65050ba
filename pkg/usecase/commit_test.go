package usecase_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/mock"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/infra"
	"github.com/m-mizutani/orgforge/pkg/usecase"
)

func (f *fixture) setTaskBranch(t *testing.T) {
	t.Helper()
	task := gt.R1(f.repo.GetTask(context.Background(), testTaskID)).NoError(t)
	task.BranchName = "feature/release-1__fix-bug"
	gt.NoError(t, f.repo.PutTask(context.Background(), task))
}

func commitInput() *model.CommitChangesInput {
	return &model.CommitChangesInput{
		UserID:       testUserID,
		ScratchOrgID: "org-1",
		Message:      "Update Foo",
		Changes:      model.DesiredChanges{"ApexClass": {"Foo"}},
	}
}

func TestCommitChanges(t *testing.T) {
	t.Run("retrieves into target and commits to task branch", func(t *testing.T) {
		f := newFixture(t)
		f.seedScratchOrg(t)
		f.setTaskBranch(t)
		f.revisions = []model.RevisionRecord{
			{MemberType: "ApexClass", MemberName: "Foo", RevisionCounter: 4},
			{MemberType: "ApexClass", MemberName: "Bar", RevisionCounter: 3},
		}

		commit := gt.R1(f.useCase().CommitChanges(testContext(), commitInput())).NoError(t)
		gt.V(t, commit.SHA).Equal(newSHA)

		checkout := f.git.CheckoutCalls()[0].Input
		gt.V(t, checkout.Ref).Equal(types.BranchName("feature/release-1__fix-bug"))
		gt.V(t, checkout.Token).Equal(types.GitHubToken("user-token"))

		retrieve := f.sf.RetrieveComponentsCalls()[0].Input
		gt.V(t, retrieve.TargetDir).Equal(filepath.Join(f.roots[0], "src"))
		gt.V(t, retrieve.APIVersion).Equal("52.0")
		gt.V(t, retrieve.Changes).Equal(model.DesiredChanges{"ApexClass": {"Foo"}})
		gt.V(t, retrieve.Credential.AccessToken).Equal(types.SalesforceToken("refreshed"))

		commitCall := f.git.CommitDirectoryCalls()[0].Input
		gt.V(t, commitCall.Dir).Equal("src")
		gt.V(t, commitCall.RepoRoot).Equal(f.roots[0])
		gt.V(t, commitCall.Message).Equal("Update Foo")
		gt.V(t, commitCall.Branch).Equal(types.BranchName("feature/release-1__fix-bug"))
		gt.V(t, commitCall.Author.Login).Equal("octocat")
		gt.V(t, commitCall.Repo.String()).Equal("test-owner/test-repo")

		// committed component is folded into the baseline, others stay changed
		saved := gt.R1(f.repo.GetScratchOrg(context.Background(), "org-1")).NoError(t)
		v, _ := saved.LatestRevisions.Get("ApexClass", "Foo")
		gt.V(t, v).Equal(4)
		v, _ = saved.LatestRevisions.Get("ApexClass", "Bar")
		gt.V(t, v).Equal(2)
		gt.True(t, saved.HasChanges)
		gt.V(t, saved.UnsavedChanges).Equal(model.DesiredChanges{"ApexClass": {"Bar"}})
		gt.V(t, saved.LatestCommit).Equal(newSHA)
		gt.V(t, saved.LatestCommitURL).Equal("https://github.com/test-owner/test-repo/commit/" + string(newSHA))

		gt.V(t, f.pushed()).Equal([]types.MessageType{types.MessageScratchOrgCommitted})
	})

	t.Run("retrieval failure aborts before commit", func(t *testing.T) {
		f := newFixture(t)
		f.seedScratchOrg(t)
		f.setTaskBranch(t)
		f.sf.RetrieveComponentsFunc = func(ctx context.Context, input *interfaces.RetrieveComponentsInput) error {
			return types.ErrRetrieveFailed
		}

		_, err := f.useCase().CommitChanges(testContext(), commitInput())
		gt.True(t, errors.Is(err, types.ErrRetrieveFailed))
		gt.V(t, len(f.git.CommitDirectoryCalls())).Equal(0)
		gt.V(t, len(f.pusher.PushMessageCalls())).Equal(0)

		saved := gt.R1(f.repo.GetScratchOrg(context.Background(), "org-1")).NoError(t)
		gt.V(t, saved.LatestCommit).Equal(taskSHA)
	})

	t.Run("token refresh failure aborts before retrieval", func(t *testing.T) {
		f := newFixture(t)
		f.seedScratchOrg(t)
		f.setTaskBranch(t)
		f.sf.RefreshAccessTokenFunc = func(ctx context.Context, cred *model.OrgCredential) (*model.OrgCredential, error) {
			return nil, types.ErrTokenRefreshFailed
		}

		_, err := f.useCase().CommitChanges(testContext(), commitInput())
		gt.True(t, errors.Is(err, types.ErrTokenRefreshFailed))
		gt.V(t, len(f.sf.RetrieveComponentsCalls())).Equal(0)
		gt.V(t, len(f.git.CommitDirectoryCalls())).Equal(0)
	})

	t.Run("unsaved changes are used when none are given", func(t *testing.T) {
		f := newFixture(t)
		org := f.seedScratchOrg(t)
		org.UnsavedChanges = model.DesiredChanges{"ApexClass": {"Bar"}}
		gt.NoError(t, f.repo.PutScratchOrg(context.Background(), org))
		f.setTaskBranch(t)

		input := commitInput()
		input.Changes = nil
		input.Branch = "feature/other"
		input.TargetDirectory = "force-app/main/default"

		gt.R1(f.useCase().CommitChanges(testContext(), input)).NoError(t)
		gt.V(t, f.sf.RetrieveComponentsCalls()[0].Input.Changes).Equal(model.DesiredChanges{"ApexClass": {"Bar"}})
		gt.V(t, f.git.CommitDirectoryCalls()[0].Input.Branch).Equal(types.BranchName("feature/other"))
		gt.V(t, f.git.CommitDirectoryCalls()[0].Input.Dir).Equal("force-app/main/default")
	})

	t.Run("nothing to commit still updates the baseline", func(t *testing.T) {
		f := newFixture(t)
		f.seedScratchOrg(t)
		f.setTaskBranch(t)
		f.git.CommitDirectoryFunc = func(ctx context.Context, input *interfaces.CommitDirectoryInput) (*model.Commit, error) {
			return nil, nil
		}
		f.revisions = []model.RevisionRecord{
			{MemberType: "ApexClass", MemberName: "Foo", RevisionCounter: 2},
			{MemberType: "ApexClass", MemberName: "Bar", RevisionCounter: 2},
		}

		commit, err := f.useCase().CommitChanges(testContext(), commitInput())
		gt.NoError(t, err)
		gt.V(t, commit).Equal(nil)

		saved := gt.R1(f.repo.GetScratchOrg(context.Background(), "org-1")).NoError(t)
		gt.False(t, saved.HasChanges)
		gt.V(t, saved.LatestCommit).Equal(taskSHA)
		gt.V(t, f.pushed()).Equal([]types.MessageType{types.MessageScratchOrgUpdated})
	})

	t.Run("edits made during retrieval are reported by the next refresh", func(t *testing.T) {
		f := newFixture(t)
		f.seedScratchOrg(t)
		f.setTaskBranch(t)
		f.revisions = []model.RevisionRecord{
			{MemberType: "ApexClass", MemberName: "Foo", RevisionCounter: 2},
			{MemberType: "ApexClass", MemberName: "Bar", RevisionCounter: 2},
		}
		f.sf.RetrieveComponentsFunc = func(ctx context.Context, input *interfaces.RetrieveComponentsInput) error {
			// Foo is edited again after the retrieved copy was taken
			f.revisions = []model.RevisionRecord{
				{MemberType: "ApexClass", MemberName: "Foo", RevisionCounter: 3},
				{MemberType: "ApexClass", MemberName: "Bar", RevisionCounter: 2},
			}
			return nil
		}
		uc := f.useCase()

		gt.R1(uc.CommitChanges(testContext(), commitInput())).NoError(t)

		saved := gt.R1(f.repo.GetScratchOrg(context.Background(), "org-1")).NoError(t)
		v, _ := saved.LatestRevisions.Get("ApexClass", "Foo")
		gt.V(t, v).Equal(2)
		gt.False(t, saved.HasChanges)

		refreshed := gt.R1(uc.RefreshScratchOrgChanges(testContext(), &model.RefreshScratchOrgChangesInput{ScratchOrgID: "org-1"})).NoError(t)
		gt.True(t, refreshed.HasChanges)
		gt.V(t, refreshed.UnsavedChanges).Equal(model.DesiredChanges{"ApexClass": {"Foo"}})
	})

	t.Run("save failure after commit reports the pushed commit", func(t *testing.T) {
		f := newFixture(t)
		f.seedScratchOrg(t)
		f.setTaskBranch(t)
		errSave := errors.New("datastore unavailable")
		repo := &mock.ProjectRepositoryMock{
			GetUserFunc:       f.repo.GetUser,
			GetProjectFunc:    f.repo.GetProject,
			GetTaskFunc:       f.repo.GetTask,
			GetScratchOrgFunc: f.repo.GetScratchOrg,
			PutScratchOrgFunc: func(ctx context.Context, org *model.ScratchOrg) error {
				return errSave
			},
		}

		_, err := f.useCase(infra.WithProjectRepository(repo)).CommitChanges(testContext(), commitInput())
		gt.True(t, errors.Is(err, errSave))
		gt.V(t, goerr.Values(err)["commit"]).Equal(newSHA)
		gt.V(t, len(f.git.CommitDirectoryCalls())).Equal(1)
		gt.V(t, len(f.pusher.PushMessageCalls())).Equal(0)
	})

	t.Run("no changes at all", func(t *testing.T) {
		f := newFixture(t)
		f.seedScratchOrg(t)
		f.setTaskBranch(t)
		input := commitInput()
		input.Changes = nil

		_, err := f.useCase().CommitChanges(testContext(), input)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(f.git.CheckoutCalls())).Equal(0)
	})

	t.Run("task without branch", func(t *testing.T) {
		f := newFixture(t)
		f.seedScratchOrg(t)

		_, err := f.useCase().CommitChanges(testContext(), commitInput())
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(f.git.CheckoutCalls())).Equal(0)
	})
}

func TestRunRetrieveTask(t *testing.T) {
	f := newFixture(t)
	org := f.seedScratchOrg(t)
	cfg := &model.ProjectConfig{APIVersion: "58.0"}

	gt.NoError(t, usecase.RunRetrieveTaskForTest(f.useCase(), testContext(), org, cfg, model.DesiredChanges{"ApexClass": {"Foo"}}, "/tmp/x/src"))
	gt.V(t, org.Credential.AccessToken).Equal(types.SalesforceToken("refreshed"))

	input := f.sf.RetrieveComponentsCalls()[0].Input
	gt.V(t, input.APIVersion).Equal("58.0")
	gt.V(t, input.TargetDir).Equal("/tmp/x/src")
}

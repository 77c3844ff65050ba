package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/repository"
)

// TestAll runs all test cases for ProjectRepository
// This is the main entry point for testing any ProjectRepository implementation
func TestAll(t *testing.T, repo interfaces.ProjectRepository) {
	t.Run("UserCRUD", func(t *testing.T) {
		TestUserCRUD(t, repo)
	})
	t.Run("ProjectAndTaskCRUD", func(t *testing.T) {
		TestProjectAndTaskCRUD(t, repo)
	})
	t.Run("SaveBranches", func(t *testing.T) {
		TestSaveBranches(t, repo)
	})
	t.Run("ScratchOrgCRUD", func(t *testing.T) {
		TestScratchOrgCRUD(t, repo)
	})
	t.Run("ListScratchOrgsByTask", func(t *testing.T) {
		TestListScratchOrgsByTask(t, repo)
	})
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

// now is truncated to what every backend can store
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// TestUserCRUD tests basic operations for User
func TestUserCRUD(t *testing.T, repo interfaces.ProjectRepository) {
	ctx := context.Background()

	user := &model.User{
		ID:          types.UserID(newID("user")),
		Login:       "octocat",
		Email:       "octocat@example.com",
		GitHubToken: "gho_xxxx",
		DevHub: &model.OrgCredential{
			OrgID:        "00D000000000001",
			Username:     "devhub@example.com",
			InstanceURL:  "https://devhub.my.salesforce.com",
			AccessToken:  "access",
			RefreshToken: "refresh",
		},
	}
	gt.NoError(t, repo.PutUser(ctx, user))

	retrieved, err := repo.GetUser(ctx, user.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.Login).Equal(user.Login)
	gt.V(t, retrieved.GitHubToken).Equal(user.GitHubToken)
	gt.V(t, retrieved.DevHub).NotEqual(nil)
	gt.V(t, retrieved.DevHub.RefreshToken).Equal(types.SalesforceToken("refresh"))

	// Returned record must not alias the stored one
	retrieved.DevHub.AccessToken = "changed"
	again, err := repo.GetUser(ctx, user.ID)
	gt.NoError(t, err)
	gt.V(t, again.DevHub.AccessToken).Equal(types.SalesforceToken("access"))

	_, err = repo.GetUser(ctx, types.UserID(newID("nonexistent")))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestProjectAndTaskCRUD tests basic operations for Project and Task
func TestProjectAndTaskCRUD(t *testing.T, repo interfaces.ProjectRepository) {
	ctx := context.Background()
	ts := now()

	project := &model.Project{
		ID:        types.ProjectID(newID("project")),
		Name:      "Release 1",
		RepoURL:   "https://www.github.com/test-owner/test-repo",
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	gt.NoError(t, repo.PutProject(ctx, project))

	retrievedProject, err := repo.GetProject(ctx, project.ID)
	gt.NoError(t, err)
	gt.V(t, retrievedProject.Name).Equal(project.Name)
	gt.V(t, retrievedProject.RepoURL).Equal(project.RepoURL)
	gt.V(t, retrievedProject.BranchName).Equal(types.BranchName(""))
	gt.True(t, retrievedProject.CreatedAt.Equal(ts))

	task := &model.Task{
		ID:        types.TaskID(newID("task")),
		ProjectID: project.ID,
		Name:      "Fix bug",
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	gt.NoError(t, repo.PutTask(ctx, task))

	retrievedTask, err := repo.GetTask(ctx, task.ID)
	gt.NoError(t, err)
	gt.V(t, retrievedTask.ProjectID).Equal(project.ID)
	gt.V(t, retrievedTask.Name).Equal(task.Name)

	_, err = repo.GetProject(ctx, types.ProjectID(newID("nonexistent")))
	gt.True(t, errors.Is(err, repository.ErrNotFound))
	_, err = repo.GetTask(ctx, types.TaskID(newID("nonexistent")))
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

// TestSaveBranches tests that project and task branch names are written together
func TestSaveBranches(t *testing.T, repo interfaces.ProjectRepository) {
	ctx := context.Background()
	ts := now()

	project := &model.Project{ID: types.ProjectID(newID("project")), Name: "Release 1", CreatedAt: ts, UpdatedAt: ts}
	task := &model.Task{ID: types.TaskID(newID("task")), ProjectID: project.ID, Name: "Fix bug", CreatedAt: ts, UpdatedAt: ts}
	gt.NoError(t, repo.PutProject(ctx, project))
	gt.NoError(t, repo.PutTask(ctx, task))

	project.BranchName = "feature/release-1"
	task.BranchName = "feature/release-1__fix-bug"
	gt.NoError(t, repo.SaveBranches(ctx, project, task))

	retrievedProject, err := repo.GetProject(ctx, project.ID)
	gt.NoError(t, err)
	gt.V(t, retrievedProject.BranchName).Equal(types.BranchName("feature/release-1"))

	retrievedTask, err := repo.GetTask(ctx, task.ID)
	gt.NoError(t, err)
	gt.V(t, retrievedTask.BranchName).Equal(types.BranchName("feature/release-1__fix-bug"))

	// Saving the same names again is allowed
	gt.NoError(t, repo.SaveBranches(ctx, project, task))

	// A stale copy must not replace names that are already stored
	staleProject := *project
	staleTask := *task
	staleProject.BranchName = "feature/release-1-1"
	staleTask.BranchName = "feature/release-1-1__fix-bug"
	err = repo.SaveBranches(ctx, &staleProject, &staleTask)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	retrievedProject, err = repo.GetProject(ctx, project.ID)
	gt.NoError(t, err)
	gt.V(t, retrievedProject.BranchName).Equal(types.BranchName("feature/release-1"))
	retrievedTask, err = repo.GetTask(ctx, task.ID)
	gt.NoError(t, err)
	gt.V(t, retrievedTask.BranchName).Equal(types.BranchName("feature/release-1__fix-bug"))

	// A second task of the same project keeps the stored project branch
	task2 := &model.Task{ID: types.TaskID(newID("task")), ProjectID: project.ID, Name: "Add feature", CreatedAt: ts, UpdatedAt: ts}
	gt.NoError(t, repo.PutTask(ctx, task2))
	staleTask2 := *task2
	staleTask2.BranchName = "feature/release-1-1__add-feature"
	err = repo.SaveBranches(ctx, &staleProject, &staleTask2)
	gt.True(t, errors.Is(err, repository.ErrAlreadyExists))

	retrievedTask, err = repo.GetTask(ctx, task2.ID)
	gt.NoError(t, err)
	gt.V(t, retrievedTask.BranchName).Equal(types.BranchName(""))
}

func newScratchOrg(taskID types.TaskID) *model.ScratchOrg {
	ts := now()
	return &model.ScratchOrg{
		ID:              types.ScratchOrgID(newID("org")),
		TaskID:          taskID,
		OwnerID:         "user-1",
		OrgType:         types.ScratchOrgTypeDev,
		URL:             "https://test.scratch.my.salesforce.com",
		SFOrgID:         "00D000000000002",
		LatestCommit:    "f7c8851da7c7fcc46212fccfb6c9c4bda520f1ca",
		LatestCommitURL: "https://github.com/test-owner/test-repo/commit/f7c8851da7c7fcc46212fccfb6c9c4bda520f1ca",
		LatestCommitAt:  ts,
		ExpiresAt:       ts.Add(7 * 24 * time.Hour),
		LastModifiedAt:  ts,
		LatestRevisions: model.RevisionSnapshot{
			"ApexClass": {"Foo": 1, "Bar": 2},
		},
		UnsavedChanges: model.DesiredChanges{},
		Credential: &model.OrgCredential{
			OrgID:        "00D000000000002",
			InstanceURL:  "https://test.scratch.my.salesforce.com",
			AccessToken:  "access",
			RefreshToken: "refresh",
		},
	}
}

// TestScratchOrgCRUD tests basic operations for ScratchOrg
func TestScratchOrgCRUD(t *testing.T, repo interfaces.ProjectRepository) {
	ctx := context.Background()

	org := newScratchOrg(types.TaskID(newID("task")))
	gt.NoError(t, repo.PutScratchOrg(ctx, org))

	retrieved, err := repo.GetScratchOrg(ctx, org.ID)
	gt.NoError(t, err)
	gt.V(t, retrieved.TaskID).Equal(org.TaskID)
	gt.V(t, retrieved.OrgType).Equal(types.ScratchOrgTypeDev)
	gt.V(t, retrieved.LatestCommit).Equal(org.LatestCommit)
	gt.True(t, retrieved.ExpiresAt.Equal(org.ExpiresAt))
	gt.V(t, retrieved.LatestRevisions).Equal(org.LatestRevisions)
	gt.V(t, retrieved.Credential.RefreshToken).Equal(types.SalesforceToken("refresh"))

	// Update changes
	org.HasChanges = true
	org.UnsavedChanges = model.DesiredChanges{"ApexClass": {"Foo"}}
	gt.NoError(t, repo.PutScratchOrg(ctx, org))

	retrieved, err = repo.GetScratchOrg(ctx, org.ID)
	gt.NoError(t, err)
	gt.True(t, retrieved.HasChanges)
	gt.V(t, retrieved.UnsavedChanges).Equal(model.DesiredChanges{"ApexClass": {"Foo"}})

	// Delete
	gt.NoError(t, repo.DeleteScratchOrg(ctx, org.ID))
	_, err = repo.GetScratchOrg(ctx, org.ID)
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))

	// Deleting a missing record is not an error
	gt.NoError(t, repo.DeleteScratchOrg(ctx, org.ID))
}

// TestListScratchOrgsByTask tests listing scratch orgs of a task
func TestListScratchOrgsByTask(t *testing.T, repo interfaces.ProjectRepository) {
	ctx := context.Background()
	taskID := types.TaskID(newID("task"))

	org1 := newScratchOrg(taskID)
	org2 := newScratchOrg(taskID)
	other := newScratchOrg(types.TaskID(newID("task")))
	for _, org := range []*model.ScratchOrg{org1, org2, other} {
		gt.NoError(t, repo.PutScratchOrg(ctx, org))
	}

	orgs, err := repo.ListScratchOrgsByTask(ctx, taskID)
	gt.NoError(t, err)
	gt.V(t, len(orgs)).Equal(2)

	ids := map[types.ScratchOrgID]bool{}
	for _, org := range orgs {
		ids[org.ID] = true
	}
	gt.True(t, ids[org1.ID])
	gt.True(t, ids[org2.ID])

	empty, err := repo.ListScratchOrgsByTask(ctx, types.TaskID(newID("task")))
	gt.NoError(t, err)
	gt.V(t, len(empty)).Equal(0)
}

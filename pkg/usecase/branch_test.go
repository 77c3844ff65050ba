package usecase_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgforge/pkg/domain/mock"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/infra"
	"github.com/m-mizutani/orgforge/pkg/usecase"
)

func testRepo(t *testing.T) *model.GitHubRepo {
	return gt.R1(model.ParseGitHubRepoURL(testRepoURL)).NoError(t)
}

func TestReserveBranch(t *testing.T) {
	t.Run("free name is used as is", func(t *testing.T) {
		f := newFixture(t)
		name := gt.R1(usecase.ReserveBranchForTest(f.useCase(), testContext(), "user-token", testRepo(t), "feature/x", "main")).NoError(t)
		gt.V(t, name).Equal(types.BranchName("feature/x"))
		gt.V(t, len(f.gh.CreateBranchRefCalls())).Equal(1)
		gt.V(t, f.gh.CreateBranchRefCalls()[0].Sha).Equal(mainSHA)
	})

	t.Run("taken names get numeric suffix", func(t *testing.T) {
		f := newFixture(t)
		f.github.branches["feature/x"] = mainSHA
		f.github.branches["feature/x-1"] = mainSHA

		name := gt.R1(usecase.ReserveBranchForTest(f.useCase(), testContext(), "user-token", testRepo(t), "feature/x", "main")).NoError(t)
		gt.V(t, name).Equal(types.BranchName("feature/x-2"))

		calls := f.gh.CreateBranchRefCalls()
		gt.V(t, len(calls)).Equal(3)
		gt.V(t, calls[0].Name).Equal(types.BranchName("feature/x"))
		gt.V(t, calls[1].Name).Equal(types.BranchName("feature/x-1"))
		gt.V(t, calls[2].Name).Equal(types.BranchName("feature/x-2"))
		for _, c := range calls {
			gt.V(t, c.Sha).Equal(mainSHA)
		}
	})

	t.Run("retries end in exhaustion", func(t *testing.T) {
		f := newFixture(t)
		f.gh.CreateBranchRefFunc = func(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, name types.BranchName, sha types.CommitSHA) error {
			return types.ErrBranchNameConflict
		}
		uc := f.useCase(infra.WithBranchRetryLimit(3))

		_, err := usecase.ReserveBranchForTest(uc, testContext(), "user-token", testRepo(t), "feature/x", "main")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrBranchNameExhausted))
		gt.V(t, len(f.gh.CreateBranchRefCalls())).Equal(4)
	})

	t.Run("other errors are not retried", func(t *testing.T) {
		f := newFixture(t)
		errForbidden := errors.New("403 forbidden")
		f.gh.CreateBranchRefFunc = func(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, name types.BranchName, sha types.CommitSHA) error {
			return errForbidden
		}

		_, err := usecase.ReserveBranchForTest(f.useCase(), testContext(), "user-token", testRepo(t), "feature/x", "main")
		gt.True(t, errors.Is(err, errForbidden))
		gt.V(t, len(f.gh.CreateBranchRefCalls())).Equal(1)
	})

	t.Run("concurrent reservations pick different names", func(t *testing.T) {
		f := newFixture(t)
		uc := f.useCase()

		// Both first attempts reach the remote before either returns
		create := f.gh.CreateBranchRefFunc
		var arrived sync.WaitGroup
		arrived.Add(2)
		var n atomic.Int32
		f.gh.CreateBranchRefFunc = func(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, name types.BranchName, sha types.CommitSHA) error {
			if n.Add(1) <= 2 {
				arrived.Done()
				arrived.Wait()
			}
			return create(ctx, token, repo, name, sha)
		}

		var wg sync.WaitGroup
		names := make([]types.BranchName, 2)
		errs := make([]error, 2)
		for i := range names {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				names[i], errs[i] = usecase.ReserveBranchForTest(uc, testContext(), "user-token", testRepo(t), "feature/x", "main")
			}(i)
		}
		wg.Wait()

		gt.NoError(t, errs[0])
		gt.NoError(t, errs[1])
		gt.V(t, names[0]).NotEqual(names[1])
		for _, name := range names {
			gt.True(t, name == "feature/x" || name == "feature/x-1")
			gt.True(t, f.github.has(name))
		}
		gt.V(t, len(f.gh.CreateBranchRefCalls())).Equal(3)
	})
}

func TestEnsureBranches(t *testing.T) {
	cfg := &model.ProjectConfig{FeatureBranchPrefix: "feature/"}

	t.Run("creates project branch from default and task branch from project", func(t *testing.T) {
		f := newFixture(t)
		ctx := testContext()
		project := &model.Project{ID: testProjectID, Name: "Release 1"}
		task := &model.Task{ID: testTaskID, ProjectID: testProjectID, Name: "Fix bug"}

		branch := gt.R1(usecase.EnsureBranchesForTest(f.useCase(), ctx, "user-token", testRepo(t), cfg, project, task)).NoError(t)
		gt.V(t, branch).Equal(types.BranchName("feature/release-1__fix-bug"))
		gt.V(t, project.BranchName).Equal(types.BranchName("feature/release-1"))
		gt.V(t, project.UpdatedAt).Equal(testNow)

		heads := f.gh.GetBranchHeadSHACalls()
		gt.V(t, len(heads)).Equal(2)
		gt.V(t, heads[0].Branch).Equal(types.BranchName("main"))
		gt.V(t, heads[1].Branch).Equal(types.BranchName("feature/release-1"))

		savedProject := gt.R1(f.repo.GetProject(ctx, testProjectID)).NoError(t)
		gt.V(t, savedProject.BranchName).Equal(types.BranchName("feature/release-1"))
		savedTask := gt.R1(f.repo.GetTask(ctx, testTaskID)).NoError(t)
		gt.V(t, savedTask.BranchName).Equal(types.BranchName("feature/release-1__fix-bug"))
	})

	t.Run("task branch is based on the suffixed project branch", func(t *testing.T) {
		f := newFixture(t)
		f.github.branches["feature/release-1"] = mainSHA
		project := &model.Project{ID: testProjectID, Name: "Release 1"}
		task := &model.Task{ID: testTaskID, ProjectID: testProjectID, Name: "Fix bug"}

		branch := gt.R1(usecase.EnsureBranchesForTest(f.useCase(), testContext(), "user-token", testRepo(t), cfg, project, task)).NoError(t)
		gt.V(t, project.BranchName).Equal(types.BranchName("feature/release-1-1"))
		gt.V(t, branch).Equal(types.BranchName("feature/release-1-1__fix-bug"))
	})

	t.Run("existing branches are reused without remote calls or saving", func(t *testing.T) {
		f := newFixture(t)
		repo := &mock.ProjectRepositoryMock{}
		uc := f.useCase(infra.WithProjectRepository(repo))
		project := &model.Project{ID: testProjectID, Name: "Release 1", BranchName: "feature/release-1"}
		task := &model.Task{ID: testTaskID, ProjectID: testProjectID, Name: "Fix bug", BranchName: "feature/release-1__fix-bug"}

		for i := 0; i < 2; i++ {
			branch := gt.R1(usecase.EnsureBranchesForTest(uc, testContext(), "user-token", testRepo(t), cfg, project, task)).NoError(t)
			gt.V(t, branch).Equal(types.BranchName("feature/release-1__fix-bug"))
		}
		gt.V(t, len(f.gh.CreateBranchRefCalls())).Equal(0)
		gt.V(t, len(f.gh.GetDefaultBranchCalls())).Equal(0)
		gt.V(t, len(repo.SaveBranchesCalls())).Equal(0)
	})

	t.Run("second run is idempotent", func(t *testing.T) {
		f := newFixture(t)
		uc := f.useCase()
		project := &model.Project{ID: testProjectID, Name: "Release 1"}
		task := &model.Task{ID: testTaskID, ProjectID: testProjectID, Name: "Fix bug"}

		first := gt.R1(usecase.EnsureBranchesForTest(uc, testContext(), "user-token", testRepo(t), cfg, project, task)).NoError(t)
		calls := len(f.gh.CreateBranchRefCalls())
		second := gt.R1(usecase.EnsureBranchesForTest(uc, testContext(), "user-token", testRepo(t), cfg, project, task)).NoError(t)

		gt.V(t, second).Equal(first)
		gt.V(t, len(f.gh.CreateBranchRefCalls())).Equal(calls)
	})

	t.Run("only task branch is missing", func(t *testing.T) {
		f := newFixture(t)
		f.github.branches["feature/release-1"] = mainSHA
		repo := &mock.ProjectRepositoryMock{
			SaveBranchesFunc: func(ctx context.Context, project *model.Project, task *model.Task) error {
				return nil
			},
		}
		uc := f.useCase(infra.WithProjectRepository(repo))
		project := &model.Project{ID: testProjectID, Name: "Release 1", BranchName: "feature/release-1"}
		task := &model.Task{ID: testTaskID, ProjectID: testProjectID, Name: "Fix bug"}

		gt.R1(usecase.EnsureBranchesForTest(uc, testContext(), "user-token", testRepo(t), cfg, project, task)).NoError(t)
		gt.V(t, len(f.gh.GetDefaultBranchCalls())).Equal(0)
		gt.V(t, len(repo.SaveBranchesCalls())).Equal(1)
		gt.V(t, repo.SaveBranchesCalls()[0].Project.BranchName).Equal(types.BranchName("feature/release-1"))
		gt.V(t, repo.SaveBranchesCalls()[0].Task.BranchName).Equal(types.BranchName("feature/release-1__fix-bug"))
	})

	t.Run("nothing is saved when task branch fails", func(t *testing.T) {
		f := newFixture(t)
		f.gh.CreateBranchRefFunc = func(ctx context.Context, token types.GitHubToken, repo *model.GitHubRepo, name types.BranchName, sha types.CommitSHA) error {
			if name == "feature/release-1" {
				f.github.branches[name] = sha
				return nil
			}
			return errors.New("unavailable")
		}
		repo := &mock.ProjectRepositoryMock{}
		uc := f.useCase(infra.WithProjectRepository(repo))
		project := &model.Project{ID: testProjectID, Name: "Release 1"}
		task := &model.Task{ID: testTaskID, ProjectID: testProjectID, Name: "Fix bug"}

		_, err := usecase.EnsureBranchesForTest(uc, testContext(), "user-token", testRepo(t), cfg, project, task)
		gt.Error(t, err)
		gt.V(t, len(repo.SaveBranchesCalls())).Equal(0)
		gt.V(t, project.BranchName).Equal(types.BranchName(""))
	})

	t.Run("branches saved by another job win over stale copies", func(t *testing.T) {
		f := newFixture(t)
		ctx := testContext()
		uc := f.useCase()

		// Both jobs loaded project and task before either saved branches
		project1 := gt.R1(f.repo.GetProject(ctx, testProjectID)).NoError(t)
		task1 := gt.R1(f.repo.GetTask(ctx, testTaskID)).NoError(t)
		project2 := gt.R1(f.repo.GetProject(ctx, testProjectID)).NoError(t)
		task2 := gt.R1(f.repo.GetTask(ctx, testTaskID)).NoError(t)

		first := gt.R1(usecase.EnsureBranchesForTest(uc, ctx, "user-token", testRepo(t), cfg, project1, task1)).NoError(t)
		gt.V(t, first).Equal(types.BranchName("feature/release-1__fix-bug"))

		second := gt.R1(usecase.EnsureBranchesForTest(uc, ctx, "user-token", testRepo(t), cfg, project2, task2)).NoError(t)
		gt.V(t, second).Equal(first)
		gt.V(t, project2.BranchName).Equal(types.BranchName("feature/release-1"))
		gt.V(t, task2.BranchName).Equal(first)

		savedProject := gt.R1(f.repo.GetProject(ctx, testProjectID)).NoError(t)
		gt.V(t, savedProject.BranchName).Equal(types.BranchName("feature/release-1"))
		savedTask := gt.R1(f.repo.GetTask(ctx, testTaskID)).NoError(t)
		gt.V(t, savedTask.BranchName).Equal(first)
	})

	t.Run("stale project copy does not move a new task to another project branch", func(t *testing.T) {
		f := newFixture(t)
		ctx := testContext()
		uc := f.useCase()
		gt.NoError(t, f.repo.PutTask(ctx, &model.Task{ID: "task-2", ProjectID: testProjectID, Name: "Add feature"}))

		staleProject := gt.R1(f.repo.GetProject(ctx, testProjectID)).NoError(t)
		project := gt.R1(f.repo.GetProject(ctx, testProjectID)).NoError(t)
		task := gt.R1(f.repo.GetTask(ctx, testTaskID)).NoError(t)
		gt.R1(usecase.EnsureBranchesForTest(uc, ctx, "user-token", testRepo(t), cfg, project, task)).NoError(t)

		task2 := gt.R1(f.repo.GetTask(ctx, "task-2")).NoError(t)
		branch := gt.R1(usecase.EnsureBranchesForTest(uc, ctx, "user-token", testRepo(t), cfg, staleProject, task2)).NoError(t)
		gt.V(t, branch).Equal(types.BranchName("feature/release-1__add-feature"))

		savedProject := gt.R1(f.repo.GetProject(ctx, testProjectID)).NoError(t)
		gt.V(t, savedProject.BranchName).Equal(types.BranchName("feature/release-1"))
		savedTask := gt.R1(f.repo.GetTask(ctx, "task-2")).NoError(t)
		gt.V(t, savedTask.BranchName).Equal(types.BranchName("feature/release-1__add-feature"))
	})

	t.Run("custom prefix from project config", func(t *testing.T) {
		f := newFixture(t)
		project := &model.Project{ID: testProjectID, Name: "Release 1"}
		task := &model.Task{ID: testTaskID, ProjectID: testProjectID, Name: "Fix bug"}

		branch := gt.R1(usecase.EnsureBranchesForTest(f.useCase(), testContext(), "user-token", testRepo(t),
			&model.ProjectConfig{FeatureBranchPrefix: "work/"}, project, task)).NoError(t)
		gt.V(t, branch).Equal(types.BranchName("work/release-1__fix-bug"))
	})

	t.Run("name without usable characters", func(t *testing.T) {
		f := newFixture(t)
		project := &model.Project{ID: testProjectID, Name: "!!!"}
		task := &model.Task{ID: testTaskID, ProjectID: testProjectID, Name: "Fix bug"}

		_, err := usecase.EnsureBranchesForTest(f.useCase(), testContext(), "user-token", testRepo(t), cfg, project, task)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
		gt.V(t, len(f.gh.CreateBranchRefCalls())).Equal(0)
	})
}

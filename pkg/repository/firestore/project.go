package firestore

import (
	"context"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/repository"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	collectionUser       = "user"
	collectionProject    = "project"
	collectionTask       = "task"
	collectionScratchOrg = "scratch_org"
	collectionJob        = "job"
)

// ToDocumentID checks that id can be used as a Firestore document ID.
// Document IDs must not be empty and must not contain "/".
func ToDocumentID(id string) (string, error) {
	if id == "" {
		return "", goerr.Wrap(repository.ErrInvalidInput, "ID is empty")
	}
	if strings.Contains(id, "/") {
		return "", goerr.Wrap(repository.ErrInvalidInput, "ID contains invalid character '/'",
			goerr.V("id", id),
		)
	}
	return id, nil
}

func (r *Repository) doc(collection, id string) (*firestore.DocumentRef, error) {
	docID, err := ToDocumentID(id)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid document ID", goerr.V("collection", collection))
	}
	return r.client.Collection(collection).Doc(docID), nil
}

func getDoc[T any](ctx context.Context, r *Repository, collection, id string) (*T, error) {
	docRef, err := r.doc(collection, id)
	if err != nil {
		return nil, err
	}

	snap, err := docRef.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(repository.ErrNotFound, "document not found",
				goerr.V("collection", collection),
				goerr.V("id", id),
			)
		}
		return nil, goerr.Wrap(err, "failed to get document",
			goerr.V("collection", collection),
			goerr.V("id", id),
		)
	}

	var v T
	if err := snap.DataTo(&v); err != nil {
		return nil, goerr.Wrap(err, "failed to decode document",
			goerr.V("collection", collection),
			goerr.V("id", id),
		)
	}

	return &v, nil
}

func setDoc(ctx context.Context, r *Repository, collection, id string, v any) error {
	docRef, err := r.doc(collection, id)
	if err != nil {
		return err
	}

	if _, err := docRef.Set(ctx, v); err != nil {
		return goerr.Wrap(err, "failed to set document",
			goerr.V("collection", collection),
			goerr.V("id", id),
		)
	}

	return nil
}

// User operations

func (r *Repository) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	return getDoc[model.User](ctx, r, collectionUser, string(id))
}

func (r *Repository) PutUser(ctx context.Context, user *model.User) error {
	return setDoc(ctx, r, collectionUser, string(user.ID), user)
}

// Project operations

func (r *Repository) GetProject(ctx context.Context, id types.ProjectID) (*model.Project, error) {
	return getDoc[model.Project](ctx, r, collectionProject, string(id))
}

func (r *Repository) PutProject(ctx context.Context, project *model.Project) error {
	return setDoc(ctx, r, collectionProject, string(project.ID), project)
}

// Task operations

func (r *Repository) GetTask(ctx context.Context, id types.TaskID) (*model.Task, error) {
	return getDoc[model.Task](ctx, r, collectionTask, string(id))
}

func (r *Repository) PutTask(ctx context.Context, task *model.Task) error {
	return setDoc(ctx, r, collectionTask, string(task.ID), task)
}

// SaveBranches writes project and task in one transaction so that neither is
// visible without the other. A branch name already stored on either record is
// never replaced.
func (r *Repository) SaveBranches(ctx context.Context, project *model.Project, task *model.Task) error {
	projectRef, err := r.doc(collectionProject, string(project.ID))
	if err != nil {
		return err
	}
	taskRef, err := r.doc(collectionTask, string(task.ID))
	if err != nil {
		return err
	}

	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		var stored model.Project
		if found, err := txGet(tx, projectRef, &stored); err != nil {
			return err
		} else if found && stored.BranchName != "" && stored.BranchName != project.BranchName {
			return goerr.Wrap(repository.ErrAlreadyExists, "project already has a branch",
				goerr.V("projectID", project.ID),
				goerr.V("stored", stored.BranchName),
			)
		}

		var storedTask model.Task
		if found, err := txGet(tx, taskRef, &storedTask); err != nil {
			return err
		} else if found && storedTask.BranchName != "" && storedTask.BranchName != task.BranchName {
			return goerr.Wrap(repository.ErrAlreadyExists, "task already has a branch",
				goerr.V("taskID", task.ID),
				goerr.V("stored", storedTask.BranchName),
			)
		}

		if err := tx.Set(projectRef, project); err != nil {
			return err
		}
		return tx.Set(taskRef, task)
	})
	if err != nil {
		return goerr.Wrap(err, "failed to save branches",
			goerr.V("projectID", project.ID),
			goerr.V("taskID", task.ID),
		)
	}

	return nil
}

func txGet(tx *firestore.Transaction, ref *firestore.DocumentRef, v any) (bool, error) {
	snap, err := tx.Get(ref)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, goerr.Wrap(err, "failed to get document in transaction", goerr.V("path", ref.Path))
	}
	if err := snap.DataTo(v); err != nil {
		return false, goerr.Wrap(err, "failed to decode document", goerr.V("path", ref.Path))
	}
	return true, nil
}

// Scratch org operations

func (r *Repository) GetScratchOrg(ctx context.Context, id types.ScratchOrgID) (*model.ScratchOrg, error) {
	return getDoc[model.ScratchOrg](ctx, r, collectionScratchOrg, string(id))
}

func (r *Repository) PutScratchOrg(ctx context.Context, org *model.ScratchOrg) error {
	return setDoc(ctx, r, collectionScratchOrg, string(org.ID), org)
}

func (r *Repository) DeleteScratchOrg(ctx context.Context, id types.ScratchOrgID) error {
	docRef, err := r.doc(collectionScratchOrg, string(id))
	if err != nil {
		return err
	}

	if _, err := docRef.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete scratch org", goerr.V("scratchOrgID", id))
	}

	return nil
}

func (r *Repository) ListScratchOrgsByTask(ctx context.Context, taskID types.TaskID) ([]*model.ScratchOrg, error) {
	query := r.client.Collection(collectionScratchOrg).Where("task_id", "==", string(taskID))

	iter := query.Documents(ctx)
	defer iter.Stop()

	var orgs []*model.ScratchOrg
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate scratch orgs",
				goerr.V("taskID", taskID),
			)
		}

		var org model.ScratchOrg
		if err := snap.DataTo(&org); err != nil {
			return nil, goerr.Wrap(err, "failed to decode scratch org")
		}

		orgs = append(orgs, &org)
	}
	sort.Slice(orgs, func(i, j int) bool {
		return orgs[i].ID < orgs[j].ID
	})

	return orgs, nil
}

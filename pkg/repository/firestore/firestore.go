package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
)

// Repository stores users, projects, tasks, scratch orgs and jobs in
// Firestore. Each kind is a top level collection keyed by its ID.
type Repository struct {
	client *firestore.Client
}

var (
	_ interfaces.ProjectRepository = (*Repository)(nil)
	_ interfaces.JobRepository     = (*Repository)(nil)
)

// New creates a new Firestore-based repository
func New(ctx context.Context, projectID, databaseID string) (*Repository, error) {
	var client *firestore.Client
	var err error

	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}

	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID),
		)
	}

	return &Repository{
		client: client,
	}, nil
}

// Close releases the underlying client
func (r *Repository) Close() error {
	return r.client.Close()
}

package memory

import (
	"sync"

	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

// Repository is an in-memory implementation of ProjectRepository and
// JobRepository. Records are copied on the way in and out.
type Repository struct {
	mu          sync.RWMutex
	users       map[types.UserID]*model.User
	projects    map[types.ProjectID]*model.Project
	tasks       map[types.TaskID]*model.Task
	scratchOrgs map[types.ScratchOrgID]*model.ScratchOrg
	jobs        map[types.JobID]*model.Job
}

var (
	_ interfaces.ProjectRepository = (*Repository)(nil)
	_ interfaces.JobRepository     = (*Repository)(nil)
)

// New creates a new in-memory repository
func New() *Repository {
	return &Repository{
		users:       make(map[types.UserID]*model.User),
		projects:    make(map[types.ProjectID]*model.Project),
		tasks:       make(map[types.TaskID]*model.Task),
		scratchOrgs: make(map[types.ScratchOrgID]*model.ScratchOrg),
		jobs:        make(map[types.JobID]*model.Job),
	}
}

package infra

import (
	"github.com/m-mizutani/orgforge/pkg/domain/interfaces"
)

const DefaultBranchRetryLimit = 100

type Clients struct {
	github           interfaces.GitHub
	git              interfaces.Git
	orgProvider      interfaces.OrgProvider
	salesforce       interfaces.Salesforce
	configLoader     interfaces.ProjectConfigLoader
	pusher           interfaces.Pusher
	bqClient         interfaces.BigQuery
	projectRepo      interfaces.ProjectRepository
	jobRepo          interfaces.JobRepository
	branchRetryLimit int
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		branchRetryLimit: DefaultBranchRetryLimit,
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Git() interfaces.Git {
	return x.git
}
func (x *Clients) OrgProvider() interfaces.OrgProvider {
	return x.orgProvider
}
func (x *Clients) Salesforce() interfaces.Salesforce {
	return x.salesforce
}
func (x *Clients) ConfigLoader() interfaces.ProjectConfigLoader {
	return x.configLoader
}
func (x *Clients) Pusher() interfaces.Pusher {
	return x.pusher
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) ProjectRepository() interfaces.ProjectRepository {
	return x.projectRepo
}
func (x *Clients) JobRepository() interfaces.JobRepository {
	return x.jobRepo
}

// BranchRetryLimit is the number of suffixed names tried after the first
// branch name conflicts
func (x *Clients) BranchRetryLimit() int {
	return x.branchRetryLimit
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithGit(client interfaces.Git) Option {
	return func(x *Clients) {
		x.git = client
	}
}

func WithOrgProvider(client interfaces.OrgProvider) Option {
	return func(x *Clients) {
		x.orgProvider = client
	}
}

func WithSalesforce(client interfaces.Salesforce) Option {
	return func(x *Clients) {
		x.salesforce = client
	}
}

func WithConfigLoader(loader interfaces.ProjectConfigLoader) Option {
	return func(x *Clients) {
		x.configLoader = loader
	}
}

func WithPusher(pusher interfaces.Pusher) Option {
	return func(x *Clients) {
		x.pusher = pusher
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithProjectRepository(repo interfaces.ProjectRepository) Option {
	return func(x *Clients) {
		x.projectRepo = repo
	}
}

func WithJobRepository(repo interfaces.JobRepository) Option {
	return func(x *Clients) {
		x.jobRepo = repo
	}
}

func WithBranchRetryLimit(n int) Option {
	return func(x *Clients) {
		x.branchRetryLimit = n
	}
}

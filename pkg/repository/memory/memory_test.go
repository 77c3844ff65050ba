package memory_test

import (
	"testing"

	"github.com/m-mizutani/orgforge/pkg/repository/memory"
	"github.com/m-mizutani/orgforge/pkg/repository/testhelper"
)

func TestMemoryProjectRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestAll(t, repo)
}

func TestMemoryJobRepository(t *testing.T) {
	repo := memory.New()
	testhelper.TestJobRepository(t, repo)
}

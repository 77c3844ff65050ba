package cli_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/orgforge/pkg/cli"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
)

func TestParseComponents(t *testing.T) {
	t.Run("groups names by type", func(t *testing.T) {
		changes := gt.R1(cli.ParseComponentsForTest([]string{
			"ApexClass:Foo",
			"CustomObject:Account",
			"ApexClass:Bar",
			"Layout:Account-Account Layout",
		})).NoError(t)

		gt.V(t, changes["ApexClass"]).Equal([]string{"Foo", "Bar"})
		gt.V(t, changes["CustomObject"]).Equal([]string{"Account"})
		gt.V(t, changes["Layout"]).Equal([]string{"Account-Account Layout"})
	})

	t.Run("no components", func(t *testing.T) {
		changes := gt.R1(cli.ParseComponentsForTest(nil)).NoError(t)
		gt.V(t, len(changes)).Equal(0)
	})

	t.Run("missing name", func(t *testing.T) {
		_, err := cli.ParseComponentsForTest([]string{"ApexClass:"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})

	t.Run("missing separator", func(t *testing.T) {
		_, err := cli.ParseComponentsForTest([]string{"ApexClass"})
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestRunRequiresFirestore(t *testing.T) {
	err := cli.New().Run([]string{
		"orgforge", "run", "refresh",
		"--scratch-org-id", "org-1",
		"--sf-client-id", "client-1",
	})
	gt.Error(t, err)
	gt.S(t, err.Error()).Contains("Firestore is required")
}

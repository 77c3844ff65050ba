package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/orgforge/pkg/domain/model"
	"github.com/m-mizutani/orgforge/pkg/domain/types"
	"github.com/m-mizutani/orgforge/pkg/usecase"
	"github.com/m-mizutani/orgforge/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// runCommand executes one operation synchronously, e.g. from a scheduler.
// Records are read from and written to Firestore.
func runCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Run one operation synchronously",
		Commands: []*cli.Command{
			runProvisionCommand(),
			runCommitCommand(),
			runRefreshCommand(),
		},
	}
}

func withUseCase(ctx context.Context, cfg *infraConfig, fn func(ctx context.Context, uc *usecase.UseCase) error) error {
	repo, closeRepo, err := cfg.newRepository(ctx, true)
	if err != nil {
		return err
	}
	defer closeRepo()

	clients, err := cfg.newClients(ctx, repo)
	if err != nil {
		return err
	}

	return fn(ctx, usecase.New(clients))
}

func runProvisionCommand() *cli.Command {
	var (
		cfg       infraConfig
		input     model.CreateScratchOrgInput
		orgType   string
		commitIsh string
	)

	return &cli.Command{
		Name:  "provision",
		Usage: "Provision a scratch org for a task, or create one at a commit-ish",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "user-id",
				Usage:       "Owner of the scratch org",
				Destination: (*string)(&input.UserID),
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "task-id",
				Usage:       "Task of the scratch org",
				Destination: (*string)(&input.TaskID),
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "org-type",
				Usage:       "Scratch org type [Dev|QA]",
				Value:       string(types.ScratchOrgTypeDev),
				Destination: &orgType,
			},
			&cli.StringFlag{
				Name:        "scratch-org-id",
				Usage:       "ID of the scratch org record (generated if not set)",
				Destination: (*string)(&input.ScratchOrgID),
			},
			&cli.StringFlag{
				Name:        "commit-ish",
				Usage:       "Create the scratch org at this commit-ish without creating branches",
				Destination: &commitIsh,
			},
		}, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			input.OrgType = types.ScratchOrgType(orgType)
			input.CommitIsh = commitIsh

			return withUseCase(ctx, &cfg, func(ctx context.Context, uc *usecase.UseCase) error {
				var (
					org *model.ScratchOrg
					err error
				)
				if input.CommitIsh != "" {
					org, err = uc.CreateScratchOrg(ctx, &input)
				} else {
					org, err = uc.ProvisionScratchOrg(ctx, &input.ProvisionScratchOrgInput)
				}
				if err != nil {
					return err
				}

				logging.From(ctx).Info("scratch org is ready", slog.Any("scratch_org", org))
				return nil
			})
		},
	}
}

func runCommitCommand() *cli.Command {
	var (
		cfg        infraConfig
		input      model.CommitChangesInput
		components []string
	)

	return &cli.Command{
		Name:  "commit",
		Usage: "Retrieve changes of a scratch org and commit them to its branch",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "user-id",
				Usage:       "User whose GitHub token is used",
				Destination: (*string)(&input.UserID),
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "scratch-org-id",
				Usage:       "Scratch org to retrieve from",
				Destination: (*string)(&input.ScratchOrgID),
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "message",
				Aliases:     []string{"m"},
				Usage:       "Commit message",
				Destination: &input.Message,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "branch",
				Usage:       "Branch to commit to (task branch if not set)",
				Destination: (*string)(&input.Branch),
			},
			&cli.StringFlag{
				Name:        "target-dir",
				Usage:       "Directory in the repository to write metadata into",
				Value:       model.DefaultTargetDirectory,
				Destination: &input.TargetDirectory,
			},
			&cli.StringSliceFlag{
				Name:        "component",
				Usage:       "Component to retrieve as Type:Name (all unsaved changes if not set)",
				Destination: &components,
			},
		}, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			changes, err := parseComponents(components)
			if err != nil {
				return err
			}
			input.Changes = changes

			return withUseCase(ctx, &cfg, func(ctx context.Context, uc *usecase.UseCase) error {
				commit, err := uc.CommitChanges(ctx, &input)
				if err != nil {
					return err
				}

				if commit == nil {
					logging.From(ctx).Info("nothing to commit")
					return nil
				}
				logging.From(ctx).Info("committed changes",
					slog.String("sha", string(commit.SHA)),
					slog.String("url", commit.URL),
				)
				return nil
			})
		},
	}
}

func runRefreshCommand() *cli.Command {
	var (
		cfg   infraConfig
		input model.RefreshScratchOrgChangesInput
	)

	return &cli.Command{
		Name:  "refresh",
		Usage: "Detect unsaved changes of a scratch org",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "scratch-org-id",
				Usage:       "Scratch org to inspect",
				Destination: (*string)(&input.ScratchOrgID),
				Required:    true,
			},
		}, cfg.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			return withUseCase(ctx, &cfg, func(ctx context.Context, uc *usecase.UseCase) error {
				org, err := uc.RefreshScratchOrgChanges(ctx, &input)
				if err != nil {
					return err
				}

				logging.From(ctx).Info("refreshed scratch org",
					slog.Bool("has_changes", org.HasChanges),
					slog.Any("unsaved_changes", org.UnsavedChanges),
				)
				return nil
			})
		},
	}
}

// parseComponents converts Type:Name pairs into DesiredChanges
func parseComponents(components []string) (model.DesiredChanges, error) {
	if len(components) == 0 {
		return nil, nil
	}

	changes := model.DesiredChanges{}
	for _, c := range components {
		mdType, name, ok := strings.Cut(c, ":")
		if !ok || mdType == "" || name == "" {
			return nil, goerr.Wrap(types.ErrValidationFailed, "component must be Type:Name", goerr.V("component", c))
		}
		changes[mdType] = append(changes[mdType], name)
	}
	return changes, nil
}

package commands

import (
	"github.com/arthur-debert/cs01/pkg/commands/initialize"
	"github.com/arthur-debert/cs01/pkg/logging"
	"github.com/spf13/cobra"
)

func newInitCmd(a *app) *cobra.Command {
	var (
		bare          bool
		initialBranch string
		dryRun        bool
		force         bool
	)

	cmd := &cobra.Command{
		Use:     "init [<path>]",
		Short:   MsgInitShort,
		Long:    MsgInitLong,
		Example: MsgInitExample,
		Args:    cobra.MaximumNArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) == 1 {
				path = args[0]
			}
			if initialBranch == "" {
				initialBranch = a.cfg.Init.DefaultBranch
			}

			logger := logging.WithFields(map[string]interface{}{
				"path":   path,
				"bare":   bare,
				"branch": initialBranch,
			})
			logger.Info().Msg("Initializing repository")

			result, err := initialize.InitRepo(initialize.InitRepoOptions{
				FS:            a.fs,
				Path:          path,
				Bare:          bare,
				InitialBranch: initialBranch,
				DryRun:        dryRun,
				Force:         force,
				DirPerms:      a.cfg.Init.DirMode(),
				FilePerms:     a.cfg.Init.FileMode(),
			})
			if err != nil {
				return err
			}

			renderer, err := a.renderer(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			return renderer.RenderResult(result)
		},
	}

	cmd.Flags().BoolVar(&bare, "bare", false, MsgFlagBare)
	cmd.Flags().StringVarP(&initialBranch, "initial-branch", "b", "", MsgFlagInitialBranch)
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)

	return cmd
}

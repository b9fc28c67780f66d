package commands

import (
	"github.com/arthur-debert/cs01/pkg/commands/genconfig"
	"github.com/spf13/cobra"
)

func newGenConfigCmd(a *app) *cobra.Command {
	var (
		asYAML   bool
		template bool
		write    bool
	)

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgGenConfigShort,
		Long:    MsgGenConfigLong,
		Example: MsgGenConfigExample,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			format := genconfig.FormatTOML
			switch {
			case template:
				format = genconfig.FormatTemplate
			case asYAML:
				format = genconfig.FormatYAML
			}

			result, err := genconfig.GenConfig(genconfig.GenConfigOptions{
				Config: a.cfg,
				Format: format,
				Write:  write,
				FS:     a.fs,
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

	cmd.Flags().BoolVar(&asYAML, "yaml", false, MsgFlagYAML)
	cmd.Flags().BoolVar(&template, "template", false, MsgFlagTemplate)
	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.MarkFlagsMutuallyExclusive("yaml", "template")

	return cmd
}

package commands

import (
	"embed"
	"io/fs"

	"github.com/arthur-debert/cs01/pkg/cobrax/topics"
	"github.com/arthur-debert/cs01/pkg/errors"
	"github.com/spf13/cobra"
)

//go:embed topics
var topicFiles embed.FS

// initHelpTopics installs the topic-aware help command on rootCmd.
func initHelpTopics(rootCmd *cobra.Command) error {
	source, err := fs.Sub(topicFiles, "topics")
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to open help topics")
	}

	_, err = topics.InitializeWithOptions(rootCmd, source, topics.Options{
		Renderer: topics.NewGlamourRenderer(),
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "failed to load help topics")
	}
	rootCmd.SetHelpCommandGroupID("misc")
	return nil
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "topics",
		Short:   MsgTopicsShort,
		Long:    MsgTopicsLong,
		GroupID: "misc",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root := cmd.Root()
			helpCmd, _, err := root.Find([]string{"help"})
			if err != nil || helpCmd == nil || helpCmd.Name() != "help" {
				return errors.New(errors.ErrInternal, "help command not found")
			}
			return helpCmd.RunE(helpCmd, []string{"topics"})
		},
	}
}

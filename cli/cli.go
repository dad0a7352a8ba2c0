package cli

import (
	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
)

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spotlight",
		Short: "Visual feedback recording and annotation service",
		Long: heredoc.Doc(`
			Spotlight records visual feedback sessions over reviewable posts
			and anchors annotations and comments to the post's frames.`),
		Example: heredoc.Doc(`
			$ spotlight serve
			$ spotlight migrate
			$ spotlight upload recording.webm
		`),
		SilenceUsage: true,
	}

	cmd.AddCommand(
		ServeCmd(),
		MigrateCmd(),
		UploadCmd(),
	)

	return cmd
}

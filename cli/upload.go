package cli

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/MakeNowJust/heredoc"
	"github.com/goto/spotlight/core/upload"
	"github.com/goto/spotlight/internal/server"
	"github.com/goto/spotlight/pkg/log"
	"github.com/goto/spotlight/plugins/storage/s3"
	"github.com/spf13/cobra"
)

func UploadCmd() *cobra.Command {
	var (
		configFile  string
		contentType string
	)
	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a recording to the configured object storage",
		Example: heredoc.Doc(`
			$ spotlight upload recording.webm
			$ spotlight upload --content-type video/mp4 clip.bin
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := server.LoadConfig(configFile)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			blob, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %q: %w", args[0], err)
			}

			mimeType := contentType
			if mimeType == "" {
				mimeType = mime.TypeByExtension(filepath.Ext(args[0]))
			}
			if mimeType == "" {
				mimeType = "application/octet-stream"
			}

			transport, err := s3.NewClient(cmd.Context(), &config.Storage)
			if err != nil {
				return fmt.Errorf("initializing storage client: %w", err)
			}

			logger := log.NewCtxLogger(config.LogLevel, nil)
			client := upload.NewClient(upload.ClientDeps{
				Transport: transport,
				Logger:    logger,
			})

			url, err := client.Upload(cmd.Context(), blob, mimeType)
			if err != nil {
				return err
			}

			fmt.Println(url)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "./config.yaml", "Config file path")
	cmd.MarkFlagFilename("config")
	cmd.Flags().StringVar(&contentType, "content-type", "", "MIME type of the file (inferred from the extension when omitted)")

	return cmd
}

package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/brd-studio/brd-backend/internal/export"
)

func newExportCmd() *cobra.Command {
	var (
		versionID string
		format    string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "export <project-id>",
		Short: "Render a project's BRD to docx or pdf",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			stores, err := openStores(ctx)
			if err != nil {
				return err
			}
			defer stores.Close()

			artifact, err := export.NewService(stores.Projects).Export(ctx, args[0], versionID, format)
			if err != nil {
				return err
			}

			if outPath == "" {
				outPath = artifact.Filename
			}
			if err := os.WriteFile(outPath, artifact.Data, 0o644); err != nil {
				return err
			}
			color.Green("wrote %s (%d bytes)", outPath, len(artifact.Data))
			return nil
		},
	}

	cmd.Flags().StringVar(&versionID, "version", "", "version id (defaults to the latest version)")
	cmd.Flags().StringVar(&format, "format", export.FormatDocx, "export format: docx or pdf")
	cmd.Flags().StringVar(&outPath, "out", "", "output path (defaults to the artifact filename)")
	return cmd
}

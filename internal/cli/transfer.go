// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/olegiv/ocms-blog/internal/transfer"
)

func (c *cli) exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Export all posts as YAML",
		Long:  "Write every post to a YAML document, to file when given and to stdout otherwise.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := c.openApp(ctx)
			if err != nil {
				return err
			}
			defer c.closeApp(a)

			exporter := transfer.NewExporter(a.Store, c.logger, c.cfg.SiteName)
			if len(args) == 0 {
				return exporter.ExportToWriter(ctx, cmd.OutOrStdout())
			}

			if err := exporter.ExportToFile(ctx, args[0]); err != nil {
				return fmt.Errorf("exporting to %s: %w", args[0], err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported posts to %s\n", args[0])
			return nil
		},
	}
}

func (c *cli) importCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Import posts from a YAML export",
		Long: `Create a post for every valid entry of a YAML export. Entries are checked
with the same rules as the post form; titles that already exist are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := c.openApp(ctx)
			if err != nil {
				return err
			}
			defer c.closeApp(a)

			importer := transfer.NewImporter(a.Store, c.logger, a.Now)
			result, err := importer.ImportFromFile(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "Imported %d posts, skipped %d duplicates\n", result.Created, result.Skipped)
			for _, e := range result.Errors {
				_, _ = fmt.Fprintf(out, "  %s\n", e.Error())
			}

			if result.HasErrors() {
				return fmt.Errorf("%d of %d posts rejected", len(result.Errors),
					len(result.Errors)+result.Created+result.Skipped)
			}
			return nil
		},
	}
}

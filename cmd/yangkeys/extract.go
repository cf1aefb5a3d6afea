// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/netschema/yangkeys/internal/extract"
)

func newExtractCmd() *cobra.Command {
	var (
		output  string
		format  string
		verbose bool
	)
	cmd := &cobra.Command{
		Use:   "extract <archive.zip>",
		Short: "Extract list primary keys from a zip archive of YANG schema files",
		Long: "Extract scans every archive member named <version>-<table>.yang for list " +
			"declarations and their key statements, and writes the merged name-to-key " +
			"mapping as an indented document. An archive with no matching members is a " +
			"warning, not an error.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(verbose)
			mapping, err := extract.NewPipeline(logger).Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var doc []byte
			switch format {
			case "json":
				doc, err = mapping.EncodeJSON()
			case "yaml":
				doc, err = mapping.EncodeYAML()
			default:
				return fmt.Errorf("unsupported format %q (want json or yaml)", format)
			}
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(doc)
				return err
			}
			if err := os.WriteFile(output, doc, 0o644); err != nil {
				return fmt.Errorf("write results: %w", err)
			}
			logger.Info("results saved", "path", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the mapping to this file instead of stdout")
	cmd.Flags().StringVar(&format, "format", "json", "output format: json or yaml")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

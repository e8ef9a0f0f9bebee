// Package main implements preview_resume, which prints a plain-text version of a résumé document.
package main

import (
	"fmt"

	"github.com/jonathan/resume-helper/internal/cli"
	"github.com/jonathan/resume-helper/internal/rendering"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var opts cli.Options

	cmd := &cobra.Command{
		Use:           "preview_resume",
		Short:         "Print a human-readable text preview of the résumé",
		Long:          "Renders each known section of the résumé JSON document as plain text. Missing, empty or malformed sections are skipped; numbers and booleans print as written.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPreview(cmd, &opts)
		},
	}
	opts.BindFlags(cmd)
	return cmd
}

func runPreview(cmd *cobra.Command, opts *cli.Options) error {
	cfg, err := opts.Resolve()
	if err != nil {
		return err
	}
	log := cli.Logger(cmd, cfg)

	doc, err := cli.LoadDocument(cfg.ResumeFile, log)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	return rendering.WriteText(cmd.OutOrStdout(), doc)
}

func main() {
	cli.Main(newRootCmd())
}

// Package main implements fill_resume, which prompts for missing résumé data and rewrites the document.
package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-helper/internal/cli"
	"github.com/jonathan/resume-helper/internal/document"
	"github.com/jonathan/resume-helper/internal/fill"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var opts cli.Options

	cmd := &cobra.Command{
		Use:           "fill_resume",
		Short:         "Interactively fill in missing résumé data",
		Long:          "Prompts for contact details, work experience and education, then writes the updated résumé back to the same JSON file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFill(cmd, &opts)
		},
	}
	opts.BindFlags(cmd)
	return cmd
}

func runFill(cmd *cobra.Command, opts *cli.Options) error {
	cfg, err := opts.Resolve()
	if err != nil {
		return err
	}
	log := cli.Logger(cmd, cfg)

	doc, err := cli.LoadDocument(cfg.ResumeFile, log)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	out := cmd.OutOrStdout()
	filler := fill.New(cmd.InOrStdin(), out, fill.WithLogger(log))
	if err := filler.Run(doc); err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "\n=== Saving ===")
	if err := document.Save(cfg.ResumeFile, doc); err != nil {
		return err
	}
	log.Debug().Str("path", cfg.ResumeFile).Msg("saved résumé document")

	_, _ = fmt.Fprintln(out, "✓ Resume updated successfully!")
	_, _ = fmt.Fprintln(out, "\nRun 'check_resume' to verify all fields are complete.")
	return nil
}

func main() {
	cmd := newRootCmd()
	// cli.Main exits the process, so the listener is never stopped
	cli.HandleInterrupt(cmd.ErrOrStderr(), os.Exit)
	cli.Main(cmd)
}

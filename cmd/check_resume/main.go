// Package main implements check_resume, which lists the empty fields of a résumé document.
package main

import (
	"fmt"

	"github.com/jonathan/resume-helper/internal/cli"
	"github.com/jonathan/resume-helper/internal/observability"
	"github.com/jonathan/resume-helper/internal/scan"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var opts cli.Options

	cmd := &cobra.Command{
		Use:           "check_resume",
		Short:         "Show empty or incomplete fields in the résumé",
		Long:          "Walks the résumé JSON document and lists every field that is an empty string or an empty array, so you know what still needs to be filled in.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCheck(cmd, &opts)
		},
	}
	opts.BindFlags(cmd)
	return cmd
}

func runCheck(cmd *cobra.Command, opts *cli.Options) error {
	cfg, err := opts.Resolve()
	if err != nil {
		return err
	}
	log := cli.Logger(cmd, cfg)

	doc, err := cli.LoadDocument(cfg.ResumeFile, log)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	fields := scan.EmptyFields(doc)
	log.Debug().Int("empty_fields", len(fields)).Msg("scan complete")

	printer := observability.NewPrinter(cmd.OutOrStdout())
	if len(fields) == 0 {
		printer.PrintAllClear()
		return nil
	}
	printer.PrintEmptyFields(fields, cfg.ProfileURL)
	return nil
}

func main() {
	cli.Main(newRootCmd())
}

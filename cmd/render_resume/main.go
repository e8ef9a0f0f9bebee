// Package main implements render_resume, which renders a résumé document as a themed HTML page.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-helper/internal/cli"
	"github.com/jonathan/resume-helper/internal/rendering"
	"github.com/spf13/cobra"
)

// stdoutPath makes --out write the page to standard output
const stdoutPath = "-"

type renderOptions struct {
	cli.Options
	TemplateFile string
	OutputFile   string
}

func newRootCmd() *cobra.Command {
	var opts renderOptions

	cmd := &cobra.Command{
		Use:           "render_resume",
		Short:         "Render the résumé as a themed HTML page",
		Long:          "Renders the résumé JSON document through an HTML theme. The built-in theme is used unless --template names another html/template file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, &opts)
		},
	}
	opts.BindFlags(cmd)
	cmd.Flags().StringVarP(&opts.TemplateFile, "template", "t", "", "Path to an HTML theme template (default: built-in theme)")
	cmd.Flags().StringVarP(&opts.OutputFile, "out", "o", "resume.html", "Path to the output HTML file, or - for stdout")
	return cmd
}

func runRender(cmd *cobra.Command, opts *renderOptions) error {
	cfg, err := opts.Resolve()
	if err != nil {
		return err
	}
	log := cli.Logger(cmd, cfg)

	doc, err := cli.LoadDocument(cfg.ResumeFile, log)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	resume, skipped := rendering.DecodeResume(doc)
	if len(skipped) > 0 {
		log.Debug().Strs("paths", skipped).Msg("skipped malformed résumé entries")
	}

	page, err := rendering.RenderHTML(resume, opts.TemplateFile)
	if err != nil {
		return fmt.Errorf("failed to render resume: %w", err)
	}

	if opts.OutputFile == stdoutPath {
		if _, err := fmt.Fprint(cmd.OutOrStdout(), page); err != nil {
			return &rendering.RenderError{Message: "failed to write page", Cause: err}
		}
		return nil
	}

	if dir := filepath.Dir(opts.OutputFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &rendering.RenderError{Message: "failed to create output directory", Cause: err}
		}
	}
	if err := os.WriteFile(opts.OutputFile, []byte(page), 0644); err != nil {
		return &rendering.RenderError{Message: "failed to write output file", Cause: err}
	}
	log.Debug().Str("path", opts.OutputFile).Int("bytes", len(page)).Msg("wrote rendered résumé")

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Resume rendered successfully to: %s\n", opts.OutputFile)
	return nil
}

func main() {
	cli.Main(newRootCmd())
}

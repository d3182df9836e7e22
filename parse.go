package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/phobologic/acfgen/internal/pipeline"
)

func newParseCmd(a *app) *cobra.Command {
	var (
		component string
		dir       string
		dest      string
		ext       string
		dryRun    bool
	)

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Generate the field group for one component",
		Example: `  acfgen parse -c HeroBanner
  acfgen parse -c HeroBanner --dir src/components --dest wp-content/themes/site/acf-json
  acfgen parse -c HeroBanner --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(component) == "" {
				return usageError{errors.New(`required flag "component" not set`)}
			}

			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}

			opts := pipeline.Options{
				Component: component,
				Dir:       stringFlag(cmd, "dir", dir, cfg.Dir),
				Dest:      stringFlag(cmd, "dest", dest, cfg.Dest),
				Ext:       stringFlag(cmd, "ext", ext, cfg.Ext),
				DryRun:    dryRun,
			}
			if !strings.HasPrefix(opts.Ext, ".") {
				return usageError{fmt.Errorf("--ext %q must start with a dot", opts.Ext)}
			}

			log := a.logger()
			res, err := pipeline.Run(cmd.Context(), opts, log)
			if err != nil {
				log.V(1).Info("conversion failed", "component", component, "error", err.Error())
				return err
			}

			if dryRun {
				_, err := cmd.OutOrStdout().Write(res.JSON)
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s (%d fields)\n", res.Path, len(res.Group.Fields))
			return nil
		},
	}

	cmd.Flags().StringVarP(&component, "component", "c", "", "Component name, e.g. HeroBanner (required)")
	cmd.Flags().StringVar(&dir, "dir", ".", "Directory containing the component source")
	cmd.Flags().StringVar(&dest, "dest", "./acf-json", "Directory to write the field group to")
	cmd.Flags().StringVar(&ext, "ext", ".vue", "Component source file extension")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the field group instead of writing it")

	return cmd
}

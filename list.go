package main

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/phobologic/acfgen/internal/discover"
	"github.com/phobologic/acfgen/internal/group"
	"github.com/phobologic/acfgen/internal/model"
	"github.com/phobologic/acfgen/internal/parse"
	"github.com/phobologic/acfgen/internal/toon"
)

func newListCmd(a *app) *cobra.Command {
	var (
		dir    string
		ext    string
		format string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List components and the field groups they map to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "table" && format != "toon" {
				return usageError{fmt.Errorf("unknown --format %q (want table or toon)", format)}
			}

			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			root := stringFlag(cmd, "dir", dir, cfg.Dir)
			srcExt := stringFlag(cmd, "ext", ext, cfg.Ext)

			log := a.logger()
			entries, err := discover.Files(root, []string{srcExt})
			if err != nil {
				return fmt.Errorf("discovering components in %s: %w", root, err)
			}
			log.V(1).Info("discovered components", "dir", root, "count", len(entries))

			comps := make([]model.Component, 0, len(entries))
			for _, e := range entries {
				comp, err := parse.Component(cmd.Context(), filepath.Join(root, e.Path))
				if err != nil {
					log.Error(err, "skipping component", "path", e.Path)
					continue
				}
				comp.Path = e.Path
				comps = append(comps, comp)
			}

			out := cmd.OutOrStdout()
			if format == "toon" {
				_, err := fmt.Fprintln(out, toon.Encode(root, comps))
				return err
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "PATH\tCOMPONENT\tPROPS\tGROUP")
			for _, c := range comps {
				fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", c.Path, c.Name, len(c.Props), group.Key(c.Name))
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Directory to search")
	cmd.Flags().StringVar(&ext, "ext", ".vue", "Component source file extension")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or toon")

	return cmd
}

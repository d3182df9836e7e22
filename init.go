package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/phobologic/acfgen/internal/config"
)

const configHeader = `# acfgen configuration.
#
# dir:  directory holding component sources (parse --dir)
# dest: directory field group JSON is written to (parse --dest)
# ext:  component source extension (parse --ext)
#
# Command line flags override these values.
`

func newInitCmd(a *app) *cobra.Command {
	var (
		dir    string
		dest   string
		ext    string
		dryRun bool
		force  bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a starter config file",
		Long: `Write a starter acfgen config file. path defaults to the --config value
(./.acfgen.yaml). An existing file is left alone unless --force is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			cfg.Dir = stringFlag(cmd, "dir", dir, cfg.Dir)
			cfg.Dest = stringFlag(cmd, "dest", dest, cfg.Dest)
			cfg.Ext = stringFlag(cmd, "ext", ext, cfg.Ext)
			if err := cfg.Validate(); err != nil {
				return usageError{err}
			}

			content, err := renderConfig(cfg)
			if err != nil {
				return err
			}

			if dryRun {
				_, err := fmt.Fprint(cmd.OutOrStdout(), content)
				return err
			}

			path := a.configPath
			if len(args) > 0 {
				path = args[0]
			}
			if !force {
				if _, err := os.Stat(path); err == nil {
					return usageError{fmt.Errorf("%s already exists (use --force to overwrite)", path)}
				} else if !errors.Is(err, fs.ErrNotExist) {
					return fmt.Errorf("checking %s: %w", path, err)
				}
			}

			if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}

			a.logger().Info("wrote config", "path", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "Component source directory to record")
	cmd.Flags().StringVar(&dest, "dest", "./acf-json", "Output directory to record")
	cmd.Flags().StringVar(&ext, "ext", ".vue", "Component extension to record")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the config instead of writing it")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")

	return cmd
}

// renderConfig returns the commented YAML document for cfg. It is a pure
// function for easy testing.
func renderConfig(cfg config.Config) (string, error) {
	body, err := cfg.ToYAML()
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return configHeader + "\n" + string(body), nil
}

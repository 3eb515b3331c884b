package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/arena/gotofix/internal/domain"
)

const configFileName = ".gotofix.yaml"

func newInitCmd() *cobra.Command {
	var (
		dir   string
		glob  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .gotofix.yaml configuration file",
		Long: "Create a .gotofix.yaml pointing gotofix at a test directory.\n" +
			"The file is only read when passed with --config.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, configFileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", configFileName)
				}
			}

			cfg := domain.ProjectConfig{Dir: dir, Glob: glob}
			if err := cfg.Validate(); err != nil {
				return err
			}

			content, err := generateConfig(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "./test", "Directory holding the spec files")
	cmd.Flags().StringVar(&glob, "glob", domain.DefaultGlob, "File name filter inside the directory")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .gotofix.yaml")

	return cmd
}

func generateConfig(cfg domain.ProjectConfig) (string, error) {
	body, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return "# gotofix configuration\n# Relative dir paths resolve against the working directory.\n\n" + string(body), nil
}

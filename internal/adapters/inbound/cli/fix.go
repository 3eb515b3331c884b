package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arena/gotofix/internal/adapters/outbound/config"
	"github.com/arena/gotofix/internal/adapters/outbound/filestore"
	"github.com/arena/gotofix/internal/adapters/outbound/gitinfo"
	"github.com/arena/gotofix/internal/adapters/outbound/logging"
	"github.com/arena/gotofix/internal/adapters/outbound/scanner"
	"github.com/arena/gotofix/internal/adapters/outbound/tui"
	"github.com/arena/gotofix/internal/application"
	"github.com/arena/gotofix/internal/domain"
	"github.com/arena/gotofix/internal/domain/rewrite"
)

func newFixCmd() *cobra.Command {
	var (
		glob       string
		configPath string
		dryRun     bool
		showDiff   bool
		jsonOutput bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "gotofix [dir]",
		Short: "Move page.goto ahead of installHeadlessWallet in spec files",
		Long: "Scan a directory of Playwright spec files and, wherever installHeadlessWallet(...) is\n" +
			"immediately followed by page.goto(...), swap the two statements so navigation runs first.\n" +
			"Matching files are rewritten in place. No backup is made.",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			var dirArg string
			if len(args) > 0 {
				dirArg = args[0]
			}
			dir, resolvedGlob := cfg.Resolve(dirArg, glob)
			if err := (domain.ProjectConfig{Dir: dir, Glob: resolvedGlob}).Validate(); err != nil {
				return fmt.Errorf("invalid arguments: %w", err)
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			svc := application.NewFixService(scanner.New(), filestore.New(), gitinfo.New(), rewrite.Default(), logger)
			opts := domain.FixOptions{
				Dir:         absDir,
				Glob:        resolvedGlob,
				DryRun:      dryRun,
				KeepContent: showDiff,
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				report, err := svc.Run(cmd.Context(), opts, nil)
				if err != nil {
					return err
				}
				for i := range report.Files {
					report.Files[i].Diff = tui.UnifiedDiff(report.Files[i])
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			printer := tui.NewPrinter(out, dryRun, showDiff)
			report, err := svc.Run(cmd.Context(), opts, printer)
			if err != nil {
				return err
			}
			return printer.Summary(report)
		},
	}

	cmd.Flags().StringVar(&glob, "glob", "", "File name filter inside the directory (default \"*.spec.js\")")
	cmd.Flags().StringVar(&configPath, "config", "", "Config file, or a directory holding .gotofix.yaml (not read unless set)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report files that would change without writing them")
	cmd.Flags().BoolVar(&showDiff, "diff", false, "Print a unified diff for each rewritten file")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the run report as JSON")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")

	return cmd
}

// loadConfig reads configuration only when asked to. An empty path gives
// the defaults, a directory is searched for .gotofix.yaml, anything else
// is read as the config file itself.
func loadConfig(path string) (domain.ProjectConfig, error) {
	if path == "" {
		return domain.DefaultConfig(), nil
	}

	loader := config.New()
	load := loader.LoadFile
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		load = loader.Load
	}
	cfg, err := load(path)
	if err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

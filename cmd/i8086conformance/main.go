// Command i8086conformance runs the 8086 conformance fixture corpus
// against the core and reports pass/fail counts.
package main

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/dosvm/i8086/buildinfo"
	"github.com/dosvm/i8086/conformance"
	"github.com/dosvm/i8086/config"
	"github.com/dosvm/i8086/log"
)

// Set via -ldflags at build time.
var (
	version = "dev"
	commit  = ""
	date    = ""
)

// settings holds the CLI's defaults; an INI config file can supply any
// of these so routine local runs need no flags.
type settings struct {
	FixtureDir string `config:"conformance.fixture_dir,default=."`
	Workers    int    `config:"conformance.workers,default=0"`
	LogLevel   string `config:"conformance.log_level,default=info"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "i8086conformance",
		Short:   "Run the 8086 instruction conformance fixture suite",
		Version: buildinfo.Version(version, commit, date),
	}

	var caseIndex int
	var workers int
	var configPath string

	runCmd := &cobra.Command{
		Use:   "run [path]",
		Short: "Run fixture files under a directory or a single fixture file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := settings{FixtureDir: ".", Workers: 0, LogLevel: "info"}
			if configPath != "" {
				if err := config.Load(configPath, &cfg); err != nil {
					return fmt.Errorf("loading config %s: %w", configPath, err)
				}
			}

			path := cfg.FixtureDir
			if len(args) == 1 {
				path = args[0]
			}

			if cmd.Flags().Changed("workers") {
				cfg.Workers = workers
			}

			logger := log.New()
			logger.SetLevel(parseLevel(cfg.LogLevel))

			return runConformance(cmd.Context(), logger, path, caseIndex, cfg.Workers)
		},
	}
	runCmd.Flags().IntVar(&caseIndex, "case", -1, "Run only the fixture case at this index per file (-1 = all)")
	runCmd.Flags().IntVar(&workers, "workers", 0, "Number of concurrent fixture-file workers (0 = GOMAXPROCS)")
	runCmd.Flags().StringVar(&configPath, "config", "", "Optional INI config file with [conformance] defaults")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConformance(ctx context.Context, logger *log.Logger, path string, caseIndex, workers int) error {
	files, err := conformance.DiscoverFixtureFiles(path)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no fixture files found under %s", path)
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	runner := conformance.NewRunner()
	runner.Workers = workers
	runner.Case = caseIndex
	runner.Logger = logger

	report, err := runner.RunFiles(ctx, files)
	if err != nil {
		return err
	}

	fmt.Printf("passed: %d, failed: %d\n", report.Passed, report.Failed)
	for _, m := range report.Mismatches {
		fmt.Println(m.String())
	}
	if report.Dropped() > 0 {
		fmt.Printf("... %d further mismatch(es) omitted\n", report.Dropped())
	}

	if !report.OK() {
		return fmt.Errorf("%d fixture case(s) failed", report.Failed)
	}

	return nil
}

func parseLevel(s string) log.Level {
	switch s {
	case "trace":
		return log.TraceLevel
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

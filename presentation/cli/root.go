// Package cli defines the uiverify command line.
//
// Commands
//
//   - run (default)  Log in to the payment app and capture the login,
//     dashboard and pay pages
//   - install        Download the playwright driver and browser engine
//
// Targets and credentials are fixed; flags only tune how the browser runs
// and where results go.
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"uiverify/infrastructure/config"
)

type app struct {
	cfg    *config.Config
	logger *logrus.Logger
}

type flagValues struct {
	driver    string
	engine    string
	headless  bool
	outputDir string
	report    string
	logLevel  string
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	return cmd.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&app{})
}

func newRootCommand(a *app) *cobra.Command {
	flags := &flagValues{}

	root := &cobra.Command{
		Use:           "uiverify",
		Short:         "Capture login, dashboard and pay page screenshots of the payment app",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			flags.apply(cmd, cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = cfg.NewLogger()
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context())
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.driver, "driver", config.DriverPlaywright, "browser driver: playwright, chromedp or selenium")
	pf.StringVar(&flags.engine, "engine", "chromium", "playwright engine: chromium, firefox or webkit")
	pf.BoolVar(&flags.headless, "headless", true, "run the browser without a window")
	pf.StringVar(&flags.outputDir, "output-dir", "verification", "directory for the screenshots")
	pf.StringVar(&flags.report, "report", "", "write a YAML run report to this path")
	pf.StringVar(&flags.logLevel, "log-level", "info", "log level")

	root.AddCommand(runCmd(a), installCmd(a))
	return root
}

// apply overrides cfg with the flags set on the command line.
func (f *flagValues) apply(cmd *cobra.Command, cfg *config.Config) {
	set := cmd.Flags().Changed
	if set("driver") {
		cfg.Driver = f.driver
	}
	if set("engine") {
		cfg.Engine = f.engine
	}
	if set("headless") {
		cfg.Headless = f.headless
	}
	if set("output-dir") {
		cfg.OutputDir = f.outputDir
	}
	if set("report") {
		cfg.ReportPath = f.report
	}
	if set("log-level") {
		cfg.LogLevel = f.logLevel
	}
}

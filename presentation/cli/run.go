package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"uiverify/application/verifier"
	"uiverify/infrastructure/browser"
	"uiverify/infrastructure/security"
	"uiverify/infrastructure/storage"
)

func runCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the verification and write three screenshots",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd.Context())
		},
	}
}

func (a *app) run(ctx context.Context) error {
	b, err := browser.New(a.cfg, a.logger)
	if err != nil {
		return err
	}

	guard := security.NewStepGuard(verifier.LoginButtonName)
	runner := verifier.NewRunner(b, storage.NewArtifactStore(a.cfg.OutputDir), guard, a.logger)
	report, err := runner.Run(ctx, verifier.DefaultPlan())

	if a.cfg.ReportPath != "" {
		if reportErr := storage.NewReportWriter(a.cfg.ReportPath).WriteReport(report); reportErr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to write report: %w", reportErr))
		} else {
			a.logger.Infof("Report written to %s", a.cfg.ReportPath)
		}
	}

	return err
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"uiverify/infrastructure/browser"
	"uiverify/infrastructure/config"
)

func installCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "install",
		Short: "Download the playwright driver and the configured engine",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.cfg.Driver != config.DriverPlaywright {
				return fmt.Errorf("install only applies to the %s driver", config.DriverPlaywright)
			}
			a.logger.Infof("Installing playwright with %s", a.cfg.Engine)
			if err := browser.InstallPlaywright(a.cfg.Engine); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Playwright is ready.")
			return nil
		},
	}
}

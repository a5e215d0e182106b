package cli

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uiverify/infrastructure/config"
)

func TestRootCommands(t *testing.T) {
	root := NewRootCommand()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "run")
	assert.Contains(t, names, "install")

	for _, flag := range []string{"driver", "engine", "headless", "output-dir", "report", "log-level"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestUnknownDriverFailsBeforeLaunch(t *testing.T) {
	chdir(t, t.TempDir())

	err := Execute(context.Background(), []string{"run", "--driver", "puppeteer"})
	assert.ErrorContains(t, err, `unknown driver "puppeteer"`)
}

func TestRunRejectsArguments(t *testing.T) {
	chdir(t, t.TempDir())

	err := Execute(context.Background(), []string{"run", "http://example.com"})
	assert.Error(t, err)
}

func TestInstallRequiresPlaywright(t *testing.T) {
	chdir(t, t.TempDir())

	err := Execute(context.Background(), []string{"install", "--driver", "selenium"})
	assert.ErrorContains(t, err, "only applies to the playwright driver")
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VERIFY_DRIVER", "selenium")
	t.Setenv("VERIFY_OUTPUT_DIR", "from-env")
	t.Setenv("VERIFY_HEADLESS", "true")

	a := &app{}
	root := newRootCommand(a)
	root.AddCommand(&cobra.Command{
		Use:  "probe",
		RunE: func(cmd *cobra.Command, args []string) error { return nil },
	})
	root.SetArgs([]string{"probe", "--driver", "chromedp", "--headless=false", "--report", "out/run.yaml"})

	require.NoError(t, root.Execute())
	require.NotNil(t, a.cfg)
	require.NotNil(t, a.logger)

	assert.Equal(t, config.DriverChromedp, a.cfg.Driver)
	assert.False(t, a.cfg.Headless)
	assert.Equal(t, "from-env", a.cfg.OutputDir)
	assert.Equal(t, "out/run.yaml", a.cfg.ReportPath)
}

func TestEnvironmentWithoutFlags(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("VERIFY_DRIVER", "selenium")
	t.Setenv("LOG_LEVEL", "debug")

	a := &app{}
	root := newRootCommand(a)
	root.AddCommand(&cobra.Command{
		Use:  "probe",
		RunE: func(cmd *cobra.Command, args []string) error { return nil },
	})
	root.SetArgs([]string{"probe"})

	require.NoError(t, root.Execute())
	assert.Equal(t, config.DriverSelenium, a.cfg.Driver)
	assert.Equal(t, "debug", a.cfg.LogLevel)
}

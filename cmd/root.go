package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/nycdb/nycdb/internal/ioconfig"
	"github.com/nycdb/nycdb/internal/iofs"
	"github.com/nycdb/nycdb/internal/iologger"
	"github.com/nycdb/nycdb/internal/ioregistry"
	"github.com/nycdb/nycdb/internal/ioshell"
	app "github.com/nycdb/nycdb/pkg"
	"github.com/nycdb/nycdb/pkg/config"
	"github.com/nycdb/nycdb/pkg/dispatch"
	"github.com/nycdb/nycdb/pkg/operation"
	"github.com/spf13/cobra"
)

var (
	homeDir string

	// exitCode is the status the process ends with when no error occurred.
	exitCode int
)

func getRootCmd() *cobra.Command {
	rootCmd, _ := newRootCmd()
	return rootCmd
}

// newRootCmd creates the root command together with the values its
// flags are bound to.
func newRootCmd() (*cobra.Command, *flagValues) {
	fv := &flagValues{}
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "nycdb",
		Short:   "NYCDB downloads New York City datasets and loads them into PostgreSQL",
		Long: `NYCDB downloads New York City open datasets and loads them into a
PostgreSQL database. Every run performs one operation on one dataset
(or on all of them for --verify-all).

If several operation flags are given, only one runs, in this order:
  --list-datasets, --verify, --verify-all, --download, --load,
  --reload, --dump, --dbshell

Connection settings precedence (highest to lowest):
  1. Command line flags (-U, -P, -H, -D, --port)
  2. Config file section (--config-path, --config-section)
  3. Environment variables (also read from .env)
  4. Built-in defaults

Environment variables:
  NYCDB_POSTGRES_USER      (default: nycdb)
  NYCDB_POSTGRES_PASSWORD  (default: nycdb)
  NYCDB_POSTGRES_HOST      (default: 127.0.0.1)
  NYCDB_POSTGRES_DB        (default: nycdb)
  NYCDB_POSTGRES_PORT      (default: 5432)

Exit codes: 0 on success, 1 if verification or an operation failed,
psql exit code for --dbshell.`,
		PersistentPreRunE: bootstrap,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, fv)
		},
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Remove the automatic "nycdb version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for nycdb")
	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		c.PrintErrln("Error:", err)
		c.PrintErrln(c.UsageString())
		return err
	})

	addFlags(rootCmd, fv)
	return rootCmd, fv
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with defaults, it is reconfigured once
	// the configuration is resolved.
	if err = iologger.Init(config.LogDir(homeDir), config.New().Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDatasetsFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration files are ready",
		"dir", config.ConfigDir(homeDir))
	return nil
}

func runRoot(cmd *cobra.Command, fv *flagValues) error {
	cfg, err := resolveConfig(cmd, fv, homeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Reconfigure logging with user's settings
	if err = iologger.Reconfigure(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	slog.Info("Configuration resolved",
		"database", cfg.Database.Redacted(),
		"root_dir", cfg.RootDir,
		"config_path", cfg.ConfigPath,
		"config_section", cfg.ConfigSection,
	)

	req := operation.Select(fv.ops)
	if req.Kind == operation.None {
		slog.Info("No operation selected")
		return nil
	}

	reg, err := ioregistry.New(cfg.HomeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	d := dispatch.New(cfg, reg, ioshell.New(), cmd.OutOrStdout())
	exitCode, err = d.Run(context.Background(), req)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	return nil
}

// resolveConfig merges environment, config file and command line layers.
// The config file is read only if --config-path or --config-section
// is given.
func resolveConfig(
	cmd *cobra.Command,
	fv *flagValues,
	home string,
) (*config.Config, error) {
	cliOpts := cliOptions(cmd, fv)
	cliOpts = append(cliOpts, config.OptHomeDir(home))

	var fileOpts []config.Option
	if fv.configPath != "" || fv.configSection != "" {
		var err error
		fileOpts, err = ioconfig.LoadFile(fv.configPath, fv.configSection, home)
		if err != nil {
			return nil, err
		}
	}

	lookup := ioconfig.EnvLookup(".env")
	return config.Resolve(lookup, fileOpts, cliOpts), nil
}

// Execute runs the root command and exits with the resulting status.
// This is called by main.main().
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(dispatch.ExitFailed)
	}
	os.Exit(exitCode)
}

package cmd

import (
	"github.com/nycdb/nycdb/pkg/config"
	"github.com/nycdb/nycdb/pkg/operation"
	"github.com/spf13/cobra"
)

// flagValues collects values of the root command flags.
type flagValues struct {
	ops operation.Flags

	user     string
	password string
	host     string
	database string
	port     string

	rootDir       string
	hideProgress  bool
	configSection string
	configPath    string
}

func addFlags(cmd *cobra.Command, fv *flagValues) {
	f := cmd.Flags()

	f.StringVar(&fv.ops.Download, "download", "",
		"download files of a dataset")
	f.StringVar(&fv.ops.Load, "load", "",
		"load a downloaded dataset into the database")
	f.StringVar(&fv.ops.Verify, "verify", "",
		"verify row counts of a loaded dataset")
	f.StringVar(&fv.ops.Dump, "dump", "",
		"dump tables of a dataset to <name>.sql")
	f.StringVar(&fv.ops.Reload, "reload", "",
		"drop the tables of a dataset and load it again")
	f.BoolVar(&fv.ops.ListDatasets, "list-datasets", false,
		"list available datasets")
	f.BoolVar(&fv.ops.VerifyAll, "verify-all", false,
		"verify all datasets")
	f.BoolVar(&fv.ops.DBShell, "dbshell", false,
		"start psql connected to the database")

	f.StringVarP(&fv.user, "user", "U", "", "PostgreSQL user")
	f.StringVarP(&fv.password, "password", "P", "", "PostgreSQL password")
	f.StringVarP(&fv.host, "host", "H", "", "PostgreSQL host")
	f.StringVarP(&fv.database, "database", "D", "", "PostgreSQL database")
	f.StringVar(&fv.port, "port", "", "PostgreSQL port")

	f.StringVar(&fv.rootDir, "root-dir", config.DefaultRootDir,
		"directory for downloaded files")
	f.BoolVar(&fv.hideProgress, "hide-progress", false,
		"do not show progress bars")
	f.StringVar(&fv.configSection, "config-section", "",
		"section of the config file to use (default \"nycdb\")")
	f.StringVar(&fv.configPath, "config-path", "",
		"path to the config file (default ~/.config/nycdb/config.yaml)")
}

// cliOptions returns options only for flags given on the command line,
// so that defaults of flags never override lower configuration layers.
func cliOptions(cmd *cobra.Command, fv *flagValues) []config.Option {
	f := cmd.Flags()
	var res []config.Option

	strOpts := []struct {
		flag string
		val  string
		opt  func(string) config.Option
	}{
		{"user", fv.user, config.OptDatabaseUser},
		{"password", fv.password, config.OptDatabasePassword},
		{"host", fv.host, config.OptDatabaseHost},
		{"database", fv.database, config.OptDatabaseDatabase},
		{"port", fv.port, config.OptDatabasePort},
		{"root-dir", fv.rootDir, config.OptRootDir},
		{"config-section", fv.configSection, config.OptConfigSection},
		{"config-path", fv.configPath, config.OptConfigPath},
	}
	for _, v := range strOpts {
		if f.Changed(v.flag) {
			res = append(res, v.opt(v.val))
		}
	}

	if f.Changed("hide-progress") {
		res = append(res, config.OptHideProgress(fv.hideProgress))
	}
	return res
}

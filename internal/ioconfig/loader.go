// Package ioconfig provides I/O operations for loading the configuration
// file and the environment layer.
// This is an impure package that handles file system and environment access.
package ioconfig

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gnames/gn"
	"github.com/nycdb/nycdb/pkg/config"
	"github.com/spf13/viper"
)

// sectionKeys lists string settings a config section may define.
var sectionKeys = []struct {
	key string
	opt func(string) config.Option
}{
	{"user", config.OptDatabaseUser},
	{"password", config.OptDatabasePassword},
	{"host", config.OptDatabaseHost},
	{"database", config.OptDatabaseDatabase},
	{"port", config.OptDatabasePort},
	{"root_dir", config.OptRootDir},
}

// LoadFile reads one section of a configuration file and returns options
// for the settings it defines. Settings missing from the section produce
// no options, so lower layers keep their values.
//
// If path is empty, ~/.config/nycdb/config.yaml is used and a missing
// file is only a warning. An explicit path that cannot be read is an
// error. If section is empty, the "nycdb" section is read.
//
// The file format is inferred from the extension (yaml, json, toml);
// files without extension are read as YAML. A top-level "log" table
// applies to every section.
func LoadFile(path, section, homeDir string) ([]config.Option, error) {
	explicit := path != ""
	if !explicit {
		path = config.ConfigFilePath(homeDir)
	}
	if section == "" {
		section = config.DefaultConfigSection
	}

	if _, err := os.Stat(path); err != nil {
		if explicit {
			return nil, ConfigFileError(path, err)
		}
		gn.Warn("Config file <em>%s</em> not found, ignoring", path)
		return nil, nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		return nil, ConfigFileError(path, err)
	}

	res := logOptions(v)

	sub := v.Sub(section)
	if sub == nil {
		gn.Warn(
			"Section <em>%s</em> not found in <em>%s</em>, ignoring",
			section, path,
		)
		return res, nil
	}
	opts := sectionOptions(sub)
	slog.Info("Config file section loaded",
		"path", path,
		"section", section,
		"settings", len(opts),
	)
	return append(res, opts...), nil
}

func sectionOptions(v *viper.Viper) []config.Option {
	var res []config.Option
	for _, k := range sectionKeys {
		if v.IsSet(k.key) {
			res = append(res, k.opt(v.GetString(k.key)))
		}
	}
	if v.IsSet("hide_progress") {
		res = append(res, config.OptHideProgress(v.GetBool("hide_progress")))
	}
	return res
}

func logOptions(v *viper.Viper) []config.Option {
	var res []config.Option
	if v.IsSet("log.level") {
		res = append(res, config.OptLogLevel(v.GetString("log.level")))
	}
	if v.IsSet("log.format") {
		res = append(res, config.OptLogFormat(v.GetString("log.format")))
	}
	if v.IsSet("log.destination") {
		res = append(res,
			config.OptLogDestination(v.GetString("log.destination")))
	}
	return res
}

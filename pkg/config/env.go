package config

import (
	"strings"
)

// Environment variables that supply connection defaults.
const (
	EnvUser     = "NYCDB_POSTGRES_USER"
	EnvPassword = "NYCDB_POSTGRES_PASSWORD"
	EnvHost     = "NYCDB_POSTGRES_HOST"
	EnvDatabase = "NYCDB_POSTGRES_DB"
	EnvPort     = "NYCDB_POSTGRES_PORT"
)

// Lookup reads one environment variable. It has the same contract as
// os.LookupEnv and is injected so that resolution stays free of global
// state.
type Lookup func(key string) (string, bool)

// EnvOptions converts NYCDB_POSTGRES_* variables into options.
// Variables that are unset or blank produce no option, so the literal
// default stays in place for that field.
func EnvOptions(lookup Lookup) []Option {
	if lookup == nil {
		return nil
	}

	envs := []struct {
		key string
		opt func(string) Option
	}{
		{EnvUser, OptDatabaseUser},
		{EnvPassword, OptDatabasePassword},
		{EnvHost, OptDatabaseHost},
		{EnvDatabase, OptDatabaseDatabase},
		{EnvPort, OptDatabasePort},
	}

	var res []Option
	for _, v := range envs {
		val, ok := lookup(v.key)
		if !ok || strings.TrimSpace(val) == "" {
			continue
		}
		res = append(res, v.opt(val))
	}
	return res
}

// Defaults builds the environment layer: literal defaults overridden
// by whatever the lookup provides.
func Defaults(lookup Lookup) *Config {
	res := New()
	res.Update(EnvOptions(lookup))
	return res
}

// Resolve merges the three configuration layers. File options override
// the environment layer, CLI options override both. Each option touches
// only its own field, so partial overrides leave other fields alone.
func Resolve(lookup Lookup, fileOpts, cliOpts []Option) *Config {
	res := Defaults(lookup)
	res.Update(fileOpts)
	res.Update(cliOpts)
	return res
}

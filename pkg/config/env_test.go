package config_test

import (
	"testing"

	"github.com/nycdb/nycdb/pkg/config"
	"github.com/stretchr/testify/assert"
)

func lookupFrom(env map[string]string) config.Lookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	t.Run("literal defaults when env is empty", func(t *testing.T) {
		cfg := config.Defaults(lookupFrom(nil))
		assert.Equal(t, config.New().Database, cfg.Database)
	})

	t.Run("nil lookup", func(t *testing.T) {
		cfg := config.Defaults(nil)
		assert.Equal(t, config.New().Database, cfg.Database)
	})

	t.Run("env overrides each field", func(t *testing.T) {
		cfg := config.Defaults(lookupFrom(map[string]string{
			config.EnvUser:     "u",
			config.EnvPassword: "p",
			config.EnvHost:     "h",
			config.EnvDatabase: "d",
			config.EnvPort:     "1",
		}))
		assert.Equal(t, config.DatabaseConfig{
			User: "u", Password: "p", Host: "h", Database: "d", Port: "1",
		}, cfg.Database)
	})

	t.Run("blank env falls back to literal", func(t *testing.T) {
		cfg := config.Defaults(lookupFrom(map[string]string{
			config.EnvHost: "  ",
			config.EnvPort: "",
		}))
		assert.Equal(t, "127.0.0.1", cfg.Database.Host)
		assert.Equal(t, "5432", cfg.Database.Port)
	})
}

func TestResolveHostExample(t *testing.T) {
	env := lookupFrom(nil)
	file := []config.Option{config.OptDatabaseHost("db.internal")}
	cli := []config.Option{config.OptDatabaseHost("10.0.0.5")}

	assert.Equal(t, "10.0.0.5",
		config.Resolve(env, file, cli).Database.Host)
	assert.Equal(t, "db.internal",
		config.Resolve(env, file, nil).Database.Host)
	assert.Equal(t, "127.0.0.1",
		config.Resolve(env, nil, nil).Database.Host)
}

// TestResolvePrecedence checks CLI > file > env > literal for every
// connection field and every combination of present layers.
func TestResolvePrecedence(t *testing.T) {
	fields := []struct {
		name string
		env  string
		opt  func(string) config.Option
		get  func(*config.Config) string
		def  string
	}{
		{"user", config.EnvUser, config.OptDatabaseUser,
			func(c *config.Config) string { return c.Database.User }, "nycdb"},
		{"password", config.EnvPassword, config.OptDatabasePassword,
			func(c *config.Config) string { return c.Database.Password }, "nycdb"},
		{"host", config.EnvHost, config.OptDatabaseHost,
			func(c *config.Config) string { return c.Database.Host }, "127.0.0.1"},
		{"database", config.EnvDatabase, config.OptDatabaseDatabase,
			func(c *config.Config) string { return c.Database.Database }, "nycdb"},
		{"port", config.EnvPort, config.OptDatabasePort,
			func(c *config.Config) string { return c.Database.Port }, "5432"},
	}

	for _, f := range fields {
		for mask := range 8 {
			hasEnv, hasFile, hasCLI := mask&1 != 0, mask&2 != 0, mask&4 != 0

			env := map[string]string{}
			var fileOpts, cliOpts []config.Option
			exp := f.def
			if hasEnv {
				env[f.env] = "env-" + f.name
				exp = "env-" + f.name
			}
			if hasFile {
				fileOpts = append(fileOpts, f.opt("file-"+f.name))
				exp = "file-" + f.name
			}
			if hasCLI {
				cliOpts = append(cliOpts, f.opt("cli-"+f.name))
				exp = "cli-" + f.name
			}

			cfg := config.Resolve(lookupFrom(env), fileOpts, cliOpts)
			assert.Equal(t, exp, f.get(cfg),
				"%s env=%v file=%v cli=%v", f.name, hasEnv, hasFile, hasCLI)
		}
	}
}

func TestResolvePartialOverride(t *testing.T) {
	env := lookupFrom(map[string]string{
		config.EnvUser:     "envuser",
		config.EnvPassword: "envpass",
	})
	file := []config.Option{config.OptDatabaseDatabase("filedb")}
	cli := []config.Option{config.OptDatabaseHost("clihost")}

	cfg := config.Resolve(env, file, cli)
	assert.Equal(t, config.DatabaseConfig{
		User:     "envuser",
		Password: "envpass",
		Host:     "clihost",
		Database: "filedb",
		Port:     "5432",
	}, cfg.Database)
	assert.Equal(t, "./data", cfg.RootDir)
}

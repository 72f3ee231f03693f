package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/nycdb/nycdb/pkg/config"
	"github.com/nycdb/nycdb/pkg/operation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetRootCmd_Exists verifies getRootCmd returns
// a valid command.
func TestGetRootCmd_Exists(t *testing.T) {
	cmd := getRootCmd()
	require.NotNil(t, cmd, "Root command should exist")
	assert.Equal(t, "nycdb", cmd.Use,
		"Command name should be nycdb")
}

// TestGetRootCmd_VersionFormat verifies version
// output format.
func TestGetRootCmd_VersionFormat(t *testing.T) {
	for _, flag := range []string{"--version", "-V"} {
		cmd := getRootCmd()
		cmd.Version = "version: v1.2.3\nbuild:   abc123"

		buf := new(bytes.Buffer)
		cmd.SetOut(buf)
		cmd.SetArgs([]string{flag})

		err := cmd.Execute()
		require.NoError(t, err)

		output := buf.String()
		assert.Contains(t, output, "v1.2.3", flag)
		assert.Contains(t, output, "abc123", flag)
	}
}

// TestGetRootCmd_HelpText verifies help text content.
func TestGetRootCmd_HelpText(t *testing.T) {
	cmd := getRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	for _, s := range []string{
		"nycdb", "PostgreSQL", "NYCDB_POSTGRES_HOST",
		"--verify-all", "--list-datasets", "--dbshell", "--root-dir",
	} {
		assert.Contains(t, helpText, s)
	}
}

// TestFlags verifies names, shorthands and defaults of flags.
func TestFlags(t *testing.T) {
	cmd := getRootCmd()
	f := cmd.Flags()

	shorthands := map[string]string{
		"user": "U", "password": "P", "host": "H", "database": "D",
		"version": "V",
	}
	for name, short := range shorthands {
		flag := f.Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, short, flag.Shorthand, name)
	}

	for _, name := range []string{
		"download", "load", "verify", "dump", "reload",
		"list-datasets", "verify-all", "dbshell", "port",
		"hide-progress", "config-section", "config-path",
	} {
		assert.NotNil(t, f.Lookup(name), name)
	}

	assert.Equal(t, "./data", f.Lookup("root-dir").DefValue)
}

// TestCliOptions_OnlyChanged verifies that only given flags become
// options.
func TestCliOptions_OnlyChanged(t *testing.T) {
	cmd, fv := newRootCmd()

	require.NoError(t, cmd.ParseFlags([]string{"-H", "10.0.0.5"}))
	opts := cliOptions(cmd, fv)
	assert.Len(t, opts, 1)

	cfg := config.New()
	cfg.Database.Host = "db.internal"
	cfg.RootDir = "/srv/data"
	cfg.Update(opts)
	assert.Equal(t, "10.0.0.5", cfg.Database.Host)
	assert.Equal(t, "/srv/data", cfg.RootDir,
		"flag default does not override other layers")
}

func TestCliOptions_All(t *testing.T) {
	cmd, fv := newRootCmd()

	err := cmd.ParseFlags([]string{
		"-U", "u", "-P", "p", "-H", "h", "-D", "d", "--port", "1",
		"--root-dir", "/r", "--hide-progress",
		"--config-section", "s", "--config-path", "/c.yaml",
	})
	require.NoError(t, err)

	cfg := config.New()
	cfg.Update(cliOptions(cmd, fv))
	assert.Equal(t, config.DatabaseConfig{
		User: "u", Password: "p", Host: "h", Database: "d", Port: "1",
	}, cfg.Database)
	assert.Equal(t, "/r", cfg.RootDir)
	assert.True(t, cfg.HideProgress)
	assert.Equal(t, "s", cfg.ConfigSection)
	assert.Equal(t, "/c.yaml", cfg.ConfigPath)
}

// TestOperationFlags verifies flags map to operation requests.
func TestOperationFlags(t *testing.T) {
	tests := []struct {
		msg  string
		args []string
		want operation.Request
	}{
		{"none", nil, operation.Request{Kind: operation.None}},
		{"load", []string{"--load", "pluto"},
			operation.Request{Kind: operation.Load, Dataset: "pluto"}},
		{"priority", []string{"--dbshell", "--dump", "x", "--verify", "y"},
			operation.Request{Kind: operation.Verify, Dataset: "y"}},
		{"list wins", []string{"--verify-all", "--list-datasets"},
			operation.Request{Kind: operation.ListDatasets}},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cmd, fv := newRootCmd()

			require.NoError(t, cmd.ParseFlags(v.args))
			assert.Equal(t, v.want, operation.Select(fv.ops))
		})
	}
}

// TestResolveConfig_Layers checks CLI > file > environment per field.
func TestResolveConfig_Layers(t *testing.T) {
	t.Setenv(config.EnvUser, "env_user")
	t.Setenv(config.EnvHost, "env-host")

	path := filepath.Join(t.TempDir(), "config.yaml")
	err := os.WriteFile(path,
		[]byte("nycdb:\n  host: db.internal\n  database: file_db\n"), 0644)
	require.NoError(t, err)

	home := t.TempDir()
	tests := []struct {
		msg                  string
		args                 []string
		user, host, database string
	}{
		{"env only", nil, "env_user", "env-host", config.DefaultDatabase},
		{"file", []string{"--config-path", path},
			"env_user", "db.internal", "file_db"},
		{"cli", []string{"--config-path", path, "--host", "10.0.0.5"},
			"env_user", "10.0.0.5", "file_db"},
	}

	for _, v := range tests {
		t.Run(v.msg, func(t *testing.T) {
			cmd, fv := newRootCmd()
			require.NoError(t, cmd.ParseFlags(v.args))

			cfg, err := resolveConfig(cmd, fv, home)
			require.NoError(t, err)
			assert.Equal(t, v.user, cfg.Database.User)
			assert.Equal(t, v.host, cfg.Database.Host)
			assert.Equal(t, v.database, cfg.Database.Database)
			assert.Equal(t, home, cfg.HomeDir)
		})
	}
}

func TestResolveConfig_MissingFile(t *testing.T) {
	cmd, fv := newRootCmd()
	missing := filepath.Join(t.TempDir(), "none.yaml")
	require.NoError(t, cmd.ParseFlags([]string{"--config-path", missing}))

	_, err := resolveConfig(cmd, fv, t.TempDir())
	assert.Error(t, err)
}

package config

import (
	"path/filepath"
)

const (
	DefaultUser     = "nycdb"
	DefaultPassword = "nycdb"
	DefaultHost     = "127.0.0.1"
	DefaultDatabase = "nycdb"
	DefaultPort     = "5432"

	// DefaultRootDir is where dataset files are downloaded to.
	DefaultRootDir = "./data"

	// DefaultConfigSection is read when only --config-path is given.
	DefaultConfigSection = "nycdb"
)

var (
	// AppName is used in generating file system paths.
	AppName = "nycdb"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/nycdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/nycdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/nycdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}

// DatasetsFilePath returns the full path to the datasets.yaml file.
// Returns ~/.config/nycdb/datasets.yaml by default.
func DatasetsFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "datasets.yaml")
}

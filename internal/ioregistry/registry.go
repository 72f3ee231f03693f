// Package ioregistry reads datasets.yaml and creates datasets by name.
package ioregistry

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/nycdb/nycdb/internal/iodataset"
	"github.com/nycdb/nycdb/internal/iofs"
	"github.com/nycdb/nycdb/pkg/config"
	"github.com/nycdb/nycdb/pkg/datasets"
	"github.com/nycdb/nycdb/pkg/nycdb"
	"gopkg.in/yaml.v3"
)

type registry struct {
	defs []datasets.Definition
}

// New loads the registry from ~/.config/nycdb/datasets.yaml. If the file
// does not exist, the built-in registry is used.
func New(homeDir string) (nycdb.Registry, error) {
	path := config.DatasetsFilePath(homeDir)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Warn("Datasets file not found, using built-in registry",
			"path", path)
		return FromYAML([]byte(iofs.DatasetsYAML), "built-in")
	}
	if err != nil {
		return nil, RegistryReadError(path, err)
	}
	return FromYAML(data, path)
}

// FromYAML parses and validates a registry. The source names the origin
// of data in error messages.
func FromYAML(data []byte, source string) (nycdb.Registry, error) {
	var reg datasets.Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, RegistryInvalidError(source, err)
	}
	if err := reg.Validate(); err != nil {
		return nil, RegistryInvalidError(source, err)
	}
	return &registry{defs: reg.Datasets}, nil
}

// Names returns dataset names in the order of the registry file.
func (r *registry) Names() []string {
	res := make([]string, len(r.defs))
	for i := range r.defs {
		res[i] = r.defs[i].Name
	}
	return res
}

// Dataset creates the dataset with the given name.
func (r *registry) Dataset(
	name string,
	cfg *config.Config,
) (nycdb.Dataset, error) {
	for i := range r.defs {
		if r.defs[i].Name == name {
			return iodataset.New(r.defs[i], cfg), nil
		}
	}
	return nil, UnknownDatasetError(name)
}

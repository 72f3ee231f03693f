// Package iodataset implements nycdb.Dataset: downloading dataset files,
// loading them into PostgreSQL, verifying row counts and dumping tables.
// This is an impure I/O package.
package iodataset

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/nycdb/nycdb/internal/iodb"
	"github.com/nycdb/nycdb/internal/ioshell"
	"github.com/nycdb/nycdb/pkg/config"
	"github.com/nycdb/nycdb/pkg/datasets"
	"github.com/nycdb/nycdb/pkg/db"
	"github.com/nycdb/nycdb/pkg/nycdb"
)

// Dumper writes SQL dumps of tables.
type Dumper interface {
	Dump(
		ctx context.Context,
		db config.DatabaseConfig,
		tables []string,
		outPath string,
	) error
}

type dataset struct {
	def datasets.Definition
	cfg *config.Config

	client      *http.Client
	newOperator func() db.Operator
	dumper      Dumper
	out         io.Writer
}

// New creates a Dataset for a validated definition.
func New(def datasets.Definition, cfg *config.Config) nycdb.Dataset {
	return &dataset{
		def:         def,
		cfg:         cfg,
		client:      http.DefaultClient,
		newOperator: iodb.NewPgxOperator,
		dumper:      ioshell.New(),
		out:         os.Stdout,
	}
}

// Name returns the registry name of the dataset.
func (d *dataset) Name() string {
	return d.def.Name
}

// dir is where files of the dataset are kept.
func (d *dataset) dir() string {
	return filepath.Join(d.cfg.RootDir, d.def.Name)
}

// connect returns a connected operator, the caller closes it.
func (d *dataset) connect(ctx context.Context) (db.Operator, error) {
	op := d.newOperator()
	if err := op.Connect(ctx, &d.cfg.Database); err != nil {
		return nil, err
	}
	return op, nil
}

package iodataset

import (
	"context"

	"github.com/gnames/gn"
)

// Dump writes <name>.sql with the dataset tables to the current
// directory.
func (d *dataset) Dump(ctx context.Context) error {
	out := d.def.Name + ".sql"
	if err := d.dumper.Dump(ctx, d.cfg.Database, d.def.TableNames(), out); err != nil {
		return err
	}
	gn.Info("Dumped <em>%s</em> to %s", d.def.Name, out)
	return nil
}

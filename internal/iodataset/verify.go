package iodataset

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/nycdb/nycdb/internal/iohistory"
	"github.com/nycdb/nycdb/pkg/datasets"
)

// Verify compares row counts of the dataset tables with the expected
// counts and prints one line per table. A missing table fails.
func (d *dataset) Verify(ctx context.Context) (bool, error) {
	op, err := d.connect(ctx)
	if err != nil {
		return false, err
	}
	defer op.Close()

	rec, err := iohistory.Latest(ctx, op, d.def.Name)
	if err != nil {
		return false, err
	}
	if rec != nil {
		slog.Info("Last load",
			"dataset", d.def.Name,
			"id", rec.ID,
			"rows", rec.Rows,
			"at", rec.CreatedAt,
		)
	}

	res := true
	for _, t := range d.def.Tables {
		exists, err := op.TableExists(ctx, t.Name)
		if err != nil {
			return false, err
		}
		if !exists {
			fmt.Fprintf(d.out, "%s: table is missing\tFAIL\n", t.Name)
			res = false
			continue
		}

		count, err := op.RowCount(ctx, t.Name)
		if err != nil {
			return false, err
		}
		ok := countMatches(t, count)
		res = res && ok
		fmt.Fprintf(d.out, "%s: %s\n", t.Name, verifyLine(t, count, ok))
		slog.Info("Table verified",
			"table", t.Name,
			"rows", count,
			"expected", t.RowCount,
			"ok", ok,
		)
	}
	return res, nil
}

// countMatches reports if a table passes verification. Without an
// expected count any non-empty table passes.
func countMatches(t datasets.Table, count int64) bool {
	if t.RowCount == 0 {
		return count > 0
	}
	return count == t.RowCount
}

func verifyLine(t datasets.Table, count int64, ok bool) string {
	status := "OK"
	if !ok {
		status = "FAIL"
	}
	if t.RowCount == 0 {
		return fmt.Sprintf("%s rows\t%s", humanize.Comma(count), status)
	}
	return fmt.Sprintf("%s of %s rows\t%s",
		humanize.Comma(count), humanize.Comma(t.RowCount), status)
}

package iodataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nycdb/nycdb/internal/iohistory"
	"github.com/nycdb/nycdb/pkg/datasets"
)

// Load creates the dataset tables and fills them from downloaded files.
// It refuses to touch tables that already exist.
func (d *dataset) Load(ctx context.Context) error {
	return d.load(ctx, false)
}

// Reload drops the dataset tables and loads them again.
func (d *dataset) Reload(ctx context.Context) error {
	return d.load(ctx, true)
}

func (d *dataset) load(ctx context.Context, reload bool) error {
	start := time.Now()

	// Files are located before any table is dropped or created.
	paths := make([]string, len(d.def.Tables))
	for i, t := range d.def.Tables {
		var err error
		if paths[i], err = findFile(d.dir(), t.File); err != nil {
			return err
		}
	}

	op, err := d.connect(ctx)
	if err != nil {
		return err
	}
	defer op.Close()

	tables := d.def.TableNames()
	if reload {
		gn.Info("Dropping tables of <em>%s</em>", d.def.Name)
		if err := op.DropTables(ctx, tables...); err != nil {
			return err
		}
	}

	for _, t := range tables {
		exists, err := op.TableExists(ctx, t)
		if err != nil {
			return err
		}
		if exists {
			return TableExistsError(t, d.def.Name)
		}
	}

	gn.Info("Loading <em>%s</em>", d.def.Name)
	var total int64
	for i, t := range d.def.Tables {
		n, err := d.loadTable(ctx, op.Pool(), t, paths[i])
		if err != nil {
			return err
		}
		slog.Info("Table loaded",
			"table", t.Name,
			"file", paths[i],
			"rows", n,
		)
		total += n
	}

	dur := time.Since(start)
	_, err = iohistory.Record(ctx, op, iohistory.Entry{
		Dataset:  d.def.Name,
		Tables:   tables,
		Rows:     total,
		Duration: dur,
		Reload:   reload,
	})
	if err != nil {
		return err
	}

	gn.Info("Loaded %s rows into %d table(s) in <em>%s</em>",
		humanize.Comma(total), len(tables), gnfmt.TimeString(dur.Seconds()))
	return nil
}

// findFile returns the path of the file matching pattern inside dir.
// If several files match, the last one in lexical order wins.
func findFile(dir, pattern string) (string, error) {
	matches, err := doublestar.Glob(
		os.DirFS(dir), pattern, doublestar.WithFilesOnly(),
	)
	if err != nil {
		return "", DataFileNotFoundError(pattern, dir, err)
	}
	if len(matches) == 0 {
		return "", DataFileNotFoundError(pattern, dir, fs.ErrNotExist)
	}

	slices.Sort(matches)
	selected := matches[len(matches)-1]
	if len(matches) > 1 {
		gn.Warn("Found %d files for <em>%s</em>, using %s",
			len(matches), pattern, selected)
		slog.Warn("Several files match pattern",
			"pattern", pattern,
			"matches", matches,
			"selected", selected,
		)
	}
	return filepath.Join(dir, filepath.FromSlash(selected)), nil
}

// loadTable creates one table and copies the rows of a delimited file
// into it within a single transaction.
func (d *dataset) loadTable(
	ctx context.Context,
	pool *pgxpool.Pool,
	t datasets.Table,
	path string,
) (int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, DataFileReadError(path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, DataFileReadError(path, err)
	}

	bar := newProgress(d.cfg.HideProgress, info.Size(), t.Name+" ")
	defer bar.finish()

	r := newReader(bar.reader(f), t.Comma())
	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return 0, DataFileReadError(path, errors.New("file is empty"))
	}
	if err != nil {
		return 0, DataFileReadError(path, err)
	}
	cols := datasets.ColumnNames(header)

	tx, err := pool.Begin(ctx)
	if err != nil {
		return 0, CreateTableError(t.Name, err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, createTableSQL(t.Name, cols)); err != nil {
		return 0, CreateTableError(t.Name, err)
	}

	src := pgx.CopyFromFunc(func() ([]any, error) {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		if err != nil {
			return nil, err
		}
		return rowValues(rec, len(cols)), nil
	})

	n, err := tx.CopyFrom(ctx, pgx.Identifier{t.Name}, cols, src)
	if err != nil {
		return 0, CopyRowsError(t.Name, path, err)
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, CopyRowsError(t.Name, path, err)
	}
	return n, nil
}

func newReader(r io.Reader, comma rune) *csv.Reader {
	res := csv.NewReader(r)
	res.Comma = comma
	res.FieldsPerRecord = -1
	res.LazyQuotes = true
	res.ReuseRecord = true
	return res
}

// createTableSQL builds a statement creating a table of TEXT columns.
func createTableSQL(table string, cols []string) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		defs[i] = pgx.Identifier{c}.Sanitize() + " TEXT"
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)",
		pgx.Identifier{table}.Sanitize(), strings.Join(defs, ", "))
}

// rowValues fits a record to the number of columns. Missing and empty
// fields become NULL, extra fields are dropped.
func rowValues(rec []string, size int) []any {
	res := make([]any, size)
	for i := range res {
		if i < len(rec) && rec[i] != "" {
			res[i] = rec[i]
		}
	}
	return res
}

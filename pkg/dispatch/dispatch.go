// Package dispatch routes an operation request to datasets or utility
// actions and turns the outcome into a process exit code.
package dispatch

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/gnames/gn"
	"github.com/nycdb/nycdb/pkg/config"
	"github.com/nycdb/nycdb/pkg/nycdb"
	"github.com/nycdb/nycdb/pkg/operation"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitFailed = 1
)

// Dispatcher executes one operation request per Run call.
type Dispatcher struct {
	cfg      *config.Config
	registry nycdb.Registry
	shell    nycdb.ShellRunner
	out      io.Writer
}

// New creates a Dispatcher. List output goes to out.
func New(
	cfg *config.Config,
	reg nycdb.Registry,
	shell nycdb.ShellRunner,
	out io.Writer,
) *Dispatcher {
	return &Dispatcher{cfg: cfg, registry: reg, shell: shell, out: out}
}

// Run executes the request and returns the exit code.
// Errors from download, load, reload and dump are returned as is and are
// meant to be fatal. Verification results become exit codes.
func (d *Dispatcher) Run(
	ctx context.Context,
	req operation.Request,
) (int, error) {
	slog.Info("Dispatching operation", "operation", req.String())

	switch req.Kind {
	case operation.None:
		slog.Info("No operation selected")
		return ExitOK, nil
	case operation.ListDatasets:
		return d.listDatasets()
	case operation.Verify:
		return d.verify(ctx, req.Dataset)
	case operation.VerifyAll:
		return d.verifyAll(ctx)
	case operation.DBShell:
		return d.shell.Run(ctx, d.cfg.Database)
	}

	ds, err := d.registry.Dataset(req.Dataset, d.cfg)
	if err != nil {
		return ExitFailed, err
	}

	switch req.Kind {
	case operation.Download:
		err = ds.Download(ctx)
	case operation.Load:
		err = ds.Load(ctx)
	case operation.Reload:
		err = ds.Reload(ctx)
	case operation.Dump:
		err = ds.Dump(ctx)
	default:
		err = fmt.Errorf("unsupported operation %s", req)
	}
	if err != nil {
		return ExitFailed, err
	}
	return ExitOK, nil
}

func (d *Dispatcher) listDatasets() (int, error) {
	for _, name := range d.registry.Names() {
		if _, err := fmt.Fprintln(d.out, name); err != nil {
			return ExitFailed, err
		}
	}
	return ExitOK, nil
}

func (d *Dispatcher) verify(ctx context.Context, name string) (int, error) {
	ok, err := d.verifyOne(ctx, name)
	if err != nil {
		return ExitFailed, err
	}
	if !ok {
		return ExitFailed, nil
	}
	return ExitOK, nil
}

// verifyAll checks every dataset, failures do not stop the loop.
func (d *Dispatcher) verifyAll(ctx context.Context) (int, error) {
	names := d.registry.Names()
	var failed []string
	for _, name := range names {
		ok, err := d.verifyOne(ctx, name)
		if err != nil {
			return ExitFailed, err
		}
		if !ok {
			failed = append(failed, name)
		}
	}

	slog.Info("Verification complete",
		"total", len(names),
		"failed", len(failed),
	)
	if len(failed) > 0 {
		gn.Warn("Verification failed for %d of %d datasets: %v",
			len(failed), len(names), failed)
		return ExitFailed, nil
	}
	gn.Info("All <em>%d</em> datasets verified", len(names))
	return ExitOK, nil
}

func (d *Dispatcher) verifyOne(
	ctx context.Context,
	name string,
) (bool, error) {
	ds, err := d.registry.Dataset(name, d.cfg)
	if err != nil {
		return false, err
	}
	ok, err := ds.Verify(ctx)
	if err != nil {
		return false, err
	}
	slog.Info("Dataset verified", "dataset", name, "ok", ok)
	return ok, nil
}

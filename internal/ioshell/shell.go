// Package ioshell runs PostgreSQL client programs (psql, pg_dump) as
// child processes. The password reaches the child through PGPASSWORD in
// the child environment only, the parent environment is left intact.
package ioshell

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	"github.com/nycdb/nycdb/pkg/config"
)

// Runner starts psql and pg_dump.
type Runner struct {
	// Psql is the psql executable name or path.
	Psql string

	// PgDump is the pg_dump executable name or path.
	PgDump string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// New returns a Runner attached to the standard streams of the process.
func New() *Runner {
	return &Runner{
		Psql:   "psql",
		PgDump: "pg_dump",
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts an interactive psql session and waits for it to finish.
// It returns the exit code of psql. An error is returned only if psql
// could not be started at all.
func (r *Runner) Run(ctx context.Context, db config.DatabaseConfig) (int, error) {
	cmd := r.command(ctx, r.Psql, db, connArgs(db)...)
	slog.Info("Starting psql",
		"host", db.Host, "port", db.Port,
		"user", db.User, "database", db.Database,
	)

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitCode(exitErr), nil
	}
	return 0, ShellStartError(r.Psql, err)
}

// Dump writes an SQL dump of the given tables to outPath.
func (r *Runner) Dump(
	ctx context.Context,
	db config.DatabaseConfig,
	tables []string,
	outPath string,
) error {
	args := []string{"--no-owner", "--clean", "--if-exists"}
	for _, t := range tables {
		args = append(args, "-t", t)
	}
	args = append(args, "-f", outPath)
	args = append(args, connArgs(db)...)

	cmd := r.command(ctx, r.PgDump, db, args...)
	slog.Info("Starting pg_dump", "tables", tables, "file", outPath)

	if err := cmd.Run(); err != nil {
		return DumpError(outPath, err)
	}
	return nil
}

func (r *Runner) command(
	ctx context.Context,
	name string,
	db config.DatabaseConfig,
	args ...string,
) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(os.Environ(), "PGPASSWORD="+db.Password)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd
}

// exitCode follows the shell convention of 128+N for a child killed by
// signal N.
func exitCode(err *exec.ExitError) int {
	if ws, ok := err.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return 128 + int(ws.Signal())
	}
	return err.ExitCode()
}

func connArgs(db config.DatabaseConfig) []string {
	return []string{
		"-h", db.Host,
		"-p", db.Port,
		"-U", db.User,
		"-d", db.Database,
	}
}

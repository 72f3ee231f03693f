package ioshell

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/nycdb/nycdb/pkg/errcode"
)

// ShellStartError is returned when a client program cannot be started.
func ShellStartError(program string, err error) error {
	msg := `Cannot start <em>%s</em>

Make sure PostgreSQL client programs are installed and in PATH.`
	vars := []any{program}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ShellStartError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot start %s: %w",
			fn.Name(), program, err),
	}
}

// DumpError is returned when pg_dump fails.
func DumpError(file string, err error) error {
	msg := "Cannot dump tables to <em>%s</em>"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DumpError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: pg_dump to %s failed: %w",
			fn.Name(), file, err),
	}
}

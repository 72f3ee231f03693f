package ioregistry

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/nycdb/nycdb/pkg/errcode"
)

func RegistryReadError(path string, err error) error {
	msg := "Cannot read datasets file %s"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RegistryReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read %s: %w",
			fn.Name(), path, err),
	}
}

func RegistryInvalidError(source string, err error) error {
	msg := `Invalid datasets file %s

%s`
	vars := []any{source, err}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.RegistryInvalidError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: invalid datasets in %s: %w",
			fn.Name(), source, err),
	}
}

func UnknownDatasetError(name string) error {
	msg := `Unknown dataset <em>%s</em>

Run <em>nycdb --list-datasets</em> to see available datasets.`
	vars := []any{name}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.UnknownDatasetError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: unknown dataset %s", fn.Name(), name),
	}
}

package iodataset

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/nycdb/nycdb/pkg/errcode"
)

func CreateDirError(dir string, err error) error {
	msg := "Cannot create %s"
	vars := []any{dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateDirError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create directory: %w",
			fn.Name(), err),
	}
}

func WriteFileError(file string, err error) error {
	msg := "Cannot write %s"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.WriteFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot write file: %w",
			fn.Name(), err),
	}
}

func DownloadError(url string, err error) error {
	msg := "Cannot download <em>%s</em>"
	vars := []any{url}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DownloadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: download of %s failed: %w",
			fn.Name(), url, err),
	}
}

func DownloadStatusError(url string, status int) error {
	msg := "Download of <em>%s</em> failed with HTTP status %d"
	vars := []any{url, status}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DownloadStatusError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: download of %s: status %d",
			fn.Name(), url, status),
	}
}

func DataFileNotFoundError(pattern, dir string, err error) error {
	msg := `No file matching <em>%s</em> in %s

Run <em>nycdb --download</em> for the dataset first.`
	vars := []any{pattern, dir}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DataFileNotFoundError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: no file for %s in %s: %w",
			fn.Name(), pattern, dir, err),
	}
}

func DataFileReadError(file string, err error) error {
	msg := "Cannot read data file %s"
	vars := []any{file}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DataFileReadError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read %s: %w",
			fn.Name(), file, err),
	}
}

func TableExistsError(table, dataset string) error {
	msg := `Table <em>%s</em> already exists

Use <em>nycdb --reload %s</em> to replace the dataset tables.`
	vars := []any{table, dataset}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.TableExistsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: table %s already exists",
			fn.Name(), table),
	}
}

func CreateTableError(table string, err error) error {
	msg := "Cannot create table <em>%s</em>"
	vars := []any{table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CreateTableError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot create table %s: %w",
			fn.Name(), table, err),
	}
}

func CopyRowsError(table, file string, err error) error {
	msg := "Cannot copy rows from %s into <em>%s</em>"
	vars := []any{file, table}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.CopyRowsError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: copy into %s failed: %w",
			fn.Name(), table, err),
	}
}

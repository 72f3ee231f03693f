package iohistory

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/nycdb/nycdb/pkg/errcode"
)

// HistoryError is returned when the load history cannot be updated
// or read.
func HistoryError(dataset string, err error) error {
	msg := "Cannot access load history"
	var vars []any
	if dataset != "" {
		msg = "Cannot access load history of <em>%s</em>"
		vars = []any{dataset}
	}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.LoadHistoryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: load history: %w", fn.Name(), err),
	}
}

// NotConnectedError is returned when the operator has no pool.
func NotConnectedError() error {
	msg := "Database is not connected"
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DBNotConnectedError,
		Msg:  msg,
		Err:  fmt.Errorf("from %s: database is not connected", fn.Name()),
	}
}

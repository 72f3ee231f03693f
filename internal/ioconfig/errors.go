package ioconfig

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/nycdb/nycdb/pkg/errcode"
)

// ConfigFileError creates an error for a config file that cannot be read.
func ConfigFileError(path string, err error) error {
	msg := `Cannot read configuration file <em>%s</em>

<em>Possible causes:</em>
  - File does not exist
  - Unsupported extension (use .yaml, .json or .toml)
  - Invalid syntax`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigFileError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf("from %s: cannot read config file %s: %w",
			fn.Name(), path, err),
	}
}

package operation_test

import (
	"testing"

	"github.com/nycdb/nycdb/pkg/operation"
	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		msg   string
		flags operation.Flags
		res   operation.Request
	}{
		{
			msg:   "nothing set",
			flags: operation.Flags{},
			res:   operation.Request{Kind: operation.None},
		},
		{
			msg:   "list",
			flags: operation.Flags{ListDatasets: true},
			res:   operation.Request{Kind: operation.ListDatasets},
		},
		{
			msg:   "verify",
			flags: operation.Flags{Verify: "pluto"},
			res:   operation.Request{Kind: operation.Verify, Dataset: "pluto"},
		},
		{
			msg:   "verify all",
			flags: operation.Flags{VerifyAll: true},
			res:   operation.Request{Kind: operation.VerifyAll},
		},
		{
			msg:   "download",
			flags: operation.Flags{Download: "pluto"},
			res:   operation.Request{Kind: operation.Download, Dataset: "pluto"},
		},
		{
			msg:   "load",
			flags: operation.Flags{Load: "pluto"},
			res:   operation.Request{Kind: operation.Load, Dataset: "pluto"},
		},
		{
			msg:   "reload",
			flags: operation.Flags{Reload: "pluto"},
			res:   operation.Request{Kind: operation.Reload, Dataset: "pluto"},
		},
		{
			msg:   "dump",
			flags: operation.Flags{Dump: "pluto"},
			res:   operation.Request{Kind: operation.Dump, Dataset: "pluto"},
		},
		{
			msg:   "dbshell",
			flags: operation.Flags{DBShell: true},
			res:   operation.Request{Kind: operation.DBShell},
		},
		{
			msg:   "empty dataset name is not set",
			flags: operation.Flags{Verify: "", Load: "pluto"},
			res:   operation.Request{Kind: operation.Load, Dataset: "pluto"},
		},
		{
			msg:   "list wins over dump",
			flags: operation.Flags{ListDatasets: true, Dump: "foo"},
			res:   operation.Request{Kind: operation.ListDatasets},
		},
	}

	for _, v := range tests {
		res := operation.Select(v.flags)
		assert.Equal(t, v.res, res, v.msg)
	}
}

// TestSelectPriority sets every flag, then clears the winner one by one.
// The winners must follow list > verify > verify-all > download > load >
// reload > dump > dbshell.
func TestSelectPriority(t *testing.T) {
	f := operation.Flags{
		ListDatasets: true,
		Verify:       "v",
		VerifyAll:    true,
		Download:     "dl",
		Load:         "ld",
		Reload:       "rl",
		Dump:         "dp",
		DBShell:      true,
	}

	unset := []func(*operation.Flags){
		func(f *operation.Flags) { f.ListDatasets = false },
		func(f *operation.Flags) { f.Verify = "" },
		func(f *operation.Flags) { f.VerifyAll = false },
		func(f *operation.Flags) { f.Download = "" },
		func(f *operation.Flags) { f.Load = "" },
		func(f *operation.Flags) { f.Reload = "" },
		func(f *operation.Flags) { f.Dump = "" },
		func(f *operation.Flags) { f.DBShell = false },
	}

	exp := []operation.Request{
		{Kind: operation.ListDatasets},
		{Kind: operation.Verify, Dataset: "v"},
		{Kind: operation.VerifyAll},
		{Kind: operation.Download, Dataset: "dl"},
		{Kind: operation.Load, Dataset: "ld"},
		{Kind: operation.Reload, Dataset: "rl"},
		{Kind: operation.Dump, Dataset: "dp"},
		{Kind: operation.DBShell},
	}

	for i := range exp {
		assert.Equal(t, exp[i], operation.Select(f), "step %d", i)
		unset[i](&f)
	}
	assert.Equal(t, operation.None, operation.Select(f).Kind)
}

func TestRequestString(t *testing.T) {
	assert.Equal(t, "verify-all",
		operation.Request{Kind: operation.VerifyAll}.String())
	assert.Equal(t, "load(pluto)",
		operation.Request{Kind: operation.Load, Dataset: "pluto"}.String())
	assert.Equal(t, "Kind(42)", operation.Kind(42).String())
}

// Package operation turns the mutually exclusive operation flags into a
// single request.
package operation

import "fmt"

// Kind enumerates top-level operations.
type Kind int

const (
	// None means no operation flag was given. It is a silent no-op.
	None Kind = iota
	ListDatasets
	Verify
	VerifyAll
	Download
	Load
	Reload
	Dump
	DBShell
)

var kindNames = map[Kind]string{
	None:         "none",
	ListDatasets: "list-datasets",
	Verify:       "verify",
	VerifyAll:    "verify-all",
	Download:     "download",
	Load:         "load",
	Reload:       "reload",
	Dump:         "dump",
	DBShell:      "dbshell",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Request is the single operation chosen for an invocation.
// Dataset is set only for Verify, Download, Load, Reload and Dump.
type Request struct {
	Kind    Kind
	Dataset string
}

func (r Request) String() string {
	if r.Dataset == "" {
		return r.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", r.Kind, r.Dataset)
}

// Flags holds the raw values of the operation flags.
// A string flag counts as set only when it is not empty.
type Flags struct {
	ListDatasets bool
	Verify       string
	VerifyAll    bool
	Download     string
	Load         string
	Reload       string
	Dump         string
	DBShell      bool
}

// Select picks one request out of the flags. Flags are checked in the
// order list, verify, verify-all, download, load, reload, dump, dbshell,
// and the first one that is set wins. Setting several flags is not an
// error; the rest are ignored.
func Select(f Flags) Request {
	switch {
	case f.ListDatasets:
		return Request{Kind: ListDatasets}
	case f.Verify != "":
		return Request{Kind: Verify, Dataset: f.Verify}
	case f.VerifyAll:
		return Request{Kind: VerifyAll}
	case f.Download != "":
		return Request{Kind: Download, Dataset: f.Download}
	case f.Load != "":
		return Request{Kind: Load, Dataset: f.Load}
	case f.Reload != "":
		return Request{Kind: Reload, Dataset: f.Reload}
	case f.Dump != "":
		return Request{Kind: Dump, Dataset: f.Dump}
	case f.DBShell:
		return Request{Kind: DBShell}
	}
	return Request{Kind: None}
}

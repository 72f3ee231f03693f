package datasets

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"unicode/utf8"
)

var identRe = regexp.MustCompile(`^[a-z_][a-z0-9_]*$`)

// Validate checks the registry for errors and applies defaults.
func (r *Registry) Validate() error {
	if len(r.Datasets) == 0 {
		return fmt.Errorf("no datasets specified in registry")
	}

	seen := make(map[string]struct{})
	for i := range r.Datasets {
		d := &r.Datasets[i]
		if err := d.Validate(); err != nil {
			return fmt.Errorf("dataset %d: %w", i+1, err)
		}
		if _, ok := seen[d.Name]; ok {
			return fmt.Errorf("dataset %d: duplicate name '%s'", i+1, d.Name)
		}
		seen[d.Name] = struct{}{}
	}
	return nil
}

// Validate checks a single dataset definition and fills in defaults.
// File system checks are deferred to runtime.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("name is required")
	}

	for i := range d.Files {
		f := &d.Files[i]
		u, err := url.Parse(f.URL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("%s: invalid url '%s'", d.Name, f.URL)
		}
		if f.Dest == "" {
			f.Dest = path.Base(u.Path)
		}
		if f.Dest == "" || f.Dest == "/" || f.Dest == "." {
			return fmt.Errorf("%s: cannot infer dest from '%s'", d.Name, f.URL)
		}
	}

	if len(d.Tables) == 0 {
		return fmt.Errorf("%s: at least one table is required", d.Name)
	}
	for _, t := range d.Tables {
		if !identRe.MatchString(t.Name) {
			return fmt.Errorf(
				"%s: table name '%s' must match %s", d.Name, t.Name, identRe,
			)
		}
		if t.File == "" {
			return fmt.Errorf("%s: table '%s' needs a file pattern", d.Name, t.Name)
		}
		if utf8.RuneCountInString(t.Delimiter) > 1 {
			return fmt.Errorf(
				"%s: table '%s' delimiter must be a single character",
				d.Name, t.Name,
			)
		}
		if t.RowCount < 0 {
			return fmt.Errorf("%s: table '%s' row_count cannot be negative",
				d.Name, t.Name)
		}
	}
	return nil
}

// Package datasets provides the schema and validation of datasets.yaml,
// the registry of datasets that can be downloaded and loaded.
//
// A dataset is a set of remote files and the tables built from them:
//
//	datasets:
//	  - name: hpd_violations
//	    description: HPD housing maintenance code violations
//	    files:
//	      - url: https://data.cityofnewyork.us/api/views/wvxf-dwi5/rows.csv?accessType=DOWNLOAD
//	        dest: hpd_violations.csv
//	    tables:
//	      - name: hpd_violations
//	        file: hpd_violations.csv
//	        row_count: 0
package datasets

// Registry represents the complete datasets.yaml file.
// Datasets keep the order in which they appear in the file.
type Registry struct {
	Datasets []Definition `yaml:"datasets"`
}

// Definition describes one dataset.
type Definition struct {
	// Name identifies the dataset on the command line. Must be unique.
	Name string `yaml:"name"`

	// Description is a human-readable summary.
	Description string `yaml:"description,omitempty"`

	// Files are downloaded into RootDir/<Name>/.
	Files []File `yaml:"files"`

	// Tables are created from the downloaded files.
	Tables []Table `yaml:"tables"`
}

// File is a remote file of a dataset.
type File struct {
	// URL is the download location.
	URL string `yaml:"url"`

	// Dest is the local file name. Defaults to the last path element of
	// the URL.
	Dest string `yaml:"dest,omitempty"`
}

// Table is a PostgreSQL table loaded from a delimited file.
type Table struct {
	// Name of the table, a lowercase SQL identifier.
	Name string `yaml:"name"`

	// File is a glob pattern (doublestar syntax) relative to the dataset
	// directory. If several files match, the last one in lexical order
	// is used.
	File string `yaml:"file"`

	// Delimiter separates fields. Defaults to a comma.
	Delimiter string `yaml:"delimiter,omitempty"`

	// RowCount is the expected number of rows. Zero means the count is
	// unknown and any non-empty table passes verification.
	RowCount int64 `yaml:"row_count,omitempty"`
}

// TableNames returns the names of all tables of the dataset.
func (d Definition) TableNames() []string {
	res := make([]string, len(d.Tables))
	for i := range d.Tables {
		res[i] = d.Tables[i].Name
	}
	return res
}

// Comma returns the delimiter as a rune.
func (t Table) Comma() rune {
	for _, r := range t.Delimiter {
		return r
	}
	return ','
}

package nycdb

var (
	// Version of the application. It is set by build flags.
	Version = "v0.1.0"

	// Build timestamp. It is set by build flags.
	Build = "n/a"
)

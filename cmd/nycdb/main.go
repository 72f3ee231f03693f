// Package main provides the nycdb CLI application.
package main

import "github.com/nycdb/nycdb/cmd"

func main() {
	cmd.Execute()
}

package ioconfig

import (
	"errors"
	"io/fs"
	"os"

	"github.com/gnames/gn"
	"github.com/joho/godotenv"
	"github.com/nycdb/nycdb/pkg/config"
)

// EnvLookup returns a lookup over the process environment, backed by the
// variables of a .env file. Process variables win. The .env file is only
// read, the process environment is never modified. A missing file is
// not an error.
func EnvLookup(dotenvPath string) config.Lookup {
	dotenv, err := godotenv.Read(dotenvPath)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		gn.Warn("Cannot read <em>%s</em>, ignoring: %s", dotenvPath, err)
	}

	return func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

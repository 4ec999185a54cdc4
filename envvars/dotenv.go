package envvars

import (
	"fmt"

	"github.com/joho/godotenv"
)

// FileReader returns a Reader whose lookups resolve against the
// variables declared in a dotenv file instead of the process
// environment. The file is read once; the Reader holds a snapshot.
// Useful for answering "what would the config resolve to with this
// .env" without mutating the process.
func FileReader(path string) (*Reader, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("read env file: %w", err)
	}

	return &Reader{
		Lookup: func(name string) (string, bool) {
			value, ok := env[name]
			return value, ok
		},
	}, nil
}

package aoc

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
)

// Config is the runner configuration. It is read once from the
// environment, after loading .env from the working directory if present.
type Config struct {
	// SessionToken is the adventofcode.com session cookie (AOC_SESSION).
	// If empty, it is read from ~/keys/aoc.session on first use.
	SessionToken string
	// InputDir is where puzzle inputs are cached (AOC_INPUT_DIR).
	InputDir string
}

var loadConfig = sync.OnceValue(func() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("loading .env: %v", err)
	}
	return configFromEnv(os.LookupEnv)
})

func configFromEnv(lookup func(string) (string, bool)) Config {
	var c Config
	c.SessionToken, _ = lookup("AOC_SESSION")
	c.InputDir, _ = lookup("AOC_INPUT_DIR")
	c.SessionToken = strings.TrimSpace(c.SessionToken)
	c.InputDir = Or(c.InputDir, ".")
	return c
}

// Session returns the session token, falling back to ~/keys/aoc.session.
func (c Config) Session() string {
	if c.SessionToken != "" {
		return c.SessionToken
	}
	return strings.TrimSpace(string(MustGet(os.ReadFile(filepath.Join(os.Getenv("HOME"), "keys", "aoc.session")))))
}

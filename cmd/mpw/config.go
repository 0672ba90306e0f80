package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

// Environment variables consulted when a flag is not given.
const (
	envFullName    = "MP_FULLNAME"
	envSiteType    = "MP_SITETYPE"
	envSiteCounter = "MP_SITECOUNTER"
	envAlgorithm   = "MP_ALGORITHM"
)

// defaultEnvFile is the dotenv file read for defaults, relative to $HOME.
const defaultEnvFile = ".mpw.env"

// exitFunc is os.Exit, replaced in tests.
var exitFunc = os.Exit

// Config holds the process dependencies of the command so tests can replace
// them.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Getenv looks up process environment variables.
	Getenv func(string) string

	// ReadSecret reads the master secret without echo. When nil the secret
	// is read as one line from Stdin.
	ReadSecret func(prompt string) ([]byte, error)

	// CopyToClipboard places the credential on the system clipboard.
	CopyToClipboard func(string) error

	// IsTerminal reports whether w is an interactive terminal.
	IsTerminal func(w io.Writer) bool

	// HomeDir locates the default env file.
	HomeDir func() (string, error)
}

// DefaultConfig returns a Config bound to the real process.
func DefaultConfig() *Config {
	cfg := &Config{
		Stdin:           os.Stdin,
		Stdout:          os.Stdout,
		Stderr:          os.Stderr,
		Getenv:          os.Getenv,
		CopyToClipboard: clipboard.WriteAll,
		IsTerminal:      isTerminal,
		HomeDir:         os.UserHomeDir,
	}
	if term.IsTerminal(int(os.Stdin.Fd())) {
		cfg.ReadSecret = func(prompt string) ([]byte, error) {
			_, _ = io.WriteString(os.Stderr, prompt)
			defer io.WriteString(os.Stderr, "\n")
			return term.ReadPassword(int(os.Stdin.Fd()))
		}
	}
	return cfg
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (c *Config) defaultEnvFilePath() string {
	if c.HomeDir == nil {
		return ""
	}
	home, err := c.HomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, defaultEnvFile)
}

// Package logging builds the logr loggers the commands hand to the engine.
package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

// Verbosity levels used with logr's V across the repo.
const (
	INFO  = 0
	DEBUG = 1
)

// Options say where log lines go and how much detail they carry.
type Options struct {
	// Verbosity enables V levels up to the given value; 0 keeps Info only.
	Verbosity int
	// Dir and File name an extra log sink next to stderr. An empty File
	// disables it.
	Dir  string
	File string
}

// New builds a logger writing to stderr and, when opts names a file, to
// Dir/File as well. The directory is created on demand; if the file cannot
// be opened the logger falls back to stderr alone after a warning.
func New(opts Options) logr.Logger {
	stdr.SetVerbosity(opts.Verbosity)

	w := io.Writer(os.Stderr)
	if opts.File != "" {
		f, err := openLogFile(opts.Dir, opts.File)
		if err != nil {
			log.Printf("log file unavailable: %v", err)
		} else {
			w = io.MultiWriter(os.Stderr, f)
		}
	}
	return stdr.New(log.New(w, "", log.LstdFlags))
}

func openLogFile(dir, file string) (*os.File, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(filepath.Join(dir, file), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

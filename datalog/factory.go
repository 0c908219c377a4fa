package datalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	// MaxPrecision is the largest number of fraction digits a session writes.
	MaxPrecision = 15
	// Extension is appended to every session file path.
	Extension = ".log"

	timeStampLayout = "Mon Jan 02 15:04:05 2006"
	separator       = "-"

	dirMode  os.FileMode = 0o775
	fileMode os.FileMode = 0o664
)

// Factory resolves session destinations from its root directory, base name
// and time stamp, and opens sessions.
//
// A Factory is not safe for concurrent configuration. Finish the Set* calls
// before creating sessions from several goroutines.
type Factory struct {
	rootDirectory string
	baseName      string
	timeStamp     string
	log           zerolog.Logger
}

// New creates a Factory from cfg, after applying environment fallbacks.
// A root directory that cannot be created is returned as the error, but the
// Factory is still usable: opening sessions under it will fail later.
func New(cfg Config) (*Factory, error) {
	cfg = resolveConfig(cfg)

	f := &Factory{log: newDiagnostics(cfg)}
	f.SetBaseName(cfg.BaseName)
	if cfg.TimeStamp {
		f.SetTimeStamp()
	}
	if err := f.SetRootDirectory(cfg.RootDirectory); err != nil {
		return f, err
	}
	return f, nil
}

// SetRootDirectory stores path, resolved to an absolute path, as the root of
// future file sessions and creates it if missing. An empty path selects the
// current working directory. The root is stored even when creation fails.
func (f *Factory) SetRootDirectory(path string) error {
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = filepath.Clean(path)
	}
	f.rootDirectory = abs

	if err := os.MkdirAll(abs, dirMode); err != nil {
		f.log.Error().Err(err).Str("root", abs).Msg("failed to create root directory")
		return fmt.Errorf("failed to create root directory %s: %w", abs, err)
	}
	return nil
}

// SetBaseName stores name followed by "-" as the file name prefix.
// A blank name clears the prefix.
func (f *Factory) SetBaseName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		f.baseName = ""
		return
	}
	f.baseName = name + separator
}

// SetTimeStamp captures the current time as the file name suffix shared by
// every session created afterwards.
func (f *Factory) SetTimeStamp() {
	f.timeStamp = separator + sanitizeTimeStamp(now().Format(timeStampLayout))
}

func sanitizeTimeStamp(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ':
			return '-'
		case ':':
			return '_'
		case '\n', '\r':
			return -1
		}
		return r
	}, s)
}

// RootDirectory returns the absolute root directory.
func (f *Factory) RootDirectory() string { return f.rootDirectory }

// BaseName returns the stored prefix, including its trailing separator.
func (f *Factory) BaseName() string { return f.baseName }

// TimeStamp returns the stored suffix, including its leading separator.
func (f *Factory) TimeStamp() string { return f.timeStamp }

// Path returns the file path a session named relativePath would write to,
// or "" for the terminal.
func (f *Factory) Path(relativePath string) string {
	if relativePath == "" {
		return ""
	}
	root := f.rootDirectory
	if root == "" {
		root = "."
	}
	return filepath.Join(root, f.baseName+relativePath+f.timeStamp+Extension)
}

// CreateSession opens a session named relativePath with the given number of
// fraction digits, clamped to [0, MaxPrecision].
//
// An empty relativePath writes to the terminal. Otherwise the file at
// Path(relativePath) is created or truncated; missing intermediate
// directories are not created. Open failures are logged and returned
// wrapping ErrOpen.
func (f *Factory) CreateSession(relativePath string, precision int) (*Session, error) {
	precision = clampPrecision(precision)

	if relativePath == "" {
		f.log.Debug().Int("precision", precision).Msg("session opened on terminal")
		return newTerminalSession(precision), nil
	}

	path := f.Path(relativePath)
	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, fileMode)
	if err != nil {
		f.log.Error().Err(err).Str("path", path).Msg("failed to open log file")
		return nil, fmt.Errorf("%w %s: %w", ErrOpen, path, err)
	}

	f.log.Debug().Str("path", path).Int("precision", precision).Msg("session opened")
	return newFileSession(file, path, precision), nil
}

// Open is like CreateSession but returns Discard instead of an error, so
// callers can log unconditionally.
func (f *Factory) Open(relativePath string, precision int) Recorder {
	s, err := f.CreateSession(relativePath, precision)
	if err != nil {
		return Discard
	}
	return s
}

func clampPrecision(p int) int {
	switch {
	case p < 0:
		return 0
	case p > MaxPrecision:
		return MaxPrecision
	default:
		return p
	}
}

package datalog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	// ErrOpen is returned by CreateSession when the destination cannot be opened.
	ErrOpen = errors.New("failed to open log file")
	// ErrWrite wraps failures of the underlying destination.
	ErrWrite = errors.New("failed to write log data")
	// ErrClosed is returned by writes on a closed session.
	ErrClosed = errors.New("log session closed")
)

// Recorder is the write contract shared by Session and Discard.
type Recorder interface {
	RegisterValues(values ...float64) error
	RegisterList(values []float64) error
	PrintString(format string, v ...any) error
	EnterNewLine(timeStamp float64) error
	Close() error
}

// Session writes records to a single file or to the terminal.
//
// All methods are no-ops on a nil *Session, except PrintString which then
// writes to the terminal. A Session is not safe for concurrent use.
type Session struct {
	w         io.Writer
	buf       *bufio.Writer // nil for the terminal
	file      *os.File      // nil for the terminal
	path      string
	precision int
	written   int64
	scratch   []byte
	err       error
	closed    bool
}

func newTerminalSession(precision int) *Session {
	return &Session{w: outTerminal, precision: precision}
}

func newFileSession(file *os.File, path string, precision int) *Session {
	buf := bufio.NewWriter(file)
	return &Session{w: buf, buf: buf, file: file, path: path, precision: precision}
}

// Path returns the file path, or "" for a terminal session.
func (s *Session) Path() string {
	if s == nil {
		return ""
	}
	return s.path
}

// Precision returns the number of fraction digits used for values.
func (s *Session) Precision() int {
	if s == nil {
		return 0
	}
	return s.precision
}

// IsTerminal reports whether the session writes to the terminal.
func (s *Session) IsTerminal() bool {
	return s != nil && s.file == nil
}

// Err returns the first write failure, if any.
func (s *Session) Err() error {
	if s == nil {
		return nil
	}
	return s.err
}

// RegisterValues appends each value to the current record, preceded by a tab
// and formatted with exactly Precision fraction digits.
func (s *Session) RegisterValues(values ...float64) error {
	return s.RegisterList(values)
}

// RegisterList is RegisterValues for an existing slice.
func (s *Session) RegisterList(values []float64) error {
	if s == nil || len(values) == 0 {
		return nil
	}
	b := s.scratch[:0]
	for _, v := range values {
		b = append(b, '\t')
		b = strconv.AppendFloat(b, v, 'f', s.precision, 64)
	}
	s.scratch = b
	return s.write(b)
}

// PrintString writes a printf-style line followed by a newline.
func (s *Session) PrintString(format string, v ...any) error {
	line := fmt.Sprintf(format, v...) + "\n"
	if s == nil {
		if _, err := io.WriteString(outTerminal, line); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
		return nil
	}
	return s.write([]byte(line))
}

// EnterNewLine starts a new record with timeStamp in compact general format.
// The previous record is terminated first if anything has been written.
func (s *Session) EnterNewLine(timeStamp float64) error {
	if s == nil {
		return nil
	}
	b := s.scratch[:0]
	if s.written > 0 {
		b = append(b, '\n')
	}
	b = strconv.AppendFloat(b, timeStamp, 'g', 6, 64)
	s.scratch = b
	return s.write(b)
}

func (s *Session) write(b []byte) error {
	if s.closed {
		return ErrClosed
	}
	n, err := s.w.Write(b)
	s.written += int64(n)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrWrite, err)
		if s.err == nil {
			s.err = err
		}
		return err
	}
	return nil
}

// Close flushes and closes a file destination; the terminal is left open.
// It returns the first write failure seen by the session, if any.
// Calling Close more than once is a no-op.
func (s *Session) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true

	errs := []error{s.err}
	if s.buf != nil {
		if err := s.buf.Flush(); err != nil && s.err == nil {
			errs = append(errs, fmt.Errorf("%w: %w", ErrWrite, err))
		}
	}
	if s.file != nil {
		if err := s.file.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close log file %s: %w", s.path, err))
		}
	}
	s.scratch = nil
	return errors.Join(errs...)
}

// Discard is a Recorder that drops every write.
var Discard Recorder = discardRecorder{}

type discardRecorder struct{}

func (discardRecorder) RegisterValues(...float64) error { return nil }
func (discardRecorder) RegisterList([]float64) error { return nil }
func (discardRecorder) PrintString(string, ...any) error { return nil }
func (discardRecorder) EnterNewLine(float64) error { return nil }
func (discardRecorder) Close() error { return nil }

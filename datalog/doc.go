// Package datalog provides an append-only text logger for time-series
// samples, with one file (or the terminal) per session.
//
// # Record Format
//
// Each record is one line: a time stamp in compact general format followed
// by tab-separated values in fixed-point notation.
//
//	0.5	1.235	-2.000
//	1	1.240	-1.998
//
// No header, footer or trailing newline is written. PrintString lines may be
// interleaved between records.
//
// # File Naming
//
// A Factory composes file paths from three settings and a per-session name:
//
//	<root>/<base>-<name>-<Mon-Jan-02-15_04_05-2006>.log
//
// The root directory defaults to the working directory, the base name and
// time stamp are empty unless set. Sessions created with an empty name write
// to the terminal instead of a file.
//
// # Usage
//
// Configure once at startup:
//
//	f, err := datalog.New(datalog.Config{RootDirectory: "runs", BaseName: "trial", TimeStamp: true})
//
// Then create sessions by name and write records:
//
//	s, err := f.CreateSession("sensorA", 3)
//	if err != nil {
//	    return err
//	}
//	defer s.Close()
//
//	s.EnterNewLine(0.5)
//	s.RegisterValues(1.23456, -2.0)
//
// Use Factory.Open to get a Recorder that silently discards writes when the
// file cannot be opened:
//
//	rec := f.Open("sensorB", 6)
//	defer rec.Close()
//
// # Configuration
//
// Config can be loaded from YAML with LoadConfig. Empty fields fall back to
// the DATALOG_ROOT, DATALOG_BASE_NAME and DATALOG_TIMESTAMP environment
// variables:
//
//	DATALOG_ROOT=/var/log/rig DATALOG_TIMESTAMP=1 ./controller
//
// Sessions are not safe for concurrent use. Use one session per goroutine.
package datalog

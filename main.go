package main

import (
	"fmt"
	"math"
	"os"

	"github.com/alecthomas/kong"

	"github.com/mordilloSan/go-datalog/datalog"
)

// cli holds the flags of the demonstration program.
type cli struct {
	Config    string  `help:"YAML config file." type:"existingfile" short:"c"`
	Root      string  `help:"Root directory for log files (default: working directory)." short:"r"`
	Base      string  `help:"Base name prefixed to every log file." short:"b"`
	Stamp     bool    `help:"Append the start time to every log file name." short:"t"`
	Precision int     `help:"Fraction digits written per value." default:"6" short:"p"`
	Samples   int     `help:"Number of records to write." default:"10" short:"n"`
	Period    float64 `help:"Seconds between records." default:"0.01"`
	Debug     bool    `help:"Enable debug diagnostics."`

	Name string `arg:"" optional:"" help:"Session name; empty writes to the terminal."`
}

// Example demonstrating go-datalog usage.
// Usage: ./go-datalog [flags] [name]
// Example: ./go-datalog --root ./runs --base trial --stamp sensorA
func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("go-datalog"),
		kong.Description("Write a sine/cosine time series with go-datalog."),
		kong.UsageOnError(),
	)

	if err := run(c); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c cli) error {
	cfg := datalog.Config{}
	if c.Config != "" {
		loaded, err := datalog.LoadConfig(c.Config)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if c.Root != "" {
		cfg.RootDirectory = c.Root
	}
	if c.Base != "" {
		cfg.BaseName = c.Base
	}
	cfg.TimeStamp = cfg.TimeStamp || c.Stamp
	cfg.Debug = cfg.Debug || c.Debug

	f, err := datalog.New(cfg)
	if err != nil {
		return err
	}

	s, err := f.CreateSession(c.Name, c.Precision)
	if err != nil {
		return err
	}
	if !s.IsTerminal() {
		datalog.DebugPrint("logging to %s", s.Path())
	}

	for i := 0; i < c.Samples; i++ {
		t := float64(i) * c.Period
		s.EnterNewLine(t)
		s.RegisterValues(math.Sin(2*math.Pi*t), math.Cos(2*math.Pi*t))
	}
	if s.IsTerminal() {
		fmt.Fprintln(os.Stderr)
	}
	return s.Close()
}

// Package logger configures the process-wide logrus logger. Log lines go to
// stderr so that stdout carries only command output.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

type LogOptions struct {
	// Verbose enables debug level.
	Verbose bool
	// DisableColor turns off ANSI colors, e.g. when stderr is not a terminal.
	DisableColor bool
	HideLogTime  bool
	// Output defaults to os.Stderr.
	Output io.Writer
}

func Init(options LogOptions) {
	if options.Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.InfoLevel)
	}

	out := options.Output
	if out == nil {
		out = os.Stderr
	}
	logrus.SetOutput(out)
	logrus.SetReportCaller(options.Verbose)

	logrus.SetFormatter(&Formatter{
		DisableColor: options.DisableColor,
		HideLogTime:  options.HideLogTime,
	})
}

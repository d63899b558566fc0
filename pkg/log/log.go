/*
Copyright 2024 The iccinspect Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package log provides a logging abstraction.
package log

import (
	"io"
	"log"
	"os"
)

// Logger defines an interface for logging messages.
type Logger interface {

	// Printf logs a formatted string.
	Printf(format string, args ...interface{})

	// Println logs a line.
	Println(args ...interface{})

	// Fatalf is equivalent to Printf() followed by a program abort.
	Fatalf(format string, args ...interface{})

	// Fatalln is equivalent to Println() followed by a program abort.
	Fatalln(args ...interface{})
}

type logger struct {
	log Logger
}

// Debug, Info and Trace are this program's three defined loggers.
var (
	Debug = &logger{}
	Info  = &logger{}
	Trace = &logger{}
)

// SetDebugLogger sets the debug logger.
func SetDebugLogger(l Logger) { Debug.log = l }

// SetInfoLogger sets the info logger.
func SetInfoLogger(l Logger) { Info.log = l }

// SetTraceLogger sets the trace logger.
func SetTraceLogger(l Logger) { Trace.log = l }

// SetDefaultDebugLogger sets the default debug logger.
func SetDefaultDebugLogger() { SetDebugLogger(log.New(os.Stderr, "DEBUG: ", log.Ldate|log.Ltime)) }

// SetDefaultInfoLogger sets the default info logger.
func SetDefaultInfoLogger() { SetInfoLogger(log.New(os.Stderr, "INFO: ", log.Ldate|log.Ltime)) }

// SetDefaultTraceLogger sets the default trace logger.
func SetDefaultTraceLogger() { SetTraceLogger(log.New(io.Discard, "TRACE: ", log.Ldate|log.Ltime)) }

// SetDefaultLoggers sets the Info and Trace loggers to their default
// destinations (Debug is left as it is), used by the CLI's "-v" flag.
func SetDefaultLoggers() {
	SetDefaultInfoLogger()
	SetDefaultTraceLogger()
}

// SetVerboseLoggers additionally turns on Debug, used by "-vv".
func SetVerboseLoggers() {
	SetDefaultLoggers()
	SetDefaultDebugLogger()
}

// DisableLoggers turns off all logging.
func DisableLoggers() {
	SetDebugLogger(nil)
	SetInfoLogger(nil)
	SetTraceLogger(nil)
}

func (l *logger) Printf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Printf(format, args...)
}

func (l *logger) Println(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Println(args...)
}

func (l *logger) Fatalf(format string, args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Fatalf(format, args...)
}

func (l *logger) Fatalln(args ...interface{}) {
	if l.log == nil {
		return
	}
	l.log.Fatalln(args...)
}

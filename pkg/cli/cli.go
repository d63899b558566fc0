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

// Package cli provides iccinspect command line processing: a Command
// value describing one invocation, and Process to run it.
package cli

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/mechiko/iccinspect/pkg/api"
	"github.com/mechiko/iccinspect/pkg/config"
	"github.com/mechiko/iccinspect/pkg/server"
)

// Mode identifies which operation a Command runs.
type Mode int

const (
	_ Mode = iota
	REPORT
	EXTRACTLUT
	SERVE
)

// Command represents one CLI invocation.
type Command struct {
	Mode Mode

	InFiles []string

	// OutDir is the directory EXTRACTLUT writes "<signature>.spi1d"
	// sidecars to. Empty falls back to Conf.OutputDir.
	OutDir string

	// Addr is the listen address for SERVE. Empty falls back to
	// Conf.ServerAddr.
	Addr string

	Conf *config.Config
}

// ReportCommand creates a command that renders a text report for
// inFiles.
func ReportCommand(inFiles []string, cfg *config.Config) *Command {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Command{Mode: REPORT, InFiles: inFiles, Conf: cfg}
}

// ExtractLUTCommand creates a command that writes one sidecar LUT per
// sampled "curv" tag found in inFile, under outDir.
func ExtractLUTCommand(inFile, outDir string, cfg *config.Config) *Command {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Command{Mode: EXTRACTLUT, InFiles: []string{inFile}, OutDir: outDir, Conf: cfg}
}

// ServeCommand creates a command that starts the report HTTP server.
func ServeCommand(addr string, cfg *config.Config) *Command {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Command{Mode: SERVE, Addr: addr, Conf: cfg}
}

// Process executes cmd, returning any report text lines produced.
func Process(cmd *Command) (out []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("unexpected panic: %v", r)
		}
	}()

	switch cmd.Mode {
	case REPORT:
		return Report(cmd)
	case EXTRACTLUT:
		return ExtractLUT(cmd)
	case SERVE:
		return nil, Serve(cmd)
	}

	return nil, errors.Errorf("iccinspect: process: unknown command mode %d", cmd.Mode)
}

// Report renders a text report for each file in cmd.InFiles.
func Report(cmd *Command) ([]string, error) {
	s, err := api.ReportFiles(cmd.InFiles, cmd.Conf)
	if s == "" {
		return nil, err
	}
	return []string{s}, err
}

// ExtractLUT writes one sidecar LUT per sampled curv tag found in
// cmd.InFiles[0], returning the paths written.
func ExtractLUT(cmd *Command) ([]string, error) {
	return api.ExtractLUT(cmd.InFiles[0], cmd.OutDir, cmd.Conf)
}

// Serve starts the report HTTP server and blocks until it exits.
func Serve(cmd *Command) error {
	addr := cmd.Addr
	if addr == "" {
		addr = cmd.Conf.ServerAddr
	}
	s := server.New(addr, cmd.Conf)
	s.Start()
	fmt.Printf("listening on %s\n", s.Addr())
	return <-s.Notify()
}

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

// Package main provides the command line for interacting with
// iccinspect.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mechiko/iccinspect/pkg/cli"
	"github.com/mechiko/iccinspect/pkg/config"
	"github.com/mechiko/iccinspect/pkg/log"
)

const usage = `iccinspect: an ICC profile inspector

usage:

	iccinspect report   [-config file] [-t sig]... <file>...
	iccinspect extract  [-config file] [-o dir] <file>
	iccinspect serve    [-config file] [-addr host:port]

flags:
`

func main() {
	if len(os.Args) < 2 {
		fail(usage)
	}

	switch os.Args[1] {
	case "report":
		runReport(os.Args[2:])
	case "extract":
		runExtract(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	case "-h", "-help", "--help", "help":
		fmt.Fprint(os.Stderr, usage)
		os.Exit(0)
	default:
		fail(usage)
	}
}

func fail(msg string) {
	fmt.Fprint(os.Stderr, msg)
	os.Exit(1)
}

func setupLogging(verbose, veryVerbose bool) {
	switch {
	case veryVerbose:
		log.SetVerboseLoggers()
	case verbose:
		log.SetDefaultLoggers()
	default:
		log.DisableLoggers()
	}
}

func loadConfig(path string) *config.Config {
	if path == "" {
		return config.Default()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fail(fmt.Sprintf("iccinspect: %v\n", err))
	}
	return cfg
}

func runReport(args []string) {
	fs := flag.NewFlagSet("report", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	verbose := fs.Bool("v", false, "verbose logging")
	veryVerbose := fs.Bool("vv", false, "very verbose logging")
	var tagFilter []string
	fs.Func("t", "restrict the report to tags with this signature (repeatable)", func(sig string) error {
		tagFilter = append(tagFilter, sig)
		return nil
	})
	fs.Parse(args)

	setupLogging(*verbose, *veryVerbose)
	cfg := loadConfig(*configPath)
	if len(tagFilter) > 0 {
		cfg.TagFilter = tagFilter
	}

	inFiles := fs.Args()
	if len(inFiles) == 0 {
		fail("iccinspect report: at least one profile file is required\n")
	}

	out, err := cli.Process(cli.ReportCommand(inFiles, cfg))
	for _, s := range out {
		fmt.Println(s)
	}
	if err != nil {
		fail(fmt.Sprintf("iccinspect: %v\n", err))
	}
}

func runExtract(args []string) {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	outDir := fs.String("o", "", "output directory for .spi1d sidecars (default: config outputDir)")
	fs.Parse(args)

	cfg := loadConfig(*configPath)

	inFiles := fs.Args()
	if len(inFiles) != 1 {
		fail("iccinspect extract: usage: iccinspect extract [-o dir] <file>\n")
	}

	out, err := cli.Process(cli.ExtractLUTCommand(inFiles[0], *outDir, cfg))
	for _, s := range out {
		fmt.Println(s)
	}
	if err != nil {
		fail(fmt.Sprintf("iccinspect: %v\n", err))
	}
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	addr := fs.String("addr", "", "listen address (host:port)")
	fs.Parse(args)

	cfg := loadConfig(*configPath)

	if _, err := cli.Process(cli.ServeCommand(*addr, cfg)); err != nil {
		fail(fmt.Sprintf("iccinspect: %v\n", err))
	}
}

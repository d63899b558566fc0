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

// Package config loads the optional YAML configuration file that
// tunes the CLI and report server's defaults.
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// configuration is the on-disk YAML shape; it is kept private and
// mapped field-by-field into the exported Config so the on-disk
// format can evolve (renamed keys, new validation) without changing
// the struct callers hold.
type configuration struct {
	ValidationMode  string   `yaml:"validationMode"`
	StrictElements  bool     `yaml:"strictElements"`
	OutputDir       string   `yaml:"outputDir"`
	ServerAddr      string   `yaml:"serverAddr"`
	RateLimitRPS    int      `yaml:"rateLimitRPS"`
	RateLimitBurst  int      `yaml:"rateLimitBurst"`
	TagFilter       []string `yaml:"tagFilter"`
	ReportVerbosity string   `yaml:"reportVerbosity"`
}

// Validation modes accepted by the ValidationMode config key.
const (
	ValidationLenient = iota
	ValidationStrict
)

// Report verbosity levels accepted by the reportVerbosity config key.
const (
	VerbositySummary = iota
	VerbosityFull
)

// Config is the resolved, validated configuration used throughout the
// program. Default() returns the built-in values; the zero Config
// differs from it (summary verbosity, zero rate limits, empty
// output directory and server address).
type Config struct {
	Path string

	ValidationMode int

	// StrictElements makes report.Render return an error for a tag
	// that failed to decode or has an unregistered type, instead of
	// rendering the row inline ("<failed: ...>" for a failed tag, the
	// untyped description for an unregistered one).
	StrictElements bool

	// OutputDir is the default directory sidecar LUTs are written to
	// when no explicit path is given on the command line.
	OutputDir string

	ServerAddr     string
	RateLimitRPS   int
	RateLimitBurst int

	// TagFilter restricts a rendered report to tags whose signature
	// appears in the list. An empty list reports every tag.
	TagFilter []string

	// Verbosity controls how much of a report renderTags and
	// renderDiagnostics print: VerbositySummary prints only the tag
	// and diagnostic counts, VerbosityFull prints every row.
	Verbosity int
}

// Default returns the configuration used when no config file is
// loaded.
func Default() *Config {
	return &Config{
		ValidationMode: ValidationLenient,
		StrictElements: false,
		OutputDir:      ".",
		ServerAddr:     ":8080",
		RateLimitRPS:   5,
		RateLimitBurst: 10,
		TagFilter:      nil,
		Verbosity:      VerbosityFull,
	}
}

// Load reads and validates a YAML configuration file at path,
// returning a Config seeded from Default() for any key the file
// omits.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open config")
	}
	defer f.Close()
	return parse(f, path)
}

func parse(r io.Reader, path string) (*Config, error) {
	def := Default()
	c := configuration{
		ValidationMode:  "lenient",
		OutputDir:       def.OutputDir,
		ServerAddr:      def.ServerAddr,
		RateLimitRPS:    def.RateLimitRPS,
		RateLimitBurst:  def.RateLimitBurst,
		TagFilter:       def.TagFilter,
		ReportVerbosity: "full",
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(buf.Bytes(), &c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}

	cfg := &Config{
		Path:           path,
		StrictElements: c.StrictElements,
		OutputDir:      c.OutputDir,
		ServerAddr:     c.ServerAddr,
		RateLimitRPS:   c.RateLimitRPS,
		RateLimitBurst: c.RateLimitBurst,
		TagFilter:      c.TagFilter,
	}

	switch strings.ToLower(c.ValidationMode) {
	case "lenient", "":
		cfg.ValidationMode = ValidationLenient
	case "strict":
		cfg.ValidationMode = ValidationStrict
	default:
		return nil, errors.Errorf("invalid validationMode: %s", c.ValidationMode)
	}

	switch strings.ToLower(c.ReportVerbosity) {
	case "full", "":
		cfg.Verbosity = VerbosityFull
	case "summary":
		cfg.Verbosity = VerbositySummary
	default:
		return nil, errors.Errorf("invalid reportVerbosity: %s", c.ReportVerbosity)
	}

	if cfg.RateLimitRPS <= 0 {
		return nil, errors.Errorf("rateLimitRPS must be positive, got %d", cfg.RateLimitRPS)
	}
	if cfg.RateLimitBurst <= 0 {
		return nil, errors.Errorf("rateLimitBurst must be positive, got %d", cfg.RateLimitBurst)
	}

	return cfg, nil
}

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

// Package api is the thin, file-oriented entry point the CLI and
// other embedders use to decode a profile, render its report, and
// optionally write a LUT sidecar — without touching pkg/icc's byte
// offsets directly.
package api

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/mechiko/iccinspect/pkg/config"
	"github.com/mechiko/iccinspect/pkg/icc"
	"github.com/mechiko/iccinspect/pkg/lut"
	"github.com/mechiko/iccinspect/pkg/report"
)

// Decode reads all of r and decodes it as an ICC profile.
func Decode(r io.Reader, cfg *config.Config) (*icc.Profile, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "read profile")
	}

	p, err := icc.Decode(buf)
	if err != nil {
		return nil, err
	}

	if cfg != nil && cfg.ValidationMode == config.ValidationStrict && len(p.Diagnostics) > 0 {
		return p, errors.Errorf("%d diagnostic(s) recorded under strict validation: %v", len(p.Diagnostics), p.Diagnostics.Err())
	}

	return p, nil
}

// DecodeFile opens inFile and decodes it as an ICC profile.
func DecodeFile(inFile string, cfg *config.Config) (*icc.Profile, error) {
	f, err := os.Open(inFile)
	if err != nil {
		return nil, errors.Wrap(err, "open profile")
	}
	defer f.Close()
	return Decode(f, cfg)
}

// Report renders a one-file text report.
func Report(inFile string, cfg *config.Config) (string, error) {
	p, err := DecodeFile(inFile, cfg)
	if p == nil {
		return "", err
	}

	var out bytes.Buffer
	if rerr := report.Render(&out, p, cfg); rerr != nil {
		return "", rerr
	}
	return out.String(), err
}

// ReportFiles renders a report for each of inFiles, prefixing each
// with its filename, and collects (rather than aborting on) a
// per-file decode error when more than one file was given.
func ReportFiles(inFiles []string, cfg *config.Config) (string, error) {
	var out bytes.Buffer

	for i, fn := range inFiles {
		if i > 0 {
			fmt.Fprintln(&out)
		}
		fmt.Fprintf(&out, "%s:\n", fn)

		s, err := Report(fn, cfg)
		if err != nil {
			if len(inFiles) == 1 {
				return "", err
			}
			fmt.Fprintf(os.Stderr, "%s: %v\n", fn, err)
		}
		out.WriteString(s)
	}

	return out.String(), nil
}

// ExtractLUT decodes inFile and writes every sampled "curv" tag
// (count > 1) as a "<signature>.spi1d" sidecar under outDir, returning
// the paths written in tag-table order. outDir falls back to
// cfg.OutputDir when empty.
func ExtractLUT(inFile, outDir string, cfg *config.Config) ([]string, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	p, err := DecodeFile(inFile, cfg)
	if p == nil {
		return nil, err
	}
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	var written []string
	for _, t := range p.TagTable.Tags {
		curve, ok := t.Element.(icc.Curve)
		if !ok || curve.Kind != icc.CurveSampled {
			continue
		}

		outFile := filepath.Join(outDir, t.Signature+".spi1d")
		if werr := writeCurveSidecar(outFile, curve); werr != nil {
			return written, werr
		}
		written = append(written, outFile)
	}
	return written, nil
}

func writeCurveSidecar(outFile string, curve icc.Curve) error {
	f, err := os.Create(outFile)
	if err != nil {
		return errors.Wrap(err, "create sidecar")
	}
	defer f.Close()

	return lut.WriteSPI1D(f, curve)
}

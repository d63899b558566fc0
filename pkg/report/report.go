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

// Package report renders a decoded profile as a human-readable text
// report: a labelled header block followed by a column-aligned tag
// table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/pkg/errors"

	"github.com/mechiko/iccinspect/pkg/config"
	"github.com/mechiko/iccinspect/pkg/icc"
)

// Render writes a text report for p to w, honoring cfg's tag filter,
// verbosity, and strict-element settings. A nil cfg behaves like
// config.Default(). Render returns an error only when cfg.StrictElements
// is set and some tag's element failed to decode or carries an
// unregistered type signature; a malformed profile otherwise still
// produces a report, with its Diagnostics listed at the end.
func Render(w io.Writer, p *icc.Profile, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}

	var ss []string
	renderHeader(&ss, p)
	ss = append(ss, "")
	if err := renderTags(&ss, p, cfg); err != nil {
		return err
	}
	if len(p.Diagnostics) > 0 {
		ss = append(ss, "")
		renderDiagnostics(&ss, p, cfg)
	}
	_, err := fmt.Fprintln(w, strings.Join(ss, "\n"))
	return err
}

func renderHeader(ss *[]string, p *icc.Profile) {
	h := p.Header
	field := func(label, value string) {
		*ss = append(*ss, fmt.Sprintf("%24s: %s", label, value))
	}

	field("Profile Size", fmt.Sprintf("%d bytes", h.ProfileSize))
	field("Preferred CMM", h.PreferredCMM)
	field("Version", h.Version.String())
	field("Device Class", h.DeviceClass.String())
	field("Data Color Space", h.DataColorSpace.String())
	field("PCS", h.PCS.String())
	if h.CreatedValid {
		field("Created", h.Created.Format("2006-01-02 15:04:05"))
	} else {
		field("Created", "None")
	}
	field("File Signature", h.FileSignature)
	field("Primary Platform", h.PrimaryPlatform.String())
	field("Device Manufacturer", h.DeviceManufacturer)
	field("Device Model", h.DeviceModel)
	field("Rendering Intent", fmt.Sprintf("%d, %s", h.RenderingIntent, h.RenderingIntentDesc))
	field("PCS Illuminant", h.PCSIlluminant.String())
	field("Profile Creator", h.ProfileCreator)
	if id := h.ProfileIDHex(); id != "" {
		field("Profile ID", id)
	}
}

// renderTags lists each tag as a width-aligned row: signature, type
// signature, offset, size, and the decoded element's description.
// Column widths are measured with go-runewidth so non-ASCII element
// text (e.g. decoded mluc locale strings) still lines up. When
// cfg.TagFilter is non-empty, only tags whose signature appears in it
// are listed. When cfg.Verbosity is VerbositySummary, only the tag
// count is printed. When cfg.StrictElements is set, a tag that failed
// to decode or carries an unregistered type signature aborts the
// report instead of rendering a "<failed: ...>" placeholder.
func renderTags(ss *[]string, p *icc.Profile, cfg *config.Config) error {
	tags := filterTags(p.TagTable.Tags, cfg.TagFilter)
	*ss = append(*ss, fmt.Sprintf("Tags: %d", len(tags)))
	if len(tags) == 0 || cfg.Verbosity == config.VerbositySummary {
		return nil
	}

	sigW, typeW := runewidth.StringWidth("Signature"), runewidth.StringWidth("Type")
	for _, t := range tags {
		if w := runewidth.StringWidth(t.Signature); w > sigW {
			sigW = w
		}
		if w := runewidth.StringWidth(t.TypeSignature); w > typeW {
			typeW = w
		}
	}

	*ss = append(*ss, padRight("Signature", sigW)+"  "+padRight("Type", typeW)+"  "+fmt.Sprintf("%10s  %10s", "Offset", "Size")+"  Value")
	for _, t := range tags {
		value := "<failed>"
		switch {
		case t.Failed != nil:
			if cfg.StrictElements {
				return errors.Errorf("tag %q: %v", t.Signature, t.Failed)
			}
			value = fmt.Sprintf("<failed: %v>", t.Failed)
		case t.Element != nil:
			if cfg.StrictElements {
				if _, ok := t.Element.(icc.Untyped); ok {
					return errors.Errorf("tag %q: unregistered element type %q", t.Signature, t.TypeSignature)
				}
			}
			value = t.Element.String()
		}
		row := padRight(t.Signature, sigW) + "  " + padRight(t.TypeSignature, typeW) + "  " + fmt.Sprintf("%10d  %10d", t.Offset, t.Size) + "  " + value
		*ss = append(*ss, row)
	}
	return nil
}

// filterTags returns the subset of tags whose signature appears in
// filter, or tags unchanged when filter is empty.
func filterTags(tags []icc.Tag, filter []string) []icc.Tag {
	if len(filter) == 0 {
		return tags
	}
	allow := make(map[string]bool, len(filter))
	for _, sig := range filter {
		allow[sig] = true
	}
	out := make([]icc.Tag, 0, len(tags))
	for _, t := range tags {
		if allow[t.Signature] {
			out = append(out, t)
		}
	}
	return out
}

func renderDiagnostics(ss *[]string, p *icc.Profile, cfg *config.Config) {
	*ss = append(*ss, fmt.Sprintf("Diagnostics: %d", len(p.Diagnostics)))
	if cfg.Verbosity == config.VerbositySummary {
		return
	}
	for _, d := range p.Diagnostics {
		*ss = append(*ss, "  "+d.String())
	}
}

func padRight(s string, w int) string {
	if pad := w - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}

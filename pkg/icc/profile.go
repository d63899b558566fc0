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

package icc

import "github.com/pkg/errors"

// state is the Profile's one-way decode lifecycle (spec.md §4.5:
// "State machines"). Element decoders themselves are stateless; only
// the Profile tracks where it is in the pipeline.
type state int

const (
	stateEmpty state = iota
	stateHeaderDecoded
	stateTagsDecoded
)

// Profile is the whole decoded document: one Header and one
// TagTable, built by a single Decode pass over an immutable input
// buffer. A Profile is not re-entrant: Decode may only run once per
// instance.
type Profile struct {
	Header      Header
	TagTable    TagTable
	Diagnostics Diagnostics

	// bufLen is the number of bytes actually read from, for the §3
	// "buffer length >= declared profile size" structural check.
	bufLen int
	state  state
}

// Decode parses buf as a complete ICC profile: the 128-byte header,
// then the tag table, then each tag's referenced element. Decode is
// atomic from the caller's perspective (spec.md §5) — it either
// returns a fatal error (Truncated header or tag count, NotAProfile) or a fully
// populated Profile with any remaining issues recorded as
// Diagnostics rather than returned.
func Decode(buf []byte) (*Profile, error) {
	p := &Profile{bufLen: len(buf)}

	h, err := decodeHeader(buf, &p.Diagnostics)
	if err != nil {
		return nil, err
	}
	p.Header = h
	p.state = stateHeaderDecoded

	if uint64(len(buf)) < uint64(h.ProfileSize) {
		p.Diagnostics.addField(KindBadHeaderField, "profile size", errors.Errorf(
			"buffer length %d is shorter than declared profile size %d", len(buf), h.ProfileSize).Error())
	}

	table, err := decodeTagTable(buf, &p.Diagnostics)
	if err != nil {
		return nil, err
	}
	p.TagTable = table
	p.state = stateTagsDecoded

	return p, nil
}

// Tag returns the first tag with the given signature and whether it
// was found. Duplicate signatures return only the first occurrence;
// iterate p.TagTable.Tags directly to see every occurrence.
func (p *Profile) Tag(signature string) (Tag, bool) {
	for _, t := range p.TagTable.Tags {
		if t.Signature == signature {
			return t, true
		}
	}
	return Tag{}, false
}

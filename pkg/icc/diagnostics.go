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

import (
	"fmt"

	"go.uber.org/multierr"
)

// Diagnostic records one non-fatal decode condition: a field-local
// header failure or a tag-local element failure. Diagnostics never
// abort decode; see the Kind-specific propagation policy.
type Diagnostic struct {
	Kind Kind

	// Field is set for header diagnostics (e.g. "created", "rendering
	// intent"); empty for tag diagnostics.
	Field string

	// TagIndex and TagSignature are set for tag-local diagnostics;
	// TagIndex is -1 for field-local diagnostics.
	TagIndex     int
	TagSignature string

	Message string
}

func (d Diagnostic) String() string {
	if d.TagIndex >= 0 {
		return fmt.Sprintf("%s: tag %d (%q): %s", d.Kind, d.TagIndex, d.TagSignature, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Kind, d.Field, d.Message)
}

// Diagnostics is the ordered collection of non-fatal conditions
// recorded during one decode.
type Diagnostics []Diagnostic

func (d *Diagnostics) addField(kind Kind, field, message string) {
	*d = append(*d, Diagnostic{Kind: kind, Field: field, TagIndex: -1, Message: message})
}

func (d *Diagnostics) addTag(kind Kind, index int, sig, message string) {
	*d = append(*d, Diagnostic{Kind: kind, TagIndex: index, TagSignature: sig, Message: message})
}

// Err aggregates every recorded diagnostic into a single error via
// go.uber.org/multierr, or nil if there are none. This is a
// convenience for callers that want one error value; the report
// renderer always walks Diagnostics individually instead.
func (d Diagnostics) Err() error {
	var err error
	for _, diag := range d {
		err = multierr.Append(err, fmt.Errorf("%s", diag.String()))
	}
	return err
}

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

// Kind classifies a decode condition, fatal or not.
type Kind int

// The error kinds a decode can raise or record.
const (
	KindTruncated Kind = iota
	KindNotAProfile
	KindBadHeaderField
	KindBadDate
	KindBadParametric
	KindBadElement
	KindUnknownElementType
)

func (k Kind) String() string {
	switch k {
	case KindTruncated:
		return "Truncated"
	case KindNotAProfile:
		return "NotAProfile"
	case KindBadHeaderField:
		return "BadHeaderField"
	case KindBadDate:
		return "BadDate"
	case KindBadParametric:
		return "BadParametric"
	case KindBadElement:
		return "BadElement"
	case KindUnknownElementType:
		return "UnknownElementType"
	default:
		return "Unknown"
	}
}

// ErrNotAProfile is returned when the file signature at offset 36 is
// not "acsp". Decoding a profile aborts on this error.
var ErrNotAProfile = errors.New("icc: file signature is not \"acsp\"")

// ErrTruncated is returned when a read would pass the end of the
// buffer it is scoped to.
var ErrTruncated = errors.New("icc: truncated buffer")

// errTruncated reports a truncation at a named field, wrapping
// ErrTruncated so callers can still match it with errors.Is.
func errTruncated(field string, need, have int) error {
	return errors.Wrapf(ErrTruncated, "%s: need %d bytes, have %d", field, need, have)
}

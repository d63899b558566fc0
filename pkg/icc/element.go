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

import "fmt"

// Element is the decoded value of one tag's referenced data. Its
// concrete type is chosen by the four-byte type signature at the
// start of the referenced region (see the decoder registry in
// registry.go). Callers switch on the concrete type, or use String
// for the stable report rendering.
type Element interface {
	// TypeSignature is the 4-byte signature this element was decoded
	// from ("curv", "XYZ ", "mluc", ...).
	TypeSignature() string

	fmt.Stringer
}

// elementDecoder decodes the element-typed payload in
// buf[offset:offset+size]. decodeTag passes buf already cut to the
// tag's own span (offset 0), so a decoder cannot read past it.
type elementDecoder func(offset, size int, buf []byte) (Element, error)

// Untyped is recorded when a tag's type signature has no registered
// decoder. The payload is preserved verbatim as (signature, offset,
// size) and reported without attempting to decode it further.
type Untyped struct {
	Signature string
	Offset    int
	Size      int
}

func (u Untyped) TypeSignature() string { return u.Signature }

func (u Untyped) String() string {
	return fmt.Sprintf("untyped %q (offset %d, size %d)", u.Signature, u.Offset, u.Size)
}

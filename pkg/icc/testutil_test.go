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
	"encoding/binary"
	"math"
)

// putU32 / putU16 write big-endian integers at off; b must already
// be long enough. Tests build profile byte buffers by hand, matching
// spec.md's literal end-to-end scenarios (E1-E7).

func putU32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:], v)
}

func putU16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:], v)
}

func putSig(b []byte, off int, sig string) {
	copy(b[off:off+4], sig)
}

func putS15Fixed16(b []byte, off int, v float64) {
	binary.BigEndian.PutUint32(b[off:], uint32(int32(math.Round(v*65536))))
}

func putU8Fixed8(b []byte, off int, v float64) {
	binary.BigEndian.PutUint16(b[off:], uint16(uint32(math.Round(v*256))))
}

// minimalHeader builds a 128-byte header: profile size, "acsp" file
// signature, the given rendering intent, and the given PCS
// illuminant, with tag count 0 immediately following (spec.md §8 E1).
func minimalHeader(renderingIntent uint32, x, y, z float64) []byte {
	b := make([]byte, 132)
	putU32(b, 0, 128) // profile size
	putSig(b, 36, "acsp")
	putU32(b, 64, renderingIntent)
	putS15Fixed16(b, 68, x)
	putS15Fixed16(b, 72, y)
	putS15Fixed16(b, 76, z)
	putU32(b, 128, 0) // tag count
	return b
}

// withOneTag appends one tag-table entry (signature, offset, size)
// pointing at payload, placing the payload right after the table.
func withOneTag(header []byte, sig string, payload []byte) []byte {
	b := make([]byte, len(header))
	copy(b, header)
	putU32(b, 128, 1) // tag count

	tagOff := uint32(len(b) + 12) // entry follows the existing 0-entry table slot we grow below
	entry := make([]byte, 12)
	putSig(entry, 0, sig)
	putU32(entry, 4, tagOff)
	putU32(entry, 8, uint32(len(payload)))

	b = append(b[:132], entry...)
	b = append(b, payload...)
	return b
}

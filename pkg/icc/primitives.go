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

// Package icc decodes ICC.1 binary color profiles: the 128-byte
// fixed header, the tag table, and the typed data each tag refers
// to. Byte order is big-endian throughout, matching the ICC.1
// specification.
package icc

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"

	"github.com/pkg/errors"
)

// Encoding selects how readString interprets raw bytes.
type Encoding int

// Supported string encodings. Unspecified encoding defaults to UTF-8.
const (
	EncodingUTF8 Encoding = iota
	EncodingASCII
	EncodingUTF16BE
)

// readUint8 reads a big-endian u8 at off.
func readUint8(b []byte, off int) (uint8, error) {
	if off < 0 || off+1 > len(b) {
		return 0, errTruncated("u8", 1, len(b)-off)
	}
	return b[off], nil
}

// readUint16 reads a big-endian u16 at off.
func readUint16(b []byte, off int) (uint16, error) {
	if off < 0 || off+2 > len(b) {
		return 0, errTruncated("u16", 2, len(b)-off)
	}
	return binary.BigEndian.Uint16(b[off:]), nil
}

// readUint32 reads a big-endian u32 at off.
func readUint32(b []byte, off int) (uint32, error) {
	if off < 0 || off+4 > len(b) {
		return 0, errTruncated("u32", 4, len(b)-off)
	}
	return binary.BigEndian.Uint32(b[off:]), nil
}

// readUint64 reads a big-endian u64 at off.
func readUint64(b []byte, off int) (uint64, error) {
	if off < 0 || off+8 > len(b) {
		return 0, errTruncated("u64", 8, len(b)-off)
	}
	return binary.BigEndian.Uint64(b[off:]), nil
}

// readS15Fixed16 reads a signed 16.16 fixed-point value: a signed
// 32-bit two's-complement integer divided by 2^16.
func readS15Fixed16(b []byte, off int) (float64, error) {
	if off < 0 || off+4 > len(b) {
		return 0, errTruncated("s15Fixed16", 4, len(b)-off)
	}
	v := int32(binary.BigEndian.Uint32(b[off:]))
	return float64(v) / 65536.0, nil
}

// readU8Fixed8 reads an unsigned 8.8 fixed-point value: an unsigned
// 16-bit integer divided by 2^8.
func readU8Fixed8(b []byte, off int) (float64, error) {
	v, err := readUint16(b, off)
	if err != nil {
		return 0, err
	}
	return float64(v) / 256.0, nil
}

// readTagSignature reads the exactly-4-byte ASCII signature at off,
// retained verbatim including trailing spaces.
func readTagSignature(b []byte, off int) (string, error) {
	if off < 0 || off+4 > len(b) {
		return "", errTruncated("signature", 4, len(b)-off)
	}
	return string(b[off : off+4]), nil
}

// readString decodes length bytes starting at off under enc.
func readString(b []byte, off, length int, enc Encoding) (string, error) {
	if length < 0 || off < 0 || off+length > len(b) {
		return "", errTruncated("string", length, len(b)-off)
	}
	raw := b[off : off+length]

	switch enc {
	case EncodingASCII:
		return strings.TrimRight(string(raw), "\x00"), nil
	case EncodingUTF16BE:
		return decodeUTF16BE(raw)
	default:
		return strings.TrimRight(string(raw), "\x00"), nil
	}
}

// decodeUTF16BE decodes a big-endian UTF-16 byte string (no byte
// order mark expected; the caller already knows the encoding from
// the element's type layout).
func decodeUTF16BE(b []byte) (string, error) {
	if len(b)%2 != 0 {
		return "", errors.New("icc: odd-length UTF-16BE byte sequence")
	}
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.BigEndian.Uint16(b[2*i:])
	}
	return strings.TrimRight(string(utf16.Decode(units)), "\x00"), nil
}

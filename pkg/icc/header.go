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
	"encoding/hex"
	"fmt"
	"time"

	"github.com/pkg/errors"
)

// HeaderSize is the fixed size, in bytes, of the ICC profile header.
const HeaderSize = 128

// fileSignature is the required value of the header's file
// signature field at offset 36.
const fileSignature = "acsp"

// Tagged enum fields carry both the raw 4-byte signature and its
// looked-up description.
type TaggedValue struct {
	Signature   string
	Description string
}

func (t TaggedValue) String() string {
	return fmt.Sprintf("%q, %s", t.Signature, t.Description)
}

// Version is the profile's major.minor.bugfix version, decoded from
// the nibble-packed byte at offset 9.
type Version struct {
	Major, Minor, Bugfix uint8
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Bugfix)
}

// Header is the decoded 128-byte profile header (spec.md §3).
type Header struct {
	ProfileSize        uint32
	PreferredCMM       string
	Version            Version
	DeviceClass        TaggedValue
	DataColorSpace     TaggedValue
	PCS                TaggedValue
	Created            time.Time
	CreatedValid       bool
	FileSignature      string
	PrimaryPlatform    TaggedValue
	ProfileFlags       uint32
	DeviceManufacturer string
	DeviceModel        string
	DeviceAttributes   uint64
	RenderingIntent    uint32
	RenderingIntentDesc string
	PCSIlluminant      XYZ
	ProfileCreator     string
	ProfileID          [16]byte
}

// decodeHeader reads the 128-byte profile header at its fixed
// offsets. Fatal conditions (buffer too short, bad file signature)
// abort with an error; everything else is recorded as a Diagnostic
// against the relevant field and the decode continues with a
// placeholder value.
func decodeHeader(b []byte, diags *Diagnostics) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, errors.Wrapf(ErrTruncated, "header: need %d bytes, have %d", HeaderSize, len(b))
	}

	var h Header

	size, _ := readUint32(b, 0)
	h.ProfileSize = size

	cmm, _ := readTagSignature(b, 4)
	h.PreferredCMM = cmm

	major, _ := readUint8(b, 8)
	minorBugfix, _ := readUint8(b, 9)
	h.Version = Version{
		Major:  major,
		Minor:  minorBugfix >> 4,
		Bugfix: minorBugfix & 0x0F,
	}

	h.DeviceClass = readTaggedField(b, 12, deviceClassSignatures)
	h.DataColorSpace = readTaggedField(b, 16, colorSpaceSignatures)
	h.PCS = readTaggedField(b, 20, colorSpaceSignatures)

	h.Created, h.CreatedValid = decodeCreated(b, 24, diags)

	sig, _ := readTagSignature(b, 36)
	h.FileSignature = sig
	if sig != fileSignature {
		return Header{}, errors.Wrapf(ErrNotAProfile, "got %q", sig)
	}

	h.PrimaryPlatform = readTaggedField(b, 40, primaryPlatformSignatures)

	flags, _ := readUint32(b, 44)
	h.ProfileFlags = flags

	mfg, _ := readTagSignature(b, 48)
	h.DeviceManufacturer = mfg

	model, _ := readTagSignature(b, 52)
	h.DeviceModel = model

	attrs, _ := readUint64(b, 56)
	h.DeviceAttributes = attrs

	intent, _ := readUint32(b, 64)
	h.RenderingIntent = intent
	if desc, ok := renderingIntentNames[intent]; ok {
		h.RenderingIntentDesc = desc
	} else {
		diags.addField(KindBadHeaderField, "rendering intent",
			fmt.Sprintf("unknown rendering intent %d", intent))
		h.RenderingIntentDesc = noDescription
	}

	illum, err := readXYZ(b, 68)
	if err != nil {
		diags.addField(KindBadHeaderField, "PCS illuminant", err.Error())
	}
	h.PCSIlluminant = illum

	creator, _ := readTagSignature(b, 80)
	h.ProfileCreator = creator

	copy(h.ProfileID[:], b[84:100])

	return h, nil
}

func readTaggedField(b []byte, off int, table map[string]string) TaggedValue {
	sig, _ := readTagSignature(b, off)
	return TaggedValue{Signature: sig, Description: lookupDescription(table, sig)}
}

// decodeCreated reads the six creation-date u16 fields (Y,M,D,h,m,s)
// and builds a time.Time. If they do not form a valid calendar date
// a Null date (CreatedValid == false) is recorded instead of
// rejecting the profile.
func decodeCreated(b []byte, off int, diags *Diagnostics) (time.Time, bool) {
	year, e1 := readUint16(b, off)
	month, e2 := readUint16(b, off+2)
	day, e3 := readUint16(b, off+4)
	hour, e4 := readUint16(b, off+6)
	min, e5 := readUint16(b, off+8)
	sec, e6 := readUint16(b, off+10)

	if e1 != nil || e2 != nil || e3 != nil || e4 != nil || e5 != nil || e6 != nil {
		diags.addField(KindBadDate, "created", "truncated creation date")
		return time.Time{}, false
	}

	if month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || min > 59 || sec > 60 {
		diags.addField(KindBadDate, "created",
			fmt.Sprintf("invalid calendar date %04d-%02d-%02d %02d:%02d:%02d", year, month, day, hour, min, sec))
		return time.Time{}, false
	}

	t := time.Date(int(year), time.Month(month), int(day), int(hour), int(min), int(sec), 0, time.UTC)
	// time.Date silently normalizes out-of-range day-of-month values
	// (e.g. Feb 30) instead of erroring; detect that and fall back to
	// a Null date rather than reporting a shifted date.
	if t.Year() != int(year) || t.Month() != time.Month(month) || t.Day() != int(day) {
		diags.addField(KindBadDate, "created",
			fmt.Sprintf("calendar date does not exist: %04d-%02d-%02d", year, month, day))
		return time.Time{}, false
	}

	return t, true
}

// ProfileIDHex returns the profile ID as a hex string, or an empty
// string if the ID is all zeroes (i.e. unset).
func (h Header) ProfileIDHex() string {
	if h.ProfileID == ([16]byte{}) {
		return ""
	}
	return hex.EncodeToString(h.ProfileID[:])
}

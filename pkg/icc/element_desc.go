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

	"github.com/pkg/errors"
)

// scriptCodeTailSize is the fixed byte span of the ScriptCode
// description tail in a textDescriptionType, regardless of the
// declared ScriptCode count (spec.md §4.5: "the count is the logical
// character count, not the byte span").
const scriptCodeTailSize = 67

// Description decodes a "desc" (textDescriptionType) tagged element:
// an ASCII description, a Unicode description, and a ScriptCode
// description, read sequentially.
type Description struct {
	ASCII             string
	UnicodeLanguage   uint32
	Unicode           string
	ScriptCodeCode    uint16
	ScriptCodeCount   uint8
	ScriptCode        string
}

func (d Description) TypeSignature() string { return "desc" }

func (d Description) String() string {
	if d.ASCII != "" {
		return fmt.Sprintf("%q", d.ASCII)
	}
	return fmt.Sprintf("%q", d.Unicode)
}

func decodeDescription(offset, size int, buf []byte) (Element, error) {
	if size < 12 {
		return nil, errors.Errorf("desc element too small: %d bytes", size)
	}

	asciiCount, err := readUint32(buf, offset+8)
	if err != nil {
		return nil, err
	}
	endOfASCII := offset + 12 + int(asciiCount)
	ascii, err := readString(buf, offset+12, int(asciiCount), EncodingASCII)
	if err != nil {
		return nil, errors.Wrap(err, "desc ASCII description")
	}

	unicodeLang, err := readUint32(buf, endOfASCII)
	if err != nil {
		return nil, errors.Wrap(err, "desc Unicode language code")
	}
	unicodeCount, err := readUint32(buf, endOfASCII+4)
	if err != nil {
		return nil, errors.Wrap(err, "desc Unicode count")
	}
	// unicodeCount is read as a byte span, not a UTF-16 character
	// count: the spec text is silent on the multiplier and
	// original_source/iccinspector.py decodes this region directly as
	// 8-bit text, so we follow that reading rather than assume a
	// UTF-16 doubling the spec never states.
	endOfUnicode := endOfASCII + 8 + int(unicodeCount)
	unicode := ""
	if unicodeCount > 0 {
		unicode, err = readString(buf, endOfASCII+8, int(unicodeCount), EncodingASCII)
		if err != nil {
			return nil, errors.Wrap(err, "desc Unicode description")
		}
	}

	scCode, err := readUint16(buf, endOfUnicode)
	if err != nil {
		return nil, errors.Wrap(err, "desc ScriptCode code")
	}
	scCount, err := readUint8(buf, endOfUnicode+2)
	if err != nil {
		return nil, errors.Wrap(err, "desc ScriptCode count")
	}
	sc, err := readString(buf, endOfUnicode+3, scriptCodeTailSize, EncodingASCII)
	if err != nil {
		return nil, errors.Wrap(err, "desc ScriptCode description")
	}

	return Description{
		ASCII:           ascii,
		UnicodeLanguage: unicodeLang,
		Unicode:         unicode,
		ScriptCodeCode:  scCode,
		ScriptCodeCount: scCount,
		ScriptCode:      sc,
	}, nil
}

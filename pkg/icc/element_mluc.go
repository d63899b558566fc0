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
	"strings"

	"github.com/pkg/errors"
)

// MLUCRecord is one localized string record within a "mluc"
// (multiLocalizedUnicodeType) element.
type MLUCRecord struct {
	Language string
	Country  string
	Text     string
}

func (r MLUCRecord) String() string {
	return fmt.Sprintf("[%s, %s, %q]", r.Language, r.Country, r.Text)
}

// MultiLocalizedUnicode decodes a "mluc" tagged element: a record
// count and record size, then that many (language, country, string)
// records. Each record's string offset is relative to the start of
// the element itself.
type MultiLocalizedUnicode struct {
	Records []MLUCRecord
}

func (m MultiLocalizedUnicode) TypeSignature() string { return "mluc" }

func (m MultiLocalizedUnicode) String() string {
	parts := make([]string, len(m.Records))
	for i, r := range m.Records {
		parts[i] = r.String()
	}
	return strings.Join(parts, ", ")
}

func decodeMLUC(offset, size int, buf []byte) (Element, error) {
	if size < 16 {
		return nil, errors.Errorf("mluc element too small: %d bytes", size)
	}

	recordCount, err := readUint32(buf, offset+8)
	if err != nil {
		return nil, err
	}
	recordSize, err := readUint32(buf, offset+12)
	if err != nil {
		return nil, err
	}
	_ = recordSize // declared per spec but each record's own layout is fixed at 12 bytes

	records := make([]MLUCRecord, 0, recordCount)
	for i := uint32(0); i < recordCount; i++ {
		recOff := offset + 16 + int(i)*12

		lang, err := readString(buf, recOff, 2, EncodingASCII)
		if err != nil {
			return nil, errors.Wrapf(err, "mluc record %d language", i)
		}
		country, err := readString(buf, recOff+2, 2, EncodingASCII)
		if err != nil {
			return nil, errors.Wrapf(err, "mluc record %d country", i)
		}
		strSize, err := readUint32(buf, recOff+4)
		if err != nil {
			return nil, errors.Wrapf(err, "mluc record %d size", i)
		}
		strOff, err := readUint32(buf, recOff+8)
		if err != nil {
			return nil, errors.Wrapf(err, "mluc record %d offset", i)
		}

		if int(strOff)+int(strSize) > size {
			return nil, errors.Errorf("mluc record %d: string (offset %d, size %d) exceeds element bounds %d", i, strOff, strSize, size)
		}

		text, err := readString(buf, offset+int(strOff), int(strSize), EncodingUTF16BE)
		if err != nil {
			return nil, errors.Wrapf(err, "mluc record %d text", i)
		}

		records = append(records, MLUCRecord{Language: lang, Country: country, Text: text})
	}

	return MultiLocalizedUnicode{Records: records}, nil
}

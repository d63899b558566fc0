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

// Text decodes a "text" tagged element: a reserved u32 followed by
// the remaining bytes as an ASCII string.
type Text struct {
	Value string
}

func (t Text) TypeSignature() string { return "text" }

func (t Text) String() string { return fmt.Sprintf("%q", t.Value) }

func decodeText(offset, size int, buf []byte) (Element, error) {
	if size < 8 {
		return nil, errors.Errorf("text element too small: %d bytes", size)
	}
	s, err := readString(buf, offset+8, size-8, EncodingASCII)
	if err != nil {
		return nil, err
	}
	return Text{Value: s}, nil
}

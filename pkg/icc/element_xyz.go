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
	"strings"

	"github.com/pkg/errors"
)

// XYZArray decodes an "XYZ " tagged element: a reserved u32 followed
// by N consecutive XYZ triples, N = (size-8)/12.
type XYZArray struct {
	Values []XYZ
}

func (x XYZArray) TypeSignature() string { return "XYZ " }

func (x XYZArray) String() string {
	var b strings.Builder
	for i, v := range x.Values {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(v.String())
	}
	return b.String()
}

func decodeXYZArray(offset, size int, buf []byte) (Element, error) {
	if size < 8 {
		return nil, errors.Errorf("XYZ element too small: %d bytes", size)
	}
	n := (size - 8) / 12
	values := make([]XYZ, 0, n)
	for i := 0; i < n; i++ {
		v, err := readXYZ(buf, offset+8+i*12)
		if err != nil {
			return nil, errors.Wrapf(err, "XYZ entry %d", i)
		}
		values = append(values, v)
	}
	return XYZArray{Values: values}, nil
}

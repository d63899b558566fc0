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

// S15Fixed16Array decodes an "sf32" (s15Fixed16ArrayType) tagged
// element: a reserved u32 followed by (size-8)/4 s15Fixed16 values.
type S15Fixed16Array struct {
	Values []float64
}

func (s S15Fixed16Array) TypeSignature() string { return "sf32" }

func (s S15Fixed16Array) String() string {
	parts := make([]string, len(s.Values))
	for i, v := range s.Values {
		parts[i] = fmt.Sprintf("%.15f", v)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func decodeSF32(offset, size int, buf []byte) (Element, error) {
	if size < 8 {
		return nil, errors.Errorf("sf32 element too small: %d bytes", size)
	}
	n := (size - 8) / 4
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := readS15Fixed16(buf, offset+8+i*4)
		if err != nil {
			return nil, errors.Wrapf(err, "sf32 value %d", i)
		}
		values[i] = v
	}
	return S15Fixed16Array{Values: values}, nil
}

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

// parametricShape describes one parametric-curve function type: its
// human-readable formula and the ordered parameter names that follow
// the 12-byte para header (spec.md §6).
type parametricShape struct {
	function string
	params   []string
}

var parametricShapes = map[uint16]parametricShape{
	0: {"Y = X^g", []string{"g"}},
	1: {"Y = (aX+b)^g if X >= -b/a else 0", []string{"g", "a", "b"}},
	2: {"Y = (aX+b)^g + c if X >= -b/a else c", []string{"g", "a", "b", "c"}},
	3: {"Y = (aX+b)^g if X >= d else cX", []string{"g", "a", "b", "c", "d"}},
	4: {"Y = (aX+b)^g if X >= d else cX+f", []string{"g", "a", "b", "c", "d", "e", "f"}},
}

// Parametric decodes a "para" (parametricCurveType) tagged element.
type Parametric struct {
	FunctionType uint16
	Function     string
	// Params preserves the parameter order from the function-type
	// table (spec.md §6); Names holds the matching parameter letters.
	Names  []string
	Params []float64
}

func (p Parametric) TypeSignature() string { return "para" }

func (p Parametric) String() string {
	var parts []string
	for i, name := range p.Names {
		parts = append(parts, fmt.Sprintf("%s=%.5f", name, p.Params[i]))
	}
	return fmt.Sprintf("%q (%s)", p.Function, strings.Join(parts, ", "))
}

func decodePara(offset, size int, buf []byte) (Element, error) {
	if size < 12 {
		return nil, errors.Errorf("para element too small: %d bytes", size)
	}
	fn, err := readUint16(buf, offset+8)
	if err != nil {
		return nil, err
	}

	shape, ok := parametricShapes[fn]
	if !ok {
		return nil, errors.Errorf("BadParametric: function type %d not in {0..4}", fn)
	}

	params := make([]float64, len(shape.params))
	for i := range shape.params {
		v, err := readS15Fixed16(buf, offset+12+i*4)
		if err != nil {
			return nil, errors.Wrapf(err, "para parameter %s", shape.params[i])
		}
		params[i] = v
	}

	return Parametric{
		FunctionType: fn,
		Function:     shape.function,
		Names:        shape.params,
		Params:       params,
	}, nil
}

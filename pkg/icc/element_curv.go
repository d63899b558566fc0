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

// CurveKind classifies a decoded "curv" element's shape.
type CurveKind int

// The three curve shapes the curveType layout distinguishes.
const (
	CurveIdentity CurveKind = iota
	CurveGamma
	CurveSampled
)

func (k CurveKind) String() string {
	switch k {
	case CurveIdentity:
		return "Identity Curve"
	case CurveGamma:
		return "Power Function"
	case CurveSampled:
		return "1D Curve"
	default:
		return "Unknown Curve"
	}
}

// Curve decodes a "curv" tagged element.
//
//   - count == 0: identity curve, no samples.
//   - count == 1: a single u8Fixed8 gamma value in Gamma.
//   - count  > 1: Samples holds count u16 values normalized to
//     [0, 1] by dividing by 65535 (spec.md §4.5, not s15Fixed16).
type Curve struct {
	Kind    CurveKind
	Gamma   float64
	Samples []float64
}

func (c Curve) TypeSignature() string { return "curv" }

func (c Curve) String() string {
	switch c.Kind {
	case CurveIdentity:
		return "Identity Curve"
	case CurveGamma:
		return fmt.Sprintf("Power Function, gamma=%.5f", c.Gamma)
	default:
		return fmt.Sprintf("1D Curve, %d samples", len(c.Samples))
	}
}

func decodeCurve(offset, size int, buf []byte) (Element, error) {
	if size < 8 {
		return nil, errors.Errorf("curv element too small: %d bytes", size)
	}
	if size < 12 {
		// No room for an explicit count field; a bare reserved u32 is
		// an implicit identity curve.
		return Curve{Kind: CurveIdentity}, nil
	}
	count, err := readUint32(buf, offset+8)
	if err != nil {
		return nil, err
	}

	switch {
	case count == 0:
		return Curve{Kind: CurveIdentity}, nil
	case count == 1:
		g, err := readU8Fixed8(buf, offset+12)
		if err != nil {
			return nil, errors.Wrap(err, "curv gamma")
		}
		return Curve{Kind: CurveGamma, Gamma: g}, nil
	default:
		if uint64(count)*2 > uint64(size-12) {
			return nil, errors.Errorf("curv element: %d samples exceed element size %d", count, size)
		}
		samples := make([]float64, count)
		for i := uint32(0); i < count; i++ {
			raw, err := readUint16(buf, offset+12+int(i)*2)
			if err != nil {
				return nil, errors.Wrapf(err, "curv sample %d", i)
			}
			samples[i] = float64(raw) / 65535.0
		}
		return Curve{Kind: CurveSampled, Samples: samples}, nil
	}
}

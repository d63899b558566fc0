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

import "fmt"

// XYZ is a decoded CIE XYZ triple together with its derived xyY
// representation.
type XYZ struct {
	X, Y, Z float64

	// Derived chromaticity coordinates. Yxy equals Y (not a typo:
	// the xyY luminance channel reuses the tristimulus Y value).
	X2, Y2, Yxy float64
}

// readXYZ reads three consecutive s15Fixed16 values starting at off
// and derives the xyY representation.
func readXYZ(b []byte, off int) (XYZ, error) {
	x, err := readS15Fixed16(b, off)
	if err != nil {
		return XYZ{}, err
	}
	y, err := readS15Fixed16(b, off+4)
	if err != nil {
		return XYZ{}, err
	}
	z, err := readS15Fixed16(b, off+8)
	if err != nil {
		return XYZ{}, err
	}

	v := XYZ{X: x, Y: y, Z: z, Yxy: y}
	if s := x + y + z; s != 0 {
		v.X2 = x / s
		v.Y2 = y / s
	}
	return v, nil
}

func (v XYZ) String() string {
	return fmt.Sprintf("[X: %.15f, Y: %.15f, Z: %.15f][x: %.15f, y: %.15f, Y: %.15f]",
		v.X, v.Y, v.Z, v.X2, v.Y2, v.Yxy)
}

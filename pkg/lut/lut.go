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

// Package lut writes a decoded 1D curve element out as a ".spi1d"
// sidecar file, the plain-text LUT format read by OpenColorIO and
// compatible color tools.
package lut

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/mechiko/iccinspect/pkg/icc"
)

// ErrNotACurve is returned when asked to write a sidecar for a tag
// whose element is not a decoded Curve with sampled entries.
var ErrNotACurve = errors.New("lut: tag element is not a sampled curve")

// WriteSPI1D writes curve as a ".spi1d" sidecar to w: a "Version 1"
// header, a unit domain ("From 0 1"), the sample count and component
// count, and the normalized samples at 5 decimal digits, one per line,
// braced exactly as OpenColorIO expects.
func WriteSPI1D(w io.Writer, curve icc.Curve) error {
	if curve.Kind != icc.CurveSampled || len(curve.Samples) == 0 {
		return ErrNotACurve
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Version 1\n")
	fmt.Fprintf(&b, "From 0 1\n")
	fmt.Fprintf(&b, "Length %d\n", len(curve.Samples))
	fmt.Fprintf(&b, "Components 1\n")
	fmt.Fprintf(&b, "{\n")
	for _, v := range curve.Samples {
		fmt.Fprintf(&b, "  %.5f\n", v)
	}
	fmt.Fprintf(&b, "}")

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteTagSPI1D looks up signature in p and writes its decoded curve
// as a sidecar. It returns ErrNotACurve if the tag is absent or is not
// a sampled curv element.
func WriteTagSPI1D(w io.Writer, p *icc.Profile, signature string) error {
	tag, ok := p.Tag(signature)
	if !ok {
		return errors.Wrapf(ErrNotACurve, "tag %q not present", signature)
	}
	curve, ok := tag.Element.(icc.Curve)
	if !ok {
		return errors.Wrapf(ErrNotACurve, "tag %q is a %T", signature, tag.Element)
	}
	return WriteSPI1D(w, curve)
}

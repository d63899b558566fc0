package lut_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mechiko/iccinspect/pkg/icc"
	"github.com/mechiko/iccinspect/pkg/lut"
)

func TestWriteSPI1D(t *testing.T) {
	curve := icc.Curve{Kind: icc.CurveSampled, Samples: []float64{0, 0.5, 1}}

	var b strings.Builder
	require.NoError(t, lut.WriteSPI1D(&b, curve))

	want := "Version 1\n" +
		"From 0 1\n" +
		"Length 3\n" +
		"Components 1\n" +
		"{\n" +
		"  0.00000\n" +
		"  0.50000\n" +
		"  1.00000\n" +
		"}"
	require.Equal(t, want, b.String())
}

func TestWriteSPI1DRejectsNonSampledCurve(t *testing.T) {
	var b strings.Builder

	err := lut.WriteSPI1D(&b, icc.Curve{Kind: icc.CurveIdentity})
	require.ErrorIs(t, err, lut.ErrNotACurve)

	err = lut.WriteSPI1D(&b, icc.Curve{Kind: icc.CurveGamma, Gamma: 2.2})
	require.ErrorIs(t, err, lut.ErrNotACurve)
}

func TestWriteSPI1DRejectsEmptySamples(t *testing.T) {
	var b strings.Builder
	err := lut.WriteSPI1D(&b, icc.Curve{Kind: icc.CurveSampled})
	require.ErrorIs(t, err, lut.ErrNotACurve)
}

func TestWriteTagSPI1D(t *testing.T) {
	profile := buildProfileWithCurveTag(t, "rTRC", icc.Curve{
		Kind:    icc.CurveSampled,
		Samples: []float64{0, 1},
	})

	var b strings.Builder
	require.NoError(t, lut.WriteTagSPI1D(&b, profile, "rTRC"))
	require.Contains(t, b.String(), "Length 2")
}

func TestWriteTagSPI1DMissingTag(t *testing.T) {
	profile := buildProfileWithCurveTag(t, "rTRC", icc.Curve{Kind: icc.CurveSampled, Samples: []float64{0, 1}})

	var b strings.Builder
	err := lut.WriteTagSPI1D(&b, profile, "gTRC")
	require.ErrorIs(t, err, lut.ErrNotACurve)
}

func TestWriteTagSPI1DWrongElementType(t *testing.T) {
	profile := &icc.Profile{
		TagTable: icc.TagTable{Tags: []icc.Tag{
			{Signature: "desc", TypeSignature: "desc"},
		}},
	}

	var b strings.Builder
	err := lut.WriteTagSPI1D(&b, profile, "desc")
	require.ErrorIs(t, err, lut.ErrNotACurve)
}

// buildProfileWithCurveTag constructs a minimal in-memory Profile with
// a single tag whose Element is the given curve, bypassing Decode
// since lut only needs the decoded value, not the wire bytes.
func buildProfileWithCurveTag(t *testing.T, signature string, curve icc.Curve) *icc.Profile {
	t.Helper()
	return &icc.Profile{
		TagTable: icc.TagTable{Tags: []icc.Tag{
			{Signature: signature, TypeSignature: "curv", Element: curve},
		}},
	}
}

package api_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mechiko/iccinspect/pkg/api"
	"github.com/mechiko/iccinspect/pkg/config"
)

func putU32(b []byte, off int, v uint32)   { binary.BigEndian.PutUint32(b[off:], v) }
func putSig(b []byte, off int, sig string) { copy(b[off:off+4], sig) }

func minimalProfileBytes() []byte {
	b := make([]byte, 132)
	putU32(b, 0, 128)
	putSig(b, 36, "acsp")
	putU32(b, 64, 0)
	putU32(b, 128, 0)
	return b
}

func writeTempProfile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestDecodeValidatesStrictly(t *testing.T) {
	b := minimalProfileBytes()
	putU32(b, 64, 99) // rendering intent out of domain -> a BadHeaderField diagnostic (besides the zero date's BadDate)

	_, err := api.Decode(strings.NewReader(string(b)), &config.Config{ValidationMode: config.ValidationStrict})
	require.Error(t, err)

	p, err := api.Decode(strings.NewReader(string(b)), &config.Config{ValidationMode: config.ValidationLenient})
	require.NoError(t, err)
	require.NotEmpty(t, p.Diagnostics)
}

func TestDecodeFileNotFound(t *testing.T) {
	_, err := api.DecodeFile(filepath.Join(t.TempDir(), "missing.icc"), config.Default())
	require.Error(t, err)
}

func TestReport(t *testing.T) {
	path := writeTempProfile(t, "profile.icc", minimalProfileBytes())

	out, err := api.Report(path, config.Default())
	require.NoError(t, err)
	require.Contains(t, out, "Profile Size: 128 bytes")
}

func TestReportFilesSingleFileError(t *testing.T) {
	_, err := api.ReportFiles([]string{filepath.Join(t.TempDir(), "missing.icc")}, config.Default())
	require.Error(t, err)
}

func TestReportFilesMultipleContinuesPastError(t *testing.T) {
	good := writeTempProfile(t, "good.icc", minimalProfileBytes())
	missing := filepath.Join(t.TempDir(), "missing.icc")

	out, err := api.ReportFiles([]string{good, missing}, config.Default())
	require.NoError(t, err)
	require.Contains(t, out, good+":")
	require.Contains(t, out, missing+":")
}

func TestExtractLUT(t *testing.T) {
	header := minimalProfileBytes()
	payload := make([]byte, 16)
	putSig(payload, 0, "curv")
	putU32(payload, 8, 2)
	binary.BigEndian.PutUint16(payload[12:], 0)
	binary.BigEndian.PutUint16(payload[14:], 65535)

	putU32(header, 128, 1)
	entry := make([]byte, 12)
	putSig(entry, 0, "rTRC")
	putU32(entry, 4, uint32(len(header)+12))
	putU32(entry, 8, uint32(len(payload)))

	buf := append(header[:132], entry...)
	buf = append(buf, payload...)

	inFile := writeTempProfile(t, "curve.icc", buf)
	outDir := t.TempDir()

	written, err := api.ExtractLUT(inFile, outDir, config.Default())
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(outDir, "rTRC.spi1d")}, written)

	contents, err := os.ReadFile(written[0])
	require.NoError(t, err)
	require.Contains(t, string(contents), "Length 2")
}

func TestExtractLUTNoSampledCurves(t *testing.T) {
	inFile := writeTempProfile(t, "profile.icc", minimalProfileBytes())
	outDir := t.TempDir()

	written, err := api.ExtractLUT(inFile, outDir, config.Default())
	require.NoError(t, err)
	require.Empty(t, written)
}

func TestExtractLUTDefaultsOutDirFromConfig(t *testing.T) {
	header := minimalProfileBytes()
	payload := make([]byte, 16)
	putSig(payload, 0, "curv")
	putU32(payload, 8, 2)
	binary.BigEndian.PutUint16(payload[12:], 0)
	binary.BigEndian.PutUint16(payload[14:], 65535)

	putU32(header, 128, 1)
	entry := make([]byte, 12)
	putSig(entry, 0, "rTRC")
	putU32(entry, 4, uint32(len(header)+12))
	putU32(entry, 8, uint32(len(payload)))

	buf := append(header[:132], entry...)
	buf = append(buf, payload...)

	inFile := writeTempProfile(t, "curve.icc", buf)
	outDir := t.TempDir()
	cfg := config.Default()
	cfg.OutputDir = outDir

	written, err := api.ExtractLUT(inFile, "", cfg)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(outDir, "rTRC.spi1d")}, written)
}

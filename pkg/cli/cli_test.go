package cli_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mechiko/iccinspect/pkg/cli"
	"github.com/mechiko/iccinspect/pkg/config"
)

func putU32(b []byte, off int, v uint32)   { binary.BigEndian.PutUint32(b[off:], v) }
func putSig(b []byte, off int, sig string) { copy(b[off:off+4], sig) }

func writeMinimalProfile(t *testing.T) string {
	t.Helper()
	b := make([]byte, 132)
	putU32(b, 0, 128)
	putSig(b, 36, "acsp")
	putU32(b, 64, 0)
	putU32(b, 128, 0)

	path := filepath.Join(t.TempDir(), "profile.icc")
	require.NoError(t, os.WriteFile(path, b, 0o644))
	return path
}

func TestProcessReport(t *testing.T) {
	path := writeMinimalProfile(t)

	out, err := cli.Process(cli.ReportCommand([]string{path}, config.Default()))
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Contains(t, out[0], "Profile Size: 128 bytes")
}

func TestProcessExtractLUT(t *testing.T) {
	header := make([]byte, 132)
	putU32(header, 0, 128)
	putSig(header, 36, "acsp")
	putU32(header, 64, 0)

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

	inFile := filepath.Join(t.TempDir(), "profile.icc")
	require.NoError(t, os.WriteFile(inFile, buf, 0o644))
	outDir := t.TempDir()

	out, err := cli.Process(cli.ExtractLUTCommand(inFile, outDir, config.Default()))
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(outDir, "rTRC.spi1d")}, out)

	contents, err := os.ReadFile(out[0])
	require.NoError(t, err)
	require.Contains(t, string(contents), "Length 2")
}

func TestProcessUnknownModeRejected(t *testing.T) {
	_, err := cli.Process(&cli.Command{Mode: cli.Mode(99), Conf: config.Default()})
	require.Error(t, err)
}

func TestReportCommandDefaultsConfig(t *testing.T) {
	cmd := cli.ReportCommand(nil, nil)
	require.NotNil(t, cmd.Conf)
	require.Equal(t, config.ValidationLenient, cmd.Conf.ValidationMode)
}

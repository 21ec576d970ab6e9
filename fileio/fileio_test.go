package fileio_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nodefmt/nodefmt/fileio"
)

var allEncodings = []fileio.Encoding{
	fileio.UTF8,
	fileio.UTF8BOM,
	fileio.UTF16LE,
	fileio.UTF16BE,
	fileio.UTF32LE,
	fileio.UTF32BE,
}

func TestWriteReadRoundTrip(t *testing.T) {
	const content = "{\"name\": \"héllo 世界\", \"n\": 42}\n"
	dir := t.TempDir()

	for _, enc := range allEncodings {
		t.Run(enc.String(), func(t *testing.T) {
			path := filepath.Join(dir, enc.String()+".json")
			require.NoError(t, fileio.WriteFile(path, content, enc))

			detected, err := fileio.DetectEncoding(path)
			require.NoError(t, err)
			require.Equal(t, enc, detected)

			got, err := fileio.ReadFile(path)
			require.NoError(t, err)
			require.Equal(t, content, got)
		})
	}
}

func TestDetectEncodingBOMs(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want fileio.Encoding
	}{
		{"no BOM", []byte(`{}`), fileio.UTF8},
		{"empty file", nil, fileio.UTF8},
		{"UTF-8 BOM", []byte{0xEF, 0xBB, 0xBF, '{', '}'}, fileio.UTF8BOM},
		{"UTF-16LE BOM", []byte{0xFF, 0xFE, '{', 0x00}, fileio.UTF16LE},
		{"UTF-16BE BOM", []byte{0xFE, 0xFF, 0x00, '{'}, fileio.UTF16BE},
		{"UTF-32LE BOM", []byte{0xFF, 0xFE, 0x00, 0x00}, fileio.UTF32LE},
		{"UTF-32BE BOM", []byte{0x00, 0x00, 0xFE, 0xFF}, fileio.UTF32BE},
	}
	dir := t.TempDir()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "f")
			require.NoError(t, os.WriteFile(path, tt.data, 0o644))

			got, err := fileio.DetectEncoding(path)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadFileStripsUTF8BOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bom.json")
	require.NoError(t, os.WriteFile(path, []byte("\xEF\xBB\xBF{}"), 0o644))

	got, err := fileio.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{}", got)
}

func TestReadFileNormalizesCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crlf.json")
	require.NoError(t, os.WriteFile(path, []byte("{\r\n  \"a\": 1\r\n}\r\n"), 0o644))

	got, err := fileio.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "{\n  \"a\": 1\n}\n", got)
}

func TestReadFileMissing(t *testing.T) {
	_, err := fileio.ReadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestList(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.json", "b.json", "c.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	got, err := fileio.List(dir, ".json")
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.json"),
	}, got)

	// The leading dot is optional.
	noDot, err := fileio.List(dir, "json")
	require.NoError(t, err)
	require.Equal(t, got, noDot)
}

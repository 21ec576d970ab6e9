// Package fileio provides the file-backed endpoints of the library:
// BOM-aware reading and writing of Unicode text files, file-backed
// Source/Destination implementations, and a small directory-listing
// helper.
package fileio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
)

// Encoding identifies a Unicode text file format by its byte order
// mark.
type Encoding int

const (
	UTF8 Encoding = iota // no BOM
	UTF8BOM
	UTF16LE
	UTF16BE
	UTF32LE
	UTF32BE
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case UTF8BOM:
		return "UTF-8 BOM"
	case UTF16LE:
		return "UTF-16LE"
	case UTF16BE:
		return "UTF-16BE"
	case UTF32LE:
		return "UTF-32LE"
	case UTF32BE:
		return "UTF-32BE"
	}
	return "unknown"
}

func (e Encoding) bom() []byte {
	switch e {
	case UTF8BOM:
		return []byte{0xEF, 0xBB, 0xBF}
	case UTF16LE:
		return []byte{0xFF, 0xFE}
	case UTF16BE:
		return []byte{0xFE, 0xFF}
	case UTF32LE:
		return []byte{0xFF, 0xFE, 0x00, 0x00}
	case UTF32BE:
		return []byte{0x00, 0x00, 0xFE, 0xFF}
	}
	return nil
}

// detect sniffs the BOM at the start of data. UTF-32LE must be
// checked before UTF-16LE: the former's mark extends the latter's.
func detect(data []byte) Encoding {
	switch {
	case bytes.HasPrefix(data, UTF8BOM.bom()):
		return UTF8BOM
	case bytes.HasPrefix(data, UTF32BE.bom()):
		return UTF32BE
	case bytes.HasPrefix(data, UTF32LE.bom()):
		return UTF32LE
	case bytes.HasPrefix(data, UTF16BE.bom()):
		return UTF16BE
	case bytes.HasPrefix(data, UTF16LE.bom()):
		return UTF16LE
	}
	return UTF8
}

// DetectEncoding reports the Unicode encoding of the named file by
// examining its byte order mark.
func DetectEncoding(path string) (Encoding, error) {
	f, err := os.Open(path)
	if err != nil {
		return UTF8, err
	}
	defer f.Close()

	head := make([]byte, 4)
	n, _ := f.Read(head)
	return detect(head[:n]), nil
}

func (e Encoding) decoder() *encoding.Decoder {
	switch e {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.ExpectBOM).NewDecoder()
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.ExpectBOM).NewDecoder()
	case UTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.ExpectBOM).NewDecoder()
	}
	return nil
}

func (e Encoding) encoder() *encoding.Encoder {
	switch e {
	case UTF16LE:
		return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	case UTF16BE:
		return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	case UTF32LE:
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM).NewEncoder()
	case UTF32BE:
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM).NewEncoder()
	}
	return nil
}

// ReadFile reads the named text file into a UTF-8 string, detecting
// the encoding from its byte order mark and normalizing CRLF line
// endings to LF.
func ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	enc := detect(data)
	switch enc {
	case UTF8:
		// As is.
	case UTF8BOM:
		data = data[len(UTF8BOM.bom()):]
	default:
		data, err = enc.decoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("fileio: decoding %s file %s: %w", enc, path, err)
		}
	}

	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

// WriteFile writes content to the named file in the given encoding,
// prefixed with that encoding's byte order mark.
func WriteFile(path, content string, enc Encoding) error {
	payload := []byte(content)
	if e := enc.encoder(); e != nil {
		var err error
		payload, err = e.Bytes(payload)
		if err != nil {
			return fmt.Errorf("fileio: encoding %s file %s: %w", enc, path, err)
		}
	}
	return os.WriteFile(path, append(enc.bom(), payload...), 0o644)
}

// List returns the paths of the files in dir whose name carries the
// given extension (with or without the leading dot).
func List(dir, ext string) ([]string, error) {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ext {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

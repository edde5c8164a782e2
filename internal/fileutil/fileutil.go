// Package fileutil reads cue sheet files into UTF-8 text regardless of how
// they were encoded on disk.
//
// Cue sheets in the wild predate any encoding convention: rips from older
// tooling are frequently Latin-1 or GBK, sometimes with a UTF-8 BOM bolted
// on. ReadTextFile resolves all of that before the text reaches the parser,
// which only ever sees decoded lines.
package fileutil

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/transform"
)

// Encoding names accepted by ReadTextFile and DecodeText.
const (
	EncodingAuto   = "auto"
	EncodingUTF8   = "utf-8"
	EncodingLatin1 = "latin1"
	EncodingGBK    = "gbk"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTextFile reads the file at path and returns its content as a UTF-8
// string, decoded according to encoding. EncodingAuto strips a UTF-8 BOM,
// accepts valid UTF-8 as-is, and otherwise falls back to Latin-1, which
// maps every byte sequence to some text rather than failing.
func ReadTextFile(path string, encoding string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text, err := DecodeText(data, encoding)
	if err != nil {
		return "", fmt.Errorf("decode %s: %w", path, err)
	}
	return text, nil
}

// DecodeText converts raw file bytes to a UTF-8 string using the named
// encoding.
func DecodeText(data []byte, encoding string) (string, error) {
	switch encoding {
	case EncodingAuto:
		if bytes.HasPrefix(data, utf8BOM) {
			return string(bytes.TrimPrefix(data, utf8BOM)), nil
		}
		if utf8.Valid(data) {
			return string(data), nil
		}
		return decodeWith(data, EncodingLatin1)
	case EncodingUTF8:
		return string(bytes.TrimPrefix(data, utf8BOM)), nil
	case EncodingLatin1, EncodingGBK:
		return decodeWith(data, encoding)
	default:
		return "", fmt.Errorf("unsupported encoding %q", encoding)
	}
}

func decodeWith(data []byte, encoding string) (string, error) {
	var decoder transform.Transformer
	switch encoding {
	case EncodingLatin1:
		decoder = charmap.ISO8859_1.NewDecoder()
	case EncodingGBK:
		decoder = simplifiedchinese.GBK.NewDecoder()
	default:
		return "", fmt.Errorf("unsupported encoding %q", encoding)
	}

	reader := transform.NewReader(bytes.NewReader(data), decoder)
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decode as %s: %w", encoding, err)
	}
	return string(decoded), nil
}

// KnownEncoding reports whether name is one of the supported encoding
// identifiers.
func KnownEncoding(name string) bool {
	switch name {
	case EncodingAuto, EncodingUTF8, EncodingLatin1, EncodingGBK:
		return true
	}
	return false
}

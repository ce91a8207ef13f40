// Package flightlog runs the read → aggregate → render cycle for logbook
// exports and re-runs it when a watched export changes.
package flightlog

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Supported input encodings.
const (
	EncodingAuto        = "auto"
	EncodingUTF8        = "utf-8"
	EncodingWindows1250 = "windows-1250"
)

// Decode converts a raw export to text. Gliding-club software on Windows
// commonly writes windows-1250; auto picks UTF-8 whenever the bytes are
// valid UTF-8. A leading UTF-8 byte-order mark is dropped.
func Decode(raw []byte, encoding string) (string, error) {
	switch encoding {
	case "", EncodingAuto:
		if utf8.Valid(raw) {
			return decodeUTF8(raw)
		}
		return decodeWindows1250(raw)
	case EncodingUTF8:
		return decodeUTF8(raw)
	case EncodingWindows1250:
		return decodeWindows1250(raw)
	}
	return "", fmt.Errorf("unsupported encoding %q", encoding)
}

func decodeUTF8(raw []byte) (string, error) {
	out, err := unicode.UTF8BOM.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode utf-8: %w", err)
	}
	return string(out), nil
}

func decodeWindows1250(raw []byte) (string, error) {
	out, err := charmap.Windows1250.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode windows-1250: %w", err)
	}
	return string(out), nil
}

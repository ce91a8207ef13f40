package flightlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	// "Łódź" in windows-1250.
	cp1250 := []byte{0xA3, 0xF3, 0x64, 0x9F}

	tests := []struct {
		name     string
		raw      []byte
		encoding string
		want     string
	}{
		{"auto utf-8", []byte("Łódź"), EncodingAuto, "Łódź"},
		{"empty means auto", []byte("Łódź"), "", "Łódź"},
		{"auto falls back to windows-1250", cp1250, EncodingAuto, "Łódź"},
		{"explicit windows-1250", cp1250, EncodingWindows1250, "Łódź"},
		{"utf-8 drops bom", append([]byte{0xEF, 0xBB, 0xBF}, "Lp;Data"...), EncodingUTF8, "Lp;Data"},
		{"auto drops bom", append([]byte{0xEF, 0xBB, 0xBF}, "Lp;Data"...), EncodingAuto, "Lp;Data"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.raw, tt.encoding)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecode_UnsupportedEncoding(t *testing.T) {
	_, err := Decode([]byte("x"), "ebcdic")
	assert.ErrorContains(t, err, `unsupported encoding "ebcdic"`)
}

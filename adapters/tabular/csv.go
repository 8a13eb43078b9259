package tabular

import (
	"bytes"
	"encoding/csv"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// readCSV parses CSV bytes, attempting UTF-8, Latin-1 and Windows-1252
// in that order. Providers export from old CRMs; a hard decode error on
// the first file of the day is not acceptable.
func readCSV(src io.Reader) ([][]string, error) {
	raw, err := io.ReadAll(src)
	if err != nil {
		return nil, err
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	raw = decodeLegacy(raw)

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	return reader.ReadAll()
}

// decodeLegacy returns UTF-8 bytes. Valid UTF-8 passes through. Latin-1
// is tried next, but bytes in the 0x80-0x9F range are control characters
// there and almost always mean the file is really Windows-1252 (curly
// quotes, em dashes), so those fall through to the 1252 table.
func decodeLegacy(raw []byte) []byte {
	if utf8.Valid(raw) {
		return raw
	}

	cm := charmap.ISO8859_1
	for _, b := range raw {
		if b >= 0x80 && b <= 0x9F {
			cm = charmap.Windows1252
			break
		}
	}

	decoded, err := cm.NewDecoder().Bytes(raw)
	if err != nil {
		return raw
	}
	return decoded
}

package pdf

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Supported input encodings. There is no silent fallback chain: the
// caller picks one and an undecodable file is an error.
const (
	EncodingUTF8        = "utf-8"
	EncodingWindows1251 = "windows-1251"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// DecodeFile reads path and decodes it with the named encoding. The
// empty name means UTF-8.
func DecodeFile(path, encoding string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	switch encoding {
	case "", EncodingUTF8:
		data = bytes.TrimPrefix(data, utf8BOM)
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%s is not valid UTF-8; re-run and pick %s", path, EncodingWindows1251)
		}
		return string(data), nil
	case EncodingWindows1251:
		decoded, err := charmap.Windows1251.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("decoding %s as %s: %w", path, EncodingWindows1251, err)
		}
		return string(decoded), nil
	}
	return "", fmt.Errorf("unsupported encoding %q", encoding)
}

// SniffDelimiter picks the delimiter that occurs most often in the
// first kilobyte. Comma wins ties.
func SniffDelimiter(sample string) rune {
	if len(sample) > 1024 {
		sample = sample[:1024]
	}

	best := ','
	bestCount := 0
	for _, cand := range []rune{',', ';', '\t', '|'} {
		if c := strings.Count(sample, string(cand)); c > bestCount {
			best, bestCount = cand, c
		}
	}
	return best
}

// ReadRows parses the CSV at path into the header and one field map per
// data row. Short rows are padded with empty strings, extra cells are
// dropped.
func ReadRows(path, encoding string) ([]string, []map[string]string, error) {
	content, err := DecodeFile(path, encoding)
	if err != nil {
		return nil, nil, err
	}

	r := csv.NewReader(strings.NewReader(content))
	r.Comma = SniffDelimiter(content)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("%s contains no rows", path)
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return header, rows, nil
}

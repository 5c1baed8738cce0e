package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/xuri/excelize/v2"
	"github.com/zeebo/xxh3"
)

var (
	utf8BOM   = []byte{0xEF, 0xBB, 0xBF}
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	zipMagic  = []byte{0x50, 0x4B, 0x03, 0x04}
)

// Load reads a response export from disk. Compression and format are
// detected from the file name first, falling back to magic bytes, so a
// renamed file still loads.
func Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("input file is empty: %s", path)
	}

	t := &Table{
		Path:        path,
		Fingerprint: fmt.Sprintf("%016x", xxh3.Hash(raw)),
		Texts:       map[string]string{},
	}

	data, name, err := decompress(raw, filepath.Base(path))
	if err != nil {
		return nil, err
	}

	if strings.HasSuffix(strings.ToLower(name), ".xlsx") || bytes.HasPrefix(data, zipMagic) {
		err = t.parseXLSX(data)
	} else {
		err = t.parseCSV(data)
	}
	if err != nil {
		return nil, err
	}

	t.consumeHeaderRows()
	for i := range t.Rows {
		resolveIdentity(&t.Rows[i])
	}
	return t, nil
}

// decompress unwraps one layer of zstd or gzip. The returned name has
// the compression extension stripped so format detection can look at
// the inner extension.
func decompress(raw []byte, name string) ([]byte, string, error) {
	lower := strings.ToLower(name)
	switch {
	case strings.HasSuffix(lower, ".zst"), strings.HasSuffix(lower, ".zstd"), bytes.HasPrefix(raw, zstdMagic):
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, "", fmt.Errorf("failed to create zstd decoder: %w", err)
		}
		defer dec.Close()
		data, err := dec.DecodeAll(raw, nil)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decompress zstd input: %w", err)
		}
		return data, strings.TrimSuffix(name, filepath.Ext(name)), nil

	case strings.HasSuffix(lower, ".gz"), bytes.HasPrefix(raw, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, "", fmt.Errorf("failed to open gzip input: %w", err)
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		if err != nil {
			return nil, "", fmt.Errorf("failed to decompress gzip input: %w", err)
		}
		return data, strings.TrimSuffix(name, filepath.Ext(name)), nil
	}
	return raw, name, nil
}

func (t *Table) parseCSV(data []byte) error {
	data = bytes.TrimPrefix(data, utf8BOM)

	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}
	return t.fromRecords(records, true)
}

func (t *Table) parseXLSX(data []byte) error {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to open XLSX: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return fmt.Errorf("XLSX file has no sheets")
	}
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	// GetRows trims trailing empty cells, so short rows are expected
	// here and padded without a warning.
	return t.fromRecords(records, false)
}

// fromRecords ingests raw rows: the first row becomes the column keys,
// every later row a data row padded or truncated to the header width.
// Header-row consumption happens afterwards, once ResponseId is known.
func (t *Table) fromRecords(records [][]string, warnShort bool) error {
	if len(records) == 0 {
		return fmt.Errorf("input has no rows")
	}

	t.Columns = make([]string, len(records[0]))
	for i, h := range records[0] {
		t.Columns[i] = strings.TrimSpace(h)
	}

	width := len(t.Columns)
	for n, rec := range records[1:] {
		if len(rec) != width {
			if len(rec) > width || warnShort {
				t.warnf("row %d has %d fields, expected %d", n+2, len(rec), width)
			}
			if len(rec) > width {
				rec = rec[:width]
			} else {
				padded := make([]string, width)
				copy(padded, rec)
				rec = padded
			}
		}
		row := Row{Values: make(map[string]string, width)}
		for i, col := range t.Columns {
			row.Values[col] = rec[i]
		}
		t.Rows = append(t.Rows, row)
	}
	return nil
}

// consumeHeaderRows removes the export's extra header rows from the
// data: a question-text row (ResponseId cell is prose, not an R_ id)
// and an import-id row (ResponseId cell is an {"ImportId": ...} blob).
// Without a ResponseId column only the key row is assumed.
func (t *Table) consumeHeaderRows() {
	hasResponseID := false
	for _, c := range t.Columns {
		if c == "ResponseId" {
			hasResponseID = true
			break
		}
	}
	if !hasResponseID {
		t.warnf("no ResponseId column; assuming single header row")
	} else {
		if len(t.Rows) > 0 && isTextHeaderRow(t.Rows[0].Values["ResponseId"]) {
			for _, c := range t.Columns {
				if txt := strings.TrimSpace(t.Rows[0].Values[c]); txt != "" {
					t.Texts[c] = txt
				}
			}
			t.Rows = t.Rows[1:]
		}
		if len(t.Rows) > 0 && isImportIDRow(t.Rows[0].Values["ResponseId"]) {
			t.Rows = t.Rows[1:]
		}
	}

	for i := range t.Rows {
		t.Rows[i].Ordinal = i + 1
		t.Rows[i].ResponseID = strings.TrimSpace(t.Rows[i].Values["ResponseId"])
	}
}

// isTextHeaderRow reports whether a ResponseId cell belongs to the
// question-text header row rather than a data row. Real response ids
// look like "R_1a2B3c..."; the text row carries the literal column
// label there instead.
func isTextHeaderRow(cell string) bool {
	v := strings.TrimSpace(cell)
	if v == "" {
		return false
	}
	if strings.HasPrefix(v, "R_") || isImportIDRow(v) {
		return false
	}
	return true
}

func isImportIDRow(cell string) bool {
	v := strings.TrimSpace(cell)
	return strings.HasPrefix(v, "{") && strings.Contains(v, "ImportId")
}

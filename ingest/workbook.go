package ingest

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// MaxUploadBytes caps upload payloads before any parsing work happens.
const MaxUploadBytes = 10 << 20 // 10 MiB

var (
	// ErrUnsupportedUpload means the payload is not a spreadsheet or is too
	// large. Checked before parsing.
	ErrUnsupportedUpload = errors.New("only Excel files (.xlsx, .xls, .ods) up to 10 MB are allowed")

	// ErrNoValidRows means the workbook parsed but no row survived
	// normalization. The store is left untouched.
	ErrNoValidRows = errors.New("no valid data found in the Excel file")
)

var spreadsheetMIMETypes = map[string]bool{
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": true,
	"application/vnd.ms-excel":                       true,
	"application/vnd.oasis.opendocument.spreadsheet": true,
}

var spreadsheetExtensions = map[string]bool{
	".xlsx": true,
	".xls":  true,
	".ods":  true,
}

// ValidateUpload rejects non-spreadsheet or oversize payloads before parsing.
// Browsers sometimes send application/octet-stream for xlsx, so the file
// extension counts as a fallback signal.
func ValidateUpload(filename, contentType string, size int64) error {
	if size <= 0 || size > MaxUploadBytes {
		return ErrUnsupportedUpload
	}

	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		if spreadsheetMIMETypes[strings.ToLower(mediaType)] {
			return nil
		}
	}

	if spreadsheetExtensions[strings.ToLower(filepath.Ext(filename))] {
		return nil
	}

	return ErrUnsupportedUpload
}

// Row is one spreadsheet row keyed by its column header.
type Row map[string]string

// readRows parses the workbook bytes and converts the first worksheet into
// header-keyed rows. The first row is the header; data rows shorter than the
// header are padded with empty cells.
func readRows(data []byte) ([]Row, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, fmt.Errorf("no sheets found in workbook")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	if len(rows) < 2 {
		// Header only, or nothing at all
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}

	out := make([]Row, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := make(Row, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			if i < len(cells) {
				row[key] = cells[i]
			} else {
				row[key] = ""
			}
		}
		out = append(out, row)
	}

	return out, nil
}

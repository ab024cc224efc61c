// Package xlsx adapts a spreadsheet file on disk into the rectangular
// string table internal/players.ParseTable expects, so a driver can feed a
// real exported player table straight into the core.
package xlsx

import (
	"bytes"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"
)

// ReadTable opens the workbook at path, reads its first sheet, and returns
// every row as a slice of cell strings. Row and column counts are whatever
// excelize reports; internal/players.ParseTable pads short rows and
// truncates long ones, so no normalization happens here.
func ReadTable(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ReadTableBytes(data)
}

// ReadTableBytes is the byte-slice variant of ReadTable, used directly by
// tests and by callers that already hold the workbook in memory.
func ReadTableBytes(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheets[0], err)
	}

	return rows, nil
}

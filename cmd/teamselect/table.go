package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/fmtools/team-selector/internal/feeders/xlsx"
)

// readTable loads a player table in one of two formats. csv is a plain
// rectangular text table (stdlib encoding/csv — nothing fancier is needed
// for that shape); xlsx reads the first sheet of a real spreadsheet export.
func readTable(path, format string) ([][]string, error) {
	switch format {
	case "", "csv":
		return readCSVTable(path)
	case "xlsx":
		return xlsx.ReadTable(path)
	default:
		return nil, fmt.Errorf("unknown table format %q (want csv or xlsx)", format)
	}
}

func readCSVTable(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // rows may be ragged; players.ParseTable pads/truncates

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

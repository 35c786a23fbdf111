package pkg

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrPartialCSV means a CSV file could only be read up to a malformed record.
var ErrPartialCSV = errors.New("csv file only partially readable")

// ReadCSVRows returns the data rows of a CSV file with a header line. A missing
// file has no rows. Bare quotes inside fields are accepted; when a record still
// cannot be parsed, the rows before it are returned together with an error
// wrapping ErrPartialCSV, so callers can show them but must not write them back.
func ReadCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows [][]string
	for first := true; ; first = false {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return rows, fmt.Errorf("%w: %s: %s", ErrPartialCSV, path, err)
		}
		if !first {
			rows = append(rows, row)
		}
	}
}

// WriteCSVFileAtomic replaces path with header followed by rows.
func WriteCSVFileAtomic(path string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(header); err != nil {
		return err
	}
	if err := writer.WriteAll(rows); err != nil {
		return err
	}
	return WriteFileAtomic(path, buf.Bytes(), 0o644)
}

// AppendCSVRow appends one row to path, writing header first when the file is new or empty.
func AppendCSVRow(path string, header, row []string) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return err
	}
	writer := csv.NewWriter(file)
	if stat.Size() == 0 {
		if err := writer.Write(header); err != nil {
			return err
		}
	}
	if err := writer.Write(row); err != nil {
		return err
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}

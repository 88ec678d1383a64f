package structured

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
)

// ExportCSVMaps writes rows of column→value maps to path as CSV with a
// header row. Column order follows fieldnames when given; otherwise the
// sorted keys of the first row are used. An existing file is left
// untouched unless overwrite is set.
func ExportCSVMaps(path string, rows []map[string]string, fieldnames []string, overwrite bool) error {
	ok, err := shouldExport(path, overwrite)
	if err != nil || !ok {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	if fieldnames == nil {
		for key := range rows[0] {
			fieldnames = append(fieldnames, key)
		}
		sort.Strings(fieldnames)
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(fieldnames); err != nil {
		return fmt.Errorf("structured: encoding csv for %q: %w", path, err)
	}
	record := make([]string, len(fieldnames))
	for _, row := range rows {
		for i, field := range fieldnames {
			record[i] = row[field]
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("structured: encoding csv for %q: %w", path, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("structured: encoding csv for %q: %w", path, err)
	}
	return writeAtomic(path, buf.Bytes())
}

// ExportCSVRows writes raw rows to path as CSV. When fieldnames is given
// it is written as a header row first; otherwise the first row is
// assumed to already be the header. An existing file is left untouched
// unless overwrite is set.
func ExportCSVRows(path string, rows [][]string, fieldnames []string, overwrite bool) error {
	ok, err := shouldExport(path, overwrite)
	if err != nil || !ok {
		return err
	}
	if len(rows) == 0 {
		return nil
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if fieldnames != nil {
		if err := writer.Write(fieldnames); err != nil {
			return fmt.Errorf("structured: encoding csv for %q: %w", path, err)
		}
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("structured: encoding csv for %q: %w", path, err)
	}
	return writeAtomic(path, buf.Bytes())
}

// ImportCSVMaps reads a CSV file as rows of header→value maps. The first
// record is the header. It returns (nil, nil) when the file does not
// exist.
func ImportCSVMaps(path string) ([]map[string]string, error) {
	records, err := importCSV(path)
	if err != nil || records == nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, field := range header {
			if i < len(record) {
				row[field] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ImportCSVRows reads a CSV file as raw rows, header included. It
// returns (nil, nil) when the file does not exist.
func ImportCSVRows(path string) ([][]string, error) {
	return importCSV(path)
}

func importCSV(path string) ([][]string, error) {
	data, err := readIfExists(path)
	if err != nil || data == nil {
		return nil, err
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("structured: decoding csv %q: %w", path, err)
	}
	return records, nil
}

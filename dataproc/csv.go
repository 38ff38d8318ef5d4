package dataproc

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/toolbox"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// RestKey holds the values of a row beyond the header's columns.
const RestKey = "_rest"

// CSVParseReport is the result of parsing CSV data.
type CSVParseReport struct {
	RowCount int      `json:"row_count"`
	Columns  []string `json:"columns"`
	Data     []Object `json:"data"`
}

// CSVFilterReport is the result of filtering CSV rows.
type CSVFilterReport struct {
	OriginalCount int      `json:"original_count"`
	FilteredCount int      `json:"filtered_count"`
	Data          []Object `json:"data"`
}

// CSVTransformReport is the result of transforming CSV rows.
type CSVTransformReport struct {
	RowCount int      `json:"row_count"`
	Data     []Object `json:"data"`
}

// ReadCSV reads records keyed by the header row. Short rows get nil for
// missing columns and long rows keep their extra values under RestKey.
// Blank lines are skipped. A nil header means the input had no rows.
func ReadCSV(data string) ([]string, []Object, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return nil, []Object{}, nil
	}
	if err != nil {
		return nil, nil, toolbox.Errorf(toolbox.EINVALID, "invalid CSV: %v", err)
	}

	rows := []Object{}
	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, toolbox.Errorf(toolbox.EINVALID, "invalid CSV: %v", err)
		}

		b := newBuilder()
		for i, col := range header {
			if i < len(record) {
				b.set(col, record[i])
			} else {
				b.set(col, nil)
			}
		}
		if len(record) > len(header) {
			b.set(RestKey, record[len(header):])
		}
		rows = append(rows, b.obj)
	}
	return header, rows, nil
}

func processCSV(data, operation string) (any, error) {
	header, rows, err := ReadCSV(data)
	if err != nil {
		return nil, err
	}

	switch operation {
	case OpParse:
		return &CSVParseReport{
			RowCount: len(rows),
			Columns:  header,
			Data:     capRows(rows),
		}, nil
	case OpFilter:
		if len(header) == 0 {
			return nil, toolbox.Errorf(toolbox.EINVALID, "cannot filter CSV without a header row")
		}
		filtered := []Object{}
		for _, row := range rows {
			if v, _ := row.Get(header[0]); v != nil && v != "" {
				filtered = append(filtered, row)
			}
		}
		return &CSVFilterReport{
			OriginalCount: len(rows),
			FilteredCount: len(filtered),
			Data:          capRows(filtered),
		}, nil
	case OpTransform:
		upper := cases.Upper(language.Und)
		transformed := make([]Object, len(rows))
		for i, row := range rows {
			out := make(Object, len(row))
			for j, m := range row {
				if s, ok := m.Value.(string); ok {
					m.Value = upper.String(s)
				}
				out[j] = m
			}
			transformed[i] = out
		}
		return &CSVTransformReport{
			RowCount: len(transformed),
			Data:     capRows(transformed),
		}, nil
	}
	return nil, unknownOperation(operation)
}

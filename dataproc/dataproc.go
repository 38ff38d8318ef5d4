// Package dataproc parses, filters and transforms CSV and JSON data.
package dataproc

import (
	"bytes"

	"github.com/fwojciec/toolbox"
)

// Formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// Operations.
const (
	OpParse     = "parse"
	OpFilter    = "filter"
	OpTransform = "transform"
)

// MaxRows caps the rows returned by CSV operations.
const MaxRows = 10

// Result is the response of Process. Report holds the operation's output
// and is encoded next to the status fields.
type Result struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Report  any    `json:"-"`
}

// MarshalJSON flattens the report's fields next to the status fields.
func (r Result) MarshalJSON() ([]byte, error) {
	type header Result
	head, err := toolbox.EncodeJSON(header(r))
	if err != nil {
		return nil, err
	}
	if r.Report == nil {
		return head, nil
	}
	body, err := toolbox.EncodeJSON(r.Report)
	if err != nil {
		return nil, err
	}
	if len(body) < 2 || body[0] != '{' || bytes.Equal(body, []byte("{}")) {
		return head, nil
	}

	var buf bytes.Buffer
	buf.Write(head[:len(head)-1])
	buf.WriteByte(',')
	buf.Write(body[1:])
	return buf.Bytes(), nil
}

// Process runs operation over data in the given format. It never fails:
// unsupported formats, unknown operations and malformed data are reported
// in the result's Error field.
func Process(data, format, operation string) *Result {
	var (
		report any
		err    error
	)
	switch format {
	case FormatCSV:
		report, err = processCSV(data, operation)
	case FormatJSON:
		report, err = processJSON(data, operation)
	default:
		err = toolbox.Errorf(toolbox.EINVALID, "Unsupported format: %s", format)
	}
	if err != nil {
		return &Result{Error: toolbox.ErrorMessage(err)}
	}
	return &Result{Success: true, Report: report}
}

func unknownOperation(operation string) error {
	return toolbox.Errorf(toolbox.EINVALID, "Unknown operation: %s", operation)
}

func capRows(rows []Object) []Object {
	if len(rows) > MaxRows {
		return rows[:MaxRows]
	}
	return rows
}

package toolbox

import (
	"bytes"
	"encoding/json"
)

// EncodeJSON is json.Marshal without HTML escaping, so that the caller's
// encoder settings decide whether <, > and & are escaped.
func EncodeJSON(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

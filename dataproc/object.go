package dataproc

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/fwojciec/toolbox"
)

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is a JSON object that keeps its keys in insertion order.
type Object []Member

// Get returns the value stored under key.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns the object's keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// MarshalJSON implements json.Marshaler.
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, m := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := toolbox.EncodeJSON(m.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := toolbox.EncodeJSON(m.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// builder assembles an Object in which a repeated key replaces the
// earlier value but keeps its position.
type builder struct {
	obj   Object
	index map[string]int
}

func newBuilder() *builder {
	return &builder{obj: Object{}, index: map[string]int{}}
}

func (b *builder) set(key string, value any) {
	if i, ok := b.index[key]; ok {
		b.obj[i].Value = value
		return
	}
	b.index[key] = len(b.obj)
	b.obj = append(b.obj, Member{Key: key, Value: value})
}

// Decode parses a single JSON value. Objects decode to Object, arrays to
// []any and numbers to json.Number so that key order and number literals
// survive re-encoding.
func Decode(data string) (any, error) {
	dec := json.NewDecoder(strings.NewReader(data))
	dec.UseNumber()
	v, err := decodeValue(dec)
	if err != nil {
		return nil, toolbox.Errorf(toolbox.EINVALID, "invalid JSON: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, toolbox.Errorf(toolbox.EINVALID, "invalid JSON: extra data after value")
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		b := newBuilder()
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, _ := keyTok.(string)
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			b.set(key, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return b.obj, nil
	case '[':
		list := []any{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			list = append(list, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return list, nil
	}
	return nil, errors.New("unexpected delimiter " + delim.String())
}

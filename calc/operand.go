package calc

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/fwojciec/toolbox"
)

// Number is a numeric value that remembers whether it was written as an
// integer.
type Number struct {
	Value float64
	Int   bool
}

// String formats n the way results are echoed back: integers without a
// fraction and floats always with one.
func (n Number) String() string {
	if n.Int {
		return strconv.FormatFloat(n.Value, 'f', 0, 64)
	}
	return formatFloat(n.Value)
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	if f != 0 {
		if exp := math.Floor(math.Log10(math.Abs(f))); exp < -4 || exp >= 16 {
			return strconv.FormatFloat(f, 'e', -1, 64)
		}
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Kind distinguishes scalar operands from lists.
type Kind int

const (
	KindNumber Kind = iota
	KindList
)

// Operand is either a single number or a list of numbers.
type Operand struct {
	Kind   Kind
	Number Number
	List   []Number
}

// Int returns an integer operand.
func Int(i int64) Operand {
	return Operand{Kind: KindNumber, Number: Number{Value: float64(i), Int: true}}
}

// Float returns a floating point operand.
func Float(f float64) Operand {
	return Operand{Kind: KindNumber, Number: Number{Value: f}}
}

// Ints returns a list operand of integers.
func Ints(values ...int64) Operand {
	list := make([]Number, len(values))
	for i, v := range values {
		list[i] = Number{Value: float64(v), Int: true}
	}
	return Operand{Kind: KindList, List: list}
}

// Floats returns a list operand of floating point numbers.
func Floats(values ...float64) Operand {
	list := make([]Number, len(values))
	for i, v := range values {
		list[i] = Number{Value: v}
	}
	return Operand{Kind: KindList, List: list}
}

// IsInt reports whether o is a single integer.
func (o Operand) IsInt() bool {
	return o.Kind == KindNumber && o.Number.Int
}

// String formats o for echoing back in results.
func (o Operand) String() string {
	if o.Kind == KindNumber {
		return o.Number.String()
	}
	parts := make([]string, len(o.List))
	for i, n := range o.List {
		parts[i] = n.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// ParseOperand parses a JSON number or array of numbers.
func ParseOperand(data []byte) (Operand, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return Operand{}, toolbox.Errorf(toolbox.EINVALID, "invalid operand %q: %v", data, err)
	}
	if dec.More() {
		return Operand{}, toolbox.Errorf(toolbox.EINVALID, "invalid operand %q: trailing data", data)
	}

	switch v := v.(type) {
	case json.Number:
		n, err := parseNumber(v)
		if err != nil {
			return Operand{}, err
		}
		return Operand{Kind: KindNumber, Number: n}, nil
	case []any:
		list := make([]Number, 0, len(v))
		for _, elem := range v {
			num, ok := elem.(json.Number)
			if !ok {
				return Operand{}, toolbox.Errorf(toolbox.EINVALID, "list elements must be numbers")
			}
			n, err := parseNumber(num)
			if err != nil {
				return Operand{}, err
			}
			list = append(list, n)
		}
		return Operand{Kind: KindList, List: list}, nil
	}
	return Operand{}, toolbox.Errorf(toolbox.EINVALID, "operand must be a number or a list of numbers")
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Operand) UnmarshalJSON(data []byte) error {
	v, err := ParseOperand(data)
	if err != nil {
		return err
	}
	*o = v
	return nil
}

func parseNumber(num json.Number) (Number, error) {
	f, err := strconv.ParseFloat(num.String(), 64)
	if err != nil {
		return Number{}, toolbox.Errorf(toolbox.EINVALID, "invalid number %q", num.String())
	}
	return Number{Value: f, Int: !strings.ContainsAny(num.String(), ".eE")}, nil
}

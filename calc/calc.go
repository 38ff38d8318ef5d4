// Package calc implements a dispatcher for arithmetic and statistical
// operations on numbers and lists of numbers.
package calc

import (
	"fmt"
	"math"
	"math/big"
	"slices"

	"github.com/fwojciec/toolbox"
)

// Upper bounds on inputs whose output grows with n.
const (
	MaxFactorial = 20000
	MaxFibonacci = 10000
)

// Result is the response of an operation. Only the fields relevant to
// the operation are set.
type Result struct {
	Result    any    `json:"result,omitempty"`
	Operation string `json:"operation,omitempty"`

	Count     *int           `json:"count,omitempty"`
	Sum       *float64       `json:"sum,omitempty"`
	Mean      *float64       `json:"mean,omitempty"`
	Variance  *float64       `json:"variance,omitempty"`
	Sorted    []float64      `json:"sorted,omitempty"`
	Frequency map[string]int `json:"frequency,omitempty"`
	Last      *big.Int       `json:"last,omitempty"`

	Number *int64 `json:"number,omitempty"`
	Factor *int64 `json:"factor,omitempty"`
	Reason string `json:"reason,omitempty"`

	Error     string   `json:"error,omitempty"`
	Available []string `json:"available,omitempty"`
}

type operation func(a Operand, b *Operand) (*Result, error)

var operations = map[string]operation{
	"add":         add,
	"subtract":    subtract,
	"multiply":    multiply,
	"divide":      divide,
	"power":       power,
	"sqrt":        sqrt,
	"factorial":   factorial,
	"gcd":         gcd,
	"lcm":         lcm,
	"mean":        mean,
	"median":      median,
	"mode":        mode,
	"variance":    variance,
	"stddev":      stddev,
	"prime_check": primeCheck,
	"fibonacci":   fibonacci,
}

// Operations returns the names of all supported operations.
func Operations() []string {
	return []string{
		"add", "subtract", "multiply", "divide", "power", "sqrt",
		"factorial", "gcd", "lcm", "mean", "median", "mode",
		"variance", "stddev", "prime_check", "fibonacci",
	}
}

// Evaluate applies the named operation to a and the optional b. It never
// fails: invalid operands and unknown operations are reported in the
// result's Error field.
func Evaluate(op string, a Operand, b *Operand) *Result {
	fn, ok := operations[op]
	if !ok {
		return &Result{
			Error:     fmt.Sprintf("Unknown operation: %s", op),
			Available: Operations(),
		}
	}
	result, err := fn(a, b)
	if err != nil {
		r := &Result{Error: toolbox.ErrorMessage(err)}
		if toolbox.ErrorCode(err) == errOperation {
			r.Operation = op
		}
		return r
	}
	return result
}

// errOperation marks failures raised while computing, such as operands of
// the wrong shape. Results for these errors echo the operation name.
const errOperation = "operation"

// invalid reports a missing or out of range operand.
func invalid(format string, args ...any) error {
	return toolbox.Errorf(toolbox.EINVALID, format, args...)
}

func typeError(op string) error {
	return toolbox.Errorf(errOperation, "unsupported operand type for %s", op)
}

// binary returns both scalar operands or an error naming the operation.
func binary(op, missing string, a Operand, b *Operand) (Number, Number, error) {
	if b == nil {
		return Number{}, Number{}, invalid("%s", missing)
	}
	if a.Kind != KindNumber || b.Kind != KindNumber {
		return Number{}, Number{}, typeError(op)
	}
	return a.Number, b.Number, nil
}

func finite(op string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return toolbox.Errorf(errOperation, "%s result is not a finite real number", op)
	}
	return nil
}

func arithmetic(op, missing, symbol string, a Operand, b *Operand, fn func(x, y float64) float64) (*Result, error) {
	x, y, err := binary(op, missing, a, b)
	if err != nil {
		return nil, err
	}
	v := fn(x.Value, y.Value)
	if err := finite(op, v); err != nil {
		return nil, err
	}
	return &Result{
		Result:    v,
		Operation: fmt.Sprintf("%s %s %s", x, symbol, y),
	}, nil
}

func add(a Operand, b *Operand) (*Result, error) {
	return arithmetic("add", "Addition requires two operands", "+", a, b, func(x, y float64) float64 { return x + y })
}

func subtract(a Operand, b *Operand) (*Result, error) {
	return arithmetic("subtract", "Subtraction requires two operands", "-", a, b, func(x, y float64) float64 { return x - y })
}

func multiply(a Operand, b *Operand) (*Result, error) {
	return arithmetic("multiply", "Multiplication requires two operands", "×", a, b, func(x, y float64) float64 { return x * y })
}

func divide(a Operand, b *Operand) (*Result, error) {
	if b != nil && b.Kind == KindNumber && b.Number.Value == 0 {
		return nil, invalid("Division by zero is undefined")
	}
	return arithmetic("divide", "Division requires two operands", "÷", a, b, func(x, y float64) float64 { return x / y })
}

func power(a Operand, b *Operand) (*Result, error) {
	x, y, err := binary("power", "Power operation requires two operands", a, b)
	if err != nil {
		return nil, err
	}
	if x.Value == 0 && y.Value < 0 {
		return nil, toolbox.Errorf(errOperation, "0 cannot be raised to a negative power")
	}
	v := math.Pow(x.Value, y.Value)
	if err := finite("power", v); err != nil {
		return nil, err
	}
	return &Result{Result: v, Operation: fmt.Sprintf("%s^%s", x, y)}, nil
}

func sqrt(a Operand, _ *Operand) (*Result, error) {
	if a.Kind != KindNumber {
		return nil, typeError("sqrt")
	}
	if a.Number.Value < 0 {
		return nil, invalid("Cannot calculate square root of negative number")
	}
	return &Result{Result: math.Sqrt(a.Number.Value), Operation: "√" + a.Number.String()}, nil
}

func factorial(a Operand, _ *Operand) (*Result, error) {
	if !a.IsInt() || a.Number.Value < 0 {
		return nil, invalid("Factorial requires a non-negative integer")
	}
	n := int64(a.Number.Value)
	if n > MaxFactorial {
		return nil, invalid("Factorial supports integers up to %d", MaxFactorial)
	}
	v := big.NewInt(1)
	if n > 1 {
		v.MulRange(1, n)
	}
	return &Result{Result: v, Operation: fmt.Sprintf("%d!", n)}, nil
}

// integers truncates both operands toward zero.
func integers(op, missing string, a Operand, b *Operand) (*big.Int, *big.Int, error) {
	x, y, err := binary(op, missing, a, b)
	if err != nil {
		return nil, nil, err
	}
	if err := finite(op, x.Value); err != nil {
		return nil, nil, err
	}
	if err := finite(op, y.Value); err != nil {
		return nil, nil, err
	}
	bx, _ := big.NewFloat(math.Trunc(x.Value)).Int(nil)
	by, _ := big.NewFloat(math.Trunc(y.Value)).Int(nil)
	return bx, by, nil
}

func gcd(a Operand, b *Operand) (*Result, error) {
	x, y, err := integers("gcd", "GCD requires two operands", a, b)
	if err != nil {
		return nil, err
	}
	v := new(big.Int).GCD(nil, nil, x, y)
	return &Result{Result: v, Operation: fmt.Sprintf("gcd(%s, %s)", x, y)}, nil
}

func lcm(a Operand, b *Operand) (*Result, error) {
	x, y, err := integers("lcm", "LCM requires two operands", a, b)
	if err != nil {
		return nil, err
	}
	v := new(big.Int)
	if g := new(big.Int).GCD(nil, nil, x, y); g.Sign() != 0 {
		v.Mul(x, y).Abs(v).Quo(v, g)
	}
	return &Result{Result: v, Operation: fmt.Sprintf("lcm(%s, %s)", x, y)}, nil
}

// values returns the list operand as floats.
func values(a Operand, notList, empty string, minLen int) ([]float64, error) {
	if a.Kind != KindList {
		return nil, invalid("%s", notList)
	}
	if len(a.List) < minLen {
		return nil, invalid("%s", empty)
	}
	out := make([]float64, len(a.List))
	for i, n := range a.List {
		out[i] = n.Value
	}
	return out, nil
}

func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}
	return s
}

func mean(a Operand, _ *Operand) (*Result, error) {
	xs, err := values(a, "Mean requires a list of numbers", "Cannot calculate mean of empty list", 1)
	if err != nil {
		return nil, err
	}
	s := sum(xs)
	count := len(xs)
	return &Result{Result: s / float64(count), Count: &count, Sum: &s}, nil
}

func median(a Operand, _ *Operand) (*Result, error) {
	xs, err := values(a, "Median requires a list of numbers", "Cannot calculate median of empty list", 1)
	if err != nil {
		return nil, err
	}
	slices.Sort(xs)
	n := len(xs)
	v := xs[n/2]
	if n%2 == 0 {
		v = (xs[n/2-1] + xs[n/2]) / 2
	}
	return &Result{Result: v, Count: &n, Sorted: xs}, nil
}

func mode(a Operand, _ *Operand) (*Result, error) {
	if _, err := values(a, "Mode requires a list of numbers", "Cannot calculate mode of empty list", 1); err != nil {
		return nil, err
	}

	// Keys are formatted from the first occurrence of each value.
	var order []float64
	counts := map[float64]int{}
	keys := map[float64]string{}
	for _, n := range a.List {
		if _, ok := counts[n.Value]; !ok {
			order = append(order, n.Value)
			keys[n.Value] = n.String()
		}
		counts[n.Value]++
	}

	highest := 0
	for _, c := range counts {
		highest = max(highest, c)
	}
	var modes []float64
	frequency := make(map[string]int, len(counts))
	for _, v := range order {
		frequency[keys[v]] = counts[v]
		if counts[v] == highest {
			modes = append(modes, v)
		}
	}

	r := &Result{Result: modes, Frequency: frequency}
	if len(modes) == 1 {
		r.Result = modes[0]
	}
	return r, nil
}

// sampleVariance returns the n-1 variance of xs and their mean.
func sampleVariance(xs []float64) (float64, float64) {
	m := sum(xs) / float64(len(xs))
	var ss float64
	for _, x := range xs {
		ss += (x - m) * (x - m)
	}
	return ss / float64(len(xs)-1), m
}

func variance(a Operand, _ *Operand) (*Result, error) {
	xs, err := values(a, "Variance requires a list of numbers", "Variance requires at least 2 numbers", 2)
	if err != nil {
		return nil, err
	}
	v, m := sampleVariance(xs)
	count := len(xs)
	return &Result{Result: v, Mean: &m, Count: &count}, nil
}

func stddev(a Operand, _ *Operand) (*Result, error) {
	xs, err := values(a, "Standard deviation requires a list of numbers", "Standard deviation requires at least 2 numbers", 2)
	if err != nil {
		return nil, err
	}
	v, m := sampleVariance(xs)
	return &Result{Result: math.Sqrt(v), Variance: &v, Mean: &m}, nil
}

func primeCheck(a Operand, _ *Operand) (*Result, error) {
	if a.Kind != KindNumber {
		return nil, typeError("prime_check")
	}
	if err := finite("prime_check", a.Number.Value); err != nil {
		return nil, err
	}
	n := int64(a.Number.Value)
	if n < 2 {
		return &Result{Result: false, Number: &n, Reason: "Less than 2"}, nil
	}
	for i := int64(2); i*i <= n; i++ {
		if n%i == 0 {
			return &Result{Result: false, Number: &n, Factor: &i}, nil
		}
	}
	return &Result{Result: true, Number: &n}, nil
}

func fibonacci(a Operand, _ *Operand) (*Result, error) {
	if a.Kind != KindNumber {
		return nil, typeError("fibonacci")
	}
	if err := finite("fibonacci", a.Number.Value); err != nil {
		return nil, err
	}
	n := int(a.Number.Value)
	if n < 0 {
		return nil, invalid("Fibonacci requires a non-negative integer")
	}
	if n > MaxFibonacci {
		return nil, invalid("Fibonacci supports at most %d terms", MaxFibonacci)
	}

	seq := make([]*big.Int, 0, n)
	for i := range n {
		switch i {
		case 0:
			seq = append(seq, big.NewInt(0))
		case 1:
			seq = append(seq, big.NewInt(1))
		default:
			seq = append(seq, new(big.Int).Add(seq[i-1], seq[i-2]))
		}
	}

	r := &Result{Result: seq, Count: &n}
	if n >= 2 {
		r.Last = seq[n-1]
	}
	return r, nil
}

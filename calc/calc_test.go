package calc_test

import (
	"encoding/json"
	"testing"

	"github.com/fwojciec/toolbox/calc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(o calc.Operand) *calc.Operand { return &o }

// encode returns the JSON form of a result.
func encode(t *testing.T, r *calc.Result) string {
	t.Helper()
	data, err := json.Marshal(r)
	require.NoError(t, err)
	return string(data)
}

func TestEvaluate_Arithmetic(t *testing.T) {
	t.Parallel()

	t.Run("adds integers", func(t *testing.T) {
		t.Parallel()

		r := calc.Evaluate("add", calc.Int(2), ptr(calc.Int(3)))

		assert.JSONEq(t, `{"result": 5, "operation": "2 + 3"}`, encode(t, r))
	})

	t.Run("echoes floats with a fraction", func(t *testing.T) {
		t.Parallel()

		r := calc.Evaluate("subtract", calc.Float(2), ptr(calc.Float(0.5)))

		assert.Equal(t, 1.5, r.Result)
		assert.Equal(t, "2.0 - 0.5", r.Operation)
	})

	t.Run("multiplies and divides", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "3 × 4", calc.Evaluate("multiply", calc.Int(3), ptr(calc.Int(4))).Operation)
		r := calc.Evaluate("divide", calc.Int(7), ptr(calc.Int(2)))
		assert.Equal(t, 3.5, r.Result)
		assert.Equal(t, "7 ÷ 2", r.Operation)
	})

	t.Run("reports division by zero", func(t *testing.T) {
		t.Parallel()

		for _, a := range []calc.Operand{calc.Int(1), calc.Int(0), calc.Float(-2.5)} {
			r := calc.Evaluate("divide", a, ptr(calc.Int(0)))
			assert.Equal(t, "Division by zero is undefined", r.Error)
			assert.Nil(t, r.Result)
		}
	})

	t.Run("requires a second operand", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, &calc.Result{Error: "Addition requires two operands"}, calc.Evaluate("add", calc.Int(1), nil))
		assert.Equal(t, "Power operation requires two operands", calc.Evaluate("power", calc.Int(1), nil).Error)
		assert.Equal(t, "GCD requires two operands", calc.Evaluate("gcd", calc.Int(1), nil).Error)
	})

	t.Run("echoes the operation for list operands", func(t *testing.T) {
		t.Parallel()

		r := calc.Evaluate("add", calc.Ints(1, 2), ptr(calc.Int(3)))

		assert.Equal(t, "unsupported operand type for add", r.Error)
		assert.Equal(t, "add", r.Operation)
	})

	t.Run("raises to a power", func(t *testing.T) {
		t.Parallel()

		r := calc.Evaluate("power", calc.Int(2), ptr(calc.Int(10)))

		assert.Equal(t, 1024.0, r.Result)
		assert.Equal(t, "2^10", r.Operation)
	})

	t.Run("rejects non-finite powers", func(t *testing.T) {
		t.Parallel()

		overflow := calc.Evaluate("power", calc.Float(10), ptr(calc.Float(400)))
		complex := calc.Evaluate("power", calc.Int(-8), ptr(calc.Float(0.5)))

		assert.Equal(t, "power result is not a finite real number", overflow.Error)
		assert.Equal(t, "power", overflow.Operation)
		assert.NotEmpty(t, complex.Error)
	})

	t.Run("takes square roots", func(t *testing.T) {
		t.Parallel()

		r := calc.Evaluate("sqrt", calc.Int(16), nil)

		assert.Equal(t, 4.0, r.Result)
		assert.Equal(t, "√16", r.Operation)
		assert.Equal(t, "Cannot calculate square root of negative number", calc.Evaluate("sqrt", calc.Int(-1), nil).Error)
	})
}

func TestEvaluate_Integers(t *testing.T) {
	t.Parallel()

	t.Run("computes exact factorials", func(t *testing.T) {
		t.Parallel()

		assert.JSONEq(t, `{"result": 120, "operation": "5!"}`, encode(t, calc.Evaluate("factorial", calc.Int(5), nil)))
		assert.JSONEq(t, `{"result": 1, "operation": "0!"}`, encode(t, calc.Evaluate("factorial", calc.Int(0), nil)))
		assert.JSONEq(t, `{"result": 2432902008176640000, "operation": "20!"}`, encode(t, calc.Evaluate("factorial", calc.Int(20), nil)))
	})

	t.Run("rejects non-integer factorials", func(t *testing.T) {
		t.Parallel()

		for _, a := range []calc.Operand{calc.Int(-1), calc.Float(5), calc.Ints(1)} {
			assert.Equal(t, "Factorial requires a non-negative integer", calc.Evaluate("factorial", a, nil).Error)
		}
	})

	t.Run("computes gcd and lcm of truncated operands", func(t *testing.T) {
		t.Parallel()

		assert.JSONEq(t, `{"result": 6, "operation": "gcd(12, 18)"}`, encode(t, calc.Evaluate("gcd", calc.Int(12), ptr(calc.Float(18.9)))))
		assert.JSONEq(t, `{"result": 36, "operation": "lcm(12, -18)"}`, encode(t, calc.Evaluate("lcm", calc.Int(12), ptr(calc.Int(-18)))))
		assert.JSONEq(t, `{"result": 0, "operation": "lcm(0, 0)"}`, encode(t, calc.Evaluate("lcm", calc.Int(0), ptr(calc.Int(0)))))
	})

	t.Run("checks primes", func(t *testing.T) {
		t.Parallel()

		assert.JSONEq(t, `{"result": true, "number": 13}`, encode(t, calc.Evaluate("prime_check", calc.Int(13), nil)))
		assert.JSONEq(t, `{"result": false, "number": 15, "factor": 3}`, encode(t, calc.Evaluate("prime_check", calc.Int(15), nil)))
		assert.JSONEq(t, `{"result": false, "number": 1, "reason": "Less than 2"}`, encode(t, calc.Evaluate("prime_check", calc.Int(1), nil)))
	})

	t.Run("lists fibonacci numbers", func(t *testing.T) {
		t.Parallel()

		assert.JSONEq(t, `{"result": [], "count": 0}`, encode(t, calc.Evaluate("fibonacci", calc.Int(0), nil)))
		assert.JSONEq(t, `{"result": [0], "count": 1}`, encode(t, calc.Evaluate("fibonacci", calc.Int(1), nil)))
		assert.JSONEq(t, `{"result": [0, 1], "count": 2, "last": 1}`, encode(t, calc.Evaluate("fibonacci", calc.Int(2), nil)))
		assert.JSONEq(t, `{"result": [0, 1, 1, 2, 3], "count": 5, "last": 3}`, encode(t, calc.Evaluate("fibonacci", calc.Int(5), nil)))
	})

	t.Run("rejects negative fibonacci counts", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Fibonacci requires a non-negative integer", calc.Evaluate("fibonacci", calc.Int(-3), nil).Error)
	})
}

func TestEvaluate_Statistics(t *testing.T) {
	t.Parallel()

	t.Run("computes the mean", func(t *testing.T) {
		t.Parallel()

		assert.JSONEq(t, `{"result": 2.5, "count": 4, "sum": 10}`, encode(t, calc.Evaluate("mean", calc.Ints(1, 2, 3, 4), nil)))
	})

	t.Run("computes the median", func(t *testing.T) {
		t.Parallel()

		even := calc.Evaluate("median", calc.Ints(4, 1, 3, 2), nil)
		odd := calc.Evaluate("median", calc.Ints(1, 2, 3), nil)

		assert.Equal(t, 2.5, even.Result)
		assert.Equal(t, []float64{1, 2, 3, 4}, even.Sorted)
		assert.Equal(t, 2.0, odd.Result)
	})

	t.Run("finds a single mode", func(t *testing.T) {
		t.Parallel()

		r := calc.Evaluate("mode", calc.Ints(1, 2, 2, 3), nil)

		assert.Equal(t, 2.0, r.Result)
		assert.Equal(t, map[string]int{"1": 1, "2": 2, "3": 1}, r.Frequency)
	})

	t.Run("lists tied modes in first-seen order", func(t *testing.T) {
		t.Parallel()

		r := calc.Evaluate("mode", calc.Floats(3.5, 1, 3.5, 1), nil)

		assert.Equal(t, []float64{3.5, 1}, r.Result)
		assert.Equal(t, map[string]int{"3.5": 2, "1.0": 2}, r.Frequency)
	})

	t.Run("computes sample variance and deviation", func(t *testing.T) {
		t.Parallel()

		v := calc.Evaluate("variance", calc.Ints(2, 4, 4, 4, 5, 5, 7, 9), nil)
		s := calc.Evaluate("stddev", calc.Ints(1, 3), nil)

		assert.InDelta(t, 32.0/7.0, v.Result, 1e-12)
		assert.Equal(t, 5.0, *v.Mean)
		assert.Equal(t, 8, *v.Count)
		assert.InDelta(t, 1.4142135623730951, s.Result, 1e-12)
		assert.Equal(t, 2.0, *s.Variance)
		assert.Equal(t, 2.0, *s.Mean)
	})

	t.Run("validates list operands", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "Mean requires a list of numbers", calc.Evaluate("mean", calc.Int(1), nil).Error)
		assert.Equal(t, "Cannot calculate mean of empty list", calc.Evaluate("mean", calc.Ints(), nil).Error)
		assert.Equal(t, "Cannot calculate median of empty list", calc.Evaluate("median", calc.Ints(), nil).Error)
		assert.Equal(t, "Mode requires a list of numbers", calc.Evaluate("mode", calc.Float(1), nil).Error)
		assert.Equal(t, "Variance requires at least 2 numbers", calc.Evaluate("variance", calc.Ints(1), nil).Error)
		assert.Equal(t, "Standard deviation requires at least 2 numbers", calc.Evaluate("stddev", calc.Ints(1), nil).Error)
	})
}

func TestEvaluate_UnknownOperation(t *testing.T) {
	t.Parallel()

	t.Run("lists every supported operation", func(t *testing.T) {
		t.Parallel()

		r := calc.Evaluate("frobnicate", calc.Int(1), nil)

		assert.Equal(t, "Unknown operation: frobnicate", r.Error)
		assert.Equal(t, calc.Operations(), r.Available)
		assert.Len(t, r.Available, 16)
		for _, op := range r.Available {
			assert.NotContains(t, calc.Evaluate(op, calc.Int(1), nil).Error, "Unknown operation", op)
		}
	})
}

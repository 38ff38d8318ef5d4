package main

import (
	"fmt"

	"github.com/fwojciec/toolbox"
	"github.com/fwojciec/toolbox/calc"
)

// Run executes the math command.
func (c *MathCmd) Run(deps *Dependencies) error {
	a, err := calc.ParseOperand([]byte(c.A))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", toolbox.ErrorMessage(err))
		return err
	}

	var b *calc.Operand
	if c.B != "" {
		operand, err := calc.ParseOperand([]byte(c.B))
		if err != nil {
			fmt.Fprintf(deps.Stderr, "Error: %s\n", toolbox.ErrorMessage(err))
			return err
		}
		b = &operand
	}

	result := calc.Evaluate(c.Operation, a, b)
	if err := writeJSON(deps, result); err != nil {
		return err
	}
	if result.Error != "" {
		return errFailed
	}
	return nil
}

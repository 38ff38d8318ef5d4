package main

import (
	"fmt"

	"github.com/fwojciec/toolbox"
	"github.com/fwojciec/toolbox/finance"
)

// Run executes the tax command.
func (c *TaxCmd) Run(deps *Dependencies) error {
	return writeJSON(deps, finance.CalculateTax(c.Income, c.Rate))
}

// Run executes the compound command.
func (c *CompoundCmd) Run(deps *Dependencies) error {
	result, err := finance.CompoundInterest(c.Principal, c.Rate, c.Years, c.Periods)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", toolbox.ErrorMessage(err))
		return err
	}
	return writeJSON(deps, result)
}

// Run executes the loan command.
func (c *LoanCmd) Run(deps *Dependencies) error {
	result, err := finance.LoanPayment(c.Principal, c.Rate, c.Months)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", toolbox.ErrorMessage(err))
		return err
	}
	return writeJSON(deps, result)
}

// Run executes the retirement command.
func (c *RetirementCmd) Run(deps *Dependencies) error {
	return writeJSON(deps, finance.RetirementSavings(c.CurrentAge, c.RetirementAge, c.Monthly, c.AnnualReturn))
}

package main

import (
	"fmt"

	"github.com/fwojciec/toolbox"
	"github.com/fwojciec/toolbox/dataproc"
	"github.com/fwojciec/toolbox/textstat"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	text, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", toolbox.ErrorMessage(err))
		return err
	}

	report := textstat.Analyze(text, c.Type)
	if err := writeJSON(deps, report); err != nil {
		return err
	}
	if report.Error != "" {
		return errFailed
	}
	return nil
}

// Run executes the data command.
func (c *DataCmd) Run(deps *Dependencies) error {
	data, err := readInput(deps, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Error: %s\n", toolbox.ErrorMessage(err))
		return err
	}

	result := dataproc.Process(data, c.Format, c.Operation)
	if err := writeJSON(deps, result); err != nil {
		return err
	}
	if !result.Success {
		return errFailed
	}
	return nil
}

package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/toolbox"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor toolbox.ContentExtractor
	Pretty    bool
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"C" help:"Limits config file (YAML or JSON). Defaults to $TOOLBOX_CONFIG"`
	Parser  string `enum:"tokenizer,goquery" default:"tokenizer" help:"HTML parser (tokenizer or goquery)"`
	Pretty  bool   `help:"Indent JSON output"`
	Verbose bool   `short:"v" help:"Log operations to stderr"`

	Extract    ExtractCmd    `cmd:"" help:"Extract content from an HTML document"`
	Batch      BatchCmd      `cmd:"" help:"Extract content from many HTML files concurrently"`
	Math       MathCmd       `cmd:"" help:"Run a math operation"`
	Text       TextCmd       `cmd:"" help:"Analyze text statistics"`
	Data       DataCmd       `cmd:"" help:"Parse, filter or transform CSV and JSON data"`
	Tax        TaxCmd        `cmd:"" help:"Calculate flat income tax"`
	Compound   CompoundCmd   `cmd:"" help:"Calculate compound interest"`
	Loan       LoanCmd       `cmd:"" help:"Calculate a monthly loan payment"`
	Retirement RetirementCmd `cmd:"" help:"Project retirement savings"`
}

// ExtractFlags are the extraction options shared by extract and batch.
type ExtractFlags struct {
	Type           string `short:"t" default:"all" help:"Extraction type (all, links, text, metadata, structured, emails, phone_numbers, urls)"`
	BaseURL        string `name:"base-url" help:"Base URL for resolving links"`
	FilterExternal bool   `help:"Drop links to other hosts than the base URL"`
	NoHeadings     bool   `help:"Exclude headings from extracted text"`
	MaxLength      int    `help:"Maximum extracted text length in characters"`
}

// Options converts the flags into extraction options.
func (f ExtractFlags) Options() toolbox.ExtractOptions {
	opts := toolbox.ExtractOptions{
		BaseURL:        f.BaseURL,
		FilterExternal: f.FilterExternal,
		MaxLength:      f.MaxLength,
	}
	if f.NoHeadings {
		include := false
		opts.IncludeHeadings = &include
	}
	return opts
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	ExtractFlags `embed:""`
	File string `arg:"" optional:"" help:"HTML file to read (default: stdin)"`
}

// BatchCmd is the "batch" subcommand.
type BatchCmd struct {
	ExtractFlags `embed:""`
	Concurrency int      `short:"c" default:"4" help:"Concurrent extraction limit"`
	Out         string   `short:"o" help:"Also write one JSON file per source into this directory"`
	Files       []string `arg:"" help:"HTML files to read"`
}

// MathCmd is the "math" subcommand.
type MathCmd struct {
	Operation string `arg:"" help:"Operation name, e.g. add, median, fibonacci"`
	A         string `arg:"" help:"First operand: a number or a JSON list of numbers. Negative numbers may follow '--'"`
	B         string `arg:"" optional:"" help:"Second operand"`
}

// TextCmd is the "text" subcommand.
type TextCmd struct {
	Type string `short:"t" default:"full" help:"Analysis type (full, basic, readability, frequency)"`
	File string `arg:"" optional:"" help:"Text file to read (default: stdin)"`
}

// DataCmd is the "data" subcommand.
type DataCmd struct {
	Format    string `arg:"" help:"Data format (csv or json)"`
	Operation string `short:"o" default:"parse" help:"Operation (parse, filter, transform)"`
	File      string `arg:"" optional:"" help:"Data file to read (default: stdin)"`
}

// TaxCmd is the "tax" subcommand.
type TaxCmd struct {
	Income float64 `arg:"" help:"Gross income"`
	Rate   float64 `arg:"" help:"Tax rate as a fraction, e.g. 0.2"`
}

// CompoundCmd is the "compound" subcommand.
type CompoundCmd struct {
	Principal float64 `arg:"" help:"Initial amount"`
	Rate      float64 `arg:"" help:"Annual interest rate as a fraction"`
	Years     float64 `arg:"" help:"Number of years"`
	Periods   int     `short:"n" default:"12" help:"Compounding periods per year"`
}

// LoanCmd is the "loan" subcommand.
type LoanCmd struct {
	Principal float64 `arg:"" help:"Loan amount"`
	Rate      float64 `arg:"" help:"Annual interest rate as a fraction"`
	Months    int     `arg:"" help:"Loan term in months"`
}

// RetirementCmd is the "retirement" subcommand.
type RetirementCmd struct {
	CurrentAge    int     `arg:"" help:"Current age"`
	RetirementAge int     `arg:"" help:"Retirement age"`
	Monthly       float64 `arg:"" help:"Monthly contribution"`
	AnnualReturn  float64 `default:"0.07" help:"Expected annual return as a fraction"`
}

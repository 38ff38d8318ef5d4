package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/toolbox"
	"github.com/fwojciec/toolbox/extract"
	"github.com/fwojciec/toolbox/goquery"
	"github.com/fwojciec/toolbox/html"
	tbslog "github.com/fwojciec/toolbox/slog"
	"github.com/fwojciec/toolbox/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by commands whose input file is omitted.
	Stdin io.Reader

	// Getenv looks up environment variables.
	Getenv func(string) string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Stdin:  os.Stdin,
		Getenv: os.Getenv,
	}
}

// ConfigEnv names the environment variable holding the limits config path.
const ConfigEnv = "TOOLBOX_CONFIG"

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("toolbox"),
		kong.Description("Extract content from HTML and run text, data, math and finance tools"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
		kong.WithHyphenPrefixedParameters(true),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'toolbox --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Pretty = cli.Pretty

	// Only extraction commands need limits and a parser.
	if cmd := strings.Fields(kongCtx.Command())[0]; cmd == "extract" || cmd == "batch" {
		limits := toolbox.DefaultLimits()
		configPath := cli.Config
		if configPath == "" && m.Getenv != nil {
			configPath = m.Getenv(ConfigEnv)
		}
		if configPath != "" {
			limits, err = yaml.LoadLimits(configPath)
			if err != nil {
				fmt.Fprintf(stderr, "Hint: Set %s or --config to a valid limits file\n", ConfigEnv)
				return fmt.Errorf("failed to load config %q: %s", configPath, toolbox.ErrorMessage(err))
			}
			deps.Logger.Debug("loaded config", "path", configPath)
		}

		var p toolbox.Parser = html.NewParser()
		if cli.Parser == "goquery" {
			p = goquery.NewParser()
		}
		deps.Extractor = tbslog.NewLoggingExtractor(&extract.Extractor{
			Parser: tbslog.NewLoggingParser(p, deps.Logger),
			Limits: limits,
		}, deps.Logger)
	}

	return kongCtx.Run(deps)
}

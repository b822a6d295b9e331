package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/standardbeagle/numflow/internal/config"
	"github.com/standardbeagle/numflow/internal/debug"
	"github.com/standardbeagle/numflow/internal/pipeline"
	"github.com/standardbeagle/numflow/internal/version"

	"github.com/urfave/cli/v2"
)

func main() {
	app := newApp(os.Stdout)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// newApp builds the CLI application. The writer is injected so tests
// can capture command output.
func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:                   "numflow",
		Usage:                  "Filter, square, and sum integer sequences",
		Version:                version.Version,
		Writer:                 out,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultPath,
			},
			&cli.BoolFlag{
				Name:    "json",
				Aliases: []string{"j"},
				Usage:   "Output as JSON",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "version",
				Usage:  "Show detailed version information",
				Action: versionCommand,
			},
			{
				Name:  "config",
				Usage: "Configuration management commands",
				Subcommands: []*cli.Command{
					{
						Name:    "init",
						Aliases: []string{"i"},
						Usage:   "Initialize configuration file (.numflow.toml)",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "output",
								Aliases: []string{"o"},
								Usage:   "Output file path (default: .numflow.toml)",
							},
							&cli.BoolFlag{
								Name:  "force",
								Usage: "Overwrite existing configuration file",
							},
						},
						Action: configInitCommand,
					},
					{
						Name:    "show",
						Aliases: []string{"s"},
						Usage:   "Show current configuration values",
						Action:  configShowCommand,
					},
				},
			},
		},
		Action: runCommand,
	}
}

// runCommand is the default action: load the configured numbers, run
// the pipeline, and print the report.
func runCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	debug.LogConfig("Loaded %d numbers\n", len(cfg.Numbers))

	start := time.Now()
	report := pipeline.Run(cfg.Numbers)
	debug.LogPipeline("Pipeline completed in %v\n", time.Since(start))

	if c.Bool("json") {
		encoder := json.NewEncoder(c.App.Writer)
		encoder.SetIndent("", "  ")
		return encoder.Encode(report)
	}

	fmt.Fprint(c.App.Writer, report.Format())
	return nil
}

func versionCommand(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, version.FullInfo())
	return nil
}

func configInitCommand(c *cli.Context) error {
	output := c.String("output")
	if output == "" {
		output = config.DefaultPath
	}

	// Check if file exists
	if !c.Bool("force") {
		if _, err := os.Stat(output); err == nil {
			return fmt.Errorf("configuration file %s already exists (use --force to overwrite)", output)
		}
	}

	content, err := config.Default().Marshal()
	if err != nil {
		return fmt.Errorf("failed to generate config: %w", err)
	}

	if err := os.WriteFile(output, content, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Fprintf(c.App.Writer, "Configuration file created: %s\n", output)
	fmt.Fprintf(c.App.Writer, "Edit the file to change the input numbers.\n")
	return nil
}

func configShowCommand(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	content, err := cfg.Marshal()
	if err != nil {
		return fmt.Errorf("failed to render config: %w", err)
	}

	fmt.Fprint(c.App.Writer, string(content))
	return nil
}

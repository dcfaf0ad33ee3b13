package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/rothplan/roth-planner/internal/calculation"
	"github.com/rothplan/roth-planner/internal/config"
	"github.com/rothplan/roth-planner/internal/output"
	"github.com/rothplan/roth-planner/internal/tables"
)

var (
	inputFile    string
	outputFormat string
	verbose      bool
)

// stderrLogger routes engine logging to stderr when --verbose is set.
type stderrLogger struct {
	debug bool
}

func (l stderrLogger) Debugf(format string, args ...any) {
	if l.debug {
		log.Printf("DEBUG "+format, args...)
	}
}
func (l stderrLogger) Infof(format string, args ...any)  { log.Printf("INFO "+format, args...) }
func (l stderrLogger) Warnf(format string, args ...any)  { log.Printf("WARN "+format, args...) }
func (l stderrLogger) Errorf(format string, args ...any) { log.Printf("ERROR "+format, args...) }

func main() {
	rootCmd := &cobra.Command{
		Use:   "rothplan",
		Short: "Roth conversion planning calculator",
		Long: `rothplan simulates a retirement plan year by year, with and without a
Roth conversion schedule, and compares lifetime taxes, Medicare costs,
required minimum distributions and the estate left to heirs.`,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run a scenario and print the comparison",
		RunE:  runScenario,
	}
	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Scenario YAML file (required)")
	runCmd.Flags().StringVarP(&outputFormat, "format", "f", "console", "Output format (console, json)")
	runCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	_ = runCmd.MarkFlagRequired("input")

	exampleCmd := &cobra.Command{
		Use:   "example",
		Short: "Print a starter scenario file",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(exampleScenario)
		},
	}

	rootCmd.AddCommand(runCmd, exampleCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runScenario(cmd *cobra.Command, args []string) error {
	formatter := output.GetFormatterByName(outputFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q (available: %v)", outputFormat, output.AvailableFormatterNames())
	}

	input, err := config.NewInputParser().LoadFromFile(inputFile)
	if err != nil {
		return fmt.Errorf("loading scenario: %w", err)
	}

	var logger calculation.Logger = calculation.NopLogger{}
	if verbose {
		logger = stderrLogger{debug: true}
	}

	orchestrator := calculation.NewOrchestrator(tables.NewDefaultProvider(), logger)
	result, err := orchestrator.Run(*input)
	if err != nil {
		return fmt.Errorf("running scenario: %w", err)
	}

	data, err := formatter.Format(result)
	if err != nil {
		return fmt.Errorf("formatting result: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

package main

import (
	"context"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"tfinspect/internal/inspect"
	"tfinspect/internal/report"
	"tfinspect/pkg/logging"
)

func main() {
	var path string
	var outputFormat string
	var concurrencyLimit int
	var strict bool
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "tfinspect",
		Short: "Inspect a Terraform module directory and summarize what it declares, without evaluating it",
		Run: func(cmd *cobra.Command, args []string) {
			if path == "" && len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				path = "."
			}

			logger := logging.NewDefaultLogger()
			logger.SetLevel(logging.StringToLogLevel(logLevel))

			config := inspect.Config{
				Path:             path,
				ConcurrencyLimit: concurrencyLimit,
				Strict:           strict,
			}

			service := inspect.NewService(config, inspect.DirLister{}, inspect.NewHCLParser(), logger)

			mod, err := service.Run(context.Background())
			if err != nil {
				log.Fatalf("Error: %v", err)
			}

			if err := report.PrintModule(mod, getOutputFormat(outputFormat)); err != nil {
				log.Fatalf("Error: %v", err)
			}

			// Callers decide how to treat error diagnostics; the exit code
			// makes that decision scriptable.
			if mod.Diagnostics.HasErrors() {
				os.Exit(2)
			}
		},
	}

	rootCmd.Flags().StringVar(&path, "path", "", "Path to the Terraform module directory (default: current directory)")
	rootCmd.Flags().StringVar(&outputFormat, "output", "json", "Output format: json or table")
	rootCmd.Flags().IntVar(&concurrencyLimit, "concurrency", runtime.NumCPU(), "Maximum number of files to extract concurrently (default: number of CPU cores)")
	rootCmd.Flags().BoolVar(&strict, "strict", false, "Fail on the first file that cannot be read or parsed")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, or error")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// getOutputFormat converts the string format to report.OutputFormatType.
func getOutputFormat(format string) report.OutputFormatType {
	switch strings.ToUpper(format) {
	case "TABLE":
		return report.OutputFormatTypeTABLE
	default:
		return report.OutputFormatTypeJSON
	}
}

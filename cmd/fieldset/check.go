package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/fieldset/internal/config"
	"github.com/reglet-dev/fieldset/internal/engine"
	"github.com/reglet-dev/fieldset/internal/output"
	"github.com/reglet-dev/fieldset/internal/version"
)

var (
	format  string
	outFile string
	workers int
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <schema.yaml> <documents.yaml> [documents.yaml...]",
	Short: "Validate value documents against a record schema",
	Long: `Load a schema file, then construct every document in the given
document files against the record types it declares. Each document either
becomes an immutable record instance (reported with its canonical rendering)
or is rejected with the validation error that stopped construction.`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheckAction(cmd.Context(), args[0], args[1:])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&format, "format", "table", "Output format: table, json, yaml, sarif")
	checkCmd.Flags().StringVarP(&outFile, "output", "o", "", "Output file path (default: stdout)")
	checkCmd.Flags().IntVar(&workers, "workers", 0, "Concurrent document constructions (default: number of CPUs)")
}

// runCheckAction implements the core logic for the check command
func runCheckAction(ctx context.Context, schemaPath string, docPaths []string) error {
	slog.Info("loading schema", "path", schemaPath)

	schemaFile, err := config.LoadSchemaFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	slog.Info("schema loaded",
		"name", schemaFile.Metadata.Name,
		"version", schemaFile.Metadata.Version,
		"records", schemaFile.RecordCount())

	registry, err := config.BuildRegistry(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to build record registry: %w", err)
	}

	var docs []config.Document
	for _, path := range docPaths {
		loaded, err := config.LoadDocuments(path)
		if err != nil {
			return fmt.Errorf("failed to load documents from %s: %w", path, err)
		}
		docs = append(docs, loaded...)
	}

	slog.Info("validating documents", "count", len(docs))

	runner := engine.NewRunner(registry, schemaFile.Metadata, workers)
	result, err := runner.Run(ctx, docs)
	if err != nil {
		return fmt.Errorf("run failed: %w", err)
	}

	slog.Info("run complete",
		"run_id", result.RunID,
		"duration", result.Duration,
		"total", result.Summary.TotalDocuments,
		"passed", result.Summary.PassedDocuments,
		"failed", result.Summary.FailedDocuments,
		"errors", result.Summary.ErrorDocuments)

	writer := os.Stdout
	if outFile != "" {
		//nolint:gosec // G304: User-controlled output file path is intentional
		file, err := os.Create(outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
		slog.Info("writing output", "file", outFile, "format", format)
	}

	formatter, err := output.NewFormatter(format, writer, version.Get().String())
	if err != nil {
		return err
	}
	if err := formatter.Format(result); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	if result.HasFailures() {
		return fmt.Errorf("check failed: %d passed, %d failed, %d errors",
			result.Summary.PassedDocuments,
			result.Summary.FailedDocuments,
			result.Summary.ErrorDocuments)
	}

	return nil
}

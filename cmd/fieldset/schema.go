package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/reglet-dev/fieldset/internal/config"
)

// schemaCmd represents the schema command
var schemaCmd = &cobra.Command{
	Use:   "schema <schema.yaml>",
	Short: "Inspect the resolved record schemas of a schema file",
	Long: `Load a schema file and print each record type's resolved schema:
every field in canonical order (inherited fields before the type's own) with
its value type, label, and the ancestor it was inherited from.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSchemaAction(cmd, args[0])
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
}

func runSchemaAction(cmd *cobra.Command, schemaPath string) error {
	schemaFile, err := config.LoadSchemaFile(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to load schema: %w", err)
	}

	registry, err := config.BuildRegistry(schemaFile)
	if err != nil {
		return fmt.Errorf("failed to build record registry: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Schema: %s (v%s)\n", schemaFile.Metadata.Name, schemaFile.Metadata.Version)
	if schemaFile.Metadata.Description != "" {
		fmt.Fprintln(out, schemaFile.Metadata.Description)
	}
	fmt.Fprintln(out)

	for _, name := range registry.Names() {
		rt, _ := registry.Lookup(name)
		resolved, err := rt.Resolve()
		if err != nil {
			return err
		}

		decl := schemaFile.GetRecord(name)
		if len(decl.Inherits) > 0 {
			fmt.Fprintf(out, "%s (inherits %s)\n", name, strings.Join(decl.Inherits, ", "))
		} else {
			fmt.Fprintf(out, "%s\n", name)
		}

		own := make(map[string]bool, len(decl.Fields))
		for _, fd := range decl.Fields {
			own[fd.Name] = true
		}

		for _, fieldName := range resolved.FieldNames() {
			entry, _ := resolved.Entry(fieldName)
			origin := "inherited"
			if own[fieldName] {
				origin = "own"
			}
			fmt.Fprintf(out, "  %-12s %-8s %-10s %s\n", fieldName, entry.Type, origin, entry.Field.Label)
		}
		fmt.Fprintln(out)
	}

	return nil
}

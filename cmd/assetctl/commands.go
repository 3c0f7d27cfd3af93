package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/JonMunkholm/assettrack/internal/core"
)

func newImportCmd(a *app) *cobra.Command {
	var entity, file string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a CSV or XLSX file into an entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			run := a.svc.Import
			if dryRun {
				run = a.svc.PreviewImport
			}

			result, err := run(cmd.Context(), entity, filepath.Base(file), data)
			if err != nil {
				if result != nil {
					_ = printJSON(cmd.ErrOrStderr(), result)
				}
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&entity, "entity", "", "Entity key, e.g. licenses (required)")
	cmd.Flags().StringVar(&file, "file", "", "Path of the .csv or .xlsx file (required)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the records that would be created without writing")
	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newInspectCmd(a *app) *cobra.Command {
	var entity, file string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show how the headers of a file map to an entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			result, err := a.svc.AnalyzeHeaders(cmd.Context(), entity, filepath.Base(file), data)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), result)
		},
	}

	cmd.Flags().StringVar(&entity, "entity", "", "Entity key (required)")
	cmd.Flags().StringVar(&file, "file", "", "Path of the .csv or .xlsx file (required)")
	_ = cmd.MarkFlagRequired("entity")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newListCmd(a *app) *cobra.Command {
	var entity, query, status string
	var inactive bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the stored records of an entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			if inactive {
				status = core.LicenseStatusInactive
			}
			if status == "" {
				records, err := a.svc.ListRecords(cmd.Context(), entity, query)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), records)
			}

			if entity != core.LicensesKey {
				return fmt.Errorf("%w: --status and --inactive only apply to %s", core.ErrInvalidRequest, core.LicensesKey)
			}
			records, err := a.svc.ListLicenses(cmd.Context(), status, query)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), records)
		},
	}

	cmd.Flags().StringVar(&entity, "entity", "", "Entity key (required)")
	cmd.Flags().StringVar(&query, "query", "", "Keep records with a value containing this text")
	cmd.Flags().StringVar(&status, "status", "", "License holders to print: active, inactive or all")
	cmd.Flags().BoolVar(&inactive, "inactive", false, "Print only inactive license holders")
	cmd.MarkFlagsMutuallyExclusive("status", "inactive")
	_ = cmd.MarkFlagRequired("entity")

	return cmd
}

func newEntitiesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "entities",
		Short: "List the entities and the headers their imports recognize",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), a.svc.Entities())
		},
	}
}

func newTemplateCmd(a *app) *cobra.Command {
	var entity, output string

	cmd := &cobra.Command{
		Use:   "template",
		Short: "Write an empty import spreadsheet for an entity",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, data, err := a.svc.ImportTemplate(entity)
			if err != nil {
				return err
			}
			if output == "" {
				output = name
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), output)
			return nil
		},
	}

	cmd.Flags().StringVar(&entity, "entity", "", "Entity key (required)")
	cmd.Flags().StringVar(&output, "output", "", "Destination path (default <entity>_template.csv)")
	_ = cmd.MarkFlagRequired("entity")

	return cmd
}

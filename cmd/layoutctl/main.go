// Package main contains the cli implementation of the tool. It uses the
// cobra package for cli tool implementation.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"kijilayout/internal/core"
	"kijilayout/internal/descriptor"
	"kijilayout/internal/layout"
	"kijilayout/internal/output"
	"kijilayout/internal/report"
)

type buildFlags struct {
	priorFile string
	outFile   string
	format    string
}

type diffFlags struct {
	format string
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "layoutctl",
		Short: "Table layout compiler and validator",
	}

	rootCmd.AddCommand(validateCmd())
	rootCmd.AddCommand(buildCmd())
	rootCmd.AddCommand(diffCmd())
	rootCmd.AddCommand(queryCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <descriptor>",
		Short: "Validate a table layout descriptor, reporting any error",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			_, err := loadAndBuild(args[0], "")
			if err != nil {
				return err
			}
			fmt.Println("valid")
			return nil
		},
	}
}

func buildCmd() *cobra.Command {
	flags := &buildFlags{}
	cmd := &cobra.Command{
		Use:   "build <descriptor>",
		Short: "Build a table layout from a descriptor, optionally reconciling against a prior layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return runBuild(args[0], flags)
		},
	}
	cmd.Flags().StringVar(&flags.priorFile, "prior", "", "Path to the prior layout descriptor (JSON or TOML)")
	cmd.Flags().StringVarP(&flags.outFile, "output", "o", "", "Output file for the built layout")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: human, json, or summary")
	return cmd
}

func diffCmd() *cobra.Command {
	flags := &diffFlags{}
	cmd := &cobra.Command{
		Use:   "diff <prior-descriptor> <next-descriptor>",
		Short: "Report what changed between two layouts of the same table",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runDiff(args[0], args[1], flags)
		},
	}
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "Output format: human, json, or summary")
	return cmd
}

func queryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "query <descriptor> <family[:qualifier]>",
		Short: "Look up a column's schema and storage format",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return runQuery(args[0], args[1])
		},
	}
}

func loadAndBuild(path, priorPath string) (*core.TableLayout, error) {
	desc, err := descriptor.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading descriptor: %w", err)
	}

	var prior *core.TableLayout
	if priorPath != "" {
		priorDesc, err := descriptor.ParseFile(priorPath)
		if err != nil {
			return nil, fmt.Errorf("reading prior descriptor: %w", err)
		}
		prior, err = layout.Build(priorDesc, nil)
		if err != nil {
			return nil, fmt.Errorf("building prior layout: %w", err)
		}
	}

	logger := zap.NewNop().Sugar()
	table, err := layout.Build(desc, prior, layout.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return table, nil
}

func runBuild(path string, flags *buildFlags) error {
	table, err := loadAndBuild(path, flags.priorFile)
	if err != nil {
		return err
	}
	formatter, err := output.NewFormatter(flags.format)
	if err != nil {
		return err
	}
	formatted, err := formatter.FormatLayout(table)
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	return writeOutput(formatted, flags.outFile)
}

func runDiff(priorPath, nextPath string, flags *diffFlags) error {
	priorDesc, err := descriptor.ParseFile(priorPath)
	if err != nil {
		return fmt.Errorf("reading prior descriptor: %w", err)
	}
	prior, err := layout.Build(priorDesc, nil)
	if err != nil {
		return fmt.Errorf("building prior layout: %w", err)
	}

	nextDesc, err := descriptor.ParseFile(nextPath)
	if err != nil {
		return fmt.Errorf("reading next descriptor: %w", err)
	}
	next, err := layout.Build(nextDesc, prior)
	if err != nil {
		return fmt.Errorf("building next layout: %w", err)
	}

	rpt := report.Compute(prior, next)
	formatter, err := output.NewFormatter(flags.format)
	if err != nil {
		return err
	}
	formatted, err := formatter.FormatReport(rpt)
	if err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}
	fmt.Print(formatted)
	return nil
}

func runQuery(path, columnName string) error {
	table, err := loadAndBuild(path, "")
	if err != nil {
		return err
	}

	name := parseColumnName(columnName)

	if !layout.Exists(table, name) {
		return fmt.Errorf("no such column: %s", name)
	}
	schema, err := layout.GetCellSchema(table, name)
	if err != nil {
		return err
	}
	format, err := layout.GetCellFormat(table, name)
	if err != nil {
		return err
	}
	fmt.Printf("%s: type=%s storage=%s\n", name, schema.Type, format)
	return nil
}

func parseColumnName(s string) core.KijiColumnName {
	family, qualifier, hasQualifier := strings.Cut(s, ":")
	name := core.KijiColumnName{Family: family}
	if hasQualifier {
		name.Qualifier = &qualifier
	}
	return name
}

func writeOutput(content, outFile string) error {
	if outFile == "" {
		fmt.Print(content)
		return nil
	}
	if err := os.WriteFile(outFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing output file: %w", err)
	}
	fmt.Printf("output saved to %s\n", outFile)
	return nil
}

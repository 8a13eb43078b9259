package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"

	"leadhub/adapters/pdftext"
	"leadhub/adapters/tabular"
	"leadhub/domain/lead"
	"leadhub/internal/classify"
	"leadhub/internal/cleanse"
	"leadhub/internal/statement"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "leadhub-cli",
		Short: "LeadHub CLI for cleaning lead files and verifying bank statements",
	}

	rootCmd.AddCommand(
		newCleanCmd(),
		newSuggestCmd(),
		newVerifyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newCleanCmd() *cobra.Command {
	var output string
	var sampleSize int

	cmd := &cobra.Command{
		Use:   "clean <file>",
		Short: "Clean a CSV/XLSX lead file onto the HUB schema",
		Long: `Classify the file's columns onto the target schema and write the
cleaned CSV. Without --output the result lands beside the input as
<basename>_cleaned.csv.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, mapping, err := classifyFile(cmd.Context(), args[0], sampleSize)
			if err != nil {
				return err
			}

			cleaned, summary := cleanse.New(cleanse.DefaultConfig()).Clean(table, mapping)

			path := output
			if path == "" {
				path = filepath.Join(filepath.Dir(args[0]), tabular.CleanedName(args[0]))
			}
			f, err := os.Create(path)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := tabular.NewWriter().WriteTable(cmd.Context(), f, cleaned); err != nil {
				return err
			}

			fmt.Printf("Wrote %s: %d rows, %d/%d columns matched, %d extras\n",
				path, summary.SourceRows, summary.MatchedColumns,
				summary.SourceColumns, summary.ExtraColumns)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path for the cleaned CSV")
	cmd.Flags().IntVar(&sampleSize, "sample-size", 100, "Values sampled per column for pattern classification")

	return cmd
}

func newSuggestCmd() *cobra.Command {
	var sampleSize int

	cmd := &cobra.Command{
		Use:   "suggest <file>",
		Short: "Print the column classification without writing output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, mapping, err := classifyFile(cmd.Context(), args[0], sampleSize)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "COLUMN\tHEADER\tFIELD\tKIND\tCONFIDENCE")
			for _, a := range mapping.Assignments {
				field := string(a.Field)
				if field == "" {
					field = "(extra)"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%.0f%%\n",
					a.Column, a.Header, field, a.Kind, a.Confidence*100)
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&sampleSize, "sample-size", 100, "Values sampled per column for pattern classification")

	return cmd
}

func newVerifyCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "verify <pdf...>",
		Short: "Analyze bank-statement PDFs and print the report brief",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service := statement.NewService(pdftext.NewExtractor(),
				statement.ParserConfig{DefaultYear: year})

			report, err := service.Verify(cmd.Context(), args)
			if err != nil {
				return err
			}
			fmt.Print(report.Brief)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, "year", 0, "Statement year when the PDFs don't state one (default: current year)")

	return cmd
}

func classifyFile(ctx context.Context, path string, sampleSize int) (*lead.SourceTable, *lead.ColumnMapping, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	table, err := tabular.NewReader().ReadTable(ctx, f, path)
	if err != nil {
		return nil, nil, err
	}

	config := classify.DefaultConfig()
	config.SampleSize = sampleSize
	mapping := classify.New(config).Classify(table)
	return table, mapping, nil
}

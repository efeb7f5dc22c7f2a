package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/xml2json/internal/archive"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List or export archived conversions",
	Long: `History reads the SQLite archive written by convert --archive and lists
past conversions, newest first, with their total match scores. Results can
be filtered by source or input digest and exported as YAML or JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, _ := cmd.Flags().GetString("archive")
		store, err := archive.Open(path)
		if err != nil {
			return err
		}
		defer store.Close()

		source, _ := cmd.Flags().GetString("source")
		digest, _ := cmd.Flags().GetString("digest")
		limit, _ := cmd.Flags().GetInt("max-results")
		opts := archive.QueryOptions{Source: source, Digest: digest, Limit: limit}

		out := cmd.OutOrStdout()
		switch format, _ := cmd.Flags().GetString("export"); format {
		case "":
		case "json":
			return store.ExportJSON(cmd.Context(), out, opts)
		case "yaml":
			return store.ExportYAML(cmd.Context(), out, opts)
		default:
			return fmt.Errorf("unknown --export format %q (want yaml or json)", format)
		}

		records, err := store.List(cmd.Context(), opts)
		if err != nil {
			return err
		}
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tCONVERTED\tSOURCE\tROOT\tTOTAL")
		for _, r := range records {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", r.ID, r.ConvertedAt.Local().Format(time.DateTime), r.Source, r.RootTag, r.TotalScore)
		}
		return tw.Flush()
	},
}

func init() {
	historyCmd.Flags().String("archive", archive.DefaultPath, "SQLite archive to read")
	historyCmd.Flags().String("source", "", "filter by source file")
	historyCmd.Flags().String("digest", "", "filter by SHA-256 of the XML input")
	historyCmd.Flags().Int("max-results", 20, "maximum number of records to list")
	historyCmd.Flags().String("export", "", "export all matching records: yaml or json")

	rootCmd.AddCommand(historyCmd)
}

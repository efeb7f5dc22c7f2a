package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/xml2json/internal/convert"
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Convert the built-in sample response document",
	Long: `Sample converts a built-in XML response with two matches (scores 35 and
50) and prints the JSON. Use --show-xml to print the input as well.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}

		svc, closeArchive, err := newService(cmd, convert.New(settings, convert.WithLogger(logger)))
		if err != nil {
			return err
		}
		defer closeArchive()

		if show, _ := cmd.Flags().GetBool("show-xml"); show {
			fmt.Fprintln(cmd.OutOrStdout(), convert.SampleXML)
		}

		res, err := svc.Process(cmd.Context(), "sample", strings.NewReader(convert.SampleXML))
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error converting XML to JSON:", err)
			return err
		}
		fmt.Fprintln(os.Stderr, "\n--- Converted JSON Output ---")
		fmt.Fprintln(cmd.OutOrStdout(), res.JSON)
		return nil
	},
}

func init() {
	sampleCmd.Flags().Bool("show-xml", false, "print the sample XML before the JSON")
	sampleCmd.Flags().String("archive", "", "record the conversion in this SQLite archive")

	rootCmd.AddCommand(sampleCmd)
}

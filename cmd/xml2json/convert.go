package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/xml2json/internal/archive"
	"github.com/pdiddy/xml2json/internal/convert"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert XML files to JSON",
	Long: `Convert transforms XML response documents into JSON. With no arguments, or
a single "-", it reads one document from stdin and writes JSON to stdout.
Otherwise each file is written to <out-dir>/<name>.json; existing outputs are
skipped unless --force is given.`,
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

		if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
			res, err := svc.Process(cmd.Context(), "stdin", cmd.InOrStdin())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.JSON)
			return nil
		}

		outDir, _ := cmd.Flags().GetString("out-dir")
		force, _ := cmd.Flags().GetBool("force")
		result := convert.ConvertPaths(cmd.Context(), svc, args, convert.BatchOptions{OutDir: outDir, Force: force}, os.Stderr)
		if result.HasFailures() {
			return fmt.Errorf("%d of %d documents failed", result.Failed, result.Total())
		}
		return nil
	},
}

// newService wires the converter to the archive named by --archive, if any.
// The returned func closes the archive.
func newService(cmd *cobra.Command, conv *convert.Converter) (*convert.Service, func(), error) {
	path, _ := cmd.Flags().GetString("archive")
	if path == "" {
		return convert.NewService(conv, nil, logger), func() {}, nil
	}
	store, err := archive.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return convert.NewService(conv, store, logger), func() { store.Close() }, nil
}

func init() {
	convertCmd.Flags().String("out-dir", "json", "directory for converted JSON files")
	convertCmd.Flags().Bool("force", false, "re-convert files whose JSON output already exists")
	convertCmd.Flags().String("archive", "", "record conversions in this SQLite archive")

	rootCmd.AddCommand(convertCmd)
}

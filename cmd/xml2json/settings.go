package main

import (
	"github.com/spf13/cobra"

	"github.com/pdiddy/xml2json/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Print the resolved converter settings as YAML",
	Long: `Settings resolves the configuration exactly as convert would (defaults,
properties file, environment, flags) and prints the result as YAML.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		return config.WriteYAML(cmd.OutOrStdout(), settings)
	},
}

func init() {
	rootCmd.AddCommand(settingsCmd)
}

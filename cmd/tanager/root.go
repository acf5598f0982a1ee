package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tanagerbot/tanager/internal/version"
)

func newRootCommand() *cobra.Command {
	var configFlag string

	env := &commandEnv{configPath: &configFlag}

	rootCmd := &cobra.Command{
		Use:           "tanager",
		Short:         "MusicBrainz metadata enrichment bots",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newArtistCountryCommand(env))
	rootCmd.AddCommand(newLinkArtistsCommand(env))
	rootCmd.AddCommand(newLinkArtistsJaCommand(env))
	rootCmd.AddCommand(newLinkReleaseGroupsCommand(env))
	rootCmd.AddCommand(newLinkLabelsCommand(env))
	rootCmd.AddCommand(newDiscogsMastersCommand(env))
	rootCmd.AddCommand(newDBCommand(env))
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(os.Stdout, version.Version)
		},
	}
}

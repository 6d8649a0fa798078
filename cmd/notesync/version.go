package main

import (
	"fmt"

	"github.com/aretw0/notesync"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of notesync",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "notesync version %s\n", notesync.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

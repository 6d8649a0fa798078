package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/notesync/pkg/core"
	"github.com/spf13/cobra"
)

var listOutput string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes of the repository",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd)
		if err != nil {
			return err
		}

		entries, err := svc.ListDocuments(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}

		if listOutput != formatText {
			return encode(cmd.OutOrStdout(), listOutput, entries)
		}
		return printEntries(cmd, entries)
	},
}

func printEntries(cmd *cobra.Command, entries []core.Entry) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", e.ID, e.Size, shortSHA(e.SHA))
	}
	return tw.Flush()
}

func shortSHA(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().StringVarP(&listOutput, "output", "o", formatText, "Output format: text, json or yaml")
}

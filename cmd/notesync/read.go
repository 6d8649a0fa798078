package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var readOutput string

var readCmd = &cobra.Command{
	Use:   "read [id]",
	Short: "Read a note",
	Long:  `Read a note by its ID. Prints the raw content by default, or the document with --output json|yaml.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := openService(cmd)
		if err != nil {
			return err
		}

		doc, err := svc.GetDocument(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("failed to read note: %w", err)
		}

		if readOutput == formatText {
			fmt.Fprint(cmd.OutOrStdout(), doc.Content)
			return nil
		}
		return encode(cmd.OutOrStdout(), readOutput, doc)
	},
}

func init() {
	rootCmd.AddCommand(readCmd)
	readCmd.Flags().StringVarP(&readOutput, "output", "o", formatText, "Output format: text, json or yaml")
}

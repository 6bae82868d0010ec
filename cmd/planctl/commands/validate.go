package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/BenjaminKuhnn/Mitarbeit/pkg/roster"
)

var validateFile string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a roster file without planning",
	Long: `Check that a roster file parses and every record is well formed:
dates in YYYY-MM-DD form, known license classes, experience levels in
range, and IDs unique within each collection.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVarP(&validateFile, "file", "f", "roster.yml", "Roster file to check")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	input, err := roster.LoadFile(validateFile)
	if err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(cmd.OutOrStdout(), "✗ %v\n", err)
		return fmt.Errorf("roster is not valid")
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "✓ %s: %d events, %d workers\n",
		validateFile, len(input.Events), len(input.Workers))
	return nil
}

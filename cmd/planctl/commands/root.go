package commands

import (
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "planctl",
	Short: "Staff events from a roster file",
	Long: `planctl computes staffing plans for events from a YAML roster file.

Each worker serves at most one event per calendar date. License quotas are
filled before the remaining slots, and events that need a leader get at
least one member with sufficient experience.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// If no subcommand is specified, show help
		return cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	rootCmd.SilenceUsage = true
	return rootCmd.Execute()
}

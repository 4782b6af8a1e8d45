package commands

import (
	"fmt"
	"sync"

	"github.com/spf13/cobra"
)

var validCmd = &cobra.Command{
	Use:   "valid [value]",
	Short: "Print whether the value is present and non-empty",
	Long: `Valid prints true when a non-empty value is given and false otherwise.
Omitting the value is treated as null and prints false.`,
	Example: `  utildemo valid test   # true
  utildemo valid ""     # false
  utildemo valid        # false`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), service.IsValid(cmd.Context(), optionalArg(args)))
	},
}

var initValidOnce sync.Once

// InitValidCommand registers the valid command
func InitValidCommand() {
	initValidOnce.Do(func() {
		rootCmd.AddCommand(validCmd)
	})
}

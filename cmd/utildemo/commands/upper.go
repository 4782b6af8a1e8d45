package commands

import (
	"fmt"
	"sync"

	"github.com/compozy/utildemo/engine/core"
	"github.com/compozy/utildemo/engine/utils"
	"github.com/spf13/cobra"
)

var upperCmd = &cobra.Command{
	Use:   "upper [input]",
	Short: "Print the input copied character by character and upper-cased",
	Long: `Upper copies the input one character at a time and prints it upper-cased.
Characters without an upper-case form are printed unchanged.

Omitting the input passes a null string, which faults and is reported as a
NULL_REFERENCE error. Pass "" for an empty string.

The --mode flag overrides strings.concat_mode from the configuration:
  builder  append into one buffer sized up front (default)
  naive    rebuild the accumulated string on every character`,
	Example: `  utildemo upper hello              # HELLO
  utildemo upper --mode naive hello # HELLO
  utildemo upper                    # Error: [NULL_REFERENCE] ...`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops := service
		if cmd.Flags().Changed("mode") {
			name, err := cmd.Flags().GetString("mode")
			if err != nil {
				return fmt.Errorf("failed to get mode flag: %w", err)
			}
			mode, err := utils.ParseConcatMode(name)
			if err != nil {
				return core.NewError(err, core.ErrorCodeInvalidInput, map[string]any{"flag": "mode"})
			}
			ops = utils.NewService(&utils.Config{ConcatMode: mode})
		}

		result, err := ops.ProcessString(cmd.Context(), optionalArg(args))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}

var initUpperOnce sync.Once

// InitUpperCommand registers the upper command
func InitUpperCommand() {
	initUpperOnce.Do(func() {
		upperCmd.Flags().String("mode", string(utils.ConcatBuilder), "accumulation strategy (builder, naive)")
		rootCmd.AddCommand(upperCmd)
	})
}

// optionalArg returns the first argument, or nil when none was given
func optionalArg(args []string) *string {
	if len(args) == 0 {
		return nil
	}
	return &args[0]
}

package commands

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/compozy/utildemo/engine/core"
	"github.com/spf13/cobra"
)

var divideCmd = &cobra.Command{
	Use:   "divide <a> <b>",
	Short: "Print the truncated integer quotient a / b",
	Long: `Divide prints a / b truncated toward zero.

The divisor is not checked before dividing. A zero divisor faults at the
division itself and is reported as a DIVISION_BY_ZERO error.`,
	Example: `  utildemo divide 10 2    # 5
  utildemo divide -- -7 2 # -3, "--" ends flag parsing before negative operands
  utildemo divide 1 0     # Error: [DIVISION_BY_ZERO] ...`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseInt("a", args[0])
		if err != nil {
			return err
		}
		b, err := parseInt("b", args[1])
		if err != nil {
			return err
		}

		quotient, err := service.Divide(cmd.Context(), a, b)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), quotient)
		return nil
	},
}

var initDivideOnce sync.Once

// InitDivideCommand registers the divide command
func InitDivideCommand() {
	initDivideOnce.Do(func() {
		rootCmd.AddCommand(divideCmd)
	})
}

func parseInt(name, raw string) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, core.NewError(err, core.ErrorCodeInvalidInput, map[string]any{
			"argument": name,
			"value":    raw,
		})
	}
	return n, nil
}

package commands

import (
	"sync"

	"github.com/spf13/cobra"
)

var initHelpOnce sync.Once

// InitHelpCommands registers the help topics
func InitHelpCommands() {
	initHelpOnce.Do(func() {
		rootCmd.AddCommand(helpConfig)
		rootCmd.AddCommand(helpErrors)
	})
}

var helpConfig = &cobra.Command{
	Use:   "config",
	Short: "Configuration file format and options",
	Long: `utildemo reads an optional YAML configuration file (utildemo.yaml).

CONFIGURATION FILE STRUCTURE:
----------------------------
log:
  level: "info"                    # Log level (debug, info, warn, error)

strings:
  concat_mode: "builder"           # Accumulation strategy (builder, naive)

ENVIRONMENT VARIABLES:
---------------------
You can override config values with environment variables:
- UTILDEMO_LOG_LEVEL
- UTILDEMO_STRINGS_CONCAT_MODE

DEFAULT LOCATIONS:
-----------------
utildemo looks for configuration in these locations (in order):
1. --config flag
2. ./utildemo.yaml

Logs are written to stderr; stdout carries only results.`,
}

var helpErrors = &cobra.Command{
	Use:   "errors",
	Short: "Error codes reported by the operations",
	Long: `Failures are printed as "Error: [CODE] cause (metadata: ...)" and the
process exits with status 1.

ERROR CODES:
-----------
DIVISION_BY_ZERO   divide was called with a zero divisor
NULL_REFERENCE     upper was called without an input string
INVALID_INPUT      an argument or flag could not be parsed
CONFIG_INVALID     the configuration holds an unknown level or mode
PANIC_RECOVERED    any other runtime fault inside an operation

The operations do not validate their inputs. Faults are raised where
the invalid value is used and classified on the way out.`,
}

package commands

import (
	"fmt"
	"os"
	"sync"

	"github.com/compozy/utildemo/engine/utils"
	"github.com/compozy/utildemo/pkg/config"
	"github.com/compozy/utildemo/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd runs the demonstration when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "utildemo",
	Short: "Demonstrates division, string upper-casing and value validation",
	Long: `utildemo exercises three small utility operations and prints the results.

Run without arguments to execute the demonstration:
  divide(10, 2)            -> 5
  processString("hello")   -> HELLO
  isValid("test")          -> true

Each operation is also available as a subcommand. Faults such as a zero
divisor or a missing string are reported as errors with a non-zero exit
status; they are not guarded against inside the operations themselves.`,
	Example: `  # Run the demonstration
  utildemo

  # Run a single operation
  utildemo divide 7 2
  utildemo upper hello
  utildemo valid ""`,
	Args:              cobra.NoArgs,
	PersistentPreRunE: setup,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runDemo(cmd)
	},
}

var (
	initRootOnce sync.Once
	cfgFile      string
	debug        bool

	// service is built from configuration before any command runs
	service utils.Operations
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// cobra has already printed the error
	if err := RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// RootCommand returns the fully registered command tree
func RootCommand() *cobra.Command {
	InitConfig()

	InitDivideCommand()
	InitUpperCommand()
	InitValidCommand()
	InitVersionCommand()
	InitHelpCommands()

	return rootCmd
}

// InitConfig initializes the configuration
func InitConfig() {
	initRootOnce.Do(func() {
		rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./utildemo.yaml)")
		rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
		cobra.OnInitialize(initConfigFile)
	})
}

func initConfigFile() {
	viper.Reset()
	config.BindEnv(viper.GetViper())
	config.SetDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Search for config in current directory
		viper.SetConfigName(config.ConfigName)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		// Only report errors that are not "file not found" errors
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Warning: Could not read config file: %s\n", err)
		}
	}
}

// setup applies configuration to the logger and builds the operations service
func setup(cmd *cobra.Command, _ []string) error {
	// Arguments are valid by now; remaining failures are runtime faults
	cmd.SilenceUsage = true

	cfg, err := config.FromViper(viper.GetViper())
	if err != nil {
		return err
	}

	if err := logger.SetLevelName(cfg.Log.Level); err != nil {
		return err
	}
	if debug {
		logger.SetDebug(true)
	}

	service = utils.NewService(cfg.ToServiceConfig())
	logger.Debug("configuration loaded", "config", viper.ConfigFileUsed(), "concat_mode", cfg.Strings.ConcatMode)
	return nil
}

// runDemo calls each operation with fixed sample inputs and prints one result per line
func runDemo(cmd *cobra.Command) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	quotient, err := service.Divide(ctx, 10, 2)
	if err != nil {
		return fmt.Errorf("divide: %w", err)
	}
	fmt.Fprintln(out, quotient)

	input := "hello"
	processed, err := service.ProcessString(ctx, &input)
	if err != nil {
		return fmt.Errorf("process string: %w", err)
	}
	fmt.Fprintln(out, processed)

	value := "test"
	fmt.Fprintln(out, service.IsValid(ctx, &value))

	return nil
}

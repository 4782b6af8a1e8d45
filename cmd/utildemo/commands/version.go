package commands

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/spf13/cobra"
)

// Version information
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Display version information about utildemo including the version
number, build time, Git commit hash, and Go runtime version.`,
	Example: `  # Show version information
  utildemo version

  # Print just the version number
  utildemo version --short`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		short, err := cmd.Flags().GetBool("short")
		if err != nil {
			return fmt.Errorf("failed to get short flag: %w", err)
		}

		out := cmd.OutOrStdout()
		if short {
			fmt.Fprintln(out, Version)
			return nil
		}
		fmt.Fprintln(out, "utildemo - utility operations demo")
		fmt.Fprintf(out, "Version:    %s\n", Version)
		fmt.Fprintf(out, "Build Time: %s\n", BuildTime)
		fmt.Fprintf(out, "Git Commit: %s\n", GitCommit)
		fmt.Fprintf(out, "Go Version: %s\n", runtime.Version())
		fmt.Fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
		return nil
	},
}

var initVersionOnce sync.Once

// InitVersionCommand registers the version command
func InitVersionCommand() {
	initVersionOnce.Do(func() {
		versionCmd.Flags().Bool("short", false, "Print just the version number")
		rootCmd.AddCommand(versionCmd)
	})
}

package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `
 ___  ___ __ _ _ ____      ___ __ __ _ _ __
/ __|/ __/ _` + "`" + ` | '_ \ \ /\ / / '__/ _` + "`" + ` | '_ \
\__ \ (_| (_| | | | \ V  V /| | | (_| | |_) |
|___/\___\__,_|_| |_|\_/\_/ |_|  \__,_| .__/
                                      |_|    `

var rootCmd = &cobra.Command{
	Use:   "scanwrap",
	Short: "Document scanner front-end for NAPS2",
	Long: asciiLogo + `

scanwrap drives the NAPS2 console scanner: it probes the tool, discovers
connected devices, runs the scan with your settings, and reports the files
it produced.

Scan settings come from scanwrap.yaml defaults and profiles, .env-style
setting files, and CLI flags, with flags winning.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or settings
  11 - NAPS2 console tool not available
  12 - No scanner device found
  13 - Scan failed (non-zero exit and no output files)
  14 - Scan interrupted by user`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for scanwrap")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

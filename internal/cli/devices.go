package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rkotas/scanwrap/internal/logging"
	"github.com/rkotas/scanwrap/internal/naps2"
	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List connected scanner devices",
	Long: `Devices asks the NAPS2 console tool for the scanner devices the given
driver can see and prints one device name per line.

Examples:
  # List WIA devices (default driver)
  scanwrap devices

  # List TWAIN devices
  scanwrap devices --driver twain`,
	Args: cobra.NoArgs,
	RunE: runDevices,
}

var devicesDriver string

func init() {
	rootCmd.AddCommand(devicesCmd)

	devicesCmd.Flags().StringVar(&devicesDriver, "driver", "wia",
		"Scanner driver: wia|twain")
	mustRegisterCompletions(devicesCmd, map[string]cobra.CompletionFunc{
		"driver": completeDrivers,
	})
}

func runDevices(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	driver, err := scanwrap.ParseDriver(devicesDriver)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	tool := naps2.NewClient(naps2.NewExecRunner(), logger)

	if err := tool.CheckAvailable(cmd.Context()); err != nil {
		return err
	}

	devices, err := tool.ListDevices(cmd.Context(), driver)
	if err != nil {
		return err
	}
	if len(devices) == 0 {
		return fmt.Errorf("no %s devices found: %w", driver, scanwrap.ErrNoDeviceFound)
	}

	for _, device := range devices {
		fmt.Fprintln(cmd.OutOrStdout(), device)
	}
	return nil
}

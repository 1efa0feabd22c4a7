package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/rkotas/scanwrap/internal/config"
	"github.com/rkotas/scanwrap/internal/files/filesystem"
	"github.com/rkotas/scanwrap/internal/logging"
	"github.com/rkotas/scanwrap/internal/naps2"
	"github.com/rkotas/scanwrap/internal/scan"
	"github.com/rkotas/scanwrap/internal/settings"
	"github.com/rkotas/scanwrap/internal/tui"
	"github.com/rkotas/scanwrap/internal/ui"
	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Run a scan and save the pages",
	Long: `Scan runs the NAPS2 console tool with the given settings and saves the
scanned pages into the output folder.

The scan command:
1. Checks that ` + scanwrap.ToolExecutable + ` is on PATH
2. Discovers connected devices (unless --device is given)
3. Creates the output folder if needed
4. Runs the scan, echoing the tool's output
5. Reports the files produced

Settings are layered. Later layers override earlier ones:
  built-in defaults < scanwrap.yaml defaults < --profile
  < --set-file (later files win) < --set < explicit flags

Examples:
  # Scan from the document feeder with defaults
  scanwrap scan

  # 600 dpi grayscale from the flatbed glass into ./receipts
  scanwrap scan -o receipts -d 600 -c gray -s glass

  # Single PDF instead of numbered pages
  scanwrap scan -f pdf -p invoice

  # Use the "receipts" profile from scanwrap.yaml, override one setting
  scanwrap scan --profile receipts --set dpi=400

  # Scripted run: no device picker, no exit prompt
  scanwrap scan --no-input --device "Canon LiDE 400"`,
	Args: cobra.NoArgs,
	RunE: runScan,
}

type scanFlagValues struct {
	output, prefix        string
	format, color, source string
	device, driver        string
	dpi                   int
	profile               string
	set, setFiles         []string
	noInput               bool
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVarP(&scanFlags.output, "output", "o", scanwrap.DefaultOutputDir,
		"Folder to save scanned pages into (created if missing)")
	scanCmd.Flags().StringVarP(&scanFlags.prefix, "prefix", "p", scanwrap.DefaultPrefix,
		"File name prefix for the scanned pages")
	scanCmd.Flags().StringVarP(&scanFlags.format, "format", "f", "png",
		"Output format: png|jpg|jpeg|tiff|bmp|pdf\n"+
			"pdf produces a single file; other formats one file per page")
	scanCmd.Flags().IntVarP(&scanFlags.dpi, "dpi", "d", scanwrap.DefaultDPI,
		"Scan resolution in dots per inch")
	scanCmd.Flags().StringVarP(&scanFlags.color, "color", "c", "color",
		"Color mode: color|gray|bw")
	scanCmd.Flags().StringVarP(&scanFlags.source, "source", "s", "feeder",
		"Paper source: feeder (ADF) or glass (flatbed)")
	scanCmd.Flags().StringVar(&scanFlags.device, "device", "",
		"Scanner device name (skips device discovery)")
	scanCmd.Flags().StringVar(&scanFlags.driver, "driver", "wia",
		"Scanner driver: wia|twain")
	scanCmd.Flags().StringVar(&scanFlags.profile, "profile", "",
		"Named settings profile from scanwrap.yaml")
	scanCmd.Flags().StringSliceVar(&scanFlags.set, "set", nil,
		"Scan settings as key=value pairs (can be specified multiple times)\n"+
			"Keys: output, prefix, format, dpi, color, source, device, driver\n"+
			"Example: --set dpi=600 --set color=gray")
	scanCmd.Flags().StringSliceVar(&scanFlags.setFiles, "set-file", nil,
		"Load scan settings from .env files (can be specified multiple times)\n"+
			"Later files override earlier ones, CLI --set overrides all")
	scanCmd.Flags().BoolVar(&scanFlags.noInput, "no-input", false,
		"Never prompt: pick the first device and exit without waiting for Enter\n"+
			"Use for scripts and CI/CD pipelines")

	mustRegisterCompletions(scanCmd, map[string]cobra.CompletionFunc{
		"output":  completeDirectories,
		"format":  completeFormats,
		"color":   completeColorModes,
		"source":  completeSources,
		"driver":  completeDrivers,
		"profile": completeProfiles,
	})
}

// mustRegisterCompletions wires flag completion functions. Registration only
// fails for a misspelled flag name, which is a programming error.
func mustRegisterCompletions(cmd *cobra.Command, funcs map[string]cobra.CompletionFunc) {
	for name, fn := range funcs {
		if err := cmd.RegisterFlagCompletionFunc(name, fn); err != nil {
			panic(err)
		}
	}
}

// buildScanRequest layers the configuration sources into a validated
// ScanRequest. configDir is where scanwrap.yaml is looked up.
func buildScanRequest(cmd *cobra.Command, configDir string, verbose bool) (scanwrap.ScanRequest, error) {
	req := scanwrap.ScanRequest{
		OutputDir: scanwrap.DefaultOutputDir,
		Prefix:    scanwrap.DefaultPrefix,
		Format:    scanwrap.FormatPNG,
		DPI:       scanwrap.DefaultDPI,
		Color:     scanwrap.ColorModeColor,
		Source:    scanwrap.SourceFeeder,
		Driver:    scanwrap.DriverWIA,
		Verbose:   verbose,
	}

	projectCfg, err := config.Load(configDir)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return scanwrap.ScanRequest{}, fmt.Errorf("failed to load %s: %w: %w",
			config.ConfigFileName, err, scanwrap.ErrInvalidConfig)
	}

	var layers []map[string]string
	if projectCfg != nil {
		layers = append(layers, projectCfg.Defaults)
	}

	if scanFlags.profile != "" {
		if projectCfg == nil {
			return scanwrap.ScanRequest{}, fmt.Errorf("profile %q requested but no %s found: %w",
				scanFlags.profile, config.ConfigFileName, scanwrap.ErrInvalidConfig)
		}
		profile, err := projectCfg.Profile(scanFlags.profile)
		if err != nil {
			return scanwrap.ScanRequest{}, err
		}
		layers = append(layers, profile)
	}

	for _, setFile := range scanFlags.setFiles {
		fileSettings, err := settings.ParseSettingsFile(setFile)
		if err != nil {
			return scanwrap.ScanRequest{}, fmt.Errorf("%w: %w", err, scanwrap.ErrInvalidConfig)
		}
		layers = append(layers, fileSettings)
	}

	cliSettings, err := settings.ParseKeyValuePairs(scanFlags.set)
	if err != nil {
		return scanwrap.ScanRequest{}, err
	}
	layers = append(layers, cliSettings)

	// Explicit flags win over every other layer.
	layers = append(layers, changedFlagSettings(cmd))

	if err := settings.Apply(settings.Merge(layers...), &req); err != nil {
		return scanwrap.ScanRequest{}, err
	}

	if err := req.Validate(); err != nil {
		return scanwrap.ScanRequest{}, err
	}
	return req, nil
}

// changedFlagSettings collects the scan flags the user set explicitly, keyed
// by the shared settings vocabulary.
func changedFlagSettings(cmd *cobra.Command) map[string]string {
	values := make(map[string]string)
	if cmd.Flags().Changed("output") {
		values["output"] = scanFlags.output
	}
	if cmd.Flags().Changed("prefix") {
		values["prefix"] = scanFlags.prefix
	}
	if cmd.Flags().Changed("format") {
		values["format"] = scanFlags.format
	}
	if cmd.Flags().Changed("dpi") {
		values["dpi"] = strconv.Itoa(scanFlags.dpi)
	}
	if cmd.Flags().Changed("color") {
		values["color"] = scanFlags.color
	}
	if cmd.Flags().Changed("source") {
		values["source"] = scanFlags.source
	}
	if cmd.Flags().Changed("device") {
		values["device"] = scanFlags.device
	}
	if cmd.Flags().Changed("driver") {
		values["driver"] = scanFlags.driver
	}
	return values
}

func runScan(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)
	_ = godotenv.Load()

	req, err := buildScanRequest(cmd, ".", verbose)
	if err != nil {
		return err
	}

	interactive := tui.IsInteractive() && !scanFlags.noInput

	// Create dependencies
	logger := logging.NewConsoleLogger(verbose)
	tool := naps2.NewClient(naps2.NewExecRunner(), logger)
	fsProvider := filesystem.NewOSFileSystem()

	selector, prompter := chooseInteraction(interactive, req.Driver, logger)

	orchestrator := scan.NewOrchestrator(tool, fsProvider, logger, selector)

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown.
	// Cancelling the context kills the child process.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling scan...")
			cancel()
		case <-ctx.Done():
		}
	}()

	summary, err := orchestrator.Run(ctx, req)
	if err != nil {
		return err
	}

	summary.Render(os.Stdout)

	return promptExit(ctx, prompter)
}

// chooseInteraction returns the device selector and exit prompter matching
// the session mode: terminal picker and press-Enter prompt for interactive
// runs, first-device and no prompt for scripts.
func chooseInteraction(interactive bool, driver scanwrap.Driver, logger scanwrap.Logger) (scanwrap.DeviceSelector, scanwrap.ExitPrompter) {
	if interactive {
		return ui.NewInteractiveDeviceSelector(driver, logger), ui.NewInteractivePrompter()
	}
	return ui.NewFirstDeviceSelector(logger), ui.NewSilentPrompter()
}

// promptExit waits for the user to acknowledge the summary. Cancellation
// surfaces as an interrupt; any other prompt failure is an ordinary error.
func promptExit(ctx context.Context, prompter scanwrap.ExitPrompter) error {
	if err := prompter.Wait(ctx); err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: %w", err, scanwrap.ErrInterrupted)
		}
		return fmt.Errorf("exit prompt failed: %w", err)
	}
	return nil
}

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/rkotas/scanwrap/internal/config"
)

// Valid values for the enum-valued scan flags, offered via shell completion.
var (
	formatNames    = []string{"png", "jpg", "jpeg", "tiff", "bmp", "pdf"}
	colorModeNames = []string{"color", "gray", "bw"}
	sourceNames    = []string{"feeder", "glass"}
	driverNames    = []string{"wia", "twain"}
)

func completeFromList(values []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, v := range values {
		if strings.HasPrefix(v, toComplete) {
			matches = append(matches, v)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

// completeFormats provides shell completion for the --format flag.
func completeFormats(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(formatNames, toComplete)
}

// completeColorModes provides shell completion for the --color flag.
func completeColorModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(colorModeNames, toComplete)
}

// completeSources provides shell completion for the --source flag.
func completeSources(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(sourceNames, toComplete)
}

// completeDrivers provides shell completion for the --driver flag.
func completeDrivers(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return completeFromList(driverNames, toComplete)
}

// completeProfiles provides shell completion for the --profile flag from
// the profiles defined in scanwrap.yaml.
func completeProfiles(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	cfg, err := config.Load(".")
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return completeFromList(cfg.ProfileNames(), toComplete)
}

// completeDirectories provides shell completion for directory paths.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	// Let the shell handle directory completion
	return nil, cobra.ShellCompDirectiveFilterDirs
}

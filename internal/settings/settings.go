// Package settings turns key=value scan settings into a ScanRequest.
//
// Settings arrive from several layers (scanwrap.yaml defaults, a selected
// profile, --set-file files, repeated --set flags) that all share one
// vocabulary of keys: output, prefix, format, dpi, color, source, device,
// driver. Merge folds the layers together with later layers winning, and
// Apply writes the merged values onto a request.
package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/rkotas/scanwrap/pkg/scanwrap"
)

// ParseKeyValuePairs converts a slice of "key=value" strings into a map.
//
// Example:
//
//	values, err := ParseKeyValuePairs([]string{"dpi=600", "color=gray"})
//	// Returns: map[string]string{"dpi": "600", "color": "gray"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("setting %q is not in key=value format (example: --set dpi=600): %w",
				pair, scanwrap.ErrInvalidConfig)
		}
		if key == "" {
			return nil, fmt.Errorf("setting has empty key: %q: %w", pair, scanwrap.ErrInvalidConfig)
		}
		result[key] = value
	}

	return result, nil
}

// ParseSettingsFile reads a .env-format settings file. Comments, blank
// lines, and quoted values follow the usual dotenv rules.
func ParseSettingsFile(path string) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("settings file %s: %w", path, err)
	}
	return values, nil
}

// Merge folds the given layers into one map, later layers overriding
// earlier ones. Nil layers are skipped.
func Merge(layers ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, layer := range layers {
		for key, value := range layer {
			result[key] = value
		}
	}
	return result
}

// Apply writes the given settings onto req. Unknown keys and unparsable
// values are configuration errors.
func Apply(values map[string]string, req *scanwrap.ScanRequest) error {
	for key, value := range values {
		if err := applyOne(key, value, req); err != nil {
			return err
		}
	}
	return nil
}

func applyOne(key, value string, req *scanwrap.ScanRequest) error {
	switch key {
	case "output":
		req.OutputDir = value
	case "prefix":
		req.Prefix = value
	case "format":
		format, err := scanwrap.ParseFormat(value)
		if err != nil {
			return err
		}
		req.Format = format
	case "dpi":
		dpi, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid dpi %q: %w", value, scanwrap.ErrInvalidConfig)
		}
		req.DPI = dpi
	case "color":
		color, err := scanwrap.ParseColorMode(value)
		if err != nil {
			return err
		}
		req.Color = color
	case "source":
		source, err := scanwrap.ParseSource(value)
		if err != nil {
			return err
		}
		req.Source = source
	case "device":
		req.Device = value
	case "driver":
		driver, err := scanwrap.ParseDriver(value)
		if err != nil {
			return err
		}
		req.Driver = driver
	default:
		return fmt.Errorf("unknown setting %q (known: output, prefix, format, dpi, color, source, device, driver): %w",
			key, scanwrap.ErrInvalidConfig)
	}
	return nil
}

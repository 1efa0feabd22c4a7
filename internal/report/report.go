// Package report enumerates and presents the files a scan produced.
package report

import (
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/rkotas/scanwrap/internal/files/filesystem"
)

// File is one produced scan file.
type File struct {
	Name      string
	SizeBytes int64
}

// SizeKiB returns the file size in whole kibibytes.
func (f File) SizeKiB() int64 {
	return f.SizeBytes / 1024
}

// Summary lists the files a scan run produced, sorted by name.
type Summary struct {
	OutputDir string
	Files     []File
}

// Count returns the number of produced files.
func (s *Summary) Count() int {
	return len(s.Files)
}

// Collect enumerates the files in dir matching pattern, sorted by name.
// A missing or empty output folder yields an empty summary, not an error.
func Collect(fsProvider filesystem.FileSystemProvider, dir, pattern string) (*Summary, error) {
	names, err := fsProvider.Glob(dir, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate produced files: %w", err)
	}
	sort.Strings(names)

	files := make([]File, 0, len(names))
	for _, name := range names {
		info, err := fsProvider.Stat(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("failed to stat produced file %s: %w", name, err)
		}
		files = append(files, File{Name: name, SizeBytes: info.Size()})
	}

	return &Summary{OutputDir: dir, Files: files}, nil
}

// Render writes a human-readable table of the produced files.
func (s *Summary) Render(w io.Writer) {
	fmt.Fprintf(w, "\nFiles created (%d):\n", s.Count())

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"File", "Size (KiB)"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, file := range s.Files {
		table.Append([]string{file.Name, strconv.FormatInt(file.SizeKiB(), 10)})
	}
	table.Render()

	if s.Count() > 0 {
		if abs, err := filepath.Abs(s.OutputDir); err == nil {
			fmt.Fprintf(w, "\nAll files saved to: %s\n", abs)
		}
	}
}

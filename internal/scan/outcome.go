package scan

// Succeeded decides whether a scan run succeeded from its two completion
// signals: the tool's exit code and the number of produced files found in
// the output folder.
//
// Either signal alone is sufficient. Filesystem evidence overrides a
// non-zero exit code because the external tool is known to report failure
// on partial success; a zero exit code is trusted even when no files were
// found, absent contrary evidence.
func Succeeded(exitCode, fileCount int) bool {
	return exitCode == 0 || fileCount > 0
}

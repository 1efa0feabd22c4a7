// Package files groups filesystem-facing subpackages used to create the
// output folder and verify produced scan files.
package files

package excel

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Helper functions for spreadsheet file error checking

// hasOwnerFile reports whether the owner file Excel writes next to an open
// workbook is present. Short names get "~$name"; longer ones have their
// first two characters replaced, so "Koerplan.xlsx" gets "~$erplan.xlsx".
func hasOwnerFile(path string) bool {
	dir, name := filepath.Dir(path), filepath.Base(path)

	for _, owner := range ownerFileNames(name) {
		if _, err := os.Stat(filepath.Join(dir, owner)); err == nil {
			return true
		}
	}

	return false
}

func ownerFileNames(name string) []string {
	names := []string{"~$" + name}
	if runes := []rune(name); len(runes) > 2 {
		names = append(names, "~$"+string(runes[2:]))
	}

	return names
}

func isFileLocked(err error) bool {
	if errors.Is(err, fs.ErrPermission) {
		return true
	}

	// A workbook that is being written by another process reads as a truncated archive
	if errors.Is(err, zip.ErrFormat) || errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "used by another process") || // Windows sharing violation
		strings.Contains(errMsg, "resource busy")
}

// Package output renders the folder structure and file content sections of a dump.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

const (
	// noColorEnvironmentVariable disables colour when set to any value.
	noColorEnvironmentVariable = "NO_COLOR"

	structureSectionHeader = "Folder Structure:"
	contentsSectionHeader  = "File Contents:"
	directorySuffix        = "/"
	indentUnit             = "    "
	fileHeaderFormat       = "--- File: %s ---"
	titleLineFormat        = "Title: %s"
	contentLabel           = "Content:"
	blankLines             = "\n\n"
)

// ColorEnabled reports whether colour escapes should be written to writer.
// Colour is only used for terminals and never when disabled explicitly or through NO_COLOR.
func ColorEnabled(writer io.Writer, disabled bool) bool {
	if disabled {
		return false
	}
	if _, set := os.LookupEnv(noColorEnvironmentVariable); set {
		return false
	}
	fileHandle, isFile := writer.(*os.File)
	if !isFile {
		return false
	}
	descriptor := fileHandle.Fd()
	return isatty.IsTerminal(descriptor) || isatty.IsCygwinTerminal(descriptor)
}

// Indentation returns the leading whitespace for an entry at depth.
func Indentation(depth int) string {
	if depth <= 0 {
		return ""
	}
	return strings.Repeat(indentUnit, depth)
}

package dumper

import (
	"strings"
)

const extensionSeparator = "."

// FileExtension returns the lowercased suffix of fileName starting at its last dot.
// Leading dots do not start an extension, so ".bashrc" and "..." have none.
func FileExtension(fileName string) string {
	stem := strings.TrimLeft(fileName, extensionSeparator)
	separatorIndex := strings.LastIndex(stem, extensionSeparator)
	if separatorIndex < 0 {
		return ""
	}
	return strings.ToLower(stem[separatorIndex:])
}

// FileTitle returns the text before the first dot of fileName.
func FileTitle(fileName string) string {
	title, _, _ := strings.Cut(fileName, extensionSeparator)
	return title
}

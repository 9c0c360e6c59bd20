// Package config loads the exclusion rules and application defaults used by a dump.
package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/temirov/dirdump/internal/utils"
)

const (
	// DefaultExtensionListFileName is the conventional name of the extension exclusion list.
	DefaultExtensionListFileName = "no-print.txt"

	commentPrefix = "#"

	warningExtensionListMissingFormat = "Warning: '%s' not found. No extensions will be excluded."
	warningCloseFormat                = "Warning: failed to close %s: %v"
	errorOpenExtensionListFormat      = "opening extension list %s: %w"
	errorScanExtensionListFormat      = "reading extension list %s: %w"
)

// DefaultExcludedFolders returns the folder names skipped when none are configured.
// A fresh slice is returned on every call.
func DefaultExcludedFolders() []string {
	return []string{"node_modules", ".next", ".cache", "out"}
}

// ExclusionConfig holds the folder names skipped at every depth and the
// extensions whose content is not printed. It is immutable once built.
type ExclusionConfig struct {
	folderNames map[string]struct{}
	extensions  map[string]struct{}
}

// NewExclusionConfig builds an ExclusionConfig. Folder names are matched exactly;
// extensions are lowercased and keep whatever leading dot they were given.
func NewExclusionConfig(folderNames []string, extensions []string) ExclusionConfig {
	normalizedExtensions := make([]string, 0, len(extensions))
	for _, extension := range extensions {
		normalizedExtensions = append(normalizedExtensions, strings.ToLower(extension))
	}
	return ExclusionConfig{
		folderNames: utils.ToSet(utils.DeduplicateNames(folderNames)),
		extensions:  utils.ToSet(utils.DeduplicateNames(normalizedExtensions)),
	}
}

// ExcludesFolder reports whether a directory with the given base name is skipped.
func (exclusions ExclusionConfig) ExcludesFolder(folderName string) bool {
	_, excluded := exclusions.folderNames[folderName]
	return excluded
}

// ExcludesExtension reports whether files with the given lowercased extension have their content omitted.
func (exclusions ExclusionConfig) ExcludesExtension(extension string) bool {
	if extension == "" {
		return false
	}
	_, excluded := exclusions.extensions[extension]
	return excluded
}

// LoadExtensionExclusions reads a newline separated list of extensions.
// Each line is trimmed and lowercased; blank lines and lines starting with '#' are skipped.
// A missing file is reported through logger and yields an empty list.
//
// #nosec G304
func LoadExtensionExclusions(listFilePath string, logger *zap.Logger) ([]string, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fileHandle, openFileError := os.Open(listFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			logger.Warn(fmt.Sprintf(warningExtensionListMissingFormat, listFilePath))
			return nil, nil
		}
		return nil, fmt.Errorf(errorOpenExtensionListFormat, listFilePath, openFileError)
	}
	defer func() {
		if closeError := fileHandle.Close(); closeError != nil {
			logger.Warn(fmt.Sprintf(warningCloseFormat, listFilePath, closeError))
		}
	}()

	var extensions []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == "" || strings.HasPrefix(trimmedLine, commentPrefix) {
			continue
		}
		extensions = append(extensions, strings.ToLower(trimmedLine))
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, fmt.Errorf(errorScanExtensionListFormat, listFilePath, scanError)
	}
	return extensions, nil
}

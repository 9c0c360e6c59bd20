package dumper

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/temirov/dirdump/internal/config"
)

const (
	// scratchBufferSize is the buffer handed to the directory reader.
	scratchBufferSize = 64 * 1024

	warningSkipDirectoryFormat = "Warning: skipping directory %s: %v"
	warningSymlinkFormat       = "Warning: unable to resolve symlink %s: %v"
)

// directoryListing is the filtered content of one directory.
type directoryListing struct {
	fileNames      []string
	directoryNames []string
}

// directoryVisitor receives each retained directory with its structural depth below the root.
type directoryVisitor func(directoryPath string, directoryName string, depth int, fileNames []string)

// walk visits rootPath and every retained descendant directory top-down, depth first.
// A directory is fully visited before any of its subdirectories.
func (dumper *Dumper) walk(rootPath string, exclusions config.ExclusionConfig, visit directoryVisitor) {
	dumper.walkDirectory(rootPath, rootDisplayName(rootPath), 0, exclusions, visit)
}

func (dumper *Dumper) walkDirectory(directoryPath string, directoryName string, depth int, exclusions config.ExclusionConfig, visit directoryVisitor) {
	listing, listError := dumper.listDirectory(directoryPath, exclusions)
	if listError != nil {
		dumper.logger.Warn(fmt.Sprintf(warningSkipDirectoryFormat, directoryPath, listError))
		return
	}
	visit(directoryPath, directoryName, depth, listing.fileNames)
	for _, subdirectoryName := range listing.directoryNames {
		dumper.walkDirectory(filepath.Join(directoryPath, subdirectoryName), subdirectoryName, depth+1, exclusions, visit)
	}
}

// listDirectory reads the immediate entries of directoryPath in enumeration order,
// or by name when sorting is enabled. Excluded folders are dropped. Symlinks to
// directories are neither listed nor followed; other symlinks are listed as files.
func (dumper *Dumper) listDirectory(directoryPath string, exclusions config.ExclusionConfig) (directoryListing, error) {
	directoryEntries, readError := dumper.readDirectory(directoryPath, dumper.scratchBuffer)
	if readError != nil {
		return directoryListing{}, readError
	}
	if dumper.sortEntries {
		sort.Sort(directoryEntries)
	}

	var listing directoryListing
	for _, directoryEntry := range directoryEntries {
		entryName := directoryEntry.Name()
		switch {
		case directoryEntry.IsDir():
			if exclusions.ExcludesFolder(entryName) {
				continue
			}
			listing.directoryNames = append(listing.directoryNames, entryName)
		case directoryEntry.IsSymlink():
			pointsToDirectory, resolveError := directoryEntry.IsDirOrSymlinkToDir()
			if resolveError != nil {
				dumper.logger.Debug(fmt.Sprintf(warningSymlinkFormat, filepath.Join(directoryPath, entryName), resolveError))
			}
			if pointsToDirectory {
				continue
			}
			listing.fileNames = append(listing.fileNames, entryName)
		default:
			listing.fileNames = append(listing.fileNames, entryName)
		}
	}
	return listing, nil
}

// rootDisplayName is the name printed for the root directory line.
// The filesystem root prints as an empty name so that its line is a lone separator.
func rootDisplayName(rootPath string) string {
	cleanedPath := filepath.Clean(rootPath)
	baseName := filepath.Base(cleanedPath)
	if baseName == string(filepath.Separator) {
		return ""
	}
	return baseName
}

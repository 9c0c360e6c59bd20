// Package dumper prints the folder structure of a directory tree and the
// contents of its files, honouring folder and extension exclusions.
package dumper

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/karrick/godirwalk"
	"go.uber.org/zap"

	"github.com/temirov/dirdump/internal/config"
	"github.com/temirov/dirdump/internal/output"
	"github.com/temirov/dirdump/internal/tokenizer"
	"github.com/temirov/dirdump/internal/utils"
)

const (
	warningDecodeFormat  = "Warning: Could not decode '%s' as UTF-8. Skipping content display."
	errorProcessFormat   = "Error processing '%s': %v"
	summaryMessageFormat = "Summary: %d directories, %d files listed, %d dumped (%s), %d skipped by extension, %d not decodable, %d unreadable"
	summaryTokensFormat  = ", %d tokens (%s)"
	warningTokensFormat  = "Warning: failed to count tokens for %s: %v"

	errorRootStatFormat    = "inspecting root directory %s: %w"
	errorRootMissingFormat = "root directory %s does not exist: %w"
	errorRootFileFormat    = "root %s: %w"
	errorWriteFormat       = "writing dump output: %w"
)

// ErrRootNotDirectory is returned when the dump root exists but is not a directory.
var ErrRootNotDirectory = errors.New("not a directory")

// Options configures a Dumper.
type Options struct {
	// Writer receives the dump text. It defaults to os.Stdout.
	Writer io.Writer
	// Logger receives warnings and errors for individual entries. It defaults to a no-op logger.
	Logger *zap.Logger
	// SortEntries orders directory entries by name instead of filesystem enumeration order.
	SortEntries bool
	// ColorEnabled turns on terminal colour for headers and names.
	ColorEnabled bool
	// IncludeSummary logs a summary line after the content section.
	IncludeSummary bool
	// TokenCounter, when set, counts the tokens of every dumped file for the summary.
	TokenCounter tokenizer.Counter
	// DirectoryReader lists the entries of one directory. It defaults to godirwalk.ReadDirents.
	DirectoryReader DirectoryReader
}

// DirectoryReader reads the immediate entries of directoryPath using scratchBuffer.
type DirectoryReader func(directoryPath string, scratchBuffer []byte) (godirwalk.Dirents, error)

// Summary counts what a dump visited.
type Summary struct {
	Directories        int
	FilesListed        int
	FilesDumped        int
	BytesDumped        int64
	SkippedByExtension int
	DecodeFailures     int
	ReadFailures       int
	Tokens             int
}

// Dumper prints directory trees. A Dumper is not safe for concurrent use.
type Dumper struct {
	printer        *output.RawPrinter
	logger         *zap.Logger
	sortEntries    bool
	includeSummary bool
	tokenCounter   tokenizer.Counter
	readDirectory  DirectoryReader
	scratchBuffer  []byte
	summary        Summary
}

// New constructs a Dumper from options.
func New(options Options) *Dumper {
	writer := options.Writer
	if writer == nil {
		writer = os.Stdout
	}
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	readDirectory := options.DirectoryReader
	if readDirectory == nil {
		readDirectory = godirwalk.ReadDirents
	}
	return &Dumper{
		printer:        output.NewRawPrinter(writer, options.ColorEnabled),
		logger:         logger,
		sortEntries:    options.SortEntries,
		includeSummary: options.IncludeSummary,
		tokenCounter:   options.TokenCounter,
		readDirectory:  readDirectory,
		scratchBuffer:  make([]byte, scratchBufferSize),
	}
}

// Summary returns the counters of the most recent Dump.
func (dumper *Dumper) Summary() Summary {
	return dumper.summary
}

// Dump prints the folder structure of rootDirectory and then the contents of its files.
// Problems with individual entries are reported and skipped; only an unusable root
// or a failing output writer produce an error.
func (dumper *Dumper) Dump(rootDirectory string, exclusions config.ExclusionConfig) error {
	dumper.summary = Summary{}
	if rootError := validateRoot(rootDirectory); rootError != nil {
		return rootError
	}
	dumper.PrintStructure(rootDirectory, exclusions)
	dumper.PrintContents(rootDirectory, exclusions)
	if writeError := dumper.printer.Err(); writeError != nil {
		return fmt.Errorf(errorWriteFormat, writeError)
	}
	if dumper.includeSummary {
		dumper.logger.Info(dumper.summaryLine())
	}
	return nil
}

func (dumper *Dumper) summaryLine() string {
	line := fmt.Sprintf(summaryMessageFormat,
		dumper.summary.Directories,
		dumper.summary.FilesListed,
		dumper.summary.FilesDumped,
		utils.FormatFileSize(dumper.summary.BytesDumped),
		dumper.summary.SkippedByExtension,
		dumper.summary.DecodeFailures,
		dumper.summary.ReadFailures,
	)
	if dumper.tokenCounter != nil {
		line += fmt.Sprintf(summaryTokensFormat, dumper.summary.Tokens, dumper.tokenCounter.Name())
	}
	return line
}

// PrintStructure prints the indented listing of retained directories and their files.
func (dumper *Dumper) PrintStructure(rootDirectory string, exclusions config.ExclusionConfig) {
	dumper.printer.StructureHeader()
	dumper.walk(rootDirectory, exclusions, func(directoryPath string, directoryName string, depth int, fileNames []string) {
		dumper.summary.Directories++
		dumper.printer.Directory(directoryName, depth)
		for _, fileName := range fileNames {
			dumper.summary.FilesListed++
			dumper.printer.File(fileName, depth)
		}
	})
}

// PrintContents re-walks the tree and prints a block for every file whose extension is not excluded.
func (dumper *Dumper) PrintContents(rootDirectory string, exclusions config.ExclusionConfig) {
	dumper.printer.ContentsHeader()
	dumper.walk(rootDirectory, exclusions, func(directoryPath string, directoryName string, depth int, fileNames []string) {
		for _, fileName := range fileNames {
			dumper.dumpFile(directoryPath, fileName, exclusions)
		}
	})
}

// dumpFile prints one file block. The header is written before reading so that
// decode and read failures are reported under the file they belong to.
//
// #nosec G304
func (dumper *Dumper) dumpFile(directoryPath string, fileName string, exclusions config.ExclusionConfig) {
	if exclusions.ExcludesExtension(FileExtension(fileName)) {
		dumper.summary.SkippedByExtension++
		return
	}
	dumper.printer.FileHeader(fileName, FileTitle(fileName))

	fileBytes, readError := os.ReadFile(filepath.Join(directoryPath, fileName))
	if readError != nil {
		dumper.summary.ReadFailures++
		dumper.logger.Error(fmt.Sprintf(errorProcessFormat, fileName, readError))
		return
	}
	if !utils.IsValidUTF8(fileBytes) {
		dumper.summary.DecodeFailures++
		dumper.logger.Warn(fmt.Sprintf(warningDecodeFormat, fileName))
		return
	}
	dumper.summary.FilesDumped++
	dumper.summary.BytesDumped += int64(len(fileBytes))
	dumper.printer.FileContent(string(fileBytes))
	dumper.countTokens(fileName, fileBytes)
}

func (dumper *Dumper) countTokens(fileName string, fileBytes []byte) {
	if dumper.tokenCounter == nil {
		return
	}
	tokenCount, countError := tokenizer.CountBytes(dumper.tokenCounter, fileBytes)
	if countError != nil {
		dumper.logger.Warn(fmt.Sprintf(warningTokensFormat, fileName, countError))
		return
	}
	dumper.summary.Tokens += tokenCount
}

// validateRoot checks that rootDirectory exists and is a directory.
func validateRoot(rootDirectory string) error {
	rootInfo, statError := os.Stat(rootDirectory)
	if statError != nil {
		if os.IsNotExist(statError) {
			return fmt.Errorf(errorRootMissingFormat, rootDirectory, statError)
		}
		return fmt.Errorf(errorRootStatFormat, rootDirectory, statError)
	}
	if !rootInfo.IsDir() {
		return fmt.Errorf(errorRootFileFormat, rootDirectory, ErrRootNotDirectory)
	}
	return nil
}

package output

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// RawPrinter writes the plain text layout of a dump. Write failures are sticky:
// after the first failure every call is a no-op and Err reports it.
type RawPrinter struct {
	writer         io.Writer
	headerStyle    *color.Color
	directoryStyle *color.Color
	fileStyle      *color.Color
	writeError     error
}

// NewRawPrinter constructs a RawPrinter writing to writer.
func NewRawPrinter(writer io.Writer, colorEnabled bool) *RawPrinter {
	printer := &RawPrinter{
		writer:         writer,
		headerStyle:    color.New(color.Bold),
		directoryStyle: color.New(color.FgBlue, color.Bold),
		fileStyle:      color.New(color.FgYellow),
	}
	for _, style := range []*color.Color{printer.headerStyle, printer.directoryStyle, printer.fileStyle} {
		if colorEnabled {
			style.EnableColor()
		} else {
			style.DisableColor()
		}
	}
	return printer
}

// Err returns the first write error encountered.
func (printer *RawPrinter) Err() error {
	return printer.writeError
}

// StructureHeader starts the folder structure section.
func (printer *RawPrinter) StructureHeader() {
	printer.styledLine("", printer.headerStyle, structureSectionHeader)
}

// Directory prints a directory name at depth followed by a separator.
func (printer *RawPrinter) Directory(name string, depth int) {
	printer.styledLine(Indentation(depth), printer.directoryStyle, name+directorySuffix)
}

// File prints a file name one level below its directory at depth.
func (printer *RawPrinter) File(name string, depth int) {
	printer.plain(Indentation(depth+1) + name + "\n")
}

// ContentsHeader starts the file contents section.
func (printer *RawPrinter) ContentsHeader() {
	printer.plain(blankLines)
	printer.styledLine("", printer.headerStyle, contentsSectionHeader)
}

// FileHeader prints the block header, title and content label of a file.
func (printer *RawPrinter) FileHeader(name string, title string) {
	printer.plain(blankLines)
	printer.styledLine("", printer.fileStyle, fmt.Sprintf(fileHeaderFormat, name))
	printer.plain(fmt.Sprintf(titleLineFormat, title) + "\n")
	printer.plain(contentLabel + "\n")
}

// FileContent prints decoded file content verbatim followed by a newline.
func (printer *RawPrinter) FileContent(content string) {
	printer.plain(content + "\n")
}

func (printer *RawPrinter) styledLine(prefix string, style *color.Color, text string) {
	if printer.writeError != nil {
		return
	}
	printer.plain(prefix)
	if printer.writeError != nil {
		return
	}
	if _, err := style.Fprint(printer.writer, text); err != nil {
		printer.writeError = err
		return
	}
	printer.plain("\n")
}

func (printer *RawPrinter) plain(text string) {
	if printer.writeError != nil || text == "" {
		return
	}
	if _, err := io.WriteString(printer.writer, text); err != nil {
		printer.writeError = err
	}
}

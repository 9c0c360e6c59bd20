package output_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temirov/dirdump/internal/output"
)

func TestRawPrinterLayout(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	printer := output.NewRawPrinter(&buffer, false)
	printer.StructureHeader()
	printer.Directory("root", 0)
	printer.File("main.go", 0)
	printer.Directory("pkg", 1)
	printer.File("util.go", 1)
	printer.ContentsHeader()
	printer.FileHeader("main.go", "main")
	printer.FileContent("package main")

	expected := "Folder Structure:\n" +
		"root/\n" +
		"    main.go\n" +
		"    pkg/\n" +
		"        util.go\n" +
		"\n\nFile Contents:\n" +
		"\n\n--- File: main.go ---\n" +
		"Title: main\n" +
		"Content:\n" +
		"package main\n"
	require.NoError(t, printer.Err())
	assert.Equal(t, expected, buffer.String())
}

func TestRawPrinterColorWrapsWithoutChangingText(t *testing.T) {
	t.Parallel()

	var buffer bytes.Buffer
	printer := output.NewRawPrinter(&buffer, true)
	printer.Directory("src", 2)

	rendered := buffer.String()
	assert.Contains(t, rendered, "\x1b[")
	assert.Contains(t, rendered, "src/")
	assert.Equal(t, "        ", rendered[:8])
}

func TestIndentation(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		depth    int
		expected string
	}{
		{depth: -1, expected: ""},
		{depth: 0, expected: ""},
		{depth: 1, expected: "    "},
		{depth: 3, expected: "            "},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expected, output.Indentation(testCase.depth))
	}
}

type failingWriter struct {
	writes int
}

func (writer *failingWriter) Write(data []byte) (int, error) {
	writer.writes++
	return 0, errors.New("closed pipe")
}

func TestRawPrinterStickyWriteError(t *testing.T) {
	t.Parallel()

	writer := &failingWriter{}
	printer := output.NewRawPrinter(writer, false)
	printer.StructureHeader()
	printer.File("a.txt", 0)
	printer.FileContent("body")

	require.Error(t, printer.Err())
	assert.Equal(t, 1, writer.writes)
}

func TestColorEnabled(t *testing.T) {
	var buffer bytes.Buffer
	assert.False(t, output.ColorEnabled(&buffer, false))

	regularFile, createError := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, createError)
	defer regularFile.Close()
	assert.False(t, output.ColorEnabled(regularFile, false))
	assert.False(t, output.ColorEnabled(os.Stdout, true))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, output.ColorEnabled(os.Stdout, false))
}

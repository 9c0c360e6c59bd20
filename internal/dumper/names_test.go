package dumper_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/temirov/dirdump/internal/dumper"
)

func TestFileExtension(t *testing.T) {
	testCases := []struct {
		fileName string
		expected string
	}{
		{fileName: "main.go", expected: ".go"},
		{fileName: "README.MD", expected: ".md"},
		{fileName: "report.v2.txt", expected: ".txt"},
		{fileName: "archive.tar.GZ", expected: ".gz"},
		{fileName: "Makefile", expected: ""},
		{fileName: ".bashrc", expected: ""},
		{fileName: ".env.local", expected: ".local"},
		{fileName: "trailing.", expected: "."},
		{fileName: "...", expected: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.fileName, func(t *testing.T) {
			assert.Equal(t, testCase.expected, dumper.FileExtension(testCase.fileName))
		})
	}
}

func TestFileTitle(t *testing.T) {
	testCases := []struct {
		fileName string
		expected string
	}{
		{fileName: "report.v2.txt", expected: "report"},
		{fileName: "y.txt", expected: "y"},
		{fileName: "Makefile", expected: "Makefile"},
		{fileName: ".bashrc", expected: ""},
	}
	for _, testCase := range testCases {
		t.Run(testCase.fileName, func(t *testing.T) {
			assert.Equal(t, testCase.expected, dumper.FileTitle(testCase.fileName))
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoadExtensionExclusions(t *testing.T) {
	testCases := []struct {
		name     string
		content  string
		expected []string
	}{
		{
			name:     "trims_and_lowercases",
			content:  ".JSON\n  .Png  \n.md\n",
			expected: []string{".json", ".png", ".md"},
		},
		{
			name:     "skips_blank_and_comment_lines",
			content:  "# images\n.gif\n\n   \n.svg",
			expected: []string{".gif", ".svg"},
		},
		{
			name:     "leading_dot_not_enforced",
			content:  "txt\r\n.LOG\r\n",
			expected: []string{"txt", ".log"},
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			listPath := filepath.Join(t.TempDir(), DefaultExtensionListFileName)
			require.NoError(t, os.WriteFile(listPath, []byte(testCase.content), 0o600))

			extensions, loadError := LoadExtensionExclusions(listPath, zap.NewNop())
			require.NoError(t, loadError)
			assert.Equal(t, testCase.expected, extensions)
		})
	}
}

func TestLoadExtensionExclusionsMissingFileWarns(t *testing.T) {
	observedCore, observedLogs := observer.New(zap.WarnLevel)
	missingPath := filepath.Join(t.TempDir(), "absent.txt")

	extensions, loadError := LoadExtensionExclusions(missingPath, zap.New(observedCore))
	require.NoError(t, loadError)
	assert.Empty(t, extensions)

	entries := observedLogs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "Warning: '"+missingPath+"' not found. No extensions will be excluded.", entries[0].Message)
}

func TestLoadExtensionExclusionsDirectoryFails(t *testing.T) {
	_, loadError := LoadExtensionExclusions(t.TempDir(), nil)
	assert.Error(t, loadError)
}

func TestExclusionConfigMatching(t *testing.T) {
	exclusions := NewExclusionConfig(
		[]string{"node_modules", " out ", ""},
		[]string{".MD", ".json"},
	)

	assert.True(t, exclusions.ExcludesFolder("node_modules"))
	assert.True(t, exclusions.ExcludesFolder("out"))
	assert.False(t, exclusions.ExcludesFolder("Node_Modules"))
	assert.False(t, exclusions.ExcludesFolder(""))

	assert.True(t, exclusions.ExcludesExtension(".md"))
	assert.True(t, exclusions.ExcludesExtension(".json"))
	assert.False(t, exclusions.ExcludesExtension(".txt"))
	assert.False(t, exclusions.ExcludesExtension(""))
}

func TestDefaultExcludedFoldersReturnsFreshSlice(t *testing.T) {
	first := DefaultExcludedFolders()
	first[0] = "mutated"
	assert.Equal(t, []string{"node_modules", ".next", ".cache", "out"}, DefaultExcludedFolders())
}

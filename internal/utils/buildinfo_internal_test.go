package utils

import (
	"runtime/debug"
	"testing"
)

func TestRevisionFromSettings(t *testing.T) {
	testCases := []struct {
		name     string
		settings []debug.BuildSetting
		expected string
	}{
		{name: "no_revision", settings: nil, expected: unknownVersion},
		{
			name:     "short_revision",
			settings: []debug.BuildSetting{{Key: vcsRevisionKey, Value: "abc123"}},
			expected: "abc123",
		},
		{
			name: "long_dirty_revision",
			settings: []debug.BuildSetting{
				{Key: vcsRevisionKey, Value: "0123456789abcdef0123"},
				{Key: vcsModifiedKey, Value: "true"},
			},
			expected: "0123456789ab-dirty",
		},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			if actual := revisionFromSettings(testCase.settings); actual != testCase.expected {
				t.Fatalf("expected %q, got %q", testCase.expected, actual)
			}
		})
	}
}

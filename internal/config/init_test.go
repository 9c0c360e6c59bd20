package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/temirov/dirdump/internal/utils"
)

func TestInitializeConfigurationCreatesLocalFiles(t *testing.T) {
	workingDirectory := t.TempDir()
	result, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	expectedPath := filepath.Join(workingDirectory, utils.LocalConfigFileName)
	if result.ConfigurationPath != expectedPath {
		t.Fatalf("expected path %s, got %s", expectedPath, result.ConfigurationPath)
	}
	content, readErr := os.ReadFile(result.ConfigurationPath)
	if readErr != nil {
		t.Fatalf("read config: %v", readErr)
	}
	if !strings.Contains(string(content), "exclude_folders:") {
		t.Fatalf("unexpected configuration content: %s", string(content))
	}

	extensions, loadErr := LoadExtensionExclusions(result.ExtensionListPath, zap.NewNop())
	if loadErr != nil {
		t.Fatalf("load written extension list: %v", loadErr)
	}
	if len(extensions) == 0 || extensions[0] != ".json" {
		t.Fatalf("unexpected extension list: %v", extensions)
	}

	t.Setenv("HOME", t.TempDir())
	loaded, loadConfigErr := LoadApplicationConfiguration(LoadOptions{WorkingDirectory: workingDirectory})
	if loadConfigErr != nil {
		t.Fatalf("load written configuration: %v", loadConfigErr)
	}
	if loaded.ExtensionListFile != DefaultExtensionListFileName || len(loaded.ExcludeFolders) != 4 {
		t.Fatalf("unexpected loaded configuration: %+v", loaded)
	}
}

func TestInitializeConfigurationKeepsExistingExtensionList(t *testing.T) {
	workingDirectory := t.TempDir()
	listPath := filepath.Join(workingDirectory, DefaultExtensionListFileName)
	if err := os.WriteFile(listPath, []byte(".bin\n"), 0o600); err != nil {
		t.Fatalf("seed extension list: %v", err)
	}
	result, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	if result.ExtensionListPath != "" {
		t.Fatalf("expected existing extension list to be left alone, got %s", result.ExtensionListPath)
	}
	content, _ := os.ReadFile(listPath)
	if string(content) != ".bin\n" {
		t.Fatalf("extension list was overwritten: %q", string(content))
	}
}

func TestInitializeConfigurationHonorsGlobalTarget(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	t.Setenv("USERPROFILE", homeDir)
	result, err := InitializeConfiguration(InitOptions{Target: InitTargetGlobal, Force: true})
	if err != nil {
		t.Fatalf("InitializeConfiguration error: %v", err)
	}
	if !strings.HasPrefix(result.ConfigurationPath, homeDir) {
		t.Fatalf("expected configuration under home dir, got %s", result.ConfigurationPath)
	}
	if result.ExtensionListPath != "" {
		t.Fatalf("global target should not write an extension list")
	}
	if _, statErr := os.Stat(result.ConfigurationPath); statErr != nil {
		t.Fatalf("expected file to exist at %s: %v", result.ConfigurationPath, statErr)
	}
}

func TestInitializeConfigurationPreventsOverwriteWithoutForce(t *testing.T) {
	workingDirectory := t.TempDir()
	path := filepath.Join(workingDirectory, utils.LocalConfigFileName)
	if err := os.WriteFile(path, []byte("existing"), 0o600); err != nil {
		t.Fatalf("write seed config: %v", err)
	}
	_, err := InitializeConfiguration(InitOptions{WorkingDirectory: workingDirectory, Target: InitTargetLocal, Force: false})
	if err == nil {
		t.Fatalf("expected error when configuration already exists")
	}
}

func TestInitializeConfigurationRejectsUnknownTarget(t *testing.T) {
	if _, err := InitializeConfiguration(InitOptions{Target: InitTarget("remote")}); err == nil {
		t.Fatalf("expected error for unsupported target")
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/temirov/dirdump/internal/utils"
)

// InitTarget identifies where configuration should be initialized.
type InitTarget string

const (
	// InitTargetLocal writes configuration into the working directory.
	InitTargetLocal InitTarget = "local"
	// InitTargetGlobal writes configuration into the global configuration directory.
	InitTargetGlobal InitTarget = "global"

	defaultConfigurationTemplate = `no_print_file: no-print.txt
exclude_folders:
  - node_modules
  - .next
  - .cache
  - out
sort: false
color: true
summary: false
copy: false
tokens: false
model: gpt-4o
`

	defaultExtensionListTemplate = `.json
.png
.ico
.jpg
.jpeg
.gif
.svg
.exe
.dll
.md
`
)

// InitOptions controls how configuration initialization behaves.
type InitOptions struct {
	Target           InitTarget
	Force            bool
	WorkingDirectory string
}

// InitResult lists the files written by InitializeConfiguration.
type InitResult struct {
	ConfigurationPath string
	ExtensionListPath string
}

// InitializeConfiguration writes the default configuration to the requested target.
// The local target also writes a starter extension list next to it when none exists.
func InitializeConfiguration(options InitOptions) (InitResult, error) {
	target := options.Target
	if target == "" {
		target = InitTargetLocal
	}
	var result InitResult
	switch target {
	case InitTargetLocal:
		workingDirectory := options.WorkingDirectory
		if workingDirectory == "" {
			current, err := os.Getwd()
			if err != nil {
				return InitResult{}, fmt.Errorf("determine working directory for configuration: %w", err)
			}
			workingDirectory = current
		}
		result.ConfigurationPath = filepath.Join(workingDirectory, utils.LocalConfigFileName)
		result.ExtensionListPath = filepath.Join(workingDirectory, DefaultExtensionListFileName)
	case InitTargetGlobal:
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			return InitResult{}, fmt.Errorf("resolve home directory for configuration: %w", err)
		}
		configurationDirectory := filepath.Join(homeDirectory, utils.GlobalConfigDirectoryName)
		if err := os.MkdirAll(configurationDirectory, 0o755); err != nil {
			return InitResult{}, fmt.Errorf("create configuration directory %s: %w", configurationDirectory, err)
		}
		result.ConfigurationPath = filepath.Join(configurationDirectory, utils.ConfigFileName)
	default:
		return InitResult{}, fmt.Errorf("unsupported init target %q", target)
	}

	if err := writeTemplate(result.ConfigurationPath, defaultConfigurationTemplate, options.Force); err != nil {
		return InitResult{}, err
	}
	if result.ExtensionListPath != "" {
		if _, statErr := os.Stat(result.ExtensionListPath); statErr == nil && !options.Force {
			result.ExtensionListPath = ""
		} else if err := writeTemplate(result.ExtensionListPath, defaultExtensionListTemplate, true); err != nil {
			return InitResult{}, err
		}
	}
	return result, nil
}

func writeTemplate(destinationPath string, content string, force bool) error {
	if _, err := os.Stat(destinationPath); err == nil {
		if !force {
			return fmt.Errorf("configuration file already exists at %s", destinationPath)
		}
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("inspect configuration path %s: %w", destinationPath, err)
	}

	if err := os.WriteFile(destinationPath, []byte(content), 0o600); err != nil {
		return fmt.Errorf("write configuration to %s: %w", destinationPath, err)
	}
	return nil
}

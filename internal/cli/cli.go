// Package cli provides the command line interface.
package cli

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/dirdump/internal/config"
	"github.com/temirov/dirdump/internal/dumper"
	"github.com/temirov/dirdump/internal/output"
	"github.com/temirov/dirdump/internal/services/clipboard"
	"github.com/temirov/dirdump/internal/tokenizer"
	"github.com/temirov/dirdump/internal/utils"
)

const (
	extensionListFlagName = "no-print"
	excludeFlagName       = "exclude"
	excludeFlagShorthand  = "e"
	sortFlagName          = "sort"
	colorFlagName         = "color"
	noColorFlagName       = "no-color"
	summaryFlagName       = "summary"
	copyFlagName          = "copy"
	tokensFlagName        = "tokens"
	modelFlagName         = "model"
	configFlagName        = "config"
	globalFlagName        = "global"
	forceFlagName         = "force"

	defaultRootDirectory = "."
	versionTemplate      = "dirdump version: {{.Version}}\n"

	rootUse              = "dirdump [root]"
	rootShortDescription = "print a directory tree and the contents of its files"
	rootLongDescription  = `dirdump prints an indented listing of the folders and files under a root
directory, then prints the contents of every file whose extension is not listed
in the no-print file. Folders named with --exclude are skipped at every depth.`
	rootUsageExample = `  # Dump the current directory with the default exclusions
  dirdump

  # Dump a project, skipping vendor and dist, with a custom extension list
  dirdump ./project -e vendor -e dist --no-print ./binary-extensions.txt

  # Deterministic output copied to the clipboard
  dirdump --sort --copy .`

	initUse              = "init"
	initShortDescription = "write a default configuration and no-print file"
	initLongDescription  = `Write a default .dirdump.yaml and no-print.txt into the working directory,
or a global configuration into ~/.dirdump/config.yaml with --global.`

	extensionListFlagDescription = "file listing extensions whose content is not printed"
	excludeFlagDescription       = "folder name to skip at every depth (repeatable)"
	sortFlagDescription          = "sort entries by name instead of filesystem order"
	colorFlagDescription         = "colour headers and names on terminals"
	noColorFlagDescription       = "disable colour output"
	summaryFlagDescription       = "print a summary line after the dump"
	copyFlagDescription          = "copy the dump to the system clipboard"
	tokensFlagDescription        = "count tokens of dumped content in the summary"
	modelFlagDescription         = "tokenizer model used by --tokens"
	configFlagDescription        = "configuration file to use instead of ./.dirdump.yaml"
	globalFlagDescription        = "write the global configuration"
	forceFlagDescription         = "overwrite existing files"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	loadConfigurationFormat     = "loading configuration: %w"
	loadExtensionListFormat     = "loading extension exclusions: %w"
	tokenCounterFormat          = "preparing token counter for %s: %w"
	warningCopyFailedFormat     = "Warning: failed to copy output to clipboard: %v"
	initWrittenFormat           = "Wrote %s\n"
)

// dependencies are the process-level collaborators of a command run.
type dependencies struct {
	copier     clipboard.Copier
	getwd      func() (string, error)
	colorable  func(io.Writer, bool) bool
	newCounter func(model string) (tokenizer.Counter, string, error)
}

func defaultDependencies() dependencies {
	return dependencies{
		copier:     clipboard.NewService(),
		getwd:      os.Getwd,
		colorable:  output.ColorEnabled,
		newCounter: tokenizer.NewCounter,
	}
}

// Execute runs the dirdump application.
func Execute() error {
	rootCommand := createRootCommand(defaultDependencies())
	return rootCommand.Execute()
}

// dumpOptions stores the values of the dump flags.
type dumpOptions struct {
	extensionListFile string
	excludedFolders   []string
	sortEntries       bool
	colorEnabled      bool
	noColor           bool
	includeSummary    bool
	copyToClipboard   bool
	countTokens       bool
	tokenizerModel    string
	configurationPath string
}

// createRootCommand builds the root Cobra command.
func createRootCommand(deps dependencies) *cobra.Command {
	var options dumpOptions

	rootCommand := &cobra.Command{
		Use:           rootUse,
		Short:         rootShortDescription,
		Long:          rootLongDescription,
		Example:       rootUsageExample,
		Version:       utils.GetApplicationVersion(),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(command *cobra.Command, arguments []string) error {
			rootDirectory := defaultRootDirectory
			if len(arguments) == 1 {
				rootDirectory = arguments[0]
			}
			return runDump(command, deps, rootDirectory, options)
		},
	}
	rootCommand.SetVersionTemplate(versionTemplate)

	flags := rootCommand.Flags()
	flags.StringVar(&options.extensionListFile, extensionListFlagName, config.DefaultExtensionListFileName, extensionListFlagDescription)
	flags.StringSliceVarP(&options.excludedFolders, excludeFlagName, excludeFlagShorthand, config.DefaultExcludedFolders(), excludeFlagDescription)
	flags.StringVar(&options.configurationPath, configFlagName, "", configFlagDescription)
	registerSwitchFlag(flags, &options.sortEntries, sortFlagName, false, sortFlagDescription)
	registerSwitchFlag(flags, &options.colorEnabled, colorFlagName, true, colorFlagDescription)
	registerSwitchFlag(flags, &options.noColor, noColorFlagName, false, noColorFlagDescription)
	registerSwitchFlag(flags, &options.includeSummary, summaryFlagName, false, summaryFlagDescription)
	registerSwitchFlag(flags, &options.copyToClipboard, copyFlagName, false, copyFlagDescription)
	registerSwitchFlag(flags, &options.countTokens, tokensFlagName, false, tokensFlagDescription)
	flags.StringVar(&options.tokenizerModel, modelFlagName, tokenizer.DefaultModel, modelFlagDescription)

	rootCommand.AddCommand(createInitCommand(deps))
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// createInitCommand returns the init subcommand.
func createInitCommand(deps dependencies) *cobra.Command {
	var global bool
	var force bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			workingDirectory, workingDirectoryError := deps.getwd()
			if workingDirectoryError != nil {
				return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
			}
			target := config.InitTargetLocal
			if global {
				target = config.InitTargetGlobal
			}
			result, initError := config.InitializeConfiguration(config.InitOptions{
				Target:           target,
				Force:            force,
				WorkingDirectory: workingDirectory,
			})
			if initError != nil {
				return initError
			}
			fmt.Fprintf(command.OutOrStdout(), initWrittenFormat, result.ConfigurationPath)
			if result.ExtensionListPath != "" {
				fmt.Fprintf(command.OutOrStdout(), initWrittenFormat, result.ExtensionListPath)
			}
			return nil
		},
	}
	initCommand.Flags().BoolVar(&global, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&force, forceFlagName, false, forceFlagDescription)
	return initCommand
}

// resolvedSettings are the dump settings after flags, configuration files and defaults are combined.
type resolvedSettings struct {
	extensionListFile string
	excludedFolders   []string
	sortEntries       bool
	colorEnabled      bool
	includeSummary    bool
	copyToClipboard   bool
	countTokens       bool
	tokenizerModel    string
}

// resolveSettings applies precedence: explicit flag, then configuration, then flag default.
func resolveSettings(command *cobra.Command, options dumpOptions, applicationConfiguration config.ApplicationConfiguration) resolvedSettings {
	flags := command.Flags()
	settings := resolvedSettings{
		extensionListFile: options.extensionListFile,
		excludedFolders:   options.excludedFolders,
		sortEntries:       options.sortEntries,
		colorEnabled:      options.colorEnabled,
		includeSummary:    options.includeSummary,
		copyToClipboard:   options.copyToClipboard,
		countTokens:       options.countTokens,
		tokenizerModel:    options.tokenizerModel,
	}
	if !flags.Changed(extensionListFlagName) && applicationConfiguration.ExtensionListFile != "" {
		settings.extensionListFile = applicationConfiguration.ExtensionListFile
	}
	if !flags.Changed(excludeFlagName) && len(applicationConfiguration.ExcludeFolders) > 0 {
		settings.excludedFolders = applicationConfiguration.ExcludeFolders
	}
	if !flags.Changed(sortFlagName) {
		settings.sortEntries = config.BoolOrDefault(applicationConfiguration.Sort, settings.sortEntries)
	}
	if !flags.Changed(colorFlagName) {
		settings.colorEnabled = config.BoolOrDefault(applicationConfiguration.Color, settings.colorEnabled)
	}
	if options.noColor {
		settings.colorEnabled = false
	}
	if !flags.Changed(summaryFlagName) {
		settings.includeSummary = config.BoolOrDefault(applicationConfiguration.Summary, settings.includeSummary)
	}
	if !flags.Changed(copyFlagName) {
		settings.copyToClipboard = config.BoolOrDefault(applicationConfiguration.Copy, settings.copyToClipboard)
	}
	if !flags.Changed(tokensFlagName) {
		settings.countTokens = config.BoolOrDefault(applicationConfiguration.Tokens, settings.countTokens)
	}
	if !flags.Changed(modelFlagName) && applicationConfiguration.Model != "" {
		settings.tokenizerModel = applicationConfiguration.Model
	}
	if settings.countTokens {
		settings.includeSummary = true
	}
	settings.excludedFolders = utils.DeduplicateNames(settings.excludedFolders)
	return settings
}

// runDump loads exclusions and prints the dump of rootDirectory to the command's output.
func runDump(command *cobra.Command, deps dependencies, rootDirectory string, options dumpOptions) error {
	workingDirectory, workingDirectoryError := deps.getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: options.configurationPath,
	})
	if configurationError != nil {
		return fmt.Errorf(loadConfigurationFormat, configurationError)
	}
	settings := resolveSettings(command, options, applicationConfiguration)

	var captured bytes.Buffer
	writer := command.OutOrStdout()
	if settings.copyToClipboard {
		writer = io.MultiWriter(writer, &captured)
	}
	logger := utils.NewStreamLogger(writer)
	defer func() { _ = logger.Sync() }()

	extensions, extensionListError := config.LoadExtensionExclusions(settings.extensionListFile, logger)
	if extensionListError != nil {
		return fmt.Errorf(loadExtensionListFormat, extensionListError)
	}
	exclusions := config.NewExclusionConfig(settings.excludedFolders, extensions)

	var tokenCounter tokenizer.Counter
	if settings.countTokens {
		createdCounter, _, counterError := deps.newCounter(settings.tokenizerModel)
		if counterError != nil {
			return fmt.Errorf(tokenCounterFormat, settings.tokenizerModel, counterError)
		}
		tokenCounter = createdCounter
	}

	treeDumper := dumper.New(dumper.Options{
		Writer:         writer,
		Logger:         logger,
		SortEntries:    settings.sortEntries,
		ColorEnabled:   deps.colorable(writer, !settings.colorEnabled),
		IncludeSummary: settings.includeSummary,
		TokenCounter:   tokenCounter,
	})
	if dumpError := treeDumper.Dump(rootDirectory, exclusions); dumpError != nil {
		return dumpError
	}

	if settings.copyToClipboard {
		if copyError := deps.copier.Copy(captured.String()); copyError != nil {
			errorLogger := utils.NewStreamLogger(command.ErrOrStderr())
			errorLogger.Warn(fmt.Sprintf(warningCopyFailedFormat, copyError))
		}
	}
	return nil
}

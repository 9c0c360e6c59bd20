package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/temirov/dirdump/internal/cli"
	"github.com/temirov/dirdump/internal/utils"
)

const exitCodeFailure = 1

// main is the entry point for the dirdump command.
func main() {
	loggerInstance, loggerInitializationError := utils.NewApplicationLogger()
	if loggerInitializationError != nil {
		panic(fmt.Errorf(utils.LoggerInitializationFailedMessageFormat, loggerInitializationError))
	}
	os.Exit(run(loggerInstance, cli.Execute))
}

// run executes the command and returns the process exit code.
// The logger is flushed before returning so a failure message is never lost.
func run(loggerInstance *zap.Logger, execute func() error) int {
	defer func() { _ = loggerInstance.Sync() }()
	if applicationExecutionError := execute(); applicationExecutionError != nil {
		loggerInstance.Error(utils.ApplicationExecutionFailedMessage + ": " + applicationExecutionError.Error())
		return exitCodeFailure
	}
	return 0
}

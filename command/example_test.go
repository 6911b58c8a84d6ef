package command_test

import (
	"os"

	"github.com/philipp01105/logchain/command"
)

func ExampleRun() {
	_ = command.Run(command.NewConsole(os.Stdout), "This is a test log message!")
	// Output:
	// Console: This is a test log message!
}

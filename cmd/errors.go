package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

var errUsage = errors.New("expected exactly one file argument")

// fail reports err on stderr and returns the matching exit status.
func fail(err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, errUsage) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

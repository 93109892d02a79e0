// Package main provides the pocketpal CLI, a local address-book and note
// manager. Commands parse arguments, call one store or gateway operation,
// and format the result; all logic lives in the internal packages.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/pocketpal-dev/pocketpal/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

// exitCode classifies a command error: snapshot corruption and snapshot
// I/O failures are system errors, everything else is a user error.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	if errors.Is(err, types.ErrCorruptSnapshot) || errors.Is(err, types.ErrSnapshotIO) {
		return exitSysError
	}
	return exitUserError
}

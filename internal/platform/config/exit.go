package config

import (
	"fmt"
	"io"
	"os"
)

var (
	exitOutput io.Writer = os.Stderr
	exit                 = os.Exit
)

// Exitf writes a formatted error message to stderr and exits with code 1.
// Command entry points use it for startup failures that happen before a
// logger prefix is configured.
func Exitf(format string, args ...any) {
	fmt.Fprintf(exitOutput, format+"\n", args...)
	exit(1)
}

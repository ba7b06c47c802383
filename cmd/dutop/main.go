package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/UnTypeBeats/DuTop/internal/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the documented process exit codes:
// 3 permission denied, 4 path not found, 5 other I/O error, 1 general.
func exitCode(err error) int {
	var pathErr *fs.PathError

	switch {
	case errors.Is(err, fs.ErrPermission):
		return 3
	case errors.Is(err, fs.ErrNotExist):
		return 4
	case errors.As(err, &pathErr):
		return 5
	default:
		return 1
	}
}

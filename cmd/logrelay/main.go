package main

import (
	"errors"
	"fmt"
	"os"

	"logrelay/internal/logging"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, logging.ErrHandlerNotInitialized) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"logrelay/internal/config"
)

// colorEnabled resolves the configured color mode against w. Auto mode only
// colours real terminals.
func colorEnabled(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

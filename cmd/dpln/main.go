// Package main provides the DPLN command line tool.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
)

const version = "v0.1.0-dev"

func usage() {
	fmt.Fprintln(os.Stderr, "DPLN - tensors, autodiff and convolutional layers in Go")
	fmt.Fprintf(os.Stderr, "Version: %s\n\n", version)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  version    Show version")
	fmt.Fprintln(os.Stderr, "  train      Fit a small conv net to synthetic data")
	fmt.Fprintln(os.Stderr, "  gradcheck  Compare conv2d gradients with finite differences")
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "version":
		fmt.Printf("DPLN %s\n", version)
		return
	case "train":
		err = runTrain(os.Args[2:])
	case "gradcheck":
		err = runGradCheck(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		slog.Error("command failed", "command", os.Args[1], "err", err)
		os.Exit(1)
	}
}

// newLogger installs a text logger on stderr as the default.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// commonFlags registers the flags every subcommand shares.
func commonFlags(fs *flag.FlagSet) *bool {
	return fs.Bool("v", false, "enable debug logging")
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// OutputConfig holds global output settings
type OutputConfig struct {
	JSON  bool
	Quiet bool
}

var outputCfg OutputConfig

// PrintResult writes data to stdout as indented JSON.
func PrintResult(data interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

// PrintInfo prints an info message if not quiet
func PrintInfo(format string, args ...interface{}) {
	if !outputCfg.Quiet {
		fmt.Printf(format, args...)
	}
}

// PrintError prints error to stderr
func PrintError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format, args...)
}

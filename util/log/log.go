//go:build !release

package log

import (
	"fmt"
	"log"
)

var verbose bool

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// Print calls the standard log.Print()
func Print(v ...interface{}) {
	log.Output(2, fmt.Sprint(v...))
}

// Printf calls the standard log.Printf()
func Printf(format string, v ...interface{}) {
	log.Output(2, fmt.Sprintf(format, v...))
}

// Debug calls the standard log.Print() with a [DEBUG] prefix when verbose output is on.
func Debug(v ...interface{}) {
	if verbose {
		log.Output(2, "[DEBUG] "+fmt.Sprint(v...))
	}
}

// Debugf calls the standard log.Printf() with a [DEBUG] prefix when verbose output is on.
func Debugf(format string, v ...interface{}) {
	if verbose {
		log.Output(2, "[DEBUG] "+fmt.Sprintf(format, v...))
	}
}

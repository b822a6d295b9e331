package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Build flag for debug mode - can be overridden at build time
// go build -ldflags "-X github.com/standardbeagle/numflow/internal/debug.EnableDebug=true"
var EnableDebug = "false"

// debugOutput is the writer for debug output
var debugOutput io.Writer = os.Stderr

// debugMutex protects access to debug output
var debugMutex sync.Mutex

// SetOutput sets a custom writer for debug output.
// Pass nil to disable debug output entirely.
func SetOutput(w io.Writer) {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	debugOutput = w
}

// IsDebugEnabled reports whether debug logging is active.
func IsDebugEnabled() bool {
	// Check build flag first
	if EnableDebug == "true" {
		return true
	}

	// Allow runtime override via environment variable
	if os.Getenv("DEBUG") == "1" || os.Getenv("DEBUG") == "true" {
		return true
	}

	return false
}

// getDebugWriter returns the writer for debug output, or nil if none is configured
func getDebugWriter() io.Writer {
	debugMutex.Lock()
	defer debugMutex.Unlock()
	return debugOutput
}

// Printf prints debug information only when debug mode is enabled and output is configured
func Printf(format string, args ...interface{}) {
	if !IsDebugEnabled() {
		return
	}
	w := getDebugWriter()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG] "+format, args...)
}

// Log provides structured debug logging with component names
func Log(component, format string, args ...interface{}) {
	if !IsDebugEnabled() {
		return
	}
	w := getDebugWriter()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "[DEBUG:%s] "+format, append([]interface{}{component}, args...)...)
}

// LogConfig provides debug logging specifically for configuration loading
func LogConfig(format string, args ...interface{}) {
	Log("CONFIG", format, args...)
}

// LogPipeline provides debug logging specifically for pipeline runs
func LogPipeline(format string, args ...interface{}) {
	Log("PIPELINE", format, args...)
}

// Package logging prints leveled, colored console output and mirrors
// every message into a structured log file.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"

	"fetcharr/internal/domain/consts"

	"github.com/rs/zerolog"
)

// Level controls debug verbosity (D calls with l >= Level are dropped).
var Level int

var (
	mu       sync.Mutex
	loggable bool
	logFile  *os.File
	fileLog  zerolog.Logger
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// Setup creates and/or opens the log file inside targetDir.
func Setup(targetDir string) error {
	mu.Lock()
	defer mu.Unlock()

	path := filepath.Join(targetDir, consts.LogFileName)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file %q: %w", path, err)
	}

	logFile = f
	fileLog = zerolog.New(f).With().Timestamp().Logger()
	loggable = true
	return nil
}

// Close flushes and closes the log file.
func Close() {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		if err := logFile.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
		logFile = nil
		loggable = false
	}
}

// I prints an info message.
func I(format string, args ...any) {
	print(consts.BlueInfo, zerolog.InfoLevel, format, args...)
}

// S prints a success message.
func S(format string, args ...any) {
	print(consts.GreenSuccess, zerolog.InfoLevel, format, args...)
}

// W prints a warning message.
func W(format string, args ...any) {
	print(consts.YellowWarning, zerolog.WarnLevel, format, args...)
}

// E prints an error message.
func E(format string, args ...any) {
	print(consts.RedError, zerolog.ErrorLevel, format, args...)
}

// D prints a debug message when the debug level is at least l.
func D(l int, format string, args ...any) {
	if l >= Level {
		return
	}
	print(consts.YellowDebug, zerolog.DebugLevel, format, args...)
}

// P prints a plain message with no tag.
func P(format string, args ...any) {
	print("", zerolog.InfoLevel, format, args...)
}

// print writes the tagged message to the console and, when a log file is
// open, the plain message to the structured file sink.
func print(tag string, lvl zerolog.Level, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	var msg string
	if len(args) != 0 {
		msg = fmt.Sprintf(format, args...)
	} else {
		msg = format
	}

	fmt.Println(tag + msg)

	if loggable {
		fileLog.WithLevel(lvl).Msg(stripAnsiCodes(msg))
	}
}

// stripAnsiCodes removes ANSI escape codes from a string.
func stripAnsiCodes(input string) string {
	return ansiEscape.ReplaceAllString(input, "")
}

// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	lineNumberWidth = 8 // columns reserved for a match's line number
)

// 🔈 Verbosity controls whether informational lines are printed. Failures are
// always printed.
type Verbosity int

const (
	VerbosityNormal Verbosity = iota
	VerbosityQuiet
)

// VerbosityFor maps the quiet flag onto a Verbosity.
func VerbosityFor(quiet bool) Verbosity {
	if quiet {
		return VerbosityQuiet
	}
	return VerbosityNormal
}

// Informational reports whether informational output should be printed.
func (v Verbosity) Informational() bool {
	return v != VerbosityQuiet
}

// String returns a string representation of Verbosity
func (v Verbosity) String() string {
	switch v {
	case VerbosityQuiet:
		return "quiet"
	default:
		return "normal"
	}
}

// 🎯 Logger writes user facing lines to the console and mirrors them to zerolog
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 🏭 NewConsoleLogger creates a logger whose zerolog side writes to w in
// console format at the given level.
func NewConsoleLogger(console io.Writer, w io.Writer, level zerolog.Level) *Logger {
	zlog := zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger().Level(level)
	return New(console, zlog)
}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the logger from context
func FromContext(ctx context.Context) *Logger {
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		panic("logger not found in context")
	}
	return logger
}

// 🎯 NewContext adds the logger to context. The zerolog side is attached as
// well so zerolog.Ctx(ctx) finds it.
func NewContext(ctx context.Context, l *Logger) context.Context {
	ctx = l.zlog.WithContext(ctx)
	return context.WithValue(ctx, contextKey{}, l)
}

// Zerolog returns the structured logger behind l.
func (l *Logger) Zerolog() *zerolog.Logger {
	return &l.zlog
}

// Console returns the writer console lines go to.
func (l *Logger) Console() io.Writer {
	return l.console
}

// 📝 Info prints a plain informational line
func (l *Logger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.console, msg)
	l.zlog.Info().Msg(msg)
}

// 📝 Warning prints a warning line
func (l *Logger) Warning(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "⚠️  %s\n", color.New(color.FgYellow).Sprint(msg))
	l.zlog.Warn().Msg(msg)
}

// 📝 Error prints an error line
func (l *Logger) Error(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "❌ %s\n", color.New(color.FgRed).Sprint(msg))
	l.zlog.Error().Msg(msg)
}

// 📝 Match prints one matching line of a searched file as
// <path>:<line number padded to 8 columns><text>.
func (l *Logger) Match(path string, line int, text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s:%s%s\n",
		color.New(color.FgCyan).Sprint(path),
		color.New(color.Faint).Sprint(fmt.Sprintf("%-*d", lineNumberWidth, line)),
		text)
	l.zlog.Debug().Str("file", path).Int("line", line).Msg("match")
}

// 📝 Raw prints text as is, without a trailing newline
func (l *Logger) Raw(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprint(l.console, text)
}

// 📝 Infof logs a formatted info message
func (l *Logger) Infof(format string, args ...interface{}) {
	l.Info(fmt.Sprintf(format, args...))
}

// 📝 Warningf logs a formatted warning message
func (l *Logger) Warningf(format string, args ...interface{}) {
	l.Warning(fmt.Sprintf(format, args...))
}

// 📝 Errorf logs a formatted error message
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.Error(fmt.Sprintf(format, args...))
}

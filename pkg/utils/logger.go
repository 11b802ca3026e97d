// --------------------------------------------------------------------------------
// Author: Thomas F McGeehan V
//
// This file is part of a software project developed by Thomas F McGeehan V.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//
// For more information about the MIT License, please visit:
// https://opensource.org/licenses/MIT
//
// Acknowledgment appreciated but not required.
// --------------------------------------------------------------------------------

package utils

import (
	"fmt"
	"io"
	"os"

	"github.com/baditaflorin/l"
)

// Logger wraps the structured logger shared by the server and the CLIs.
type Logger struct {
	logger l.Logger
	file   *os.File
}

// LogOptions selects where and how log lines are written.
type LogOptions struct {
	JSON  bool
	File  string
	Async bool
}

// NewLogger creates a new logger instance. An empty File logs to stdout.
func NewLogger(opts LogOptions) (*Logger, error) {
	var (
		output io.Writer = os.Stdout
		file   *os.File
	)
	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		output, file = f, f
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  opts.JSON,
		AsyncWrite:  opts.Async,
		BufferSize:  1024 * 1024,      // 1MB buffer
		MaxFileSize: 10 * 1024 * 1024, // 10MB max file size
		MaxBackups:  5,
		AddSource:   true,
	})
	if err != nil {
		if file != nil {
			file.Close()
		}
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &Logger{logger: logger, file: file}, nil
}

// Debug logs a debug message.
func (lg *Logger) Debug(msg string, keysAndValues ...interface{}) {
	lg.logger.Debug(msg, keysAndValues...)
}

// Info logs an informational message.
func (lg *Logger) Info(msg string, keysAndValues ...interface{}) {
	lg.logger.Info(msg, keysAndValues...)
}

// Warn logs a warning message.
func (lg *Logger) Warn(msg string, keysAndValues ...interface{}) {
	lg.logger.Warn(msg, keysAndValues...)
}

// Error logs an error message.
func (lg *Logger) Error(msg string, keysAndValues ...interface{}) {
	lg.logger.Error(msg, keysAndValues...)
}

// Fatal logs an error message and exits the program.
func (lg *Logger) Fatal(msg string, keysAndValues ...interface{}) {
	lg.logger.Error(msg, keysAndValues...)
	lg.Close()
	os.Exit(1)
}

// Close flushes pending writes and closes the log file, if any.
func (lg *Logger) Close() {
	lg.logger.Close()
	if lg.file != nil {
		lg.file.Close()
	}
}

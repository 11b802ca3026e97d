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

// Package notify holds the operator notification sinks used by the checker.
package notify

import (
	"fmt"
	"io"
	"strings"
)

// WriterSink prints each message to a writer, framed like a popup.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Notify(message string) error {
	border := strings.Repeat("=", 60)
	if _, err := fmt.Fprintf(s.W, "%s\n%s\n%s\n", border, message, border); err != nil {
		return fmt.Errorf("write notification: %w", err)
	}
	return nil
}

// warner is satisfied by utils.Logger.
type warner interface {
	Warn(msg string, keysAndValues ...interface{})
}

// LogSink records each message as a warning.
type LogSink struct {
	Logger warner
}

func (s LogSink) Notify(message string) error {
	s.Logger.Warn("operator notification", "message", message)
	return nil
}

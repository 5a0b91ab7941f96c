// Copyright 2021 Torben Schinke
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package token

import "fmt"

// Error is a generic tokenizer failure not tied to a specific source
// position (e.g. a reader error from the caller's byte source).
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// SyntaxError is a lexical violation of the character grammar, tied to
// the position at which it was detected: an unterminated literal, an
// unrecognized escape sequence, or a '/' that does not start a comment.
type SyntaxError struct {
	File    FileInfo
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

// UnknownStateError indicates the tokenizer's DFA reached a state with
// no transition rule — an implementation bug, not bad input.
type UnknownStateError struct {
	State string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("tokenizer: unknown state %q", e.State)
}

// Explain renders a source-line-pointer explanation for err if it is a
// *SyntaxError, falling back to err.Error() otherwise.
func Explain(err error, source string) string {
	se, ok := err.(*SyntaxError)
	if !ok {
		return err.Error()
	}

	lines := splitLines(source)
	lineNo := se.File.Start.Line
	col := se.File.Start.Column

	text := ""
	if lineNo-1 >= 0 && lineNo-1 < len(lines) {
		text = lines[lineNo-1]
	}

	indent := ""
	for i := 1; i < col; i++ {
		indent += " "
	}

	return fmt.Sprintf("error: %s\n%4d |%s\n     |%s^\n", err.Error(), lineNo, text, indent)
}

func splitLines(s string) []string {
	var lines []string

	start := 0

	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}

	lines = append(lines, s[start:])

	return lines
}

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

import "strconv"

// LineInfo is a one-based (line, column) pair within a file.
type LineInfo struct {
	Line   int
	Column int
}

// String renders "line:column".
func (p LineInfo) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// FileInfo is the inclusive source range a Token or ast.Node occupies.
// Start and End may be equal, denoting a single character.
type FileInfo struct {
	FileName string
	Start    LineInfo
	End      LineInfo
}

// NewFileInfo returns a range covering only line 1, column 1 of fileName.
func NewFileInfo(fileName string) FileInfo {
	return FileInfo{
		FileName: fileName,
		Start:    LineInfo{Line: 1, Column: 1},
		End:      LineInfo{Line: 1, Column: 1},
	}
}

// String returns the content in the "file:line:col" format, pointing at Start.
func (f FileInfo) String() string {
	return f.FileName + ":" + f.Start.String()
}

// Span returns a FileInfo covering from f's Start through other's End.
// Both must belong to the same file; callers join adjacent ranges with this
// when a node's position must cover more than one token.
func (f FileInfo) Span(other FileInfo) FileInfo {
	return FileInfo{FileName: f.FileName, Start: f.Start, End: other.End}
}

package parser

import (
	"fmt"
	"strings"

	"github.com/golangee/swizzle/token"
)

// Explain renders a source-line-pointer explanation for err, the same
// shape token.Explain produces for a tokenizer error: the message,
// followed by the offending line with a caret under the column it was
// detected at. Errors that carry no FileInfo (an *Error bug report, or
// any error type outside this package) fall back to err.Error().
func Explain(err error, source string) string {
	pos, ok := filePos(err)
	if !ok {
		return err.Error()
	}

	lines := strings.Split(source, "\n")
	lineNo := pos.Start.Line
	col := pos.Start.Column

	text := ""
	if lineNo-1 >= 0 && lineNo-1 < len(lines) {
		text = lines[lineNo-1]
	}

	indent := strings.Repeat(" ", max(col-1, 0))

	return fmt.Sprintf("error: %s\n%4d |%s\n     |%s^\n", err.Error(), lineNo, text, indent)
}

// filePos extracts the FileInfo a parser error carries, if any.
func filePos(err error) (token.FileInfo, bool) {
	switch e := err.(type) {
	case *SyntaxError:
		return e.File, true
	case *UnexpectedTokenError:
		return e.Got.File, true
	default:
		return token.FileInfo{}, false
	}
}

package scss

import (
	"errors"
	"io"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// compress removes comments and insignificant whitespace from flattened CSS.
// Comments starting with "/*!" are kept.
func compress(src string) (string, error) {
	out := make([]byte, 0, len(src))

	lexer := css.NewLexer(parse.NewInputString(src))
	pendingSpace := false

	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return "", err
			}
			break
		}

		switch tt {
		case css.WhitespaceToken:
			pendingSpace = true
			continue
		case css.CommentToken:
			if !strings.HasPrefix(string(data), "/*!") {
				continue
			}
		}

		if pendingSpace && len(out) > 0 && needsSpace(out[len(out)-1], data[0]) {
			out = append(out, ' ')
		}
		pendingSpace = false

		if tt == css.RightBraceToken && len(out) > 0 && out[len(out)-1] == ';' {
			out = out[:len(out)-1]
		}
		out = append(out, data...)
	}

	return string(out), nil
}

// needsSpace reports whether whitespace between prev and next carries meaning.
func needsSpace(prev, next byte) bool {
	if strings.IndexByte("{};,>:(", prev) >= 0 {
		return false
	}
	return strings.IndexByte("{};,>)!", next) < 0
}

package scss

import "strings"

// stripLineComments removes `//` comments from src. Strings, block comments and unquoted
// url() arguments are copied untouched. Newlines are kept so line numbers stay stable.
func stripLineComments(src string) string {
	if !strings.Contains(src, "//") {
		return src
	}

	var b strings.Builder
	b.Grow(len(src))

	for i := 0; i < len(src); {
		c := src[i]
		switch {
		case c == '"' || c == '\'':
			end := skipString(src, i)
			b.WriteString(src[i:end])
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '*':
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				b.WriteString(src[i:])
				return b.String()
			}
			end += i + 4
			b.WriteString(src[i:end])
			i = end
		case c == '/' && i+1 < len(src) && src[i+1] == '/':
			nl := strings.IndexByte(src[i:], '\n')
			if nl < 0 {
				return b.String()
			}
			i += nl
		case hasURLPrefix(src, i):
			end := strings.IndexByte(src[i:], ')')
			if end < 0 {
				b.WriteString(src[i:])
				return b.String()
			}
			end += i + 1
			b.WriteString(src[i:end])
			i = end
		default:
			b.WriteByte(c)
			i++
		}
	}

	return b.String()
}

// skipString returns the offset just past the string literal starting at i.
func skipString(src string, i int) int {
	quote := src[i]
	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote, '\n':
			return j + 1
		}
	}
	return len(src)
}

// hasURLPrefix reports whether an unquoted url( argument starts at i.
func hasURLPrefix(src string, i int) bool {
	if i+4 > len(src) || !strings.EqualFold(src[i:i+4], "url(") {
		return false
	}
	if i > 0 && isIdentByte(src[i-1]) {
		return false
	}
	j := i + 4
	for j < len(src) && (src[j] == ' ' || src[j] == '\t') {
		j++
	}
	return j < len(src) && src[j] != '"' && src[j] != '\''
}

func isIdentByte(c byte) bool {
	return c == '-' || c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

package scss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripLineComments(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no comments", in: "a { b: c; }", want: "a { b: c; }"},
		{name: "trailing comment", in: "a { b: c; } // note\nd {}", want: "a { b: c; } \nd {}"},
		{name: "comment at eof", in: "a {}\n// end", want: "a {}\n"},
		{name: "inside string", in: `a { content: "//x"; }`, want: `a { content: "//x"; }`},
		{name: "unquoted url", in: "a { b: url(http://x.test/y.png); } // c", want: "a { b: url(http://x.test/y.png); } "},
		{name: "block comment", in: "/* // kept */ a {}", want: "/* // kept */ a {}"},
		{name: "escaped quote", in: `a { content: "\"//"; } // c`, want: `a { content: "\"//"; } `},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripLineComments(tt.in))
		})
	}
}

func TestCompress(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "declarations", in: "a {\n  color : red ;\n  margin: 0 auto;\n}\n", want: "a{color :red;margin:0 auto}"},
		{name: "descendant selector", in: "ul li , ol  li { x: y }", want: "ul li,ol li{x:y}"},
		{name: "media query", in: "@media screen and ( min-width: 1px ) { a { b: c } }", want: "@media screen and (min-width:1px){a{b:c}}"},
		{name: "comments", in: "/* gone */ a { /*! kept */ b: c; }", want: "a{/*! kept */ b:c}"},
		{name: "calc keeps operators", in: "a { width: calc(100% - 2px); }", want: "a{width:calc(100% - 2px)}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := compress(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWriteVLQ(t *testing.T) {
	for v, want := range map[int]string{0: "A", 1: "C", -1: "D", 15: "e", -15: "f", 16: "gB", 1000: "w+B"} {
		var b strings.Builder
		writeVLQ(&b, v)
		assert.Equal(t, want, b.String(), "value %d", v)
	}
}

func TestLineIndex(t *testing.T) {
	idx := newLineIndex("ab\ncd\n\nef")

	assert.Equal(t, position{0, 0}, idx.at(0))
	assert.Equal(t, position{0, 2}, idx.at(2))
	assert.Equal(t, position{1, 0}, idx.at(3))
	assert.Equal(t, position{2, 0}, idx.at(6))
	assert.Equal(t, position{3, 1}, idx.at(8))
}

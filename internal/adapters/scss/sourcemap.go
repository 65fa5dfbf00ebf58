package scss

import (
	"encoding/json"
	"path/filepath"
	"sort"
	"strings"
)

// mapping ties a generated position to a position in one of the sources.
type mapping struct {
	genLine, genCol int
	source          int
	line, col       int
}

// output accumulates flattened text and, for every chunk written, where it came from.
type output struct {
	buf      strings.Builder
	sources  []string
	index    map[string]int
	mappings []mapping
	line     int
	col      int
}

func newOutput() *output {
	return &output{index: make(map[string]int)}
}

// source returns the index of path in the source list, adding it when new.
func (o *output) source(path string) int {
	if i, ok := o.index[path]; ok {
		return i
	}
	o.index[path] = len(o.sources)
	o.sources = append(o.sources, path)
	return len(o.sources) - 1
}

// emit appends text taken from source src starting at the given position.
func (o *output) emit(src int, text string, at position) {
	if text == "" {
		return
	}
	line, col := at.line, at.col
	o.mappings = append(o.mappings, mapping{o.line, o.col, src, line, col})
	for i := 0; i < len(text); i++ {
		if text[i] != '\n' {
			o.col++
			col++
			continue
		}
		o.line++
		line++
		o.col, col = 0, 0
		if i+1 < len(text) {
			o.mappings = append(o.mappings, mapping{o.line, 0, src, line, 0})
		}
	}
	o.buf.WriteString(text)
}

func (o *output) String() string {
	return o.buf.String()
}

// position is a zero-based line and byte column.
type position struct {
	line, col int
}

// lineIndex converts byte offsets of one source into positions.
type lineIndex []int

func newLineIndex(src string) lineIndex {
	starts := lineIndex{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (l lineIndex) at(offset int) position {
	line := sort.Search(len(l), func(i int) bool { return l[i] > offset }) - 1
	return position{line: line, col: offset - l[line]}
}

// sourceMap is the version 3 source map document.
type sourceMap struct {
	Version  int      `json:"version"`
	File     string   `json:"file"`
	Sources  []string `json:"sources"`
	Names    []string `json:"names"`
	Mappings string   `json:"mappings"`
}

// buildSourceMap renders the map for the artifact at out. Sources are listed relative to
// the directory of the map file. When withMappings is false only the source list is kept.
func buildSourceMap(out string, o *output, withMappings bool) ([]byte, error) {
	dir := filepath.Dir(out)
	sources := make([]string, len(o.sources))
	for i, src := range o.sources {
		rel, err := filepath.Rel(dir, src)
		if err != nil {
			rel = src
		}
		sources[i] = filepath.ToSlash(rel)
	}

	sm := sourceMap{
		Version: 3,
		File:    filepath.Base(out),
		Sources: sources,
		Names:   []string{},
	}
	if withMappings {
		sm.Mappings = encodeMappings(o.mappings)
	}
	return json.Marshal(sm)
}

// encodeMappings renders mappings as base64 VLQ segments, one group per generated line.
func encodeMappings(ms []mapping) string {
	var b strings.Builder
	var prevSource, prevLine, prevCol int
	genLine, prevGenCol := 0, 0

	for i, m := range ms {
		for genLine < m.genLine {
			b.WriteByte(';')
			genLine++
			prevGenCol = 0
		}
		if i > 0 && ms[i-1].genLine == m.genLine {
			b.WriteByte(',')
		}
		writeVLQ(&b, m.genCol-prevGenCol)
		writeVLQ(&b, m.source-prevSource)
		writeVLQ(&b, m.line-prevLine)
		writeVLQ(&b, m.col-prevCol)
		prevGenCol, prevSource, prevLine, prevCol = m.genCol, m.source, m.line, m.col
	}

	return b.String()
}

const base64Digits = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

func writeVLQ(b *strings.Builder, v int) {
	u := v << 1
	if v < 0 {
		u = (-v << 1) | 1
	}
	for {
		digit := u & 0x1f
		u >>= 5
		if u > 0 {
			digit |= 0x20
		}
		b.WriteByte(base64Digits[digit])
		if u == 0 {
			return
		}
	}
}

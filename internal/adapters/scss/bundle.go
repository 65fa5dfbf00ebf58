package scss

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.trai.ch/stylo/internal/core/domain"
	"go.trai.ch/zerr"
)

// token is a lexed token with its text copied out of the lexer buffer.
type token struct {
	kind css.TokenType
	text string
}

// bundler flattens one entry unit and everything it imports into a single document.
type bundler struct {
	loadPaths []string
	out       *output
	included  []string
	seen      map[string]struct{}
	modules   map[string]struct{}
	stack     []string
}

func newBundler(loadPaths []string) *bundler {
	return &bundler{
		loadPaths: loadPaths,
		out:       newOutput(),
		seen:      make(map[string]struct{}),
		modules:   make(map[string]struct{}),
	}
}

// include reads path and expands it into the output.
func (b *bundler) include(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if i := slices.Index(b.stack, path); i >= 0 {
		chain := append(slices.Clone(b.stack[i:]), path)
		return zerr.With(zerr.Wrap(domain.ErrImportCycle, strings.Join(chain, " -> ")), "path", path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path is resolved from configured roots
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to read source"), "path", path)
	}
	if _, ok := b.seen[path]; !ok {
		b.seen[path] = struct{}{}
		b.included = append(b.included, path)
	}

	b.stack = append(b.stack, path)
	defer func() { b.stack = b.stack[:len(b.stack)-1] }()

	return b.expand(ctx, path, stripLineComments(string(data)))
}

// expand copies src to the output, replacing import statements with the files they name.
func (b *bundler) expand(ctx context.Context, path, src string) error {
	idx := b.out.source(path)
	lines := newLineIndex(src)
	lexer := css.NewLexer(parse.NewInputString(src))

	offset, copied := 0, 0
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return zerr.With(zerr.Wrap(err, "failed to tokenize source"), "path", path)
			}
			break
		}

		start := offset
		offset += len(data)
		if tt != css.AtKeywordToken {
			continue
		}

		rule := strings.ToLower(string(data))
		if rule != "@import" && rule != "@use" && rule != "@forward" {
			continue
		}

		args, n, err := readStatement(lexer)
		offset += n
		if err != nil {
			return zerr.With(zerr.Wrap(err, rule), "path", path)
		}

		b.out.emit(idx, src[copied:start], lines.at(copied))
		copied = offset

		stmt := statement{
			rule:   rule,
			args:   args,
			text:   src[start:offset],
			source: idx,
			pos:    lines.at(start),
			dir:    filepath.Dir(path),
			from:   path,
		}
		if err := b.handle(ctx, stmt); err != nil {
			return err
		}
	}

	b.out.emit(idx, src[copied:], lines.at(copied))
	return nil
}

// statement is one @import, @use or @forward rule.
type statement struct {
	rule   string
	args   []token
	text   string
	source int
	pos    position
	dir    string
	from   string
}

func (b *bundler) handle(ctx context.Context, stmt statement) error {
	if stmt.rule == "@import" {
		return b.handleImport(ctx, stmt)
	}

	args := trimSpace(stmt.args)
	if len(args) == 0 || args[0].kind != css.StringToken {
		return zerr.With(zerr.New(stmt.rule+" expects a quoted module name"), "path", stmt.from)
	}

	name := unquote(args[0].text)
	if strings.HasPrefix(name, "sass:") {
		return nil
	}

	target, ok := b.resolve(name, stmt.dir)
	if !ok {
		return notFound(name, stmt.from)
	}
	if _, loaded := b.modules[target]; loaded {
		return nil
	}
	b.modules[target] = struct{}{}

	return b.include(ctx, target)
}

func (b *bundler) handleImport(ctx context.Context, stmt statement) error {
	items := splitComma(stmt.args)

	targets := make([]string, len(items))
	allPlain := true
	for i, item := range items {
		name, ok := importName(item)
		if !ok || isRemote(name) {
			continue
		}
		target, found := b.resolve(name, stmt.dir)
		if !found {
			if strings.HasSuffix(strings.ToLower(name), ".css") {
				continue
			}
			return notFound(name, stmt.from)
		}
		targets[i] = target
		allPlain = false
	}

	if allPlain {
		b.out.emit(stmt.source, stmt.text, stmt.pos)
		return nil
	}

	for i, item := range items {
		if targets[i] == "" {
			b.out.emit(stmt.source, "@import "+render(item)+";", stmt.pos)
			continue
		}
		if err := b.include(ctx, targets[i]); err != nil {
			return err
		}
	}

	return nil
}

// resolve finds the file an import name refers to, first next to the importing file and
// then in each load path.
func (b *bundler) resolve(name, dir string) (string, bool) {
	dirs := append([]string{dir}, b.loadPaths...)
	for _, d := range dirs {
		for _, candidate := range candidates(filepath.Join(d, filepath.FromSlash(name))) {
			if info, err := os.Stat(candidate); err == nil && info.Mode().IsRegular() {
				return candidate, true
			}
		}
	}
	return "", false
}

// candidates lists the files an import of base may resolve to, in lookup order.
func candidates(base string) []string {
	dir, file := filepath.Split(base)
	switch strings.ToLower(filepath.Ext(file)) {
	case ".scss", ".css":
		return []string{base, filepath.Join(dir, "_"+file)}
	}

	return []string{
		base + ".scss",
		filepath.Join(dir, "_"+file+".scss"),
		base + ".css",
		filepath.Join(dir, "_"+file+".css"),
		filepath.Join(base, "_index.scss"),
		filepath.Join(base, "index.scss"),
	}
}

func notFound(name, from string) error {
	return zerr.With(zerr.Wrap(domain.ErrImportNotFound, fmt.Sprintf("cannot resolve %q", name)), "path", from)
}

// readStatement consumes tokens up to and including the terminating semicolon.
// It returns the argument tokens without comments and the number of bytes consumed.
func readStatement(lexer *css.Lexer) ([]token, int, error) {
	var args []token
	n := 0
	for {
		tt, data := lexer.Next()
		if tt == css.ErrorToken {
			if err := lexer.Err(); err != nil && !errors.Is(err, io.EOF) {
				return nil, n, err
			}
			return args, n, nil
		}
		n += len(data)
		switch tt {
		case css.SemicolonToken:
			return args, n, nil
		case css.LeftBraceToken, css.RightBraceToken:
			return nil, n, errors.New("statement is not terminated by a semicolon")
		case css.CommentToken:
			continue
		}
		args = append(args, token{kind: tt, text: string(data)})
	}
}

// splitComma splits tokens on top-level commas and trims whitespace around each item.
func splitComma(tokens []token) [][]token {
	var items [][]token
	depth, start := 0, 0
	for i, t := range tokens {
		switch t.kind {
		case css.LeftParenthesisToken, css.FunctionToken:
			depth++
		case css.RightParenthesisToken:
			depth--
		case css.CommaToken:
			if depth == 0 {
				items = append(items, trimSpace(tokens[start:i]))
				start = i + 1
			}
		}
	}
	return append(items, trimSpace(tokens[start:]))
}

func trimSpace(tokens []token) []token {
	for len(tokens) > 0 && tokens[0].kind == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].kind == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// importName returns the quoted name of an item that imports a single file.
// Items with url(), media queries or anything else are plain CSS imports.
func importName(item []token) (string, bool) {
	if len(item) != 1 || item[0].kind != css.StringToken {
		return "", false
	}
	return unquote(item[0].text), true
}

func isRemote(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "//")
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func render(tokens []token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.text)
	}
	return b.String()
}

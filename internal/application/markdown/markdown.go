// Package markdown renders the small markdown subset notes are authored
// in: '#'/'##'/'###' headings, triple-backtick code fences, '- ' list
// runs, and blank-line-separated paragraphs. Anything outside the subset
// (emphasis, links, raw HTML) is literal text and is escaped.
//
// The input is parsed line by line into a block sequence before
// rendering, so constructs cannot bleed into each other: a heading line
// inside a code fence stays code, and a list directly after a paragraph
// starts its own list.
package markdown

import (
	"html"
	"strings"
)

// BlockKind identifies a parsed block.
type BlockKind int

const (
	KindParagraph BlockKind = iota
	KindHeading
	KindCode
	KindList
)

// Block is one parsed unit of the source document.
type Block struct {
	Kind  BlockKind
	Level int      // heading level 1-3, KindHeading only
	Text  string   // heading text or joined paragraph text
	Lines []string // raw code lines, KindCode only
	Items []string // list item texts, KindList only
}

// ToHTML converts markdown source to HTML markup. Deterministic and pure;
// empty input yields empty output.
func ToHTML(source string) string {
	return Render(Parse(source))
}

// Parse splits markdown source into a block sequence.
// POST: Returned blocks are in document order; no block is empty
func Parse(source string) []Block {
	if source == "" {
		return nil
	}

	lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")
	var blocks []Block
	var para []string

	flushPara := func() {
		if len(para) > 0 {
			blocks = append(blocks, Block{Kind: KindParagraph, Text: strings.Join(para, "\n")})
			para = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]

		switch {
		case isFence(line):
			flushPara()
			var code []string
			i++
			// An unterminated fence swallows the rest of the document.
			for ; i < len(lines); i++ {
				if isFence(lines[i]) {
					break
				}
				code = append(code, lines[i])
			}
			blocks = append(blocks, Block{Kind: KindCode, Lines: code})

		case headingLevel(line) > 0:
			flushPara()
			level := headingLevel(line)
			blocks = append(blocks, Block{
				Kind:  KindHeading,
				Level: level,
				Text:  line[level+1:],
			})

		case strings.HasPrefix(line, "- "):
			flushPara()
			items := []string{line[2:]}
			// A contiguous run of list lines is one list.
			for i+1 < len(lines) && strings.HasPrefix(lines[i+1], "- ") {
				i++
				items = append(items, lines[i][2:])
			}
			blocks = append(blocks, Block{Kind: KindList, Items: items})

		case strings.TrimSpace(line) == "":
			flushPara()

		default:
			para = append(para, line)
		}
	}
	flushPara()

	return blocks
}

// Render converts a block sequence to HTML markup. Block markup is joined
// with newlines; empty paragraphs never appear in the output.
func Render(blocks []Block) string {
	var out []string
	for _, b := range blocks {
		switch b.Kind {
		case KindHeading:
			tag := [...]string{1: "h1", 2: "h2", 3: "h3"}[b.Level]
			out = append(out, "<"+tag+">"+html.EscapeString(b.Text)+"</"+tag+">")
		case KindCode:
			out = append(out, "<pre><code>"+html.EscapeString(strings.Join(b.Lines, "\n"))+"</code></pre>")
		case KindList:
			var sb strings.Builder
			sb.WriteString("<ul>")
			for _, item := range b.Items {
				sb.WriteString("<li>" + html.EscapeString(item) + "</li>")
			}
			sb.WriteString("</ul>")
			out = append(out, sb.String())
		case KindParagraph:
			out = append(out, "<p>"+html.EscapeString(b.Text)+"</p>")
		}
	}
	return strings.Join(out, "\n")
}

// isFence reports whether line opens or closes a code fence. An info
// string after the backticks ("```go") is accepted and dropped; it never
// appears in the code content.
func isFence(line string) bool {
	return strings.HasPrefix(line, "```")
}

// headingLevel returns 1-3 for '# ', '## ', '### ' lines, 0 otherwise.
// Longer prefixes are checked first so '###' is never read as '#'.
func headingLevel(line string) int {
	switch {
	case strings.HasPrefix(line, "### "):
		return 3
	case strings.HasPrefix(line, "## "):
		return 2
	case strings.HasPrefix(line, "# "):
		return 1
	}
	return 0
}

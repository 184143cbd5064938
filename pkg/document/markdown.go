package document

import (
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading
	blockBullet
	blockNumbered
)

type block struct {
	kind blockKind

	// heading level, 1 based
	level int

	text string
}

// parseMarkdown reduces markdown to the flat block sequence the PDF layout
// works with: headings, paragraphs, and list items. Inline styling is
// dropped, the PDF styles by block kind only.
func parseMarkdown(source string) []block {
	var blocks []block

	src := []byte(source)
	doc := parser.NewParser().Parse(text.NewReader(src))

	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch n.Kind() {
		case ast.KindHeading:
			heading := n.(*ast.Heading)

			blocks = append(blocks, block{
				kind:  blockHeading,
				level: heading.Level,
				text:  nodeText(n, src),
			})

			return ast.WalkSkipChildren, nil

		case ast.KindListItem:
			kind := blockBullet

			if list, ok := n.Parent().(*ast.List); ok && list.IsOrdered() {
				kind = blockNumbered
			}

			if val := listItemText(n, src); val != "" {
				blocks = append(blocks, block{
					kind: kind,
					text: val,
				})
			}

			return ast.WalkContinue, nil

		case ast.KindParagraph:
			if n.Parent() != nil && n.Parent().Kind() == ast.KindListItem {
				return ast.WalkSkipChildren, nil
			}

			if val := nodeText(n, src); val != "" {
				blocks = append(blocks, block{
					kind: blockParagraph,
					text: val,
				})
			}

			return ast.WalkSkipChildren, nil
		}

		return ast.WalkContinue, nil
	})

	return blocks
}

func nodeText(n ast.Node, source []byte) string {
	var b strings.Builder

	lines := n.Lines()

	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)

		b.Write(segment.Value(source))
		b.WriteByte(' ')
	}

	return cleanInline(b.String())
}

// listItemText takes the first text-bearing child; nested lists are walked
// as their own list items.
func listItemText(n ast.Node, source []byte) string {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if c.Kind() == ast.KindList {
			continue
		}

		if c.Lines().Len() > 0 {
			return nodeText(c, source)
		}
	}

	return ""
}

var inlineCleaner = strings.NewReplacer(
	"**", "",
	"__", "",
	"`", "",
)

func cleanInline(val string) string {
	return strings.Join(strings.Fields(inlineCleaner.Replace(val)), " ")
}

// Package htmlutils has helpers over golang.org/x/net/html trees
package htmlutils

import (
	"bytes"
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses source as the content of context. A nil context
// parses it as body content.
func ParseFragment(source io.Reader, context *html.Node) ([]*html.Node, error) {
	if context == nil {
		context = &html.Node{
			Type:     html.ElementNode,
			Data:     "body",
			DataAtom: atom.Body,
		}
	}

	return html.ParseFragment(source, context)
}

// FragmentFromString returns the first node of a body fragment
func FragmentFromString(htmlCode string) *html.Node {
	nodes, err := ParseFragment(strings.NewReader(strings.TrimSpace(htmlCode)), nil)
	if err != nil {
		panic(err)
	}

	if len(nodes) == 0 {
		return nil
	}

	return nodes[0]
}

func Render(node *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, node); err != nil {
		panic(err)
	}

	return buf.String()
}

package vdom

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

// Debug writes an indented outline of the tree to w
func Debug(w io.Writer, node Node) {
	debug(w, node, 0)
}

func debug(w io.Writer, node Node, depth int) {
	sp := strings.Repeat("  ", depth)

	if e, ok := node.(*Element); ok {
		fmt.Fprintf(w, "%s%s", sp, e.Tag)
		for _, attr := range slices.Sorted(maps.Keys(e.Attrs)) {
			fmt.Fprintf(w, " %s=%v", attr, e.Attrs[attr])
		}
		for _, typ := range slices.Sorted(maps.Keys(e.Handlers)) {
			fmt.Fprintf(w, " on%s", typ)
		}
		fmt.Fprintln(w)

		for _, c := range e.Children {
			debug(w, c, depth+1)
		}
	} else {
		fmt.Fprintf(w, "%s%q\n", sp, node.(*TextNode).Data)
	}
}

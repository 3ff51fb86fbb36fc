package web

import (
	"bufio"
	"fmt"
	"io"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteHTML serializes instructions as HTML, one container per line.
// Attributes are written in name order so output is reproducible.
func WriteHTML(w io.Writer, ins Instructions) error {
	bw := bufio.NewWriter(w)

	for i, n := range ins {
		if err := html.Render(bw, toHTML(n)); err != nil {
			return fmt.Errorf("rendering node %d: %w", i, err)
		}

		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}

func toHTML(n Node) *html.Node {
	el := &html.Node{
		Type:     html.ElementNode,
		Data:     n.Tag,
		DataAtom: atom.Lookup([]byte(n.Tag)),
	}

	names := make([]string, 0, len(n.Attributes))
	for k := range n.Attributes {
		names = append(names, k)
	}

	sort.Strings(names)

	for _, k := range names {
		el.Attr = append(el.Attr, html.Attribute{Key: k, Val: n.Attributes[k]})
	}

	if n.Text != nil && *n.Text != "" {
		el.AppendChild(&html.Node{Type: html.TextNode, Data: *n.Text})
	}

	for _, c := range n.Children {
		el.AppendChild(toHTML(c))
	}

	return el
}

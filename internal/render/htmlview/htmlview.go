// Package htmlview renders the view tree as an HTML document.
package htmlview

import (
	"io"
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/Rorical/NearCounter/internal/view"
)

// Render writes a full HTML page for tree to w.
func Render(w io.Writer, tree *view.Node) error {
	return Page(tree).Render(w)
}

// Page wraps the tree in a document.
func Page(tree *view.Node) g.Node {
	return h.Doctype(
		h.HTML(
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text("NEAR counter")),
			),
			h.Body(Node(tree)),
		),
	)
}

// Node converts one view node and its children.
func Node(n *view.Node) g.Node {
	if n == nil {
		return nil
	}

	attrs := []g.Node{}
	if n.ID != "" {
		attrs = append(attrs, h.ID(n.ID))
	}
	if len(n.Classes) > 0 {
		attrs = append(attrs, h.Class(strings.Join(n.Classes, " ")))
	}
	if n.Hidden {
		attrs = append(attrs, h.Style("display: none"))
	}
	if n.Disabled {
		attrs = append(attrs, h.Disabled())
	}
	if n.OnClick != nil {
		attrs = append(attrs, h.Data("on-click", n.OnClick.Name()))
	}
	if n.Text != "" {
		attrs = append(attrs, g.Text(n.Text))
	}
	for _, c := range n.Children {
		attrs = append(attrs, Node(c))
	}

	return g.El(n.Tag, attrs...)
}

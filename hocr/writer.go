package hocr

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// WriteFile writes doc as hOCR to filename.
func WriteFile(filename string, doc *Document) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := Write(f, doc); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Write renders doc as an hOCR document.
func Write(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	if err := html.Render(bw, buildTree(doc)); err != nil {
		return fmt.Errorf("rendering hOCR: %w", err)
	}
	if err := bw.WriteByte('\n'); err != nil {
		return fmt.Errorf("rendering hOCR: %w", err)
	}
	return bw.Flush()
}

// buildTree creates the html node tree of doc.
func buildTree(doc *Document) *html.Node {
	root := &html.Node{Type: html.DocumentNode}
	root.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	htmlAttrs := []html.Attribute{{Key: "xmlns", Val: "http://www.w3.org/1999/xhtml"}}
	if doc.Language != "" {
		htmlAttrs = append(htmlAttrs, html.Attribute{Key: "lang", Val: doc.Language})
	}
	htmlNode := element(atom.Html, htmlAttrs...)
	root.AppendChild(htmlNode)

	head := element(atom.Head)
	htmlNode.AppendChild(head)

	title := element(atom.Title)
	title.AppendChild(text(doc.Title))
	head.AppendChild(title)
	head.AppendChild(element(atom.Meta,
		html.Attribute{Key: "http-equiv", Val: "Content-Type"},
		html.Attribute{Key: "content", Val: "text/html;charset=utf-8"}))

	names := make([]string, 0, len(doc.Metadata))
	for name := range doc.Metadata {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		head.AppendChild(element(atom.Meta,
			html.Attribute{Key: "name", Val: name},
			html.Attribute{Key: "content", Val: doc.Metadata[name]}))
	}

	body := element(atom.Body)
	htmlNode.AppendChild(body)

	for _, page := range doc.Pages {
		pageNode := element(atom.Div,
			html.Attribute{Key: "class", Val: page.Class()},
			html.Attribute{Key: "id", Val: page.ID},
			html.Attribute{Key: "title", Val: fmt.Sprintf("%s; ppageno %d", page.BBox, page.Number-1)})
		body.AppendChild(text("\n"))
		body.AppendChild(pageNode)

		for _, block := range page.Blocks {
			blockNode := element(atom.Div,
				html.Attribute{Key: "class", Val: block.Class()},
				html.Attribute{Key: "id", Val: block.ID},
				html.Attribute{Key: "title", Val: block.BBox.String()})
			pageNode.AppendChild(text("\n  "))
			pageNode.AppendChild(blockNode)

			for _, line := range block.Lines {
				lineNode := element(atom.Span,
					html.Attribute{Key: "class", Val: line.Class()},
					html.Attribute{Key: "id", Val: line.ID},
					html.Attribute{Key: "title", Val: line.BBox.String()})
				lineNode.AppendChild(text(line.Text))
				blockNode.AppendChild(text("\n    "))
				blockNode.AppendChild(lineNode)
			}
			blockNode.AppendChild(text("\n  "))
		}
		pageNode.AppendChild(text("\n"))
	}
	body.AppendChild(text("\n"))

	return root
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String(), Attr: attrs}
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

package hocr

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ErrNoPages is returned when an hOCR document has no ocr_page element.
var ErrNoPages = errors.New("hocr: no ocr_page elements found")

// ReadFile reads an hOCR document from filename.
func ReadFile(filename string) (*Document, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses an hOCR document. The character encoding is taken from the
// document's meta charset declaration, defaulting to UTF-8.
func Read(r io.Reader) (*Document, error) {
	decoded, err := charset.NewReader(r, "text/html")
	if err != nil {
		return nil, fmt.Errorf("detecting charset: %w", err)
	}

	root, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	doc := &Document{Metadata: make(map[string]string)}
	readHead(doc, root)

	for _, n := range findByClass(root, ClassPage) {
		doc.Pages = append(doc.Pages, readPage(n))
	}
	if len(doc.Pages) == 0 {
		return nil, ErrNoPages
	}
	return doc, nil
}

// ParseTitle splits an hOCR title attribute into its properties.
//
//	"bbox 100 200 300 400; x_wconf 95" -> {"bbox": [100 200 300 400], "x_wconf": [95]}
func ParseTitle(title string) map[string][]string {
	props := make(map[string][]string)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		props[fields[0]] = fields[1:]
	}
	return props
}

// ParseBox extracts the bbox property of an hOCR title attribute.
func ParseBox(title string) (Box, bool) {
	values, ok := ParseTitle(title)["bbox"]
	if !ok || len(values) < 4 {
		return Box{}, false
	}

	var coords [4]int
	for i := range coords {
		v, err := strconv.ParseFloat(values[i], 64)
		if err != nil {
			return Box{}, false
		}
		coords[i] = int(v)
	}
	return Box{X0: coords[0], Y0: coords[1], X1: coords[2], Y1: coords[3]}, true
}

func readHead(doc *Document, root *html.Node) {
	if n := findElement(root, "html"); n != nil {
		doc.Language = getAttr(n, "lang")
	}

	head := findElement(root, "head")
	if head == nil {
		return
	}

	for c := head.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		switch c.Data {
		case "title":
			doc.Title = getTextContent(c)
		case "meta":
			name, content := getAttr(c, "name"), getAttr(c, "content")
			if name != "" && content != "" {
				doc.Metadata[name] = content
			}
		}
	}
}

func readPage(n *html.Node) Page {
	title := getAttr(n, "title")
	page := Page{ID: getAttr(n, "id")}
	page.BBox, _ = ParseBox(title)
	if v, ok := ParseTitle(title)["ppageno"]; ok && len(v) > 0 {
		if no, err := strconv.Atoi(v[0]); err == nil {
			page.Number = no + 1
		}
	}

	for _, bn := range findByClass(n, ClassArea) {
		block := Block{ID: getAttr(bn, "id")}
		block.BBox, _ = ParseBox(getAttr(bn, "title"))
		for _, ln := range findByClass(bn, ClassLine) {
			line := Line{ID: getAttr(ln, "id"), Text: getTextContent(ln)}
			line.BBox, _ = ParseBox(getAttr(ln, "title"))
			block.Lines = append(block.Lines, line)
		}
		page.Blocks = append(page.Blocks, block)
	}
	return page
}

// findByClass returns the outermost descendants of n carrying class, in
// document order.
func findByClass(n *html.Node, class string) []*html.Node {
	var found []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && hasClass(c, class) {
				found = append(found, c)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return found
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(getAttr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}

func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tagName); found != nil {
			return found
		}
	}
	return nil
}

func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}

func getTextContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

package model

// Document represents the decoded content of a PDF document
type Document struct {
	Metadata Metadata
	Pages    []*Page
}

// Metadata contains document-level information
type Metadata struct {
	Title    string
	Author   string
	Producer string
	// Custom metadata
	Custom map[string]string
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Metadata: Metadata{
			Custom: make(map[string]string),
		},
		Pages: make([]*Page, 0),
	}
}

// AddPage adds a page to the document and assigns its page number
func (d *Document) AddPage(page *Page) {
	page.Number = len(d.Pages) + 1
	d.Pages = append(d.Pages, page)
}

// GetPage returns a page by number (1-indexed)
func (d *Document) GetPage(number int) *Page {
	if number < 1 || number > len(d.Pages) {
		return nil
	}
	return d.Pages[number-1]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Characters returns every Character of every page in page order
func (d *Document) Characters() []*Character {
	var chars []*Character
	for _, page := range d.Pages {
		chars = append(chars, page.Characters()...)
	}
	return chars
}

// Validate checks the geometry of all pages and returns the first error found.
func (d *Document) Validate() error {
	for _, page := range d.Pages {
		if err := page.Validate(); err != nil {
			return err
		}
	}
	return nil
}

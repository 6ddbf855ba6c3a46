package source

import (
	"errors"
	"fmt"
)

// ErrNotPDF is returned when the input file is not a PDF document.
var ErrNotPDF = errors.New("not a PDF document")

// Table is an ordered list of rows, each an ordered list of cells. An empty
// string stands for a null cell. Rows may differ in length.
type Table [][]string

// Page is one page of an extracted document.
type Page struct {
	// Number is the 1-indexed page number in the source file.
	Number int
	// Text is the plain text of the page, "" when none could be extracted.
	Text   string
	Tables []Table
}

// Document is the extraction result handed to reconstruction.
type Document struct {
	Pages []Page
	// FrontText is the plain text of page 1 of the file, filled even when
	// page 1 is not among Pages. Empty means the first entry of Pages
	// stands in for it.
	FrontText string
}

// TableCount returns the number of tables across all pages.
func (d *Document) TableCount() int {
	n := 0
	for _, p := range d.Pages {
		n += len(p.Tables)
	}
	return n
}

// Loader produces a Document from a file path.
type Loader interface {
	Load(path string) (*Document, error)
}

// Static is a Loader that returns a fixed document regardless of path. It
// serves tests and callers that run table extraction elsewhere.
type Static struct {
	Doc *Document
	Err error
}

// Load implements Loader.
func (s Static) Load(path string) (*Document, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.Doc == nil {
		return nil, fmt.Errorf("no document for %s", path)
	}
	return s.Doc, nil
}

// LoaderFunc adapts a function to the Loader interface.
type LoaderFunc func(path string) (*Document, error)

// Load implements Loader.
func (f LoaderFunc) Load(path string) (*Document, error) {
	return f(path)
}

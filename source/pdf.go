package source

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tsawler/tabula/layout"
	tmodel "github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/pages"
	"github.com/tsawler/tabula/reader"
	"github.com/tsawler/tabula/tables"
	"github.com/tsawler/tabula/text"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/distsurvey/format"
)

// PDFLoader extracts tables and page text from a PDF file with the tabula
// reader and its geometric table detector.
type PDFLoader struct {
	// Pages restricts extraction to the given 1-indexed pages. Empty means
	// every page.
	Pages []int
	// ExcludeHeaders drops fragments recognized as running headers.
	ExcludeHeaders bool
	// ExcludeFooters drops fragments recognized as running footers.
	ExcludeFooters bool
	// Detector configures table detection. The zero value selects
	// tables.DefaultConfig.
	Detector tables.Config
	Logger   *zap.Logger
	// PlainText extracts page text when fragment assembly yields nothing.
	// Nil selects ledongthuc/pdf.
	PlainText TextExtractor
}

// NewPDFLoader returns a loader with the default detector configuration.
func NewPDFLoader() *PDFLoader {
	return &PDFLoader{Detector: tables.DefaultConfig()}
}

type extractedPage struct {
	index     int
	page      *pages.Page
	fragments []text.TextFragment
}

func (l *PDFLoader) logger() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}

func (l *PDFLoader) detectorConfig() tables.Config {
	if l.Detector == (tables.Config{}) {
		return tables.DefaultConfig()
	}
	return l.Detector
}

// Load implements Loader.
func (l *PDFLoader) Load(path string) (*Document, error) {
	f, err := format.DetectFile(path)
	if err != nil {
		return nil, err
	}
	if f != format.PDF {
		return nil, fmt.Errorf("%w: detected %s", ErrNotPDF, f)
	}

	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer r.Close()

	indices, err := l.resolvePages(r)
	if err != nil {
		return nil, err
	}

	extracted, err := l.collect(r, indices)
	if err != nil {
		return nil, err
	}

	if l.ExcludeHeaders || l.ExcludeFooters {
		if err := l.filterRunning(r, extracted); err != nil {
			return nil, err
		}
	}

	detector := tables.NewGeometricDetector()
	if err := detector.Configure(l.detectorConfig()); err != nil {
		return nil, fmt.Errorf("failed to configure table detector: %w", err)
	}

	log := l.logger()
	doc := &Document{Pages: make([]Page, 0, len(extracted))}
	for _, ep := range extracted {
		width, _ := ep.page.Width()
		height, _ := ep.page.Height()

		mp := tmodel.NewPage(width, height)
		mp.RawText = toModelFragments(ep.fragments)

		detected, err := detector.Detect(mp)
		if err != nil {
			return nil, fmt.Errorf("failed to detect tables on page %d: %w", ep.index+1, err)
		}

		p := Page{
			Number: ep.index + 1,
			Text:   assembleText(ep.fragments),
			Tables: make([]Table, 0, len(detected)),
		}
		for _, t := range detected {
			p.Tables = append(p.Tables, toTable(t))
		}
		log.Debug("page extracted",
			zap.Int("page", p.Number),
			zap.Int("fragments", len(ep.fragments)),
			zap.Int("tables", len(p.Tables)))
		doc.Pages = append(doc.Pages, p)
	}

	doc.FrontText = l.frontText(path, doc, func() ([]text.TextFragment, error) {
		page, err := r.GetPage(0)
		if err != nil {
			return nil, err
		}
		return r.ExtractTextFragments(page)
	})
	return doc, nil
}

// frontText returns the text of page 1. A selected page 1 is reused and its
// Text filled in place when it needs the plain-text fallback; otherwise read
// supplies the page's fragments. Failures yield "".
func (l *PDFLoader) frontText(path string, doc *Document, read func() ([]text.TextFragment, error)) string {
	if len(doc.Pages) > 0 && doc.Pages[0].Number == 1 {
		p := &doc.Pages[0]
		if strings.TrimSpace(p.Text) == "" {
			l.fallbackText(path, p)
		}
		return p.Text
	}

	front := Page{Number: 1}
	fragments, err := read()
	if err != nil {
		l.logger().Debug("first page unreadable", zap.Error(err))
	} else {
		front.Text = assembleText(fragments)
	}
	if strings.TrimSpace(front.Text) == "" {
		l.fallbackText(path, &front)
	}
	return front.Text
}

// fallbackText fills the text of p from the plain-text extractor. Failures
// leave the page text empty; company info then falls back to placeholders.
func (l *PDFLoader) fallbackText(path string, p *Page) {
	ex := l.PlainText
	if ex == nil {
		ex = PlainTextExtractor{}
	}
	s, err := ex.PageText(path, p.Number)
	if err != nil {
		l.logger().Debug("plain text fallback failed", zap.Int("page", p.Number), zap.Error(err))
		return
	}
	p.Text = norm.NFC.String(s)
}

// resolvePages converts the 1-indexed page selection into sorted, unique
// 0-indexed page numbers.
func (l *PDFLoader) resolvePages(r *reader.Reader) ([]int, error) {
	pageCount, err := r.PageCount()
	if err != nil {
		return nil, fmt.Errorf("failed to get page count: %w", err)
	}

	if len(l.Pages) == 0 {
		indices := make([]int, pageCount)
		for i := range indices {
			indices[i] = i
		}
		return indices, nil
	}

	seen := make(map[int]bool)
	var indices []int
	for _, p := range l.Pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		if !seen[p-1] {
			seen[p-1] = true
			indices = append(indices, p-1)
		}
	}
	sort.Ints(indices)
	return indices, nil
}

func (l *PDFLoader) collect(r *reader.Reader, indices []int) ([]extractedPage, error) {
	out := make([]extractedPage, 0, len(indices))
	for _, i := range indices {
		page, err := r.GetPage(i)
		if err != nil {
			return nil, fmt.Errorf("failed to get page %d: %w", i+1, err)
		}
		fragments, err := r.ExtractTextFragments(page)
		if err != nil {
			return nil, fmt.Errorf("failed to extract text from page %d: %w", i+1, err)
		}
		out = append(out, extractedPage{index: i, page: page, fragments: fragments})
	}
	return out, nil
}

// filterRunning removes running headers and footers from the extracted
// pages. Detection needs repeating patterns, so it always looks at every
// page of the document, not just the selected ones.
func (l *PDFLoader) filterRunning(r *reader.Reader, extracted []extractedPage) error {
	count, err := r.PageCount()
	if err != nil {
		return fmt.Errorf("failed to get page count: %w", err)
	}

	all := make([]layout.PageFragments, 0, count)
	for i := 0; i < count; i++ {
		page, err := r.GetPage(i)
		if err != nil {
			continue
		}
		fragments, err := r.ExtractTextFragments(page)
		if err != nil {
			continue
		}
		width, _ := page.Width()
		height, _ := page.Height()
		all = append(all, layout.PageFragments{
			PageIndex:  i,
			PageWidth:  width,
			PageHeight: height,
			Fragments:  fragments,
		})
	}

	result := layout.NewHeaderFooterDetector().Detect(all)
	if result == nil || !result.HasHeadersOrFooters() {
		return nil
	}

	for i := range extracted {
		ep := &extracted[i]
		height, _ := ep.page.Height()
		kept := result.FilterFragments(ep.index, ep.fragments, height)
		ep.fragments = restoreSide(ep.fragments, kept, height, l.ExcludeHeaders, l.ExcludeFooters)
	}
	return nil
}

// restoreSide puts back the removed fragments on the side of the page the
// caller did not ask to exclude. PDF coordinates grow upwards, so headers
// sit in the upper half.
func restoreSide(all, kept []text.TextFragment, height float64, headers, footers bool) []text.TextFragment {
	if headers && footers {
		return kept
	}

	remaining := make(map[text.TextFragment]int, len(kept))
	for _, f := range kept {
		remaining[f]++
	}

	out := make([]text.TextFragment, 0, len(all))
	for _, f := range all {
		if remaining[f] > 0 {
			remaining[f]--
			out = append(out, f)
			continue
		}
		upper := f.Y > height/2
		if (upper && !headers) || (!upper && !footers) {
			out = append(out, f)
		}
	}
	return out
}

func toModelFragments(fragments []text.TextFragment) []tmodel.TextFragment {
	result := make([]tmodel.TextFragment, len(fragments))
	for i, f := range fragments {
		result[i] = tmodel.TextFragment{
			Text:     f.Text,
			BBox:     tmodel.BBox{X: f.X, Y: f.Y, Width: f.Width, Height: f.Height},
			FontSize: f.FontSize,
			FontName: f.FontName,
		}
	}
	return result
}

// toTable flattens a detected table into cell strings. Merged cells keep
// their text in the origin cell and leave the covered cells empty.
func toTable(t *tmodel.Table) Table {
	out := make(Table, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = norm.NFC.String(c.Text)
		}
		out = append(out, cells)
	}
	return out
}

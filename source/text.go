package source

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/tsawler/tabula/text"
	"golang.org/x/text/unicode/norm"
)

// assembleText orders fragments top to bottom, left to right and joins them
// into lines. Fragments further apart than a third of the font size are
// separated by a space.
func assembleText(fragments []text.TextFragment) string {
	if len(fragments) == 0 {
		return ""
	}

	sorted := make([]text.TextFragment, len(fragments))
	copy(sorted, fragments)
	sort.SliceStable(sorted, func(i, j int) bool {
		yDiff := sorted[i].Y - sorted[j].Y
		if math.Abs(yDiff) > sorted[i].Height*0.5 {
			return yDiff > 0
		}
		return sorted[i].X < sorted[j].X
	})

	var sb strings.Builder
	lastY := sorted[0].Y
	lastEndX := sorted[0].X
	for i, frag := range sorted {
		switch {
		case i == 0:
		case math.Abs(frag.Y-lastY) > frag.Height*0.5:
			sb.WriteString("\n")
		case frag.X-lastEndX > frag.FontSize*0.3:
			sb.WriteString(" ")
		}
		sb.WriteString(frag.Text)
		lastY = frag.Y
		lastEndX = frag.X + frag.Width
	}
	return norm.NFC.String(sb.String())
}

// TextExtractor returns the plain text of one 1-indexed page.
type TextExtractor interface {
	PageText(path string, page int) (string, error)
}

// PlainTextExtractor reads page text with ledongthuc/pdf. It copes with some
// font encodings the fragment extractor leaves empty.
type PlainTextExtractor struct{}

// PageText implements TextExtractor.
func (PlainTextExtractor) PageText(path string, page int) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("could not read PDF %s: %w", path, err)
	}
	defer f.Close()

	if page < 1 || page > r.NumPage() {
		return "", fmt.Errorf("page %d out of range (1-%d)", page, r.NumPage())
	}
	p := r.Page(page)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d has no content", page)
	}
	s, err := p.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", page, err)
	}
	return s, nil
}

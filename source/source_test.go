package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/text"
)

func TestStatic(t *testing.T) {
	doc := &Document{Pages: []Page{{Number: 1, Tables: []Table{{{"a", "b", "c"}}}}}}

	got, err := Static{Doc: doc}.Load("any.pdf")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got != doc {
		t.Error("Load() should return the fixed document")
	}

	wantErr := errors.New("boom")
	if _, err := (Static{Err: wantErr}).Load("x.pdf"); !errors.Is(err, wantErr) {
		t.Errorf("Load() error = %v, want %v", err, wantErr)
	}

	if _, err := (Static{}).Load("x.pdf"); err == nil {
		t.Error("expected error for an empty Static")
	}
}

func TestLoaderFunc(t *testing.T) {
	var called string
	l := LoaderFunc(func(path string) (*Document, error) {
		called = path
		return &Document{}, nil
	})
	if _, err := l.Load("report.pdf"); err != nil {
		t.Fatal(err)
	}
	if called != "report.pdf" {
		t.Errorf("called with %q", called)
	}
}

func TestTableCount(t *testing.T) {
	doc := &Document{Pages: []Page{
		{Number: 1, Tables: []Table{{}, {}}},
		{Number: 2},
		{Number: 3, Tables: []Table{{}}},
	}}
	if got := doc.TableCount(); got != 3 {
		t.Errorf("TableCount() = %d, want 3", got)
	}
}

func TestPDFLoaderRejectsNonPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.pdf")
	if err := os.WriteFile(path, []byte("<html><body>측정결과</body></html>"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := NewPDFLoader().Load(path)
	if !errors.Is(err, ErrNotPDF) {
		t.Errorf("Load() error = %v, want ErrNotPDF", err)
	}
}

func TestPDFLoaderMissingFile(t *testing.T) {
	_, err := NewPDFLoader().Load(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("expected error for a missing file")
	}
	if errors.Is(err, ErrNotPDF) {
		t.Error("a missing file is not a format error")
	}
}

func TestPDFLoaderSample(t *testing.T) {
	path := filepath.Join("testdata", "sample.pdf")
	if _, err := os.Stat(path); err != nil {
		t.Skip("testdata/sample.pdf not present")
	}

	doc, err := NewPDFLoader().Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(doc.Pages) == 0 {
		t.Fatal("expected at least one page")
	}
	if doc.Pages[0].Number != 1 {
		t.Errorf("first page number = %d, want 1", doc.Pages[0].Number)
	}
}

func TestAssembleText(t *testing.T) {
	frags := []text.TextFragment{
		{Text: "결과표", X: 200, Y: 700, Width: 30, Height: 10, FontSize: 10},
		{Text: "공장명", X: 50, Y: 680, Width: 30, Height: 10, FontSize: 10},
		{Text: "작업환경측정", X: 50, Y: 700, Width: 60, Height: 10, FontSize: 10},
		{Text: ":", X: 85, Y: 680, Width: 3, Height: 10, FontSize: 10},
	}
	want := "작업환경측정 결과표\n공장명 :"
	if got := assembleText(frags); got != want {
		t.Errorf("assembleText() = %q, want %q", got, want)
	}
	if got := assembleText(nil); got != "" {
		t.Errorf("assembleText(nil) = %q", got)
	}
}

func TestRestoreSide(t *testing.T) {
	header := text.TextFragment{Text: "머리말", Y: 780}
	body := text.TextFragment{Text: "본문", Y: 400}
	footer := text.TextFragment{Text: "- 1 -", Y: 20}
	all := []text.TextFragment{header, body, footer}
	kept := []text.TextFragment{body}

	tests := []struct {
		name             string
		headers, footers bool
		want             []string
	}{
		{"both", true, true, []string{"본문"}},
		{"headers only", true, false, []string{"본문", "- 1 -"}},
		{"footers only", false, true, []string{"머리말", "본문"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, f := range restoreSide(all, kept, 800, tt.headers, tt.footers) {
				got = append(got, f.Text)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("restoreSide() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToTable(t *testing.T) {
	tbl := model.NewTable(2, 3)
	tbl.Rows[0][0].Text = "목공"
	tbl.Rows[0][2].Text = "비계설치"
	tbl.Rows[1][1].Text = "톨루엔"

	want := Table{{"목공", "", "비계설치"}, {"", "톨루엔", ""}}
	if diff := cmp.Diff(want, toTable(tbl)); diff != "" {
		t.Errorf("toTable() mismatch (-want +got):\n%s", diff)
	}
}

type stubText struct {
	text string
	err  error
}

func (s stubText) PageText(string, int) (string, error) { return s.text, s.err }

func TestFallbackText(t *testing.T) {
	l := &PDFLoader{PlainText: stubText{text: "공장명 : 한빛"}}
	p := Page{Number: 1}
	l.fallbackText("x.pdf", &p)
	if p.Text != "공장명 : 한빛" {
		t.Errorf("Text = %q", p.Text)
	}

	l = &PDFLoader{PlainText: stubText{err: errors.New("bad font")}}
	p = Page{Number: 1}
	l.fallbackText("x.pdf", &p)
	if p.Text != "" {
		t.Errorf("failed fallback should leave text empty, got %q", p.Text)
	}
}

func TestFrontText(t *testing.T) {
	frags := []text.TextFragment{
		{Text: "공장명", X: 50, Y: 700, Width: 30, Height: 10, FontSize: 10},
		{Text: ": 한빛", X: 90, Y: 700, Width: 30, Height: 10, FontSize: 10},
	}
	unread := func() ([]text.TextFragment, error) {
		return nil, errors.New("page 1 read twice")
	}

	t.Run("selected first page is reused", func(t *testing.T) {
		doc := &Document{Pages: []Page{{Number: 1, Text: "공장명 : 대한"}}}
		if got := (&PDFLoader{}).frontText("x.pdf", doc, unread); got != "공장명 : 대한" {
			t.Errorf("frontText() = %q", got)
		}
	})

	t.Run("blank selected first page uses fallback", func(t *testing.T) {
		l := &PDFLoader{PlainText: stubText{text: "공장명 : 대한"}}
		doc := &Document{Pages: []Page{{Number: 1}}}
		if got := l.frontText("x.pdf", doc, unread); got != "공장명 : 대한" {
			t.Errorf("frontText() = %q", got)
		}
		if doc.Pages[0].Text != "공장명 : 대한" {
			t.Errorf("page text = %q, want it filled", doc.Pages[0].Text)
		}
	})

	t.Run("unselected first page is read", func(t *testing.T) {
		doc := &Document{Pages: []Page{{Number: 2, Text: "공장명 : 다른회사"}}}
		got := (&PDFLoader{}).frontText("x.pdf", doc, func() ([]text.TextFragment, error) {
			return frags, nil
		})
		if got != "공장명 : 한빛" {
			t.Errorf("frontText() = %q", got)
		}
		if doc.Pages[0].Text != "공장명 : 다른회사" {
			t.Errorf("selected page text changed to %q", doc.Pages[0].Text)
		}
	})

	t.Run("unreadable first page uses fallback", func(t *testing.T) {
		l := &PDFLoader{PlainText: stubText{text: "공장명 : 대한"}}
		doc := &Document{Pages: []Page{{Number: 3}}}
		got := l.frontText("x.pdf", doc, func() ([]text.TextFragment, error) {
			return nil, errors.New("broken content stream")
		})
		if got != "공장명 : 대한" {
			t.Errorf("frontText() = %q", got)
		}
	})

	t.Run("everything fails", func(t *testing.T) {
		l := &PDFLoader{PlainText: stubText{err: errors.New("bad font")}}
		got := l.frontText("x.pdf", &Document{}, func() ([]text.TextFragment, error) {
			return nil, nil
		})
		if got != "" {
			t.Errorf("frontText() = %q, want empty", got)
		}
	})
}

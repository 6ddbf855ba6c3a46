package cell

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"trim", "  목공  ", "목공"},
		{"newline", "비계\n설치", "비계 설치"},
		{"crlf", "거푸집\r\n해체", "거푸집 해체"},
		{"decomposed", norm.NFD.String("톨루엔"), "톨루엔"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clean(tt.in); got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCompact(t *testing.T) {
	if got := Compact("공 정 명"); got != "공정명" {
		t.Errorf("Compact = %q, want %q", got, "공정명")
	}
}

func TestJoin(t *testing.T) {
	row := []string{"공정", "", "작업\n내용", ""}
	if got := Join(row); got != "공정작업\n내용" {
		t.Errorf("Join = %q", got)
	}
}

func TestAt(t *testing.T) {
	row := []string{"a", " b\n c "}
	if got := At(row, 1); got != "b  c" {
		t.Errorf("At(1) = %q", got)
	}
	if got := At(row, 5); got != "" {
		t.Errorf("At(5) = %q, want empty", got)
	}
	if got := At(row, -1); got != "" {
		t.Errorf("At(-1) = %q, want empty", got)
	}
}

func TestDigits(t *testing.T) {
	tests := []struct {
		in       string
		digits   bool
		digitRun bool
	}{
		{"", false, false},
		{"13", true, true},
		{"7", true, true},
		{"3 4 12", false, true},
		{"16(4)", false, false},
		{"톨루엔", false, false},
		{"2조2교대", false, false},
	}

	for _, tt := range tests {
		if got := IsDigits(tt.in); got != tt.digits {
			t.Errorf("IsDigits(%q) = %v, want %v", tt.in, got, tt.digits)
		}
		if got := IsDigitRun(tt.in); got != tt.digitRun {
			t.Errorf("IsDigitRun(%q) = %v, want %v", tt.in, got, tt.digitRun)
		}
	}
}

package reconstruct

import (
	"regexp"
	"strings"

	"github.com/tsawler/distsurvey/columns"
	"github.com/tsawler/distsurvey/internal/cell"
)

// DefaultMinCells is the minimum number of cells a row must have to be read.
const DefaultMinCells = 3

var (
	timeRangeAfter  = regexp.MustCompile(`~\s*\d{1,2}:\d{2}`)
	timeRangeBefore = regexp.MustCompile(`\d{1,2}:\d{2}\s*~`)
)

// noiseRule identifies rows that belong to headings, footers or the sampling
// time grid rather than to a unit.
type noiseRule struct {
	reason string
	match  func(joined string) bool
}

func containsAny(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}

var noiseRules = []noiseRule{
	{"repeated header", func(s string) bool {
		return strings.Contains(s, "공정") && strings.Contains(s, "작업")
	}},
	{"method or remarks", containsAny("측정방법", "비고")},
	{"average value", containsAny("평균치")},
	{"sampling time header", containsAny("측정시각")},
	{"time range", func(s string) bool {
		return timeRangeAfter.MatchString(s) || timeRangeBefore.MatchString(s)
	}},
	{"start or end timestamp", containsAny("시작", "종료")},
}

// Reject reports whether row must be discarded before classification and
// why. Rows shorter than minCells and rows whose concatenated text matches
// a heading, footer or timestamp signature are rejected.
func Reject(row []string, minCells int) (reason string, rejected bool) {
	if minCells <= 0 {
		minCells = DefaultMinCells
	}
	if len(row) < minCells {
		return "too few cells", true
	}
	joined := cell.Join(row)
	for _, r := range noiseRules {
		if r.match(joined) {
			return r.reason, true
		}
	}
	return "", false
}

// Extract reads the role cells of row through cols and applies the worker
// garbage pass: a unit cell holding only digits is a misplaced worker count.
// It seeds the worker value when the worker cell is empty and never becomes
// a name fragment.
func Extract(row []string, cols columns.Map) Fields {
	f := Fields{
		Group:  cell.At(row, cols.Index(columns.Group)),
		Unit:   cell.At(row, cols.Index(columns.Unit)),
		Factor: cell.At(row, cols.Index(columns.Factor)),
		Worker: cell.At(row, cols.Index(columns.Worker)),
		Form:   cell.At(row, cols.Index(columns.Form)),
	}
	if f.Unit != "" && cell.IsDigitRun(f.Unit) {
		if f.Worker == "" {
			f.Worker = f.Unit
		}
		f.Unit = ""
	}
	return f
}

package distsurvey

import (
	"fmt"
	"strings"
)

// WarningCode identifies the kind of a Warning.
type WarningCode int

const (
	// WarningCompanyName means no company name was found; the placeholder
	// is printed instead.
	WarningCompanyName WarningCode = iota + 1
	// WarningProject means no project title was found; the placeholder is
	// printed instead.
	WarningProject
	// WarningNoTables means the document contained no detectable table.
	WarningNoTables
	// WarningEmptySummary means no group survived filtering, so the report
	// holds only its heading.
	WarningEmptySummary
)

// String returns a short name for the code.
func (c WarningCode) String() string {
	switch c {
	case WarningCompanyName:
		return "company-name"
	case WarningProject:
		return "project"
	case WarningNoTables:
		return "no-tables"
	case WarningEmptySummary:
		return "empty-summary"
	default:
		return fmt.Sprintf("WarningCode(%d)", int(c))
	}
}

// Warning is a non-fatal problem met during conversion. The report is still
// produced.
type Warning struct {
	Code    WarningCode
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// FormatWarnings joins warnings into one line each.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}

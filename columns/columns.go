package columns

import (
	"fmt"
	"strings"

	"github.com/tsawler/distsurvey/internal/cell"
)

// Role is the semantic meaning of a table column.
type Role int

const (
	Group Role = iota
	Unit
	Factor
	Worker
	Form

	numRoles
)

// Roles lists every role in declaration order.
var Roles = []Role{Group, Unit, Factor, Worker, Form}

// String returns the role name used in configuration and logs.
func (r Role) String() string {
	switch r {
	case Group:
		return "group"
	case Unit:
		return "unit"
	case Factor:
		return "factor"
	case Worker:
		return "worker"
	case Form:
		return "form"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// DefaultScanRows is the number of leading rows searched for a header.
const DefaultScanRows = 5

// Map assigns a column index to each role.
type Map [numRoles]int

// Defaults returns the column layout used when no header has been seen.
func Defaults() Map {
	return Map{
		Group:  0,
		Unit:   2,
		Factor: 3,
		Worker: 4,
		Form:   5,
	}
}

// Index returns the column index assigned to r.
func (m Map) Index(r Role) int {
	return m[r]
}

// String formats the map as "group=0 unit=2 ...".
func (m Map) String() string {
	parts := make([]string, 0, numRoles)
	for _, r := range Roles {
		parts = append(parts, fmt.Sprintf("%s=%d", r, m[r]))
	}
	return strings.Join(parts, " ")
}

// IsHeaderRow reports whether the concatenated row text carries the
// process + work/place signature of a column heading row.
func IsHeaderRow(joined string) bool {
	return strings.Contains(joined, "공정") &&
		(strings.Contains(joined, "작업") || strings.Contains(joined, "장소"))
}

// roleOf returns the role announced by a header cell, checked in the order
// group, unit, factor, worker, form. A cell mentioning a measured value
// (측정치) is never taken as the worker column.
func roleOf(text string) (Role, bool) {
	switch {
	case strings.Contains(text, "공정") || strings.Contains(text, "부서"):
		return Group, true
	case strings.Contains(text, "작업") || strings.Contains(text, "장소") || strings.Contains(text, "단위"):
		return Unit, true
	case strings.Contains(text, "유해") || strings.Contains(text, "인자"):
		return Factor, true
	case strings.Contains(text, "근로") || strings.Contains(text, "자수") || strings.Contains(text, "측정치"):
		if strings.Contains(text, "치") {
			return 0, false
		}
		return Worker, true
	case strings.Contains(text, "형태") || strings.Contains(text, "근무"):
		return Form, true
	}
	return 0, false
}

// Resolve looks for a header row among the first scan rows of a table and
// returns the column map it describes. Roles the header does not mention
// keep their index from prev. When no header is found prev is returned
// unchanged and found is false. Resolve never fails.
func Resolve(rows [][]string, prev Map, scan int) (m Map, found bool) {
	if scan <= 0 {
		scan = DefaultScanRows
	}
	if len(rows) < scan {
		scan = len(rows)
	}

	m = prev
	for _, row := range rows[:scan] {
		if len(row) == 0 || !IsHeaderRow(cell.Join(row)) {
			continue
		}
		for idx, c := range row {
			if c == "" {
				continue
			}
			if role, ok := roleOf(cell.Compact(c)); ok {
				m[role] = idx
			}
		}
		return m, true
	}
	return prev, false
}

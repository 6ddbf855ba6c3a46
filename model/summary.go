package model

import (
	"strings"

	"bitbucket.org/creachadair/stringset"

	"github.com/tsawler/distsurvey/internal/cell"
)

// SummaryUnit is a unit that survived filtering.
type SummaryUnit struct {
	// Content is the joined unit name or UnnamedUnit.
	Content   string
	Factors   FactorSet
	Workers   string
	WorkForms stringset.Set
}

// Info formats the worker status of the unit: the worker count followed by
// 명 when it is a plain number, then the sorted work forms. It returns ""
// when the unit has neither.
func (u SummaryUnit) Info() string {
	var info string
	if u.Workers != "" {
		if cell.IsDigits(u.Workers) {
			info = u.Workers + "명"
		} else {
			info = u.Workers
		}
	}
	if !u.WorkForms.Empty() {
		forms := strings.Join(u.WorkForms.Elements(), ", ")
		if info != "" {
			info += ", " + forms
		} else {
			info = forms
		}
	}
	return info
}

// Unnamed reports whether the unit carries the placeholder content.
func (u SummaryUnit) Unnamed() bool {
	return u.Content == UnnamedUnit
}

// SummaryGroup is a group ready for rendering.
type SummaryGroup struct {
	Name  string
	Units []SummaryUnit
	// Contents are the distinct named unit contents in first-seen order.
	Contents []string
	// Factors is the union of all member unit factors.
	Factors FactorSet
}

// WorkerEntry pairs a unit content with its worker status line.
type WorkerEntry struct {
	Content string
	Info    string
}

// WorkerEntries returns the worker status of every unit that has one, in
// unit order.
func (g SummaryGroup) WorkerEntries() []WorkerEntry {
	var entries []WorkerEntry
	for _, u := range g.Units {
		info := u.Info()
		if info == "" {
			continue
		}
		entries = append(entries, WorkerEntry{Content: u.Content, Info: info})
	}
	return entries
}

// Summary is the aggregated report.
type Summary struct {
	Company CompanyInfo
	Groups  []SummaryGroup
}

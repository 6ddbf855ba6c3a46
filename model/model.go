package model

import (
	"strings"

	"bitbucket.org/creachadair/stringset"

	"github.com/tsawler/distsurvey/hazard"
)

// UnnamedUnit is the placeholder content printed for a unit whose name cells
// were all empty.
const UnnamedUnit = "(공정명 없음)"

// FactorSet holds the distinct factor names recorded per hazard category.
type FactorSet map[hazard.Category]stringset.Set

// Add records name under cat.
func (f FactorSet) Add(cat hazard.Category, name string) {
	s := f[cat]
	s.Add(name)
	f[cat] = s
}

// Merge adds every factor of other to f.
func (f FactorSet) Merge(other FactorSet) {
	for cat, names := range other {
		s := f[cat]
		s.Update(names)
		f[cat] = s
	}
}

// Get returns the sorted factor names recorded under cat.
func (f FactorSet) Get(cat hazard.Category) []string {
	return f[cat].Elements()
}

// Empty reports whether no factor is recorded in any category.
func (f FactorSet) Empty() bool {
	for _, s := range f {
		if !s.Empty() {
			return false
		}
	}
	return true
}

// Unit is one unit of work inside a process group. It is mutated in place
// while its rows are being read.
type Unit struct {
	// NameParts are the name fragments collected across wrapped rows.
	NameParts []string
	Factors   FactorSet
	// Workers is the most recent worker-count cell, kept verbatim
	// (e.g. "16(4)").
	Workers   string
	WorkForms stringset.Set
}

// NewUnit returns an empty unit ready for accumulation.
func NewUnit() Unit {
	return Unit{
		Factors:   FactorSet{},
		WorkForms: stringset.New(),
	}
}

// Name joins the name fragments with single spaces.
func (u *Unit) Name() string {
	return strings.TrimSpace(strings.Join(u.NameParts, " "))
}

// IsBlank reports whether the unit carries no name, no factor and no worker
// value.
func (u *Unit) IsBlank() bool {
	return len(u.NameParts) == 0 && u.Factors.Empty() && u.Workers == ""
}

// Group is a named process or department bucket. Units appear in the order
// they were first seen.
type Group struct {
	Name  string
	Units []Unit
}

// Document is the reconstructed, not yet filtered, content of a report.
type Document struct {
	Company CompanyInfo
	Groups  []Group

	index map[string]int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{index: make(map[string]int)}
}

// GroupIndex returns the index of the group called name, creating it at the
// end of the list on first use.
func (d *Document) GroupIndex(name string) int {
	if d.index == nil {
		d.index = make(map[string]int, len(d.Groups))
		for i, g := range d.Groups {
			d.index[g.Name] = i
		}
	}
	if i, ok := d.index[name]; ok {
		return i
	}
	d.Groups = append(d.Groups, Group{Name: name})
	d.index[name] = len(d.Groups) - 1
	return len(d.Groups) - 1
}

// AddUnit appends a new empty unit to group g and returns its index.
func (d *Document) AddUnit(g int) int {
	d.Groups[g].Units = append(d.Groups[g].Units, NewUnit())
	return len(d.Groups[g].Units) - 1
}

// Unit returns the unit at position u of group g.
func (d *Document) Unit(g, u int) *Unit {
	return &d.Groups[g].Units[u]
}

// UnitCount returns the number of units across all groups.
func (d *Document) UnitCount() int {
	n := 0
	for _, g := range d.Groups {
		n += len(g.Units)
	}
	return n
}

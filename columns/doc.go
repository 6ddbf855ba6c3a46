// Package columns maps the semantic roles of a measurement table (process
// group, unit work place, hazard factor, worker count, work form) to
// physical column positions.
//
// The tables produced by PDF extraction carry no schema. [Resolve] scans the
// first few rows of each table for a heading row and derives a [Map] from
// the heading cells. When no heading is present the previous map, the
// built-in [Defaults] or one carried over from an earlier table, is kept.
package columns

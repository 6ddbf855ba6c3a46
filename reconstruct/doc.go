// Package reconstruct rebuilds process groups and their units of work from
// the flat rows of measurement result tables.
//
// Tables in these reports are extracted without reliable cell structure:
// unit names wrap over several rows, merged cells leave the process column
// empty below its first row and the sampling time grid is interleaved with
// data. The engine reads rows one at a time with a small state machine:
//
//	row has a process cell                     -> new group, new unit
//	unit text, known group, no unit yet        -> bootstrap unit
//	unit text after worker or shift data       -> new unit
//	unit text while the unit is still pending  -> wrapped name, continue
//	anything else                              -> add to the current unit
//
// A unit becomes completed once it receives a worker count or a shift
// pattern (교대); from then on further name text starts a new unit. The
// current group and the column layout carry over between tables, so a
// process continued on the next page keeps collecting units. The current
// unit does not.
//
// Heading rows, remarks, averages and sampling timestamps are rejected
// before classification; see Reject.
package reconstruct

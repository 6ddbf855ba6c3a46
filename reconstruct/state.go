package reconstruct

import (
	"github.com/tsawler/distsurvey/columns"
)

// Phase tracks whether the current unit has already received its worker or
// work form data.
type Phase int

const (
	// PhasePending means the unit may still grow by wrapped name rows.
	PhasePending Phase = iota
	// PhaseCompleted means the unit row carried worker or form data, so
	// further name text belongs to a new unit.
	PhaseCompleted
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	if p == PhaseCompleted {
		return "completed"
	}
	return "pending"
}

// Boundary is the decision taken for a row before its fields are applied.
type Boundary int

const (
	// BoundaryNone applies the row to the current unit, if any.
	BoundaryNone Boundary = iota
	// BoundaryNewGroup switches the current group and starts a unit in it.
	BoundaryNewGroup
	// BoundaryBootstrap starts the first unit of a table under the carried
	// group.
	BoundaryBootstrap
	// BoundaryNewUnit starts a unit after a completed one.
	BoundaryNewUnit
	// BoundaryContinue appends wrapped name text to the pending unit.
	BoundaryContinue
)

// String returns the boundary name used in logs.
func (b Boundary) String() string {
	switch b {
	case BoundaryNewGroup:
		return "new-group"
	case BoundaryBootstrap:
		return "bootstrap"
	case BoundaryNewUnit:
		return "new-unit"
	case BoundaryContinue:
		return "continue"
	default:
		return "none"
	}
}

// StartsUnit reports whether the boundary materializes a new unit.
func (b Boundary) StartsUnit() bool {
	return b == BoundaryNewGroup || b == BoundaryBootstrap || b == BoundaryNewUnit
}

// Fields are the cleaned role cells of one row.
type Fields struct {
	Group  string
	Unit   string
	Factor string
	Worker string
	Form   string
}

// State is the extraction context threaded through every table of a
// document. The group and column map persist across tables; the current
// unit and its phase are reset when a table begins.
type State struct {
	Columns columns.Map
	// Group is the index of the current group, -1 before any group is seen.
	Group int
	// Unit is the index of the current unit within Group, -1 when none.
	Unit  int
	Phase Phase
}

// NewState returns the state at the start of a document.
func NewState(cols columns.Map) State {
	return State{Columns: cols, Group: -1, Unit: -1}
}

// HasGroup reports whether a group is active.
func (s *State) HasGroup() bool { return s.Group >= 0 }

// HasUnit reports whether a unit is active.
func (s *State) HasUnit() bool { return s.Group >= 0 && s.Unit >= 0 }

// BeginTable resets the per-table part of the state.
func (s *State) BeginTable() {
	s.Unit = -1
	s.Phase = PhasePending
}

// transition is one entry of the boundary table: when holds for the row and
// state, the row takes boundary.
type transition struct {
	boundary Boundary
	when     func(f Fields, s *State) bool
}

// transitions is evaluated top to bottom; the first entry whose
// precondition holds decides the row. Rows matching none take BoundaryNone.
var transitions = []transition{
	{BoundaryNewGroup, func(f Fields, s *State) bool {
		return f.Group != ""
	}},
	{BoundaryBootstrap, func(f Fields, s *State) bool {
		return f.Unit != "" && s.HasGroup() && !s.HasUnit()
	}},
	{BoundaryNewUnit, func(f Fields, s *State) bool {
		return f.Unit != "" && s.Phase == PhaseCompleted
	}},
	{BoundaryContinue, func(f Fields, s *State) bool {
		return f.Unit != "" && s.Phase == PhasePending
	}},
}

// Decide returns the boundary for a row with fields f in state s. It does
// not modify s.
func Decide(f Fields, s *State) Boundary {
	for _, t := range transitions {
		if t.when(f, s) {
			return t.boundary
		}
	}
	return BoundaryNone
}

package reconstruct

import (
	"strings"

	"go.uber.org/zap"

	"github.com/tsawler/distsurvey/columns"
	"github.com/tsawler/distsurvey/hazard"
	"github.com/tsawler/distsurvey/internal/cell"
	"github.com/tsawler/distsurvey/model"
	"github.com/tsawler/distsurvey/source"
)

// shiftKeyword marks a work form cell that names a shift pattern.
const shiftKeyword = "교대"

// Stats counts what the engine saw while reading a document.
type Stats struct {
	Tables   int
	Headers  int
	Rows     int
	Rejected int
	Units    int
}

// Engine reconstructs groups and units from extracted table rows.
type Engine struct {
	classifier *hazard.Classifier
	columns    columns.Map
	minCells   int
	scanRows   int
	logger     *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClassifier sets the hazard classifier used for factor cells.
func WithClassifier(c *hazard.Classifier) Option {
	return func(e *Engine) {
		if c != nil {
			e.classifier = c
		}
	}
}

// WithColumns sets the column map used until the first header is found.
func WithColumns(m columns.Map) Option {
	return func(e *Engine) { e.columns = m }
}

// WithMinCells sets the minimum row width.
func WithMinCells(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.minCells = n
		}
	}
}

// WithHeaderScanRows sets how many leading rows of a table are searched for
// a header.
func WithHeaderScanRows(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.scanRows = n
		}
	}
}

// WithLogger sets the logger. Rejected rows, header detections and unit
// boundaries are logged at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// New returns an engine with the default classifier and column layout.
func New(opts ...Option) *Engine {
	e := &Engine{
		classifier: hazard.Default,
		columns:    columns.Defaults(),
		minCells:   DefaultMinCells,
		scanRows:   columns.DefaultScanRows,
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run reconstructs a whole document. Company information is scraped from
// src.FrontText, or from the first page text when that is empty. Tables are
// read in page order with one State carried across all of them.
func (e *Engine) Run(src *source.Document) (*model.Document, Stats) {
	doc := model.NewDocument()
	var stats Stats
	if src == nil {
		return doc, stats
	}

	front := src.FrontText
	if front == "" && len(src.Pages) > 0 {
		front = src.Pages[0].Text
	}
	doc.Company = model.ParseCompanyInfo(front)

	st := NewState(e.columns)
	for _, page := range src.Pages {
		for ti, table := range page.Tables {
			log := e.logger.With(zap.Int("page", page.Number), zap.Int("table", ti+1))
			e.table(doc, &st, table, log, &stats)
		}
	}
	stats.Units = doc.UnitCount()
	return doc, stats
}

// Table reads one table into doc, updating st.
func (e *Engine) Table(doc *model.Document, st *State, table source.Table) {
	var stats Stats
	e.table(doc, st, table, e.logger, &stats)
}

func (e *Engine) table(doc *model.Document, st *State, table source.Table, log *zap.Logger, stats *Stats) {
	if len(table) == 0 {
		return
	}
	stats.Tables++

	cols, found := columns.Resolve(table, st.Columns, e.scanRows)
	if found {
		stats.Headers++
		log.Debug("column header detected", zap.Stringer("columns", cols))
	}
	st.Columns = cols
	st.BeginTable()

	for ri, row := range table {
		stats.Rows++
		if reason, rejected := Reject(row, e.minCells); rejected {
			stats.Rejected++
			log.Debug("row rejected", zap.Int("row", ri+1), zap.String("reason", reason))
			continue
		}
		b := e.Row(doc, st, row)
		if b.StartsUnit() {
			log.Debug("unit boundary",
				zap.Int("row", ri+1),
				zap.Stringer("boundary", b),
				zap.String("group", doc.Groups[st.Group].Name))
		}
	}
}

// Row classifies one accepted row and applies its fields to the current
// unit. It returns the boundary decision taken. Callers are expected to
// have filtered the row with Reject.
func (e *Engine) Row(doc *model.Document, st *State, row []string) Boundary {
	f := Extract(row, st.Columns)
	b := Decide(f, st)

	switch b {
	case BoundaryNewGroup:
		st.Group = doc.GroupIndex(f.Group)
		startUnit(doc, st)
	case BoundaryBootstrap, BoundaryNewUnit:
		startUnit(doc, st)
	}

	if !st.HasUnit() {
		return b
	}
	e.apply(doc.Unit(st.Group, st.Unit), st, f)
	return b
}

func startUnit(doc *model.Document, st *State) {
	st.Unit = doc.AddUnit(st.Group)
	st.Phase = PhasePending
}

func (e *Engine) apply(u *model.Unit, st *State, f Fields) {
	if f.Unit != "" {
		u.NameParts = append(u.NameParts, f.Unit)
	}

	if f.Worker != "" {
		u.Workers = f.Worker
		st.Phase = PhaseCompleted
	}

	if f.Form != "" && strings.Contains(f.Form, shiftKeyword) {
		u.WorkForms.Add(strings.Fields(f.Form)[0])
		st.Phase = PhaseCompleted
	}

	if f.Factor != "" && !strings.Contains(f.Factor, hazard.HeaderLabel) && !cell.IsDigits(f.Factor) {
		for _, tok := range strings.Fields(f.Factor) {
			if cell.IsDigits(tok) {
				continue
			}
			if cat, ok := e.classifier.Classify(tok); ok {
				u.Factors.Add(cat, tok)
			}
		}
	}
}

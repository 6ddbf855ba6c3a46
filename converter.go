package distsurvey

import (
	"go.uber.org/zap"

	"github.com/tsawler/distsurvey/aggregate"
	"github.com/tsawler/distsurvey/config"
	"github.com/tsawler/distsurvey/model"
	"github.com/tsawler/distsurvey/reconstruct"
	"github.com/tsawler/distsurvey/render"
	"github.com/tsawler/distsurvey/source"
)

// Converter provides a fluent interface for converting one report. Each
// configuration method returns a new Converter, so a configured Converter
// can be reused and shared.
type Converter struct {
	path    string
	options convertOptions
}

func (c *Converter) clone() *Converter {
	return &Converter{path: c.path, options: c.options.clone()}
}

// ============================================================================
// Configuration Methods (return new Converter instance)
// ============================================================================

// Pages restricts table extraction to the given pages (1-indexed). Multiple
// calls are cumulative. Company information is always read from page 1,
// selected or not.
//
// Example:
//
//	text, _, err := distsurvey.Open("report.pdf").Pages(1, 2).Text()
func (c *Converter) Pages(pages ...int) *Converter {
	n := c.clone()
	n.options.pages = append(n.options.pages, pages...)
	return n
}

// ExcludeHeaders drops running page headers before table detection.
func (c *Converter) ExcludeHeaders() *Converter {
	n := c.clone()
	n.options.excludeHeaders = true
	return n
}

// ExcludeFooters drops running page footers before table detection.
func (c *Converter) ExcludeFooters() *Converter {
	n := c.clone()
	n.options.excludeFooters = true
	return n
}

// WithConfig sets the configuration. A nil config selects the defaults.
func (c *Converter) WithConfig(cfg *config.Config) *Converter {
	n := c.clone()
	n.options.cfg = cfg
	return n
}

// WithLoader replaces the PDF backend, for example with a source.Static
// document.
func (c *Converter) WithLoader(l source.Loader) *Converter {
	n := c.clone()
	n.options.loader = l
	return n
}

// WithLogger sets the logger for the conversion.
func (c *Converter) WithLogger(l *zap.Logger) *Converter {
	n := c.clone()
	n.options.logger = l
	return n
}

// ============================================================================
// Terminal Operations
// ============================================================================

// Document extracts the report and reconstructs its groups and units
// without filtering them.
func (c *Converter) Document() (*model.Document, []Warning, error) {
	cfg := c.options.config()
	log := c.options.log().With(zap.String("path", c.path))

	src, err := c.loader(cfg, log).Load(c.path)
	if err != nil {
		return nil, nil, &ConversionError{Path: c.path, Err: err}
	}

	var warnings []Warning
	if src.TableCount() == 0 {
		warnings = append(warnings, Warning{
			Code:    WarningNoTables,
			Message: "no tables were detected in the document",
		})
	}

	engine := reconstruct.New(
		reconstruct.WithClassifier(cfg.Classifier()),
		reconstruct.WithColumns(cfg.ColumnMap()),
		reconstruct.WithMinCells(cfg.Rows.MinCells),
		reconstruct.WithHeaderScanRows(cfg.Rows.HeaderScanRows),
		reconstruct.WithLogger(log),
	)
	doc, stats := engine.Run(src)
	log.Debug("reconstruction finished",
		zap.Int("tables", stats.Tables),
		zap.Int("headers", stats.Headers),
		zap.Int("rows", stats.Rows),
		zap.Int("rejected", stats.Rejected),
		zap.Int("units", stats.Units))

	if cfg.Report.Company != "" {
		doc.Company.Name = cfg.Report.Company
	}
	if cfg.Report.Project != "" {
		doc.Company.Project = cfg.Report.Project
	}
	if doc.Company.Name == "" {
		warnings = append(warnings, Warning{
			Code:    WarningCompanyName,
			Message: "company name not found, using " + placeholder(cfg.Report.CompanyPlaceholder, render.DefaultCompany),
		})
	}
	if doc.Company.Project == "" {
		warnings = append(warnings, Warning{
			Code:    WarningProject,
			Message: "project title not found, using " + placeholder(cfg.Report.ProjectPlaceholder, render.DefaultProject),
		})
	}

	return doc, warnings, nil
}

// Summary extracts the report and returns its filtered, merged summary.
func (c *Converter) Summary() (*model.Summary, []Warning, error) {
	doc, warnings, err := c.Document()
	if err != nil {
		return nil, warnings, err
	}

	sum := aggregate.Aggregate(doc)
	if len(sum.Groups) == 0 {
		warnings = append(warnings, Warning{
			Code:    WarningEmptySummary,
			Message: "no process group survived filtering",
		})
	}
	return sum, warnings, nil
}

// Text converts the report into the summary text.
func (c *Converter) Text() (string, []Warning, error) {
	sum, warnings, err := c.Summary()
	if err != nil {
		return "", warnings, err
	}
	return render.New(c.options.config().RenderOptions()).Render(sum), warnings, nil
}

// loader returns the configured loader or a PDF loader built from cfg and
// the converter options.
func (c *Converter) loader(cfg *config.Config, log *zap.Logger) source.Loader {
	if c.options.loader != nil {
		return c.options.loader
	}
	return &source.PDFLoader{
		Pages:          c.options.pages,
		ExcludeHeaders: c.options.excludeHeaders || cfg.Source.ExcludeHeaders,
		ExcludeFooters: c.options.excludeFooters || cfg.Source.ExcludeFooters,
		Detector:       cfg.DetectorConfig(),
		Logger:         log,
	}
}

func placeholder(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}

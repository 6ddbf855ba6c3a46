// Package render writes a summary in the fixed text layout of the
// distribution survey report.
package render

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/distsurvey/hazard"
	"github.com/tsawler/distsurvey/model"
)

const (
	// DefaultRuleWidth is the length of the dashed separator line.
	DefaultRuleWidth = 93
	// DefaultNamePad is the rune width unit names are padded to in the
	// multi-entry worker block.
	DefaultNamePad = 13
	// DefaultCompany replaces a company name that was not found.
	DefaultCompany = "OOO회사"
	// DefaultProject replaces a project title that was not found.
	DefaultProject = "OOOO 공사"
)

const (
	contentPrefix = "   ◇ 작업내용 : "
	factorPrefix  = "   ◇ 유해인자 : * "
	factorIndent  = "                 * "
	workerPrefix  = "   ◇ 근무현황 : "
	workerIndent  = "                 : "
)

// labels are the aligned category captions. Categories missing here are
// padded to ten runes.
var labels = map[hazard.Category]string{
	hazard.Physical: "물리적인자 :",
	hazard.Dust:     "분진류     :",
	hazard.Metal:    "금속류     :",
	hazard.Organic:  "유기화합물 :",
	hazard.MetalOil: "금속가공유 :",
}

// Options controls the layout. The zero value selects the defaults.
type Options struct {
	RuleWidth          int
	NamePad            int
	CompanyPlaceholder string
	ProjectPlaceholder string
}

func (o Options) withDefaults() Options {
	if o.RuleWidth <= 0 {
		o.RuleWidth = DefaultRuleWidth
	}
	if o.NamePad <= 0 {
		o.NamePad = DefaultNamePad
	}
	if o.CompanyPlaceholder == "" {
		o.CompanyPlaceholder = DefaultCompany
	}
	if o.ProjectPlaceholder == "" {
		o.ProjectPlaceholder = DefaultProject
	}
	return o
}

// Renderer formats summaries.
type Renderer struct {
	opts Options
	rule string
}

// New returns a renderer using opts.
func New(opts Options) *Renderer {
	opts = opts.withDefaults()
	return &Renderer{opts: opts, rule: strings.Repeat("-", opts.RuleWidth)}
}

// Text renders sum with the default options.
func Text(sum *model.Summary) string {
	return New(Options{}).Render(sum)
}

// Label returns the caption printed before the factors of cat.
func Label(cat hazard.Category) string {
	if l, ok := labels[cat]; ok {
		return l
	}
	return pad(string(cat), 10) + " :"
}

// pad right-pads s with spaces to width runes.
func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// Render formats sum. Lines are separated by "\n" and the output has no
// trailing newline. The result depends only on sum and the options.
func (r *Renderer) Render(sum *model.Summary) string {
	if sum == nil {
		sum = &model.Summary{}
	}

	company := sum.Company.Name
	if company == "" {
		company = r.opts.CompanyPlaceholder
	}
	project := sum.Company.Project
	if project == "" {
		project = r.opts.ProjectPlaceholder
	}

	lines := []string{
		r.rule,
		fmt.Sprintf("■ %s %s에 대한 공정별 작업내용과", company, project),
		"   작업환경측정 대상 유해인자는 다음과 같습니다.",
		r.rule,
		r.rule,
	}
	for _, g := range sum.Groups {
		lines = r.group(lines, g)
	}
	return strings.Join(lines, "\n")
}

func (r *Renderer) group(lines []string, g model.SummaryGroup) []string {
	lines = append(lines, "■ "+g.Name, r.rule)

	content := strings.Join(g.Contents, ", ")
	if content == "" {
		content = g.Name
	}
	lines = append(lines, contentPrefix+content, "")

	lines = appendFactors(lines, g.Factors)
	lines = r.appendWorkers(lines, g)

	return append(lines, r.rule)
}

// appendFactors writes one line per non-empty category in report order,
// followed by a blank line. Nothing is written when there are no factors.
func appendFactors(lines []string, factors model.FactorSet) []string {
	first := true
	for _, cat := range hazard.ReportOrder {
		names := factors.Get(cat)
		if len(names) == 0 {
			continue
		}
		prefix := factorIndent
		if first {
			prefix = factorPrefix
			first = false
		}
		lines = append(lines, prefix+Label(cat)+" "+strings.Join(names, ", "))
	}
	if !first {
		lines = append(lines, "")
	}
	return lines
}

func (r *Renderer) appendWorkers(lines []string, g model.SummaryGroup) []string {
	entries := g.WorkerEntries()
	switch len(entries) {
	case 0:
		return lines
	case 1:
		return append(lines, workerPrefix+entries[0].Info)
	}

	for i, e := range entries {
		prefix := workerIndent
		if i == 0 {
			prefix = workerPrefix
		}
		if e.Content == model.UnnamedUnit || strings.Contains(g.Name, e.Content) {
			lines = append(lines, prefix+e.Info)
			continue
		}
		lines = append(lines, prefix+pad(e.Content, r.opts.NamePad)+"("+e.Info+")")
	}
	return lines
}

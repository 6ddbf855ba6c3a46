// Package aggregate filters a reconstructed document down to the groups and
// units that belong in the report and merges their contents and factors.
package aggregate

import (
	"regexp"
	"strings"

	"github.com/tsawler/distsurvey/model"
)

// headerGroups are group names that come from a header row read as data.
var headerGroups = map[string]bool{
	"공정":     true,
	"부서":     true,
	"단위작업장소": true,
}

// clockTime marks a worker cell that captured a sampling timestamp.
var clockTime = regexp.MustCompile(`\d{2}:\d{2}`)

// Aggregate returns the summary of doc. Groups keep their first-seen order
// and groups left without units are omitted. doc is not modified.
func Aggregate(doc *model.Document) *model.Summary {
	sum := &model.Summary{}
	if doc == nil {
		return sum
	}
	sum.Company = doc.Company

	for _, g := range doc.Groups {
		if g.Name == "" || headerGroups[g.Name] {
			continue
		}
		if sg, ok := Group(g); ok {
			sum.Groups = append(sum.Groups, sg)
		}
	}
	return sum
}

// Group filters the units of g and builds its summary. It reports false
// when no unit survives.
func Group(g model.Group) (model.SummaryGroup, bool) {
	sg := model.SummaryGroup{Name: g.Name, Factors: model.FactorSet{}}

	seen := make(map[string]bool)
	for i := range g.Units {
		su, ok := Unit(&g.Units[i])
		if !ok {
			continue
		}
		sg.Units = append(sg.Units, su)
		sg.Factors.Merge(su.Factors)
		if !su.Unnamed() && !seen[su.Content] {
			seen[su.Content] = true
			sg.Contents = append(sg.Contents, su.Content)
		}
	}
	if len(sg.Units) == 0 {
		return model.SummaryGroup{}, false
	}
	return sg, true
}

// Unit applies the unit filters and reports whether u survives:
// a worker value holding a clock time is a timestamp row and is dropped;
// a unit without a name survives under the placeholder content only when
// it carries a worker value.
func Unit(u *model.Unit) (model.SummaryUnit, bool) {
	if clockTime.MatchString(u.Workers) {
		return model.SummaryUnit{}, false
	}

	content := u.Name()
	if content == "" {
		if u.Factors.Empty() && u.Workers == "" {
			return model.SummaryUnit{}, false
		}
		content = model.UnnamedUnit
	}
	if content == model.UnnamedUnit && strings.TrimSpace(u.Workers) == "" {
		return model.SummaryUnit{}, false
	}

	return model.SummaryUnit{
		Content:   content,
		Factors:   u.Factors,
		Workers:   u.Workers,
		WorkForms: u.WorkForms,
	}, true
}

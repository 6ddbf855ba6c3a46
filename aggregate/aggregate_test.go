package aggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/distsurvey/hazard"
	"github.com/tsawler/distsurvey/model"
)

type unitRow struct {
	name    []string
	factors map[hazard.Category][]string
	workers string
	forms   []string
}

func buildDoc(groups map[string][]unitRow, order ...string) *model.Document {
	doc := model.NewDocument()
	doc.Company = model.CompanyInfo{Name: "한빛건설", Project: "신축공사"}
	for _, name := range order {
		g := doc.GroupIndex(name)
		for _, s := range groups[name] {
			u := doc.Unit(g, doc.AddUnit(g))
			u.NameParts = s.name
			for cat, names := range s.factors {
				for _, n := range names {
					u.Factors.Add(cat, n)
				}
			}
			u.Workers = s.workers
			u.WorkForms.Add(s.forms...)
		}
	}
	return doc
}

func contents(sum *model.Summary) map[string][]string {
	out := map[string][]string{}
	for _, g := range sum.Groups {
		var cs []string
		for _, u := range g.Units {
			cs = append(cs, u.Content)
		}
		out[g.Name] = cs
	}
	return out
}

func TestAggregateDropsHeaderGroups(t *testing.T) {
	doc := buildDoc(map[string][]unitRow{
		"공정":     {{name: []string{"작업내용"}, workers: "1"}},
		"부서":     {{name: []string{"x"}, workers: "1"}},
		"단위작업장소": {{name: []string{"x"}, workers: "1"}},
		"목공":     {{name: []string{"비계설치"}, workers: "13"}},
	}, "공정", "부서", "단위작업장소", "목공")

	sum := Aggregate(doc)
	if len(sum.Groups) != 1 || sum.Groups[0].Name != "목공" {
		t.Fatalf("groups = %v", contents(sum))
	}
	if sum.Company != doc.Company {
		t.Errorf("Company = %+v", sum.Company)
	}
}

func TestAggregateUnitFilters(t *testing.T) {
	doc := buildDoc(map[string][]unitRow{
		"목공": {
			{name: []string{"비계설치"}, workers: "13"},
			{name: []string{"측정"}, workers: "09:30"},
			{},
			{factors: map[hazard.Category][]string{hazard.Physical: {"소음"}}},
			{workers: "4"},
			{workers: "  ", factors: map[hazard.Category][]string{hazard.Physical: {"소음"}}},
		},
	}, "목공")

	want := map[string][]string{"목공": {"비계설치", model.UnnamedUnit}}
	if diff := cmp.Diff(want, contents(Aggregate(doc))); diff != "" {
		t.Errorf("units mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateOmitsEmptyGroups(t *testing.T) {
	doc := buildDoc(map[string][]unitRow{
		"철근": {{}},
		"목공": {{name: []string{"비계설치"}}},
	}, "철근", "목공")

	sum := Aggregate(doc)
	if len(sum.Groups) != 1 || sum.Groups[0].Name != "목공" {
		t.Errorf("groups = %v", contents(sum))
	}
}

func TestAggregateContentsAndFactors(t *testing.T) {
	doc := buildDoc(map[string][]unitRow{
		"도장": {
			{name: []string{"스프레이도장"}, factors: map[hazard.Category][]string{hazard.Organic: {"톨루엔", "크실렌"}}, workers: "3"},
			{name: []string{"붓도장"}, factors: map[hazard.Category][]string{hazard.Organic: {"톨루엔"}}, workers: "2"},
			{name: []string{"스프레이도장"}, factors: map[hazard.Category][]string{hazard.Physical: {"소음"}}},
			{workers: "1"},
		},
	}, "도장")

	g := Aggregate(doc).Groups[0]
	if diff := cmp.Diff([]string{"스프레이도장", "붓도장"}, g.Contents); diff != "" {
		t.Errorf("Contents mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"크실렌", "톨루엔"}, g.Factors.Get(hazard.Organic)); diff != "" {
		t.Errorf("organic factors mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"소음"}, g.Factors.Get(hazard.Physical)); diff != "" {
		t.Errorf("physical factors mismatch (-want +got):\n%s", diff)
	}
	if len(g.Units) != 4 {
		t.Errorf("got %d units, want 4", len(g.Units))
	}
}

func TestAggregateDoesNotModifyUnits(t *testing.T) {
	doc := buildDoc(map[string][]unitRow{
		"도장": {
			{name: []string{"a"}, factors: map[hazard.Category][]string{hazard.Organic: {"톨루엔"}}},
			{name: []string{"b"}, factors: map[hazard.Category][]string{hazard.Organic: {"크실렌"}}},
		},
	}, "도장")

	Aggregate(doc)
	if got := doc.Groups[0].Units[0].Factors.Get(hazard.Organic); len(got) != 1 {
		t.Errorf("first unit factors changed: %v", got)
	}
}

func TestWorkerEntries(t *testing.T) {
	doc := buildDoc(map[string][]unitRow{
		"사면보강": {
			{name: []string{"격자블록설치"}, workers: "6", forms: []string{"1조1교대"}},
			{name: []string{"낙석방지망설치"}, workers: "16(4)"},
			{name: []string{"점검"}, factors: map[hazard.Category][]string{hazard.Physical: {"소음"}}},
			{name: []string{"야간보수"}, forms: []string{"2조2교대", "1조1교대"}},
		},
	}, "사면보강")

	want := []model.WorkerEntry{
		{Content: "격자블록설치", Info: "6명, 1조1교대"},
		{Content: "낙석방지망설치", Info: "16(4)"},
		{Content: "야간보수", Info: "1조1교대, 2조2교대"},
	}
	if diff := cmp.Diff(want, Aggregate(doc).Groups[0].WorkerEntries()); diff != "" {
		t.Errorf("WorkerEntries() mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregateNil(t *testing.T) {
	if sum := Aggregate(nil); sum == nil || len(sum.Groups) != 0 {
		t.Errorf("Aggregate(nil) = %+v", sum)
	}
}

package hazard

// Keyword lists follow the hazard-factor table of the measurement
// regulation. Organic compounds are checked before acids so that names such
// as 포름알데히드 or 아세트산 never land in the acid group.
var (
	physicalKeywords = []string{"소음", "고열"}

	metalOilKeywords = []string{"미네랄오일", "오일미스트", "금속가공유"}

	organicKeywords = []string{
		"아세톤", "톨루엔", "크실렌", "자일렌", "부틸", "에탄올", "메탄올", "이소프로필", "알코올",
		"초산메틸", "초산에틸", "초산부틸", "초산이소", "초산(아세트산)", "아세트산",
		"디메틸", "벤젠", "헥산", "신너", "가솔린", "나프타", "와이어", "유기화합물", "트리클로로",
		"디클로로", "메틸", "에틸", "스티렌", "포름알데히드", "에테르", "케톤", "솔벤트", "세척제", "유기용제",
	}

	acidKeywords = []string{
		"황산", "염산", "질산", "불산", "불소", "수산화", "암모니아", "과산화", "산 및 알칼리", "포르말린",
	}

	// A bare "-산" name is an acid unless it is an oxide, carbonate,
	// silicate, acetate or lactate.
	acidExclusions = []string{"산화", "탄산", "규산", "초산", "유산", "젖산"}

	metalKeywords = []string{
		"산화철", "망간", "티타늄", "용접흄", "구리", "납", "니켈", "크롬", "아연", "알루미늄",
		"카드뮴", "코발트", "주석", "안티몬", "비소", "수은", "금속", "스테인리스", "철분",
	}

	dustKeywords = []string{
		"분진", "석영", "규소", "시멘트", "광물", "곡물", "목재", "면", "활석", "카본", "유리",
	}
)

// DefaultRules returns the built-in rule list in priority order.
func DefaultRules() []Rule {
	return []Rule{
		{Category: Physical, Contains: clone(physicalKeywords)},
		{Category: MetalOil, Contains: clone(metalOilKeywords)},
		{Category: Organic, Contains: clone(organicKeywords)},
		{Category: AcidAlkali, Contains: clone(acidKeywords)},
		{Category: AcidAlkali, Suffixes: []string{"산"}, Exclude: clone(acidExclusions)},
		{Category: AcidAlkali, Contains: []string{"알칼리"}},
		{Category: Metal, Contains: clone(metalKeywords)},
		{Category: Dust, Contains: clone(dustKeywords)},
	}
}

func clone(s []string) []string {
	out := make([]string, len(s))
	copy(out, s)
	return out
}

// Package hazard classifies hazard-factor names into the fixed categories
// used by the distribution survey.
//
// Classification is ordered keyword matching: rules are evaluated top to
// bottom and the first match wins. Order matters because the categories
// overlap. 포름알데히드 carries both an organic marker and an acid-like
// suffix, and the organic rule runs first.
//
//	cat, ok := hazard.Classify("톨루엔") // 유기화합물, true
//
// The built-in rules, in priority order:
//
//  1. 물리적인자 - noise and heat stress
//  2. 금속가공유 - mineral oil, oil mist, metal-working fluid
//  3. 유기화합물 - solvents, alcohols, esters, aromatics, thinners
//  4. 산 및 알칼리류 - named acids and bases, then bare "-산" names that are
//     not oxides, carbonates, silicates, acetates or lactates, then 알칼리
//  5. 금속류 - metals and welding fume
//  6. 분진류 - dust, mineral and fibre
//  7. 기타 - anything else
//
// A custom rule list can be supplied with [NewClassifier]; it replaces the
// defaults entirely. Tokens that are empty or equal to the column heading
// 유해인자 are rejected.
package hazard

// Package model defines the records reconstructed from a measurement report.
//
// # Reconstruction
//
// A [Document] owns an ordered list of [Group] values, one per process or
// department name in first-seen order. Each group owns its [Unit] records.
// Units are addressed by (group, unit) index pairs rather than by name,
// because unit names are assembled from several rows and repeat freely:
//
//	doc := model.NewDocument()
//	g := doc.GroupIndex("목공")
//	u := doc.AddUnit(g)
//	doc.Unit(g, u).NameParts = append(doc.Unit(g, u).NameParts, "비계설치")
//
// Worker counts are kept as the literal cell text. Reports use composite
// notations such as "16(4)" that must reach the output unchanged.
//
// # Summary
//
// A [Summary] is the filtered, aggregated view consumed by the renderer:
// groups with their distinct unit contents, merged [FactorSet] and
// per-unit worker status.
//
// # Company information
//
// [ParseCompanyInfo] scrapes the company name and project title from the
// first page text on a best-effort basis.
package model

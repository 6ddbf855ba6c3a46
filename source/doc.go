// Package source turns a report file into pages of raw table rows and page
// text.
//
// The Loader interface is the boundary between PDF parsing and row
// reconstruction. PDFLoader is the production implementation, built on the
// tabula reader, its geometric table detector and its header/footer
// detector. Static serves documents assembled in memory.
//
// Cells are plain strings; an empty string stands for a null cell and rows
// of one table may differ in length.
package source

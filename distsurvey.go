// Package distsurvey converts a workplace environment measurement report
// (작업환경측정 결과표) in PDF form into the plain-text distribution survey
// summary grouped by work process.
//
// Basic usage:
//
//	text, warnings, err := distsurvey.Open("측정결과.pdf").Text()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", distsurvey.FormatWarnings(warnings))
//	}
//
// With options:
//
//	text, _, err := distsurvey.Open("측정결과.pdf").
//	    Pages(2, 3, 4).
//	    ExcludeFooters().
//	    Text()
//
// The stages are available on their own in the source, reconstruct,
// aggregate and render packages.
package distsurvey

// Open returns a Converter for the report at path. Nothing is read until a
// terminal operation such as Text is called.
//
// Example:
//
//	text, warnings, err := distsurvey.Open("report.pdf").Text()
func Open(path string) *Converter {
	return &Converter{
		path:    path,
		options: defaultOptions(),
	}
}

// Convert converts the report at path with the default configuration and
// returns the summary text. Warnings are discarded; use Open for access to
// them.
func Convert(path string) (string, error) {
	text, _, err := Open(path).Text()
	return text, err
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil.
//
// Example:
//
//	text := distsurvey.Must(distsurvey.Convert("report.pdf"))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

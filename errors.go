package distsurvey

import "fmt"

// ConversionError reports a document that could not be read at all.
type ConversionError struct {
	Path string
	Err  error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("cannot convert %s: %v", e.Path, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

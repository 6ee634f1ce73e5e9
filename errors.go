package pdfoutline

import "fmt"

// DocumentError is the terminal failure for a single document: a parse
// failure, a corrupt stream, or a document with no pages. It carries the
// underlying cause so a batch driver can log it and move on; one document's
// failure never blocks the rest.
type DocumentError struct {
	Path string
	Err  error
}

func (e *DocumentError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("document unprocessable: %v", e.Err)
	}
	return fmt.Sprintf("document %s unprocessable: %v", e.Path, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

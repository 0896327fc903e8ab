package knowledge

import "errors"

// Domain-specific errors for the knowledge package. ErrNotTrained carries
// the exact wording returned to API callers.
var (
	ErrNotTrained = errors.New("Model not trained. Upload documents first.")
	ErrNoFiles    = errors.New("No files uploaded.")
	ErrNoContent  = errors.New("No valid content extracted from uploaded files.")
	ErrEmptyQuery = errors.New("query is empty")
)

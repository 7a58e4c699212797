package ingest

import (
	"errors"
	"fmt"
)

// ErrSourceUnavailable is returned when a data source cannot be opened or
// read. The store is left untouched when opening fails.
var ErrSourceUnavailable = errors.New("data source unavailable")

// SourceError describes a failed data source.
type SourceError struct {
	Dataset string
	Path    string
	Cause   error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s source %q: %v", e.Dataset, e.Path, e.Cause)
}

func (e *SourceError) Unwrap() error {
	return e.Cause
}

// Is reports ErrSourceUnavailable for every SourceError.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}

func sourceError(dataset, path string, cause error) error {
	return &SourceError{Dataset: dataset, Path: path, Cause: cause}
}

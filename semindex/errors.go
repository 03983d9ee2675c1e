package semindex

import "errors"

var (
	// ErrInvalidMaxAttempts indicates maxAttempts was not positive.
	ErrInvalidMaxAttempts = errors.New("max attempts must be greater than zero")

	// ErrEmbeddingCountMismatch indicates the embedder returned a different
	// number of vectors than texts submitted.
	ErrEmbeddingCountMismatch = errors.New("embedding count mismatch")

	// ErrDimensionMismatch indicates a query vector length differs from the
	// index dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")
)

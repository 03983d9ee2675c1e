package lexical

import "errors"

var (
	// ErrNoDocuments is returned when a model is fitted with no non-empty documents.
	ErrNoDocuments = errors.New("no non-empty documents to fit")

	// ErrDegenerateVocabulary is returned when the corpus vocabulary is
	// empty after stop-word removal and document-frequency filtering.
	// Callers recover by relaxing the minimum document frequency or by
	// falling back to a whole-document model; this error never surfaces
	// past the ranker.
	ErrDegenerateVocabulary = errors.New("degenerate vocabulary")
)

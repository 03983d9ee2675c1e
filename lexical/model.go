package lexical

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strings"
)

// ModelOptions configures TF-IDF fitting.
type ModelOptions struct {
	// NGramMin and NGramMax bound the n-gram expansion, inclusive.
	NGramMin int
	// NGramMax must be >= NGramMin.
	NGramMax int
	// MinDF drops terms appearing in fewer than MinDF documents.
	MinDF int
	// SublinearTF scales term frequency as 1+ln(tf) instead of raw counts.
	SublinearTF bool
}

// SectionModelOptions returns the options used for per-section models:
// 1-3 gram phrase matching with sub-linear term frequency.
func SectionModelOptions(minDF int) ModelOptions {
	return ModelOptions{NGramMin: 1, NGramMax: 3, MinDF: minDF, SublinearTF: true}
}

// WholeDocumentOptions returns the options used for the whole-document
// fallback model: 1-2 grams, every term kept.
func WholeDocumentOptions() ModelOptions {
	return ModelOptions{NGramMin: 1, NGramMax: 2, MinDF: 1, SublinearTF: false}
}

// SparseVector is an L2-normalized sparse term-weight vector keyed by
// vocabulary index.
type SparseVector map[int]float64

// Dot computes the dot product of two sparse vectors. For normalized
// vectors this equals their cosine similarity.
func (v SparseVector) Dot(other SparseVector) float64 {
	// iterate the smaller side
	if len(other) < len(v) {
		v, other = other, v
	}
	var sum float64
	for i, w := range v {
		if ow, ok := other[i]; ok {
			sum += w * ow
		}
	}
	return sum
}

// Model is a fitted TF-IDF model. It is immutable after fitting and
// safe for concurrent use.
type Model struct {
	opts  ModelOptions
	terms []string
	index map[string]int
	idf   []float64
	docs  int
}

// Fit builds a TF-IDF model over the corpus. Blank documents are
// ignored for document-frequency purposes. Returns ErrNoDocuments when
// every document is blank and ErrDegenerateVocabulary when no term
// survives stop-word removal and the MinDF filter.
func Fit(docs []string, opts ModelOptions) (*Model, error) {
	if opts.NGramMax < opts.NGramMin {
		opts.NGramMax = opts.NGramMin
	}
	if opts.MinDF < 1 {
		opts.MinDF = 1
	}

	df := make(map[string]int)
	var fitted int
	for _, doc := range docs {
		if strings.TrimSpace(doc) == "" {
			continue
		}
		fitted++
		seen := make(map[string]bool)
		for _, term := range ngrams(tokenize(doc), opts.NGramMin, opts.NGramMax) {
			if !seen[term] {
				seen[term] = true
				df[term]++
			}
		}
	}
	if fitted == 0 {
		return nil, ErrNoDocuments
	}

	terms := make([]string, 0, len(df))
	for term, count := range df {
		if count >= opts.MinDF {
			terms = append(terms, term)
		}
	}
	if len(terms) == 0 {
		return nil, fmt.Errorf("%w: %d candidate terms, min_df=%d", ErrDegenerateVocabulary, len(df), opts.MinDF)
	}
	// Sorted vocabulary keeps index assignment deterministic across runs.
	sort.Strings(terms)

	m := &Model{
		opts:  opts,
		terms: terms,
		index: make(map[string]int, len(terms)),
		idf:   make([]float64, len(terms)),
		docs:  fitted,
	}
	for i, term := range terms {
		m.index[term] = i
		// smoothed idf: ln((1+n)/(1+df)) + 1
		m.idf[i] = math.Log(float64(1+fitted)/float64(1+df[term])) + 1
	}
	return m, nil
}

// VocabularySize returns the number of terms in the fitted vocabulary.
func (m *Model) VocabularySize() int {
	return len(m.terms)
}

// Transform projects text into the model's vector space, returning an
// L2-normalized sparse vector. Text sharing no terms with the
// vocabulary yields an empty vector.
func (m *Model) Transform(text string) SparseVector {
	counts := make(map[int]float64)
	for _, term := range ngrams(tokenize(text), m.opts.NGramMin, m.opts.NGramMax) {
		if i, ok := m.index[term]; ok {
			counts[i]++
		}
	}
	if len(counts) == 0 {
		return SparseVector{}
	}

	vec := make(SparseVector, len(counts))
	var norm float64
	for i, tf := range counts {
		if m.opts.SublinearTF {
			tf = 1 + math.Log(tf)
		}
		w := tf * m.idf[i]
		vec[i] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

// modelParams is the persisted form of a fitted model: everything
// needed to re-score without re-fitting.
type modelParams struct {
	Options ModelOptions `json:"options"`
	Terms   []string     `json:"terms"`
	IDF     []float64    `json:"idf"`
	Docs    int          `json:"docs"`
}

// MarshalParams serializes the model's vocabulary and idf weights into
// an opaque blob for the storage collaborator.
func (m *Model) MarshalParams() ([]byte, error) {
	return json.Marshal(modelParams{
		Options: m.opts,
		Terms:   m.terms,
		IDF:     m.idf,
		Docs:    m.docs,
	})
}

// UnmarshalParams reconstructs a fitted model from a persisted blob.
func UnmarshalParams(data []byte) (*Model, error) {
	var p modelParams
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal model params: %w", err)
	}
	if len(p.Terms) != len(p.IDF) {
		return nil, fmt.Errorf("corrupt model params: %d terms, %d idf weights", len(p.Terms), len(p.IDF))
	}
	m := &Model{
		opts:  p.Options,
		terms: p.Terms,
		index: make(map[string]int, len(p.Terms)),
		idf:   p.IDF,
		docs:  p.Docs,
	}
	for i, term := range p.Terms {
		m.index[term] = i
	}
	return m, nil
}

package lexical

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/poiesic/talentsift/core"
	"github.com/poiesic/talentsift/skills"
)

// minSectionDocs is the corpus size below which the minimum document
// frequency relaxes to 1.
const minSectionDocs = 3

type sectionSpec struct {
	name   string
	weight float64
	text   func(core.Sections) string
}

// Weighted sections and their contribution to the combined similarity.
// Summary, education and other are parsed but carry no scoring weight.
var weightedSections = []sectionSpec{
	{name: "experience", weight: 0.5, text: func(s core.Sections) string { return s.Experience }},
	{name: "skills", weight: 0.3, text: func(s core.Sections) string { return s.Skills }},
	{name: "projects", weight: 0.2, text: func(s core.Sections) string { return s.Projects }},
}

type fittedSection struct {
	spec    sectionSpec
	model   *Model
	vectors []SparseVector // one per profile, in corpus order
}

// SectionRanker scores a job description against a fixed profile corpus
// using per-section TF-IDF models. It is immutable after fitting and
// safe for concurrent use.
type SectionRanker struct {
	sections        []fittedSection
	fallback        *Model
	fallbackVectors []SparseVector
	profileCount    int
	logger          *slog.Logger
}

// Option configures a SectionRanker.
type Option func(*SectionRanker)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *SectionRanker) {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
	}
}

// FitSectionRanker fits one TF-IDF model per weighted section over the
// profile corpus. A section whose corpus is degenerate first relaxes
// min_df to 1 and is then omitted with its weight renormalized away.
// When every section is degenerate the ranker falls back to a single
// whole-document model. Returns core.ErrEmptyCorpus for an empty
// profile set.
func FitSectionRanker(profiles []core.Profile, opts ...Option) (*SectionRanker, error) {
	if len(profiles) == 0 {
		return nil, core.ErrEmptyCorpus
	}

	r := &SectionRanker{
		profileCount: len(profiles),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, spec := range weightedSections {
		texts := make([]string, len(profiles))
		var nonEmpty int
		for i := range profiles {
			texts[i] = spec.text(profiles[i].Sections)
			if texts[i] != "" {
				nonEmpty++
			}
		}
		if nonEmpty == 0 {
			r.logger.Debug("section has no text, skipping", "section", spec.name)
			continue
		}

		minDF := 1
		if nonEmpty >= minSectionDocs {
			minDF = 2
		}
		model, err := Fit(texts, SectionModelOptions(minDF))
		if errors.Is(err, ErrDegenerateVocabulary) && minDF > 1 {
			model, err = Fit(texts, SectionModelOptions(1))
		}
		if err != nil {
			r.logger.Debug("section vocabulary degenerate, omitting",
				"section", spec.name, "err", err)
			continue
		}

		fs := fittedSection{spec: spec, model: model}
		fs.vectors = make([]SparseVector, len(profiles))
		for i, text := range texts {
			fs.vectors[i] = model.Transform(text)
		}
		r.sections = append(r.sections, fs)
	}

	if len(r.sections) == 0 {
		if err := r.fitFallback(profiles); err != nil {
			// All profiles are stop words only. Scoring degrades to zero
			// similarity rather than failing the ranking run.
			r.logger.Warn("whole-document fallback degenerate, lexical scores will be zero", "err", err)
		}
	}

	return r, nil
}

func (r *SectionRanker) fitFallback(profiles []core.Profile) error {
	texts := make([]string, len(profiles))
	for i := range profiles {
		texts[i] = profiles[i].FullText
	}
	model, err := Fit(texts, WholeDocumentOptions())
	if err != nil {
		return err
	}
	r.fallback = model
	r.fallbackVectors = make([]SparseVector, len(profiles))
	for i, text := range texts {
		r.fallbackVectors[i] = model.Transform(text)
	}
	return nil
}

// SectionCount returns the number of section models that survived fitting.
func (r *SectionRanker) SectionCount() int {
	return len(r.sections)
}

// Similarities computes the base weighted cosine similarity of the job
// description against every profile, in corpus order, before any skill
// boost.
func (r *SectionRanker) Similarities(jdText string) []float64 {
	out := make([]float64, r.profileCount)

	if len(r.sections) == 0 {
		if r.fallback == nil {
			return out
		}
		jdVec := r.fallback.Transform(jdText)
		for i, vec := range r.fallbackVectors {
			out[i] = core.Clamp01(jdVec.Dot(vec))
		}
		return out
	}

	var totalWeight float64
	jdVecs := make([]SparseVector, len(r.sections))
	for si, fs := range r.sections {
		jdVecs[si] = fs.model.Transform(jdText)
		totalWeight += fs.spec.weight
	}

	for i := 0; i < r.profileCount; i++ {
		var score float64
		for si, fs := range r.sections {
			score += fs.spec.weight * jdVecs[si].Dot(fs.vectors[i])
		}
		// totalWeight > 0: at least one section model exists here
		out[i] = core.Clamp01(score / totalWeight)
	}
	return out
}

// SkillBoostFactor returns the post-similarity boost multiplier for a
// given query-skill overlap: 1.0 at no overlap, 1.5 at full overlap.
func SkillBoostFactor(overlap float64) float64 {
	return 1.0 + 0.5*core.Clamp01(overlap)
}

// Score computes the final lexical score of the job description against
// every profile: base weighted similarity times the skill-boost
// multiplier, capped at 1. The boost is applied after cosine similarity
// so it stays auditable; it never alters the vector space.
func (r *SectionRanker) Score(jdText string, jdSkills []string, profiles []core.Profile) []float64 {
	base := r.Similarities(jdText)
	for i := range profiles {
		overlap := skills.OverlapScore(jdSkills, profiles[i].SkillSet)
		boosted := base[i] * SkillBoostFactor(overlap)
		base[i] = core.Clamp01(boosted)
	}
	return base
}

type sectionParams struct {
	Name   string          `json:"name"`
	Weight float64         `json:"weight"`
	Model  json.RawMessage `json:"model"`
}

type rankerParams struct {
	Sections []sectionParams `json:"sections"`
	Fallback json.RawMessage `json:"fallback,omitempty"`
}

// MarshalParams serializes every fitted model (vocabulary and idf
// weights) into an opaque blob. Together with the profile corpus this
// is sufficient to re-score without re-fitting.
func (r *SectionRanker) MarshalParams() ([]byte, error) {
	var p rankerParams
	for _, fs := range r.sections {
		blob, err := fs.model.MarshalParams()
		if err != nil {
			return nil, err
		}
		p.Sections = append(p.Sections, sectionParams{
			Name:   fs.spec.name,
			Weight: fs.spec.weight,
			Model:  blob,
		})
	}
	if r.fallback != nil {
		blob, err := r.fallback.MarshalParams()
		if err != nil {
			return nil, err
		}
		p.Fallback = blob
	}
	return json.Marshal(p)
}

// LoadSectionRanker reconstructs a ranker from persisted parameters,
// re-projecting the given profiles into each model's vector space.
// The profile corpus must be the one the parameters were fitted on.
func LoadSectionRanker(data []byte, profiles []core.Profile, opts ...Option) (*SectionRanker, error) {
	var p rankerParams
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("unmarshal ranker params: %w", err)
	}

	r := &SectionRanker{
		profileCount: len(profiles),
		logger:       slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}

	for _, sp := range p.Sections {
		spec, ok := sectionSpecByName(sp.Name)
		if !ok {
			return nil, fmt.Errorf("unknown section %q in ranker params", sp.Name)
		}
		model, err := UnmarshalParams(sp.Model)
		if err != nil {
			return nil, err
		}
		fs := fittedSection{spec: spec, model: model}
		fs.vectors = make([]SparseVector, len(profiles))
		for i := range profiles {
			fs.vectors[i] = model.Transform(spec.text(profiles[i].Sections))
		}
		r.sections = append(r.sections, fs)
	}

	if len(p.Fallback) > 0 {
		model, err := UnmarshalParams(p.Fallback)
		if err != nil {
			return nil, err
		}
		r.fallback = model
		r.fallbackVectors = make([]SparseVector, len(profiles))
		for i := range profiles {
			r.fallbackVectors[i] = model.Transform(profiles[i].FullText)
		}
	}

	return r, nil
}

func sectionSpecByName(name string) (sectionSpec, bool) {
	for _, spec := range weightedSections {
		if spec.name == name {
			return spec, true
		}
	}
	return sectionSpec{}, false
}
